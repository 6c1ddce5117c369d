// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
)

// CosmeticEvent is the model entity for the CosmeticEvent schema.
type CosmeticEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// CosmeticID holds the value of the "cosmetic_id" field.
	CosmeticID string `json:"cosmetic_id,omitempty"`
	// add, equip or unequip
	Action string `json:"action,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Rarity holds the value of the "rarity" field.
	Rarity string `json:"rarity,omitempty"`
	// Achievement that granted the item, for add events
	SourceAchievement *string `json:"source_achievement,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CosmeticEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cosmeticevent.FieldID, cosmeticevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case cosmeticevent.FieldCosmeticID, cosmeticevent.FieldAction, cosmeticevent.FieldCategory, cosmeticevent.FieldRarity, cosmeticevent.FieldSourceAchievement:
			values[i] = new(sql.NullString)
		case cosmeticevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CosmeticEvent fields.
func (_m *CosmeticEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cosmeticevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cosmeticevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case cosmeticevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case cosmeticevent.FieldCosmeticID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cosmetic_id", values[i])
			} else if value.Valid {
				_m.CosmeticID = value.String
			}
		case cosmeticevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case cosmeticevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case cosmeticevent.FieldRarity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rarity", values[i])
			} else if value.Valid {
				_m.Rarity = value.String
			}
		case cosmeticevent.FieldSourceAchievement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_achievement", values[i])
			} else if value.Valid {
				_m.SourceAchievement = new(string)
				*_m.SourceAchievement = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CosmeticEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CosmeticEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CosmeticEvent.
// Note that you need to call CosmeticEvent.Unwrap() before calling this method if this CosmeticEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CosmeticEvent) Update() *CosmeticEventUpdateOne {
	return NewCosmeticEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CosmeticEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CosmeticEvent) Unwrap() *CosmeticEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CosmeticEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CosmeticEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CosmeticEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("cosmetic_id=")
	builder.WriteString(_m.CosmeticID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("rarity=")
	builder.WriteString(_m.Rarity)
	builder.WriteString(", ")
	if v := _m.SourceAchievement; v != nil {
		builder.WriteString("source_achievement=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CosmeticEvents is a parsable slice of CosmeticEvent.
type CosmeticEvents []*CosmeticEvent
