// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/streakevent"
)

// StreakEvent is the model entity for the StreakEvent schema.
type StreakEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Calendar date being recorded, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// CriteriaMet holds the value of the "criteria_met" field.
	CriteriaMet bool `json:"criteria_met,omitempty"`
	// PreviousStreak holds the value of the "previous_streak" field.
	PreviousStreak int `json:"previous_streak,omitempty"`
	// NewStreak holds the value of the "new_streak" field.
	NewStreak int `json:"new_streak,omitempty"`
	// WasReset holds the value of the "was_reset" field.
	WasReset bool `json:"was_reset,omitempty"`
	// Milestone day count hit by this update, if any
	Milestone    *int `json:"milestone,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StreakEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streakevent.FieldCriteriaMet, streakevent.FieldWasReset:
			values[i] = new(sql.NullBool)
		case streakevent.FieldID, streakevent.FieldSequence, streakevent.FieldPreviousStreak, streakevent.FieldNewStreak, streakevent.FieldMilestone:
			values[i] = new(sql.NullInt64)
		case streakevent.FieldDate:
			values[i] = new(sql.NullString)
		case streakevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StreakEvent fields.
func (_m *StreakEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streakevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case streakevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case streakevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case streakevent.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case streakevent.FieldCriteriaMet:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field criteria_met", values[i])
			} else if value.Valid {
				_m.CriteriaMet = value.Bool
			}
		case streakevent.FieldPreviousStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_streak", values[i])
			} else if value.Valid {
				_m.PreviousStreak = int(value.Int64)
			}
		case streakevent.FieldNewStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_streak", values[i])
			} else if value.Valid {
				_m.NewStreak = int(value.Int64)
			}
		case streakevent.FieldWasReset:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_reset", values[i])
			} else if value.Valid {
				_m.WasReset = value.Bool
			}
		case streakevent.FieldMilestone:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field milestone", values[i])
			} else if value.Valid {
				_m.Milestone = new(int)
				*_m.Milestone = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StreakEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StreakEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StreakEvent.
// Note that you need to call StreakEvent.Unwrap() before calling this method if this StreakEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StreakEvent) Update() *StreakEventUpdateOne {
	return NewStreakEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StreakEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StreakEvent) Unwrap() *StreakEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StreakEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StreakEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StreakEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("criteria_met=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriteriaMet))
	builder.WriteString(", ")
	builder.WriteString("previous_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousStreak))
	builder.WriteString(", ")
	builder.WriteString("new_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewStreak))
	builder.WriteString(", ")
	builder.WriteString("was_reset=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasReset))
	builder.WriteString(", ")
	if v := _m.Milestone; v != nil {
		builder.WriteString("milestone=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StreakEvents is a parsable slice of StreakEvent.
type StreakEvents []*StreakEvent
