// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/challengeevent"
)

// ChallengeEvent is the model entity for the ChallengeEvent schema.
type ChallengeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ChallengeID holds the value of the "challenge_id" field.
	ChallengeID string `json:"challenge_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Target holds the value of the "target" field.
	Target int `json:"target,omitempty"`
	// Start date of the challenge week, YYYY-MM-DD
	WeekStart string `json:"week_start,omitempty"`
	// BonusPoints holds the value of the "bonus_points" field.
	BonusPoints int `json:"bonus_points,omitempty"`
	// Achievement granted by the challenge reward, if any
	AchievementID *string `json:"achievement_id,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChallengeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case challengeevent.FieldID, challengeevent.FieldSequence, challengeevent.FieldTarget, challengeevent.FieldBonusPoints:
			values[i] = new(sql.NullInt64)
		case challengeevent.FieldChallengeID, challengeevent.FieldTitle, challengeevent.FieldWeekStart, challengeevent.FieldAchievementID:
			values[i] = new(sql.NullString)
		case challengeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChallengeEvent fields.
func (_m *ChallengeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case challengeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case challengeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case challengeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case challengeevent.FieldChallengeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_id", values[i])
			} else if value.Valid {
				_m.ChallengeID = value.String
			}
		case challengeevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case challengeevent.FieldTarget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = int(value.Int64)
			}
		case challengeevent.FieldWeekStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field week_start", values[i])
			} else if value.Valid {
				_m.WeekStart = value.String
			}
		case challengeevent.FieldBonusPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bonus_points", values[i])
			} else if value.Valid {
				_m.BonusPoints = int(value.Int64)
			}
		case challengeevent.FieldAchievementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_id", values[i])
			} else if value.Valid {
				_m.AchievementID = new(string)
				*_m.AchievementID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChallengeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ChallengeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChallengeEvent.
// Note that you need to call ChallengeEvent.Unwrap() before calling this method if this ChallengeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChallengeEvent) Update() *ChallengeEventUpdateOne {
	return NewChallengeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChallengeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChallengeEvent) Unwrap() *ChallengeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChallengeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChallengeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ChallengeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("challenge_id=")
	builder.WriteString(_m.ChallengeID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(fmt.Sprintf("%v", _m.Target))
	builder.WriteString(", ")
	builder.WriteString("week_start=")
	builder.WriteString(_m.WeekStart)
	builder.WriteString(", ")
	builder.WriteString("bonus_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.BonusPoints))
	builder.WriteString(", ")
	if v := _m.AchievementID; v != nil {
		builder.WriteString("achievement_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ChallengeEvents is a parsable slice of ChallengeEvent.
type ChallengeEvents []*ChallengeEvent
