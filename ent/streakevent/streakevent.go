// Code generated by ent, DO NOT EDIT.

package streakevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streakevent type in the database.
	Label = "streak_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldCriteriaMet holds the string denoting the criteria_met field in the database.
	FieldCriteriaMet = "criteria_met"
	// FieldPreviousStreak holds the string denoting the previous_streak field in the database.
	FieldPreviousStreak = "previous_streak"
	// FieldNewStreak holds the string denoting the new_streak field in the database.
	FieldNewStreak = "new_streak"
	// FieldWasReset holds the string denoting the was_reset field in the database.
	FieldWasReset = "was_reset"
	// FieldMilestone holds the string denoting the milestone field in the database.
	FieldMilestone = "milestone"
	// Table holds the table name of the streakevent in the database.
	Table = "streak_events"
)

// Columns holds all SQL columns for streakevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldDate,
	FieldCriteriaMet,
	FieldPreviousStreak,
	FieldNewStreak,
	FieldWasReset,
	FieldMilestone,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultPreviousStreak holds the default value on creation for the "previous_streak" field.
	DefaultPreviousStreak int
	// DefaultNewStreak holds the default value on creation for the "new_streak" field.
	DefaultNewStreak int
	// DefaultWasReset holds the default value on creation for the "was_reset" field.
	DefaultWasReset bool
)

// OrderOption defines the ordering options for the StreakEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByCriteriaMet orders the results by the criteria_met field.
func ByCriteriaMet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriteriaMet, opts...).ToFunc()
}

// ByPreviousStreak orders the results by the previous_streak field.
func ByPreviousStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousStreak, opts...).ToFunc()
}

// ByNewStreak orders the results by the new_streak field.
func ByNewStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStreak, opts...).ToFunc()
}

// ByWasReset orders the results by the was_reset field.
func ByWasReset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasReset, opts...).ToFunc()
}

// ByMilestone orders the results by the milestone field.
func ByMilestone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMilestone, opts...).ToFunc()
}
