// Code generated by ent, DO NOT EDIT.

package streakevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldDate, v))
}

// CriteriaMet applies equality check predicate on the "criteria_met" field. It's identical to CriteriaMetEQ.
func CriteriaMet(v bool) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldCriteriaMet, v))
}

// PreviousStreak applies equality check predicate on the "previous_streak" field. It's identical to PreviousStreakEQ.
func PreviousStreak(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldPreviousStreak, v))
}

// NewStreak applies equality check predicate on the "new_streak" field. It's identical to NewStreakEQ.
func NewStreak(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldNewStreak, v))
}

// WasReset applies equality check predicate on the "was_reset" field. It's identical to WasResetEQ.
func WasReset(v bool) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldWasReset, v))
}

// Milestone applies equality check predicate on the "milestone" field. It's identical to MilestoneEQ.
func Milestone(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldMilestone, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldContainsFold(FieldDate, v))
}

// CriteriaMetEQ applies the EQ predicate on the "criteria_met" field.
func CriteriaMetEQ(v bool) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldCriteriaMet, v))
}

// CriteriaMetNEQ applies the NEQ predicate on the "criteria_met" field.
func CriteriaMetNEQ(v bool) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldCriteriaMet, v))
}

// PreviousStreakEQ applies the EQ predicate on the "previous_streak" field.
func PreviousStreakEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldPreviousStreak, v))
}

// PreviousStreakNEQ applies the NEQ predicate on the "previous_streak" field.
func PreviousStreakNEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldPreviousStreak, v))
}

// PreviousStreakIn applies the In predicate on the "previous_streak" field.
func PreviousStreakIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldPreviousStreak, vs...))
}

// PreviousStreakNotIn applies the NotIn predicate on the "previous_streak" field.
func PreviousStreakNotIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldPreviousStreak, vs...))
}

// PreviousStreakGT applies the GT predicate on the "previous_streak" field.
func PreviousStreakGT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldPreviousStreak, v))
}

// PreviousStreakGTE applies the GTE predicate on the "previous_streak" field.
func PreviousStreakGTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldPreviousStreak, v))
}

// PreviousStreakLT applies the LT predicate on the "previous_streak" field.
func PreviousStreakLT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldPreviousStreak, v))
}

// PreviousStreakLTE applies the LTE predicate on the "previous_streak" field.
func PreviousStreakLTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldPreviousStreak, v))
}

// NewStreakEQ applies the EQ predicate on the "new_streak" field.
func NewStreakEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldNewStreak, v))
}

// NewStreakNEQ applies the NEQ predicate on the "new_streak" field.
func NewStreakNEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldNewStreak, v))
}

// NewStreakIn applies the In predicate on the "new_streak" field.
func NewStreakIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldNewStreak, vs...))
}

// NewStreakNotIn applies the NotIn predicate on the "new_streak" field.
func NewStreakNotIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldNewStreak, vs...))
}

// NewStreakGT applies the GT predicate on the "new_streak" field.
func NewStreakGT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldNewStreak, v))
}

// NewStreakGTE applies the GTE predicate on the "new_streak" field.
func NewStreakGTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldNewStreak, v))
}

// NewStreakLT applies the LT predicate on the "new_streak" field.
func NewStreakLT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldNewStreak, v))
}

// NewStreakLTE applies the LTE predicate on the "new_streak" field.
func NewStreakLTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldNewStreak, v))
}

// WasResetEQ applies the EQ predicate on the "was_reset" field.
func WasResetEQ(v bool) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldWasReset, v))
}

// WasResetNEQ applies the NEQ predicate on the "was_reset" field.
func WasResetNEQ(v bool) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldWasReset, v))
}

// MilestoneEQ applies the EQ predicate on the "milestone" field.
func MilestoneEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldMilestone, v))
}

// MilestoneNEQ applies the NEQ predicate on the "milestone" field.
func MilestoneNEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldMilestone, v))
}

// MilestoneIn applies the In predicate on the "milestone" field.
func MilestoneIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldMilestone, vs...))
}

// MilestoneNotIn applies the NotIn predicate on the "milestone" field.
func MilestoneNotIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldMilestone, vs...))
}

// MilestoneGT applies the GT predicate on the "milestone" field.
func MilestoneGT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldMilestone, v))
}

// MilestoneGTE applies the GTE predicate on the "milestone" field.
func MilestoneGTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldMilestone, v))
}

// MilestoneLT applies the LT predicate on the "milestone" field.
func MilestoneLT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldMilestone, v))
}

// MilestoneLTE applies the LTE predicate on the "milestone" field.
func MilestoneLTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldMilestone, v))
}

// MilestoneIsNil applies the IsNil predicate on the "milestone" field.
func MilestoneIsNil() predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIsNull(FieldMilestone))
}

// MilestoneNotNil applies the NotNil predicate on the "milestone" field.
func MilestoneNotNil() predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotNull(FieldMilestone))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StreakEvent) predicate.StreakEvent {
	return predicate.StreakEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StreakEvent) predicate.StreakEvent {
	return predicate.StreakEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StreakEvent) predicate.StreakEvent {
	return predicate.StreakEvent(sql.NotPredicates(p))
}
