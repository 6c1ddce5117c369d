// Code generated by ent, DO NOT EDIT.

package challengeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTitle, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTarget, v))
}

// WeekStart applies equality check predicate on the "week_start" field. It's identical to WeekStartEQ.
func WeekStart(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldWeekStart, v))
}

// BonusPoints applies equality check predicate on the "bonus_points" field. It's identical to BonusPointsEQ.
func BonusPoints(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldBonusPoints, v))
}

// AchievementID applies equality check predicate on the "achievement_id" field. It's identical to AchievementIDEQ.
func AchievementID(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldAchievementID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldChallengeID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldTitle, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTarget, v))
}

// WeekStartEQ applies the EQ predicate on the "week_start" field.
func WeekStartEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldWeekStart, v))
}

// WeekStartNEQ applies the NEQ predicate on the "week_start" field.
func WeekStartNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldWeekStart, v))
}

// WeekStartIn applies the In predicate on the "week_start" field.
func WeekStartIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldWeekStart, vs...))
}

// WeekStartNotIn applies the NotIn predicate on the "week_start" field.
func WeekStartNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldWeekStart, vs...))
}

// WeekStartGT applies the GT predicate on the "week_start" field.
func WeekStartGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldWeekStart, v))
}

// WeekStartGTE applies the GTE predicate on the "week_start" field.
func WeekStartGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldWeekStart, v))
}

// WeekStartLT applies the LT predicate on the "week_start" field.
func WeekStartLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldWeekStart, v))
}

// WeekStartLTE applies the LTE predicate on the "week_start" field.
func WeekStartLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldWeekStart, v))
}

// WeekStartContains applies the Contains predicate on the "week_start" field.
func WeekStartContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldWeekStart, v))
}

// WeekStartHasPrefix applies the HasPrefix predicate on the "week_start" field.
func WeekStartHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldWeekStart, v))
}

// WeekStartHasSuffix applies the HasSuffix predicate on the "week_start" field.
func WeekStartHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldWeekStart, v))
}

// WeekStartEqualFold applies the EqualFold predicate on the "week_start" field.
func WeekStartEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldWeekStart, v))
}

// WeekStartContainsFold applies the ContainsFold predicate on the "week_start" field.
func WeekStartContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldWeekStart, v))
}

// BonusPointsEQ applies the EQ predicate on the "bonus_points" field.
func BonusPointsEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldBonusPoints, v))
}

// BonusPointsNEQ applies the NEQ predicate on the "bonus_points" field.
func BonusPointsNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldBonusPoints, v))
}

// BonusPointsIn applies the In predicate on the "bonus_points" field.
func BonusPointsIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldBonusPoints, vs...))
}

// BonusPointsNotIn applies the NotIn predicate on the "bonus_points" field.
func BonusPointsNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldBonusPoints, vs...))
}

// BonusPointsGT applies the GT predicate on the "bonus_points" field.
func BonusPointsGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldBonusPoints, v))
}

// BonusPointsGTE applies the GTE predicate on the "bonus_points" field.
func BonusPointsGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldBonusPoints, v))
}

// BonusPointsLT applies the LT predicate on the "bonus_points" field.
func BonusPointsLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldBonusPoints, v))
}

// BonusPointsLTE applies the LTE predicate on the "bonus_points" field.
func BonusPointsLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldBonusPoints, v))
}

// AchievementIDEQ applies the EQ predicate on the "achievement_id" field.
func AchievementIDEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldAchievementID, v))
}

// AchievementIDNEQ applies the NEQ predicate on the "achievement_id" field.
func AchievementIDNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldAchievementID, v))
}

// AchievementIDIn applies the In predicate on the "achievement_id" field.
func AchievementIDIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldAchievementID, vs...))
}

// AchievementIDNotIn applies the NotIn predicate on the "achievement_id" field.
func AchievementIDNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldAchievementID, vs...))
}

// AchievementIDGT applies the GT predicate on the "achievement_id" field.
func AchievementIDGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldAchievementID, v))
}

// AchievementIDGTE applies the GTE predicate on the "achievement_id" field.
func AchievementIDGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldAchievementID, v))
}

// AchievementIDLT applies the LT predicate on the "achievement_id" field.
func AchievementIDLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldAchievementID, v))
}

// AchievementIDLTE applies the LTE predicate on the "achievement_id" field.
func AchievementIDLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldAchievementID, v))
}

// AchievementIDContains applies the Contains predicate on the "achievement_id" field.
func AchievementIDContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldAchievementID, v))
}

// AchievementIDHasPrefix applies the HasPrefix predicate on the "achievement_id" field.
func AchievementIDHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldAchievementID, v))
}

// AchievementIDHasSuffix applies the HasSuffix predicate on the "achievement_id" field.
func AchievementIDHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldAchievementID, v))
}

// AchievementIDIsNil applies the IsNil predicate on the "achievement_id" field.
func AchievementIDIsNil() predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIsNull(FieldAchievementID))
}

// AchievementIDNotNil applies the NotNil predicate on the "achievement_id" field.
func AchievementIDNotNil() predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotNull(FieldAchievementID))
}

// AchievementIDEqualFold applies the EqualFold predicate on the "achievement_id" field.
func AchievementIDEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldAchievementID, v))
}

// AchievementIDContainsFold applies the ContainsFold predicate on the "achievement_id" field.
func AchievementIDContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldAchievementID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.NotPredicates(p))
}
