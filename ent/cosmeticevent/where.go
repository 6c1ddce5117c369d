// Code generated by ent, DO NOT EDIT.

package cosmeticevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CosmeticID applies equality check predicate on the "cosmetic_id" field. It's identical to CosmeticIDEQ.
func CosmeticID(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldCosmeticID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldAction, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldCategory, v))
}

// Rarity applies equality check predicate on the "rarity" field. It's identical to RarityEQ.
func Rarity(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldRarity, v))
}

// SourceAchievement applies equality check predicate on the "source_achievement" field. It's identical to SourceAchievementEQ.
func SourceAchievement(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldSourceAchievement, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldTimestamp, v))
}

// CosmeticIDEQ applies the EQ predicate on the "cosmetic_id" field.
func CosmeticIDEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldCosmeticID, v))
}

// CosmeticIDNEQ applies the NEQ predicate on the "cosmetic_id" field.
func CosmeticIDNEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldCosmeticID, v))
}

// CosmeticIDIn applies the In predicate on the "cosmetic_id" field.
func CosmeticIDIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldCosmeticID, vs...))
}

// CosmeticIDNotIn applies the NotIn predicate on the "cosmetic_id" field.
func CosmeticIDNotIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldCosmeticID, vs...))
}

// CosmeticIDGT applies the GT predicate on the "cosmetic_id" field.
func CosmeticIDGT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldCosmeticID, v))
}

// CosmeticIDGTE applies the GTE predicate on the "cosmetic_id" field.
func CosmeticIDGTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldCosmeticID, v))
}

// CosmeticIDLT applies the LT predicate on the "cosmetic_id" field.
func CosmeticIDLT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldCosmeticID, v))
}

// CosmeticIDLTE applies the LTE predicate on the "cosmetic_id" field.
func CosmeticIDLTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldCosmeticID, v))
}

// CosmeticIDContains applies the Contains predicate on the "cosmetic_id" field.
func CosmeticIDContains(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContains(FieldCosmeticID, v))
}

// CosmeticIDHasPrefix applies the HasPrefix predicate on the "cosmetic_id" field.
func CosmeticIDHasPrefix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasPrefix(FieldCosmeticID, v))
}

// CosmeticIDHasSuffix applies the HasSuffix predicate on the "cosmetic_id" field.
func CosmeticIDHasSuffix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasSuffix(FieldCosmeticID, v))
}

// CosmeticIDEqualFold applies the EqualFold predicate on the "cosmetic_id" field.
func CosmeticIDEqualFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEqualFold(FieldCosmeticID, v))
}

// CosmeticIDContainsFold applies the ContainsFold predicate on the "cosmetic_id" field.
func CosmeticIDContainsFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContainsFold(FieldCosmeticID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContainsFold(FieldAction, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContainsFold(FieldCategory, v))
}

// RarityEQ applies the EQ predicate on the "rarity" field.
func RarityEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldRarity, v))
}

// RarityNEQ applies the NEQ predicate on the "rarity" field.
func RarityNEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldRarity, v))
}

// RarityIn applies the In predicate on the "rarity" field.
func RarityIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldRarity, vs...))
}

// RarityNotIn applies the NotIn predicate on the "rarity" field.
func RarityNotIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldRarity, vs...))
}

// RarityGT applies the GT predicate on the "rarity" field.
func RarityGT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldRarity, v))
}

// RarityGTE applies the GTE predicate on the "rarity" field.
func RarityGTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldRarity, v))
}

// RarityLT applies the LT predicate on the "rarity" field.
func RarityLT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldRarity, v))
}

// RarityLTE applies the LTE predicate on the "rarity" field.
func RarityLTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldRarity, v))
}

// RarityContains applies the Contains predicate on the "rarity" field.
func RarityContains(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContains(FieldRarity, v))
}

// RarityHasPrefix applies the HasPrefix predicate on the "rarity" field.
func RarityHasPrefix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasPrefix(FieldRarity, v))
}

// RarityHasSuffix applies the HasSuffix predicate on the "rarity" field.
func RarityHasSuffix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasSuffix(FieldRarity, v))
}

// RarityEqualFold applies the EqualFold predicate on the "rarity" field.
func RarityEqualFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEqualFold(FieldRarity, v))
}

// RarityContainsFold applies the ContainsFold predicate on the "rarity" field.
func RarityContainsFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContainsFold(FieldRarity, v))
}

// SourceAchievementEQ applies the EQ predicate on the "source_achievement" field.
func SourceAchievementEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEQ(FieldSourceAchievement, v))
}

// SourceAchievementNEQ applies the NEQ predicate on the "source_achievement" field.
func SourceAchievementNEQ(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNEQ(FieldSourceAchievement, v))
}

// SourceAchievementIn applies the In predicate on the "source_achievement" field.
func SourceAchievementIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIn(FieldSourceAchievement, vs...))
}

// SourceAchievementNotIn applies the NotIn predicate on the "source_achievement" field.
func SourceAchievementNotIn(vs ...string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotIn(FieldSourceAchievement, vs...))
}

// SourceAchievementGT applies the GT predicate on the "source_achievement" field.
func SourceAchievementGT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGT(FieldSourceAchievement, v))
}

// SourceAchievementGTE applies the GTE predicate on the "source_achievement" field.
func SourceAchievementGTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldGTE(FieldSourceAchievement, v))
}

// SourceAchievementLT applies the LT predicate on the "source_achievement" field.
func SourceAchievementLT(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLT(FieldSourceAchievement, v))
}

// SourceAchievementLTE applies the LTE predicate on the "source_achievement" field.
func SourceAchievementLTE(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldLTE(FieldSourceAchievement, v))
}

// SourceAchievementContains applies the Contains predicate on the "source_achievement" field.
func SourceAchievementContains(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContains(FieldSourceAchievement, v))
}

// SourceAchievementHasPrefix applies the HasPrefix predicate on the "source_achievement" field.
func SourceAchievementHasPrefix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasPrefix(FieldSourceAchievement, v))
}

// SourceAchievementHasSuffix applies the HasSuffix predicate on the "source_achievement" field.
func SourceAchievementHasSuffix(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldHasSuffix(FieldSourceAchievement, v))
}

// SourceAchievementIsNil applies the IsNil predicate on the "source_achievement" field.
func SourceAchievementIsNil() predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldIsNull(FieldSourceAchievement))
}

// SourceAchievementNotNil applies the NotNil predicate on the "source_achievement" field.
func SourceAchievementNotNil() predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldNotNull(FieldSourceAchievement))
}

// SourceAchievementEqualFold applies the EqualFold predicate on the "source_achievement" field.
func SourceAchievementEqualFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldEqualFold(FieldSourceAchievement, v))
}

// SourceAchievementContainsFold applies the ContainsFold predicate on the "source_achievement" field.
func SourceAchievementContainsFold(v string) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.FieldContainsFold(FieldSourceAchievement, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CosmeticEvent) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CosmeticEvent) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CosmeticEvent) predicate.CosmeticEvent {
	return predicate.CosmeticEvent(sql.NotPredicates(p))
}
