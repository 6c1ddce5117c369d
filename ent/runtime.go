// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anuraag/pipkin/ent/achievementevent"
	"github.com/anuraag/pipkin/ent/challengeevent"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
	"github.com/anuraag/pipkin/ent/schema"
	"github.com/anuraag/pipkin/ent/snapshot"
	"github.com/anuraag/pipkin/ent/streakevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescCategory is the schema descriptor for category field.
	achievementeventDescCategory := achievementeventFields[1].Descriptor()
	// achievementevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	achievementevent.CategoryValidator = achievementeventDescCategory.Validators[0].(func(string) error)
	// achievementeventDescRarity is the schema descriptor for rarity field.
	achievementeventDescRarity := achievementeventFields[2].Descriptor()
	// achievementevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	achievementevent.RarityValidator = achievementeventDescRarity.Validators[0].(func(string) error)
	// achievementeventDescSource is the schema descriptor for source field.
	achievementeventDescSource := achievementeventFields[3].Descriptor()
	// achievementevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	achievementevent.SourceValidator = achievementeventDescSource.Validators[0].(func(string) error)
	challengeeventMixin := schema.ChallengeEvent{}.Mixin()
	challengeeventMixinFields0 := challengeeventMixin[0].Fields()
	_ = challengeeventMixinFields0
	challengeeventFields := schema.ChallengeEvent{}.Fields()
	_ = challengeeventFields
	// challengeeventDescTimestamp is the schema descriptor for timestamp field.
	challengeeventDescTimestamp := challengeeventMixinFields0[1].Descriptor()
	// challengeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	challengeevent.DefaultTimestamp = challengeeventDescTimestamp.Default.(func() time.Time)
	// challengeeventDescChallengeID is the schema descriptor for challenge_id field.
	challengeeventDescChallengeID := challengeeventFields[0].Descriptor()
	// challengeevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	challengeevent.ChallengeIDValidator = challengeeventDescChallengeID.Validators[0].(func(string) error)
	// challengeeventDescTitle is the schema descriptor for title field.
	challengeeventDescTitle := challengeeventFields[1].Descriptor()
	// challengeevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	challengeevent.TitleValidator = challengeeventDescTitle.Validators[0].(func(string) error)
	// challengeeventDescTarget is the schema descriptor for target field.
	challengeeventDescTarget := challengeeventFields[2].Descriptor()
	// challengeevent.DefaultTarget holds the default value on creation for the target field.
	challengeevent.DefaultTarget = challengeeventDescTarget.Default.(int)
	// challengeeventDescWeekStart is the schema descriptor for week_start field.
	challengeeventDescWeekStart := challengeeventFields[3].Descriptor()
	// challengeevent.WeekStartValidator is a validator for the "week_start" field. It is called by the builders before save.
	challengeevent.WeekStartValidator = challengeeventDescWeekStart.Validators[0].(func(string) error)
	// challengeeventDescBonusPoints is the schema descriptor for bonus_points field.
	challengeeventDescBonusPoints := challengeeventFields[4].Descriptor()
	// challengeevent.DefaultBonusPoints holds the default value on creation for the bonus_points field.
	challengeevent.DefaultBonusPoints = challengeeventDescBonusPoints.Default.(int)
	cosmeticeventMixin := schema.CosmeticEvent{}.Mixin()
	cosmeticeventMixinFields0 := cosmeticeventMixin[0].Fields()
	_ = cosmeticeventMixinFields0
	cosmeticeventFields := schema.CosmeticEvent{}.Fields()
	_ = cosmeticeventFields
	// cosmeticeventDescTimestamp is the schema descriptor for timestamp field.
	cosmeticeventDescTimestamp := cosmeticeventMixinFields0[1].Descriptor()
	// cosmeticevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	cosmeticevent.DefaultTimestamp = cosmeticeventDescTimestamp.Default.(func() time.Time)
	// cosmeticeventDescCosmeticID is the schema descriptor for cosmetic_id field.
	cosmeticeventDescCosmeticID := cosmeticeventFields[0].Descriptor()
	// cosmeticevent.CosmeticIDValidator is a validator for the "cosmetic_id" field. It is called by the builders before save.
	cosmeticevent.CosmeticIDValidator = cosmeticeventDescCosmeticID.Validators[0].(func(string) error)
	// cosmeticeventDescAction is the schema descriptor for action field.
	cosmeticeventDescAction := cosmeticeventFields[1].Descriptor()
	// cosmeticevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	cosmeticevent.ActionValidator = cosmeticeventDescAction.Validators[0].(func(string) error)
	// cosmeticeventDescCategory is the schema descriptor for category field.
	cosmeticeventDescCategory := cosmeticeventFields[2].Descriptor()
	// cosmeticevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	cosmeticevent.CategoryValidator = cosmeticeventDescCategory.Validators[0].(func(string) error)
	// cosmeticeventDescRarity is the schema descriptor for rarity field.
	cosmeticeventDescRarity := cosmeticeventFields[3].Descriptor()
	// cosmeticevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	cosmeticevent.RarityValidator = cosmeticeventDescRarity.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	streakeventMixin := schema.StreakEvent{}.Mixin()
	streakeventMixinFields0 := streakeventMixin[0].Fields()
	_ = streakeventMixinFields0
	streakeventFields := schema.StreakEvent{}.Fields()
	_ = streakeventFields
	// streakeventDescTimestamp is the schema descriptor for timestamp field.
	streakeventDescTimestamp := streakeventMixinFields0[1].Descriptor()
	// streakevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	streakevent.DefaultTimestamp = streakeventDescTimestamp.Default.(func() time.Time)
	// streakeventDescDate is the schema descriptor for date field.
	streakeventDescDate := streakeventFields[0].Descriptor()
	// streakevent.DateValidator is a validator for the "date" field. It is called by the builders before save.
	streakevent.DateValidator = streakeventDescDate.Validators[0].(func(string) error)
	// streakeventDescPreviousStreak is the schema descriptor for previous_streak field.
	streakeventDescPreviousStreak := streakeventFields[2].Descriptor()
	// streakevent.DefaultPreviousStreak holds the default value on creation for the previous_streak field.
	streakevent.DefaultPreviousStreak = streakeventDescPreviousStreak.Default.(int)
	// streakeventDescNewStreak is the schema descriptor for new_streak field.
	streakeventDescNewStreak := streakeventFields[3].Descriptor()
	// streakevent.DefaultNewStreak holds the default value on creation for the new_streak field.
	streakevent.DefaultNewStreak = streakeventDescNewStreak.Default.(int)
	// streakeventDescWasReset is the schema descriptor for was_reset field.
	streakeventDescWasReset := streakeventFields[4].Descriptor()
	// streakevent.DefaultWasReset holds the default value on creation for the was_reset field.
	streakevent.DefaultWasReset = streakeventDescWasReset.Default.(bool)
}
