// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "cosmetics_granted", Type: field.TypeJSON, Nullable: true},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2]},
			},
			{
				Name:    "achievementevent_achievement_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3]},
			},
			{
				Name:    "achievementevent_category",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[4]},
			},
			{
				Name:    "achievementevent_rarity",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[5]},
			},
		},
	}
	// ChallengeEventsColumns holds the columns for the "challenge_events" table.
	ChallengeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "target", Type: field.TypeInt, Default: 0},
		{Name: "week_start", Type: field.TypeString},
		{Name: "bonus_points", Type: field.TypeInt, Default: 0},
		{Name: "achievement_id", Type: field.TypeString, Nullable: true},
	}
	// ChallengeEventsTable holds the schema information for the "challenge_events" table.
	ChallengeEventsTable = &schema.Table{
		Name:       "challenge_events",
		Columns:    ChallengeEventsColumns,
		PrimaryKey: []*schema.Column{ChallengeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[1]},
			},
			{
				Name:    "challengeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[2]},
			},
			{
				Name:    "challengeevent_challenge_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[3]},
			},
			{
				Name:    "challengeevent_week_start",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[6]},
			},
		},
	}
	// CosmeticEventsColumns holds the columns for the "cosmetic_events" table.
	CosmeticEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "cosmetic_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "source_achievement", Type: field.TypeString, Nullable: true},
	}
	// CosmeticEventsTable holds the schema information for the "cosmetic_events" table.
	CosmeticEventsTable = &schema.Table{
		Name:       "cosmetic_events",
		Columns:    CosmeticEventsColumns,
		PrimaryKey: []*schema.Column{CosmeticEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cosmeticevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CosmeticEventsColumns[1]},
			},
			{
				Name:    "cosmeticevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CosmeticEventsColumns[2]},
			},
			{
				Name:    "cosmeticevent_cosmetic_id",
				Unique:  false,
				Columns: []*schema.Column{CosmeticEventsColumns[3]},
			},
			{
				Name:    "cosmeticevent_action",
				Unique:  false,
				Columns: []*schema.Column{CosmeticEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StreakEventsColumns holds the columns for the "streak_events" table.
	StreakEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "date", Type: field.TypeString},
		{Name: "criteria_met", Type: field.TypeBool},
		{Name: "previous_streak", Type: field.TypeInt, Default: 0},
		{Name: "new_streak", Type: field.TypeInt, Default: 0},
		{Name: "was_reset", Type: field.TypeBool, Default: false},
		{Name: "milestone", Type: field.TypeInt, Nullable: true},
	}
	// StreakEventsTable holds the schema information for the "streak_events" table.
	StreakEventsTable = &schema.Table{
		Name:       "streak_events",
		Columns:    StreakEventsColumns,
		PrimaryKey: []*schema.Column{StreakEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streakevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[1]},
			},
			{
				Name:    "streakevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[2]},
			},
			{
				Name:    "streakevent_date",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		ChallengeEventsTable,
		CosmeticEventsTable,
		SnapshotsTable,
		StreakEventsTable,
	}
)

func init() {
}
