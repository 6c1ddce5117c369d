package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreakEvent records one daily streak update.
type StreakEvent struct {
	ent.Schema
}

func (StreakEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StreakEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			NotEmpty().
			Comment("Calendar date being recorded, YYYY-MM-DD"),
		field.Bool("criteria_met"),
		field.Int("previous_streak").Default(0),
		field.Int("new_streak").Default(0),
		field.Bool("was_reset").Default(false),
		field.Int("milestone").
			Optional().
			Nillable().
			Comment("Milestone day count hit by this update, if any"),
	}
}

func (StreakEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
