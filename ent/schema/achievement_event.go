package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records a single achievement unlock.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_id").NotEmpty(),
		field.String("category").NotEmpty(),
		field.String("rarity").NotEmpty(),
		field.String("source").
			NotEmpty().
			Comment("What triggered the unlock: metric, streak, challenge or manual"),
		field.JSON("cosmetics_granted", []string{}).
			Optional().
			Comment("IDs of cosmetics granted by this unlock"),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("achievement_id"),
		index.Fields("category"),
		index.Fields("rarity"),
	}
}
