package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeEvent records a weekly challenge completion.
type ChallengeEvent struct {
	ent.Schema
}

func (ChallengeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChallengeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("challenge_id").NotEmpty(),
		field.String("title").NotEmpty(),
		field.Int("target").Default(0),
		field.String("week_start").
			NotEmpty().
			Comment("Start date of the challenge week, YYYY-MM-DD"),
		field.Int("bonus_points").Default(0),
		field.String("achievement_id").
			Optional().
			Nillable().
			Comment("Achievement granted by the challenge reward, if any"),
	}
}

func (ChallengeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("challenge_id"),
		index.Fields("week_start"),
	}
}
