package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CosmeticEvent records an inventory mutation: an item being added,
// equipped or unequipped.
type CosmeticEvent struct {
	ent.Schema
}

func (CosmeticEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CosmeticEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("cosmetic_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("add, equip or unequip"),
		field.String("category").NotEmpty(),
		field.String("rarity").NotEmpty(),
		field.String("source_achievement").
			Optional().
			Nillable().
			Comment("Achievement that granted the item, for add events"),
	}
}

func (CosmeticEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cosmetic_id"),
		index.Fields("action"),
	}
}
