package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemMastery holds the current mastery score for one (item, learner)
// pair. It is a projection: always reproducible by replaying the item's
// attempt history, recomputed in full whenever new attempts arrive.
type ItemMastery struct {
	ent.Schema
}

func (ItemMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.String("document_id").
			NotEmpty(),
		field.Float("score").
			Min(0).
			Max(1).
			Comment("Recency-weighted correctness, rounded to 2 decimals"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ItemMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "learner_id").Unique(),
		index.Fields("document_id", "learner_id"),
	}
}
