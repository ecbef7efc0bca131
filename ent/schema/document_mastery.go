package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentMastery holds the aggregate mastery score for one
// (document, learner) pair: the unweighted mean of the document's
// non-retired item scores, recomputed whenever any of them changes.
type DocumentMastery struct {
	ent.Schema
}

func (DocumentMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.Float("score").
			Min(0).
			Max(1),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (DocumentMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "learner_id").Unique(),
	}
}
