package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answer a learner gave to a quiz item.
// Attempts are append-only; mastery scores are projections over them and
// never the other way around. The mixin timestamp is the attempt's
// occurred_at.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Comment("Quiz item the answer was for"),
		field.String("learner_id").
			NotEmpty(),
		field.String("document_id").
			NotEmpty().
			Comment("Document the item belongs to"),
		field.String("session_id").
			NotEmpty().
			Comment("Submission this attempt arrived in"),
		field.Bool("correct"),
		field.Float("time_taken_secs").
			Min(0).
			Comment("Seconds the learner took to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "learner_id"),
		index.Fields("document_id", "learner_id"),
		index.Fields("session_id"),
	}
}
