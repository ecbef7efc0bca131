package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RegenEvent records an adaptive regeneration dispatch and its outcome.
// Regeneration is best-effort; these rows are the audit trail that makes
// failed dispatches independently retryable.
type RegenEvent struct {
	ent.Schema
}

func (RegenEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RegenEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("document_id").
			NotEmpty(),
		field.JSON("weak_topics", []string{}).
			Optional().
			Comment("Keywords of items below the needs-review threshold"),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
	}
}

func (RegenEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "learner_id"),
		index.Fields("success"),
	}
}
