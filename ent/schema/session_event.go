package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one completed study session (a quiz submission
// with at least one answer). One row per submission, written after the
// mastery and schedule updates commit.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID assigned when the submission is processed"),
		field.String("learner_id").
			NotEmpty(),
		field.String("document_id").
			NotEmpty(),
		field.Int("questions_answered").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Float("score").
			Comment("Fraction of answered questions that were correct"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("document_id", "learner_id"),
	}
}
