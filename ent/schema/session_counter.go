package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionCounter counts completed study sessions per (document, learner)
// pair. The count only ever moves up, exactly once per completed
// submission; the adaptive trigger fires on every Nth value.
type SessionCounter struct {
	ent.Schema
}

func (SessionCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.Int("completed_sessions").
			Min(0).
			Default(0),
	}
}

func (SessionCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "learner_id").Unique(),
	}
}
