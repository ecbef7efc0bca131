package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizItem is the engine's read model of a quiz question. The CRUD layer
// owns the full question rows (text, options, difficulty); the engine only
// needs membership in a document's item set and the topic keywords used
// for weak-topic targeting. Retired items drop out of the document
// mastery aggregate.
type QuizItem struct {
	ent.Schema
}

func (QuizItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty(),
		field.String("document_id").
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.JSON("keywords", []string{}).
			Optional().
			Comment("Topic keywords attached at generation time"),
		field.Bool("retired").
			Default(false),
	}
}

func (QuizItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "learner_id").Unique(),
		index.Fields("document_id", "learner_id"),
	}
}
