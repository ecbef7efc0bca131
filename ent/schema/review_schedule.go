package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewSchedule holds the spaced-repetition state for one
// (document, learner) pair. interval_days and next_review_date are always
// written together; the version field guards read-modify-write updates so
// two submissions finishing close together cannot overwrite each other
// with a stale interval.
type ReviewSchedule struct {
	ent.Schema
}

func (ReviewSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.Int("interval_days").
			Min(1).
			Default(1),
		field.Time("next_review_date"),
		field.Int64("version").
			Default(0).
			Comment("Optimistic concurrency counter, bumped on every update"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ReviewSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "learner_id").Unique(),
		index.Fields("next_review_date"),
	}
}
