package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// EventSequence is the single-row global event counter. The store seeds
// row 1 on open and claims numbers with an SQL-level increment, so the
// allocation runs on whatever connection the caller's client is bound
// to, including an open transaction.
type EventSequence struct {
	ent.Schema
}

func (EventSequence) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Int64("next_val").
			Min(1).
			Default(1),
	}
}
