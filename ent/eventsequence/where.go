// Code generated by ent, DO NOT EDIT.

package eventsequence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/memora-labs/memora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldLTE(FieldID, id))
}

// NextVal applies equality check predicate on the "next_val" field. It's identical to NextValEQ.
func NextVal(v int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldEQ(FieldNextVal, v))
}

// NextValEQ applies the EQ predicate on the "next_val" field.
func NextValEQ(v int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldEQ(FieldNextVal, v))
}

// NextValNEQ applies the NEQ predicate on the "next_val" field.
func NextValNEQ(v int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldNEQ(FieldNextVal, v))
}

// NextValIn applies the In predicate on the "next_val" field.
func NextValIn(vs ...int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldIn(FieldNextVal, vs...))
}

// NextValNotIn applies the NotIn predicate on the "next_val" field.
func NextValNotIn(vs ...int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldNotIn(FieldNextVal, vs...))
}

// NextValGT applies the GT predicate on the "next_val" field.
func NextValGT(v int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldGT(FieldNextVal, v))
}

// NextValGTE applies the GTE predicate on the "next_val" field.
func NextValGTE(v int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldGTE(FieldNextVal, v))
}

// NextValLT applies the LT predicate on the "next_val" field.
func NextValLT(v int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldLT(FieldNextVal, v))
}

// NextValLTE applies the LTE predicate on the "next_val" field.
func NextValLTE(v int64) predicate.EventSequence {
	return predicate.EventSequence(sql.FieldLTE(FieldNextVal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventSequence) predicate.EventSequence {
	return predicate.EventSequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventSequence) predicate.EventSequence {
	return predicate.EventSequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventSequence) predicate.EventSequence {
	return predicate.EventSequence(sql.NotPredicates(p))
}
