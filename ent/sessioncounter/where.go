// Code generated by ent, DO NOT EDIT.

package sessioncounter

import (
	"entgo.io/ent/dialect/sql"
	"github.com/memora-labs/memora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldDocumentID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldLearnerID, v))
}

// CompletedSessions applies equality check predicate on the "completed_sessions" field. It's identical to CompletedSessionsEQ.
func CompletedSessions(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldCompletedSessions, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldContainsFold(FieldDocumentID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldContainsFold(FieldLearnerID, v))
}

// CompletedSessionsEQ applies the EQ predicate on the "completed_sessions" field.
func CompletedSessionsEQ(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldCompletedSessions, v))
}

// CompletedSessionsNEQ applies the NEQ predicate on the "completed_sessions" field.
func CompletedSessionsNEQ(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldCompletedSessions, v))
}

// CompletedSessionsIn applies the In predicate on the "completed_sessions" field.
func CompletedSessionsIn(vs ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldCompletedSessions, vs...))
}

// CompletedSessionsNotIn applies the NotIn predicate on the "completed_sessions" field.
func CompletedSessionsNotIn(vs ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldCompletedSessions, vs...))
}

// CompletedSessionsGT applies the GT predicate on the "completed_sessions" field.
func CompletedSessionsGT(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldCompletedSessions, v))
}

// CompletedSessionsGTE applies the GTE predicate on the "completed_sessions" field.
func CompletedSessionsGTE(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldCompletedSessions, v))
}

// CompletedSessionsLT applies the LT predicate on the "completed_sessions" field.
func CompletedSessionsLT(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldCompletedSessions, v))
}

// CompletedSessionsLTE applies the LTE predicate on the "completed_sessions" field.
func CompletedSessionsLTE(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldCompletedSessions, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionCounter) predicate.SessionCounter {
	return predicate.SessionCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionCounter) predicate.SessionCounter {
	return predicate.SessionCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionCounter) predicate.SessionCounter {
	return predicate.SessionCounter(sql.NotPredicates(p))
}
