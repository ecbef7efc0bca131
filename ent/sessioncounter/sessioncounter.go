// Code generated by ent, DO NOT EDIT.

package sessioncounter

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessioncounter type in the database.
	Label = "session_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldCompletedSessions holds the string denoting the completed_sessions field in the database.
	FieldCompletedSessions = "completed_sessions"
	// Table holds the table name of the sessioncounter in the database.
	Table = "session_counters"
)

// Columns holds all SQL columns for sessioncounter fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldLearnerID,
	FieldCompletedSessions,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	DocumentIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultCompletedSessions holds the default value on creation for the "completed_sessions" field.
	DefaultCompletedSessions int
	// CompletedSessionsValidator is a validator for the "completed_sessions" field. It is called by the builders before save.
	CompletedSessionsValidator func(int) error
)

// OrderOption defines the ordering options for the SessionCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByCompletedSessions orders the results by the completed_sessions field.
func ByCompletedSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedSessions, opts...).ToFunc()
}
