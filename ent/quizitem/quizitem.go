// Code generated by ent, DO NOT EDIT.

package quizitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizitem type in the database.
	Label = "quiz_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldRetired holds the string denoting the retired field in the database.
	FieldRetired = "retired"
	// Table holds the table name of the quizitem in the database.
	Table = "quiz_items"
)

// Columns holds all SQL columns for quizitem fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldDocumentID,
	FieldLearnerID,
	FieldKeywords,
	FieldRetired,
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
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	DocumentIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultRetired holds the default value on creation for the "retired" field.
	DefaultRetired bool
)

// OrderOption defines the ordering options for the QuizItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByRetired orders the results by the retired field.
func ByRetired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetired, opts...).ToFunc()
}
