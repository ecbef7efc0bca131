// Code generated by ent, DO NOT EDIT.

package eventsequence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventsequence type in the database.
	Label = "event_sequence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNextVal holds the string denoting the next_val field in the database.
	FieldNextVal = "next_val"
	// Table holds the table name of the eventsequence in the database.
	Table = "event_sequences"
)

// Columns holds all SQL columns for eventsequence fields.
var Columns = []string{
	FieldID,
	FieldNextVal,
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
	// DefaultNextVal holds the default value on creation for the "next_val" field.
	DefaultNextVal int64
	// NextValValidator is a validator for the "next_val" field. It is called by the builders before save.
	NextValValidator func(int64) error
)

// OrderOption defines the ordering options for the EventSequence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNextVal orders the results by the next_val field.
func ByNextVal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextVal, opts...).ToFunc()
}
