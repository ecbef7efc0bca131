// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memora-labs/memora/ent/sessioncounter"
)

// SessionCounter is the model entity for the SessionCounter schema.
type SessionCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// CompletedSessions holds the value of the "completed_sessions" field.
	CompletedSessions int `json:"completed_sessions,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessioncounter.FieldID, sessioncounter.FieldCompletedSessions:
			values[i] = new(sql.NullInt64)
		case sessioncounter.FieldDocumentID, sessioncounter.FieldLearnerID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionCounter fields.
func (_m *SessionCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessioncounter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessioncounter.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case sessioncounter.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case sessioncounter.FieldCompletedSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_sessions", values[i])
			} else if value.Valid {
				_m.CompletedSessions = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionCounter.
// This includes values selected through modifiers, order, etc.
func (_m *SessionCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionCounter.
// Note that you need to call SessionCounter.Unwrap() before calling this method if this SessionCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionCounter) Update() *SessionCounterUpdateOne {
	return NewSessionCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionCounter) Unwrap() *SessionCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionCounter) String() string {
	var builder strings.Builder
	builder.WriteString("SessionCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("completed_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedSessions))
	builder.WriteByte(')')
	return builder.String()
}

// SessionCounters is a parsable slice of SessionCounter.
type SessionCounters []*SessionCounter
