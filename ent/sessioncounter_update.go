// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/predicate"
	"github.com/memora-labs/memora/ent/sessioncounter"
)

// SessionCounterUpdate is the builder for updating SessionCounter entities.
type SessionCounterUpdate struct {
	config
	hooks    []Hook
	mutation *SessionCounterMutation
}

// Where appends a list predicates to the SessionCounterUpdate builder.
func (_u *SessionCounterUpdate) Where(ps ...predicate.SessionCounter) *SessionCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *SessionCounterUpdate) SetDocumentID(v string) *SessionCounterUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SessionCounterUpdate) SetNillableDocumentID(v *string) *SessionCounterUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionCounterUpdate) SetLearnerID(v string) *SessionCounterUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionCounterUpdate) SetNillableLearnerID(v *string) *SessionCounterUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCompletedSessions sets the "completed_sessions" field.
func (_u *SessionCounterUpdate) SetCompletedSessions(v int) *SessionCounterUpdate {
	_u.mutation.ResetCompletedSessions()
	_u.mutation.SetCompletedSessions(v)
	return _u
}

// SetNillableCompletedSessions sets the "completed_sessions" field if the given value is not nil.
func (_u *SessionCounterUpdate) SetNillableCompletedSessions(v *int) *SessionCounterUpdate {
	if v != nil {
		_u.SetCompletedSessions(*v)
	}
	return _u
}

// AddCompletedSessions adds value to the "completed_sessions" field.
func (_u *SessionCounterUpdate) AddCompletedSessions(v int) *SessionCounterUpdate {
	_u.mutation.AddCompletedSessions(v)
	return _u
}

// Mutation returns the SessionCounterMutation object of the builder.
func (_u *SessionCounterUpdate) Mutation() *SessionCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionCounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionCounterUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := sessioncounter.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessioncounter.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedSessions(); ok {
		if err := sessioncounter.CompletedSessionsValidator(v); err != nil {
			return &ValidationError{Name: "completed_sessions", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.completed_sessions": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessioncounter.Table, sessioncounter.Columns, sqlgraph.NewFieldSpec(sessioncounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(sessioncounter.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessioncounter.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedSessions(); ok {
		_spec.SetField(sessioncounter.FieldCompletedSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSessions(); ok {
		_spec.AddField(sessioncounter.FieldCompletedSessions, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioncounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionCounterUpdateOne is the builder for updating a single SessionCounter entity.
type SessionCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionCounterMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *SessionCounterUpdateOne) SetDocumentID(v string) *SessionCounterUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SessionCounterUpdateOne) SetNillableDocumentID(v *string) *SessionCounterUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionCounterUpdateOne) SetLearnerID(v string) *SessionCounterUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionCounterUpdateOne) SetNillableLearnerID(v *string) *SessionCounterUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCompletedSessions sets the "completed_sessions" field.
func (_u *SessionCounterUpdateOne) SetCompletedSessions(v int) *SessionCounterUpdateOne {
	_u.mutation.ResetCompletedSessions()
	_u.mutation.SetCompletedSessions(v)
	return _u
}

// SetNillableCompletedSessions sets the "completed_sessions" field if the given value is not nil.
func (_u *SessionCounterUpdateOne) SetNillableCompletedSessions(v *int) *SessionCounterUpdateOne {
	if v != nil {
		_u.SetCompletedSessions(*v)
	}
	return _u
}

// AddCompletedSessions adds value to the "completed_sessions" field.
func (_u *SessionCounterUpdateOne) AddCompletedSessions(v int) *SessionCounterUpdateOne {
	_u.mutation.AddCompletedSessions(v)
	return _u
}

// Mutation returns the SessionCounterMutation object of the builder.
func (_u *SessionCounterUpdateOne) Mutation() *SessionCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionCounterUpdate builder.
func (_u *SessionCounterUpdateOne) Where(ps ...predicate.SessionCounter) *SessionCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionCounterUpdateOne) Select(field string, fields ...string) *SessionCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionCounter entity.
func (_u *SessionCounterUpdateOne) Save(ctx context.Context) (*SessionCounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionCounterUpdateOne) SaveX(ctx context.Context) *SessionCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionCounterUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := sessioncounter.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessioncounter.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedSessions(); ok {
		if err := sessioncounter.CompletedSessionsValidator(v); err != nil {
			return &ValidationError{Name: "completed_sessions", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.completed_sessions": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionCounterUpdateOne) sqlSave(ctx context.Context) (_node *SessionCounter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessioncounter.Table, sessioncounter.Columns, sqlgraph.NewFieldSpec(sessioncounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessioncounter.FieldID)
		for _, f := range fields {
			if !sessioncounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessioncounter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(sessioncounter.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessioncounter.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedSessions(); ok {
		_spec.SetField(sessioncounter.FieldCompletedSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSessions(); ok {
		_spec.AddField(sessioncounter.FieldCompletedSessions, field.TypeInt, value)
	}
	_node = &SessionCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioncounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
