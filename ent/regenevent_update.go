// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/predicate"
	"github.com/memora-labs/memora/ent/regenevent"
)

// RegenEventUpdate is the builder for updating RegenEvent entities.
type RegenEventUpdate struct {
	config
	hooks    []Hook
	mutation *RegenEventMutation
}

// Where appends a list predicates to the RegenEventUpdate builder.
func (_u *RegenEventUpdate) Where(ps ...predicate.RegenEvent) *RegenEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RegenEventUpdate) SetLearnerID(v string) *RegenEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RegenEventUpdate) SetNillableLearnerID(v *string) *RegenEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *RegenEventUpdate) SetDocumentID(v string) *RegenEventUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *RegenEventUpdate) SetNillableDocumentID(v *string) *RegenEventUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *RegenEventUpdate) SetWeakTopics(v []string) *RegenEventUpdate {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *RegenEventUpdate) AppendWeakTopics(v []string) *RegenEventUpdate {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *RegenEventUpdate) ClearWeakTopics() *RegenEventUpdate {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RegenEventUpdate) SetSuccess(v bool) *RegenEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RegenEventUpdate) SetNillableSuccess(v *bool) *RegenEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RegenEventUpdate) SetErrorMessage(v string) *RegenEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RegenEventUpdate) SetNillableErrorMessage(v *string) *RegenEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RegenEventUpdate) ClearErrorMessage() *RegenEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the RegenEventMutation object of the builder.
func (_u *RegenEventUpdate) Mutation() *RegenEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegenEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegenEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegenEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegenEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegenEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := regenevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RegenEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := regenevent.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "RegenEvent.document_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RegenEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(regenevent.Table, regenevent.Columns, sqlgraph.NewFieldSpec(regenevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(regenevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(regenevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(regenevent.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, regenevent.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(regenevent.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(regenevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(regenevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(regenevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{regenevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegenEventUpdateOne is the builder for updating a single RegenEvent entity.
type RegenEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegenEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *RegenEventUpdateOne) SetLearnerID(v string) *RegenEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RegenEventUpdateOne) SetNillableLearnerID(v *string) *RegenEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *RegenEventUpdateOne) SetDocumentID(v string) *RegenEventUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *RegenEventUpdateOne) SetNillableDocumentID(v *string) *RegenEventUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *RegenEventUpdateOne) SetWeakTopics(v []string) *RegenEventUpdateOne {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *RegenEventUpdateOne) AppendWeakTopics(v []string) *RegenEventUpdateOne {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *RegenEventUpdateOne) ClearWeakTopics() *RegenEventUpdateOne {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RegenEventUpdateOne) SetSuccess(v bool) *RegenEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RegenEventUpdateOne) SetNillableSuccess(v *bool) *RegenEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RegenEventUpdateOne) SetErrorMessage(v string) *RegenEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RegenEventUpdateOne) SetNillableErrorMessage(v *string) *RegenEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RegenEventUpdateOne) ClearErrorMessage() *RegenEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the RegenEventMutation object of the builder.
func (_u *RegenEventUpdateOne) Mutation() *RegenEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RegenEventUpdate builder.
func (_u *RegenEventUpdateOne) Where(ps ...predicate.RegenEvent) *RegenEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegenEventUpdateOne) Select(field string, fields ...string) *RegenEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RegenEvent entity.
func (_u *RegenEventUpdateOne) Save(ctx context.Context) (*RegenEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegenEventUpdateOne) SaveX(ctx context.Context) *RegenEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegenEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegenEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegenEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := regenevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RegenEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := regenevent.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "RegenEvent.document_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RegenEventUpdateOne) sqlSave(ctx context.Context) (_node *RegenEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(regenevent.Table, regenevent.Columns, sqlgraph.NewFieldSpec(regenevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RegenEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, regenevent.FieldID)
		for _, f := range fields {
			if !regenevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != regenevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(regenevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(regenevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(regenevent.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, regenevent.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(regenevent.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(regenevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(regenevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(regenevent.FieldErrorMessage, field.TypeString)
	}
	_node = &RegenEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{regenevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
