// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/documentmastery"
	"github.com/memora-labs/memora/ent/predicate"
)

// DocumentMasteryUpdate is the builder for updating DocumentMastery entities.
type DocumentMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMasteryMutation
}

// Where appends a list predicates to the DocumentMasteryUpdate builder.
func (_u *DocumentMasteryUpdate) Where(ps ...predicate.DocumentMastery) *DocumentMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentMasteryUpdate) SetDocumentID(v string) *DocumentMasteryUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentMasteryUpdate) SetNillableDocumentID(v *string) *DocumentMasteryUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *DocumentMasteryUpdate) SetLearnerID(v string) *DocumentMasteryUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DocumentMasteryUpdate) SetNillableLearnerID(v *string) *DocumentMasteryUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DocumentMasteryUpdate) SetScore(v float64) *DocumentMasteryUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DocumentMasteryUpdate) SetNillableScore(v *float64) *DocumentMasteryUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DocumentMasteryUpdate) AddScore(v float64) *DocumentMasteryUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentMasteryUpdate) SetUpdatedAt(v time.Time) *DocumentMasteryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DocumentMasteryMutation object of the builder.
func (_u *DocumentMasteryUpdate) Mutation() *DocumentMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentMasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentMasteryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentMasteryUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := documentmastery.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := documentmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := documentmastery.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.score": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentmastery.Table, documentmastery.Columns, sqlgraph.NewFieldSpec(documentmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(documentmastery.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(documentmastery.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(documentmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(documentmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentMasteryUpdateOne is the builder for updating a single DocumentMastery entity.
type DocumentMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMasteryMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentMasteryUpdateOne) SetDocumentID(v string) *DocumentMasteryUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentMasteryUpdateOne) SetNillableDocumentID(v *string) *DocumentMasteryUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *DocumentMasteryUpdateOne) SetLearnerID(v string) *DocumentMasteryUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DocumentMasteryUpdateOne) SetNillableLearnerID(v *string) *DocumentMasteryUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DocumentMasteryUpdateOne) SetScore(v float64) *DocumentMasteryUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DocumentMasteryUpdateOne) SetNillableScore(v *float64) *DocumentMasteryUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DocumentMasteryUpdateOne) AddScore(v float64) *DocumentMasteryUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentMasteryUpdateOne) SetUpdatedAt(v time.Time) *DocumentMasteryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DocumentMasteryMutation object of the builder.
func (_u *DocumentMasteryUpdateOne) Mutation() *DocumentMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentMasteryUpdate builder.
func (_u *DocumentMasteryUpdateOne) Where(ps ...predicate.DocumentMastery) *DocumentMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentMasteryUpdateOne) Select(field string, fields ...string) *DocumentMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentMastery entity.
func (_u *DocumentMasteryUpdateOne) Save(ctx context.Context) (*DocumentMastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentMasteryUpdateOne) SaveX(ctx context.Context) *DocumentMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentMasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := documentmastery.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := documentmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := documentmastery.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.score": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentMasteryUpdateOne) sqlSave(ctx context.Context) (_node *DocumentMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentmastery.Table, documentmastery.Columns, sqlgraph.NewFieldSpec(documentmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentmastery.FieldID)
		for _, f := range fields {
			if !documentmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentmastery.FieldID {
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
		_spec.SetField(documentmastery.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(documentmastery.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(documentmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(documentmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DocumentMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
