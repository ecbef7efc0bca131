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
	"github.com/memora-labs/memora/ent/itemmastery"
	"github.com/memora-labs/memora/ent/predicate"
)

// ItemMasteryUpdate is the builder for updating ItemMastery entities.
type ItemMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMasteryMutation
}

// Where appends a list predicates to the ItemMasteryUpdate builder.
func (_u *ItemMasteryUpdate) Where(ps ...predicate.ItemMastery) *ItemMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemMasteryUpdate) SetItemID(v string) *ItemMasteryUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemMasteryUpdate) SetNillableItemID(v *string) *ItemMasteryUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ItemMasteryUpdate) SetLearnerID(v string) *ItemMasteryUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ItemMasteryUpdate) SetNillableLearnerID(v *string) *ItemMasteryUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ItemMasteryUpdate) SetDocumentID(v string) *ItemMasteryUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ItemMasteryUpdate) SetNillableDocumentID(v *string) *ItemMasteryUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ItemMasteryUpdate) SetScore(v float64) *ItemMasteryUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ItemMasteryUpdate) SetNillableScore(v *float64) *ItemMasteryUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ItemMasteryUpdate) AddScore(v float64) *ItemMasteryUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemMasteryUpdate) SetUpdatedAt(v time.Time) *ItemMasteryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemMasteryMutation object of the builder.
func (_u *ItemMasteryUpdate) Mutation() *ItemMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemMasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemMasteryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itemmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemMasteryUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := itemmastery.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := itemmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := itemmastery.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := itemmastery.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.score": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemmastery.Table, itemmastery.Columns, sqlgraph.NewFieldSpec(itemmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(itemmastery.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(itemmastery.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(itemmastery.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(itemmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(itemmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itemmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemMasteryUpdateOne is the builder for updating a single ItemMastery entity.
type ItemMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMasteryMutation
}

// SetItemID sets the "item_id" field.
func (_u *ItemMasteryUpdateOne) SetItemID(v string) *ItemMasteryUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemMasteryUpdateOne) SetNillableItemID(v *string) *ItemMasteryUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ItemMasteryUpdateOne) SetLearnerID(v string) *ItemMasteryUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ItemMasteryUpdateOne) SetNillableLearnerID(v *string) *ItemMasteryUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ItemMasteryUpdateOne) SetDocumentID(v string) *ItemMasteryUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ItemMasteryUpdateOne) SetNillableDocumentID(v *string) *ItemMasteryUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ItemMasteryUpdateOne) SetScore(v float64) *ItemMasteryUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ItemMasteryUpdateOne) SetNillableScore(v *float64) *ItemMasteryUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ItemMasteryUpdateOne) AddScore(v float64) *ItemMasteryUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemMasteryUpdateOne) SetUpdatedAt(v time.Time) *ItemMasteryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemMasteryMutation object of the builder.
func (_u *ItemMasteryUpdateOne) Mutation() *ItemMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemMasteryUpdate builder.
func (_u *ItemMasteryUpdateOne) Where(ps ...predicate.ItemMastery) *ItemMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemMasteryUpdateOne) Select(field string, fields ...string) *ItemMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemMastery entity.
func (_u *ItemMasteryUpdateOne) Save(ctx context.Context) (*ItemMastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemMasteryUpdateOne) SaveX(ctx context.Context) *ItemMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemMasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itemmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := itemmastery.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := itemmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := itemmastery.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := itemmastery.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.score": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemMasteryUpdateOne) sqlSave(ctx context.Context) (_node *ItemMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemmastery.Table, itemmastery.Columns, sqlgraph.NewFieldSpec(itemmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemmastery.FieldID)
		for _, f := range fields {
			if !itemmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemmastery.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(itemmastery.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(itemmastery.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(itemmastery.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(itemmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(itemmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itemmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ItemMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
