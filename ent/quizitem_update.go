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
	"github.com/memora-labs/memora/ent/quizitem"
)

// QuizItemUpdate is the builder for updating QuizItem entities.
type QuizItemUpdate struct {
	config
	hooks    []Hook
	mutation *QuizItemMutation
}

// Where appends a list predicates to the QuizItemUpdate builder.
func (_u *QuizItemUpdate) Where(ps ...predicate.QuizItem) *QuizItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *QuizItemUpdate) SetItemID(v string) *QuizItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *QuizItemUpdate) SetNillableItemID(v *string) *QuizItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *QuizItemUpdate) SetDocumentID(v string) *QuizItemUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *QuizItemUpdate) SetNillableDocumentID(v *string) *QuizItemUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *QuizItemUpdate) SetLearnerID(v string) *QuizItemUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *QuizItemUpdate) SetNillableLearnerID(v *string) *QuizItemUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *QuizItemUpdate) SetKeywords(v []string) *QuizItemUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *QuizItemUpdate) AppendKeywords(v []string) *QuizItemUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *QuizItemUpdate) ClearKeywords() *QuizItemUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetRetired sets the "retired" field.
func (_u *QuizItemUpdate) SetRetired(v bool) *QuizItemUpdate {
	_u.mutation.SetRetired(v)
	return _u
}

// SetNillableRetired sets the "retired" field if the given value is not nil.
func (_u *QuizItemUpdate) SetNillableRetired(v *bool) *QuizItemUpdate {
	if v != nil {
		_u.SetRetired(*v)
	}
	return _u
}

// Mutation returns the QuizItemMutation object of the builder.
func (_u *QuizItemUpdate) Mutation() *QuizItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizItemUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := quizitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := quizitem.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := quizitem.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizitem.Table, quizitem.Columns, sqlgraph.NewFieldSpec(quizitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(quizitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(quizitem.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(quizitem.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(quizitem.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizitem.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(quizitem.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Retired(); ok {
		_spec.SetField(quizitem.FieldRetired, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizItemUpdateOne is the builder for updating a single QuizItem entity.
type QuizItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *QuizItemUpdateOne) SetItemID(v string) *QuizItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *QuizItemUpdateOne) SetNillableItemID(v *string) *QuizItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *QuizItemUpdateOne) SetDocumentID(v string) *QuizItemUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *QuizItemUpdateOne) SetNillableDocumentID(v *string) *QuizItemUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *QuizItemUpdateOne) SetLearnerID(v string) *QuizItemUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *QuizItemUpdateOne) SetNillableLearnerID(v *string) *QuizItemUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *QuizItemUpdateOne) SetKeywords(v []string) *QuizItemUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *QuizItemUpdateOne) AppendKeywords(v []string) *QuizItemUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *QuizItemUpdateOne) ClearKeywords() *QuizItemUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetRetired sets the "retired" field.
func (_u *QuizItemUpdateOne) SetRetired(v bool) *QuizItemUpdateOne {
	_u.mutation.SetRetired(v)
	return _u
}

// SetNillableRetired sets the "retired" field if the given value is not nil.
func (_u *QuizItemUpdateOne) SetNillableRetired(v *bool) *QuizItemUpdateOne {
	if v != nil {
		_u.SetRetired(*v)
	}
	return _u
}

// Mutation returns the QuizItemMutation object of the builder.
func (_u *QuizItemUpdateOne) Mutation() *QuizItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizItemUpdate builder.
func (_u *QuizItemUpdateOne) Where(ps ...predicate.QuizItem) *QuizItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizItemUpdateOne) Select(field string, fields ...string) *QuizItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizItem entity.
func (_u *QuizItemUpdateOne) Save(ctx context.Context) (*QuizItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizItemUpdateOne) SaveX(ctx context.Context) *QuizItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := quizitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := quizitem.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := quizitem.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizItemUpdateOne) sqlSave(ctx context.Context) (_node *QuizItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizitem.Table, quizitem.Columns, sqlgraph.NewFieldSpec(quizitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizitem.FieldID)
		for _, f := range fields {
			if !quizitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizitem.FieldID {
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
		_spec.SetField(quizitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(quizitem.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(quizitem.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(quizitem.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizitem.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(quizitem.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Retired(); ok {
		_spec.SetField(quizitem.FieldRetired, field.TypeBool, value)
	}
	_node = &QuizItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
