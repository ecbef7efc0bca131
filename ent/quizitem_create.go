// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/quizitem"
)

// QuizItemCreate is the builder for creating a QuizItem entity.
type QuizItemCreate struct {
	config
	mutation *QuizItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *QuizItemCreate) SetItemID(v string) *QuizItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *QuizItemCreate) SetDocumentID(v string) *QuizItemCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *QuizItemCreate) SetLearnerID(v string) *QuizItemCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *QuizItemCreate) SetKeywords(v []string) *QuizItemCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetRetired sets the "retired" field.
func (_c *QuizItemCreate) SetRetired(v bool) *QuizItemCreate {
	_c.mutation.SetRetired(v)
	return _c
}

// SetNillableRetired sets the "retired" field if the given value is not nil.
func (_c *QuizItemCreate) SetNillableRetired(v *bool) *QuizItemCreate {
	if v != nil {
		_c.SetRetired(*v)
	}
	return _c
}

// Mutation returns the QuizItemMutation object of the builder.
func (_c *QuizItemCreate) Mutation() *QuizItemMutation {
	return _c.mutation
}

// Save creates the QuizItem in the database.
func (_c *QuizItemCreate) Save(ctx context.Context) (*QuizItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizItemCreate) SaveX(ctx context.Context) *QuizItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizItemCreate) defaults() {
	if _, ok := _c.mutation.Retired(); !ok {
		v := quizitem.DefaultRetired
		_c.mutation.SetRetired(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "QuizItem.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := quizitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "QuizItem.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := quizitem.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "QuizItem.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := quizitem.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "QuizItem.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Retired(); !ok {
		return &ValidationError{Name: "retired", err: errors.New(`ent: missing required field "QuizItem.retired"`)}
	}
	return nil
}

func (_c *QuizItemCreate) sqlSave(ctx context.Context) (*QuizItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizItemCreate) createSpec() (*QuizItem, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizitem.Table, sqlgraph.NewFieldSpec(quizitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(quizitem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(quizitem.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(quizitem.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(quizitem.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.Retired(); ok {
		_spec.SetField(quizitem.FieldRetired, field.TypeBool, value)
		_node.Retired = value
	}
	return _node, _spec
}

// QuizItemCreateBulk is the builder for creating many QuizItem entities in bulk.
type QuizItemCreateBulk struct {
	config
	err      error
	builders []*QuizItemCreate
}

// Save creates the QuizItem entities in the database.
func (_c *QuizItemCreateBulk) Save(ctx context.Context) ([]*QuizItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizItemCreateBulk) SaveX(ctx context.Context) []*QuizItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
