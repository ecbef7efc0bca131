// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/itemmastery"
)

// ItemMasteryCreate is the builder for creating a ItemMastery entity.
type ItemMasteryCreate struct {
	config
	mutation *ItemMasteryMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemMasteryCreate) SetItemID(v string) *ItemMasteryCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ItemMasteryCreate) SetLearnerID(v string) *ItemMasteryCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ItemMasteryCreate) SetDocumentID(v string) *ItemMasteryCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ItemMasteryCreate) SetScore(v float64) *ItemMasteryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemMasteryCreate) SetUpdatedAt(v time.Time) *ItemMasteryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemMasteryCreate) SetNillableUpdatedAt(v *time.Time) *ItemMasteryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ItemMasteryMutation object of the builder.
func (_c *ItemMasteryCreate) Mutation() *ItemMasteryMutation {
	return _c.mutation
}

// Save creates the ItemMastery in the database.
func (_c *ItemMasteryCreate) Save(ctx context.Context) (*ItemMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemMasteryCreate) SaveX(ctx context.Context) *ItemMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemMasteryCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := itemmastery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemMasteryCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ItemMastery.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := itemmastery.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ItemMastery.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := itemmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ItemMastery.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := itemmastery.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ItemMastery.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := itemmastery.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ItemMastery.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ItemMastery.updated_at"`)}
	}
	return nil
}

func (_c *ItemMasteryCreate) sqlSave(ctx context.Context) (*ItemMastery, error) {
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

func (_c *ItemMasteryCreate) createSpec() (*ItemMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemmastery.Table, sqlgraph.NewFieldSpec(itemmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(itemmastery.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(itemmastery.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(itemmastery.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(itemmastery.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(itemmastery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ItemMasteryCreateBulk is the builder for creating many ItemMastery entities in bulk.
type ItemMasteryCreateBulk struct {
	config
	err      error
	builders []*ItemMasteryCreate
}

// Save creates the ItemMastery entities in the database.
func (_c *ItemMasteryCreateBulk) Save(ctx context.Context) ([]*ItemMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMasteryMutation)
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
func (_c *ItemMasteryCreateBulk) SaveX(ctx context.Context) []*ItemMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
