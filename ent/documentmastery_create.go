// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/documentmastery"
)

// DocumentMasteryCreate is the builder for creating a DocumentMastery entity.
type DocumentMasteryCreate struct {
	config
	mutation *DocumentMasteryMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentMasteryCreate) SetDocumentID(v string) *DocumentMasteryCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *DocumentMasteryCreate) SetLearnerID(v string) *DocumentMasteryCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *DocumentMasteryCreate) SetScore(v float64) *DocumentMasteryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentMasteryCreate) SetUpdatedAt(v time.Time) *DocumentMasteryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentMasteryCreate) SetNillableUpdatedAt(v *time.Time) *DocumentMasteryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DocumentMasteryMutation object of the builder.
func (_c *DocumentMasteryCreate) Mutation() *DocumentMasteryMutation {
	return _c.mutation
}

// Save creates the DocumentMastery in the database.
func (_c *DocumentMasteryCreate) Save(ctx context.Context) (*DocumentMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentMasteryCreate) SaveX(ctx context.Context) *DocumentMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentMasteryCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documentmastery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentMasteryCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentMastery.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := documentmastery.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "DocumentMastery.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := documentmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "DocumentMastery.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := documentmastery.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "DocumentMastery.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentMastery.updated_at"`)}
	}
	return nil
}

func (_c *DocumentMasteryCreate) sqlSave(ctx context.Context) (*DocumentMastery, error) {
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

func (_c *DocumentMasteryCreate) createSpec() (*DocumentMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentmastery.Table, sqlgraph.NewFieldSpec(documentmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(documentmastery.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(documentmastery.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(documentmastery.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documentmastery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DocumentMasteryCreateBulk is the builder for creating many DocumentMastery entities in bulk.
type DocumentMasteryCreateBulk struct {
	config
	err      error
	builders []*DocumentMasteryCreate
}

// Save creates the DocumentMastery entities in the database.
func (_c *DocumentMasteryCreateBulk) Save(ctx context.Context) ([]*DocumentMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMasteryMutation)
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
func (_c *DocumentMasteryCreateBulk) SaveX(ctx context.Context) []*DocumentMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
