// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/eventsequence"
)

// EventSequenceCreate is the builder for creating a EventSequence entity.
type EventSequenceCreate struct {
	config
	mutation *EventSequenceMutation
	hooks    []Hook
}

// SetNextVal sets the "next_val" field.
func (_c *EventSequenceCreate) SetNextVal(v int64) *EventSequenceCreate {
	_c.mutation.SetNextVal(v)
	return _c
}

// SetNillableNextVal sets the "next_val" field if the given value is not nil.
func (_c *EventSequenceCreate) SetNillableNextVal(v *int64) *EventSequenceCreate {
	if v != nil {
		_c.SetNextVal(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventSequenceCreate) SetID(v int) *EventSequenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EventSequenceMutation object of the builder.
func (_c *EventSequenceCreate) Mutation() *EventSequenceMutation {
	return _c.mutation
}

// Save creates the EventSequence in the database.
func (_c *EventSequenceCreate) Save(ctx context.Context) (*EventSequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventSequenceCreate) SaveX(ctx context.Context) *EventSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventSequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventSequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventSequenceCreate) defaults() {
	if _, ok := _c.mutation.NextVal(); !ok {
		v := eventsequence.DefaultNextVal
		_c.mutation.SetNextVal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventSequenceCreate) check() error {
	if _, ok := _c.mutation.NextVal(); !ok {
		return &ValidationError{Name: "next_val", err: errors.New(`ent: missing required field "EventSequence.next_val"`)}
	}
	if v, ok := _c.mutation.NextVal(); ok {
		if err := eventsequence.NextValValidator(v); err != nil {
			return &ValidationError{Name: "next_val", err: fmt.Errorf(`ent: validator failed for field "EventSequence.next_val": %w`, err)}
		}
	}
	return nil
}

func (_c *EventSequenceCreate) sqlSave(ctx context.Context) (*EventSequence, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventSequenceCreate) createSpec() (*EventSequence, *sqlgraph.CreateSpec) {
	var (
		_node = &EventSequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventsequence.Table, sqlgraph.NewFieldSpec(eventsequence.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NextVal(); ok {
		_spec.SetField(eventsequence.FieldNextVal, field.TypeInt64, value)
		_node.NextVal = value
	}
	return _node, _spec
}

// EventSequenceCreateBulk is the builder for creating many EventSequence entities in bulk.
type EventSequenceCreateBulk struct {
	config
	err      error
	builders []*EventSequenceCreate
}

// Save creates the EventSequence entities in the database.
func (_c *EventSequenceCreateBulk) Save(ctx context.Context) ([]*EventSequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventSequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventSequenceMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
func (_c *EventSequenceCreateBulk) SaveX(ctx context.Context) []*EventSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventSequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventSequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
