// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/sessioncounter"
)

// SessionCounterCreate is the builder for creating a SessionCounter entity.
type SessionCounterCreate struct {
	config
	mutation *SessionCounterMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *SessionCounterCreate) SetDocumentID(v string) *SessionCounterCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *SessionCounterCreate) SetLearnerID(v string) *SessionCounterCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCompletedSessions sets the "completed_sessions" field.
func (_c *SessionCounterCreate) SetCompletedSessions(v int) *SessionCounterCreate {
	_c.mutation.SetCompletedSessions(v)
	return _c
}

// SetNillableCompletedSessions sets the "completed_sessions" field if the given value is not nil.
func (_c *SessionCounterCreate) SetNillableCompletedSessions(v *int) *SessionCounterCreate {
	if v != nil {
		_c.SetCompletedSessions(*v)
	}
	return _c
}

// Mutation returns the SessionCounterMutation object of the builder.
func (_c *SessionCounterCreate) Mutation() *SessionCounterMutation {
	return _c.mutation
}

// Save creates the SessionCounter in the database.
func (_c *SessionCounterCreate) Save(ctx context.Context) (*SessionCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCounterCreate) SaveX(ctx context.Context) *SessionCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCounterCreate) defaults() {
	if _, ok := _c.mutation.CompletedSessions(); !ok {
		v := sessioncounter.DefaultCompletedSessions
		_c.mutation.SetCompletedSessions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCounterCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "SessionCounter.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := sessioncounter.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SessionCounter.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := sessioncounter.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedSessions(); !ok {
		return &ValidationError{Name: "completed_sessions", err: errors.New(`ent: missing required field "SessionCounter.completed_sessions"`)}
	}
	if v, ok := _c.mutation.CompletedSessions(); ok {
		if err := sessioncounter.CompletedSessionsValidator(v); err != nil {
			return &ValidationError{Name: "completed_sessions", err: fmt.Errorf(`ent: validator failed for field "SessionCounter.completed_sessions": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCounterCreate) sqlSave(ctx context.Context) (*SessionCounter, error) {
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

func (_c *SessionCounterCreate) createSpec() (*SessionCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessioncounter.Table, sqlgraph.NewFieldSpec(sessioncounter.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(sessioncounter.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(sessioncounter.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.CompletedSessions(); ok {
		_spec.SetField(sessioncounter.FieldCompletedSessions, field.TypeInt, value)
		_node.CompletedSessions = value
	}
	return _node, _spec
}

// SessionCounterCreateBulk is the builder for creating many SessionCounter entities in bulk.
type SessionCounterCreateBulk struct {
	config
	err      error
	builders []*SessionCounterCreate
}

// Save creates the SessionCounter entities in the database.
func (_c *SessionCounterCreateBulk) Save(ctx context.Context) ([]*SessionCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionCounterMutation)
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
func (_c *SessionCounterCreateBulk) SaveX(ctx context.Context) []*SessionCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
