// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/reviewschedule"
)

// ReviewScheduleCreate is the builder for creating a ReviewSchedule entity.
type ReviewScheduleCreate struct {
	config
	mutation *ReviewScheduleMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ReviewScheduleCreate) SetDocumentID(v string) *ReviewScheduleCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReviewScheduleCreate) SetLearnerID(v string) *ReviewScheduleCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewScheduleCreate) SetIntervalDays(v int) *ReviewScheduleCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableIntervalDays(v *int) *ReviewScheduleCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetNextReviewDate sets the "next_review_date" field.
func (_c *ReviewScheduleCreate) SetNextReviewDate(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetNextReviewDate(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ReviewScheduleCreate) SetVersion(v int64) *ReviewScheduleCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableVersion(v *int64) *ReviewScheduleCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewScheduleCreate) SetUpdatedAt(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableUpdatedAt(v *time.Time) *ReviewScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_c *ReviewScheduleCreate) Mutation() *ReviewScheduleMutation {
	return _c.mutation
}

// Save creates the ReviewSchedule in the database.
func (_c *ReviewScheduleCreate) Save(ctx context.Context) (*ReviewSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewScheduleCreate) SaveX(ctx context.Context) *ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewScheduleCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewschedule.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := reviewschedule.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewScheduleCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ReviewSchedule.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := reviewschedule.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewSchedule.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := reviewschedule.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewSchedule.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextReviewDate(); !ok {
		return &ValidationError{Name: "next_review_date", err: errors.New(`ent: missing required field "ReviewSchedule.next_review_date"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ReviewSchedule.version"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewSchedule.updated_at"`)}
	}
	return nil
}

func (_c *ReviewScheduleCreate) sqlSave(ctx context.Context) (*ReviewSchedule, error) {
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

func (_c *ReviewScheduleCreate) createSpec() (*ReviewSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewschedule.Table, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(reviewschedule.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(reviewschedule.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewschedule.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(reviewschedule.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReviewScheduleCreateBulk is the builder for creating many ReviewSchedule entities in bulk.
type ReviewScheduleCreateBulk struct {
	config
	err      error
	builders []*ReviewScheduleCreate
}

// Save creates the ReviewSchedule entities in the database.
func (_c *ReviewScheduleCreateBulk) Save(ctx context.Context) ([]*ReviewSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewScheduleMutation)
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
func (_c *ReviewScheduleCreateBulk) SaveX(ctx context.Context) []*ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
