// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memora-labs/memora/ent/documentmastery"
	"github.com/memora-labs/memora/ent/predicate"
)

// DocumentMasteryDelete is the builder for deleting a DocumentMastery entity.
type DocumentMasteryDelete struct {
	config
	hooks    []Hook
	mutation *DocumentMasteryMutation
}

// Where appends a list predicates to the DocumentMasteryDelete builder.
func (_d *DocumentMasteryDelete) Where(ps ...predicate.DocumentMastery) *DocumentMasteryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocumentMasteryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentMasteryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocumentMasteryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(documentmastery.Table, sqlgraph.NewFieldSpec(documentmastery.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DocumentMasteryDeleteOne is the builder for deleting a single DocumentMastery entity.
type DocumentMasteryDeleteOne struct {
	_d *DocumentMasteryDelete
}

// Where appends a list predicates to the DocumentMasteryDelete builder.
func (_d *DocumentMasteryDeleteOne) Where(ps ...predicate.DocumentMastery) *DocumentMasteryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocumentMasteryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{documentmastery.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentMasteryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
