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
	"github.com/memora-labs/memora/ent/predicate"
	"github.com/memora-labs/memora/ent/reviewschedule"
)

// ReviewScheduleUpdate is the builder for updating ReviewSchedule entities.
type ReviewScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewScheduleMutation
}

// Where appends a list predicates to the ReviewScheduleUpdate builder.
func (_u *ReviewScheduleUpdate) Where(ps ...predicate.ReviewSchedule) *ReviewScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ReviewScheduleUpdate) SetDocumentID(v string) *ReviewScheduleUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableDocumentID(v *string) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewScheduleUpdate) SetLearnerID(v string) *ReviewScheduleUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableLearnerID(v *string) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewScheduleUpdate) SetIntervalDays(v int) *ReviewScheduleUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableIntervalDays(v *int) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewScheduleUpdate) AddIntervalDays(v int) *ReviewScheduleUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewScheduleUpdate) SetNextReviewDate(v time.Time) *ReviewScheduleUpdate {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableNextReviewDate(v *time.Time) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReviewScheduleUpdate) SetVersion(v int64) *ReviewScheduleUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableVersion(v *int64) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReviewScheduleUpdate) AddVersion(v int64) *ReviewScheduleUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewScheduleUpdate) SetUpdatedAt(v time.Time) *ReviewScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_u *ReviewScheduleUpdate) Mutation() *ReviewScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewScheduleUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := reviewschedule.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewschedule.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewschedule.Table, reviewschedule.Columns, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(reviewschedule.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewschedule.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewschedule.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reviewschedule.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reviewschedule.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewScheduleUpdateOne is the builder for updating a single ReviewSchedule entity.
type ReviewScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewScheduleMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ReviewScheduleUpdateOne) SetDocumentID(v string) *ReviewScheduleUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableDocumentID(v *string) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewScheduleUpdateOne) SetLearnerID(v string) *ReviewScheduleUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableLearnerID(v *string) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewScheduleUpdateOne) SetIntervalDays(v int) *ReviewScheduleUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableIntervalDays(v *int) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewScheduleUpdateOne) AddIntervalDays(v int) *ReviewScheduleUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewScheduleUpdateOne) SetNextReviewDate(v time.Time) *ReviewScheduleUpdateOne {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableNextReviewDate(v *time.Time) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReviewScheduleUpdateOne) SetVersion(v int64) *ReviewScheduleUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableVersion(v *int64) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReviewScheduleUpdateOne) AddVersion(v int64) *ReviewScheduleUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewScheduleUpdateOne) SetUpdatedAt(v time.Time) *ReviewScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_u *ReviewScheduleUpdateOne) Mutation() *ReviewScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewScheduleUpdate builder.
func (_u *ReviewScheduleUpdateOne) Where(ps ...predicate.ReviewSchedule) *ReviewScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewScheduleUpdateOne) Select(field string, fields ...string) *ReviewScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewSchedule entity.
func (_u *ReviewScheduleUpdateOne) Save(ctx context.Context) (*ReviewSchedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewScheduleUpdateOne) SaveX(ctx context.Context) *ReviewSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := reviewschedule.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewschedule.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewScheduleUpdateOne) sqlSave(ctx context.Context) (_node *ReviewSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewschedule.Table, reviewschedule.Columns, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewschedule.FieldID)
		for _, f := range fields {
			if !reviewschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewschedule.FieldID {
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
		_spec.SetField(reviewschedule.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewschedule.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewschedule.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reviewschedule.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reviewschedule.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
