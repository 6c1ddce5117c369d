// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anuraag/pipkin/ent/challengeevent"
	"github.com/anuraag/pipkin/ent/predicate"
)

// ChallengeEventUpdate is the builder for updating ChallengeEvent entities.
type ChallengeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdate) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdate) SetChallengeID(v string) *ChallengeEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableChallengeID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChallengeEventUpdate) SetTitle(v string) *ChallengeEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableTitle(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *ChallengeEventUpdate) SetTarget(v int) *ChallengeEventUpdate {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableTarget(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *ChallengeEventUpdate) AddTarget(v int) *ChallengeEventUpdate {
	_u.mutation.AddTarget(v)
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *ChallengeEventUpdate) SetWeekStart(v string) *ChallengeEventUpdate {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableWeekStart(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetBonusPoints sets the "bonus_points" field.
func (_u *ChallengeEventUpdate) SetBonusPoints(v int) *ChallengeEventUpdate {
	_u.mutation.ResetBonusPoints()
	_u.mutation.SetBonusPoints(v)
	return _u
}

// SetNillableBonusPoints sets the "bonus_points" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableBonusPoints(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetBonusPoints(*v)
	}
	return _u
}

// AddBonusPoints adds value to the "bonus_points" field.
func (_u *ChallengeEventUpdate) AddBonusPoints(v int) *ChallengeEventUpdate {
	_u.mutation.AddBonusPoints(v)
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *ChallengeEventUpdate) SetAchievementID(v string) *ChallengeEventUpdate {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableAchievementID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// ClearAchievementID clears the value of the "achievement_id" field.
func (_u *ChallengeEventUpdate) ClearAchievementID() *ChallengeEventUpdate {
	_u.mutation.ClearAchievementID()
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdate) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdate) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := challengeevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekStart(); ok {
		if err := challengeevent.WeekStartValidator(v); err != nil {
			return &ValidationError{Name: "week_start", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.week_start": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(challengeevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(challengeevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(challengeevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(challengeevent.FieldWeekStart, field.TypeString, value)
	}
	if value, ok := _u.mutation.BonusPoints(); ok {
		_spec.SetField(challengeevent.FieldBonusPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusPoints(); ok {
		_spec.AddField(challengeevent.FieldBonusPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(challengeevent.FieldAchievementID, field.TypeString, value)
	}
	if _u.mutation.AchievementIDCleared() {
		_spec.ClearField(challengeevent.FieldAchievementID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeEventUpdateOne is the builder for updating a single ChallengeEvent entity.
type ChallengeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdateOne) SetChallengeID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableChallengeID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChallengeEventUpdateOne) SetTitle(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableTitle(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *ChallengeEventUpdateOne) SetTarget(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableTarget(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *ChallengeEventUpdateOne) AddTarget(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddTarget(v)
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *ChallengeEventUpdateOne) SetWeekStart(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableWeekStart(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetBonusPoints sets the "bonus_points" field.
func (_u *ChallengeEventUpdateOne) SetBonusPoints(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetBonusPoints()
	_u.mutation.SetBonusPoints(v)
	return _u
}

// SetNillableBonusPoints sets the "bonus_points" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableBonusPoints(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetBonusPoints(*v)
	}
	return _u
}

// AddBonusPoints adds value to the "bonus_points" field.
func (_u *ChallengeEventUpdateOne) AddBonusPoints(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddBonusPoints(v)
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *ChallengeEventUpdateOne) SetAchievementID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableAchievementID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// ClearAchievementID clears the value of the "achievement_id" field.
func (_u *ChallengeEventUpdateOne) ClearAchievementID() *ChallengeEventUpdateOne {
	_u.mutation.ClearAchievementID()
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdateOne) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdateOne) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeEventUpdateOne) Select(field string, fields ...string) *ChallengeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeEvent entity.
func (_u *ChallengeEventUpdateOne) Save(ctx context.Context) (*ChallengeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) SaveX(ctx context.Context) *ChallengeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdateOne) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := challengeevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekStart(); ok {
		if err := challengeevent.WeekStartValidator(v); err != nil {
			return &ValidationError{Name: "week_start", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.week_start": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengeevent.FieldID)
		for _, f := range fields {
			if !challengeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengeevent.FieldID {
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
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(challengeevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(challengeevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(challengeevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(challengeevent.FieldWeekStart, field.TypeString, value)
	}
	if value, ok := _u.mutation.BonusPoints(); ok {
		_spec.SetField(challengeevent.FieldBonusPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusPoints(); ok {
		_spec.AddField(challengeevent.FieldBonusPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(challengeevent.FieldAchievementID, field.TypeString, value)
	}
	if _u.mutation.AchievementIDCleared() {
		_spec.ClearField(challengeevent.FieldAchievementID, field.TypeString)
	}
	_node = &ChallengeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
