// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anuraag/pipkin/ent/challengeevent"
)

// ChallengeEventCreate is the builder for creating a ChallengeEvent entity.
type ChallengeEventCreate struct {
	config
	mutation *ChallengeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChallengeEventCreate) SetSequence(v int64) *ChallengeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChallengeEventCreate) SetTimestamp(v time.Time) *ChallengeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableTimestamp(v *time.Time) *ChallengeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *ChallengeEventCreate) SetChallengeID(v string) *ChallengeEventCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChallengeEventCreate) SetTitle(v string) *ChallengeEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *ChallengeEventCreate) SetTarget(v int) *ChallengeEventCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableTarget(v *int) *ChallengeEventCreate {
	if v != nil {
		_c.SetTarget(*v)
	}
	return _c
}

// SetWeekStart sets the "week_start" field.
func (_c *ChallengeEventCreate) SetWeekStart(v string) *ChallengeEventCreate {
	_c.mutation.SetWeekStart(v)
	return _c
}

// SetBonusPoints sets the "bonus_points" field.
func (_c *ChallengeEventCreate) SetBonusPoints(v int) *ChallengeEventCreate {
	_c.mutation.SetBonusPoints(v)
	return _c
}

// SetNillableBonusPoints sets the "bonus_points" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableBonusPoints(v *int) *ChallengeEventCreate {
	if v != nil {
		_c.SetBonusPoints(*v)
	}
	return _c
}

// SetAchievementID sets the "achievement_id" field.
func (_c *ChallengeEventCreate) SetAchievementID(v string) *ChallengeEventCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableAchievementID(v *string) *ChallengeEventCreate {
	if v != nil {
		_c.SetAchievementID(*v)
	}
	return _c
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_c *ChallengeEventCreate) Mutation() *ChallengeEventMutation {
	return _c.mutation
}

// Save creates the ChallengeEvent in the database.
func (_c *ChallengeEventCreate) Save(ctx context.Context) (*ChallengeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeEventCreate) SaveX(ctx context.Context) *ChallengeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := challengeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Target(); !ok {
		v := challengeevent.DefaultTarget
		_c.mutation.SetTarget(v)
	}
	if _, ok := _c.mutation.BonusPoints(); !ok {
		v := challengeevent.DefaultBonusPoints
		_c.mutation.SetBonusPoints(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChallengeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChallengeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "ChallengeEvent.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ChallengeEvent.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := challengeevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "ChallengeEvent.target"`)}
	}
	if _, ok := _c.mutation.WeekStart(); !ok {
		return &ValidationError{Name: "week_start", err: errors.New(`ent: missing required field "ChallengeEvent.week_start"`)}
	}
	if v, ok := _c.mutation.WeekStart(); ok {
		if err := challengeevent.WeekStartValidator(v); err != nil {
			return &ValidationError{Name: "week_start", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.week_start": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BonusPoints(); !ok {
		return &ValidationError{Name: "bonus_points", err: errors.New(`ent: missing required field "ChallengeEvent.bonus_points"`)}
	}
	return nil
}

func (_c *ChallengeEventCreate) sqlSave(ctx context.Context) (*ChallengeEvent, error) {
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

func (_c *ChallengeEventCreate) createSpec() (*ChallengeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChallengeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challengeevent.Table, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(challengeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(challengeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(challengeevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(challengeevent.FieldTarget, field.TypeInt, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.WeekStart(); ok {
		_spec.SetField(challengeevent.FieldWeekStart, field.TypeString, value)
		_node.WeekStart = value
	}
	if value, ok := _c.mutation.BonusPoints(); ok {
		_spec.SetField(challengeevent.FieldBonusPoints, field.TypeInt, value)
		_node.BonusPoints = value
	}
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(challengeevent.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = &value
	}
	return _node, _spec
}

// ChallengeEventCreateBulk is the builder for creating many ChallengeEvent entities in bulk.
type ChallengeEventCreateBulk struct {
	config
	err      error
	builders []*ChallengeEventCreate
}

// Save creates the ChallengeEvent entities in the database.
func (_c *ChallengeEventCreateBulk) Save(ctx context.Context) ([]*ChallengeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChallengeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeEventMutation)
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
func (_c *ChallengeEventCreateBulk) SaveX(ctx context.Context) []*ChallengeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
