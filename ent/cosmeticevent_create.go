// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
)

// CosmeticEventCreate is the builder for creating a CosmeticEvent entity.
type CosmeticEventCreate struct {
	config
	mutation *CosmeticEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CosmeticEventCreate) SetSequence(v int64) *CosmeticEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CosmeticEventCreate) SetTimestamp(v time.Time) *CosmeticEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CosmeticEventCreate) SetNillableTimestamp(v *time.Time) *CosmeticEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCosmeticID sets the "cosmetic_id" field.
func (_c *CosmeticEventCreate) SetCosmeticID(v string) *CosmeticEventCreate {
	_c.mutation.SetCosmeticID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *CosmeticEventCreate) SetAction(v string) *CosmeticEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CosmeticEventCreate) SetCategory(v string) *CosmeticEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetRarity sets the "rarity" field.
func (_c *CosmeticEventCreate) SetRarity(v string) *CosmeticEventCreate {
	_c.mutation.SetRarity(v)
	return _c
}

// SetSourceAchievement sets the "source_achievement" field.
func (_c *CosmeticEventCreate) SetSourceAchievement(v string) *CosmeticEventCreate {
	_c.mutation.SetSourceAchievement(v)
	return _c
}

// SetNillableSourceAchievement sets the "source_achievement" field if the given value is not nil.
func (_c *CosmeticEventCreate) SetNillableSourceAchievement(v *string) *CosmeticEventCreate {
	if v != nil {
		_c.SetSourceAchievement(*v)
	}
	return _c
}

// Mutation returns the CosmeticEventMutation object of the builder.
func (_c *CosmeticEventCreate) Mutation() *CosmeticEventMutation {
	return _c.mutation
}

// Save creates the CosmeticEvent in the database.
func (_c *CosmeticEventCreate) Save(ctx context.Context) (*CosmeticEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CosmeticEventCreate) SaveX(ctx context.Context) *CosmeticEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CosmeticEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CosmeticEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CosmeticEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := cosmeticevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CosmeticEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CosmeticEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CosmeticEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CosmeticID(); !ok {
		return &ValidationError{Name: "cosmetic_id", err: errors.New(`ent: missing required field "CosmeticEvent.cosmetic_id"`)}
	}
	if v, ok := _c.mutation.CosmeticID(); ok {
		if err := cosmeticevent.CosmeticIDValidator(v); err != nil {
			return &ValidationError{Name: "cosmetic_id", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.cosmetic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "CosmeticEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := cosmeticevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CosmeticEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := cosmeticevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rarity(); !ok {
		return &ValidationError{Name: "rarity", err: errors.New(`ent: missing required field "CosmeticEvent.rarity"`)}
	}
	if v, ok := _c.mutation.Rarity(); ok {
		if err := cosmeticevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.rarity": %w`, err)}
		}
	}
	return nil
}

func (_c *CosmeticEventCreate) sqlSave(ctx context.Context) (*CosmeticEvent, error) {
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

func (_c *CosmeticEventCreate) createSpec() (*CosmeticEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CosmeticEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cosmeticevent.Table, sqlgraph.NewFieldSpec(cosmeticevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(cosmeticevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(cosmeticevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CosmeticID(); ok {
		_spec.SetField(cosmeticevent.FieldCosmeticID, field.TypeString, value)
		_node.CosmeticID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(cosmeticevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(cosmeticevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Rarity(); ok {
		_spec.SetField(cosmeticevent.FieldRarity, field.TypeString, value)
		_node.Rarity = value
	}
	if value, ok := _c.mutation.SourceAchievement(); ok {
		_spec.SetField(cosmeticevent.FieldSourceAchievement, field.TypeString, value)
		_node.SourceAchievement = &value
	}
	return _node, _spec
}

// CosmeticEventCreateBulk is the builder for creating many CosmeticEvent entities in bulk.
type CosmeticEventCreateBulk struct {
	config
	err      error
	builders []*CosmeticEventCreate
}

// Save creates the CosmeticEvent entities in the database.
func (_c *CosmeticEventCreateBulk) Save(ctx context.Context) ([]*CosmeticEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CosmeticEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CosmeticEventMutation)
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
func (_c *CosmeticEventCreateBulk) SaveX(ctx context.Context) []*CosmeticEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CosmeticEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CosmeticEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
