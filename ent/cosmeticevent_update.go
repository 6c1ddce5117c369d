// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
	"github.com/anuraag/pipkin/ent/predicate"
)

// CosmeticEventUpdate is the builder for updating CosmeticEvent entities.
type CosmeticEventUpdate struct {
	config
	hooks    []Hook
	mutation *CosmeticEventMutation
}

// Where appends a list predicates to the CosmeticEventUpdate builder.
func (_u *CosmeticEventUpdate) Where(ps ...predicate.CosmeticEvent) *CosmeticEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCosmeticID sets the "cosmetic_id" field.
func (_u *CosmeticEventUpdate) SetCosmeticID(v string) *CosmeticEventUpdate {
	_u.mutation.SetCosmeticID(v)
	return _u
}

// SetNillableCosmeticID sets the "cosmetic_id" field if the given value is not nil.
func (_u *CosmeticEventUpdate) SetNillableCosmeticID(v *string) *CosmeticEventUpdate {
	if v != nil {
		_u.SetCosmeticID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CosmeticEventUpdate) SetAction(v string) *CosmeticEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CosmeticEventUpdate) SetNillableAction(v *string) *CosmeticEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CosmeticEventUpdate) SetCategory(v string) *CosmeticEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CosmeticEventUpdate) SetNillableCategory(v *string) *CosmeticEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *CosmeticEventUpdate) SetRarity(v string) *CosmeticEventUpdate {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *CosmeticEventUpdate) SetNillableRarity(v *string) *CosmeticEventUpdate {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetSourceAchievement sets the "source_achievement" field.
func (_u *CosmeticEventUpdate) SetSourceAchievement(v string) *CosmeticEventUpdate {
	_u.mutation.SetSourceAchievement(v)
	return _u
}

// SetNillableSourceAchievement sets the "source_achievement" field if the given value is not nil.
func (_u *CosmeticEventUpdate) SetNillableSourceAchievement(v *string) *CosmeticEventUpdate {
	if v != nil {
		_u.SetSourceAchievement(*v)
	}
	return _u
}

// ClearSourceAchievement clears the value of the "source_achievement" field.
func (_u *CosmeticEventUpdate) ClearSourceAchievement() *CosmeticEventUpdate {
	_u.mutation.ClearSourceAchievement()
	return _u
}

// Mutation returns the CosmeticEventMutation object of the builder.
func (_u *CosmeticEventUpdate) Mutation() *CosmeticEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CosmeticEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CosmeticEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CosmeticEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CosmeticEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CosmeticEventUpdate) check() error {
	if v, ok := _u.mutation.CosmeticID(); ok {
		if err := cosmeticevent.CosmeticIDValidator(v); err != nil {
			return &ValidationError{Name: "cosmetic_id", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.cosmetic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := cosmeticevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := cosmeticevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := cosmeticevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.rarity": %w`, err)}
		}
	}
	return nil
}

func (_u *CosmeticEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cosmeticevent.Table, cosmeticevent.Columns, sqlgraph.NewFieldSpec(cosmeticevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CosmeticID(); ok {
		_spec.SetField(cosmeticevent.FieldCosmeticID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(cosmeticevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cosmeticevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(cosmeticevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAchievement(); ok {
		_spec.SetField(cosmeticevent.FieldSourceAchievement, field.TypeString, value)
	}
	if _u.mutation.SourceAchievementCleared() {
		_spec.ClearField(cosmeticevent.FieldSourceAchievement, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cosmeticevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CosmeticEventUpdateOne is the builder for updating a single CosmeticEvent entity.
type CosmeticEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CosmeticEventMutation
}

// SetCosmeticID sets the "cosmetic_id" field.
func (_u *CosmeticEventUpdateOne) SetCosmeticID(v string) *CosmeticEventUpdateOne {
	_u.mutation.SetCosmeticID(v)
	return _u
}

// SetNillableCosmeticID sets the "cosmetic_id" field if the given value is not nil.
func (_u *CosmeticEventUpdateOne) SetNillableCosmeticID(v *string) *CosmeticEventUpdateOne {
	if v != nil {
		_u.SetCosmeticID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CosmeticEventUpdateOne) SetAction(v string) *CosmeticEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CosmeticEventUpdateOne) SetNillableAction(v *string) *CosmeticEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CosmeticEventUpdateOne) SetCategory(v string) *CosmeticEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CosmeticEventUpdateOne) SetNillableCategory(v *string) *CosmeticEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *CosmeticEventUpdateOne) SetRarity(v string) *CosmeticEventUpdateOne {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *CosmeticEventUpdateOne) SetNillableRarity(v *string) *CosmeticEventUpdateOne {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetSourceAchievement sets the "source_achievement" field.
func (_u *CosmeticEventUpdateOne) SetSourceAchievement(v string) *CosmeticEventUpdateOne {
	_u.mutation.SetSourceAchievement(v)
	return _u
}

// SetNillableSourceAchievement sets the "source_achievement" field if the given value is not nil.
func (_u *CosmeticEventUpdateOne) SetNillableSourceAchievement(v *string) *CosmeticEventUpdateOne {
	if v != nil {
		_u.SetSourceAchievement(*v)
	}
	return _u
}

// ClearSourceAchievement clears the value of the "source_achievement" field.
func (_u *CosmeticEventUpdateOne) ClearSourceAchievement() *CosmeticEventUpdateOne {
	_u.mutation.ClearSourceAchievement()
	return _u
}

// Mutation returns the CosmeticEventMutation object of the builder.
func (_u *CosmeticEventUpdateOne) Mutation() *CosmeticEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CosmeticEventUpdate builder.
func (_u *CosmeticEventUpdateOne) Where(ps ...predicate.CosmeticEvent) *CosmeticEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CosmeticEventUpdateOne) Select(field string, fields ...string) *CosmeticEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CosmeticEvent entity.
func (_u *CosmeticEventUpdateOne) Save(ctx context.Context) (*CosmeticEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CosmeticEventUpdateOne) SaveX(ctx context.Context) *CosmeticEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CosmeticEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CosmeticEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CosmeticEventUpdateOne) check() error {
	if v, ok := _u.mutation.CosmeticID(); ok {
		if err := cosmeticevent.CosmeticIDValidator(v); err != nil {
			return &ValidationError{Name: "cosmetic_id", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.cosmetic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := cosmeticevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := cosmeticevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := cosmeticevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "CosmeticEvent.rarity": %w`, err)}
		}
	}
	return nil
}

func (_u *CosmeticEventUpdateOne) sqlSave(ctx context.Context) (_node *CosmeticEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cosmeticevent.Table, cosmeticevent.Columns, sqlgraph.NewFieldSpec(cosmeticevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CosmeticEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cosmeticevent.FieldID)
		for _, f := range fields {
			if !cosmeticevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cosmeticevent.FieldID {
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
	if value, ok := _u.mutation.CosmeticID(); ok {
		_spec.SetField(cosmeticevent.FieldCosmeticID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(cosmeticevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cosmeticevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(cosmeticevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAchievement(); ok {
		_spec.SetField(cosmeticevent.FieldSourceAchievement, field.TypeString, value)
	}
	if _u.mutation.SourceAchievementCleared() {
		_spec.ClearField(cosmeticevent.FieldSourceAchievement, field.TypeString)
	}
	_node = &CosmeticEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cosmeticevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
