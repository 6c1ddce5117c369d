// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
	"github.com/anuraag/pipkin/ent/predicate"
)

// CosmeticEventDelete is the builder for deleting a CosmeticEvent entity.
type CosmeticEventDelete struct {
	config
	hooks    []Hook
	mutation *CosmeticEventMutation
}

// Where appends a list predicates to the CosmeticEventDelete builder.
func (_d *CosmeticEventDelete) Where(ps ...predicate.CosmeticEvent) *CosmeticEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CosmeticEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CosmeticEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CosmeticEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cosmeticevent.Table, sqlgraph.NewFieldSpec(cosmeticevent.FieldID, field.TypeInt))
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

// CosmeticEventDeleteOne is the builder for deleting a single CosmeticEvent entity.
type CosmeticEventDeleteOne struct {
	_d *CosmeticEventDelete
}

// Where appends a list predicates to the CosmeticEventDelete builder.
func (_d *CosmeticEventDeleteOne) Where(ps ...predicate.CosmeticEvent) *CosmeticEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CosmeticEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cosmeticevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CosmeticEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
