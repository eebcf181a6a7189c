// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hmaeda/campdoc/ent/predicate"
	"github.com/hmaeda/campdoc/ent/routingevent"
)

// RoutingEventUpdate is the builder for updating RoutingEvent entities.
type RoutingEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoutingEventMutation
}

// Where appends a list predicates to the RoutingEventUpdate builder.
func (_u *RoutingEventUpdate) Where(ps ...predicate.RoutingEvent) *RoutingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RoutingEventUpdate) SetSessionID(v string) *RoutingEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoutingEventUpdate) SetNillableSessionID(v *string) *RoutingEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *RoutingEventUpdate) SetInput(v string) *RoutingEventUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *RoutingEventUpdate) SetNillableInput(v *string) *RoutingEventUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *RoutingEventUpdate) SetOutcome(v string) *RoutingEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RoutingEventUpdate) SetNillableOutcome(v *string) *RoutingEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *RoutingEventUpdate) SetResolved(v bool) *RoutingEventUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *RoutingEventUpdate) SetNillableResolved(v *bool) *RoutingEventUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *RoutingEventUpdate) SetPath(v []string) *RoutingEventUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// AppendPath appends value to the "path" field.
func (_u *RoutingEventUpdate) AppendPath(v []string) *RoutingEventUpdate {
	_u.mutation.AppendPath(v)
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *RoutingEventUpdate) ClearPath() *RoutingEventUpdate {
	_u.mutation.ClearPath()
	return _u
}

// SetHops sets the "hops" field.
func (_u *RoutingEventUpdate) SetHops(v int) *RoutingEventUpdate {
	_u.mutation.ResetHops()
	_u.mutation.SetHops(v)
	return _u
}

// SetNillableHops sets the "hops" field if the given value is not nil.
func (_u *RoutingEventUpdate) SetNillableHops(v *int) *RoutingEventUpdate {
	if v != nil {
		_u.SetHops(*v)
	}
	return _u
}

// AddHops adds value to the "hops" field.
func (_u *RoutingEventUpdate) AddHops(v int) *RoutingEventUpdate {
	_u.mutation.AddHops(v)
	return _u
}

// Mutation returns the RoutingEventMutation object of the builder.
func (_u *RoutingEventUpdate) Mutation() *RoutingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RoutingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(routingevent.Table, routingevent.Columns, sqlgraph.NewFieldSpec(routingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(routingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(routingevent.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(routingevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(routingevent.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(routingevent.FieldPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingevent.FieldPath, value)
		})
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(routingevent.FieldPath, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hops(); ok {
		_spec.SetField(routingevent.FieldHops, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHops(); ok {
		_spec.AddField(routingevent.FieldHops, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutingEventUpdateOne is the builder for updating a single RoutingEvent entity.
type RoutingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutingEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RoutingEventUpdateOne) SetSessionID(v string) *RoutingEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoutingEventUpdateOne) SetNillableSessionID(v *string) *RoutingEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *RoutingEventUpdateOne) SetInput(v string) *RoutingEventUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *RoutingEventUpdateOne) SetNillableInput(v *string) *RoutingEventUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *RoutingEventUpdateOne) SetOutcome(v string) *RoutingEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RoutingEventUpdateOne) SetNillableOutcome(v *string) *RoutingEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *RoutingEventUpdateOne) SetResolved(v bool) *RoutingEventUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *RoutingEventUpdateOne) SetNillableResolved(v *bool) *RoutingEventUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *RoutingEventUpdateOne) SetPath(v []string) *RoutingEventUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// AppendPath appends value to the "path" field.
func (_u *RoutingEventUpdateOne) AppendPath(v []string) *RoutingEventUpdateOne {
	_u.mutation.AppendPath(v)
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *RoutingEventUpdateOne) ClearPath() *RoutingEventUpdateOne {
	_u.mutation.ClearPath()
	return _u
}

// SetHops sets the "hops" field.
func (_u *RoutingEventUpdateOne) SetHops(v int) *RoutingEventUpdateOne {
	_u.mutation.ResetHops()
	_u.mutation.SetHops(v)
	return _u
}

// SetNillableHops sets the "hops" field if the given value is not nil.
func (_u *RoutingEventUpdateOne) SetNillableHops(v *int) *RoutingEventUpdateOne {
	if v != nil {
		_u.SetHops(*v)
	}
	return _u
}

// AddHops adds value to the "hops" field.
func (_u *RoutingEventUpdateOne) AddHops(v int) *RoutingEventUpdateOne {
	_u.mutation.AddHops(v)
	return _u
}

// Mutation returns the RoutingEventMutation object of the builder.
func (_u *RoutingEventUpdateOne) Mutation() *RoutingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutingEventUpdate builder.
func (_u *RoutingEventUpdateOne) Where(ps ...predicate.RoutingEvent) *RoutingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutingEventUpdateOne) Select(field string, fields ...string) *RoutingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutingEvent entity.
func (_u *RoutingEventUpdateOne) Save(ctx context.Context) (*RoutingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingEventUpdateOne) SaveX(ctx context.Context) *RoutingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RoutingEventUpdateOne) sqlSave(ctx context.Context) (_node *RoutingEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(routingevent.Table, routingevent.Columns, sqlgraph.NewFieldSpec(routingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routingevent.FieldID)
		for _, f := range fields {
			if !routingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routingevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(routingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(routingevent.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(routingevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(routingevent.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(routingevent.FieldPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingevent.FieldPath, value)
		})
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(routingevent.FieldPath, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hops(); ok {
		_spec.SetField(routingevent.FieldHops, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHops(); ok {
		_spec.AddField(routingevent.FieldHops, field.TypeInt, value)
	}
	_node = &RoutingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
