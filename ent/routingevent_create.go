// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hmaeda/campdoc/ent/routingevent"
)

// RoutingEventCreate is the builder for creating a RoutingEvent entity.
type RoutingEventCreate struct {
	config
	mutation *RoutingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RoutingEventCreate) SetSequence(v int64) *RoutingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoutingEventCreate) SetTimestamp(v time.Time) *RoutingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoutingEventCreate) SetNillableTimestamp(v *time.Time) *RoutingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RoutingEventCreate) SetSessionID(v string) *RoutingEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *RoutingEventCreate) SetNillableSessionID(v *string) *RoutingEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *RoutingEventCreate) SetInput(v string) *RoutingEventCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *RoutingEventCreate) SetOutcome(v string) *RoutingEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *RoutingEventCreate) SetResolved(v bool) *RoutingEventCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *RoutingEventCreate) SetPath(v []string) *RoutingEventCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetHops sets the "hops" field.
func (_c *RoutingEventCreate) SetHops(v int) *RoutingEventCreate {
	_c.mutation.SetHops(v)
	return _c
}

// SetNillableHops sets the "hops" field if the given value is not nil.
func (_c *RoutingEventCreate) SetNillableHops(v *int) *RoutingEventCreate {
	if v != nil {
		_c.SetHops(*v)
	}
	return _c
}

// Mutation returns the RoutingEventMutation object of the builder.
func (_c *RoutingEventCreate) Mutation() *RoutingEventMutation {
	return _c.mutation
}

// Save creates the RoutingEvent in the database.
func (_c *RoutingEventCreate) Save(ctx context.Context) (*RoutingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutingEventCreate) SaveX(ctx context.Context) *RoutingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := routingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := routingevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.Hops(); !ok {
		v := routingevent.DefaultHops
		_c.mutation.SetHops(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoutingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoutingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RoutingEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "RoutingEvent.input"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "RoutingEvent.outcome"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "RoutingEvent.resolved"`)}
	}
	if _, ok := _c.mutation.Hops(); !ok {
		return &ValidationError{Name: "hops", err: errors.New(`ent: missing required field "RoutingEvent.hops"`)}
	}
	return nil
}

func (_c *RoutingEventCreate) sqlSave(ctx context.Context) (*RoutingEvent, error) {
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

func (_c *RoutingEventCreate) createSpec() (*RoutingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routingevent.Table, sqlgraph.NewFieldSpec(routingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(routingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(routingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(routingevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(routingevent.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(routingevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(routingevent.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(routingevent.FieldPath, field.TypeJSON, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Hops(); ok {
		_spec.SetField(routingevent.FieldHops, field.TypeInt, value)
		_node.Hops = value
	}
	return _node, _spec
}

// RoutingEventCreateBulk is the builder for creating many RoutingEvent entities in bulk.
type RoutingEventCreateBulk struct {
	config
	err      error
	builders []*RoutingEventCreate
}

// Save creates the RoutingEvent entities in the database.
func (_c *RoutingEventCreateBulk) Save(ctx context.Context) ([]*RoutingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutingEventMutation)
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
func (_c *RoutingEventCreateBulk) SaveX(ctx context.Context) []*RoutingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
