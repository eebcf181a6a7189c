// Code generated by ent, DO NOT EDIT.

package routingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hmaeda/campdoc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldSessionID, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldInput, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldOutcome, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldResolved, v))
}

// Hops applies equality check predicate on the "hops" field. It's identical to HopsEQ.
func Hops(v int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldHops, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldHasSuffix(FieldInput, v))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldContainsFold(FieldInput, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldResolved, v))
}

// PathIsNil applies the IsNil predicate on the "path" field.
func PathIsNil() predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIsNull(FieldPath))
}

// PathNotNil applies the NotNil predicate on the "path" field.
func PathNotNil() predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotNull(FieldPath))
}

// HopsEQ applies the EQ predicate on the "hops" field.
func HopsEQ(v int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldEQ(FieldHops, v))
}

// HopsNEQ applies the NEQ predicate on the "hops" field.
func HopsNEQ(v int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNEQ(FieldHops, v))
}

// HopsIn applies the In predicate on the "hops" field.
func HopsIn(vs ...int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldIn(FieldHops, vs...))
}

// HopsNotIn applies the NotIn predicate on the "hops" field.
func HopsNotIn(vs ...int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldNotIn(FieldHops, vs...))
}

// HopsGT applies the GT predicate on the "hops" field.
func HopsGT(v int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGT(FieldHops, v))
}

// HopsGTE applies the GTE predicate on the "hops" field.
func HopsGTE(v int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldGTE(FieldHops, v))
}

// HopsLT applies the LT predicate on the "hops" field.
func HopsLT(v int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLT(FieldHops, v))
}

// HopsLTE applies the LTE predicate on the "hops" field.
func HopsLTE(v int) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.FieldLTE(FieldHops, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutingEvent) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutingEvent) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutingEvent) predicate.RoutingEvent {
	return predicate.RoutingEvent(sql.NotPredicates(p))
}
