package store

import (
	"context"
	"fmt"

	"github.com/hmaeda/campdoc/ent"
	"github.com/hmaeda/campdoc/ent/routingevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendRouting(ctx context.Context, data RoutingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RoutingEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetInput(data.Input).
		SetOutcome(data.Outcome).
		SetResolved(data.Resolved).
		SetPath(data.Path).
		SetHops(data.Hops).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save routing event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentRouting(ctx context.Context, opts QueryOpts) ([]RoutingEventRecord, error) {
	q := r.client.RoutingEvent.Query().
		Order(ent.Desc(routingevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(routingevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(routingevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(routingevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(routingevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query routing events: %w", err)
	}

	out := make([]RoutingEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, RoutingEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			RoutingEventData: RoutingEventData{
				SessionID: e.SessionID,
				Input:     e.Input,
				Outcome:   e.Outcome,
				Resolved:  e.Resolved,
				Path:      e.Path,
				Hops:      e.Hops,
			},
		})
	}
	return out, nil
}
