package store

import (
	"context"
	"fmt"

	"github.com/anuraag/pipkin/ent"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
)

func (r *eventRepo) AppendCosmeticEvent(ctx context.Context, data CosmeticEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CosmeticEvent.Create().
		SetSequence(seqNum).
		SetCosmeticID(data.CosmeticID).
		SetAction(data.Action).
		SetCategory(data.Category).
		SetRarity(data.Rarity).
		SetNillableSourceAchievement(data.SourceAchievement)

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save cosmetic event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCosmeticEvents(ctx context.Context, opts QueryOpts) ([]CosmeticEventRecord, error) {
	query := r.client.CosmeticEvent.Query().
		Order(ent.Desc(cosmeticevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(cosmeticevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(cosmeticevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(cosmeticevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(cosmeticevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cosmetic events: %w", err)
	}

	records := make([]CosmeticEventRecord, len(events))
	for i, e := range events {
		records[i] = CosmeticEventRecord{
			CosmeticID:        e.CosmeticID,
			Action:            e.Action,
			Category:          e.Category,
			Rarity:            e.Rarity,
			SourceAchievement: e.SourceAchievement,
			Sequence:          e.Sequence,
			Timestamp:         e.Timestamp,
		}
	}
	return records, nil
}
