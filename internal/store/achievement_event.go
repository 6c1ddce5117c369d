package store

import (
	"context"
	"fmt"

	"github.com/anuraag/pipkin/ent"
	"github.com/anuraag/pipkin/ent/achievementevent"
)

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetAchievementID(data.AchievementID).
		SetCategory(data.Category).
		SetRarity(data.Rarity).
		SetSource(data.Source)

	if len(data.CosmeticsGranted) > 0 {
		builder = builder.SetCosmeticsGranted(data.CosmeticsGranted)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error) {
	query := r.client.AchievementEvent.Query().
		Order(ent.Desc(achievementevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(achievementevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(achievementevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(achievementevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(achievementevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}

	records := make([]AchievementEventRecord, len(events))
	for i, e := range events {
		records[i] = AchievementEventRecord{
			AchievementID:    e.AchievementID,
			Category:         e.Category,
			Rarity:           e.Rarity,
			Source:           e.Source,
			CosmeticsGranted: e.CosmeticsGranted,
			Sequence:         e.Sequence,
			Timestamp:        e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) UnlockCounts(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.AchievementEvent.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query unlock counts: %w", err)
	}

	byCategory := make(map[string]int)
	for _, e := range events {
		byCategory[e.Category]++
	}

	return byCategory, len(events), nil
}
