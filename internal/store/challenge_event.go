package store

import (
	"context"
	"fmt"

	"github.com/anuraag/pipkin/ent"
	"github.com/anuraag/pipkin/ent/challengeevent"
)

func (r *eventRepo) AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ChallengeEvent.Create().
		SetSequence(seqNum).
		SetChallengeID(data.ChallengeID).
		SetTitle(data.Title).
		SetTarget(data.Target).
		SetWeekStart(data.WeekStart).
		SetBonusPoints(data.BonusPoints).
		SetNillableAchievementID(data.AchievementID)

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save challenge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error) {
	query := r.client.ChallengeEvent.Query().
		Order(ent.Desc(challengeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(challengeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(challengeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(challengeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(challengeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query challenge events: %w", err)
	}

	records := make([]ChallengeEventRecord, len(events))
	for i, e := range events {
		records[i] = ChallengeEventRecord{
			ChallengeID:   e.ChallengeID,
			Title:         e.Title,
			Target:        e.Target,
			WeekStart:     e.WeekStart,
			BonusPoints:   e.BonusPoints,
			AchievementID: e.AchievementID,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}
