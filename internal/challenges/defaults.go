package challenges

import (
	"fmt"
	"time"
)

// DefaultWeek generates the stock challenge set for the week starting
// at weekStart. It stands in for the remote weekly scheduler, which the
// local CLI never has. Ids are scoped to the week so that a completed
// challenge from a previous week can never shadow a fresh one.
func DefaultWeek(weekStart time.Time) []Challenge {
	start := midnight(weekStart)
	end := start.AddDate(0, 0, 6)
	week := formatDay(start)
	medal := "accessory_medal"

	return []Challenge{
		{
			ID:          fmt.Sprintf("%s_steps", week),
			Title:       "Weekly Wanderer",
			Description: "Walk 70,000 steps this week",
			Objective:   Objective{Metric: "weekly_steps", Target: 70_000, Unit: "steps"},
			Reward:      Reward{BonusPoints: 100},
			StartDate:   start,
			EndDate:     end,
		},
		{
			ID:          fmt.Sprintf("%s_active_days", week),
			Title:       "Show Up Five Times",
			Description: "Meet your daily goal on 5 days this week",
			Objective:   Objective{Metric: "active_days", Target: 5, Unit: "days"},
			Reward:      Reward{BonusPoints: 150},
			StartDate:   start,
			EndDate:     end,
		},
		{
			ID:          fmt.Sprintf("%s_distance", week),
			Title:       "Marathon Split",
			Description: "Cover 25 kilometers this week",
			Objective:   Objective{Metric: "distance_km", Target: 25, Unit: "km"},
			Reward:      Reward{BonusPoints: 200, CosmeticID: &medal},
			StartDate:   start,
			EndDate:     end,
		},
		{
			ID:          fmt.Sprintf("%s_minutes", week),
			Title:       "Keep Moving",
			Description: "Log 150 active minutes this week",
			Objective:   Objective{Metric: "active_minutes", Target: 150, Unit: "min"},
			Reward:      Reward{BonusPoints: 100},
			StartDate:   start,
			EndDate:     end,
		},
	}
}
