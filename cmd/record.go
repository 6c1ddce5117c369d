package cmd

import (
	"fmt"
	"time"

	"github.com/anuraag/pipkin/internal/app"
	"github.com/anuraag/pipkin/internal/store"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one day of activity",
	Long:  "Record feeds a day's health totals into the progression core: streak update, challenge progress and milestone checks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if s, _ := cmd.Flags().GetString("date"); s != "" {
			d, err := time.Parse(time.DateOnly, s)
			if err != nil {
				return fmt.Errorf("parse --date: %w", err)
			}
			date = d
		}
		steps, _ := cmd.Flags().GetInt("steps")
		if steps < 0 {
			return fmt.Errorf("--steps must not be negative")
		}
		activeMinutes, _ := cmd.Flags().GetInt("active-minutes")
		goal, _ := cmd.Flags().GetInt("goal")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		a := app.New(st, app.Options{DailyGoalSteps: goal})
		ctx := cmd.Context()
		if err := a.LoadLatest(ctx); err != nil {
			return err
		}

		res := a.RecordDailyProgress(ctx, app.DailyInput{
			Date:          date,
			Steps:         steps,
			ActiveMinutes: activeMinutes,
		})
		printRecordResult(res)
		printNotifications(a.Queue.Pending())
		return nil
	},
}

func init() {
	recordCmd.Flags().String("date", "", "Day to record, YYYY-MM-DD (default today)")
	recordCmd.Flags().Int("steps", 0, "Step count for the day")
	recordCmd.Flags().Int("active-minutes", 0, "Minutes of activity for the day")
	recordCmd.Flags().Int("goal", 0, "Daily step goal (default 7000)")
}

func printRecordResult(res app.RecordResult) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Recorded %s", res.Date.Format(time.DateOnly))))

	if res.WeekRolledOver {
		fmt.Println(dimStyle.Render("New challenge week started."))
	}

	switch {
	case res.Streak.WasReset && res.Streak.NewStreak == 0:
		fmt.Println(badStyle.Render(fmt.Sprintf("Streak lost (was %d days).", res.Streak.PreviousStreak)))
	case res.Streak.WasReset:
		fmt.Println(badStyle.Render(fmt.Sprintf("Streak lost (was %d days), restarted at 1.", res.Streak.PreviousStreak)))
	case res.CriteriaMet:
		fmt.Println(goodStyle.Render(fmt.Sprintf("Streak: %d day(s).", res.Streak.NewStreak)))
	default:
		fmt.Println(dimStyle.Render("Daily goal not met."))
	}
	if m := res.Streak.Milestone; m != nil {
		fmt.Println(accentStyle.Render(fmt.Sprintf("Milestone: %d-day streak!", m.Days)))
	}

	for _, c := range res.Completed {
		fmt.Println(goodStyle.Render(fmt.Sprintf("Challenge complete: %s", c.Title)))
	}
	if res.BonusPoints > 0 {
		fmt.Println(accentStyle.Render(fmt.Sprintf("+%d bonus points", res.BonusPoints)))
	}

	for _, u := range res.Unlocked {
		line := fmt.Sprintf("Unlocked: %s %s (%s)", u.Achievement.Icon, u.Achievement.Name, u.Achievement.Rarity.DisplayName())
		fmt.Println(accentStyle.Render(line))
		for _, c := range u.CosmeticsUnlocked {
			fmt.Println(dimStyle.Render("  new cosmetic: " + c))
		}
	}
}
