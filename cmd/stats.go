package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/anuraag/pipkin/internal/achievements"
	"github.com/anuraag/pipkin/internal/app"
	"github.com/anuraag/pipkin/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		a := app.New(st, app.Options{})
		if err := a.LoadLatest(cmd.Context()); err != nil {
			return err
		}

		printStats(a)

		// Event-log view, independent of the snapshot.
		if _, total, err := st.EventRepo().UnlockCounts(cmd.Context()); err == nil && total > 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("  %d unlock event(s) in the log", total)))
		}
		return nil
	},
}

func printStats(a *app.App) {
	totals := a.Totals()
	stats := a.Engine.Statistics()

	fmt.Println(titleStyle.Render("Pipkin progression"))
	fmt.Println()

	fmt.Println(headerStyle.Render("Streak"))
	fmt.Printf("  current %s, longest %s\n",
		accentStyle.Render(fmt.Sprintf("%d day(s)", a.Tracker.Current())),
		dimStyle.Render(fmt.Sprintf("%d day(s)", a.Tracker.Longest())))
	fmt.Println()

	fmt.Println(headerStyle.Render("Achievements"))
	fmt.Printf("  %d of %d earned (%d%%)\n", stats.TotalEarned, stats.TotalAvailable, stats.CompletionPercentage)
	if stats.RarestBadge != nil {
		fmt.Printf("  rarest: %s %s (%s)\n",
			stats.RarestBadge.Icon, stats.RarestBadge.Name, stats.RarestBadge.Rarity.DisplayName())
	}
	for _, v := range stats.RecentUnlocks {
		fmt.Printf("  %s %s %s\n", v.Icon, v.Name, dimStyle.Render(v.UnlockedAt.Format(time.DateOnly)))
	}
	for _, v := range a.Engine.Filter(achievements.FilterOpts{Status: achievements.StatusLocked}) {
		if v.Progress != nil && v.Progress.Percentage > 0 {
			fmt.Printf("  %s %s\n", dimStyle.Render(v.Name), progressBar(v.Progress.Percentage))
		}
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("Challenges"))
	active := a.Challenges.Active()
	if len(active) == 0 {
		fmt.Println(dimStyle.Render("  no active week"))
	}
	for _, c := range active {
		status := progressBar(c.ProgressPercentage())
		if c.Completed {
			status = goodStyle.Render("done")
		}
		fmt.Printf("  %s %s (%d/%d %s)\n", c.Title, status, c.Progress, c.Objective.Target, c.Objective.Unit)
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("Cosmetics"))
	fmt.Printf("  %d owned, %d points\n", len(a.Inventory.Owned()), totals.BonusPoints)
	if layers := a.Inventory.Layers(); len(layers) > 0 {
		names := make([]string, len(layers))
		for i, c := range layers {
			names[i] = c.Name
		}
		fmt.Printf("  equipped: %s\n", strings.Join(names, ", "))
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("Lifetime"))
	fmt.Printf("  %d steps over %d day(s), %d challenge(s), %d clean sweep(s)\n",
		totals.TotalSteps, totals.DaysRecorded, totals.ChallengesDone, totals.WeeklySweeps)
}

// progressBar renders a ten-cell bar for a 0..100 percentage.
func progressBar(pct int) string {
	filled := pct / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return fmt.Sprintf("%s %d%%", accentStyle.Render(bar), pct)
}
