package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/anuraag/pipkin/internal/notify"
)

// Terminal palette, shared by record and stats output.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// printNotifications renders whatever the queue would announce to the
// companion screen. The CLI has no delivery loop; it just shows the
// pending buffer in delivery order.
func printNotifications(pending []notify.Notification) {
	if len(pending) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(headerStyle.Render("Notifications"))
	for _, n := range pending {
		fmt.Printf("  %s %s\n", titleStyle.Render(n.Title), dimStyle.Render(n.Message))
	}
}
