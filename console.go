package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	outcomeLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	outcomeStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	outcomeTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	introTargetStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	summaryLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	summaryValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// String renders the outcome the way verbose mode prints it, one
// request per line. Styling degrades to plain text on dumb terminals
// and pipes.
func (o requestOutcome) String() string {
	return "[" +
		outcomeLabelStyle.Render(
			"Client "+strconv.FormatUint(o.client, decBase)+
				" Iteration "+strconv.FormatUint(o.iteration, decBase)) +
		"] " +
		outcomeStatusStyle.Render(o.status) +
		" " +
		outcomeTimeStyle.Render(
			strconv.FormatUint(o.durationMs, decBase)+"ms")
}
