package handlers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/podup/podup/internal/provisioning"
)

var (
	reportColorGreen  = lipgloss.Color("#22c55e")
	reportColorRed    = lipgloss.Color("#ef4444")
	reportColorYellow = lipgloss.Color("#eab308")
	reportColorBlue   = lipgloss.Color("#3b82f6")
	reportColorDim    = lipgloss.Color("#6b7280")
	reportColorWhite  = lipgloss.Color("#f9fafb")
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorWhite)

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorBlue)

	reportDimStyle = lipgloss.NewStyle().
			Foreground(reportColorDim)

	reportGreenStyle = lipgloss.NewStyle().
				Foreground(reportColorGreen)

	reportYellowStyle = lipgloss.NewStyle().
				Foreground(reportColorYellow)

	reportRedStyle = lipgloss.NewStyle().
			Foreground(reportColorRed)
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// paint applies a style only when stdout is a terminal, so piped
// output stays free of escape sequences.
func paint(style lipgloss.Style, s string) string {
	if !isInteractiveTTY() {
		return s
	}
	return style.Render(s)
}

// renderReport produces the styled provisioning summary.
func renderReport(r *provisioning.Report) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(reportTitleStyle, fmt.Sprintf("  podup: %s", r.PodName)))
	b.WriteString("\n")
	b.WriteString(paint(reportDimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("    Outcome:   %s\n", renderOutcome(r)))
	b.WriteString(fmt.Sprintf("    State:     %s\n", r.FinalState))
	if r.PodID != "" {
		b.WriteString(fmt.Sprintf("    Pod:       %s", r.PodID))
		if r.GPU != "" {
			b.WriteString(paint(reportDimStyle, fmt.Sprintf(" (%s)", r.GPU)))
		}
		b.WriteString("\n")
	}
	if r.DataCenter != "" {
		b.WriteString(fmt.Sprintf("    Location:  %s\n", r.DataCenter))
	}
	if r.Alias != "" {
		b.WriteString(fmt.Sprintf("    SSH:       ssh %s", r.Alias))
		b.WriteString(paint(reportDimStyle, fmt.Sprintf("  (%s:%d)", r.SSHIP, r.Port)))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("    Elapsed:   %s\n", r.Elapsed.Round(time.Second)))

	renderSetupSection(&b, r)

	b.WriteString("\n")
	return b.String()
}

func renderOutcome(r *provisioning.Report) string {
	switch r.Outcome {
	case provisioning.OutcomeReady:
		return paint(reportGreenStyle, "ready")
	case provisioning.OutcomeReachable:
		return paint(reportYellowStyle, "reachable, setup incomplete")
	case provisioning.OutcomeUnreachable:
		return paint(reportRedStyle, "created but unreachable")
	default:
		return paint(reportRedStyle, "no pod created")
	}
}

func renderSetupSection(b *strings.Builder, r *provisioning.Report) {
	if len(r.SetupResults) == 0 && len(r.ExtensionResults) == 0 && r.ExtensionWarning == "" {
		return
	}

	b.WriteString("\n")
	b.WriteString(paint(reportSectionStyle, "  Remote setup"))
	b.WriteString("\n")
	b.WriteString(paint(reportDimStyle, "  "+strings.Repeat("─", 35)))
	b.WriteString("\n")

	for _, res := range r.SetupResults {
		marker := paint(reportGreenStyle, "ok ")
		if res.ExitCode != 0 {
			marker = paint(reportRedStyle, "err")
		}
		b.WriteString(fmt.Sprintf("    %s %s\n", marker, summarizeCommand(res.Command)))
	}
	if r.SetupErr != nil {
		b.WriteString(paint(reportRedStyle, fmt.Sprintf("    %v", r.SetupErr)))
		b.WriteString("\n")
	}

	for _, ext := range r.ExtensionResults {
		marker := paint(reportGreenStyle, "ok ")
		if !ext.Installed {
			marker = paint(reportRedStyle, "err")
		}
		b.WriteString(fmt.Sprintf("    %s extension %s\n", marker, ext.ID))
	}
	if r.ExtensionWarning != "" {
		b.WriteString(paint(reportYellowStyle, "    warning: "+r.ExtensionWarning))
		b.WriteString("\n")
	}
}

// summarizeCommand shortens a multi-line shell command to its first
// line for the report.
func summarizeCommand(command string) string {
	line, _, _ := strings.Cut(command, "\n")
	if len(line) > 70 {
		line = line[:67] + "..."
	}
	return line
}
