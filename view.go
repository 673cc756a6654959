package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripline/layout"
	"tripline/palette"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	activeStyle = lipgloss.NewStyle().Underline(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	plan := m.ctrl.Plan()
	legs := m.ctrl.Legs()

	result.WriteString(titleStyle.Render("tripline"))
	result.WriteString(labelStyle.Render(fmt.Sprintf("  %d legs · %d stations", len(legs), len(plan.Stations()))))
	result.WriteString("\n\n")
	result.WriteString(m.formView())
	result.WriteString("\n\n")

	for _, line := range m.trackLines(plan) {
		result.WriteString(line)
		result.WriteString("\n")
	}
	if legend := m.legendView(); legend != "" {
		result.WriteString("\n")
		result.WriteString(legend)
		result.WriteString("\n")
	}

	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) formView() string {
	fields := [2]string{"Start", "End"}
	var parts []string
	for i, name := range fields {
		text := m.inputs[i]
		if Field(i) == m.field && m.mode == ModeInput {
			text = withCursor(text, m.cursorPos[i])
			name = activeStyle.Render(name)
		}
		parts = append(parts, fmt.Sprintf("%s: %-20s", name, text))
	}
	return strings.Join(parts, "  ")
}

// trackLines renders the stations as one text row per track level, upper tracks
// first, each station in its own column slot.
func (m model) trackLines(plan layout.Plan) []string {
	stations := plan.Stations()
	if len(stations) == 0 {
		return []string{labelStyle.Render("No legs yet. Type a start and an end, then press Enter.")}
	}

	var levels []float64
	seen := map[float64]bool{}
	for _, s := range stations {
		if !seen[s.Y] {
			seen[s.Y] = true
			levels = append(levels, s.Y)
		}
	}
	sort.Float64s(levels)

	maxSlots := len(stations)
	if m.width > 0 && m.width/slotWidth < maxSlots {
		maxSlots = m.width / slotWidth
		if maxSlots < 1 {
			maxSlots = 1
		}
	}
	first := len(stations) - maxSlots

	lines := make([]string, 0, len(levels))
	for _, y := range levels {
		var line strings.Builder
		for _, s := range stations[first:] {
			if s.Y != y {
				line.WriteString(strings.Repeat(" ", slotWidth))
				continue
			}
			c := m.ctrl.ColorFor(s.Leg.Start, s.Leg.End)
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(c))).Render("●")
			line.WriteString(dot)
			line.WriteString(" ")
			line.WriteString(fmt.Sprintf("%-*s", slotWidth-2, s.Label))
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}

func (m model) legendView() string {
	entries := m.ctrl.Colors()
	if len(entries) == 0 {
		return ""
	}
	var parts []string
	for _, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(e.Color))).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s ⇄ %s", swatch, e.Start, e.End))
	}
	return strings.Join(parts, "   ")
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		op := "Export PNG"
		if m.fileOp == FileOpSaveItinerary {
			op = "Export itinerary"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | %s | %s filename: %s█ | Enter=retry, Esc=cancel", errorStyle.Render("ERROR: "+m.errorMessage), op, m.filename)
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmReset:
			message = "Clear the whole trip? (y/n)"
		case ConfirmQuit:
			message = "Quit tripline? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.exportName())
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	}

	status := fmt.Sprintf("Mode: INPUT | %s", m.ctrl.State())
	if m.successMessage != "" {
		status += fmt.Sprintf(" | %s", m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" {
		status += " | F1 for help | Ctrl+Q to quit"
	}
	return status
}

func (m model) helpView() string {
	helpLines := []string{
		"tripline help",
		"=============",
		"",
		"Legs:",
		"-----",
		"  Type             Edit the focused field",
		"  Tab/↑/↓          Switch between Start and End",
		"  ←/→              Move the cursor",
		"  Enter            Add the leg (or jump to End when it is empty)",
		"  Esc              Clear the form",
		"  Ctrl+V           Paste legs from the clipboard, one START > END per line",
		"",
		"Trip:",
		"-----",
		"  Ctrl+R           Clear the whole trip",
		"  Ctrl+S           Export the diagram as PNG",
		"  Ctrl+T           Export the itinerary as text",
		"  Ctrl+Y           Copy the itinerary to the clipboard",
		"",
		"General:",
		"  F1               Toggle this help screen",
		"  Ctrl+Q/Ctrl+C    Quit",
	}
	return strings.Join(helpLines, "\n")
}
