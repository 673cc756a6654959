package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripline/diagram"
	"tripline/layout"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.resize(msg.Width, msg.Height)
		m.autoExport()
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "f1", "q":
				m.help = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.mode {
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateInput(msg)
		}
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+q":
		if m.config.Confirmations && len(m.ctrl.Legs()) > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "f1":
		m.help = true
	case "tab", "shift+tab", "down", "up":
		m.toggleField()
	case "left":
		if m.cursorPos[m.field] > 0 {
			m.cursorPos[m.field]--
		}
	case "right":
		if m.cursorPos[m.field] < len([]rune(m.inputs[m.field])) {
			m.cursorPos[m.field]++
		}
	case "backspace":
		m.inputs[m.field], m.cursorPos[m.field] = deleteBefore(m.inputs[m.field], m.cursorPos[m.field])
	case "esc":
		m.clearForm()
	case "enter":
		m.submitLeg()
	case "ctrl+r":
		if len(m.ctrl.Legs()) == 0 {
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmReset
			return m, nil
		}
		m.resetTrip()
	case "ctrl+s":
		m.startFileInput(FileOpSavePNG, defaultPNGName)
	case "ctrl+t":
		m.startFileInput(FileOpSaveItinerary, defaultTxtName)
	case "ctrl+y":
		if len(m.ctrl.Legs()) == 0 {
			m.errorMessage = "nothing to copy"
			return m, nil
		}
		if err := writeClipboardText(m.itinerary()); err != nil {
			m.errorMessage = fmt.Sprintf("copy: %v", err)
			return m, nil
		}
		m.successMessage = "Itinerary copied"
	case "ctrl+v":
		m.pasteLegs()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.inputs[m.field], m.cursorPos[m.field] = insertAt(m.inputs[m.field], m.cursorPos[m.field], string(msg.Runes))
		}
	}
	return m, nil
}

func (m *model) toggleField() {
	if m.field == FieldStart {
		m.field = FieldEnd
	} else {
		m.field = FieldStart
	}
}

func (m *model) clearForm() {
	m.inputs = [2]string{}
	m.cursorPos = [2]int{}
	m.field = FieldStart
}

// submitLeg appends the leg in the form. With only a start filled in it moves
// focus to the end field instead.
func (m *model) submitLeg() {
	start := strings.TrimSpace(m.inputs[FieldStart])
	end := strings.TrimSpace(m.inputs[FieldEnd])
	if start != "" && end == "" && m.field == FieldStart {
		m.field = FieldEnd
		return
	}
	err := m.ctrl.AppendLeg(start, end)
	switch {
	case errors.Is(err, diagram.ErrInvalidInput):
		m.errorMessage = "enter both a start and an end"
		return
	case err != nil:
		m.errorMessage = err.Error()
		return
	}
	m.clearForm()
	m.autoExport()
}

func (m *model) pasteLegs() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("paste: %v", err)
		return
	}
	legs := parseLegs(text)
	if len(legs) == 0 {
		m.errorMessage = "clipboard has no legs (want START > END per line)"
		return
	}
	if m.appendLegs(legs) {
		m.successMessage = fmt.Sprintf("Pasted %d legs", len(legs))
	}
}

// appendLegs adds legs in order and stops at the first failure, reporting how many
// made it onto the trip.
func (m *model) appendLegs(legs []layout.Leg) bool {
	if m.ctrl.State() != diagram.StateReady {
		m.errorMessage = fmt.Sprintf("paste: %v", diagram.ErrNotReady)
		return false
	}
	for i, leg := range legs {
		if err := m.ctrl.AppendLeg(leg.Start, leg.End); err != nil {
			m.errorMessage = fmt.Sprintf("added %d of %d legs: %v", i, len(legs), err)
			if i > 0 {
				m.autoExport()
			}
			return false
		}
	}
	m.autoExport()
	return true
}

func (m *model) resetTrip() {
	m.ctrl.Reset()
	m.clearForm()
	m.successMessage = "Trip cleared"
}

func (m *model) startFileInput(op FileOperation, name string) {
	if len(m.ctrl.Legs()) == 0 {
		m.errorMessage = "nothing to export"
		return
	}
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = name
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = ModeInput
		m.errorMessage = ""
	case "backspace":
		if len(m.filename) > 0 {
			m.filename, _ = deleteBefore(m.filename, len([]rune(m.filename)))
		}
	case "enter":
		if m.filename == "" {
			m.errorMessage = "filename required"
			return m, nil
		}
		path := m.config.GetSavePath(m.exportName())
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		m.writeExport(path)
	default:
		if msg.Type == tea.KeyRunes {
			m.filename += string(msg.Runes)
		}
	}
	return m, nil
}

// exportName adds the extension the current file operation writes.
func (m *model) exportName() string {
	ext := ".png"
	if m.fileOp == FileOpSaveItinerary {
		ext = ".txt"
	}
	if strings.HasSuffix(strings.ToLower(m.filename), ext) {
		return m.filename
	}
	return m.filename + ext
}

func (m *model) writeExport(path string) {
	var err error
	switch m.fileOp {
	case FileOpSavePNG:
		err = m.exportPNG(path)
	case FileOpSaveItinerary:
		err = m.exportItinerary(path)
	}
	if err != nil {
		m.mode = ModeFileInput
		m.errorMessage = err.Error()
		return
	}
	m.mode = ModeInput
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Saved %s", path)
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmReset:
			m.mode = ModeInput
			m.resetTrip()
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.writeExport(m.config.GetSavePath(m.exportName()))
		}
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeInput
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
