package main

import (
	"fmt"
	"os"
	"strings"

	"tripline/layout"
	"tripline/palette"
)

func (m *model) exportPNG(filename string) error {
	if len(m.ctrl.Legs()) == 0 {
		return fmt.Errorf("nothing to export")
	}
	return m.host.canvas.SavePNG(filename)
}

func (m *model) exportItinerary(filename string) error {
	if len(m.ctrl.Legs()) == 0 {
		return fmt.Errorf("nothing to export")
	}
	return os.WriteFile(filename, []byte(m.itinerary()), 0644)
}

// itinerary lists the legs with their stations and colors, one per line.
func (m *model) itinerary() string {
	return formatItinerary(m.ctrl.Legs(), m.ctrl.Colors())
}

func formatItinerary(legs []layout.Leg, colors []palette.Entry) string {
	var b strings.Builder
	for i, leg := range legs {
		fmt.Fprintf(&b, "%d. %s -> %s", i+1, leg.Start, leg.End)
		for _, e := range colors {
			if (e.Start == leg.Start && e.End == leg.End) || (e.Start == leg.End && e.End == leg.Start) {
				fmt.Fprintf(&b, " %s", palette.Hex(e.Color))
				break
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// autoExport refreshes the preview image after a change when configured to.
func (m *model) autoExport() {
	if !m.config.AutoExport || len(m.ctrl.Legs()) == 0 {
		return
	}
	if err := m.host.canvas.SavePNG(m.config.GetSavePath(m.config.PreviewFile)); err != nil {
		m.errorMessage = fmt.Sprintf("preview: %v", err)
	}
}
