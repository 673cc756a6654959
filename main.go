package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripline/diagram"
	"tripline/render"
	"tripline/render/raster"
)

func main() {
	var (
		output   = flag.String("o", "", "Render the legs given as arguments to this PNG file and exit")
		size     = flag.String("size", "", "Container size for batch rendering, e.g. 1200x800 (the image is half as tall)")
		seed     = flag.Int64("seed", 0, "Seed for route colors (0 = random)")
		fontSize = flag.Float64("font-size", 0, "Label font size in points")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [START:END ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Draws a schematic strip of a multi-leg trip.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # Interactive mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o trip.png NYC:LON LON:PAR PAR:NYC\n", os.Args[0])
	}
	flag.Parse()

	config := loadConfig()
	if *seed != 0 {
		config.Seed = *seed
	}
	if *fontSize > 0 {
		config.FontSize = *fontSize
	}
	if *size != "" {
		w, h, err := parseSize(*size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		config.ContainerWidth, config.ContainerHeight = w, h
	}

	if *output != "" {
		if err := renderBatch(config, flag.Args(), *output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := log.New(io.Discard, "", 0)
	if config.DebugLog != "" {
		f, err := tea.LogToFile(config.DebugLog, "tripline")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.Default()
	}

	m, err := initialModel(config, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer m.ctrl.Unmount()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newController(config *Config, logger *log.Logger) *diagram.Controller {
	opts := []diagram.Option{diagram.WithLogger(logger)}
	if config.Seed != 0 {
		opts = append(opts, diagram.WithColorSource(rand.New(rand.NewSource(config.Seed))))
	}
	return diagram.New(opts...)
}

func initialModel(config *Config, logger *log.Logger) (model, error) {
	host, err := newTermHost(config)
	if err != nil {
		return model{}, err
	}
	ctrl := newController(config, logger)
	if err := ctrl.Mount(host); err != nil {
		return model{}, err
	}
	return model{
		mode:   ModeInput,
		field:  FieldStart,
		config: config,
		ctrl:   ctrl,
		host:   host,
	}, nil
}

// renderBatch draws the legs in args and writes the image to output.
func renderBatch(config *Config, args []string, output string) error {
	if len(args) == 0 {
		return fmt.Errorf("no legs given")
	}
	w, h := render.SurfaceSize(config.ContainerWidth, config.ContainerHeight)
	canvas, err := raster.New(int(w), int(h), config.FontSize)
	if err != nil {
		return err
	}
	ctrl := newController(config, log.New(os.Stderr, "tripline: ", 0))
	if err := ctrl.Mount(&staticHost{width: config.ContainerWidth, height: config.ContainerHeight, canvas: canvas}); err != nil {
		return err
	}
	defer ctrl.Unmount()

	for _, arg := range args {
		leg, ok := parseLeg(arg)
		if !ok {
			return fmt.Errorf("invalid leg %q, want START:END", arg)
		}
		if err := ctrl.AppendLeg(leg.Start, leg.End); err != nil {
			return fmt.Errorf("append %q: %w", arg, err)
		}
	}
	return canvas.SavePNG(output)
}

func parseSize(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	return w, h, nil
}
