package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SaveDirectory   string  `toml:"save_directory"`
	ContainerWidth  float64 `toml:"container_width"`
	ContainerHeight float64 `toml:"container_height"`
	CellWidth       float64 `toml:"cell_width"`
	CellHeight      float64 `toml:"cell_height"`
	FontSize        float64 `toml:"font_size"`
	Seed            int64   `toml:"seed"` // 0 picks a fresh palette every run
	AutoExport      bool    `toml:"auto_export"`
	PreviewFile     string  `toml:"preview_file"`
	DebugLog        string  `toml:"debug_log"`
	Confirmations   bool    `toml:"confirmations"`
}

func defaultConfig() *Config {
	return &Config{
		ContainerWidth:  1200,
		ContainerHeight: 800,
		CellWidth:       8,
		CellHeight:      16,
		FontSize:        12,
		PreviewFile:     "tripline-preview.png",
		Confirmations:   true,
	}
}

// loadConfig reads ~/.triplinerc. A missing or broken file yields the defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	data, err := os.ReadFile(filepath.Join(homeDir, ".triplinerc"))
	if err != nil {
		return defaultConfig()
	}
	config, err := parseConfig(data, homeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: ignoring ~/.triplinerc: %v\n", err)
		return defaultConfig()
	}
	return config
}

func parseConfig(data []byte, homeDir string) (*Config, error) {
	config := defaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	config.SaveDirectory = expandPath(config.SaveDirectory, homeDir)
	config.DebugLog = expandPath(config.DebugLog, homeDir)

	defaults := defaultConfig()
	if config.CellWidth <= 0 {
		config.CellWidth = defaults.CellWidth
	}
	if config.CellHeight <= 0 {
		config.CellHeight = defaults.CellHeight
	}
	if config.FontSize <= 0 {
		config.FontSize = defaults.FontSize
	}
	if config.ContainerWidth <= 0 {
		config.ContainerWidth = defaults.ContainerWidth
	}
	if config.ContainerHeight <= 0 {
		config.ContainerHeight = defaults.ContainerHeight
	}
	if config.PreviewFile == "" {
		config.PreviewFile = defaults.PreviewFile
	}
	return config, nil
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
