package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigValid(t *testing.T) {
	data := []byte(`
save_directory = "~/trips"
container_width = 1600
container_height = 900
seed = 42
auto_export = true
preview_file = "live.png"
confirmations = false
`)
	config, err := parseConfig(data, "/home/traveller")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/traveller", "trips"), config.SaveDirectory)
	assert.Equal(t, 1600.0, config.ContainerWidth)
	assert.Equal(t, 900.0, config.ContainerHeight)
	assert.Equal(t, int64(42), config.Seed)
	assert.True(t, config.AutoExport)
	assert.Equal(t, "live.png", config.PreviewFile)
	assert.False(t, config.Confirmations)
	assert.Equal(t, 8.0, config.CellWidth, "unset keys keep their defaults")
}

func TestParseConfigFillsNonPositive(t *testing.T) {
	config, err := parseConfig([]byte("cell_width = 0\nfont_size = -3\npreview_file = \"\"\n"), "/home/traveller")
	require.NoError(t, err)
	defaults := defaultConfig()
	assert.Equal(t, defaults.CellWidth, config.CellWidth)
	assert.Equal(t, defaults.FontSize, config.FontSize)
	assert.Equal(t, defaults.PreviewFile, config.PreviewFile)
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := parseConfig([]byte("container_width = \"wide\""), "/home/traveller")
	assert.Error(t, err)
}

func TestGetSavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	config := &Config{SaveDirectory: dir}
	assert.Equal(t, filepath.Join(dir, "trip.png"), config.GetSavePath("trip.png"))
	assert.DirExists(t, dir)

	assert.Equal(t, "trip.png", (&Config{}).GetSavePath("trip.png"))
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("1200x800")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, w)
	assert.Equal(t, 800.0, h)

	for _, bad := range []string{"", "1200", "x800", "0x10", "wide x tall"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}
