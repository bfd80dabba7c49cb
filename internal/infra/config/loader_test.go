package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhishekDinesan/hedgehog/internal/demo"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, demo.Config{Values: []int{1, 2, 3}, PauseAfter: 2, Remove: []int{2}}, cfg)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "defaults.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, cfg.Values)
	assert.Equal(t, 4, cfg.PauseAfter)
	assert.Equal(t, []int{30}, cfg.Remove)
}

func TestLoadShortValuesKeepsPauseInRange(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "short.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, cfg.Values)
	assert.Equal(t, 2, cfg.PauseAfter)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	assert.ErrorIs(t, err, demo.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		kind demo.ErrorKind
	}{
		{name: "missing file", file: "nope.yaml", kind: demo.KindNotFound},
		{name: "malformed yaml", file: "malformed.yaml", kind: demo.KindInvalidConfig},
		{name: "pause out of range", file: "pause_out_of_range.yaml", kind: demo.KindInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join("testdata", tt.file)
			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, demo.IsKind(err, tt.kind), "kind of %v", err)
			assert.True(t, strings.Contains(err.Error(), path), "expected path in error, got %v", err)
		})
	}
}

func TestMapExplicitZeroPause(t *testing.T) {
	zero := 0
	cfg := Map(YAMLDemo{PauseAfter: &zero})
	assert.Equal(t, 0, cfg.PauseAfter)
	assert.Nil(t, cfg.Remove)
}
