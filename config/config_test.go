package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("full_file", func(t *testing.T) {
		cfg, err := Load(strings.NewReader(`
input_dir: ddl
output_dir: generated
extensions: [".sql"]
log:
  file: run.log
  level: debug
verify:
  enabled: true
  image: gvenzl/oracle-free:23-slim
`))
		require.NoError(t, err)
		assert.Equal(t, &Root{
			InputDir:   "ddl",
			OutputDir:  "generated",
			Extensions: []string{".sql"},
			Log:        LogSection{File: "run.log", Level: "debug"},
			Verify:     VerifySection{Enabled: true, Image: "gvenzl/oracle-free:23-slim"},
		}, cfg)
	})

	t.Run("partial_file_keeps_defaults", func(t *testing.T) {
		cfg, err := Load(strings.NewReader("output_dir: out2\n"))
		require.NoError(t, err)
		assert.Equal(t, "out2", cfg.OutputDir)
		assert.Equal(t, DefaultInputDir, cfg.InputDir)
		assert.Equal(t, []string{".sql", ".ddl"}, cfg.Extensions)
		assert.Equal(t, DefaultLogFile, cfg.Log.File)
		assert.Equal(t, DefaultVerifyImage, cfg.Verify.Image)
		assert.False(t, cfg.Verify.Enabled)
	})

	t.Run("empty_file", func(t *testing.T) {
		cfg, err := Load(strings.NewReader("  \n"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("env_expansion", func(t *testing.T) {
		t.Setenv("HISTGEN_TEST_OUT", "/tmp/history")
		cfg, err := Load(strings.NewReader("output_dir: ${HISTGEN_TEST_OUT}/sql\n"))
		require.NoError(t, err)
		assert.Equal(t, "/tmp/history/sql", cfg.OutputDir)
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := Load(strings.NewReader("input_dir: ddl\nparallel: 4\n"))
		assert.Error(t, err)
	})

	t.Run("invalid_log_level", func(t *testing.T) {
		_, err := Load(strings.NewReader("log:\n  level: verbose\n"))
		assert.Error(t, err)
	})

	t.Run("extension_without_dot", func(t *testing.T) {
		_, err := Load(strings.NewReader("extensions: [sql]\n"))
		assert.Error(t, err)
	})

	t.Run("wrong_type", func(t *testing.T) {
		_, err := Load(strings.NewReader("verify:\n  enabled: maybe\n"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("existing_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "histgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("input_dir: scripts\n"), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "scripts", cfg.InputDir)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := LogSection{Level: tt.level}.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := LogSection{Level: "loud"}.SlogLevel()
		assert.Error(t, err)
	})
}
