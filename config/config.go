package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInputDir    = "input"
	DefaultOutputDir   = "output"
	DefaultLogFile     = "histgen.log"
	DefaultLogLevel    = "info"
	DefaultVerifyImage = "gvenzl/oracle-free:23-slim-faststart"
)

type Root struct {
	InputDir   string        `yaml:"input_dir"`
	OutputDir  string        `yaml:"output_dir"`
	Extensions []string      `yaml:"extensions"`
	Log        LogSection    `yaml:"log"`
	Verify     VerifySection `yaml:"verify"`
}

type LogSection struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type VerifySection struct {
	Enabled bool   `yaml:"enabled"`
	Image   string `yaml:"image"`
}

// Default returns the configuration used when no file is given
func Default() *Root {
	return &Root{
		InputDir:   DefaultInputDir,
		OutputDir:  DefaultOutputDir,
		Extensions: []string{".sql", ".ddl"},
		Log: LogSection{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
		Verify: VerifySection{
			Image: DefaultVerifyImage,
		},
	}
}

func LoadFile(path string) (*Root, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load validates r against the embedded schema and decodes it over the
// defaults. Values may reference environment variables as ${VAR}.
func Load(r io.Reader) (*Root, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Default(), nil
	}
	if err := validateBytes(raw); err != nil {
		return nil, err
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	expandEnv(cfg)
	return cfg, nil
}

func expandEnv(cfg *Root) {
	cfg.InputDir = os.ExpandEnv(cfg.InputDir)
	cfg.OutputDir = os.ExpandEnv(cfg.OutputDir)
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)
	cfg.Verify.Image = os.ExpandEnv(cfg.Verify.Image)
}

// SlogLevel converts the configured level name
func (l LogSection) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
