package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alc6/histgen/ddl"
	"github.com/alc6/histgen/history"
)

// Failure records a script that was skipped
type Failure struct {
	Script string `json:"script"`
	Stage  string `json:"stage"`
	Error  string `json:"error"`
	Err    error  `json:"-"`
}

// TableResult is a script that produced a full set of artifacts
type TableResult struct {
	Script    Script
	Table     *ddl.Table
	Artifacts *history.Artifacts
}

// Summary reports the outcome of a batch run
type Summary struct {
	Scripts   int               `json:"scripts"`
	Generated int               `json:"generated"`
	Skipped   int               `json:"skipped"`
	Written   []WrittenArtifact `json:"written"`
	Failures  []Failure         `json:"failures,omitempty"`
	Tables    []TableResult     `json:"-"`
}

func (s *Summary) skip(script Script, stage string, err error, logger *slog.Logger) {
	logger.Error("skipping script", "file", script.Name, "stage", stage, "error", err)
	s.Skipped++
	s.Failures = append(s.Failures, Failure{Script: script.Name, Stage: stage, Error: err.Error(), Err: err})
}

// processScripts parses every script under inputDir and writes its history
// artifacts. A script that fails at any stage is logged and skipped; only a
// missing directory, a failed discovery or an empty tree abort the run.
func processScripts(inputDir string, reader ScriptReader, parser *ddl.Parser, generator *history.Generator, writer ArtifactWriter, logger *slog.Logger) (*Summary, error) {
	logger.Info("processing input directory", "directory", inputDir)

	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	scripts, err := reader.DiscoverScripts(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to discover scripts: %w", err)
	}

	if len(scripts) == 0 {
		return nil, fmt.Errorf("no scripts found in directory: %s", inputDir)
	}

	summary := &Summary{Scripts: len(scripts)}
	for _, script := range scripts {
		logger.Info("processing script", "file", script.Name)

		text, err := reader.ReadScript(script)
		if err != nil {
			summary.skip(script, "read", err, logger)
			continue
		}

		table, err := parser.Parse(text)
		if err != nil {
			summary.skip(script, "parse", fmt.Errorf("%s: %w", script.Name, err), logger)
			continue
		}

		artifacts, err := generator.Generate(table)
		if err != nil {
			summary.skip(script, "generate", err, logger)
			continue
		}

		written, err := writeArtifacts(artifacts, writer, logger)
		if err != nil {
			summary.skip(script, "write", err, logger)
			continue
		}

		logger.Info("generated history",
			"file", script.Name,
			"schema", artifacts.Schema,
			"table", artifacts.Table,
			"columns", table.ColumnNames())
		summary.Written = append(summary.Written, written...)
		summary.Generated++
		summary.Tables = append(summary.Tables, TableResult{Script: script, Table: table, Artifacts: artifacts})
	}

	logger.Info("finished processing scripts",
		"scripts", summary.Scripts,
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"artifacts", len(summary.Written))
	return summary, nil
}

// writeArtifacts writes the whole set for one table. When a write fails the
// artifacts already written for the table are removed again.
func writeArtifacts(artifacts *history.Artifacts, writer ArtifactWriter, logger *slog.Logger) ([]WrittenArtifact, error) {
	var written []WrittenArtifact
	var done []history.Artifact
	for _, artifact := range artifacts.All() {
		w, err := writer.Write(artifact)
		if err != nil {
			err = fmt.Errorf("failed to write %s: %w", artifact.Path(), err)
			return nil, errors.Join(err, removeArtifacts(artifacts, done, writer, logger))
		}
		written = append(written, w)
		done = append(done, artifact)
	}
	return written, nil
}

func removeArtifacts(artifacts *history.Artifacts, done []history.Artifact, writer ArtifactWriter, logger *slog.Logger) error {
	var errs []error
	for _, artifact := range done {
		if err := writer.Remove(artifact); err != nil {
			logger.Error("failed to remove partial output",
				"schema", artifacts.Schema,
				"table", artifacts.Table,
				"artifact", artifact.Path(),
				"error", err)
			errs = append(errs, err)
		}
	}
	if len(done) > 0 {
		logger.Warn("removed partial output", "schema", artifacts.Schema, "table", artifacts.Table, "artifacts", len(done))
	}
	return errors.Join(errs...)
}

// describeScripts parses every script and formats the tables found. Scripts
// that fail to parse are logged and left out.
func describeScripts(inputDir string, reader ScriptReader, parser *ddl.Parser, logger *slog.Logger) (string, error) {
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return "", fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	scripts, err := reader.DiscoverScripts(inputDir)
	if err != nil {
		return "", fmt.Errorf("failed to discover scripts: %w", err)
	}

	var tables []*ddl.Table
	for _, script := range scripts {
		text, err := reader.ReadScript(script)
		if err != nil {
			logger.Error("skipping script", "file", script.Name, "stage", "read", "error", err)
			continue
		}
		table, err := parser.Parse(text)
		if err != nil {
			logger.Error("skipping script", "file", script.Name, "stage", "parse", "error", err)
			continue
		}
		tables = append(tables, table)
	}

	return ddl.FormatTableInfo(tables), nil
}

func printSummary(w io.Writer, summary *Summary) {
	fmt.Fprintf(w, "processed %d scripts: %d generated, %d skipped, %d files written\n",
		summary.Scripts, summary.Generated, summary.Skipped, len(summary.Written))
	for _, f := range summary.Failures {
		fmt.Fprintf(w, "  skipped %s (%s): %s\n", f.Script, f.Stage, f.Error)
	}
}
