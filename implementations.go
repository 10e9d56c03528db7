package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"github.com/alc6/histgen/history"
)

type FileScriptReader struct {
	extensions []string
	logger     *slog.Logger
}

func NewFileScriptReader(extensions []string, logger *slog.Logger) ScriptReader {
	return &FileScriptReader{extensions: extensions, logger: logger}
}

func (r *FileScriptReader) DiscoverScripts(dir string) ([]Script, error) {
	r.logger.Debug("scanning input directory", "directory", dir, "extensions", r.extensions)
	scripts, err := DiscoverScripts(dir, r.extensions)
	if err != nil {
		return nil, err
	}
	r.logger.Info("discovered scripts", "count", len(scripts))
	return scripts, nil
}

func (r *FileScriptReader) ReadScript(script Script) (string, error) {
	content, err := os.ReadFile(script.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read script %s: %w", script.Name, err)
	}
	return string(content), nil
}

// WrittenArtifact describes a file produced by an ArtifactWriter
type WrittenArtifact struct {
	Path     string `json:"path"`
	Size     int    `json:"size"`
	Checksum string `json:"checksum"`
}

// FileArtifactWriter writes artifacts below a root directory. Files are
// replaced atomically so a crash never leaves a truncated artifact.
type FileArtifactWriter struct {
	root   string
	logger *slog.Logger
}

func NewFileArtifactWriter(root string, logger *slog.Logger) ArtifactWriter {
	return &FileArtifactWriter{root: root, logger: logger}
}

func (w *FileArtifactWriter) Write(artifact history.Artifact) (WrittenArtifact, error) {
	path := filepath.Join(w.root, artifact.Path())
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return WrittenArtifact{}, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+artifact.FileName()+".*.tmp")
	if err != nil {
		return WrittenArtifact{}, fmt.Errorf("failed to create temp file for %s: %w", artifact.Name, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.WriteString(artifact.SQL); err != nil {
		cleanup()
		return WrittenArtifact{}, fmt.Errorf("failed to write %s: %w", artifact.Name, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return WrittenArtifact{}, fmt.Errorf("failed to sync %s: %w", artifact.Name, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return WrittenArtifact{}, fmt.Errorf("failed to set permissions on %s: %w", artifact.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return WrittenArtifact{}, fmt.Errorf("failed to close %s: %w", artifact.Name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return WrittenArtifact{}, fmt.Errorf("failed to move %s into place: %w", artifact.Name, err)
	}

	written := WrittenArtifact{
		Path:     path,
		Size:     len(artifact.SQL),
		Checksum: checksum(artifact.SQL),
	}
	w.logger.Info("wrote artifact", "path", path, "bytes", written.Size, "checksum", written.Checksum)
	return written, nil
}

func (w *FileArtifactWriter) Remove(artifact history.Artifact) error {
	path := filepath.Join(w.root, artifact.Path())
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	w.logger.Info("removed artifact", "path", path)
	return nil
}

func checksum(content string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(content))
}
