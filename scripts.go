package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Script is a DDL file found in the input tree
type Script struct {
	// Name is the path relative to the input directory, slash separated
	Name string `json:"name"`
	Path string `json:"path"`
}

// DiscoverScripts walks dir and returns the regular files whose extension is
// in extensions, sorted by path. An empty extension list accepts every file.
func DiscoverScripts(dir string, extensions []string) ([]Script, error) {
	var scripts []Script

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if !hasExtension(d.Name(), extensions) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		scripts = append(scripts, Script{Name: filepath.ToSlash(rel), Path: path})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk input directory: %w", err)
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].Path < scripts[j].Path
	})

	return scripts, nil
}

func hasExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
