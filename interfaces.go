package main

import (
	"context"
	"database/sql"

	"github.com/alc6/histgen/history"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=main

// ScriptReader handles finding and reading DDL scripts
type ScriptReader interface {
	// DiscoverScripts finds all script files in the given directory tree
	DiscoverScripts(dir string) ([]Script, error)
	// ReadScript returns the contents of a script
	ReadScript(script Script) (string, error)
}

// ArtifactWriter persists generated artifacts
type ArtifactWriter interface {
	// Write stores the artifact under its kind directory, replacing any previous file
	Write(artifact history.Artifact) (WrittenArtifact, error)
	// Remove deletes a previously written artifact; a missing file is not an error
	Remove(artifact history.Artifact) error
}

// DatabaseManager handles database lifecycle and operations
type DatabaseManager interface {
	// Setup creates and initializes the database connection
	Setup(ctx context.Context) error
	// Close cleans up database resources
	Close(ctx context.Context) error
	// Exec runs a single statement or PL/SQL unit
	Exec(ctx context.Context, statement string) error
	// InvalidObjects lists objects of owner that failed to compile
	InvalidObjects(ctx context.Context, owner string) ([]string, error)
	// GetDB returns the underlying database connection
	GetDB() *sql.DB
}
