package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/alc6/histgen/ddl"
	"github.com/alc6/histgen/history"
)

// verifyArtifacts applies every generated table to a scratch database: the
// source table first, then each artifact in write order. It fails when a
// statement is rejected or a generated object is left INVALID.
func verifyArtifacts(ctx context.Context, dbManager DatabaseManager, tables []TableResult, logger *slog.Logger) error {
	if len(tables) == 0 {
		logger.Info("nothing to verify")
		return nil
	}

	logger.Info("setting up verification database")
	if err := dbManager.Setup(ctx); err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(ctx); err != nil {
			logger.Error("failed to cleanup", "error", err)
		}
	}()

	schemas := tableSchemas(tables)
	for _, schema := range schemas {
		logger.Debug("creating schema user", "schema", schema)
		if err := dbManager.Exec(ctx, createUserStatement(schema)); err != nil {
			return fmt.Errorf("failed to create schema %s: %w", schema, err)
		}
	}

	var errs []error
	for _, result := range tables {
		if err := applyTable(ctx, dbManager, result, logger); err != nil {
			logger.Error("verification failed", "file", result.Script.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", result.Script.Name, err))
		}
	}

	for _, schema := range schemas {
		invalid, err := dbManager.InvalidObjects(ctx, schema)
		if err != nil {
			return fmt.Errorf("failed to check objects of %s: %w", schema, err)
		}
		for _, object := range invalid {
			errs = append(errs, fmt.Errorf("%s: %s is invalid", schema, object))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	logger.Info("verified generated artifacts", "tables", len(tables))
	return nil
}

func applyTable(ctx context.Context, dbManager DatabaseManager, result TableResult, logger *slog.Logger) error {
	if err := dbManager.Exec(ctx, result.Table.Statement); err != nil {
		return fmt.Errorf("failed to create source table %s: %w", result.Table.QualifiedName(), err)
	}
	for _, artifact := range result.Artifacts.All() {
		for _, statement := range ddl.SplitScript(artifact.SQL) {
			if err := dbManager.Exec(ctx, statement); err != nil {
				return fmt.Errorf("failed to apply %s: %w", artifact.Path(), err)
			}
		}
		logger.Debug("applied artifact", "artifact", artifact.Path())
	}
	return nil
}

func tableSchemas(tables []TableResult) []string {
	seen := make(map[string]struct{})
	var schemas []string
	for _, result := range tables {
		if _, ok := seen[result.Table.Schema]; ok {
			continue
		}
		seen[result.Table.Schema] = struct{}{}
		schemas = append(schemas, result.Table.Schema)
	}
	sort.Strings(schemas)
	return schemas
}

func createUserStatement(schema string) string {
	return fmt.Sprintf(`CREATE USER %s IDENTIFIED BY "%s" QUOTA UNLIMITED ON USERS`, history.QuoteIdentifier(schema), oraclePassword)
}
