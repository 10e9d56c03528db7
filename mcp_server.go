package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/alc6/histgen/config"
	"github.com/alc6/histgen/ddl"
	"github.com/alc6/histgen/history"
)

// StartMCPServer starts the MCP server for history generation over stdio
func StartMCPServer(cfg *config.Root, logger *slog.Logger) error {
	s := server.NewMCPServer(
		"histgen",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	generateHistoryTool := mcp.NewTool("generate_history",
		mcp.WithDescription("Generate history tables, sequences and audit triggers for every CREATE TABLE script in a directory"),
		mcp.WithString("input_directory",
			mcp.Required(),
			mcp.Description("Path to directory containing CREATE TABLE scripts"),
		),
		mcp.WithString("output_directory",
			mcp.Description(fmt.Sprintf("Directory receiving the generated files (default: %s)", cfg.OutputDir)),
		),
	)

	s.AddTool(generateHistoryTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGenerateHistory(ctx, request, cfg, logger)
	})

	parseDDLTool := mcp.NewTool("parse_ddl",
		mcp.WithDescription("Parse a single CREATE TABLE statement and return its schema, table, columns and trailing clauses as JSON"),
		mcp.WithString("ddl",
			mcp.Required(),
			mcp.Description("CREATE TABLE statement"),
		),
	)

	s.AddTool(parseDDLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleParseDDL(ctx, request, logger)
	})

	renderHistoryTool := mcp.NewTool("render_history",
		mcp.WithDescription("Render the history artifacts for a single CREATE TABLE statement without writing files"),
		mcp.WithString("ddl",
			mcp.Required(),
			mcp.Description("CREATE TABLE statement"),
		),
	)

	s.AddTool(renderHistoryTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRenderHistory(ctx, request, logger)
	})

	logger.Info("starting histgen mcp server")
	return server.ServeStdio(s)
}

// handleGenerateHistory processes the generate_history tool request
func handleGenerateHistory(_ context.Context, request mcp.CallToolRequest, cfg *config.Root, logger *slog.Logger) (*mcp.CallToolResult, error) {
	inputDir, err := request.RequireString("input_directory")
	if err != nil {
		return mcp.NewToolResultError("input_directory parameter is required"), nil
	}
	outputDir := request.GetString("output_directory", cfg.OutputDir)

	output, err := generateHistoryCore(inputDir, outputDir, cfg.Extensions, logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("history artifacts generated:\n\n%s", output)), nil
}

// generateHistoryCore runs the batch and returns its summary as JSON
func generateHistoryCore(inputDir, outputDir string, extensions []string, logger *slog.Logger) (string, error) {
	reader := NewFileScriptReader(extensions, logger)
	writer := NewFileArtifactWriter(outputDir, logger)

	summary, err := processScripts(inputDir, reader, ddl.NewParser(logger), history.NewGenerator(logger), writer, logger)
	if err != nil {
		return "", err
	}

	jsonOutput, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to JSON: %w", err)
	}
	return string(jsonOutput), nil
}

// handleParseDDL processes the parse_ddl tool request
func handleParseDDL(_ context.Context, request mcp.CallToolRequest, logger *slog.Logger) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("ddl")
	if err != nil {
		return mcp.NewToolResultError("ddl parameter is required"), nil
	}

	output, err := parseDDLCore(text, logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(output), nil
}

func parseDDLCore(text string, logger *slog.Logger) (string, error) {
	table, err := ddl.NewParser(logger).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse ddl: %w", err)
	}

	jsonOutput, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal table to JSON: %w", err)
	}
	return string(jsonOutput), nil
}

// handleRenderHistory processes the render_history tool request
func handleRenderHistory(_ context.Context, request mcp.CallToolRequest, logger *slog.Logger) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("ddl")
	if err != nil {
		return mcp.NewToolResultError("ddl parameter is required"), nil
	}

	output, err := renderHistoryCore(text, logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(output), nil
}

// renderHistoryCore returns every artifact prefixed with its relative path
func renderHistoryCore(text string, logger *slog.Logger) (string, error) {
	table, err := ddl.NewParser(logger).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse ddl: %w", err)
	}

	artifacts, err := history.NewGenerator(logger).Generate(table)
	if err != nil {
		return "", fmt.Errorf("failed to generate history: %w", err)
	}

	var sb strings.Builder
	for _, artifact := range artifacts.All() {
		fmt.Fprintf(&sb, "-- %s\n%s\n\n", artifact.Path(), artifact.SQL)
	}
	return sb.String(), nil
}
