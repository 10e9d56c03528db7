package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alc6/histgen/config"
	"github.com/alc6/histgen/ddl"
	"github.com/alc6/histgen/history"
)

var (
	configPath string
	outputDir  string
	logFile    string
	logLevel   string
	infoMode   bool
	verifyMode bool
	mcpMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "histgen [input-directory]",
	Short: "Generate Oracle history tables and audit triggers from CREATE TABLE scripts",
	Long: `histgen reads a directory tree of Oracle CREATE TABLE scripts, one table per
file, and generates for every table a history table, a sequence, a key
trigger and INSERT/UPDATE/DELETE audit triggers.

Output layout:
  <output>/TABLES/H_<TABLE>.sql
  <output>/SEQUENCES/H_<TABLE>_SEQ.sql
  <output>/TRIGGERS/H_<TABLE>_TRG.sql
  <output>/TRIGGERS/<TABLE>_H_{INS,UPD,DEL}_TRG.sql

Scripts that cannot be parsed are logged and skipped.

Modes:
  generate mode (default): writes the artifacts
  info mode (-i): prints the parsed tables, writes nothing
  verify (--verify): applies the artifacts to a throwaway Oracle container
  mcp mode (--mcp): run as Model Context Protocol server`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runHistgen,
}

func main() {
	if err := run(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	registerFlags(rootCmd)
	return rootCmd.Execute()
}

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Lookup("config") != nil {
		return
	}
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&outputDir, "output", "o", config.DefaultOutputDir, "Output directory")
	flags.StringVar(&logFile, "log-file", config.DefaultLogFile, "Append-only log file, empty to disable")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	flags.BoolVarP(&infoMode, "info", "i", false, "Print parsed tables instead of writing artifacts")
	flags.BoolVar(&verifyMode, "verify", false, "Apply generated artifacts to a throwaway Oracle container")
	flags.BoolVar(&mcpMode, "mcp", false, "Run as Model Context Protocol server")
}

// loadConfig reads the config file, if any, and applies flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command, args []string) (*config.Root, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if verifyMode {
		cfg.Verify.Enabled = true
	}
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	return cfg, nil
}

func runHistgen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	if mcpMode {
		logger.Info("starting mcp server")
		return StartMCPServer(cfg, logger)
	}

	reader := NewFileScriptReader(cfg.Extensions, logger)
	parser := ddl.NewParser(logger)

	if infoMode {
		info, err := describeScripts(cfg.InputDir, reader, parser, logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "=== PARSED TABLES ===")
		fmt.Fprint(cmd.OutOrStdout(), info)
		return nil
	}

	generator := history.NewGenerator(logger)
	writer := NewFileArtifactWriter(cfg.OutputDir, logger)
	summary, err := processScripts(cfg.InputDir, reader, parser, generator, writer, logger)
	if err != nil {
		return fmt.Errorf("failed to process scripts: %w", err)
	}
	printSummary(cmd.OutOrStdout(), summary)

	if cfg.Verify.Enabled {
		dbManager := NewOracleManager(cfg.Verify.Image, logger)
		return verifyArtifacts(cmd.Context(), dbManager, summary.Tables, logger)
	}
	return nil
}
