package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lifeplan/lifeplan-simulator/internal/calculation"
	"github.com/lifeplan/lifeplan-simulator/internal/config"
	"github.com/lifeplan/lifeplan-simulator/internal/output"
)

var (
	settingsPath string
	logLevelFlag string
)

// initializeLogger creates a zap logger based on settings and CLI override.
func initializeLogger(logging config.LoggingSettings, logLevelOverride string) (*zap.Logger, error) {
	level := logging.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := logging.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if logging.OutputFile != "" {
		if dir := filepath.Dir(logging.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		zapConfig.OutputPaths = []string{logging.OutputFile}
		zapConfig.ErrorOutputPaths = []string{logging.OutputFile}
	}

	return zapConfig.Build()
}

func newProjectCommand() *cobra.Command {
	var planPath string
	var formatFlag string
	var outFile string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Build the cash-flow projection from a plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				return err
			}
			logger, err := initializeLogger(settings.Logging, logLevelFlag)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			parser := config.NewPlanParser()
			plan, err := parser.LoadFromFile(planPath)
			if err != nil {
				logger.Error("failed to load plan", zap.String("path", planPath), zap.Error(err))
				return err
			}

			engine := calculation.NewEngine()
			engine.SetLogger(logger.Sugar())
			data := engine.Rebuild(plan)

			format := settings.Output.Format
			if formatFlag != "" {
				format = formatFlag
			}
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q", format)
			}

			if outFile == "" {
				outFile = settings.Output.File
			}
			if outFile != "" {
				rendered, err := formatter.Format(data)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outFile, rendered, 0o644); err != nil {
					return fmt.Errorf("failed to write report %s: %w", outFile, err)
				}
				logger.Info("report written", zap.String("file", outFile), zap.String("format", formatter.Name()))
				return nil
			}

			rendered, err := formatter.Format(data)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}
	cmd.Flags().StringVarP(&planPath, "plan", "c", "plan.yaml", "path to the plan file")
	cmd.Flags().StringVarP(&formatFlag, "output", "o", "", "output format override: console, csv, json")
	cmd.Flags().StringVar(&outFile, "out", "", "write the report to a file instead of stdout")
	return cmd
}

func newExampleCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a starter plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewPlanParser()
			plan := config.CreateExamplePlan()
			if err := parser.SaveToFile(plan, outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example plan written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "lifeplan_example.yaml", "path for the example plan")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "lifeplan",
		Short:         "Household and corporate life-plan cash-flow simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to an application settings file")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level override (debug, info, warn, error)")
	root.AddCommand(newProjectCommand(), newExampleCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
