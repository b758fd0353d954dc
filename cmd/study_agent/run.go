package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-coach/internal/config"
	"github.com/jonathan/study-coach/internal/observability"
	"github.com/jonathan/study-coach/internal/session"
	"github.com/jonathan/study-coach/internal/team"
	"github.com/jonathan/study-coach/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the three-expert guidance pipeline once",
	Long: `Runs the full expert pipeline for one service request: foundations -> practical application -> learning path.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runService    string
	runInputs     []string
	runAPIKey     string
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runService, "service", "s", "", "Service type (canonical value or Korean label; see 'services' command)")
	runCommand.Flags().StringArrayVarP(&runInputs, "input", "i", nil, "Input field as key=value (repeatable, e.g. -i concept=신경망)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print the run log after the guide")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("service") {
		cfg.Service = runService
	}
	if cmd.Flags().Changed("input") {
		inputs, err := parseInputFlags(runInputs)
		if err != nil {
			return err
		}
		cfg.Input = inputs
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Validate required fields
	if cfg.Service == "" {
		return fmt.Errorf("--service is required (via flag or config); run 'study_agent services' for the catalog")
	}

	// Step 4: API key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	serviceType := types.ParseServiceType(cfg.Service)
	input := types.InputData(cfg.Input)

	sess, err := session.New(ctx, cfg.APIKey)
	if err != nil {
		return err
	}
	defer sess.Close() //nolint:errcheck

	printer := observability.NewPrinter(os.Stdout)

	var onProgress team.ProgressCallback
	if cfg.Verbose {
		onProgress = func(event team.ProgressEvent) {
			marker := "..."
			if event.Phase == team.PhaseCompleted {
				marker = "ok"
				if event.Fallback {
					marker = "fallback"
				}
			}
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s (%s)\n", marker, event.Message, event.Expert)
		}
	}

	finalText, runLog := sess.RunWithProgress(ctx, serviceType, input, onProgress)

	printer.PrintGuide(finalText)
	if cfg.Verbose {
		printer.PrintRunLog(&runLog)
	}
	return nil
}

// parseInputFlags converts repeated key=value flags to an input map.
func parseInputFlags(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --input %q: expected key=value", pair)
		}
		inputs[strings.TrimSpace(key)] = value
	}
	return inputs, nil
}
