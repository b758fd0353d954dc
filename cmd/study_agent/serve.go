package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-coach/internal/config"
	"github.com/jonathan/study-coach/internal/server"
)

const defaultServePort = 8080

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for registering an API key and running the guidance pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", defaultServePort, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(serveConfigPath, servePort, cmd.Flags().Changed("port"))
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{Port: cfg.Port})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveServeConfig merges the config file, the --port flag, and defaults,
// with explicit flags taking priority over config file values.
func resolveServeConfig(configPath string, portFlag int, portSet bool) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return config.Config{}, err
		}

		cfg = *loadedCfg
	}

	if portSet {
		cfg.Port = portFlag
	}

	return cfg.MergeWithDefaults(config.Config{Port: defaultServePort}), nil
}
