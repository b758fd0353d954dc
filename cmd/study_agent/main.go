// Package main provides the entry point for the AI study coach CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "study_agent",
	Short: "AI Study Coach",
	Long:  "AI Study Coach runs a three-expert pipeline over a generative model to produce layered Korean study guidance: foundations, practical application, and a learning path.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
