package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-coach/internal/observability"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the available service types",
	Long:  `Lists the service catalog: canonical values, Korean labels, and the input fields each service expects.`,
	Run:   runServices,
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

func runServices(_ *cobra.Command, _ []string) {
	observability.NewPrinter(os.Stdout).PrintServiceCatalog()
}
