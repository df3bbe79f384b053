package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "devops-info-service",
	Short: "HTTP service reporting service, host and runtime information",
	Long: "Serves GET / with service, system, runtime and request details and GET /health\n" +
		"with a liveness document. HOST, PORT and DEBUG configure the listener.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runServe,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML config file (overrides CONFIG_FILE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
