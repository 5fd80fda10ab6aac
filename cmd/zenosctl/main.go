package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zenosctl",
		Short:         "Operator tooling for the top-up processor and its Zenospay integration",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(keygenCmd())
	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(webhookCmd())
	rootCmd.AddCommand(adminTokenCmd())
	rootCmd.AddCommand(loadtestCmd())

	return rootCmd
}

// envOr returns the value of the environment variable name, or fallback when it is unset
func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// readKey returns the inline key, or the contents of file when it is set
func readKey(inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}
	return string(data), nil
}
