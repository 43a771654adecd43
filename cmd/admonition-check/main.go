package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/cli"
	"github.com/zoro11031/hugo-admonitions/admonition-check/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "admonition-check",
	Short: "Hugo Admonitions test suite",
	Long: `Builds the hugo-admonitions test site and validates the generated HTML.

A run:
- Removes the previous build output
- Builds the test site with hugo --quiet
- Checks that HTML was generated and admonitions rendered
- Checks the specific test cases (blockquote before admonition, error text)

Run without arguments to run the full suite. Exits 1 if any hard check fails;
warnings never change the exit status.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runSuite,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default .admonition-check.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to stderr")
	addRunFlags(rootCmd)
	rootCmd.Version = version.Short()
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// A failed report has already been printed
		if !errors.Is(err, cli.ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
