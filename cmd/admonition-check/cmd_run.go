package main

import (
	"github.com/spf13/cobra"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/cli"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/config"
)

var (
	// Global flags
	configPath string
	debug      bool

	// Flags for the suite
	siteDir        string
	buildDir       string
	contentDir     string
	hugoBinary     string
	noClean        bool
	assumeYes      bool
	nonInteractive bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Clean, build and validate the test site",
	Long: `Run the full suite: remove the previous build, build the test site with
Hugo and validate the generated output.`,
	Args: cobra.NoArgs,
	RunE: runSuite,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

// addRunFlags registers the suite flags on cmd. The root command and `run`
// share the same variables.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&siteDir, "site-dir", "", "Hugo test site directory")
	cmd.Flags().StringVar(&buildDir, "build-dir", "", "Build output directory (relative to the site directory)")
	cmd.Flags().StringVar(&contentDir, "content-dir", "", "Markdown test cases directory (relative to the site directory)")
	cmd.Flags().StringVar(&hugoBinary, "hugo", "", "Hugo executable")
	cmd.Flags().BoolVar(&noClean, "no-clean", false, "Keep the previous build output")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Remove the previous build without asking")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt")
}

func runSuite(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Logger.Sync() }()

	report, err := cli.RunSuite(ctx)
	if err != nil {
		return err
	}
	if !report.Passed() {
		return cli.ErrChecksFailed
	}
	return nil
}

// newContext builds the run context from the config file and flags
func newContext() (*cli.Context, error) {
	return cli.NewContextWithOptions(cli.Options{
		ConfigPath:     configPath,
		NonInteractive: nonInteractive,
		AssumeYes:      assumeYes,
		Debug:          debug,
		Override:       applyFlagOverrides,
	})
}

func applyFlagOverrides(cfg *config.Config) {
	if siteDir != "" {
		cfg.SiteDir = siteDir
	}
	if buildDir != "" {
		cfg.BuildDir = buildDir
	}
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}
	if hugoBinary != "" {
		cfg.HugoBinary = hugoBinary
	}
	if noClean {
		cfg.Clean = false
	}
}
