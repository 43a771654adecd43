package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/cli"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/system"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the build output",
	Long: `Remove the build output directory of the test site.

Asks for confirmation unless --yes is given or stdin is not a terminal.`,
	Args: cobra.NoArgs,
	RunE: cleanOutput,
}

func init() {
	cleanCmd.Flags().StringVar(&siteDir, "site-dir", "", "Hugo test site directory")
	cleanCmd.Flags().StringVar(&buildDir, "build-dir", "", "Build output directory (relative to the site directory)")
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func cleanOutput(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Logger.Sync() }()

	lock := system.NewRunLock(ctx.Config.ResolvedBuildDir())
	if err := lock.TryLock(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			ctx.Logger.Warn("failed to release run lock", zap.Error(err))
		}
	}()

	removed, err := cli.CleanBuild(ctx)
	if err != nil {
		return err
	}

	if removed {
		ctx.UI.Successf("Build output removed: %s", ctx.Config.ResolvedBuildDir())
	} else {
		ctx.UI.Info("Nothing removed")
	}
	return nil
}
