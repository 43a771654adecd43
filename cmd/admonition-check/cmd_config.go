package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, the config file and flags are applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}

		if _, err := os.Stat(ctx.Config.FilePath()); err == nil {
			ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
		} else {
			ctx.UI.Info("No configuration file, using defaults")
		}
		ctx.UI.Print("")

		data, err := yaml.Marshal(ctx.Config)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if _, err := os.Stat(cfg.FilePath()); err == nil && !configForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", cfg.FilePath())
		}

		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.FilePath())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")
	configShowCmd.Flags().StringVar(&siteDir, "site-dir", "", "Hugo test site directory")
	configShowCmd.Flags().StringVar(&buildDir, "build-dir", "", "Build output directory (relative to the site directory)")

	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
