package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/common"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/scan"
)

var (
	scanExt     string
	scanExclude string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Inspect a build output directory",
	Long: `Inspect a directory of generated files without building.

A missing directory is treated as empty. Unreadable files are skipped.`,
}

var scanCountCmd = &cobra.Command{
	Use:   "count <root>",
	Short: "Count files with an extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateExtension(scanExt); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), scan.CountFilesWithExtension(args[0], scanExt))
		return nil
	},
}

var scanFindCmd = &cobra.Command{
	Use:   "find <root> <pattern>",
	Short: "List files whose content matches a pattern",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		include, err := common.ValidatePattern(args[1])
		if err != nil {
			return err
		}

		var exclude *regexp.Regexp
		if scanExclude != "" {
			if exclude, err = common.ValidatePattern(scanExclude); err != nil {
				return fmt.Errorf("invalid --exclude: %w", err)
			}
		}

		s, err := markupScanner()
		if err != nil {
			return err
		}
		for _, path := range s.FindFilesMatching(args[0], include, exclude) {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

var scanMatchesCmd = &cobra.Command{
	Use:   "matches <root> <pattern>",
	Short: "Count pattern occurrences across matching files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := common.ValidatePattern(args[1])
		if err != nil {
			return err
		}

		s, err := markupScanner()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.CountMatches(args[0], pattern))
		return nil
	},
}

func init() {
	scanCountCmd.Flags().StringVar(&scanExt, "ext", scan.DefaultMarkupExt, "File extension to count")
	scanFindCmd.Flags().StringVar(&scanExclude, "exclude", "", "Skip files whose content matches this pattern")
	scanFindCmd.Flags().StringVar(&scanExt, "ext", scan.DefaultMarkupExt, "Suffix of files to inspect")
	scanMatchesCmd.Flags().StringVar(&scanExt, "ext", scan.DefaultMarkupExt, "Suffix of files to inspect")

	scanCmd.AddCommand(scanCountCmd, scanFindCmd, scanMatchesCmd)
	rootCmd.AddCommand(scanCmd)
}

func markupScanner() (scan.Scanner, error) {
	if err := common.ValidateExtension(scanExt); err != nil {
		return scan.Scanner{}, err
	}
	return scan.New(scanExt), nil
}
