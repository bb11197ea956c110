package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	archivedLimit      int
	archivedPurgeAfter time.Duration
	archivedClear      bool
)

const defaultArchivedLimit = 50

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Inspect stored tabs",
}

var tabsArchivedCmd = &cobra.Command{
	Use:   "archived",
	Short: "List or purge archived tabs",
	Long: `List tabs that were closed or archived for inactivity.

Examples:
  tabshell tabs archived                        # Most recent 50
  tabshell tabs archived --purge-older-than 720h
  tabshell tabs archived --clear`,
	RunE: runTabsArchived,
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.AddCommand(tabsArchivedCmd)

	tabsArchivedCmd.Flags().IntVar(&archivedLimit, "limit", defaultArchivedLimit, "maximum tabs to show")
	tabsArchivedCmd.Flags().DurationVar(&archivedPurgeAfter, "purge-older-than", 0, "delete tabs archived longer ago than this")
	tabsArchivedCmd.Flags().BoolVar(&archivedClear, "clear", false, "delete all archived tabs")
	tabsArchivedCmd.MarkFlagsMutuallyExclusive("purge-older-than", "clear")
}

func runTabsArchived(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx, out := a.Ctx(), cmd.OutOrStdout()

	switch {
	case archivedClear:
		if err := a.ArchiveTabsUC.PurgeAll(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, a.Theme.Highlight.Render("Archived tabs cleared"))
		return nil
	case archivedPurgeAfter > 0:
		n, err := a.ArchiveTabsUC.PurgeOlderThan(ctx, archivedPurgeAfter)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, a.Theme.Highlight.Render(fmt.Sprintf("Purged %d archived tabs", n)))
		return nil
	}

	tabs, err := a.ArchiveTabsUC.List(ctx, archivedLimit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, a.Renderer.ArchivedTabs(tabs, time.Now()))
	return nil
}
