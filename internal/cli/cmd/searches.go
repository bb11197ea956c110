package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/domain/entity"
)

var searchesTab string

var searchesCmd = &cobra.Command{
	Use:   "searches",
	Short: "List stored search navigations",
	Long:  `List the search queries recorded against tab history entries.`,
	RunE:  runSearches,
}

func init() {
	rootCmd.AddCommand(searchesCmd)

	searchesCmd.Flags().StringVar(&searchesTab, "tab", "", "only show entries of this tab id")
}

func runSearches(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	navs, err := a.ListSearchNavigationsUC.Execute(a.Ctx(), entity.TabID(searchesTab))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Renderer.SearchNavigations(navs))
	return nil
}
