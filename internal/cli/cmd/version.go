package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/build"
)

var buildInfo build.Info

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		theme := styles.NewTheme()
		if a := GetApp(); a != nil {
			theme = a.Theme
		}
		out := cmd.OutOrStdout()
		for _, kv := range [][2]string{
			{"Version", buildInfo.Version},
			{"Commit", buildInfo.Commit},
			{"Built", buildInfo.BuildDate},
			{"Go", buildInfo.GoVersion},
		} {
			fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render(fmt.Sprintf("%-8s", kv[0])), theme.Highlight.Render(kv[1]))
		}
		fmt.Fprintln(out, theme.Subtle.Render(build.RepoURL()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
