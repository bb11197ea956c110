package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/app/browser"
	"github.com/bnema/tabshell/internal/cli/scenario"
	"github.com/bnema/tabshell/internal/logging"
)

var (
	simulatePersist   bool
	simulateIncognito bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay a scripted tab session",
	Long: `Replay a YAML scenario against the in-memory engine and print the tab
list after each step marked print, and after the last step.

By default nothing is written. With --persist, history, archived tabs,
search navigations, thumbnails and favicons go to the configured storage.

Example scenario:

  name: search and come back
  restore:
    tabs:
      - url: https://example.com/
  steps:
    - action: load
      input: golang
      print: true
    - action: back`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().BoolVar(&simulatePersist, "persist", false, "write to the configured database and caches")
	simulateCmd.Flags().BoolVar(&simulateIncognito, "incognito", false, "run without history, favicons or archiving")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.WatchConfig(); err != nil {
		logging.FromContext(a.Ctx()).Warn().Err(err).Msg("config changes will not be picked up")
	}
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	opts := browser.Options{
		HomeURL:         a.Config.HomeURL,
		SearchURL:       a.Config.SearchURL,
		ScreenshotScale: a.Config.Screenshots.Scale,
		Incognito:       simulateIncognito,
	}
	if simulatePersist {
		opts = a.BrowserOptions(simulateIncognito)
	}

	ctx := logging.WithContext(cmd.Context(), *logging.FromContext(a.Ctx()))
	frames, err := scenario.Run(ctx, sc, scenario.Options{Browser: opts})
	if err != nil {
		return fmt.Errorf("run scenario: %w", err)
	}

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintln(out, a.Theme.Title.Render(sc.Name))
	}
	for _, f := range frames {
		fmt.Fprintln(out, a.Renderer.Frame(f))
	}
	return nil
}
