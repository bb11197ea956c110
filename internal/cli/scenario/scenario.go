// Package scenario replays scripted tab sessions against the in-memory
// engine. Scenarios are YAML files used by the simulate command.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Action names a step of a scenario.
type Action string

const (
	ActionLoad            Action = "load"
	ActionNavigate        Action = "navigate"
	ActionSelect          Action = "select"
	ActionClose           Action = "close"
	ActionCloseAll        Action = "close_all"
	ActionCloseInactive   Action = "close_inactive"
	ActionStartClosing    Action = "start_closing"
	ActionCancelClosing   Action = "cancel_closing"
	ActionOpenLazy        Action = "open_lazy"
	ActionFocusURLBar     Action = "focus_url_bar"
	ActionBlurURLBar      Action = "blur_url_bar"
	ActionBack            Action = "back"
	ActionForward         Action = "forward"
	ActionReload          Action = "reload"
	ActionToggleDesktop   Action = "toggle_desktop"
	ActionScreenshot      Action = "screenshot"
	ActionOpenFromPage    Action = "open_from_page"
	ActionCrash           Action = "crash"
	ActionCompleteRestore Action = "complete_restore"
)

var knownActions = map[Action]bool{
	ActionLoad: true, ActionNavigate: true, ActionSelect: true, ActionClose: true,
	ActionCloseAll: true, ActionCloseInactive: true, ActionStartClosing: true,
	ActionCancelClosing: true, ActionOpenLazy: true, ActionFocusURLBar: true,
	ActionBlurURLBar: true, ActionBack: true, ActionForward: true, ActionReload: true,
	ActionToggleDesktop: true, ActionScreenshot: true, ActionOpenFromPage: true,
	ActionCrash: true, ActionCompleteRestore: true,
}

// ErrNoSteps is returned for a scenario without steps.
var ErrNoSteps = errors.New("scenario has no steps")

// Scenario is a scripted session.
type Scenario struct {
	Name      string   `yaml:"name"`
	HomeURL   string   `yaml:"home_url"`
	SearchURL string   `yaml:"search_url"`
	Incognito bool     `yaml:"incognito"`
	Restore   *Restore `yaml:"restore"`
	Steps     []Step   `yaml:"steps"`
}

// Restore describes the previous session the engine restores on start.
type Restore struct {
	Active int           `yaml:"active"`
	Tabs   []RestoredTab `yaml:"tabs"`
}

// RestoredTab is one tab of a previous session.
type RestoredTab struct {
	URL     string            `yaml:"url"`
	Title   string            `yaml:"title"`
	History []string          `yaml:"history"`
	Data    map[string]string `yaml:"data"`
}

// Step is one user or engine action.
type Step struct {
	Action Action `yaml:"action"`
	// Input is URL bar text for load, or a URL for navigate and open_from_page.
	Input string `yaml:"input"`
	// Target is auto, new or current for load.
	Target string `yaml:"target"`
	// Tab is a position in the tab list; nil means the active tab.
	Tab *int `yaml:"tab"`
	// Kind is foreground, background, popup or window for open_from_page.
	Kind string `yaml:"kind"`
	// Print emits a frame after the step.
	Print bool `yaml:"print"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a scenario.
func Parse(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if len(sc.Steps) == 0 {
		return ErrNoSteps
	}
	for i, step := range sc.Steps {
		if !knownActions[step.Action] {
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
		switch step.Action {
		case ActionLoad, ActionNavigate:
			if step.Input == "" {
				return fmt.Errorf("step %d: %s needs input", i+1, step.Action)
			}
		}
		if _, err := parseTarget(step.Target); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if _, err := parseKind(step.Kind); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	if sc.Restore != nil && len(sc.Restore.Tabs) > 0 {
		if sc.Restore.Active >= len(sc.Restore.Tabs) {
			return fmt.Errorf("restore: active tab %d out of range", sc.Restore.Active)
		}
	}
	return nil
}
