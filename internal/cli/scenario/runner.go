package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabshell/internal/app/browser"
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	domainurl "github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/infrastructure/dispatch"
	"github.com/bnema/tabshell/internal/infrastructure/engine/memory"
	"github.com/bnema/tabshell/internal/logging"
)

// Frame is the observable shell state after a step.
type Frame struct {
	Step     int
	Action   Action
	Tabs     []entity.TabInfo
	Active   entity.ActiveTabSnapshot
	Searches []entity.SearchNavigation
	LazyTab  bool
	Crashed  bool
	Ready    bool
	URLBar   URLBarState
	// Err is set when the step could not be applied.
	Err error
}

// URLBarState is what the simulated URL bar shows.
type URLBarState struct {
	Focused bool
	Text    string
}

// Options configures a run. Options.Browser supplies the stores; the
// scenario overrides its URLs and incognito flag.
type Options struct {
	Browser browser.Options
	// IDs generates tab ids. Defaults to uuids.
	IDs func() entity.TabID
}

// urlBar implements port.URLBar for a run. It is only touched on the loop.
type urlBar struct {
	state URLBarState
}

func (u *urlBar) RequestFocus()           { u.state.Focused = true }
func (u *urlBar) ClearFocus()             { u.state.Focused = false }
func (u *urlBar) ReplaceText(text string) { u.state.Text = text }

type run struct {
	sc     *Scenario
	engine *memory.Browser
	coord  *browser.Coordinator
	bar    *urlBar

	searchURL string
}

// Run replays sc on a fresh engine and returns a frame for every step with
// Print set, plus the final state.
func Run(ctx context.Context, sc *Scenario, opts Options) ([]Frame, error) {
	ctx = logging.WithComponent(ctx, "scenario")
	log := logging.FromContext(ctx)
	log.Info().Str("name", sc.Name).Int("steps", len(sc.Steps)).Msg("running scenario")

	loop := dispatch.NewLoop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := loop.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	r := &run{sc: sc, bar: &urlBar{}}
	frames, runErr := r.play(gctx, loop, opts)

	if r.coord != nil {
		_ = loop.Do(gctx, r.coord.Detach)
		r.coord.Background().Wait()
	}
	loop.Close()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}
	return frames, runErr
}

func (r *run) play(ctx context.Context, loop *dispatch.Loop, opts Options) ([]Frame, error) {
	if err := loop.Do(ctx, func() { r.start(ctx, loop, opts) }); err != nil {
		return nil, err
	}

	var frames []Frame
	for i, step := range r.sc.Steps {
		var frame Frame
		err := loop.Do(ctx, func() {
			stepErr := r.apply(ctx, step)
			if stepErr != nil {
				logging.FromContext(ctx).Warn().Err(stepErr).Int("step", i+1).Str("action", string(step.Action)).Msg("step failed")
			}
			frame = r.frame(i+1, step.Action, stepErr)
		})
		if err != nil {
			return frames, fmt.Errorf("step %d: %w", i+1, err)
		}
		r.coord.Background().Wait()
		if step.Print || i == len(r.sc.Steps)-1 {
			frames = append(frames, frame)
		}
	}
	return frames, nil
}

func (r *run) start(ctx context.Context, loop *dispatch.Loop, opts Options) {
	bopts := opts.Browser
	if r.sc.HomeURL != "" {
		bopts.HomeURL = r.sc.HomeURL
	}
	if r.sc.SearchURL != "" {
		bopts.SearchURL = r.sc.SearchURL
	}
	bopts.Incognito = bopts.Incognito || r.sc.Incognito
	r.searchURL = bopts.SearchURL
	bopts.URLBar = r.bar
	bopts.Dispatcher = loop

	var engineOpts []memory.Option
	if opts.IDs != nil {
		engineOpts = append(engineOpts, memory.WithIDGenerator(opts.IDs))
	}
	restoring := r.sc.Restore != nil
	if restoring {
		engineOpts = append(engineOpts, memory.WithRestoring())
	}
	r.engine = memory.NewBrowser(engineOpts...)

	r.coord = browser.NewCoordinator(ctx, bopts)
	if err := r.coord.LoadSearchNavigations(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to load search navigations")
	}
	r.coord.Attach(r.engine)

	if !restoring {
		return
	}
	tabs := make([]memory.RestoredTab, 0, len(r.sc.Restore.Tabs))
	for _, t := range r.sc.Restore.Tabs {
		tabs = append(tabs, memory.RestoredTab{URL: t.URL, Title: t.Title, Data: t.Data, History: t.History})
	}
	active := r.sc.Restore.Active
	if len(tabs) == 0 {
		active = -1
	}
	r.engine.Restore(tabs, active)
	if !slices.ContainsFunc(r.sc.Steps, func(s Step) bool { return s.Action == ActionCompleteRestore }) {
		r.engine.CompleteRestore()
	}
}

func (r *run) apply(ctx context.Context, step Step) error {
	c := r.coord
	switch step.Action {
	case ActionLoad:
		target, _ := parseTarget(step.Target)
		uri, isSearch := domainurl.BuildSearchURL(step.Input, r.searchURL)
		req := browser.LoadRequest{URL: uri, Target: target}
		if isSearch {
			req.SearchQuery = step.Input
		}
		c.LoadURL(ctx, req)
	case ActionNavigate:
		tab, err := r.tab(step.Tab)
		if err != nil {
			return err
		}
		tab.Navigate(domainurl.Normalize(step.Input))
	case ActionSelect:
		tab, err := r.tab(step.Tab)
		if err != nil {
			return err
		}
		c.SelectTab(tab.ID())
	case ActionClose:
		tab, err := r.tab(step.Tab)
		if err != nil {
			return err
		}
		c.CloseTab(tab.ID())
	case ActionCloseAll:
		c.CloseAllTabs()
	case ActionCloseInactive:
		c.CloseInactiveTabs()
	case ActionStartClosing:
		tab, err := r.tab(step.Tab)
		if err != nil {
			return err
		}
		c.StartClosingTab(tab.ID())
	case ActionCancelClosing:
		tab, err := r.tab(step.Tab)
		if err != nil {
			return err
		}
		c.CancelClosingTab(tab.ID())
	case ActionOpenLazy:
		c.OpenLazyTab(true)
	case ActionFocusURLBar:
		r.bar.RequestFocus()
		c.OnURLBarFocusChanged(true)
	case ActionBlurURLBar:
		r.bar.ClearFocus()
		c.OnURLBarFocusChanged(false)
	case ActionBack:
		c.GoBack()
	case ActionForward:
		c.GoForward()
	case ActionReload:
		c.Reload()
	case ActionToggleDesktop:
		c.ToggleDesktopSite()
	case ActionScreenshot:
		c.TakeScreenshotOfActiveTab(nil)
	case ActionOpenFromPage:
		tab, err := r.tab(step.Tab)
		if err != nil {
			return err
		}
		kind, _ := parseKind(step.Kind)
		r.engine.OpenFromPage(tab, kind, domainurl.Normalize(step.Input))
	case ActionCrash:
		tab, err := r.tab(step.Tab)
		if err != nil {
			return err
		}
		tab.Crash()
	case ActionCompleteRestore:
		if !r.engine.IsRestoringPreviousState() {
			return errors.New("browser is not restoring")
		}
		r.engine.CompleteRestore()
	}
	return nil
}

// tab resolves a tab list position, or the active tab when pos is nil.
func (r *run) tab(pos *int) (*memory.Tab, error) {
	if pos == nil {
		active := r.engine.ActiveTab()
		if active == nil {
			return nil, errors.New("no active tab")
		}
		tab, _ := r.engine.Tab(active.ID())
		return tab, nil
	}
	tabs := r.coord.OrderedTabs().Get()
	if *pos < 0 || *pos >= len(tabs) {
		return nil, fmt.Errorf("tab %d out of range (%d tabs)", *pos, len(tabs))
	}
	tab, ok := r.engine.Tab(tabs[*pos].ID)
	if !ok {
		return nil, fmt.Errorf("tab %d is gone", *pos)
	}
	return tab, nil
}

func (r *run) frame(step int, action Action, err error) Frame {
	return Frame{
		Step:     step,
		Action:   action,
		Tabs:     slices.Clone(r.coord.OrderedTabs().Get()),
		Active:   r.coord.ActiveTab().Snapshot(),
		Searches: r.coord.SearchNavigations().ForTab(r.coord.ActiveTab().ActiveTabID()),
		LazyTab:  r.coord.IsLazyTab().Get(),
		Crashed:  r.coord.ShouldDisplayCrashedTab().Get(),
		Ready:    r.coord.IsReady(),
		URLBar:   r.bar.state,
		Err:      err,
	}
}

func parseTarget(s string) (browser.TabTarget, error) {
	switch s {
	case "", "auto":
		return browser.TabTargetAuto, nil
	case "new":
		return browser.TabTargetNew, nil
	case "current":
		return browser.TabTargetCurrent, nil
	default:
		return 0, fmt.Errorf("unknown target %q", s)
	}
}

func parseKind(s string) (port.NewTabType, error) {
	switch s {
	case "", "foreground":
		return port.NewTabForeground, nil
	case "background":
		return port.NewTabBackground, nil
	case "popup":
		return port.NewTabPopup, nil
	case "window":
		return port.NewTabWindow, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}
