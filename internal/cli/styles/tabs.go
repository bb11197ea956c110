package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/cli/scenario"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// TabRenderer renders tab lists and related records.
type TabRenderer struct {
	theme *Theme
}

// NewTabRenderer creates a renderer using theme.
func NewTabRenderer(theme *Theme) *TabRenderer {
	return &TabRenderer{theme: theme}
}

// Frame renders the state after a scenario step.
func (r *TabRenderer) Frame(f scenario.Frame) string {
	t := r.theme
	header := fmt.Sprintf("step %d  %s", f.Step, f.Action)
	if !f.Ready {
		header += "  " + t.WarningStyle.Render("restoring")
	}

	lines := []string{t.BoxHeader.Render(header)}
	if f.Err != nil {
		lines = append(lines, t.ErrorStyle.Render("error: "+f.Err.Error()))
	}
	lines = append(lines, r.urlBar(f))
	if len(f.Tabs) == 0 {
		lines = append(lines, t.Subtle.Render("  no tabs"))
	}
	for i, tab := range f.Tabs {
		lines = append(lines, r.tabLine(i, tab))
	}
	for _, nav := range f.Searches {
		lines = append(lines, t.Subtle.Render(fmt.Sprintf("  search #%d %q", nav.NavigationIndex, nav.SearchQuery)))
	}
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (r *TabRenderer) urlBar(f scenario.Frame) string {
	t := r.theme
	shown := f.Active.Displayed.Text
	switch {
	case f.URLBar.Text != "":
		shown = f.URLBar.Text
	case f.Active.Displayed.Mode == entity.DisplayModePlaceholder:
		shown = t.Subtle.Render("Search or enter address")
	}

	parts := []string{t.Highlight.Render("▌"), shown}
	if f.LazyTab {
		parts = append(parts, t.Badge.Render("new tab"))
	}
	if f.Crashed {
		parts = append(parts, t.BadgeError.Render("crashed"))
	}
	nav := f.Active.Navigation
	arrows := fmt.Sprintf("%s %s", arrow("←", nav.CanGoBackward), arrow("→", nav.CanGoForward))
	parts = append(parts, t.Subtle.Render(arrows), t.Subtle.Render(fmt.Sprintf("%d%%", f.Active.Progress)))
	return strings.Join(parts, " ")
}

func arrow(s string, enabled bool) string {
	if enabled {
		return s
	}
	return "·"
}

func (r *TabRenderer) tabLine(i int, tab entity.TabInfo) string {
	t := r.theme
	title := tab.Title
	if title == "" {
		title = tab.URL
	}
	line := fmt.Sprintf("%d  %s", i, title)

	var badges []string
	if tab.IsChildTab() {
		badges = append(badges, t.BadgeMuted.Render("child of "+string(tab.Data.ParentTabID)))
	}
	if tab.Data.OpenType == entity.OpenTypeViaIntent {
		badges = append(badges, t.BadgeMuted.Render("intent"))
	}
	if tab.IsClosing {
		badges = append(badges, t.WarningStyle.Render("closing"))
	}
	if tab.IsCrashed {
		badges = append(badges, t.BadgeError.Render("crashed"))
	}
	if len(badges) > 0 {
		line += "  " + strings.Join(badges, " ")
	}

	style := t.ListItem
	if tab.IsSelected {
		style = t.ListItemSelected
	}
	return style.Render(line)
}

// ArchivedTabs renders the archived tabs list.
func (r *TabRenderer) ArchivedTabs(tabs []*entity.ArchivedTab, now time.Time) string {
	t := r.theme
	if len(tabs) == 0 {
		return t.Subtle.Render("No archived tabs")
	}
	lines := []string{t.Title.Render(fmt.Sprintf("Archived tabs (%d)", len(tabs)))}
	for _, tab := range tabs {
		title := tab.Title
		if title == "" {
			title = tab.URL
		}
		lines = append(lines,
			t.ListItem.Render(title)+" "+t.TimeBadge(tab.ArchivedAt, now),
			t.ListItemDesc.Render(tab.URL),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SearchNavigations renders stored search navigations grouped by tab.
func (r *TabRenderer) SearchNavigations(navs []*entity.SearchNavigation) string {
	t := r.theme
	if len(navs) == 0 {
		return t.Subtle.Render("No search navigations")
	}
	var lines []string
	var current entity.TabID
	for _, nav := range navs {
		if nav.TabID != current {
			current = nav.TabID
			lines = append(lines, t.Title.Render("tab "+string(current)))
		}
		lines = append(lines,
			t.ListItem.Render(fmt.Sprintf("#%d  %s", nav.NavigationIndex, t.Highlight.Render(nav.SearchQuery))),
			t.ListItemDesc.Render(nav.NavigationURL),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
