package entity

// DisplayMode classifies how the URL bar presents the active tab's URL.
type DisplayMode int

const (
	// DisplayModeURL shows the URL's host.
	DisplayModeURL DisplayMode = iota
	// DisplayModeQuery shows the search query that produced the page.
	DisplayModeQuery
	// DisplayModePlaceholder shows an empty field with a placeholder hint.
	DisplayModePlaceholder
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayModeQuery:
		return "query"
	case DisplayModePlaceholder:
		return "placeholder"
	default:
		return "url"
	}
}

// DisplayedInfo is what the URL bar renders when it is not focused.
type DisplayedInfo struct {
	Mode DisplayMode
	Text string
}

// NavigationInfo is the active tab's navigation capability.
// The four facts are always published together.
type NavigationInfo struct {
	ListSize         int
	CanGoBackward    bool
	CanGoForward     bool
	DesktopUserAgent bool
}

// ActiveTabSnapshot is the derived view of the currently active tab.
type ActiveTabSnapshot struct {
	URL        string
	Title      string
	Navigation NavigationInfo
	Progress   int
	Displayed  DisplayedInfo
}

// DefaultActiveTabSnapshot is the state published when no tab is active.
func DefaultActiveTabSnapshot() ActiveTabSnapshot {
	return ActiveTabSnapshot{
		Progress:  100,
		Displayed: DisplayedInfo{Mode: DisplayModeURL},
	}
}

// GoBackResult tells the caller what to do after a back navigation.
type GoBackResult struct {
	// OriginalSearchQuery is set when the page being left was reached via a search.
	OriginalSearchQuery string
	// SpaceIDToOpen is set when the tab was opened from a space and has no history left.
	SpaceIDToOpen string
	// TabIDToClose is set when the tab has no history left and should be closed.
	TabIDToClose TabID
}
