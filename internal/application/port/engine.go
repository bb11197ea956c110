// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the host browsing engine and storage concerns, allowing the
// tab lifecycle core to remain independent of specific implementations.
package port

import "github.com/bnema/tabshell/internal/domain/entity"

// NewTabType describes how a page asked for a new tab.
type NewTabType int

const (
	// NewTabForeground opens and selects the new tab.
	NewTabForeground NewTabType = iota
	// NewTabBackground opens the tab without selecting it.
	NewTabBackground
	// NewTabPopup opens a popup; the shell shows it as a selected tab.
	NewTabPopup
	// NewTabWindow opens a new window; the shell shows it as a selected tab.
	NewTabWindow
)

// String returns a human-readable representation of the new tab type.
func (t NewTabType) String() string {
	switch t {
	case NewTabForeground:
		return "foreground"
	case NewTabBackground:
		return "background"
	case NewTabPopup:
		return "popup"
	case NewTabWindow:
		return "window"
	default:
		return "unknown"
	}
}

// Selects reports whether a tab opened this way becomes the active tab.
func (t NewTabType) Selects() bool {
	return t != NewTabBackground
}

// Navigation describes a single navigation reported by the engine.
type Navigation struct {
	URL             string
	IsSameDocument  bool
	IsReload        bool
	IsErrorPage     bool
	IsDownload      bool
	IsKnownProtocol bool
}

// Favicon is the icon reported for a page.
type Favicon struct {
	URL  string
	Data []byte
}

// Browser is the engine object owning the tabs of one profile.
// All methods must be called on the engine's confinement goroutine.
type Browser interface {
	// IsDestroyed reports whether the engine tore this browser down.
	IsDestroyed() bool
	// IsRestoringPreviousState reports whether startup restoration is in progress.
	IsRestoringPreviousState() bool
	// Tabs returns the live tabs in creation order.
	Tabs() []Tab
	// ActiveTab returns the active tab, or nil.
	ActiveTab() Tab
	// CreateTab allocates a new tab. OnTabAdded may fire before it returns.
	CreateTab() Tab
	// SetActiveTab makes tab the active tab.
	SetActiveTab(tab Tab)

	RegisterTabListCallbacks(cb *TabListCallbacks)
	UnregisterTabListCallbacks(cb *TabListCallbacks)
	RegisterRestoreCallbacks(cb *RestoreCallbacks)
	UnregisterRestoreCallbacks(cb *RestoreCallbacks)
}

// TabListCallbacks receives tab existence events of a Browser.
// Implementations should invoke these on the confinement goroutine.
type TabListCallbacks struct {
	// OnTabAdded is called when a tab is created or restored.
	OnTabAdded func(tab Tab)
	// OnTabRemoved is called after a tab has been closed.
	OnTabRemoved func(tab Tab)
	// OnActiveTabChanged is called with the new active tab, or nil.
	OnActiveTabChanged func(tab Tab)
}

// RestoreCallbacks receives restoration events of a Browser.
type RestoreCallbacks struct {
	// OnRestoreCompleted is called once the previous session's tabs are restored.
	OnRestoreCompleted func()
}

// Tab is a single engine browsing context.
type Tab interface {
	ID() entity.TabID
	IsDestroyed() bool
	DisplayURL() string
	DisplayTitle() string

	// Data returns the tab's persistent key/value store.
	Data() map[string]string
	// SetData replaces the tab's persistent key/value store.
	SetData(data map[string]string)

	Navigation() NavigationController

	DesktopUserAgent() bool
	SetDesktopUserAgent(enabled bool)

	// CaptureScreenshot renders the tab at scale and calls done on the
	// confinement goroutine.
	CaptureScreenshot(scale float64, done func(img []byte, err error))

	// Close runs beforeunload handlers and closes the tab.
	Close()

	// WillAutomaticallyReloadAfterCrash reports whether the engine reloads
	// a crashed renderer by itself.
	WillAutomaticallyReloadAfterCrash() bool

	RegisterCallbacks(cb *TabCallbacks)
	UnregisterCallbacks(cb *TabCallbacks)
}

// TabCallbacks receives page-level events of a Tab.
type TabCallbacks struct {
	// OnTitleUpdated is called when the page title changes.
	OnTitleUpdated func(title string)
	// OnVisibleURIChanged is called when the displayed URI changes.
	OnVisibleURIChanged func(uri string)
	// OnFaviconChanged is called when the page favicon changes.
	OnFaviconChanged func(favicon Favicon)
	// OnNewTab is called when the page opened another tab.
	OnNewTab func(tab Tab, kind NewTabType)
	// OnRenderProcessGone is called when the tab's renderer crashed.
	OnRenderProcessGone func()
}

// NavigationHistory is the read-only view of a tab's back/forward list.
type NavigationHistory interface {
	// ListSize returns the number of history entries.
	ListSize() int
	// CurrentIndex returns the current entry index, or -1 for a blank tab.
	CurrentIndex() int
	// EntryURL returns the URL of the entry at index.
	EntryURL(index int) (string, bool)
}

// NavigationController drives a tab's navigation.
type NavigationController interface {
	NavigationHistory

	Navigate(uri string)
	GoBack()
	GoForward()
	Reload()
	CanGoBack() bool
	CanGoForward() bool

	RegisterCallbacks(cb *NavigationCallbacks)
	UnregisterCallbacks(cb *NavigationCallbacks)
}

// NavigationCallbacks receives navigation events of a tab.
type NavigationCallbacks struct {
	OnNavigationStarted   func(nav Navigation)
	OnNavigationCompleted func(nav Navigation)
	OnNavigationFailed    func(nav Navigation)
	// OnLoadProgressChanged is called with progress 0.0-1.0.
	OnLoadProgressChanged func(progress float64)
}
