package entity

import "time"

// SearchNavigation records that a navigation history entry was reached by
// submitting a search query from the URL bar.
type SearchNavigation struct {
	TabID           TabID
	NavigationIndex int
	NavigationURL   string
	SearchQuery     string
	CreatedAt       time.Time
}
