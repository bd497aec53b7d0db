package cli

import (
	"github.com/mvbarbosa/lousa/internal/store"
)

// SharedState holds context shared across all views via pointer.
// The store is the single owner of domain state; views only keep cursors.
type SharedState struct {
	Store *store.Store

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and the
// status bar (2 lines: separator + hints/notice).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
