package reader

import (
	"context"

	"github.com/wikireflect/wiki-reflection/internal/format"
	"github.com/wikireflect/wiki-reflection/internal/model"
)

// Reader defines the interface for the reader service.
type Reader interface {
	SetUpdateCallback(func(*model.FetchCycle))
	SetLabelsFunc(func() format.Labels)

	// Start launches a cycle in the background and returns its initial state
	Start(languageCode string) *model.FetchCycle

	// Fetch runs a cycle on the calling goroutine
	Fetch(ctx context.Context, languageCode string) (*model.FetchCycle, error)

	IsCurrent(seq uint64) bool
	Current() *model.FetchCycle
	Cancel()
}
