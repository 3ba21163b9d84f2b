package model

import (
	"fmt"
	"time"
)

// FetchCycle represents one title→article fetch sequence
type FetchCycle struct {
	ID         string
	Seq        uint64 // monotonically increasing per service
	Language   string // wiki language code
	Status     FetchStatus
	Title      string              // set once the random title is known
	Result     *ArticleQueryResult // set on success
	View       *ArticleView        // set on success
	Err        error               // set on failure
	ErrStage   FetchStage
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the cycle ran, or has been running
func (fc *FetchCycle) Elapsed() time.Duration {
	if fc.StartedAt.IsZero() {
		return 0
	}
	if fc.FinishedAt.IsZero() {
		return time.Since(fc.StartedAt)
	}
	return fc.FinishedAt.Sub(fc.StartedAt)
}

// String returns a compact description used in logs
func (fc *FetchCycle) String() string {
	if fc.Title == "" {
		return fmt.Sprintf("cycle #%d [%s] %s", fc.Seq, fc.Language, fc.Status)
	}
	return fmt.Sprintf("cycle #%d [%s] %s %q", fc.Seq, fc.Language, fc.Status, fc.Title)
}

// Snapshot returns a copy safe to hand to another goroutine
func (fc *FetchCycle) Snapshot() *FetchCycle {
	c := *fc
	return &c
}
