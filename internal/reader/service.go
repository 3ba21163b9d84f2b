package reader

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wikireflect/wiki-reflection/internal/format"
	"github.com/wikireflect/wiki-reflection/internal/lib/logger/sl"
	"github.com/wikireflect/wiki-reflection/internal/model"
	"github.com/wikireflect/wiki-reflection/internal/wiki"
)

var (
	// ErrSuperseded is returned by Run when a newer cycle took over
	ErrSuperseded = errors.New("fetch cycle superseded")

	// ErrNoFetcher is reported when the service has no wiki client
	ErrNoFetcher = errors.New("wiki client not initialized")

	// ErrEmptyResult is reported when the client returns neither result nor error
	ErrEmptyResult = errors.New("empty article result")
)

var _ Reader = (*Service)(nil)

// Service handles fetch cycles
type Service struct {
	fetcher wiki.Fetcher
	log     *slog.Logger

	mu       sync.Mutex
	seq      uint64
	current  *model.FetchCycle
	cancel   context.CancelFunc
	onUpdate func(*model.FetchCycle) // callback for UI updates
	labels   func() format.Labels
}

// NewService creates a new reader service
func NewService(fetcher wiki.Fetcher, log *slog.Logger) *Service {
	if log == nil {
		log = sl.Discard()
	}
	return &Service{
		fetcher: fetcher,
		log:     log.With(slog.String("component", "reader")),
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot of the current
// cycle on every stage change. It runs on the fetching goroutine.
func (s *Service) SetUpdateCallback(callback func(*model.FetchCycle)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetLabelsFunc sets the source of the localized view fragments
func (s *Service) SetLabelsFunc(fn func() format.Labels) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = fn
}

// Start cancels any running cycle and launches a new one in the background
func (s *Service) Start(languageCode string) *model.FetchCycle {
	ctx, cycle, snapshot := s.begin(context.Background(), languageCode)

	go func() {
		if err := s.Run(ctx, cycle); err != nil && !errors.Is(err, ErrSuperseded) {
			s.log.Warn("fetch cycle failed", slog.String("cycle", cycle.ID), sl.Err(err))
		}
	}()

	return snapshot
}

// Fetch cancels any running cycle and runs a new one on the calling goroutine
func (s *Service) Fetch(ctx context.Context, languageCode string) (*model.FetchCycle, error) {
	runCtx, cycle, _ := s.begin(ctx, languageCode)
	err := s.Run(runCtx, cycle)

	s.mu.Lock()
	defer s.mu.Unlock()
	return cycle.Snapshot(), err
}

// begin registers a new current cycle and supersedes the previous one
func (s *Service) begin(parent context.Context, languageCode string) (context.Context, *model.FetchCycle, *model.FetchCycle) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.supersedeLocked()

	s.seq++
	cycle := &model.FetchCycle{
		ID:        uuid.NewString(),
		Seq:       s.seq,
		Language:  languageCode,
		Status:    model.FetchStatusPending,
		StartedAt: time.Now(),
	}
	s.current = cycle
	s.cancel = cancel

	s.log.Debug("fetch cycle started", slog.String("cycle", cycle.ID), slog.Uint64("seq", cycle.Seq), slog.String("lang", languageCode))
	return ctx, cycle, cycle.Snapshot()
}

// Run executes the title then article chain for a cycle created by Start or
// Fetch. A title failure aborts before the content request; a content failure
// keeps the title on the cycle.
func (s *Service) Run(ctx context.Context, cycle *model.FetchCycle) error {
	defer s.release(cycle)

	if s.fetcher == nil {
		return s.fail(cycle, model.StageTitle, ErrNoFetcher)
	}

	if !s.transition(cycle, func(c *model.FetchCycle) {
		c.Status = model.FetchStatusFetchingTitle
	}) {
		return ErrSuperseded
	}

	title, err := s.fetcher.FetchRandomTitle(ctx, cycle.Language)
	if err != nil {
		return s.fail(cycle, model.StageTitle, err)
	}

	if !s.transition(cycle, func(c *model.FetchCycle) {
		c.Title = title
		c.Status = model.FetchStatusFetchingArticle
	}) {
		return ErrSuperseded
	}

	result, err := s.fetcher.FetchArticle(ctx, cycle.Language, title)
	if err != nil {
		return s.fail(cycle, model.StageArticle, err)
	}
	if result == nil {
		return s.fail(cycle, model.StageFormat, ErrEmptyResult)
	}

	view := format.BuildView(cycle.Language, result, s.currentLabels())

	if !s.transition(cycle, func(c *model.FetchCycle) {
		c.Result = result
		c.View = view
		c.Status = model.FetchStatusCompleted
		c.FinishedAt = time.Now()
	}) {
		return ErrSuperseded
	}

	s.log.Info("article fetched",
		slog.String("cycle", cycle.ID),
		slog.String("lang", cycle.Language),
		slog.String("title", view.Title),
		slog.Duration("elapsed", cycle.FinishedAt.Sub(cycle.StartedAt)),
	)
	return nil
}

// IsCurrent reports whether seq belongs to the most recently started cycle
func (s *Service) IsCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Seq == seq
}

// Current returns a snapshot of the most recently started cycle, or nil
func (s *Service) Current() *model.FetchCycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.Snapshot()
}

// Cancel stops the running cycle; its result is discarded
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
	s.current = nil
}

// supersedeLocked cancels the current cycle. Caller holds s.mu.
func (s *Service) supersedeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.current != nil && !s.current.Status.IsFinished() {
		s.current.Status = model.FetchStatusSuperseded
		s.current.FinishedAt = time.Now()
		s.log.Debug("fetch cycle superseded", slog.String("cycle", s.current.ID), slog.Uint64("seq", s.current.Seq))
	}
}

// transition applies mutate and notifies, but only while cycle is current
func (s *Service) transition(cycle *model.FetchCycle, mutate func(*model.FetchCycle)) bool {
	s.mu.Lock()
	if s.current != cycle {
		s.mu.Unlock()
		return false
	}
	mutate(cycle)
	snapshot := cycle.Snapshot()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
	return true
}

// fail records a stage failure on a current cycle
func (s *Service) fail(cycle *model.FetchCycle, stage model.FetchStage, err error) error {
	if !s.transition(cycle, func(c *model.FetchCycle) {
		c.Err = err
		c.ErrStage = stage
		c.Status = model.FetchStatusError
		c.FinishedAt = time.Now()
	}) {
		return ErrSuperseded
	}
	return err
}

// release frees the context of a finished current cycle
func (s *Service) release(cycle *model.FetchCycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == cycle && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Service) currentLabels() format.Labels {
	s.mu.Lock()
	fn := s.labels
	s.mu.Unlock()

	if fn == nil {
		return format.DefaultLabels
	}
	return fn()
}
