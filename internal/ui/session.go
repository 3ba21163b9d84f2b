package ui

import (
	"sync"

	"github.com/wikireflect/wiki-reflection/internal/model"
)

// Session holds the per-window state: language selection, theme, the last
// applied fetch cycle and the link of the article on screen.
type Session struct {
	mu         sync.RWMutex
	selection  model.LanguageSelection
	theme      model.ThemeState
	cycle      *model.FetchCycle
	articleURL string
}

// NewSession creates a session with the given starting state
func NewSession(selection model.LanguageSelection, theme model.ThemeState) *Session {
	return &Session{selection: selection, theme: theme}
}

// Selection returns the current language selection
func (s *Session) Selection() model.LanguageSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SetGUILanguage changes the interface language
func (s *Session) SetGUILanguage(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.GUILanguage = language
}

// SetWikiLanguage changes the wiki language code
func (s *Session) SetWikiLanguage(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.WikiLanguage = code
}

// Theme returns the current theme state
func (s *Session) Theme() model.ThemeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips the theme and returns the new state
func (s *Session) ToggleTheme() model.ThemeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	return s.theme
}

// Cycle returns the last cycle applied to the window, or nil
func (s *Session) Cycle() *model.FetchCycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycle
}

// SetCycle records the cycle on screen and clears the article URL until the
// article is rendered
func (s *Session) SetCycle(cycle *model.FetchCycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycle = cycle
	s.articleURL = ""
}

// SetArticleURL sets the link of the article on screen
func (s *Session) SetArticleURL(link string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articleURL = link
}

// ArticleURL returns the link of the article on screen, empty when none
func (s *Session) ArticleURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articleURL
}
