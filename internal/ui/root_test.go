package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/wikireflect/wiki-reflection/internal/config"
	"github.com/wikireflect/wiki-reflection/internal/format"
	"github.com/wikireflect/wiki-reflection/internal/i18n"
	"github.com/wikireflect/wiki-reflection/internal/model"
	"github.com/wikireflect/wiki-reflection/internal/platform"
	"github.com/wikireflect/wiki-reflection/internal/reader"
	"github.com/wikireflect/wiki-reflection/internal/wiki"
)

// fakeReader records started cycles without doing any network work
type fakeReader struct {
	mu       sync.Mutex
	seq      uint64
	started  []string
	callback func(*model.FetchCycle)
	labels   func() format.Labels
}

var _ reader.Reader = (*fakeReader)(nil)

func (f *fakeReader) SetUpdateCallback(cb func(*model.FetchCycle)) { f.callback = cb }
func (f *fakeReader) SetLabelsFunc(fn func() format.Labels)       { f.labels = fn }

func (f *fakeReader) Start(languageCode string) *model.FetchCycle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.started = append(f.started, languageCode)
	return &model.FetchCycle{Seq: f.seq, Language: languageCode, Status: model.FetchStatusPending}
}

func (f *fakeReader) Fetch(ctx context.Context, languageCode string) (*model.FetchCycle, error) {
	return nil, nil
}

func (f *fakeReader) IsCurrent(seq uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return seq == f.seq
}

func (f *fakeReader) Current() *model.FetchCycle { return nil }
func (f *fakeReader) Cancel()                    {}

func newTestUI(t *testing.T) (*RootUI, *fakeReader) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("")
	rd := &fakeReader{}
	session := NewSession(model.LanguageSelection{
		GUILanguage:  config.DefaultGUILanguage,
		WikiLanguage: config.DefaultWikiLanguage,
	}, model.ThemeState{})
	loc := NewLocalization(i18n.NewTranslator(nil), config.DefaultGUILanguage)

	return NewRootUI(window, app, rd, loc, session, nil), rd
}

func completedCycle(seq uint64) *model.FetchCycle {
	return &model.FetchCycle{
		Seq:      seq,
		Language: "en",
		Status:   model.FetchStatusCompleted,
		Title:    "Ada Lovelace",
		Result: &model.ArticleQueryResult{
			Title:      "Ada Lovelace",
			Extract:    "Ada was a mathematician.",
			HasExtract: true,
			Sections:   []model.Section{{Level: 2, Heading: "Life"}},
			Categories: []string{},
		},
	}
}

func TestNewRootUI_InitialTexts(t *testing.T) {
	ui, rd := newTestUI(t)

	if ui.window.Title() != "Wikipedia Reflection Tool" {
		t.Errorf("Unexpected window title %q", ui.window.Title())
	}
	if ui.refreshBtn.Text != "🔄 New Random Article" {
		t.Errorf("Unexpected refresh text %q", ui.refreshBtn.Text)
	}
	if ui.themeBtn.Text != "🌙 Dark Theme" {
		t.Errorf("Light theme should offer the dark theme, got %q", ui.themeBtn.Text)
	}
	if rd.callback == nil || rd.labels == nil {
		t.Error("Reader callbacks should be wired")
	}
	if ui.sectionsBox.Visible() || ui.categoriesBox.Visible() {
		t.Error("Sections and categories should start hidden")
	}
}

func TestFetchNewArticle_ShowsFetchingAndDisablesButton(t *testing.T) {
	ui, rd := newTestUI(t)

	test.Tap(ui.refreshBtn)

	if len(rd.started) != 1 || rd.started[0] != "en" {
		t.Fatalf("Expected one cycle for en, got %v", rd.started)
	}
	if ui.titleLink.Text != "Fetching article..." {
		t.Errorf("Expected fetching text, got %q", ui.titleLink.Text)
	}
	if !ui.refreshBtn.Disabled() {
		t.Error("Refresh button should be disabled while fetching")
	}
}

func TestApplyCycle_Completed(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.FetchNewArticle()

	ui.applyCycle(completedCycle(1))

	if ui.titleLink.Text != "Ada Lovelace" {
		t.Errorf("Unexpected title %q", ui.titleLink.Text)
	}
	if ui.summaryText.Text != "Ada was a mathematician." {
		t.Errorf("Unexpected summary %q", ui.summaryText.Text)
	}
	if !ui.sectionsBox.Visible() {
		t.Error("Sections should be visible")
	}
	if ui.categoriesBox.Visible() {
		t.Error("Empty categories should stay hidden")
	}
	if ui.refreshBtn.Disabled() {
		t.Error("Refresh button should be enabled after completion")
	}
	if ui.session.ArticleURL() != "https://en.wikipedia.org/wiki/Ada_Lovelace" {
		t.Errorf("Unexpected article url %q", ui.session.ArticleURL())
	}
}

func TestApplyCycle_DiscardsStaleCycles(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.FetchNewArticle()
	ui.FetchNewArticle()

	ui.applyCycle(completedCycle(1))

	if ui.titleLink.Text != "Fetching article..." {
		t.Errorf("Stale cycle must not be rendered, title is %q", ui.titleLink.Text)
	}
	if ui.session.ArticleURL() != "" {
		t.Error("Stale cycle must not set the article url")
	}
}

func TestApplyCycle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		stage    model.FetchStage
		err      error
		title    string
		expected string
	}{
		{"title", model.StageTitle, errors.New("timeout"), "", "Error fetching random title: timeout"},
		{"article", model.StageArticle, errors.New("HTTP 500"), "Ada", "Error fetching article content for 'Ada': HTTP 500"},
		{"parse", model.StageArticle, &wiki.ParseError{Op: wiki.OpArticle, Err: errors.New("bad json")}, "Ada", "Error parsing article data: "},
		{"no client", model.StageTitle, reader.ErrNoFetcher, "", "Wikipedia client not initialized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, _ := newTestUI(t)
			ui.FetchNewArticle()

			ui.applyCycle(&model.FetchCycle{
				Seq:      1,
				Language: "en",
				Status:   model.FetchStatusError,
				Title:    tt.title,
				Err:      tt.err,
				ErrStage: tt.stage,
			})

			if ui.titleLink.Text != "Error" {
				t.Errorf("Expected error indicator in title, got %q", ui.titleLink.Text)
			}
			if !strings.HasPrefix(ui.summaryText.Text, tt.expected) {
				t.Errorf("Expected summary starting with %q, got %q", tt.expected, ui.summaryText.Text)
			}
			if ui.sectionsBox.Visible() || ui.categoriesBox.Visible() {
				t.Error("Sections and categories should be hidden on error")
			}
			if ui.refreshBtn.Disabled() {
				t.Error("Refresh button should be re-enabled after an error")
			}
			if ui.session.ArticleURL() != "" {
				t.Error("Article url should be cleared on error")
			}
		})
	}
}

func TestGUILanguageChange_RerendersTexts(t *testing.T) {
	ui, rd := newTestUI(t)
	ui.FetchNewArticle()
	cycle := completedCycle(1)
	cycle.Result.Categories = []string{"Category:Mathematicians"}
	ui.applyCycle(cycle)

	ui.guiSelect.SetSelected("German")

	if ui.refreshBtn.Text != "🔄 Neuer zufälliger Artikel" {
		t.Errorf("Unexpected refresh text %q", ui.refreshBtn.Text)
	}
	if ui.sectionsHeader.Text != "Abschnitte" {
		t.Errorf("Unexpected sections header %q", ui.sectionsHeader.Text)
	}
	if !strings.HasPrefix(ui.categoriesText.Text, "📂 Kategorien:") {
		t.Errorf("Category header should follow the language, got %q", ui.categoriesText.Text)
	}
	if len(rd.started) != 1 {
		t.Errorf("Interface language change must not fetch, got %v", rd.started)
	}
}

func TestWikiLanguageChange_StartsCycle(t *testing.T) {
	ui, rd := newTestUI(t)

	ui.wikiSelect.SetSelected("Ukrainian")

	if len(rd.started) != 1 || rd.started[0] != "uk" {
		t.Errorf("Expected a cycle for uk, got %v", rd.started)
	}
	if ui.session.Selection().WikiLanguage != "uk" {
		t.Errorf("Session should hold uk, got %s", ui.session.Selection().WikiLanguage)
	}
}

func TestToggleTheme(t *testing.T) {
	ui, _ := newTestUI(t)

	test.Tap(ui.themeBtn)

	if !ui.session.Theme().Dark {
		t.Fatal("Expected dark theme after toggle")
	}
	if ui.themeBtn.Text != "☀️ Light Theme" {
		t.Errorf("Dark theme should offer the light theme, got %q", ui.themeBtn.Text)
	}
	rt, ok := ui.app.Settings().Theme().(*ReaderTheme)
	if !ok || rt.Variant() != theme.VariantDark {
		t.Errorf("Expected dark reader theme, got %T", ui.app.Settings().Theme())
	}

	test.Tap(ui.themeBtn)
	if ui.session.Theme().Dark {
		t.Error("Expected light theme after second toggle")
	}
}

func TestTitleTapped_OpensArticle(t *testing.T) {
	ui, _ := newTestUI(t)
	var opened []string
	ui.openURL = func(link string) error {
		opened = append(opened, link)
		return nil
	}

	ui.onTitleTapped()
	if len(opened) != 0 {
		t.Fatal("Nothing should open before an article is shown")
	}

	ui.FetchNewArticle()
	ui.applyCycle(completedCycle(1))
	ui.onTitleTapped()

	if len(opened) != 1 || opened[0] != "https://en.wikipedia.org/wiki/Ada_Lovelace" {
		t.Errorf("Unexpected opened links %v", opened)
	}
}

func TestTitleTapped_ShellErrorShowsDialog(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.openURL = func(link string) error {
		return &platform.ShellError{URL: link, Command: "xdg-open", Err: errors.New("not found")}
	}

	ui.FetchNewArticle()
	ui.applyCycle(completedCycle(1))
	ui.onTitleTapped()

	if len(ui.window.Canvas().Overlays().List()) == 0 {
		t.Error("Expected an error dialog overlay")
	}
}
