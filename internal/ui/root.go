package ui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/wikireflect/wiki-reflection/internal/config"
	"github.com/wikireflect/wiki-reflection/internal/format"
	"github.com/wikireflect/wiki-reflection/internal/i18n"
	"github.com/wikireflect/wiki-reflection/internal/lib/logger/sl"
	"github.com/wikireflect/wiki-reflection/internal/model"
	"github.com/wikireflect/wiki-reflection/internal/platform"
	"github.com/wikireflect/wiki-reflection/internal/reader"
	"github.com/wikireflect/wiki-reflection/internal/wiki"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	readerSvc    reader.Reader
	localization *Localization
	session      *Session
	log          *slog.Logger

	// openURL hands article links to the system browser
	openURL func(string) error

	guiLanguageLabel  *widget.Label
	wikiLanguageLabel *widget.Label
	guiSelect         *widget.Select
	wikiSelect        *widget.Select
	themeBtn          *widget.Button
	refreshBtn        *widget.Button

	titleLink        *widget.Hyperlink
	summaryHeader    *widget.Label
	summaryText      *widget.Label
	sectionsHeader   *widget.Label
	sectionsText     *widget.Label
	sectionsBox      *fyne.Container
	categoriesHeader *widget.Label
	categoriesText   *widget.Label
	categoriesBox    *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, readerSvc reader.Reader, localization *Localization, session *Session, log *slog.Logger) *RootUI {
	if log == nil {
		log = sl.Discard()
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		readerSvc:    readerSvc,
		localization: localization,
		session:      session,
		log:          log.With(slog.String("component", "ui")),
		openURL:      platform.OpenURL,
	}

	// Set up callback for fetch updates
	ui.readerSvc.SetUpdateCallback(ui.onCycleUpdate)
	ui.readerSvc.SetLabelsFunc(ui.localization.Labels)

	ui.setupUI()
	ui.ApplyTheme(session.Theme().ThemeID())
	ui.refreshUITexts()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	selection := ui.session.Selection()

	ui.guiLanguageLabel = widget.NewLabel("")
	ui.guiSelect = widget.NewSelect(config.GUILanguageNames(), nil)
	ui.guiSelect.SetSelected(selection.GUILanguage)
	ui.guiSelect.OnChanged = ui.onGUILanguageChange

	ui.wikiLanguageLabel = widget.NewLabel("")
	ui.wikiSelect = widget.NewSelect(config.WikiLanguageNames(), nil)
	if name, ok := config.WikiLanguageName(selection.WikiLanguage); ok {
		ui.wikiSelect.SetSelected(name)
	}
	ui.wikiSelect.OnChanged = ui.onWikiLanguageChange

	ui.themeBtn = widget.NewButton("", ui.onToggleTheme)
	ui.refreshBtn = widget.NewButton("", ui.FetchNewArticle)
	ui.refreshBtn.Importance = widget.HighImportance

	controls := container.NewHBox(
		ui.guiLanguageLabel, ui.guiSelect,
		ui.wikiLanguageLabel, ui.wikiSelect,
		layout.NewSpacer(),
		ui.themeBtn, ui.refreshBtn,
	)

	// Title doubles as the link to the full article
	ui.titleLink = widget.NewHyperlink("", nil)
	ui.titleLink.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLink.Wrapping = fyne.TextWrapWord
	ui.titleLink.OnTapped = ui.onTitleTapped

	ui.summaryHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.summaryText = widget.NewLabel("")
	ui.summaryText.Wrapping = fyne.TextWrapWord

	ui.sectionsHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.sectionsText = widget.NewLabel("")
	ui.sectionsText.Wrapping = fyne.TextWrapWord
	ui.sectionsBox = container.NewVBox(widget.NewSeparator(), ui.sectionsHeader, ui.sectionsText)
	ui.sectionsBox.Hide()

	ui.categoriesHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.categoriesText = widget.NewLabel("")
	ui.categoriesText.Wrapping = fyne.TextWrapWord
	ui.categoriesBox = container.NewVBox(widget.NewSeparator(), ui.categoriesHeader, ui.categoriesText)
	ui.categoriesBox.Hide()

	article := container.NewVBox(
		ui.titleLink,
		ui.summaryHeader,
		ui.summaryText,
		ui.sectionsBox,
		ui.categoriesBox,
	)

	top := container.NewVBox(controls, widget.NewSeparator())

	content := container.NewBorder(
		top,                           // top
		nil,                           // bottom
		nil,                           // left
		nil,                           // right
		container.NewVScroll(article), // center
	)

	ui.window.SetContent(content)
	ui.log.Debug("ui setup completed")
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(i18n.KeyWindowTitle))
	ui.guiLanguageLabel.SetText(l.GetText(i18n.KeyInterfaceLanguageLabel))
	ui.wikiLanguageLabel.SetText(l.GetText(i18n.KeyWikipediaLanguageLabel))
	ui.refreshBtn.SetText(l.GetText(i18n.KeyNewArticle))
	ui.summaryHeader.SetText(l.GetText(i18n.KeySummary))
	ui.sectionsHeader.SetText(l.GetText(i18n.KeySections))
	ui.categoriesHeader.SetText(l.GetText(i18n.KeyCategories))
	ui.updateThemeButton()

	// Re-render the article so localized fragments follow the language
	if cycle := ui.session.Cycle(); cycle != nil {
		ui.render(cycle)
	}
}

// updateThemeButton labels the toggle with the theme it switches to
func (ui *RootUI) updateThemeButton() {
	if ui.session.Theme().Dark {
		ui.themeBtn.SetText(ui.localization.GetText(i18n.KeyLightTheme))
	} else {
		ui.themeBtn.SetText(ui.localization.GetText(i18n.KeyDarkTheme))
	}
}

// onGUILanguageChange handles interface language change
func (ui *RootUI) onGUILanguageChange(language string) {
	if language == "" || language == ui.session.Selection().GUILanguage {
		return
	}
	ui.log.Info("interface language changed", slog.String("language", language))

	ui.session.SetGUILanguage(language)
	ui.localization.SetLanguage(language)
	ui.refreshUITexts()
}

// onWikiLanguageChange handles wiki language change and fetches a new article
func (ui *RootUI) onWikiLanguageChange(name string) {
	code, ok := config.WikiLanguageCode(name)
	if !ok {
		ui.log.Warn("unknown wiki language", slog.String("language", name))
		return
	}
	if code == ui.session.Selection().WikiLanguage {
		return
	}
	ui.log.Info("wiki language changed", slog.String("lang", code))

	ui.session.SetWikiLanguage(code)
	ui.FetchNewArticle()
}

// onToggleTheme switches between the light and dark theme
func (ui *RootUI) onToggleTheme() {
	state := ui.session.ToggleTheme()
	ui.ApplyTheme(state.ThemeID())
	ui.updateThemeButton()
}

// ApplyTheme swaps the application theme
func (ui *RootUI) ApplyTheme(themeID string) {
	if err := ApplyTheme(ui.app, themeID); err != nil {
		ui.log.Error("failed to apply theme", slog.String("theme", themeID), sl.Err(err))
	}
}

// FetchNewArticle starts a fetch cycle for the selected wiki language
func (ui *RootUI) FetchNewArticle() {
	cycle := ui.readerSvc.Start(ui.session.Selection().WikiLanguage)
	ui.applyCycle(cycle)
}

// onCycleUpdate receives cycle snapshots from the reader goroutine
func (ui *RootUI) onCycleUpdate(cycle *model.FetchCycle) {
	fyne.Do(func() {
		ui.applyCycle(cycle)
	})
}

// applyCycle renders a cycle if it is still the current one. Runs on the
// main goroutine.
func (ui *RootUI) applyCycle(cycle *model.FetchCycle) {
	if cycle == nil || !ui.readerSvc.IsCurrent(cycle.Seq) {
		return
	}
	if prev := ui.session.Cycle(); prev != nil && prev.Seq == cycle.Seq && prev.Status.IsFinished() {
		return
	}

	ui.session.SetCycle(cycle)
	ui.render(cycle)

	switch cycle.Status {
	case model.FetchStatusCompleted:
		ui.log.Debug("article displayed", slog.String("cycle", cycle.ID), slog.String("title", cycle.Title))
	case model.FetchStatusError:
		ui.log.Warn("fetch failed", slog.String("cycle", cycle.ID), slog.String("stage", string(cycle.ErrStage)), sl.Err(cycle.Err))
	}
}

// render draws a cycle into the article area
func (ui *RootUI) render(cycle *model.FetchCycle) {
	switch cycle.Status {
	case model.FetchStatusCompleted:
		ui.renderArticle(cycle)
		ui.refreshBtn.Enable()
	case model.FetchStatusError:
		ui.renderError(ui.errorMessage(cycle))
		ui.refreshBtn.Enable()
	case model.FetchStatusSuperseded:
		// a newer cycle owns the screen
	default:
		ui.renderFetching()
		ui.refreshBtn.Disable()
	}
}

func (ui *RootUI) renderFetching() {
	ui.session.SetArticleURL("")
	ui.titleLink.SetText(ui.localization.GetText(i18n.KeyFetching))
	ui.summaryText.SetText("")
	ui.sectionsBox.Hide()
	ui.categoriesBox.Hide()
}

func (ui *RootUI) renderArticle(cycle *model.FetchCycle) {
	view := cycle.View
	if cycle.Result != nil {
		view = format.BuildView(cycle.Language, cycle.Result, ui.localization.Labels())
	}
	if view == nil {
		ui.renderError(ui.localization.Render(i18n.KeyErrorParseArticle, map[string]any{"Error": reader.ErrEmptyResult}))
		return
	}

	ui.session.SetArticleURL(view.URL)
	ui.titleLink.SetText(view.Title)
	ui.summaryText.SetText(view.Summary)

	ui.sectionsText.SetText(view.Sections)
	setVisible(ui.sectionsBox, view.ShowSections)

	ui.categoriesText.SetText(view.Categories)
	setVisible(ui.categoriesBox, view.ShowCategories)
}

func (ui *RootUI) renderError(message string) {
	ui.session.SetArticleURL("")
	ui.titleLink.SetText(ui.localization.GetText(i18n.KeyError))
	ui.summaryText.SetText(message)
	ui.sectionsBox.Hide()
	ui.categoriesBox.Hide()
}

// errorMessage turns a failed cycle into localized text
func (ui *RootUI) errorMessage(cycle *model.FetchCycle) string {
	l := ui.localization
	data := map[string]any{"Error": cycle.Err, "Title": cycle.Title}

	switch {
	case errors.Is(cycle.Err, reader.ErrNoFetcher):
		return l.GetText(i18n.KeyErrorClientNotInitiated)
	case cycle.ErrStage == model.StageTitle:
		return l.Render(i18n.KeyErrorFetchTitle, data)
	case cycle.ErrStage == model.StageFormat,
		cycle.ErrStage == model.StageArticle && wiki.IsParseError(cycle.Err):
		return l.Render(i18n.KeyErrorParseArticle, data)
	default:
		return l.Render(i18n.KeyErrorFetchArticle, data)
	}
}

// onTitleTapped opens the current article in the system browser
func (ui *RootUI) onTitleTapped() {
	link := ui.session.ArticleURL()
	if link == "" {
		return
	}

	if err := ui.openURL(link); err != nil {
		ui.log.Error("failed to open article", slog.String("url", link), sl.Err(err))

		var shellErr *platform.ShellError
		message := err.Error()
		if errors.As(err, &shellErr) && shellErr.Err != nil {
			message = shellErr.Err.Error()
		}
		dialog.ShowInformation(
			ui.localization.GetText(i18n.KeyError),
			ui.localization.Render(i18n.KeyErrorOpenURL, map[string]any{"Error": message}),
			ui.window,
		)
	}
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
