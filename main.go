package main

import (
	"flag"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/wikireflect/wiki-reflection/internal/config"
	"github.com/wikireflect/wiki-reflection/internal/i18n"
	"github.com/wikireflect/wiki-reflection/internal/lib/logger/sl"
	"github.com/wikireflect/wiki-reflection/internal/model"
	"github.com/wikireflect/wiki-reflection/internal/reader"
	"github.com/wikireflect/wiki-reflection/internal/ui"
	"github.com/wikireflect/wiki-reflection/internal/wiki"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.wikireflect.wiki-reflection"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	log := sl.Setup(cfg.Env)
	log.Info("starting wiki reflection", slog.String("version", version), slog.String("env", cfg.Env))

	client := wiki.NewClient(
		wiki.WithEndpoint(cfg.APIEndpoint),
		wiki.WithUserAgent(cfg.UserAgent),
		wiki.WithTimeout(cfg.HTTPTimeout),
		wiki.WithLogger(log),
	)
	readerSvc := reader.NewService(client, log)

	translator := i18n.NewTranslator(log)
	localization := ui.NewLocalization(translator, cfg.GUILanguage)
	session := ui.NewSession(model.LanguageSelection{
		GUILanguage:  cfg.GUILanguage,
		WikiLanguage: cfg.WikiLanguage,
	}, model.ThemeState{Dark: cfg.DarkTheme})

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	rootUI := ui.NewRootUI(myWindow, myApp, readerSvc, localization, session, log)

	// First article is fetched as soon as the window is up
	myApp.Lifecycle().SetOnStarted(rootUI.FetchNewArticle)
	myApp.Lifecycle().SetOnStopped(readerSvc.Cancel)

	// Show and run
	myWindow.ShowAndRun()
	log.Info("stopped")
}
