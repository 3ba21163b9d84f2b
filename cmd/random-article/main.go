package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wikireflect/wiki-reflection/internal/config"
	"github.com/wikireflect/wiki-reflection/internal/lib/logger/sl"
	"github.com/wikireflect/wiki-reflection/internal/reader"
	"github.com/wikireflect/wiki-reflection/internal/wiki"
)

const defaultWidth = 80

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	lang := flag.String("lang", "", "wiki language code (default from config)")
	width := flag.Int("width", defaultWidth, "wrap output to this many columns")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := sl.SetupWriter(cfg.Env, os.Stderr)

	languageCode := cfg.WikiLanguage
	if *lang != "" {
		languageCode = *lang
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := wiki.NewClient(
		wiki.WithEndpoint(cfg.APIEndpoint),
		wiki.WithUserAgent(cfg.UserAgent),
		wiki.WithTimeout(cfg.HTTPTimeout),
		wiki.WithLogger(log),
	)
	svc := reader.NewService(client, log)

	cycle, err := svc.Fetch(ctx, languageCode)
	if err != nil {
		log.Error("failed to fetch random article", slog.String("lang", languageCode), sl.Err(err))
		fmt.Fprintln(os.Stderr, renderError(cycle, err))
		os.Exit(1)
	}

	fmt.Println(renderArticle(cycle.View, *width))
}
