package format

import (
	"testing"

	"github.com/wikireflect/wiki-reflection/internal/model"
)

func TestBuildView_FullResult(t *testing.T) {
	result := &model.ArticleQueryResult{
		Title:      "Sparrow",
		Extract:    "Small bird. Lives in cities.",
		HasExtract: true,
		Sections:   []model.Section{{Level: 2, Heading: "Range"}},
		Categories: []string{"Category:Birds"},
	}

	view := BuildView("en", result, Labels{})

	if view.Title != "Sparrow" {
		t.Errorf("Expected title Sparrow, got %s", view.Title)
	}
	if view.URL != "https://en.wikipedia.org/wiki/Sparrow" {
		t.Errorf("Unexpected URL %s", view.URL)
	}
	if view.Summary != "Small bird.\nLives in cities." {
		t.Errorf("Unexpected summary %q", view.Summary)
	}
	if !view.ShowSections || view.Sections == "" {
		t.Error("Sections should be shown")
	}
	if !view.ShowCategories || view.Categories != DefaultCategoriesHeader+"\n\n  1. Birds\n" {
		t.Errorf("Unexpected categories %q", view.Categories)
	}
}

func TestBuildView_MissingParts(t *testing.T) {
	result := &model.ArticleQueryResult{Title: "Stub"}

	view := BuildView("de", result, Labels{NoSummary: "Keine Zusammenfassung.", CategoriesHeader: "Kategorien:"})

	if view.Summary != "Keine Zusammenfassung." {
		t.Errorf("Expected localized no-summary text, got %q", view.Summary)
	}
	if view.ShowSections || view.Sections != "" {
		t.Error("Sections should be hidden when absent")
	}
	if view.ShowCategories || view.Categories != "" {
		t.Error("Categories should be hidden when absent")
	}
	if view.URL != "https://de.wikipedia.org/wiki/Stub" {
		t.Errorf("Unexpected URL %s", view.URL)
	}
}

func TestBuildView_OnlyIgnoredSectionsAreHidden(t *testing.T) {
	result := &model.ArticleQueryResult{
		Title:      "Page",
		HasExtract: true,
		Sections:   []model.Section{{Level: 1, Heading: "Page"}},
		Categories: []string{"Category: "},
	}

	view := BuildView("en", result, DefaultLabels)
	if view.ShowSections {
		t.Error("Sections made only of ignored levels should be hidden")
	}
	if view.ShowCategories {
		t.Error("Categories made only of empty names should be hidden")
	}
	if view.Summary != "" {
		t.Errorf("Empty extract should give empty summary, got %q", view.Summary)
	}
}
