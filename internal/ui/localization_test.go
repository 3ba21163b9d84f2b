package ui

import (
	"testing"

	"github.com/wikireflect/wiki-reflection/internal/i18n"
)

func TestLocalization(t *testing.T) {
	l := NewLocalization(i18n.NewTranslator(nil), "Russian")

	if l.GetCurrentLanguage() != "Russian" {
		t.Errorf("Expected Russian, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(i18n.KeyError); got != "Ошибка" {
		t.Errorf("Unexpected text %q", got)
	}

	l.SetLanguage("Klingon")
	if l.GetCurrentLanguage() != "Russian" {
		t.Error("Unknown languages should be ignored")
	}

	l.SetLanguage("French")
	labels := l.Labels()
	if labels.NoSummary != "Aucun résumé disponible." || labels.CategoriesHeader != "📂 Catégories :" {
		t.Errorf("Unexpected labels %+v", labels)
	}

	if len(l.GetAvailableLanguages()) != 6 {
		t.Errorf("Expected 6 languages, got %v", l.GetAvailableLanguages())
	}
}
