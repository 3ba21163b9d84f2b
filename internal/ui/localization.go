package ui

import (
	"sync"

	"github.com/wikireflect/wiki-reflection/internal/config"
	"github.com/wikireflect/wiki-reflection/internal/format"
	"github.com/wikireflect/wiki-reflection/internal/i18n"
)

// Localization manages UI text translations for the selected interface language
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	translator      *i18n.Translator
}

// NewLocalization creates a new localization manager
func NewLocalization(translator *i18n.Translator, language string) *Localization {
	l := &Localization{
		currentLanguage: config.DefaultGUILanguage,
		translator:      translator,
	}
	l.SetLanguage(language)
	return l
}

// SetLanguage sets the current interface language; unknown names are ignored
func (l *Localization) SetLanguage(language string) {
	if _, ok := config.GUILanguageTag(language); !ok {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.currentLanguage = language
}

// GetCurrentLanguage returns the current interface language name
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns the interface language names in display order
func (l *Localization) GetAvailableLanguages() []string {
	return config.GUILanguageNames()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	return l.translator.Lookup(l.GetCurrentLanguage(), key)
}

// Render returns localized text with template data
func (l *Localization) Render(key string, data map[string]any) string {
	return l.translator.Render(l.GetCurrentLanguage(), key, data)
}

// Labels returns the localized fragments used when formatting an article
func (l *Localization) Labels() format.Labels {
	return format.Labels{
		NoSummary:        l.GetText(i18n.KeyNoSummary),
		CategoriesHeader: l.GetText(i18n.KeyCategoriesHeader),
	}
}
