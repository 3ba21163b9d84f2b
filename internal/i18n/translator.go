package i18n

import (
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/wikireflect/wiki-reflection/internal/config"
	"github.com/wikireflect/wiki-reflection/internal/lib/logger/sl"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

// LocalePattern matches the message files inside a locale filesystem
const LocalePattern = "locales/active.*.toml"

var unmarshalFuncs = map[string]i18n.UnmarshalFunc{"toml": toml.Unmarshal}

// Translator is a thin wrapper around go-i18n keyed by interface language
// names. Each locale file gets its own bundle so a private-use tag such as
// en-x-rom is never matched to plain English.
type Translator struct {
	bundles  map[string]*i18n.Bundle
	fallback language.Tag
	log      *slog.Logger
}

// NewTranslator loads the embedded locale files
func NewTranslator(log *slog.Logger) *Translator {
	return NewTranslatorFS(localeFS, log)
}

// NewTranslatorFS loads every file matching LocalePattern from fsys.
// Files that fail to load are logged and skipped.
func NewTranslatorFS(fsys fs.FS, log *slog.Logger) *Translator {
	if log == nil {
		log = sl.Discard()
	}
	log = log.With(slog.String("component", "i18n"))

	t := &Translator{
		bundles:  make(map[string]*i18n.Bundle),
		fallback: language.English,
		log:      log,
	}

	files, err := fs.Glob(fsys, LocalePattern)
	if err != nil {
		log.Error("failed to list locale files", sl.Err(err))
	}
	for _, file := range files {
		if err := t.load(fsys, file); err != nil {
			log.Error("failed to load locale file", slog.String("file", file), sl.Err(err))
		}
	}

	return t
}

// load parses one message file into a bundle of its own
func (t *Translator) load(fsys fs.FS, file string) error {
	buf, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}
	mf, err := i18n.ParseMessageFileBytes(buf, file, unmarshalFuncs)
	if err != nil {
		return err
	}

	bundle := i18n.NewBundle(mf.Tag)
	if err := bundle.AddMessages(mf.Tag, mf.Messages...); err != nil {
		return err
	}
	t.bundles[mf.Tag.String()] = bundle
	return nil
}

// Languages returns the tags of the loaded locale files, sorted
func (t *Translator) Languages() []string {
	tags := make([]string, 0, len(t.bundles))
	for tag := range t.bundles {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Lookup returns the text for key in the given interface language.
// It falls back to English, then to "[key]".
func (t *Translator) Lookup(guiLanguage, key string) string {
	return t.Render(guiLanguage, key, nil)
}

// Render is Lookup with template data for messages such as error_fetch_title
func (t *Translator) Render(guiLanguage, key string, data map[string]any) string {
	tag := t.resolve(guiLanguage)
	if tag != t.fallback.String() {
		if msg, ok := t.localize(tag, key, data); ok {
			return msg
		}
	}
	if msg, ok := t.localize(t.fallback.String(), key, data); ok {
		return msg
	}

	t.log.Debug("missing translation", slog.String("key", key), slog.String("language", guiLanguage))
	return "[" + key + "]"
}

// resolve maps an interface language name (or a raw tag) to a canonical tag
func (t *Translator) resolve(guiLanguage string) string {
	if code, ok := config.GUILanguageTag(guiLanguage); ok {
		guiLanguage = code
	}
	tag, err := language.Parse(guiLanguage)
	if err != nil {
		return t.fallback.String()
	}
	return tag.String()
}

func (t *Translator) localize(tag, key string, data map[string]any) (string, bool) {
	bundle, ok := t.bundles[tag]
	if !ok || key == "" {
		return "", false
	}
	localizer := i18n.NewLocalizer(bundle, tag)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return "", false
	}
	return msg, true
}
