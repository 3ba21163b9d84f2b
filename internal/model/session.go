package model

// Theme identifiers accepted by the presentation layer
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// LanguageSelection pairs the interface language with the queried wiki edition
type LanguageSelection struct {
	GUILanguage  string // display name of the interface language, e.g. "German"
	WikiLanguage string // wiki language code, e.g. "de"
}

// ThemeState is the light/dark flag of a session
type ThemeState struct {
	Dark bool
}

// Toggle flips the theme and returns the new state
func (ts *ThemeState) Toggle() ThemeState {
	ts.Dark = !ts.Dark
	return *ts
}

// ThemeID returns ThemeDark or ThemeLight
func (ts ThemeState) ThemeID() string {
	if ts.Dark {
		return ThemeDark
	}
	return ThemeLight
}
