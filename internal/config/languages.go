package config

// Language pairs a display name with a language code
type Language struct {
	Name string
	Code string
}

// WikiLanguages lists the Wikipedia editions offered in the UI, in display order.
// "rm" is kept for Romani to match the editions offered so far.
var WikiLanguages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Ukrainian", Code: "uk"},
	{Name: "German", Code: "de"},
	{Name: "French", Code: "fr"},
	{Name: "Spanish", Code: "es"},
	{Name: "Italian", Code: "it"},
	{Name: "Polish", Code: "pl"},
	{Name: "Russian", Code: "ru"},
	{Name: "Japanese", Code: "ja"},
	{Name: "Chinese", Code: "zh"},
	{Name: "Romani", Code: "rm"},
}

// GUILanguages lists the interface languages; Code is the BCP 47 tag of the
// matching locale file. Romani uses a private-use tag on English because
// "rom" has no CLDR plural rule.
var GUILanguages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Ukrainian", Code: "uk"},
	{Name: "German", Code: "de"},
	{Name: "French", Code: "fr"},
	{Name: "Russian", Code: "ru"},
	{Name: "Romani", Code: "en-x-rom"},
}

// WikiLanguageNames returns the wiki language display names in order
func WikiLanguageNames() []string {
	return names(WikiLanguages)
}

// GUILanguageNames returns the interface language display names in order
func GUILanguageNames() []string {
	return names(GUILanguages)
}

// WikiLanguageCode returns the wiki code for a display name
func WikiLanguageCode(name string) (string, bool) {
	for _, l := range WikiLanguages {
		if l.Name == name {
			return l.Code, true
		}
	}
	return "", false
}

// WikiLanguageName returns the display name for a wiki code
func WikiLanguageName(code string) (string, bool) {
	for _, l := range WikiLanguages {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

// GUILanguageTag returns the locale tag for an interface language name
func GUILanguageTag(name string) (string, bool) {
	for _, l := range GUILanguages {
		if l.Name == name {
			return l.Code, true
		}
	}
	return "", false
}

func names(langs []Language) []string {
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		out = append(out, l.Name)
	}
	return out
}
