package i18n

// Message IDs of the interface texts.
const (
	KeyWindowTitle            = "window_title"
	KeyInterfaceLanguageLabel = "interface_language_label"
	KeyWikipediaLanguageLabel = "wikipedia_language_label"
	KeyDarkTheme              = "dark_theme"
	KeyLightTheme             = "light_theme"
	KeySummary                = "summary"
	KeySections               = "sections"
	KeyCategories             = "categories"
	KeyCategoriesHeader       = "categories_header"
	KeyNewArticle             = "new_article"
	KeyFetching               = "fetching"
	KeyError                  = "error"
	KeyNoSummary              = "no_summary"

	KeyErrorFetchTitle         = "error_fetch_title"
	KeyErrorFetchArticle       = "error_fetch_article"
	KeyErrorParseArticle       = "error_parse_article"
	KeyErrorOpenURL            = "error_open_url"
	KeyErrorClientNotInitiated = "error_client_not_initialized"
)
