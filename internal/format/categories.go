package format

import (
	"fmt"
	"strings"
)

// Category list layout
const (
	CategoryPrefix          = "Category:"
	DefaultCategoriesHeader = "📂 Categories:"
)

// CategoryNames strips whitespace and the "Category:" prefix and drops empties
func CategoryNames(titles []string) []string {
	names := make([]string, 0, len(titles))
	for _, title := range titles {
		name := strings.TrimSpace(title)
		name = strings.TrimPrefix(name, CategoryPrefix)
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FormatCategories renders the numbered category list under the default header
func FormatCategories(titles []string) string {
	return FormatCategoriesWithHeader(titles, DefaultCategoriesHeader)
}

// FormatCategoriesWithHeader renders the numbered category list under header.
// It returns an empty string when no category name survives cleaning.
func FormatCategoriesWithHeader(titles []string, header string) string {
	names := CategoryNames(titles)
	if len(names) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for i, name := range names {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
	}
	return b.String()
}
