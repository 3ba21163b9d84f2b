package format

import (
	"github.com/wikireflect/wiki-reflection/internal/model"
)

// Labels carries the localized fragments used while building a view
type Labels struct {
	NoSummary        string
	CategoriesHeader string
}

// DefaultLabels are the English fragments
var DefaultLabels = Labels{
	NoSummary:        "No summary available.",
	CategoriesHeader: DefaultCategoriesHeader,
}

// BuildView formats a query result into the display blobs of one article
func BuildView(languageCode string, result *model.ArticleQueryResult, labels Labels) *model.ArticleView {
	if labels.NoSummary == "" {
		labels.NoSummary = DefaultLabels.NoSummary
	}
	if labels.CategoriesHeader == "" {
		labels.CategoriesHeader = DefaultLabels.CategoriesHeader
	}

	view := &model.ArticleView{
		Title: result.Title,
		URL:   BuildArticleURL(languageCode, result.Title),
	}

	if result.HasExtract {
		view.Summary = FormatSummary(result.Extract)
	} else {
		view.Summary = labels.NoSummary
	}

	view.Sections = FormatSections(result.Sections)
	view.ShowSections = view.Sections != ""

	view.Categories = FormatCategoriesWithHeader(result.Categories, labels.CategoriesHeader)
	view.ShowCategories = view.Categories != ""

	return view
}
