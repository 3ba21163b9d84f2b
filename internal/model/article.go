package model

// Section is a heading entry of an article outline
type Section struct {
	Level   int    // 1 is the page title, 2 a top-level section
	Heading string // plain heading text
}

// ArticleQueryResult is the parsed content of a single article query
type ArticleQueryResult struct {
	Title      string
	Extract    string   // plain-text extract, empty when HasExtract is false
	HasExtract bool     // false when the API returned no extract at all
	Sections   []Section
	Categories []string // raw "Category:Name" titles
}

// HasSections reports whether the response carried any sections
func (r *ArticleQueryResult) HasSections() bool {
	return r != nil && len(r.Sections) > 0
}

// HasCategories reports whether the response carried any categories
func (r *ArticleQueryResult) HasCategories() bool {
	return r != nil && len(r.Categories) > 0
}

// ArticleView holds the display-ready text of one fetched article
type ArticleView struct {
	Title      string
	Summary    string
	Sections   string
	Categories string
	URL        string

	ShowSections   bool
	ShowCategories bool
}
