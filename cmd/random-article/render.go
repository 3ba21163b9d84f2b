package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/wikireflect/wiki-reflection/internal/model"
)

const minWidth = 20

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Underline(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
)

// renderArticle lays out a view for the terminal. No line is wider than width.
func renderArticle(view *model.ArticleView, width int) string {
	if width < minWidth {
		width = minWidth
	}

	banner := strings.Repeat("=", width)
	parts := []string{
		banner,
		styleLines(titleStyle, fit(view.Title, width)),
		banner,
		styleLines(linkStyle, wrap.String(view.URL, width)),
		"",
		headingStyle.Render("Summary:"),
		fit(view.Summary, width),
	}

	if view.ShowSections {
		parts = append(parts, "", headingStyle.Render("Sections:"), strings.TrimSpace(fit(view.Sections, width)))
	}
	if view.ShowCategories {
		parts = append(parts, "", fit(strings.TrimRight(view.Categories, "\n"), width))
	}

	return strings.Join(parts, "\n")
}

// fit word wraps s and breaks words longer than width
func fit(s string, width int) string {
	lines := strings.Split(wrap.String(wordwrap.String(s, width), width), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// styleLines renders each line on its own so lipgloss does not pad
// the block to its widest line
func styleLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderError describes a failed cycle
func renderError(cycle *model.FetchCycle, err error) string {
	stage := "fetch"
	if cycle != nil && cycle.ErrStage != model.StageNone {
		stage = string(cycle.ErrStage)
	}
	return errorStyle.Render(fmt.Sprintf("Error (%s): %v", stage, err))
}
