package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wikireflect/wiki-reflection/internal/model"
)

// Outline layout
const (
	MainSectionLevel   = 2
	MaxUnderlineLength = 50
	UnderlinePadding   = 3
	SubSectionIndent   = 2
	SubSectionBullet   = "• "
)

// FormatSections renders a numbered outline of level-2 sections with dash
// underlines, and deeper sections as indented bullets. Levels below 2 are
// skipped.
func FormatSections(sections []model.Section) string {
	var b strings.Builder
	counter := 1

	for _, s := range sections {
		switch {
		case s.Level == MainSectionLevel:
			fmt.Fprintf(&b, "\n%d. %s\n", counter, s.Heading)
			underline := min(utf8.RuneCountInString(s.Heading)+UnderlinePadding, MaxUnderlineLength)
			b.WriteString(strings.Repeat("-", underline))
			b.WriteByte('\n')
			counter++
		case s.Level > MainSectionLevel:
			b.WriteString(strings.Repeat(" ", SubSectionIndent*(s.Level-MainSectionLevel)))
			b.WriteString(SubSectionBullet)
			b.WriteString(s.Heading)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
