package format

import (
	"strings"
)

// ArticleURLTemplate is the canonical article location, {lang} and {title}
// being replaced by the wiki language code and the encoded title.
const ArticleURLTemplate = "https://{lang}.wikipedia.org/wiki/{title}"

const upperHex = "0123456789ABCDEF"

// EncodeTitle form-encodes a title: spaces become '+', letters, digits and
// -_.!*() are kept and every other byte is percent-encoded in upper-case hex.
func EncodeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title) * 3)

	for i := 0; i < len(title); i++ {
		c := title[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case isURLSafe(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
		}
	}

	return b.String()
}

func isURLSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '*', '(', ')':
		return true
	}
	return false
}

// BuildArticleURL returns the article link for a title in a wiki edition
func BuildArticleURL(languageCode, title string) string {
	encoded := strings.ReplaceAll(EncodeTitle(title), "+", "_")
	url := strings.Replace(ArticleURLTemplate, "{lang}", languageCode, 1)
	return strings.Replace(url, "{title}", encoded, 1)
}
