package format

import "strings"

// SentencesPerParagraph is the number of sentences between blank lines
const SentencesPerParagraph = 3

const sentenceTerminators = ".!?"

func isTerminator(r rune) bool {
	return strings.ContainsRune(sentenceTerminators, r)
}

// FormatSummary reflows plain prose into one sentence per line with a blank
// line after every third sentence.
func FormatSummary(text string) string {
	if text == "" {
		return text
	}

	fragments := strings.FieldsFunc(text, isTerminator)
	sentences := make([]string, 0, len(fragments))

	cursor := 0
	for _, fragment := range fragments {
		sentence := strings.TrimSpace(fragment)
		if sentence == "" {
			continue
		}

		// The terminator is the byte right after the fragment in the source.
		if idx := strings.Index(text[cursor:], sentence); idx >= 0 {
			end := cursor + idx + len(sentence)
			if end < len(text) && strings.IndexByte(sentenceTerminators, text[end]) >= 0 {
				sentence += text[end : end+1]
			}
			cursor = end
		}

		sentences = append(sentences, sentence)
	}

	var b strings.Builder
	for i, sentence := range sentences {
		b.WriteString(sentence)
		b.WriteByte('\n')
		if (i+1)%SentencesPerParagraph == 0 && i < len(sentences)-1 {
			b.WriteByte('\n')
		}
	}

	return strings.TrimSpace(b.String())
}
