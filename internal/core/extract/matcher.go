package extract

import (
	"regexp"
	"strings"

	"github.com/medassist/scribe/internal/nlp"
)

var phraseWord = regexp.MustCompile(`[A-Za-z0-9']+`)

// tokenizePhrases splits each lexicon phrase with the same word pattern the
// segmenter uses, so multi-word and hyphenated terms line up with the token
// stream.
func tokenizePhrases(phrases []string) [][]string {
	out := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, phraseWord.FindAllString(strings.ToLower(p), -1))
	}
	return out
}

// matchPhrases finds every case-insensitive occurrence of the tokenized
// phrases in the document and returns the lowercased surface text of each
// matched span. Overlapping matches are all kept; de-duplication is the
// caller's concern (set semantics).
func matchPhrases(doc *nlp.Document, phrases [][]string) []string {
	var spans []string
	for _, phrase := range phrases {
		if len(phrase) == 0 {
			continue
		}
		for i := 0; i+len(phrase) <= len(doc.Tokens); i++ {
			if !tokensEqual(doc.Tokens[i:i+len(phrase)], phrase) {
				continue
			}
			start := doc.Tokens[i].Start
			end := doc.Tokens[i+len(phrase)-1].End
			spans = append(spans, strings.ToLower(doc.Text[start:end]))
		}
	}
	return spans
}

func tokensEqual(tokens []nlp.Token, phrase []string) bool {
	for i, w := range phrase {
		if strings.ToLower(tokens[i].Text) != w {
			return false
		}
	}
	return true
}
