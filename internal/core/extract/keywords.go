package extract

import (
	"context"
	"strings"
)

// Words that mark a phrase as medically relevant for keyword extraction.
var keywordIndicators = []string{
	"pain", "injury", "therapy", "treatment", "session",
	"accident", "recovery", "diagnosis", "symptom",
}

// Left-expansion stopwords: determiners and glue that would make a chunk
// read like half a sentence.
var chunkStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "my": true, "your": true,
	"his": true, "her": true, "their": true, "some": true, "any": true,
	"this": true, "that": true, "to": true, "in": true, "on": true,
	"and": true, "or": true, "was": true, "is": true, "had": true,
	"have": true, "i": true, "it": true,
}

// Keywords returns the important medical phrases in text: every extracted
// entity plus indicator-anchored chunks from the token stream (a cheap
// stand-in for noun-phrase chunking). Output is sorted and de-duplicated.
func (e *EntityExtractor) Keywords(ctx context.Context, text string) ([]string, error) {
	doc, err := e.Segmenter.Segment(ctx, text)
	if err != nil {
		return nil, err
	}

	var found []string
	for i, tok := range doc.Tokens {
		lower := strings.ToLower(tok.Text)
		if !containsIndicator(lower) {
			continue
		}
		start := i
		for start > 0 && i-start < 2 {
			prev := strings.ToLower(doc.Tokens[start-1].Text)
			if chunkStopwords[prev] || containsIndicator(prev) {
				break
			}
			start--
		}
		span := strings.ToLower(doc.Text[doc.Tokens[start].Start:tok.End])
		found = append(found, span)
	}

	set, err := e.Extract(ctx, text)
	if err != nil {
		return nil, err
	}
	found = append(found, set.Symptoms...)
	found = append(found, set.Treatments...)
	found = append(found, set.Diagnoses...)
	found = append(found, set.Prognosis...)

	return sortedSet(found), nil
}

func containsIndicator(word string) bool {
	for _, ind := range keywordIndicators {
		if strings.Contains(word, ind) {
			return true
		}
	}
	return false
}
