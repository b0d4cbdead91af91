// Package extract implements the catalog-driven extractors that pull
// entities, patient details, and temporal signals out of transcript text.
package extract

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/medassist/scribe/internal/core/catalog"
	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/nlp"
)

// EntityExtractor runs lexicon phrase matching over the token stream and
// flags prognosis sentences. Phrase lists are tokenized once at
// construction; the extractor itself is stateless per call.
type EntityExtractor struct {
	Segmenter nlp.Segmenter
	Catalog   *catalog.Catalog

	symptoms   [][]string
	treatments [][]string
	diagnoses  [][]string
}

func NewEntityExtractor(seg nlp.Segmenter, cat *catalog.Catalog) *EntityExtractor {
	return &EntityExtractor{
		Segmenter:  seg,
		Catalog:    cat,
		symptoms:   tokenizePhrases(cat.Symptoms),
		treatments: tokenizePhrases(cat.Treatments),
		diagnoses:  tokenizePhrases(cat.Diagnoses),
	}
}

// Extract returns the entity sets for text, each sorted and de-duplicated.
func (e *EntityExtractor) Extract(ctx context.Context, text string) (model.EntitySet, error) {
	doc, err := e.Segmenter.Segment(ctx, text)
	if err != nil {
		return model.EntitySet{}, fmt.Errorf("failed to segment transcript: %w", err)
	}

	set := model.EntitySet{
		Symptoms:   sortedSet(matchPhrases(doc, e.symptoms)),
		Treatments: sortedSet(matchPhrases(doc, e.treatments)),
		Diagnoses:  sortedSet(matchPhrases(doc, e.diagnoses)),
	}

	var prognosis []string
	for _, sent := range doc.Sentences {
		lower := strings.ToLower(sent)
		for _, kw := range e.Catalog.PrognosisKeywords {
			if strings.Contains(lower, kw) {
				prognosis = append(prognosis, strings.TrimSpace(sent))
				break
			}
		}
	}
	set.Prognosis = sortedSet(prognosis)

	return set, nil
}

func sortedSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
