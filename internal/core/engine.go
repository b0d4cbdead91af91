// Package core wires the catalog, collaborators, and extractors into the
// three transcript-processing entry points. An Engine is safe for
// concurrent use: the catalog and compiled patterns are immutable and all
// other state is local to a call.
package core

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medassist/scribe/internal/core/catalog"
	"github.com/medassist/scribe/internal/core/extract"
	"github.com/medassist/scribe/internal/core/intent"
	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/core/sentiment"
	"github.com/medassist/scribe/internal/core/soap"
	"github.com/medassist/scribe/internal/core/summary"
	"github.com/medassist/scribe/internal/core/transcript"
	"github.com/medassist/scribe/internal/driver"
	"github.com/medassist/scribe/internal/nlp"
)

type Engine struct {
	Catalog   *catalog.Catalog
	Entities  *extract.EntityExtractor
	Summary   *summary.Synthesizer
	Sentiment *sentiment.Mapper
	Intent    *intent.Classifier
	SOAP      *soap.Builder

	// Store is the optional encounter graph; nil disables recording.
	Store driver.GraphDriver
}

func NewEngine(segmenter nlp.Segmenter, classifier nlp.Classifier, store driver.GraphDriver) *Engine {
	cat := catalog.New()
	entities := extract.NewEntityExtractor(segmenter, cat)

	return &Engine{
		Catalog:   cat,
		Entities:  entities,
		Summary:   summary.NewSynthesizer(entities),
		Sentiment: sentiment.NewMapper(cat, classifier),
		Intent:    intent.NewClassifier(cat),
		SOAP:      soap.NewBuilder(entities),
		Store:     store,
	}
}

// ProcessSummary turns a transcript into the structured summary. Empty
// input returns the fully-defaulted record without touching a collaborator.
func (e *Engine) ProcessSummary(ctx context.Context, conversation string) (model.StructuredSummary, error) {
	if strings.TrimSpace(conversation) == "" {
		return model.DefaultSummary(), nil
	}
	return e.Summary.Synthesize(ctx, conversation)
}

// ProcessSentimentIntent labels a single statement.
func (e *Engine) ProcessSentimentIntent(ctx context.Context, statement string) (model.StatementLabel, error) {
	result, err := e.Sentiment.Analyze(ctx, statement)
	if err != nil {
		return model.StatementLabel{}, err
	}
	return model.StatementLabel{
		Sentiment: result.Sentiment,
		Intent:    e.Intent.Detect(statement),
	}, nil
}

// ProcessSOAPNote builds the four-section note for a transcript.
func (e *Engine) ProcessSOAPNote(ctx context.Context, conversation string) (model.SOAPNote, error) {
	if strings.TrimSpace(conversation) == "" {
		return e.SOAP.GenerateWith("", model.EntitySet{}), nil
	}
	return e.SOAP.Generate(ctx, conversation)
}

// AnalyzeDialogue labels every patient statement in a transcript.
func (e *Engine) AnalyzeDialogue(ctx context.Context, conversation string) ([]model.StatementAnalysis, error) {
	statements := transcript.Parse(conversation).PatientStatements()

	results := make([]model.StatementAnalysis, 0, len(statements))
	for _, stmt := range statements {
		res, err := e.Sentiment.Analyze(ctx, stmt)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze statement: %w", err)
		}
		results = append(results, model.StatementAnalysis{
			Statement:  stmt,
			Sentiment:  res.Sentiment,
			Confidence: res.Confidence,
			Intent:     e.Intent.Detect(stmt),
		})
	}
	return results, nil
}

// OverallSentiment aggregates the per-statement analysis of a transcript.
func (e *Engine) OverallSentiment(ctx context.Context, conversation string) (model.DialogueSummary, error) {
	analyses, err := e.AnalyzeDialogue(ctx, conversation)
	if err != nil {
		return model.DialogueSummary{}, err
	}

	if len(analyses) == 0 {
		return model.DialogueSummary{
			OverallSentiment:      model.SentimentNeutral,
			SentimentDistribution: map[string]int{},
			DominantIntent:        intent.General,
			AverageConfidence:     0.0,
		}, nil
	}

	sentiments := make(map[string]int)
	intents := make(map[string]int)
	var total float64
	for _, a := range analyses {
		sentiments[a.Sentiment]++
		intents[a.Intent]++
		total += a.Confidence
	}

	return model.DialogueSummary{
		OverallSentiment:      dominant(sentiments),
		SentimentDistribution: sentiments,
		DominantIntent:        dominant(intents),
		IntentDistribution:    intents,
		AverageConfidence:     math.Round(total/float64(len(analyses))*1000) / 1000,
		StatementCount:        len(analyses),
	}, nil
}

// Keywords lists the important medical phrases in a transcript.
func (e *Engine) Keywords(ctx context.Context, conversation string) ([]string, error) {
	if strings.TrimSpace(conversation) == "" {
		return []string{}, nil
	}
	return e.Entities.Keywords(ctx, conversation)
}

// RecordEncounter persists a processed summary and its entity set as an
// Encounter node linked to Finding nodes, and returns the encounter ID.
func (e *Engine) RecordEncounter(ctx context.Context, sum model.StructuredSummary, entities model.EntitySet) (string, error) {
	if e.Store == nil {
		return "", fmt.Errorf("no encounter graph store configured")
	}

	encounterID := uuid.New().String()
	now := time.Now().UTC()

	_, err := e.Store.ExecuteQuery(ctx, driver.SaveEncounterQuery, map[string]interface{}{
		"uuid":           encounterID,
		"created_at":     now,
		"patient_name":   sum.PatientName,
		"diagnosis":      sum.Diagnosis,
		"current_status": sum.CurrentStatus,
		"prognosis":      sum.Prognosis,
	})
	if err != nil {
		return "", fmt.Errorf("failed to save encounter: %w", err)
	}

	categories := map[string][]string{
		"symptom":   entities.Symptoms,
		"treatment": entities.Treatments,
		"diagnosis": entities.Diagnoses,
	}
	for category, names := range categories {
		for _, name := range names {
			params := map[string]interface{}{
				"uuid":       uuid.New().String(),
				"created_at": now,
				"name":       name,
				"category":   category,
			}
			if _, err := e.Store.ExecuteQuery(ctx, driver.SaveFindingQuery, params); err != nil {
				return "", fmt.Errorf("failed to save finding: %w", err)
			}
			link := map[string]interface{}{
				"encounter_uuid": encounterID,
				"name":           name,
				"category":       category,
			}
			if _, err := e.Store.ExecuteQuery(ctx, driver.LinkFindingQuery, link); err != nil {
				return "", fmt.Errorf("failed to link finding: %w", err)
			}
		}
	}

	return encounterID, nil
}

func dominant(counts map[string]int) string {
	best := ""
	bestCount := -1
	for k, v := range counts {
		if v > bestCount || (v == bestCount && k < best) {
			best = k
			bestCount = v
		}
	}
	return best
}
