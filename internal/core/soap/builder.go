// Package soap builds the four-section clinical note. Each section builder
// is a pure function of the transcript text plus the shared entity set, so
// the sections can be assembled in any order.
package soap

import (
	"context"
	"fmt"

	"github.com/medassist/scribe/internal/core/extract"
	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/core/transcript"
)

type Builder struct {
	Entities *extract.EntityExtractor
}

func NewBuilder(entities *extract.EntityExtractor) *Builder {
	return &Builder{Entities: entities}
}

// Generate extracts entities once and hands the cached set to every section
// builder.
func (b *Builder) Generate(ctx context.Context, conversation string) (model.SOAPNote, error) {
	entities, err := b.Entities.Extract(ctx, conversation)
	if err != nil {
		return model.SOAPNote{}, fmt.Errorf("failed to extract entities for SOAP note: %w", err)
	}
	return b.GenerateWith(conversation, entities), nil
}

// GenerateWith builds the note from an entity set the caller already has.
func (b *Builder) GenerateWith(conversation string, entities model.EntitySet) model.SOAPNote {
	statements := transcript.Parse(conversation).PatientStatements()

	return model.SOAPNote{
		Subjective: buildSubjective(conversation, entities, statements),
		Objective:  buildObjective(conversation),
		Assessment: buildAssessment(conversation, entities),
		Plan:       buildPlan(conversation, entities),
	}
}
