package soap

import (
	"regexp"
	"strings"

	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/core/summary"
)

var (
	accidentClause  = regexp.MustCompile(`(?i)(car accident|accident)[^.]*\.`)
	painClause      = regexp.MustCompile(`(?i)(experienced|feel|felt|had)[^.]*pain[^.]*\.`)
	treatmentClause = regexp.MustCompile(`(?i)(received|had|underwent)[^.]*therapy[^.]*\.`)
	timelineClause  = regexp.MustCompile(`(first|for|lasted|over)\s+(\d+)\s+(week|weeks|month|months)`)
)

func buildSubjective(text string, entities model.EntitySet, statements []string) model.Subjective {
	reported := statements
	if len(reported) > 3 {
		reported = reported[:3]
	}
	if reported == nil {
		reported = []string{}
	}

	return model.Subjective{
		ChiefComplaint:          chiefComplaint(text, entities.Symptoms),
		HistoryOfPresentIllness: presentIllnessHistory(text),
		SymptomTimeline:         symptomTimeline(text),
		PatientReportedSymptoms: reported,
	}
}

// chiefComplaint picks the leading complaint by priority: combined
// neck+back, then neck, then back, then the first extracted symptom.
func chiefComplaint(text string, symptoms []string) string {
	if len(symptoms) == 0 {
		return "General discomfort"
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "neck") && strings.Contains(lower, "back"):
		return "Neck and back pain"
	case strings.Contains(lower, "neck"):
		return "Neck pain"
	case strings.Contains(lower, "back"):
		return "Back pain"
	}
	return summary.Capitalize(symptoms[0])
}

// presentIllnessHistory concatenates up to three independently matched
// clauses: the accident description, the pain onset, and the treatment
// received.
func presentIllnessHistory(text string) string {
	lower := strings.ToLower(text)
	var parts []string

	if strings.Contains(lower, "accident") {
		if m := accidentClause.FindString(text); m != "" {
			parts = append(parts, strings.TrimSpace(m))
		}
	}
	if strings.Contains(lower, "pain") {
		if m := painClause.FindString(text); m != "" {
			parts = append(parts, strings.TrimSpace(m))
		}
	}
	if strings.Contains(lower, "treatment") || strings.Contains(lower, "therapy") {
		if m := treatmentClause.FindString(text); m != "" {
			parts = append(parts, strings.TrimSpace(m))
		}
	}

	if len(parts) == 0 {
		return "Patient reports ongoing symptoms."
	}
	return strings.Join(parts, " ")
}

func symptomTimeline(text string) string {
	lower := strings.ToLower(text)
	var parts []string

	for _, m := range timelineClause.FindAllStringSubmatch(lower, -1) {
		parts = append(parts, m[2]+" "+m[3])
	}
	if strings.Contains(lower, "improving") || strings.Contains(lower, "better") {
		parts = append(parts, "showing improvement")
	}
	if strings.Contains(lower, "occasional") {
		parts = append(parts, "occasional symptoms currently")
	}

	if len(parts) == 0 {
		return "Timeline not specified"
	}
	return strings.Join(parts, ", ")
}
