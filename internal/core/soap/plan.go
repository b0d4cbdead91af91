package soap

import (
	"strings"

	"github.com/medassist/scribe/internal/core/model"
)

func buildPlan(text string, entities model.EntitySet) model.Plan {
	return model.Plan{
		Treatment:        treatmentPlan(text, entities.Treatments),
		Medications:      medications(text),
		FollowUp:         followUp(text),
		PatientEducation: patientEducation(text),
	}
}

func treatmentPlan(text string, treatments []string) string {
	lower := strings.ToLower(text)
	var plans []string

	if anyContains(treatments, "physio") {
		if strings.Contains(lower, "continue") {
			plans = append(plans, "Continue physiotherapy as needed")
		} else {
			plans = append(plans, "Physiotherapy completed")
		}
	}
	if anyContains(treatments, "painkiller") || anyContains(treatments, "analgesic") {
		plans = append(plans, "Use analgesics for pain relief as needed")
	}

	if len(plans) == 0 {
		return "Conservative management"
	}
	return strings.Join(plans, ", ")
}

func medications(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "painkiller") {
		return "Analgesics as needed for pain management"
	}
	if strings.Contains(lower, "medication") {
		return "Medications as prescribed"
	}
	return "None specified"
}

func followUp(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "come back") || strings.Contains(lower, "follow-up"):
		if strings.Contains(lower, "worsening") || strings.Contains(lower, "worsen") {
			return "Patient to return if pain worsens or persists beyond six months"
		}
		return "Follow-up as needed"
	case strings.Contains(lower, "reach out") || strings.Contains(lower, "contact"):
		return "Patient advised to reach out if symptoms worsen"
	}
	return "Follow-up in 3-6 months or as needed"
}

func patientEducation(text string) string {
	lower := strings.ToLower(text)
	var notes []string

	if strings.Contains(lower, "advice") {
		notes = append(notes, "Patient counseled on injury management")
	}
	if strings.Contains(lower, "no long-term impact") {
		notes = append(notes, "Reassured about favorable prognosis")
	}

	if len(notes) == 0 {
		return "Patient educated on condition and recovery expectations"
	}
	return strings.Join(notes, ", ")
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
