package soap

import (
	"fmt"
	"strings"

	"github.com/medassist/scribe/internal/core/model"
)

// FormatText renders a SOAP note as plain text for printing alongside the
// JSON form.
func FormatText(note model.SOAPNote) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	sub := strings.Repeat("-", 60)

	fmt.Fprintf(&b, "%s\nSOAP NOTE\n%s\n", rule, rule)

	fmt.Fprintf(&b, "\nSUBJECTIVE:\n%s\n", sub)
	fmt.Fprintf(&b, "Chief Complaint: %s\n", note.Subjective.ChiefComplaint)
	fmt.Fprintf(&b, "History of Present Illness: %s\n", note.Subjective.HistoryOfPresentIllness)
	fmt.Fprintf(&b, "Symptom Timeline: %s\n", note.Subjective.SymptomTimeline)
	fmt.Fprintf(&b, "Patient Reported Symptoms: %s\n", strings.Join(note.Subjective.PatientReportedSymptoms, "; "))

	fmt.Fprintf(&b, "\nOBJECTIVE:\n%s\n", sub)
	fmt.Fprintf(&b, "Physical Exam: %s\n", note.Objective.PhysicalExam)
	fmt.Fprintf(&b, "Observations: %s\n", note.Objective.Observations)
	fmt.Fprintf(&b, "Test Results: %s\n", note.Objective.TestResults)

	fmt.Fprintf(&b, "\nASSESSMENT:\n%s\n", sub)
	fmt.Fprintf(&b, "Diagnosis: %s\n", note.Assessment.Diagnosis)
	fmt.Fprintf(&b, "Severity: %s\n", note.Assessment.Severity)
	fmt.Fprintf(&b, "Prognosis: %s\n", note.Assessment.Prognosis)
	fmt.Fprintf(&b, "Clinical Impression: %s\n", note.Assessment.ClinicalImpression)

	fmt.Fprintf(&b, "\nPLAN:\n%s\n", sub)
	fmt.Fprintf(&b, "Treatment: %s\n", note.Plan.Treatment)
	fmt.Fprintf(&b, "Medications: %s\n", note.Plan.Medications)
	fmt.Fprintf(&b, "Follow Up: %s\n", note.Plan.FollowUp)
	fmt.Fprintf(&b, "Patient Education: %s\n", note.Plan.PatientEducation)

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
