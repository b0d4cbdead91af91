package soap

import (
	"context"
	"testing"

	"github.com/medassist/scribe/internal/core/catalog"
	"github.com/medassist/scribe/internal/core/extract"
	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clinicTranscript = `Physician: Good morning, Ms. Jones. How have you been since the accident?
Patient: Good morning. It happened on September 1st around 12:30 pm. I was rear-ended in traffic.
Physician: Did you feel symptoms right away?
Patient: Yes, I hit my head on the steering wheel and had neck and back pain almost immediately.
Physician: Did you seek medical attention?
Patient: I went to Moss Bank A&E. No X-rays were done. They said it was a whiplash injury and gave advice.
Physician: How have things progressed?
Patient: The first four weeks were rough. I had trouble sleeping and took painkillers. Then I did ten sessions of physiotherapy, which helped with stiffness and discomfort.
Physician: How are you now?
Patient: I still get occasional backaches, but it's much better than before.
Physician: On exam your range of motion is full and there's no tenderness. I expect a full recovery within six months of the accident.
Patient: That's reassuring, thank you.`

func newTestBuilder() *Builder {
	return NewBuilder(extract.NewEntityExtractor(nlp.NewRuleSegmenter(), catalog.New()))
}

func TestGenerate_Subjective(t *testing.T) {
	b := newTestBuilder()

	note, err := b.Generate(context.Background(), clinicTranscript)
	require.NoError(t, err)

	assert.Equal(t, "Neck and back pain", note.Subjective.ChiefComplaint)
	assert.Contains(t, note.Subjective.HistoryOfPresentIllness, "accident")
	assert.Contains(t, note.Subjective.HistoryOfPresentIllness, "pain")
	assert.Equal(t, "showing improvement, occasional symptoms currently", note.Subjective.SymptomTimeline)

	// At most three reported statements make it into the note.
	require.Len(t, note.Subjective.PatientReportedSymptoms, 3)
	assert.Contains(t, note.Subjective.PatientReportedSymptoms[1], "neck and back pain")
}

func TestGenerate_Objective(t *testing.T) {
	b := newTestBuilder()

	note, err := b.Generate(context.Background(), clinicTranscript)
	require.NoError(t, err)

	// "exam" alone does not satisfy the examination gate.
	assert.Equal(t, "Physical examination completed", note.Objective.PhysicalExam)
	assert.Equal(t, "No acute distress", note.Objective.Observations)
	assert.Equal(t, "No X-rays performed", note.Objective.TestResults)
}

func TestGenerate_Assessment(t *testing.T) {
	b := newTestBuilder()

	note, err := b.Generate(context.Background(), clinicTranscript)
	require.NoError(t, err)

	assert.Equal(t, "Whiplash injury", note.Assessment.Diagnosis)
	assert.Equal(t, "Mild, improving", note.Assessment.Severity)
	assert.Equal(t, "Full recovery expected within six months", note.Assessment.Prognosis)
	assert.Equal(t, "Patient responding well to treatment", note.Assessment.ClinicalImpression)
}

func TestGenerate_Plan(t *testing.T) {
	b := newTestBuilder()

	note, err := b.Generate(context.Background(), clinicTranscript)
	require.NoError(t, err)

	assert.Equal(t, "Physiotherapy completed, Use analgesics for pain relief as needed", note.Plan.Treatment)
	assert.Equal(t, "Analgesics as needed for pain management", note.Plan.Medications)
	assert.Equal(t, "Follow-up in 3-6 months or as needed", note.Plan.FollowUp)
	assert.Equal(t, "Patient counseled on injury management", note.Plan.PatientEducation)
}

func TestGenerate_CompoundDiagnosis(t *testing.T) {
	b := newTestBuilder()

	note, err := b.Generate(context.Background(), "Patient: They diagnosed a whiplash injury and a lower back strain.")
	require.NoError(t, err)

	assert.Equal(t, "Whiplash injury and lower back strain", note.Assessment.Diagnosis)
}

func TestGenerate_PhysicalExamFindings(t *testing.T) {
	b := newTestBuilder()

	note, err := b.Generate(context.Background(), "Physician: On physical examination, full range of motion and no tenderness. Muscles are in good condition.")
	require.NoError(t, err)

	assert.Equal(t,
		"Full range of motion in cervical and lumbar spine, No tenderness on palpation, Muscles in good condition",
		note.Objective.PhysicalExam)
}

func TestGenerateWith_EmptyTranscriptDefaults(t *testing.T) {
	b := newTestBuilder()

	note := b.GenerateWith("", model.EntitySet{})

	assert.Equal(t, "General discomfort", note.Subjective.ChiefComplaint)
	assert.Equal(t, "Patient reports ongoing symptoms.", note.Subjective.HistoryOfPresentIllness)
	assert.Equal(t, "Timeline not specified", note.Subjective.SymptomTimeline)
	assert.Equal(t, []string{}, note.Subjective.PatientReportedSymptoms)

	assert.Equal(t, "Physical examination completed", note.Objective.PhysicalExam)
	assert.Equal(t, "Patient appears comfortable", note.Objective.Observations)
	assert.Equal(t, "No tests mentioned", note.Objective.TestResults)

	assert.Equal(t, "Post-traumatic musculoskeletal pain", note.Assessment.Diagnosis)
	assert.Equal(t, "Mild", note.Assessment.Severity)
	assert.Equal(t, "Favorable prognosis", note.Assessment.Prognosis)

	assert.Equal(t, "Conservative management", note.Plan.Treatment)
	assert.Equal(t, "None specified", note.Plan.Medications)
	assert.Equal(t, "Patient educated on condition and recovery expectations", note.Plan.PatientEducation)
}

func TestFormatText(t *testing.T) {
	b := newTestBuilder()

	note, err := b.Generate(context.Background(), clinicTranscript)
	require.NoError(t, err)

	text := FormatText(note)
	assert.Contains(t, text, "SOAP NOTE")
	assert.Contains(t, text, "SUBJECTIVE:")
	assert.Contains(t, text, "OBJECTIVE:")
	assert.Contains(t, text, "ASSESSMENT:")
	assert.Contains(t, text, "PLAN:")
	assert.Contains(t, text, "Diagnosis: Whiplash injury")
}
