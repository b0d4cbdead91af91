package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SpeakerPrefixes(t *testing.T) {
	text := "Physician: How are you?\nPatient: Much better, thanks.\nDoctor: Glad to hear it."

	tr := Parse(text)

	require.Len(t, tr.Utterances, 3)
	assert.Equal(t, Physician, tr.Utterances[0].Speaker)
	assert.Equal(t, "How are you?", tr.Utterances[0].Text)
	assert.Equal(t, Patient, tr.Utterances[1].Speaker)
	assert.Equal(t, "Much better, thanks.", tr.Utterances[1].Text)
	// "Doctor" maps to Physician as well.
	assert.Equal(t, Physician, tr.Utterances[2].Speaker)
}

func TestParse_CaseInsensitivePrefix(t *testing.T) {
	tr := Parse("PATIENT: I feel fine.\nphysician: Good.")

	require.Len(t, tr.Utterances, 2)
	assert.Equal(t, Patient, tr.Utterances[0].Speaker)
	assert.Equal(t, Physician, tr.Utterances[1].Speaker)
}

func TestParse_SkipsUnattributedLines(t *testing.T) {
	text := "Visit notes follow.\nNurse: Vitals taken.\nPatient: My neck hurts."

	tr := Parse(text)

	require.Len(t, tr.Utterances, 1)
	assert.Equal(t, Patient, tr.Utterances[0].Speaker)
	// Raw keeps everything so whole-transcript scans still see skipped lines.
	assert.Equal(t, text, tr.Raw)
}

func TestParse_Empty(t *testing.T) {
	tr := Parse("")
	assert.Empty(t, tr.Utterances)
	assert.Empty(t, tr.PatientStatements())
}

func TestPatientStatements_Order(t *testing.T) {
	text := "Patient: First.\nPhysician: Noted.\nPatient: Second."

	stmts := Parse(text).PatientStatements()

	assert.Equal(t, []string{"First.", "Second."}, stmts)
}

func TestSpeaker_String(t *testing.T) {
	assert.Equal(t, "Patient", Patient.String())
	assert.Equal(t, "Physician", Physician.String())
	assert.Equal(t, "Unknown", Unknown.String())
}
