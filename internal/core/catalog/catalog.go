// Package catalog holds the static term lists and compiled patterns the
// rule engine runs on. A Catalog is built once at startup and never mutated
// afterwards, so a single instance is safe to share across concurrent
// pipeline invocations.
package catalog

import "regexp"

// IntentCategory pairs an intent name with its detection patterns. Category
// order matters: ties between categories are broken by declaration order,
// so these live in a slice, never a map.
type IntentCategory struct {
	Name     string
	Patterns []*regexp.Regexp
}

// Catalog is the full lexicon and pattern set for the clinical domain.
type Catalog struct {
	// Entity phrase lists, matched case-insensitively over the token stream.
	Symptoms   []string
	Treatments []string
	Diagnoses  []string
	BodyParts  []string

	// PrognosisKeywords flag whole sentences as prognosis statements.
	PrognosisKeywords []string

	// Intents are the seven categories, in tie-break order.
	Intents []IntentCategory

	// Sentiment override lexicons. AnxietyWords and ReassuranceWords are
	// matched on word boundaries; RecoveryPhrases are plain substrings.
	AnxietyWords     []string
	ReassuranceWords []string
	RecoveryPhrases  []string
	NegationPatterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// New builds the default clinical catalog.
func New() *Catalog {
	return &Catalog{
		Symptoms: []string{
			"pain", "discomfort", "stiffness", "ache", "soreness", "hurt",
			"trouble sleeping", "backache", "neck pain", "back pain",
			"head impact", "shock", "anxiety", "nervous",
		},
		Treatments: []string{
			"physiotherapy", "painkillers", "treatment", "therapy",
			"x-ray", "x-rays", "medical attention", "analgesics",
			"sessions", "advice",
		},
		Diagnoses: []string{
			"whiplash", "injury", "strain", "whiplash injury",
			"lower back strain", "damage", "degeneration",
		},
		BodyParts: []string{
			"neck", "back", "head", "spine", "steering wheel",
			"cervical", "lumbar", "muscles",
		},

		PrognosisKeywords: []string{"recovery", "prognosis", "expect", "improve", "heal"},

		Intents: []IntentCategory{
			{Name: "Seeking reassurance", Patterns: compileAll(
				`will (it|this|i) (get better|be okay|recover)`,
				`(worried|concern|anxious|nervous) about`,
				`should i (worry|be concerned)`,
				`is (it|this) (normal|serious)`,
				`will (it|this) affect me`,
				`do i need to worry`,
			)},
			{Name: "Reporting symptoms", Patterns: compileAll(
				`(i have|i feel|i'm experiencing|i get)`,
				`(pain|hurt|ache|discomfort|stiffness)`,
				`my (neck|back|head|spine) (hurts|aches)`,
				`trouble (sleeping|moving|walking)`,
				`it (hurts|aches) when`,
			)},
			{Name: "Expressing concern", Patterns: compileAll(
				`(worried|concerned|anxious|nervous|scared)`,
				`what if`,
				`i'm afraid`,
				`bothers me`,
				`makes me (worry|nervous)`,
			)},
			{Name: "Seeking advice", Patterns: compileAll(
				`what (should|can|could) i`,
				`how (do|can|should) i`,
				`is there anything i (can|should)`,
				`what do you (recommend|suggest|advise)`,
				`should i (take|do|avoid)`,
			)},
			{Name: "Expressing gratitude", Patterns: compileAll(
				`thank you`,
				`thanks`,
				`appreciate`,
				`grateful`,
				`helpful`,
			)},
			{Name: "Describing improvement", Patterns: compileAll(
				`(better|improving|getting better)`,
				`not as (bad|painful)`,
				`less (pain|discomfort)`,
				`starting to (feel better|improve)`,
			)},
			{Name: "Describing history", Patterns: compileAll(
				`(it was|it happened|i was)`,
				`(last|on) (week|month|year|september|january)`,
				`i went to`,
				`they (told|said|gave) me`,
			)},
		},

		AnxietyWords: []string{
			"worried", "concern", "concerned", "anxious", "nervous", "scared", "afraid",
		},
		ReassuranceWords: []string{
			"better", "good", "relief", "thank", "appreciate", "helpful",
			"manageable", "under control",
		},
		RecoveryPhrases: []string{
			"back to my usual routine",
			"back to my routine",
			"back to normal",
			"returned to normal",
			"hasn't really stopped me",
			"hasn't stopped me",
			"didn't really stop me",
			"didn't stop me",
			"no longer",
			"able to do everything",
			"doing everything as usual",
			"recovered",
			"improved",
			"improving",
			"getting better",
			"better now",
			"feels fine now",
			"okay now",
			"normal now",
			"back at work",
			"back to work",
		},
		NegationPatterns: compileAll(
			`not (worried|concerned|anxious|nervous|scared|afraid)`,
			`no longer (worried|concerned|anxious|nervous|scared|afraid)`,
			`hardly (worried|concerned|anxious|nervous|scared|afraid)`,
			`doesn't make me (worried|concerned|anxious|nervous|scared|afraid)`,
			`does not make me (worried|concerned|anxious|nervous|scared|afraid)`,
		),
	}
}
