package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/medassist/scribe/internal/config"
	"github.com/medassist/scribe/internal/core"
	"github.com/medassist/scribe/internal/core/soap"
	"github.com/medassist/scribe/internal/nlp"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	textFlag string
	fileFlag string
)

// Demo inputs used when neither --text nor --file is given.
const demoTranscript = `Physician: Good morning, Ms. Jones. How have you been since the accident?
Patient: Good morning. I'm Janet Jones. It happened on September 1st around 12:30 pm. I was rear-ended in traffic.
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

const demoStatement = "I'm a bit worried about my back pain, but I hope it gets better soon."

func main() {
	rootCmd := &cobra.Command{
		Use:   "scribe",
		Short: "Clinical dialogue summarizer",
		Long: `Scribe turns doctor-patient dialogue transcripts into structured
clinical artifacts:

  - Entity and keyword summaries
  - Per-statement sentiment and intent labels
  - SOAP (Subjective/Objective/Assessment/Plan) notes`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&textFlag, "text", "", "input text to analyze")
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "", "path to a file containing the input")

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(sentimentCmd())
	rootCmd.AddCommand(soapCmd())
	rootCmd.AddCommand(dialogueCmd())
	rootCmd.AddCommand(keywordsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveInput applies the priority --text > --file > demo.
func resolveInput(demo string) (string, error) {
	if textFlag != "" {
		return textFlag, nil
	}
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), nil
	}
	return demo, nil
}

func newEngine(ctx context.Context) (*core.Engine, error) {
	providers := config.Default().Classifier.Providers
	if provider := os.Getenv("CLASSIFIER_PROVIDER"); provider != "" {
		override := config.ProviderConfig{
			Provider: provider,
			Model:    os.Getenv("CLASSIFIER_MODEL"),
			APIKey:   os.Getenv("CLASSIFIER_API_KEY"),
			BaseURL:  os.Getenv("CLASSIFIER_BASE_URL"),
		}
		providers = append([]config.ProviderConfig{override}, providers...)
	}

	classifier, err := nlp.NewClassifierChain(ctx, providers)
	if err != nil {
		return nil, err
	}
	return core.NewEngine(nlp.NewRuleSegmenter(), classifier, nil), nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal output: %v", err)
	}
	fmt.Println(string(data))
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Generate a structured summary from a transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(demoTranscript)
			if err != nil {
				return err
			}
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			result, err := engine.ProcessSummary(cmd.Context(), input)
			if err != nil {
				return err
			}
			printJSON(result)
			return nil
		},
	}
}

func sentimentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment",
		Short: "Label a patient statement with sentiment and intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(demoStatement)
			if err != nil {
				return err
			}
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			result, err := engine.ProcessSentimentIntent(cmd.Context(), input)
			if err != nil {
				return err
			}
			printJSON(result)
			return nil
		},
	}
}

func soapCmd() *cobra.Command {
	var asText bool
	cmd := &cobra.Command{
		Use:   "soap",
		Short: "Generate a SOAP note from a transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(demoTranscript)
			if err != nil {
				return err
			}
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			note, err := engine.ProcessSOAPNote(cmd.Context(), input)
			if err != nil {
				return err
			}
			if asText {
				fmt.Println(soap.FormatText(note))
				return nil
			}
			printJSON(note)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asText, "plain", false, "print the note as formatted text instead of JSON")
	return cmd
}

func dialogueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialogue",
		Short: "Analyze every patient statement in a transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(demoTranscript)
			if err != nil {
				return err
			}
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			statements, err := engine.AnalyzeDialogue(cmd.Context(), input)
			if err != nil {
				return err
			}
			overall, err := engine.OverallSentiment(cmd.Context(), input)
			if err != nil {
				return err
			}
			printJSON(map[string]interface{}{
				"statements": statements,
				"overall":    overall,
			})
			return nil
		},
	}
}

func keywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "Extract important medical phrases from a transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(demoTranscript)
			if err != nil {
				return err
			}
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			keywords, err := engine.Keywords(cmd.Context(), input)
			if err != nil {
				return err
			}
			printJSON(map[string]interface{}{"keywords": keywords})
			return nil
		},
	}
}
