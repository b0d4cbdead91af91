package nlp

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

// ClaudeClassifier runs the polarity prompt through the Anthropic API.
type ClaudeClassifier struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClassifier(apiKey, model, baseURL string) *ClaudeClassifier {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &ClaudeClassifier{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (c *ClaudeClassifier) Classify(ctx context.Context, text string) (Verdict, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(fmt.Sprintf(classifyPrompt, text)),
				},
			},
		},
		MaxTokens: 200,
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("claude classify: %w", err)
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == nil {
		return Verdict{}, fmt.Errorf("claude classify: no response content")
	}
	return parseVerdict(*resp.Content[0].Text)
}
