package translate

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"sublingo_go_backend/internal/models"
)

// OpenAIEngine translates subtitles with the OpenAI chat completion API.
type OpenAIEngine struct {
	client *openai.Client
	model  string
}

func NewOpenAIEngine(apiKey, model string) *OpenAIEngine {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIEngine{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIEngine) Name() string {
	return "openai"
}

func (o *OpenAIEngine) Translate(ctx context.Context, cues []models.Cue, opts Options) (*Result, error) {
	log.Printf("[openai] translating %d cues: model=%s target=%s style=%s",
		len(cues), o.model, opts.TargetLang, opts.Style)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPrompt(opts.Style, opts.SourceLang, opts.TargetLang),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildUserPrompt(cues, opts),
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return &Result{
		Cues:       DecodeReply(resp.Choices[0].Message.Content),
		TokensUsed: resp.Usage.TotalTokens,
		Model:      o.model,
	}, nil
}
