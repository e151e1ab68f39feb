package translate

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"

	"sublingo_go_backend/internal/models"
)

// GeminiEngine translates subtitles with the Gemini API.
type GeminiEngine struct {
	client *genai.Client
	model  string
}

func NewGeminiEngine(client *genai.Client, model string) *GeminiEngine {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiEngine{client: client, model: model}
}

func (g *GeminiEngine) Name() string {
	return "gemini"
}

func (g *GeminiEngine) Translate(ctx context.Context, cues []models.Cue, opts Options) (*Result, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemPrompt(opts.Style, opts.SourceLang, opts.TargetLang))},
	}
	model.SetTemperature(0.3)

	log.Printf("[gemini] translating %d cues: model=%s target=%s style=%s",
		len(cues), g.model, opts.TargetLang, opts.Style)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildUserPrompt(cues, opts)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty gemini response")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected gemini response part type %T", resp.Candidates[0].Content.Parts[0])
	}

	tokens := 0
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &Result{
		Cues:       DecodeReply(string(text)),
		TokensUsed: tokens,
		Model:      g.model,
	}, nil
}
