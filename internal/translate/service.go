package translate

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"

	"sublingo_go_backend/internal/models"
	"sublingo_go_backend/internal/retry"
)

// A translation keeping less than this share of the input cues is treated
// as a failed upstream response rather than persisted as a partial track.
const minCoveragePercent = 80

// Service owns the registered translation engines and applies the retry
// policy around the upstream call. All retrying in the pipeline is
// confined to this component.
type Service struct {
	engines       map[string]Engine
	defaultEngine string
	policy        retry.Policy
}

func NewService(geminiClient *genai.Client, geminiModel, openAIKey, defaultEngine string, policy retry.Policy) *Service {
	s := &Service{
		engines:       make(map[string]Engine),
		defaultEngine: defaultEngine,
		policy:        policy,
	}

	if geminiClient != nil {
		s.engines["gemini"] = NewGeminiEngine(geminiClient, geminiModel)
		log.Printf("[translate] registered gemini engine (model=%s)", geminiModel)
	}

	if openAIKey != "" {
		s.engines["openai"] = NewOpenAIEngine(openAIKey, "")
		log.Printf("[translate] registered openai engine")
	}

	if s.defaultEngine == "" {
		s.defaultEngine = "gemini"
	}

	return s
}

// RegisterEngine adds or replaces a translation engine.
func (s *Service) RegisterEngine(e Engine) {
	s.engines[e.Name()] = e
}

// Translate runs the default engine over the whole cue sequence, retrying
// transient upstream failures, and maps the reply back onto the original
// cues so indices and timecodes are preserved verbatim.
func (s *Service) Translate(ctx context.Context, cues []models.Cue, opts Options) (*Result, error) {
	engine, ok := s.engines[s.defaultEngine]
	if !ok {
		return nil, fmt.Errorf("translation engine %q is not configured", s.defaultEngine)
	}

	var raw *Result
	err := retry.Do(ctx, s.policy, ClassifyUpstream, func(ctx context.Context) error {
		var callErr error
		raw, callErr = engine.Translate(ctx, cues, opts)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	translated := remap(cues, raw.Cues)
	if len(translated)*100 < len(cues)*minCoveragePercent {
		return nil, fmt.Errorf("translation kept %d of %d cues, below the acceptable threshold",
			len(translated), len(cues))
	}
	if dropped := len(cues) - len(translated); dropped > 0 {
		log.Printf("[translate] %d/%d cues missing from model reply, persisting partial track",
			dropped, len(cues))
	}

	return &Result{
		Cues:       translated,
		TokensUsed: raw.TokensUsed,
		Model:      raw.Model,
	}, nil
}

// remap rebuilds the translated track from the originals: text comes from
// the reply matched by index, everything else from the source cue. A reply
// line whose index matches no original is discarded.
func remap(originals, reply []models.Cue) []models.Cue {
	texts := make(map[int]string, len(reply))
	for _, cue := range reply {
		if _, exists := texts[cue.Index]; !exists {
			texts[cue.Index] = cue.Text
		}
	}

	var out []models.Cue
	for _, cue := range originals {
		text, ok := texts[cue.Index]
		if !ok {
			continue
		}
		out = append(out, models.Cue{
			Index: cue.Index,
			Start: cue.Start,
			End:   cue.End,
			Text:  text,
		})
	}
	return out
}
