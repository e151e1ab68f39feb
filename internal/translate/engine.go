package translate

import (
	"context"

	"sublingo_go_backend/internal/models"
)

// Options configure one whole-video translation.
type Options struct {
	SourceLang string
	TargetLang string
	Style      string
	Topic      string // optional freeform context hint
}

// Result carries the translated cues plus the token usage reported by the
// model for billing reconciliation.
type Result struct {
	Cues       []models.Cue
	TokensUsed int
	Model      string
}

// Engine is the common interface for translation backends. An engine
// translates the entire cue sequence in a single model invocation so
// terminology stays consistent across cues.
type Engine interface {
	Translate(ctx context.Context, cues []models.Cue, opts Options) (*Result, error)
	Name() string
}
