package services

import (
	"context"

	"sublingo_go_backend/internal/captions"
	"sublingo_go_backend/internal/models"
	"sublingo_go_backend/internal/translate"
)

type CaptionSource interface {
	Probe(ctx context.Context, videoID string) (*captions.Metadata, error)
	FetchTrack(ctx context.Context, meta *captions.Metadata) ([]models.Cue, error)
}

type SubtitleTranslator interface {
	Translate(ctx context.Context, cues []models.Cue, opts translate.Options) (*translate.Result, error)
}

type CreditLedger interface {
	Balance(ctx context.Context, userID string) (models.CreditBalance, error)
	Deduct(ctx context.Context, userID string, amount int64) error
}

type TranslationCache interface {
	Lookup(ctx context.Context, videoID, language, style string) (*models.TranslationEntry, error)
	Store(ctx context.Context, record models.VideoTranslationRecord, entry *models.TranslationEntry, userID string) error
	RecordAccess(ctx context.Context, videoID, userID string) error
	GetVideo(ctx context.Context, videoID string) (*models.VideoTranslationRecord, error)
}

type AccessRecorder interface {
	Record(ctx context.Context, access AccessEvent) (string, error)
}
