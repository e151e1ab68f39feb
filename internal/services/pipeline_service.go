package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sublingo_go_backend/internal/captions"
	"sublingo_go_backend/internal/models"
	"sublingo_go_backend/internal/pricing"
	"sublingo_go_backend/internal/translate"
)

// TranslationRequest is the validated inbound contract of the pipeline.
type TranslationRequest struct {
	UserID         string
	UserTier       string
	VideoSource    string
	YoutubeURL     string
	VideoID        string
	TargetLanguage string
	Style          string
	Topic          string
}

// TranslationResponse reports the outcome of one pipeline run.
type TranslationResponse struct {
	VideoID        string       `json:"videoHashId"`
	CreditsCharged int64        `json:"creditsCharged"`
	HistoryID      string       `json:"historyId"`
	WasFree        bool         `json:"wasFree"`
	Cues           []models.Cue `json:"cues"`
	Message        string       `json:"message"`
}

// PipelineService sequences one subtitle translation end to end: cache
// lookup, caption probe, cost estimate, credit check, translation, credit
// deduction, cache store and history record. Each invocation is a single
// synchronous request; concurrency safety lives in the ledger's
// conditional deduction and the cache's partial writes.
type PipelineService struct {
	captionSource CaptionSource
	translator    SubtitleTranslator
	credits       CreditLedger
	cache         TranslationCache
	history       AccessRecorder
	pricing       pricing.Config
}

func NewPipelineService(
	captionSource CaptionSource,
	translator SubtitleTranslator,
	credits CreditLedger,
	cache TranslationCache,
	history AccessRecorder,
	pricingCfg pricing.Config,
) *PipelineService {
	return &PipelineService{
		captionSource: captionSource,
		translator:    translator,
		credits:       credits,
		cache:         cache,
		history:       history,
		pricing:       pricingCfg,
	}
}

func (s *PipelineService) Translate(ctx context.Context, req TranslationRequest) (*TranslationResponse, error) {
	videoID, err := s.validate(&req)
	if err != nil {
		return nil, err
	}

	// Cache hit: serve at zero cost, never invoke the translator.
	cached, err := s.cache.Lookup(ctx, videoID, req.TargetLanguage, req.Style)
	if err != nil {
		return nil, fmt.Errorf("cache lookup: %w", err)
	}
	if cached != nil {
		return s.serveCached(ctx, req, videoID, cached)
	}

	// Probe resolves metadata and the caption track without downloading
	// the transcript, so credit can be checked before anything expensive.
	meta, err := s.captionSource.Probe(ctx, videoID)
	if err != nil {
		return nil, err
	}

	required := pricing.EstimateCredits(s.pricing, 0, meta.DurationSeconds, true)

	balance, err := s.credits.Balance(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if balance.Total() < required {
		return nil, &InsufficientCreditsError{Required: required, Available: balance.Total()}
	}

	cues, err := s.captionSource.FetchTrack(ctx, meta)
	if err != nil {
		return nil, err
	}

	// The translator is the only retrying component; any failure here
	// happens before deduction, so a failed translation never costs the
	// user credits.
	result, err := s.translator.Translate(ctx, cues, translate.Options{
		SourceLang: meta.Language,
		TargetLang: req.TargetLanguage,
		Style:      req.Style,
		Topic:      req.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	if err := s.credits.Deduct(ctx, req.UserID, required); err != nil {
		// A concurrent request may have drained the balance between the
		// sufficiency check and here; the conditional update catches it.
		if errors.Is(err, ErrInsufficientCredits) {
			return nil, &InsufficientCreditsError{Required: required, Available: balance.Total()}
		}
		return nil, err
	}

	// Deduction is the commit point. The tail writes below are expected
	// to succeed; if one fails the charge stands and we log loudly rather
	// than fail a translation the user already paid for.
	record := models.VideoTranslationRecord{
		VideoID:          videoID,
		SourceKind:       models.SourceYoutube,
		Title:            meta.Title,
		DurationSeconds:  meta.DurationSeconds,
		ThumbnailURL:     meta.ThumbnailURL,
		OriginalLanguage: meta.Language,
		OriginalCues:     cues,
	}
	entry := models.TranslationEntry{
		Language:       req.TargetLanguage,
		Style:          req.Style,
		Topic:          req.Topic,
		Cues:           result.Cues,
		TranslatedBy:   req.UserID,
		Model:          result.Model,
		TokensUsed:     result.TokensUsed,
		CreditsCharged: required,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.cache.Store(ctx, record, &entry, req.UserID); err != nil {
		log.Printf("[pipeline] cache store failed after deduction for video %s user %s: %v",
			videoID, req.UserID, err)
	}

	historyID, err := s.history.Record(ctx, AccessEvent{
		UserID:          req.UserID,
		VideoID:         videoID,
		Language:        req.TargetLanguage,
		Style:           req.Style,
		Title:           meta.Title,
		DurationSeconds: meta.DurationSeconds,
		ThumbnailURL:    meta.ThumbnailURL,
		CreditsCharged:  required,
		WasFree:         false,
	})
	if err != nil {
		log.Printf("[pipeline] history record failed after deduction for video %s user %s: %v",
			videoID, req.UserID, err)
	}

	log.Printf("[pipeline] translated video %s to %s/%s for user %s: %d cues, %d credits",
		videoID, req.TargetLanguage, req.Style, req.UserID, len(result.Cues), required)

	return &TranslationResponse{
		VideoID:        videoID,
		CreditsCharged: required,
		HistoryID:      historyID,
		WasFree:        false,
		Cues:           result.Cues,
		Message:        "translation complete",
	}, nil
}

func (s *PipelineService) validate(req *TranslationRequest) (string, error) {
	if req.UserID == "" {
		return "", fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if !models.ValidTier(req.UserTier) {
		return "", fmt.Errorf("%w: userTier must be one of FREE, PRO, ULTRA", ErrValidation)
	}
	if req.TargetLanguage == "" {
		return "", fmt.Errorf("%w: targetLanguage is required", ErrValidation)
	}
	if req.VideoSource != models.SourceYoutube {
		return "", ErrUnsupportedSource
	}

	if req.Style == "" {
		req.Style = translate.StyleStandard
	}
	if !translate.ValidStyle(req.Style) {
		return "", fmt.Errorf("%w: unknown translation style %q", ErrValidation, req.Style)
	}

	raw := req.VideoID
	if raw == "" {
		raw = req.YoutubeURL
	}
	if raw == "" {
		return "", fmt.Errorf("%w: one of videoId or youtubeUrl is required", ErrValidation)
	}
	videoID, err := captions.ExtractVideoID(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return videoID, nil
}

func (s *PipelineService) serveCached(ctx context.Context, req TranslationRequest, videoID string, entry *models.TranslationEntry) (*TranslationResponse, error) {
	if err := s.cache.RecordAccess(ctx, videoID, req.UserID); err != nil {
		log.Printf("[pipeline] failed to record cache-hit access for video %s: %v", videoID, err)
	}

	var title, thumbnail string
	var duration int
	if record, err := s.cache.GetVideo(ctx, videoID); err == nil && record != nil {
		title = record.Title
		duration = record.DurationSeconds
		thumbnail = record.ThumbnailURL
	}

	historyID, err := s.history.Record(ctx, AccessEvent{
		UserID:          req.UserID,
		VideoID:         videoID,
		Language:        req.TargetLanguage,
		Style:           req.Style,
		Title:           title,
		DurationSeconds: duration,
		ThumbnailURL:    thumbnail,
		CreditsCharged:  0,
		WasFree:         true,
	})
	if err != nil {
		log.Printf("[pipeline] history record failed for cache hit on video %s: %v", videoID, err)
	}

	log.Printf("[pipeline] cache hit for video %s key %s, served free to user %s",
		videoID, entry.CacheKey, req.UserID)

	return &TranslationResponse{
		VideoID:        videoID,
		CreditsCharged: 0,
		HistoryID:      historyID,
		WasFree:        true,
		Cues:           entry.Cues,
		Message:        "served from cache",
	}, nil
}
