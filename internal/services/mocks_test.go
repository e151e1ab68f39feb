package services_test

import (
	"context"

	"sublingo_go_backend/internal/captions"
	"sublingo_go_backend/internal/models"
	"sublingo_go_backend/internal/services"
	"sublingo_go_backend/internal/translate"

	"github.com/stretchr/testify/mock"
)

type mockCaptionSource struct {
	mock.Mock
}

func (m *mockCaptionSource) Probe(ctx context.Context, videoID string) (*captions.Metadata, error) {
	args := m.Called(ctx, videoID)
	if meta := args.Get(0); meta != nil {
		return meta.(*captions.Metadata), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCaptionSource) FetchTrack(ctx context.Context, meta *captions.Metadata) ([]models.Cue, error) {
	args := m.Called(ctx, meta)
	if cues := args.Get(0); cues != nil {
		return cues.([]models.Cue), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTranslator struct {
	mock.Mock
}

func (m *mockTranslator) Translate(ctx context.Context, cues []models.Cue, opts translate.Options) (*translate.Result, error) {
	args := m.Called(ctx, cues, opts)
	if result := args.Get(0); result != nil {
		return result.(*translate.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCreditLedger struct {
	mock.Mock
}

func (m *mockCreditLedger) Balance(ctx context.Context, userID string) (models.CreditBalance, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.CreditBalance), args.Error(1)
}

func (m *mockCreditLedger) Deduct(ctx context.Context, userID string, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

type mockTranslationCache struct {
	mock.Mock
}

func (m *mockTranslationCache) Lookup(ctx context.Context, videoID, language, style string) (*models.TranslationEntry, error) {
	args := m.Called(ctx, videoID, language, style)
	if entry := args.Get(0); entry != nil {
		return entry.(*models.TranslationEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTranslationCache) Store(ctx context.Context, record models.VideoTranslationRecord, entry *models.TranslationEntry, userID string) error {
	args := m.Called(ctx, record, entry, userID)
	return args.Error(0)
}

func (m *mockTranslationCache) RecordAccess(ctx context.Context, videoID, userID string) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *mockTranslationCache) GetVideo(ctx context.Context, videoID string) (*models.VideoTranslationRecord, error) {
	args := m.Called(ctx, videoID)
	if record := args.Get(0); record != nil {
		return record.(*models.VideoTranslationRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAccessRecorder struct {
	mock.Mock
}

func (m *mockAccessRecorder) Record(ctx context.Context, access services.AccessEvent) (string, error) {
	args := m.Called(ctx, access)
	return args.String(0), args.Error(1)
}
