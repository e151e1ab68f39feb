package services

import (
	"context"
	"errors"
	"time"

	"sublingo_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessEvent is one video access to append to a user's history.
type AccessEvent struct {
	UserID          string
	VideoID         string
	Language        string
	Style           string
	Title           string
	DurationSeconds int
	ThumbnailURL    string
	CreditsCharged  int64
	WasFree         bool
}

// HistoryService appends denormalized per-user access records. Every
// pipeline invocation creates a new record; repeat playback of an
// existing record goes through Touch with the record's own id.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record appends a new history record and returns its id.
func (s *HistoryService) Record(ctx context.Context, access AccessEvent) (string, error) {
	record := models.UserAccessHistoryRecord{
		HistoryID:       uuid.New().String(),
		UserID:          access.UserID,
		VideoID:         access.VideoID,
		Language:        access.Language,
		Style:           access.Style,
		Title:           access.Title,
		DurationSeconds: access.DurationSeconds,
		ThumbnailURL:    access.ThumbnailURL,
		CreditsCharged:  access.CreditsCharged,
		WasFree:         access.WasFree,
		AccessCount:     1,
		LastAccessedAt:  time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", err
	}
	return record.HistoryID, nil
}

// Touch increments the access count of an existing record on repeat
// playback. The record must belong to the calling user.
func (s *HistoryService) Touch(ctx context.Context, userID, historyID string) error {
	res := s.db.WithContext(ctx).Model(&models.UserAccessHistoryRecord{}).
		Where("history_id = ? AND user_id = ?", historyID, userID).
		Updates(map[string]interface{}{
			"access_count":     gorm.Expr("access_count + 1"),
			"last_accessed_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("history record not found")
	}
	return nil
}

// ListByUser returns a user's access history, most recent first.
func (s *HistoryService) ListByUser(ctx context.Context, userID string, limit int) ([]models.UserAccessHistoryRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var records []models.UserAccessHistoryRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_accessed_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
