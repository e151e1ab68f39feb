package services

import (
	"context"
	"errors"
	"log"

	"sublingo_go_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TranslationCacheService persists one record per distinct source video
// plus one row per cached (language, style) translation variant. Writes
// are partial by construction: inserting a new variant row never disturbs
// existing variants, so concurrent translations of the same video into
// different languages cannot clobber each other.
type TranslationCacheService struct {
	db *gorm.DB
}

func NewTranslationCacheService(db *gorm.DB) *TranslationCacheService {
	return &TranslationCacheService{db: db}
}

// Lookup returns the cached translation variant, or nil when absent.
// Read-only.
func (s *TranslationCacheService) Lookup(ctx context.Context, videoID, language, style string) (*models.TranslationEntry, error) {
	var entry models.TranslationEntry
	err := s.db.WithContext(ctx).
		Where("video_id = ? AND cache_key = ?", videoID, models.TranslationKey(language, style)).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Store writes a translation variant. The video record is created on
// first write with its metadata and original cues; later writes leave the
// existing record's descriptive fields untouched and only merge in the new
// variant plus counter increments. Two concurrent writers of the same
// variant resolve by overwrite with equivalent content.
func (s *TranslationCacheService) Store(ctx context.Context, record models.VideoTranslationRecord, entry *models.TranslationEntry, userID string) error {
	entry.VideoID = record.VideoID
	entry.CacheKey = models.TranslationKey(entry.Language, entry.Style)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "video_id"}},
			DoNothing: true,
		}).Create(&record).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "video_id"}, {Name: "cache_key"}},
			UpdateAll: true,
		}).Create(entry).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.VideoTranslationRecord{}).
			Where("video_id = ?", record.VideoID).
			Updates(map[string]interface{}{
				"total_accesses":     gorm.Expr("total_accesses + 1"),
				"total_cost_credits": gorm.Expr("total_cost_credits + ?", entry.CreditsCharged),
			}).Error; err != nil {
			return err
		}

		return addAccessor(tx, record.VideoID, userID)
	})
}

// RecordAccess bumps the access counter and accessor set for a cache hit.
func (s *TranslationCacheService) RecordAccess(ctx context.Context, videoID, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VideoTranslationRecord{}).
			Where("video_id = ?", videoID).
			Update("total_accesses", gorm.Expr("total_accesses + 1")).Error; err != nil {
			return err
		}
		return addAccessor(tx, videoID, userID)
	})
}

// GetVideo loads a video record with its cached translation variants.
func (s *TranslationCacheService) GetVideo(ctx context.Context, videoID string) (*models.VideoTranslationRecord, error) {
	var record models.VideoTranslationRecord
	err := s.db.WithContext(ctx).
		Preload("Translations").
		Where("video_id = ?", videoID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// addAccessor unions the user into the video's accessor set.
func addAccessor(tx *gorm.DB, videoID, userID string) error {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.VideoAccessor{VideoID: videoID, UserID: userID}).Error
	if err != nil {
		log.Printf("[cache] failed to record accessor %s for video %s: %v", userID, videoID, err)
	}
	return err
}
