package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Source kinds for a video record.
const (
	SourceYoutube  = "youtube"
	SourceUploaded = "uploaded"
)

// Cue is one timed caption line. Start and End are fixed-width
// "HH:MM:SS,mmm" timecodes; Index is 1-based and dense within a track.
type Cue struct {
	Index int    `json:"index"`
	Start string `json:"startTime"`
	End   string `json:"endTime"`
	Text  string `json:"text"`
}

// CueList stores an ordered cue sequence as a jsonb column.
type CueList []Cue

func (c CueList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *CueList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported cue list column type %T", value)
	}
}

// TranslationKey builds the composite cache key for a translation variant.
// The same language under two styles is intentionally two distinct keys.
func TranslationKey(language, style string) string {
	return fmt.Sprintf("%s_%s", language, style)
}

// VideoTranslationRecord is the per-video cache document. Created on the
// first translation of a video, never deleted by the pipeline. Original
// cues are set once and never mutated.
type VideoTranslationRecord struct {
	VideoID          string  `gorm:"primaryKey;size:64" json:"video_id"`
	SourceKind       string  `gorm:"not null;default:'youtube'" json:"source_kind"`
	Title            string  `json:"title"`
	DurationSeconds  int     `json:"duration_seconds"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	OriginalLanguage string  `json:"original_language"` // may be "auto"
	OriginalCues     CueList `gorm:"type:jsonb" json:"original_cues"`

	TotalAccesses    int64 `gorm:"not null;default:0" json:"total_accesses"`
	TotalCostCredits int64 `gorm:"not null;default:0" json:"total_cost_credits"`

	Translations []TranslationEntry `gorm:"foreignKey:VideoID;references:VideoID" json:"translations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TranslationEntry is one cached translation variant of a video, immutable
// once written. The (video_id, cache_key) pair is unique so concurrent
// writers for different languages never disturb each other's rows.
type TranslationEntry struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	VideoID  string `gorm:"size:64;uniqueIndex:idx_video_translation_key;not null" json:"video_id"`
	CacheKey string `gorm:"size:128;uniqueIndex:idx_video_translation_key;not null" json:"cache_key"`

	Language string  `gorm:"size:16;not null" json:"language"`
	Style    string  `gorm:"size:32;not null" json:"style"`
	Topic    string  `json:"topic,omitempty"`
	Cues     CueList `gorm:"type:jsonb" json:"cues"`

	TranslatedBy   string    `json:"translated_by"` // user id that paid for this entry
	Model          string    `json:"model"`
	TokensUsed     int       `json:"tokens_used"`
	CreditsCharged int64     `json:"credits_charged"`
	CreatedAt      time.Time `json:"created_at"`
}

// VideoAccessor records that a user has accessed a video at least once.
// Analytics only, not authorization.
type VideoAccessor struct {
	VideoID   string `gorm:"primaryKey;size:64"`
	UserID    string `gorm:"primaryKey"`
	CreatedAt time.Time
}
