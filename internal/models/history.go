package models

import "time"

// UserAccessHistoryRecord is one append-only access event. Title, duration
// and thumbnail are copied at write time and may drift from the video
// record afterwards; that staleness is accepted. Repeat playback of the
// same record bumps AccessCount through its HistoryID, it never merges
// separate first-time accesses.
type UserAccessHistoryRecord struct {
	HistoryID string `gorm:"primaryKey;type:uuid" json:"history_id"`
	UserID    string `gorm:"index;not null" json:"user_id"`
	VideoID   string `gorm:"index;not null" json:"video_id"`
	Language  string `gorm:"size:16" json:"language"`
	Style     string `gorm:"size:32" json:"style"`

	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds"`
	ThumbnailURL    string `json:"thumbnail_url"`

	CreditsCharged int64 `json:"credits_charged"`
	WasFree        bool  `json:"was_free"`
	AccessCount    int64 `gorm:"not null;default:1" json:"access_count"`

	LastAccessedAt time.Time `json:"last_accessed_at"`
	CreatedAt      time.Time `json:"created_at"`
}
