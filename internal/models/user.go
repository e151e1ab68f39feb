package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tier values accepted in translation requests.
const (
	TierFree  = "FREE"
	TierPro   = "PRO"
	TierUltra = "ULTRA"
)

func ValidTier(tier string) bool {
	switch tier {
	case TierFree, TierPro, TierUltra:
		return true
	}
	return false
}

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ExternalID string    `gorm:"unique;not null"` // stable id from the identity provider
	Email      string    `gorm:"unique"`
	Name       string
	Tier       string `gorm:"default:'FREE'"`

	// LegacyCredits holds the old single-number balance for accounts created
	// before the bucketed ledger existed. It is drained into the ledger on
	// first access and nilled out.
	LegacyCredits *int64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
