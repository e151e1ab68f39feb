package services

import (
	"context"
	"errors"
	"log"

	"sublingo_go_backend/internal/models"

	"gorm.io/gorm"
)

// CreditService is the only writer of user credit ledgers. Deductions are
// single conditional updates against the live balance, never a
// read-then-write from request-time state.
type CreditService struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *CreditService {
	return &CreditService{db: db}
}

// ensureLedger loads a user's ledger row, creating it on first access.
// Accounts that still carry the legacy single-number balance have it
// folded into the purchased bucket here; the legacy shape never leaks
// past this boundary.
func (s *CreditService) ensureLedger(ctx context.Context, userID string) (*models.UserCreditLedger, error) {
	var ledger models.UserCreditLedger

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("external_id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		res := tx.Where(models.UserCreditLedger{UserID: userID}).FirstOrCreate(&ledger)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 && user.LegacyCredits != nil {
			legacy := *user.LegacyCredits
			if legacy < 0 {
				legacy = 0
			}
			ledger.PurchasedCredits = legacy
			ledger.TotalCredits = ledger.TrialCredits + ledger.PeriodicCredits + legacy
			if err := tx.Save(&ledger).Error; err != nil {
				return err
			}
			if err := tx.Model(&user).Update("legacy_credits", nil).Error; err != nil {
				return err
			}
			log.Printf("[credit] migrated legacy balance of %d for user %s", legacy, userID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

// Balance returns the user's normalized bucket view. Never mutates
// anything except the one-time legacy migration.
func (s *CreditService) Balance(ctx context.Context, userID string) (models.CreditBalance, error) {
	ledger, err := s.ensureLedger(ctx, userID)
	if err != nil {
		return models.CreditBalance{}, err
	}
	return ledger.Balance(), nil
}

// Deduct drains amount from the user's buckets in trial, periodic,
// purchased order. The whole drain is one conditional UPDATE guarded by
// the live sum, so two concurrent requests cannot both pass a sufficiency
// check that only one balance can satisfy.
func (s *CreditService) Deduct(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if _, err := s.ensureLedger(ctx, userID); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Exec(`
		UPDATE user_credit_ledgers SET
			trial_credits     = trial_credits - LEAST(trial_credits, ?),
			periodic_credits  = periodic_credits - LEAST(periodic_credits, GREATEST(? - trial_credits, 0)),
			purchased_credits = purchased_credits - GREATEST(? - trial_credits - periodic_credits, 0),
			total_credits     = total_credits - ?,
			updated_at        = NOW()
		WHERE user_id = ?
		  AND trial_credits + periodic_credits + purchased_credits >= ?`,
		amount, amount, amount, amount, userID, amount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientCredits
	}

	log.Printf("[credit] deducted %d credits from user %s", amount, userID)
	return nil
}

// AddPurchased credits the never-expiring purchased bucket, used by the
// checkout webhook.
func (s *CreditService) AddPurchased(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if _, err := s.ensureLedger(ctx, userID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&models.UserCreditLedger{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"purchased_credits": gorm.Expr("purchased_credits + ?", amount),
			"total_credits":     gorm.Expr("total_credits + ?", amount),
		}).Error
}

// ResetAllPeriodic reapplies each tier's periodic allotment across every
// ledger, one statement per tier. Invoked by the scheduled reset endpoint.
func (s *CreditService) ResetAllPeriodic(ctx context.Context, allotments map[string]int64) error {
	for tier, allotment := range allotments {
		if allotment < 0 {
			allotment = 0
		}
		res := s.db.WithContext(ctx).Exec(`
			UPDATE user_credit_ledgers SET
				periodic_credits = ?,
				total_credits    = trial_credits + purchased_credits + ?,
				updated_at       = NOW()
			WHERE user_id IN (
				SELECT external_id FROM users WHERE tier = ? AND deleted_at IS NULL
			)`,
			allotment, allotment, tier)
		if res.Error != nil {
			return res.Error
		}
		log.Printf("[credit] reset periodic credits to %d for %d %s users", allotment, res.RowsAffected, tier)
	}
	return nil
}

// ResetPeriodic replaces the periodic allotment, e.g. on a daily reset,
// keeping the derived total consistent in the same statement.
func (s *CreditService) ResetPeriodic(ctx context.Context, userID string, allotment int64) error {
	if allotment < 0 {
		allotment = 0
	}
	if _, err := s.ensureLedger(ctx, userID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&models.UserCreditLedger{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"periodic_credits": allotment,
			"total_credits":    gorm.Expr("trial_credits + purchased_credits + ?", allotment),
		}).Error
}
