package models

import "time"

// UserCreditLedger holds the three credit buckets for one user. The row is
// mutated only through the credit service, which drains buckets in fixed
// priority order: trial, then periodic, then purchased. TotalCredits always
// equals the sum of the three buckets.
type UserCreditLedger struct {
	ID     uint   `gorm:"primaryKey"`
	UserID string `gorm:"uniqueIndex;not null"`

	TrialCredits     int64 `gorm:"not null;default:0"`
	PeriodicCredits  int64 `gorm:"not null;default:0"`
	PurchasedCredits int64 `gorm:"not null;default:0"`
	TotalCredits     int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *UserCreditLedger) Balance() CreditBalance {
	return CreditBalance{
		Trial:     l.TrialCredits,
		Periodic:  l.PeriodicCredits,
		Purchased: l.PurchasedCredits,
	}
}

// CreditBalance is the normalized in-memory view of a user's buckets.
// Legacy single-number balances are folded into one bucket before they
// reach this type; nothing past the ingestion boundary sees the old shape.
type CreditBalance struct {
	Trial     int64 `json:"trial"`
	Periodic  int64 `json:"periodic"`
	Purchased int64 `json:"purchased"`
}

func (b CreditBalance) Total() int64 {
	return b.Trial + b.Periodic + b.Purchased
}

// DrainPlan describes how a deduction splits across buckets.
type DrainPlan struct {
	FromTrial     int64
	FromPeriodic  int64
	FromPurchased int64
}

func (p DrainPlan) Total() int64 {
	return p.FromTrial + p.FromPeriodic + p.FromPurchased
}

// PlanDrain computes the priority-ordered split of amount across the
// buckets of b. Returns false when the balance cannot cover the amount.
func PlanDrain(b CreditBalance, amount int64) (DrainPlan, bool) {
	if amount < 0 || b.Total() < amount {
		return DrainPlan{}, false
	}
	var p DrainPlan
	p.FromTrial = min64(b.Trial, amount)
	remaining := amount - p.FromTrial
	p.FromPeriodic = min64(b.Periodic, remaining)
	remaining -= p.FromPeriodic
	p.FromPurchased = remaining
	return p, true
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
