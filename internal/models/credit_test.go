package models_test

import (
	"testing"

	"sublingo_go_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDrainPriorityOrder(t *testing.T) {
	balance := models.CreditBalance{Trial: 10, Periodic: 20, Purchased: 30}

	plan, ok := models.PlanDrain(balance, 5)
	require.True(t, ok)
	assert.Equal(t, models.DrainPlan{FromTrial: 5}, plan)

	plan, ok = models.PlanDrain(balance, 10)
	require.True(t, ok)
	assert.Equal(t, models.DrainPlan{FromTrial: 10}, plan)

	plan, ok = models.PlanDrain(balance, 15)
	require.True(t, ok)
	assert.Equal(t, models.DrainPlan{FromTrial: 10, FromPeriodic: 5}, plan)

	plan, ok = models.PlanDrain(balance, 45)
	require.True(t, ok)
	assert.Equal(t, models.DrainPlan{FromTrial: 10, FromPeriodic: 20, FromPurchased: 15}, plan)
}

func TestPlanDrainConservesAmount(t *testing.T) {
	balance := models.CreditBalance{Trial: 3, Periodic: 7, Purchased: 11}
	for amount := int64(0); amount <= balance.Total(); amount++ {
		plan, ok := models.PlanDrain(balance, amount)
		require.True(t, ok, "amount %d", amount)
		assert.Equal(t, amount, plan.Total())
		assert.LessOrEqual(t, plan.FromTrial, balance.Trial)
		assert.LessOrEqual(t, plan.FromPeriodic, balance.Periodic)
		assert.LessOrEqual(t, plan.FromPurchased, balance.Purchased)
	}
}

func TestPlanDrainInsufficientBalance(t *testing.T) {
	balance := models.CreditBalance{Trial: 1, Periodic: 1}

	_, ok := models.PlanDrain(balance, 3)
	assert.False(t, ok)

	_, ok = models.PlanDrain(models.CreditBalance{}, 1)
	assert.False(t, ok)
}

func TestPlanDrainRejectsNegativeAmount(t *testing.T) {
	_, ok := models.PlanDrain(models.CreditBalance{Trial: 100}, -1)
	assert.False(t, ok)
}

func TestPlanDrainSkipsEmptyBuckets(t *testing.T) {
	plan, ok := models.PlanDrain(models.CreditBalance{Purchased: 50}, 20)
	require.True(t, ok)
	assert.Equal(t, models.DrainPlan{FromPurchased: 20}, plan)
}

func TestLedgerBalance(t *testing.T) {
	ledger := models.UserCreditLedger{
		TrialCredits:     5,
		PeriodicCredits:  100,
		PurchasedCredits: 1000,
		TotalCredits:     1105,
	}

	balance := ledger.Balance()
	assert.Equal(t, models.CreditBalance{Trial: 5, Periodic: 100, Purchased: 1000}, balance)
	assert.Equal(t, ledger.TotalCredits, balance.Total())
}
