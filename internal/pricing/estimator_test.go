package pricing_test

import (
	"testing"

	"sublingo_go_backend/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCreditsFromLineCount(t *testing.T) {
	cfg := pricing.Default()

	// 3 lines * 50 tokens = 150 tokens -> 1500 microdollars at $10/1M,
	// tripled by margin -> 4500 -> 5 credits at $0.001 per credit.
	credits := pricing.EstimateCredits(cfg, 3, 6, true)
	assert.Equal(t, int64(5), credits)
}

func TestEstimateCreditsFromDuration(t *testing.T) {
	cfg := pricing.Default()

	// No line count: 6 seconds at 3 seconds per line -> 2 lines.
	fromDuration := pricing.EstimateCredits(cfg, 0, 6, true)
	fromLines := pricing.EstimateCredits(cfg, 2, 6, true)
	assert.Equal(t, fromLines, fromDuration)
}

func TestEstimateCreditsIsDeterministic(t *testing.T) {
	cfg := pricing.Default()

	first := pricing.EstimateCredits(cfg, 250, 900, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, pricing.EstimateCredits(cfg, 250, 900, true))
	}
}

func TestEstimateCreditsRoundsUp(t *testing.T) {
	cfg := pricing.Config{
		TokensPerLine:                1,
		MicroDollarsPerMillionTokens: 1, // 1 token -> ceil(1/1M) = 1 microdollar
		MarginNumerator:              1,
		MarginDenominator:            1,
		MicroDollarsPerCredit:        1_000_000,
		SecondsPerLine:               3,
	}

	// Every stage rounds up, so even a negligible fraction of a credit
	// charges a whole credit.
	assert.Equal(t, int64(1), pricing.EstimateCredits(cfg, 1, 0, true))
}

func TestEstimateCreditsAddsTranscriptionTerm(t *testing.T) {
	cfg := pricing.Default()

	withTranscript := pricing.EstimateCredits(cfg, 100, 600, true)
	withoutTranscript := pricing.EstimateCredits(cfg, 100, 600, false)
	assert.Greater(t, withoutTranscript, withTranscript)

	// 10 minutes at $0.006/min = 60000 microdollars, tripled -> 180000
	// -> 180 extra credits.
	assert.Equal(t, withTranscript+180, withoutTranscript)
}

func TestEstimateCreditsMonotonicInVolume(t *testing.T) {
	cfg := pricing.Default()

	small := pricing.EstimateCredits(cfg, 10, 60, true)
	large := pricing.EstimateCredits(cfg, 1000, 60, true)
	assert.Greater(t, large, small)
}

func TestEstimateCreditsMinimumOneCredit(t *testing.T) {
	cfg := pricing.Default()
	assert.GreaterOrEqual(t, pricing.EstimateCredits(cfg, 0, 0, true), int64(1))
}
