// Package pricing converts subtitle volume into an integer credit amount.
// Estimation is deterministic and side-effect-free; it never touches the
// ledger or the cache, and every division rounds up so rounding can only
// favor the platform.
package pricing

// Config holds the pricing constants. Monetary values are in microdollars
// (1e-6 USD) to keep the arithmetic integral and deterministic.
type Config struct {
	// TokensPerLine is the estimated model token volume per subtitle line
	// (prompt plus completion).
	TokensPerLine int64
	// MicroDollarsPerMillionTokens is the model's published per-token rate.
	MicroDollarsPerMillionTokens int64
	// TranscriptionMicroDollarsPerMinute prices audio transcription for
	// sources without an existing transcript.
	TranscriptionMicroDollarsPerMinute int64
	// Margin is applied as MarginNumerator/MarginDenominator.
	MarginNumerator   int64
	MarginDenominator int64
	// MicroDollarsPerCredit converts dollars to credits (1 credit = a fixed
	// fractional-dollar unit).
	MicroDollarsPerCredit int64
	// SecondsPerLine approximates line count from duration when captions
	// have not been fetched yet.
	SecondsPerLine int64
}

func Default() Config {
	return Config{
		TokensPerLine:                      50,
		MicroDollarsPerMillionTokens:       10_000_000, // $10 per 1M tokens
		TranscriptionMicroDollarsPerMinute: 6_000,      // $0.006 per minute
		MarginNumerator:                    3,
		MarginDenominator:                  1,
		MicroDollarsPerCredit:              1_000, // 1 credit = $0.001
		SecondsPerLine:                     3,
	}
}

// EstimateCredits computes the credit cost of translating a video. When
// lineCount is zero the line volume is derived from the duration, which
// lets the orchestrator check credit before downloading the transcript.
// hasTranscript=false adds the duration-proportional transcription term.
func EstimateCredits(cfg Config, lineCount int, durationSeconds int, hasTranscript bool) int64 {
	lines := int64(lineCount)
	if lines <= 0 {
		lines = ceilDiv(int64(durationSeconds), cfg.SecondsPerLine)
	}
	if lines <= 0 {
		lines = 1
	}

	tokens := lines * cfg.TokensPerLine
	microDollars := ceilDiv(tokens*cfg.MicroDollarsPerMillionTokens, 1_000_000)

	if !hasTranscript {
		minutes := ceilDiv(int64(durationSeconds), 60)
		if minutes <= 0 {
			minutes = 1
		}
		microDollars += minutes * cfg.TranscriptionMicroDollarsPerMinute
	}

	microDollars = ceilDiv(microDollars*cfg.MarginNumerator, cfg.MarginDenominator)

	credits := ceilDiv(microDollars, cfg.MicroDollarsPerCredit)
	if credits < 1 {
		credits = 1
	}
	return credits
}

func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
