package config

import (
	"os"

	"sublingo_go_backend/internal/models"
	"sublingo_go_backend/internal/pricing"
	"sublingo_go_backend/internal/retry"
)

type Config struct {
	GeminiModel       string
	DefaultEngine     string
	Pricing           pricing.Config
	Retry             retry.Policy
	PeriodicAllotment map[string]int64
}

func NewConfig() *Config {
	cfg := &Config{
		GeminiModel:   "gemini-1.5-flash",
		DefaultEngine: "gemini",
		Pricing:       pricing.Default(),
		Retry:         retry.DefaultPolicy(),
		PeriodicAllotment: map[string]int64{
			models.TierFree:  100,
			models.TierPro:   2000,
			models.TierUltra: 10000,
		},
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}
	if engine := os.Getenv("TRANSLATION_ENGINE"); engine != "" {
		cfg.DefaultEngine = engine
	}

	return cfg
}
