package models

// Default nisab reference values (SGD), as published on DefaultNisabUpdatedDate.
const (
	DefaultNisabMonetary    = 17230.10
	DefaultNisabGoldWeight  = 86.0
	DefaultNisabGoldPrice   = 200.35
	DefaultNisabUpdatedDate = "2026-02-08"
	DefaultCurrency         = "SGD"
)

// NisabReference holds the thresholds every calculator compares against.
type NisabReference struct {
	MonetaryThreshold   float64 `json:"monetaryThreshold"`
	GoldWeightThreshold float64 `json:"goldWeightThreshold"` // grams
	GoldPricePerGram    float64 `json:"goldPricePerGram"`
	UpdatedDate         string  `json:"updatedDate"` // YYYY-MM-DD
	Currency            string  `json:"currency"`
}

// DefaultNisab returns the built-in reference values.
func DefaultNisab() NisabReference {
	return NisabReference{
		MonetaryThreshold:   DefaultNisabMonetary,
		GoldWeightThreshold: DefaultNisabGoldWeight,
		GoldPricePerGram:    DefaultNisabGoldPrice,
		UpdatedDate:         DefaultNisabUpdatedDate,
		Currency:            DefaultCurrency,
	}
}
