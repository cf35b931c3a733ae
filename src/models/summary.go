package models

// CalculationSummary is derived from a record and the nisab on every read.
// Only ZakatDue is ever written back, as the record's ZakatAmount.
type CalculationSummary struct {
	AssetClass   AssetClass `json:"assetClass"`
	TotalAssets  float64    `json:"totalAssets"`
	TotalDebts   float64    `json:"totalDebts"`
	NetAssets    float64    `json:"netAssets"`
	IsAboveNisab bool       `json:"isAboveNisab"`
	ZakatDue     float64    `json:"zakatDue"`
}
