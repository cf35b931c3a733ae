package models

// PortfolioItem is one asset class in a member's portfolio breakdown.
type PortfolioItem struct {
	Type        AssetClass `json:"type"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	AssetValue  float64    `json:"assetValue"`
	ZakatAmount float64    `json:"zakatAmount"`
}

// MemberContribution is one member's share of a family portfolio item.
type MemberContribution struct {
	MemberID    string  `json:"memberId"`
	MemberName  string  `json:"memberName"`
	AssetValue  float64 `json:"assetValue"`
	ZakatAmount float64 `json:"zakatAmount"`
}

// FamilyPortfolioItem sums one asset class across every member.
type FamilyPortfolioItem struct {
	PortfolioItem
	MemberContributions []MemberContribution `json:"memberContributions"`
}

// PaymentBreakdown is the zakat due on one saved calculator.
type PaymentBreakdown struct {
	AssetClass  AssetClass `json:"assetClass"`
	Name        string     `json:"name"`
	ZakatAmount float64    `json:"zakatAmount"`
	Formatted   string     `json:"formatted"`
}

// PaymentSummary is what the payment flow reads for one member.
type PaymentSummary struct {
	MemberID      string             `json:"memberId"`
	TotalZakatDue float64            `json:"totalZakatDue"`
	Formatted     string             `json:"formatted"`
	Breakdown     []PaymentBreakdown `json:"breakdown"`
}
