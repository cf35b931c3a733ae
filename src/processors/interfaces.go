package processors

import "github.com/mdnaeem95/purifai-mobile/src/models"

// ZakatProcessor turns one record into its calculation summary.
type ZakatProcessor interface {
	Calculate(rec models.AssetRecord, nisab models.NisabReference) models.CalculationSummary
	// Apply recomputes the summary and overwrites the record's cached zakat.
	Apply(rec models.AssetRecord, nisab models.NisabReference) models.CalculationSummary
	TotalZakat(set *models.RecordSet) float64
}

// PortfolioProcessor builds the read-only portfolio projections.
type PortfolioProcessor interface {
	Portfolio(set *models.RecordSet) []models.PortfolioItem
	Aggregate(members []models.ZakatMember, recordsByMember map[string]*models.RecordSet) []models.FamilyPortfolioItem
}
