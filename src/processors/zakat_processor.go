package processors

import "github.com/mdnaeem95/purifai-mobile/src/models"

type zakatProcessorImpl struct{}

func NewZakatProcessor() ZakatProcessor {
	return &zakatProcessorImpl{}
}

func (p *zakatProcessorImpl) Calculate(rec models.AssetRecord, nisab models.NisabReference) models.CalculationSummary {
	return Determine(Valuate(rec), rec.Class(), nisab)
}

// Apply is the save path: the cached amount is always overwritten, never
// trusted from the incoming payload.
func (p *zakatProcessorImpl) Apply(rec models.AssetRecord, nisab models.NisabReference) models.CalculationSummary {
	summary := p.Calculate(rec, nisab)
	st := models.StateOf(rec)
	st.Calculated = true
	st.ZakatAmount = models.Amount(summary.ZakatDue)
	return summary
}

func (p *zakatProcessorImpl) TotalZakat(set *models.RecordSet) float64 {
	return TotalZakat(set.Records())
}
