package processors

import "github.com/mdnaeem95/purifai-mobile/src/models"

// ZakatRate applies uniformly to every asset class.
const ZakatRate = 0.025

// Determine compares a valuation with the nisab and applies the rate.
//
// Gold is compared by weight: its zakatable grams against the gold weight
// threshold, whatever the price per gram. Every other class compares net
// assets against the monetary threshold. Negative net assets simply fall
// below nisab.
func Determine(v Valuation, class models.AssetClass, nisab models.NisabReference) models.CalculationSummary {
	net := v.TotalAssets
	if !v.DebtsNetted {
		net -= v.TotalDebts
	}

	var above bool
	if class == models.AssetGold {
		above = v.ZakatableGrams >= nisab.GoldWeightThreshold
	} else {
		above = net >= nisab.MonetaryThreshold
	}

	var due float64
	if above {
		due = net * ZakatRate
	}

	return models.CalculationSummary{
		AssetClass:   class,
		TotalAssets:  v.TotalAssets,
		TotalDebts:   v.TotalDebts,
		NetAssets:    net,
		IsAboveNisab: above,
		ZakatDue:     due,
	}
}

// TotalZakat sums the saved zakat of every calculated record. Records the
// user has not saved contribute nothing, whatever their cached amount.
func TotalZakat(records []models.AssetRecord) float64 {
	var total float64
	for _, rec := range records {
		if st := models.StateOf(rec); st.Calculated {
			total += st.ZakatAmount.Float()
		}
	}
	return total
}
