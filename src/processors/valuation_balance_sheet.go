package processors

import (
	"math"

	"github.com/mdnaeem95/purifai-mobile/src/models"
)

// valuateGold values the zakatable grams at the entered price. Personal
// jewellery only counts when the user opts into the Hanafi position.
func valuateGold(r *models.GoldRecord) Valuation {
	grams := r.InvestmentGold.Float()
	if r.ApplyZakatOnPersonalGold {
		grams += r.PersonalUseGold.Float()
	}
	return Valuation{
		TotalAssets:    grams * r.CurrentPricePerGram.Float(),
		ZakatableGrams: grams,
	}
}

// valuatePrivateEquity takes the investor's share of the company's net
// zakatable assets, measured against book value.
func valuatePrivateEquity(r *models.PrivateEquityRecord) Valuation {
	net := math.Max(r.ZakatableAssets.Float()-r.CompanyLiabilities.Float(), 0)
	var ratio float64
	if book := r.CompanyBookValue.Float(); book > 0 {
		ratio = net / book
	}
	return Valuation{TotalAssets: r.InvestmentAmount.Float() * ratio}
}

// valuateBusiness applies the Muslim-owned share to net current assets.
// Liabilities are netted here and reported separately for display.
func valuateBusiness(r *models.BusinessRecord) Valuation {
	liabilities := r.CurrentLiabilities()
	net := r.CurrentAssets() - r.AdjustmentsToRemove() + r.AdjustmentsToAdd() - liabilities
	ownership := math.Min(math.Max(r.MuslimOwnershipPercentage.Float(), 0), 100) / 100
	return Valuation{
		TotalAssets: math.Max(net*ownership, 0),
		TotalDebts:  liabilities,
		DebtsNetted: true,
	}
}
