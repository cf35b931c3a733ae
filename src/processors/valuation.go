package processors

import "github.com/mdnaeem95/purifai-mobile/src/models"

// Valuation is the zakatable value one record contributes before the nisab
// comparison.
type Valuation struct {
	TotalAssets float64
	TotalDebts  float64
	// ZakatableGrams is only set for gold, whose nisab is a weight.
	ZakatableGrams float64
	// DebtsNetted marks valuations whose TotalAssets already has TotalDebts
	// subtracted; TotalDebts is then for display only.
	DebtsNetted bool
}

// RawValuation applies the valuation rule for the record's class, ignoring
// any exemption the user selected.
func RawValuation(rec models.AssetRecord) Valuation {
	v := &valuator{}
	rec.Accept(v)
	return v.result
}

// Valuate is RawValuation followed by the exemption filter for the classes
// that support conditional exemption.
func Valuate(rec models.AssetRecord) Valuation {
	raw := RawValuation(rec)
	if ex, ok := rec.(models.Exemptible); ok {
		return ApplyExemptions(ex.ExemptionSelection(), raw)
	}
	return raw
}

// ApplyExemptions zeroes the valuation when any exemption condition is
// selected. Exemption is absolute, never partial.
func ApplyExemptions(selection []string, raw Valuation) Valuation {
	if len(selection) > 0 {
		return Valuation{}
	}
	return raw
}

// valuator dispatches to one rule per asset class.
type valuator struct {
	result Valuation
}

func (v *valuator) VisitCash(r *models.CashRecord)                             { v.result = valuateCash(r) }
func (v *valuator) VisitGold(r *models.GoldRecord)                             { v.result = valuateGold(r) }
func (v *valuator) VisitInsurance(r *models.InsuranceRecord)                   { v.result = valuateInsurance(r) }
func (v *valuator) VisitShares(r *models.SharesRecord)                         { v.result = valuateShares(r) }
func (v *valuator) VisitETF(r *models.ETFRecord)                               { v.result = valuateETF(r) }
func (v *valuator) VisitMutualFunds(r *models.MutualFundsRecord)               { v.result = valuateMutualFunds(r) }
func (v *valuator) VisitSukuk(r *models.SukukRecord)                           { v.result = valuateSukuk(r) }
func (v *valuator) VisitInvestmentLand(r *models.InvestmentLandRecord)         { v.result = valuateInvestmentLand(r) }
func (v *valuator) VisitInvestmentProperty(r *models.InvestmentPropertyRecord) { v.result = valuateInvestmentProperty(r) }
func (v *valuator) VisitCrypto(r *models.CryptoRecord)                         { v.result = valuateCrypto(r) }
func (v *valuator) VisitNFT(r *models.NFTRecord)                               { v.result = valuateNFT(r) }
func (v *valuator) VisitCommodity(r *models.CommodityRecord)                   { v.result = valuateCommodity(r) }
func (v *valuator) VisitREIT(r *models.REITRecord)                             { v.result = valuateREIT(r) }
func (v *valuator) VisitETC(r *models.ETCRecord)                               { v.result = valuateETC(r) }
func (v *valuator) VisitPrivateEquity(r *models.PrivateEquityRecord)           { v.result = valuatePrivateEquity(r) }
func (v *valuator) VisitBusiness(r *models.BusinessRecord)                     { v.result = valuateBusiness(r) }
