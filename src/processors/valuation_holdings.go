package processors

import (
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/samber/lo"
)

// etfRatio is the share of a fund's value treated as zakatable when the
// user does not know the fund's actual zakatable assets.
const etfRatio = 0.25

// Interest earned is excluded; only the lowest balance held during the year counts.
func valuateCash(r *models.CashRecord) Valuation {
	return Valuation{
		TotalAssets: lo.SumBy(r.Accounts, func(a models.BankAccount) float64 {
			return a.LowestAmountInYear.Float()
		}),
		TotalDebts: r.TotalDebts.Float(),
	}
}

func valuateInsurance(r *models.InsuranceRecord) Valuation {
	return Valuation{
		TotalAssets: lo.SumBy(r.Policies, func(p models.InsurancePolicy) float64 {
			return p.SurrenderValue.Float()
		}),
	}
}

func valuateShares(r *models.SharesRecord) Valuation {
	marketValue := r.CalculationMethod.OrDefault() == models.SharesMarketValue
	return Valuation{
		TotalAssets: lo.SumBy(r.Holdings, func(h models.ShareHolding) float64 {
			value := h.NumberOfShares.Float() * h.PricePerShare.Float()
			if marketValue {
				return value
			}
			return value * h.ZakatableAssetRatio.Float()
		}),
	}
}

func valuateETF(r *models.ETFRecord) Valuation {
	total := unitsValue(r.Holdings)
	if r.CalculationMethod.OrDefault() == models.ETFRatio25 {
		total *= etfRatio
	}
	return Valuation{TotalAssets: total}
}

func valuateMutualFunds(r *models.MutualFundsRecord) Valuation {
	if r.CalculationMethod.OrDefault() == models.MutualFundsInformational {
		return Valuation{}
	}
	return Valuation{TotalAssets: unitsValue(r.Holdings) * etfRatio}
}

func valuateInvestmentLand(r *models.InvestmentLandRecord) Valuation {
	return Valuation{
		TotalAssets: lo.SumBy(r.Holdings, func(h models.LandHolding) float64 {
			return h.MarketValue.Float()
		}),
	}
}

// The calculation type of an ETC only changes the guidance shown to the user.
func valuateETC(r *models.ETCRecord) Valuation {
	return Valuation{TotalAssets: unitsValue(r.Holdings)}
}

func unitsValue(holdings []models.UnitHolding) float64 {
	return lo.SumBy(holdings, func(h models.UnitHolding) float64 {
		return h.NumberOfUnits.Float() * h.PricePerUnit.Float()
	})
}
