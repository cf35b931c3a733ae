package processors

import "github.com/mdnaeem95/purifai-mobile/src/models"

// Records with a sub-type read only the fields of the active branch.

func valuateSukuk(r *models.SukukRecord) Valuation {
	var total float64
	switch r.SukukType.OrDefault() {
	case models.SukukIjarah:
		total = r.RemainingAtDueDate.Float()
	case models.SukukMusharakah:
		total = r.SukukValue.Float() * r.ZakatableAssetPercentage.Float()
	case models.SukukMudharabah:
		total = r.MarketValue.Float() + r.ProfitShareReceived.Float()
	case models.SukukMurabahah:
		total = r.OutstandingReceivable.Float()
	case models.SukukIstisna:
		total = r.TotalIncomeFromGoods.Float()
	}
	return Valuation{TotalAssets: total}
}

func valuateInvestmentProperty(r *models.InvestmentPropertyRecord) Valuation {
	var total float64
	switch r.PropertyType.OrDefault() {
	case models.PropertyBoughtToResell:
		total = r.CurrentMarketValue.Float()
	case models.PropertyRentalIncome:
		total = r.RentalIncomeOnHand.Float()
	case models.PropertyRedevelopResell:
		total = r.MarketValueAfterRefurbishment.Float()
	}
	return Valuation{TotalAssets: total}
}

func valuateCrypto(r *models.CryptoRecord) Valuation {
	total := r.MarketValue.Float()
	if r.CryptoType.OrDefault() == models.CryptoSecurityTokens {
		total *= r.ZakatableAssetRatio.Float()
	}
	return Valuation{TotalAssets: total}
}

func valuateNFT(r *models.NFTRecord) Valuation {
	if r.NFTType.OrDefault() == models.NFTUnderlyingAsset {
		return Valuation{TotalAssets: r.UnderlyingAssetValue.Float()}
	}
	return Valuation{TotalAssets: r.MarketValue.Float()}
}

func valuateCommodity(r *models.CommodityRecord) Valuation {
	return Valuation{TotalAssets: r.PremiumPaid.Float()}
}

func valuateREIT(r *models.REITRecord) Valuation {
	if r.REITType.OrDefault() == models.REITRentalIncome {
		return Valuation{TotalAssets: r.RentalIncomeOnHand.Float()}
	}
	return Valuation{TotalAssets: r.NumberOfUnits.Float() * r.PricePerUnit.Float()}
}
