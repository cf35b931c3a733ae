package processors

import (
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/samber/lo"
)

// ExemptionCondition is a criterion that, when met, removes an asset from
// zakat entirely.
type ExemptionCondition struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// CalculatorMeta describes one calculator for clients and reports.
type CalculatorMeta struct {
	ID                  models.AssetClass    `json:"id"`
	Name                string               `json:"name"`
	Icon                string               `json:"icon"`
	Description         string               `json:"description"`
	Color               string               `json:"color"`
	Exemptible          bool                 `json:"exemptible"`
	ExemptionConditions []ExemptionCondition `json:"exemptionConditions,omitempty"`
	// Notes are guidance shown next to the calculator. The lunar-year holding
	// period they mention is not enforced.
	Notes []string `json:"notes,omitempty"`
}

// Catalogue lists every calculator in display order. Selections are not
// checked against ExemptionConditions: any selected id exempts the record.
var Catalogue = []CalculatorMeta{
	{
		ID: models.AssetCash, Name: "Cash", Icon: "dollar-sign", Color: "#6366F1",
		Description: "Pay Zakat on your bank accounts, cash, and savings",
		Notes:       []string{
			"Enter the lowest balance of each account over the past lunar year.",
			"Interest earned is purified separately and is not part of the zakat base.",
			"Deductible debts are immediate debts due for payment.",
		},
	},
	{
		ID: models.AssetGold, Name: "Gold", Icon: "box", Color: "#F59E0B",
		Description: "Pay Zakat on Gold (Physical or Fractional)",
		Notes:       []string{
			"The gold nisab is a weight of gold in grams, independent of the gold price.",
			"Investment gold such as bars and coins is always zakatable.",
			"Include personal jewellery if you follow the Hanafi opinion.",
		},
	},
	{
		ID: models.AssetInsurance, Name: "Insurance", Icon: "shield", Color: "#8B5CF6",
		Description: "Zakat on the surrender value of the insurance",
		Notes:       []string{
			"Only policies with a surrender value are zakatable.",
			"Term life and health policies usually have no surrender value.",
		},
	},
	{
		ID: models.AssetShares, Name: "Shares", Icon: "trending-up", Color: "#10B981",
		Description: "Pay Zakat on shares of companies",
		Notes:       []string{
			"Shares must be held for one lunar year.",
			"The asset-based method applies the company's zakatable asset ratio.",
			"The market value method uses the full market value.",
		},
	},
	{
		ID: models.AssetETF, Name: "Exchange-Traded Funds", Icon: "activity", Color: "#3B82F6",
		Description: "Pay Zakat on Exchange-Traded Funds",
		Notes:       []string{
			"The ETF must be held for one lunar year.",
			"The 25% ratio method gives an effective rate of 0.625%.",
			"If any exemption condition applies, no zakat is due on the ETF.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{ID: "no_zakatable_assets", Label: "There are no zakatable assets inside the Exchange-Traded Fund"},
			{ID: "below_nisab", Label: "Your ownership share does not reach the nisab"},
			{ID: "long_term_hold", Label: "You hold the Exchange-Traded Fund long-term, with no trading or liquidity"},
			{ID: "value_drops", Label: "The Exchange-Traded Fund loses value or drops significantly"},
		},
	},
	{
		ID: models.AssetMutualFunds, Name: "Mutual Funds", Icon: "pie-chart", Color: "#EC4899",
		Description: "Pay Zakat on Mutual Funds and Unit Trusts",
		Notes:       []string{
			"The 25% ratio method gives an effective rate of 0.625%.",
			"The informational method records the holding without zakat due.",
		},
		Exemptible:  true,
	},
	{
		ID: models.AssetSukuk, Name: "Sukuk", Icon: "file-text", Color: "#14B8A6",
		Description: "Pay Zakat on Islamic Bonds (Sukuk)",
		Notes:       []string{
			"Sukuk must be held for one lunar year.",
			"Each sukuk structure has its own zakatable amount.",
		},
	},
	{
		ID: models.AssetInvestmentLand, Name: "Investment Land", Icon: "map-pin", Color: "#F97316",
		Description: "Pay Zakat on land held as trading stock",
		Notes:       []string{
			"Only land held as trading stock is zakatable.",
			"Rental income from land is zakatable as cash instead.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{ID: "personal_use", Label: "The land is bought for personal use"},
			{ID: "passive_investment", Label: "The land is kept only as a store of value or passive investment"},
			{ID: "no_rental_income", Label: "The land generates no rental income"},
		},
	},
	{
		ID: models.AssetInvestmentProperty, Name: "Investment Property", Icon: "home", Color: "#EF4444",
		Description: "Pay Zakat on property held for resale or rental income",
		Notes:       []string{
			"Only property held for resale is zakatable on its full value.",
			"For rental properties only the rental income is zakatable.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{
				ID: "store_of_value", Label: "The property is kept only as a store of value",
				Description: "Properties held passively without intention to trade are not subject to zakat on the building value.",
			},
			{
				ID: "personal_use", Label: "The property is for personal use",
				Description: "Personal residences are exempt from zakat.",
			},
			{
				ID: "rental_no_building_zakat", Label: "A rental property: no zakat on the building itself",
				Description: "Only the rental income still owned on the zakat date is zakatable.",
			},
		},
	},
	{
		ID: models.AssetCrypto, Name: "Crypto Asset", Icon: "cpu", Color: "#06B6D4",
		Description: "Pay Zakat on cryptocurrency and digital tokens",
		Notes:       []string{
			"Trading crypto is zakatable on its full market value.",
			"Security tokens apply the zakatable asset ratio of the issuer.",
			"Crypto must be held for one lunar year.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{ID: "security_non_zakatable", Label: "Holding a Security token whose underlying asset is non-zakatable"},
			{ID: "utility_tokens", Label: "Holding utility/platform tokens for actual use in a system"},
			{ID: "asset_backed_non_zakatable", Label: "Holding an asset-backed token whose underlying asset is non-zakatable"},
			{ID: "governance_tokens", Label: "Holding governance tokens just for voting rights"},
		},
	},
	{
		ID: models.AssetNFT, Name: "Non-Fungible Tokens", Icon: "image", Color: "#A855F7",
		Description: "Pay Zakat on NFTs based on type and underlying asset",
		Notes:       []string{
			"Use the market value, or the value of a zakatable underlying asset.",
			"NFTs backed by non-zakatable assets may be exempt.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{ID: "non_zakatable_underlying", Label: "Buy an NFT just to hold with non-zakatable underlying asset"},
			{ID: "license_only", Label: "NFT only grants access or a license, not actual ownership"},
		},
	},
	{
		ID: models.AssetCommodity, Name: "Commodity Investing", Icon: "package", Color: "#84CC16",
		Description: "Pay Zakat on commodity investments and premiums",
		Notes:       []string{
			"Zakat is due on the premium paid for the commodity position.",
		},
		Exemptible:  true,
	},
	{
		ID: models.AssetREIT, Name: "Real Estate Investment Trusts", Icon: "grid", Color: "#0EA5E9",
		Description: "Pay Zakat on REIT units or rental income",
		Notes:       []string{
			"Trading units are zakatable on their current value.",
			"Long-term holders pay zakat on rental income received.",
			"Check that the REIT is Shariah-compliant.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{ID: "long_term_income", Label: "Hold REIT units for long-term income (not for trading)"},
			{ID: "not_shariah_compliant", Label: "REIT structure is not Shariah-compliant"},
		},
	},
	{
		ID: models.AssetETC, Name: "Exchange-Traded Commodities", Icon: "box", Color: "#D946EF",
		Description: "Pay Zakat on Exchange-Traded Commodities",
		Notes:       []string{
			"ETCs must be held for one lunar year.",
			"Check whether the underlying commodity is zakatable.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{ID: "long_term_non_zakatable", Label: "Hold ETC for long-term investment (not for trade)"},
		},
	},
	{
		ID: models.AssetPrivateEquity, Name: "Private Equity", Icon: "briefcase", Color: "#059669",
		Description: "Pay Zakat on Private Equity and Startup Investments",
		Notes:       []string{
			"Net zakatable assets are zakatable assets minus liabilities.",
			"Your zakatable portion is your investment times net assets over book value.",
		},
		Exemptible:  true,
		ExemptionConditions: []ExemptionCondition{
			{ID: "no_net_zakatable", Label: "The startup has no net zakatable assets"},
			{ID: "below_nisab", Label: "Your ownership share does not reach the nisab"},
			{ID: "continuous_losses", Label: "The startup is continuously making losses"},
		},
	},
	{
		ID: models.AssetBusiness, Name: "Business", Icon: "clipboard", Color: "#4338CA",
		Description: "Zakat on Business based on AAOIFI Shariah Standards",
		Notes:       []string{
			"Based on AAOIFI Financial Accounting Standard 9.",
			"Only the Muslim ownership share is zakatable.",
			"Current assets minus current liabilities form the zakat base.",
		},
	},
}

var catalogueByClass = lo.KeyBy(Catalogue, func(m CalculatorMeta) models.AssetClass { return m.ID })

// Meta returns the catalogue entry for class.
func Meta(class models.AssetClass) CalculatorMeta {
	return catalogueByClass[class]
}
