package processors

import (
	"testing"

	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculated(zakat float64) models.RecordState {
	return models.RecordState{Calculated: true, ZakatAmount: models.Amount(zakat)}
}

func sampleSet() *models.RecordSet {
	return &models.RecordSet{
		Cash: &models.CashRecord{
			Accounts:    []models.BankAccount{{LowestAmountInYear: 20000}},
			RecordState: calculated(500),
		},
		Gold: &models.GoldRecord{
			CurrentPricePerGram: 200, InvestmentGold: 100,
			RecordState: calculated(500),
		},
		Shares: &models.SharesRecord{
			Holdings: []models.ShareHolding{{NumberOfShares: 10, PricePerShare: 10, ZakatableAssetRatio: 1}},
		},
		Crypto: &models.CryptoRecord{
			Exemptions:  models.Exemptions{LiabilityExemptions: []string{"utility_tokens"}},
			MarketValue: 90000,
			RecordState: calculated(0),
		},
	}
}

func TestPortfolio(t *testing.T) {
	items := NewPortfolioProcessor().Portfolio(sampleSet())

	require.Len(t, items, 2, "uncalculated shares and exempt crypto are left out")
	assert.Equal(t, models.AssetCash, items[0].Type)
	assert.Equal(t, 20000.0, items[0].AssetValue)
	assert.Equal(t, "Cash", items[0].Name)
	assert.Equal(t, "#6366F1", items[0].Color)
	assert.Equal(t, models.AssetGold, items[1].Type)
	assert.InDelta(t, 20000.0, items[1].AssetValue, delta)
}

func TestPortfolioEmpty(t *testing.T) {
	assert.Empty(t, NewPortfolioProcessor().Portfolio(nil))
	assert.Empty(t, NewPortfolioProcessor().Portfolio(&models.RecordSet{}))
}

func TestAggregate(t *testing.T) {
	members := []models.ZakatMember{
		{ID: "self", Name: "Aisha", Relationship: models.RelationshipSelf},
		{ID: "m2", Name: "Omar", Relationship: models.RelationshipHusband},
		{ID: "m3", Name: "Yusuf", Relationship: models.RelationshipSon},
	}
	records := map[string]*models.RecordSet{
		"self": sampleSet(),
		"m2": {
			Cash: &models.CashRecord{
				Accounts:    []models.BankAccount{{LowestAmountInYear: 30000}},
				RecordState: calculated(750),
			},
			Business: &models.BusinessRecord{
				BankBalance: 100000, MuslimOwnershipPercentage: 100,
				RecordState: calculated(2500),
			},
		},
	}

	items := NewPortfolioProcessor().Aggregate(members, records)

	require.Len(t, items, 3)
	assert.Equal(t, models.AssetBusiness, items[0].Type)
	assert.Equal(t, models.AssetCash, items[1].Type)
	assert.Equal(t, 50000.0, items[1].AssetValue)
	assert.Equal(t, 1250.0, items[1].ZakatAmount)
	require.Len(t, items[1].MemberContributions, 2)
	assert.Equal(t, models.MemberContribution{MemberID: "self", MemberName: "Aisha", AssetValue: 20000, ZakatAmount: 500}, items[1].MemberContributions[0])
	assert.Equal(t, "m2", items[1].MemberContributions[1].MemberID)
	assert.Equal(t, models.AssetGold, items[2].Type)
}

func TestAggregateSingleMemberMatchesPortfolio(t *testing.T) {
	p := NewPortfolioProcessor()
	set := sampleSet()

	individual := p.Portfolio(set)
	family := p.Aggregate(
		[]models.ZakatMember{{ID: "self", Name: "Self", Relationship: models.RelationshipSelf}},
		map[string]*models.RecordSet{"self": set},
	)

	require.Len(t, family, len(individual))
	for i := range individual {
		assert.Equal(t, individual[i], family[i].PortfolioItem)
		require.Len(t, family[i].MemberContributions, 1)
	}
}
