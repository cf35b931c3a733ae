package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshalCoercesToZero(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `1250.5`, 1250.5},
		{"numeric string", `"1250.5"`, 1250.5},
		{"thousands separator", `"1,250.50"`, 1250.5},
		{"negative", `-10`, -10},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"NaN string", `"NaN"`, 0},
		{"infinity string", `"Infinity"`, 0},
		{"boolean", `true`, 0},
		{"object", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.want, a.Float())
		})
	}
}

func TestAmountMissingFieldIsZero(t *testing.T) {
	var rec GoldRecord
	require.NoError(t, json.Unmarshal([]byte(`{"investmentGold":"50"}`), &rec))
	assert.Equal(t, 50.0, rec.InvestmentGold.Float())
	assert.Equal(t, 0.0, rec.CurrentPricePerGram.Float())
}

func TestAmountFloatMapsNonFinite(t *testing.T) {
	assert.Equal(t, 0.0, Amount(math.NaN()).Float())
	assert.Equal(t, 0.0, Amount(math.Inf(1)).Float())

	b, err := json.Marshal(Amount(math.Inf(-1)))
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))
}

func TestParseAssetClass(t *testing.T) {
	c, err := ParseAssetClass("private_equity")
	require.NoError(t, err)
	assert.Equal(t, AssetPrivateEquity, c)

	_, err = ParseAssetClass("stamps")
	assert.ErrorIs(t, err, ErrUnknownAssetClass)
}

func TestSubTypeDecoding(t *testing.T) {
	t.Run("empty tag takes default", func(t *testing.T) {
		var rec SukukRecord
		require.NoError(t, json.Unmarshal([]byte(`{"sukukType":""}`), &rec))
		assert.Equal(t, SukukIjarah, rec.SukukType)
	})

	t.Run("missing tag defaults on read", func(t *testing.T) {
		var rec ETFRecord
		require.NoError(t, json.Unmarshal([]byte(`{}`), &rec))
		assert.Equal(t, ETFDirect, rec.CalculationMethod.OrDefault())
	})

	t.Run("unknown tag is rejected", func(t *testing.T) {
		_, err := DecodeRecord(AssetCrypto, []byte(`{"cryptoType":"meme_coin"}`))
		assert.ErrorIs(t, err, ErrUnknownSubType)
	})

	t.Run("known tag is kept", func(t *testing.T) {
		rec, err := DecodeRecord(AssetInvestmentProperty, []byte(`{"propertyType":"rental_income"}`))
		require.NoError(t, err)
		assert.Equal(t, PropertyRentalIncome, rec.(*InvestmentPropertyRecord).PropertyType)
	})
}

func TestDecodeRecordReadsSharedState(t *testing.T) {
	rec, err := DecodeRecord(AssetETF, []byte(`{
		"liabilityExemptions": ["long_term_hold"],
		"calculationMethod": "ratio_25",
		"holdings": [{"id":"1","name":"VT","numberOfUnits":"100","pricePerUnit":10}],
		"calculated": true,
		"zakatAmount": 12.5
	}`))
	require.NoError(t, err)

	etf, ok := rec.(*ETFRecord)
	require.True(t, ok)
	assert.Equal(t, []string{"long_term_hold"}, etf.ExemptionSelection())
	assert.Equal(t, ETFRatio25, etf.CalculationMethod)
	require.Len(t, etf.Holdings, 1)
	assert.Equal(t, 100.0, etf.Holdings[0].NumberOfUnits.Float())
	assert.True(t, StateOf(rec).Calculated)
	assert.Equal(t, 12.5, StateOf(rec).ZakatAmount.Float())
}

func TestRecordSetRoundTrip(t *testing.T) {
	set := &RecordSet{}
	assert.Nil(t, set.Get(AssetGold))
	assert.Empty(t, set.Records())

	set.Set(&GoldRecord{InvestmentGold: 10})
	set.Set(&CashRecord{TotalDebts: 5})

	records := set.Records()
	require.Len(t, records, 2)
	assert.Equal(t, AssetCash, records[0].Class(), "catalogue order puts cash first")
	assert.Equal(t, AssetGold, records[1].Class())

	data, err := json.Marshal(set)
	require.NoError(t, err)

	var decoded RecordSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Gold)
	assert.Equal(t, 10.0, decoded.Gold.InvestmentGold.Float())

	decoded.Clear(AssetGold)
	assert.Nil(t, decoded.Get(AssetGold))
	assert.NotNil(t, decoded.Get(AssetCash))
}

func TestNewRecordCoversEveryClass(t *testing.T) {
	for _, class := range AssetClasses {
		rec, err := NewRecord(class)
		require.NoError(t, err, class)
		assert.Equal(t, class, rec.Class())

		set := &RecordSet{}
		set.Set(rec)
		assert.Same(t, rec, set.Get(class))
	}
}

func TestRelationshipLabel(t *testing.T) {
	assert.Equal(t, "Wife", RelationshipWife.Label())
	assert.Equal(t, "Self", RelationshipSelf.Label())
	assert.True(t, ZakatMember{Relationship: RelationshipSelf}.IsSelf())
}
