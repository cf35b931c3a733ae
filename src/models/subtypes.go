package models

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Sub-type tags select the single active branch of a record. Decoding an
// unknown tag fails with ErrUnknownSubType; an empty tag takes the default
// the calculators open with.

type SharesMethod string

const (
	SharesAssetBased  SharesMethod = "asset_based"
	SharesMarketValue SharesMethod = "market_value"
	SharesDetailed    SharesMethod = "detailed"
)

var sharesMethods = []SharesMethod{SharesAssetBased, SharesMarketValue, SharesDetailed}

func (m SharesMethod) OrDefault() SharesMethod { return orDefault(m, sharesMethods, SharesAssetBased) }
func (m *SharesMethod) UnmarshalText(b []byte) error {
	return parseSubType(b, sharesMethods, SharesAssetBased, m)
}

type ETFMethod string

const (
	ETFDirect        ETFMethod = "direct"
	ETFRatio25       ETFMethod = "ratio_25"
	ETFInformational ETFMethod = "informational"
)

var etfMethods = []ETFMethod{ETFDirect, ETFRatio25, ETFInformational}

func (m ETFMethod) OrDefault() ETFMethod { return orDefault(m, etfMethods, ETFDirect) }
func (m *ETFMethod) UnmarshalText(b []byte) error {
	return parseSubType(b, etfMethods, ETFDirect, m)
}

type MutualFundsMethod string

const (
	MutualFundsRatio25       MutualFundsMethod = "ratio_25"
	MutualFundsInformational MutualFundsMethod = "informational"
)

var mutualFundsMethods = []MutualFundsMethod{MutualFundsRatio25, MutualFundsInformational}

func (m MutualFundsMethod) OrDefault() MutualFundsMethod {
	return orDefault(m, mutualFundsMethods, MutualFundsRatio25)
}
func (m *MutualFundsMethod) UnmarshalText(b []byte) error {
	return parseSubType(b, mutualFundsMethods, MutualFundsRatio25, m)
}

type SukukType string

const (
	SukukIjarah     SukukType = "al_ijarah"
	SukukMusharakah SukukType = "al_musharakah"
	SukukMudharabah SukukType = "al_mudharabah"
	SukukMurabahah  SukukType = "al_murabahah"
	SukukIstisna    SukukType = "al_istisna"
)

var sukukTypes = []SukukType{SukukIjarah, SukukMusharakah, SukukMudharabah, SukukMurabahah, SukukIstisna}

func (t SukukType) OrDefault() SukukType { return orDefault(t, sukukTypes, SukukIjarah) }
func (t *SukukType) UnmarshalText(b []byte) error {
	return parseSubType(b, sukukTypes, SukukIjarah, t)
}

type PropertyType string

const (
	PropertyBoughtToResell  PropertyType = "bought_to_resell"
	PropertyRentalIncome    PropertyType = "rental_income"
	PropertyRedevelopResell PropertyType = "redevelop_resell"
)

var propertyTypes = []PropertyType{PropertyBoughtToResell, PropertyRentalIncome, PropertyRedevelopResell}

func (t PropertyType) OrDefault() PropertyType {
	return orDefault(t, propertyTypes, PropertyBoughtToResell)
}
func (t *PropertyType) UnmarshalText(b []byte) error {
	return parseSubType(b, propertyTypes, PropertyBoughtToResell, t)
}

type CryptoType string

const (
	CryptoTrading        CryptoType = "trading"
	CryptoSecurityTokens CryptoType = "security_tokens"
	CryptoAssetBacked    CryptoType = "asset_backed"
)

var cryptoTypes = []CryptoType{CryptoTrading, CryptoSecurityTokens, CryptoAssetBacked}

func (t CryptoType) OrDefault() CryptoType { return orDefault(t, cryptoTypes, CryptoTrading) }
func (t *CryptoType) UnmarshalText(b []byte) error {
	return parseSubType(b, cryptoTypes, CryptoTrading, t)
}

type NFTType string

const (
	NFTMarketValue     NFTType = "market_value"
	NFTUnderlyingAsset NFTType = "underlying_asset"
)

var nftTypes = []NFTType{NFTMarketValue, NFTUnderlyingAsset}

func (t NFTType) OrDefault() NFTType { return orDefault(t, nftTypes, NFTMarketValue) }
func (t *NFTType) UnmarshalText(b []byte) error {
	return parseSubType(b, nftTypes, NFTMarketValue, t)
}

type REITType string

const (
	REITUnitValue    REITType = "unit_value"
	REITRentalIncome REITType = "rental_income"
)

var reitTypes = []REITType{REITUnitValue, REITRentalIncome}

func (t REITType) OrDefault() REITType { return orDefault(t, reitTypes, REITUnitValue) }
func (t *REITType) UnmarshalText(b []byte) error {
	return parseSubType(b, reitTypes, REITUnitValue, t)
}

// ETCCalculationType only changes the guidance shown to the user.
type ETCCalculationType string

const (
	ETCMarketValue     ETCCalculationType = "market_value"
	ETCUnderlyingAsset ETCCalculationType = "underlying_asset"
)

var etcCalculationTypes = []ETCCalculationType{ETCMarketValue, ETCUnderlyingAsset}

func (t ETCCalculationType) OrDefault() ETCCalculationType {
	return orDefault(t, etcCalculationTypes, ETCMarketValue)
}
func (t *ETCCalculationType) UnmarshalText(b []byte) error {
	return parseSubType(b, etcCalculationTypes, ETCMarketValue, t)
}

func orDefault[T ~string](v T, allowed []T, def T) T {
	if lo.Contains(allowed, v) {
		return v
	}
	return def
}

func parseSubType[T ~string](b []byte, allowed []T, def T, dst *T) error {
	v := T(strings.TrimSpace(string(b)))
	if v == "" {
		*dst = def
		return nil
	}
	if !lo.Contains(allowed, v) {
		return fmt.Errorf("%w: %q", ErrUnknownSubType, string(v))
	}
	*dst = v
	return nil
}
