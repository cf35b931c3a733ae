package models

import (
	"errors"
	"fmt"
)

// AssetClass identifies one of the sixteen zakat calculators.
type AssetClass string

const (
	AssetCash               AssetClass = "cash"
	AssetGold               AssetClass = "gold"
	AssetInsurance          AssetClass = "insurance"
	AssetShares             AssetClass = "shares"
	AssetETF                AssetClass = "etf"
	AssetMutualFunds        AssetClass = "mutual_funds"
	AssetSukuk              AssetClass = "sukuk"
	AssetInvestmentLand     AssetClass = "investment_land"
	AssetInvestmentProperty AssetClass = "investment_property"
	AssetCrypto             AssetClass = "crypto"
	AssetNFT                AssetClass = "nft"
	AssetCommodity          AssetClass = "commodity"
	AssetREIT               AssetClass = "reit"
	AssetETC                AssetClass = "etc"
	AssetPrivateEquity      AssetClass = "private_equity"
	AssetBusiness           AssetClass = "business"
)

// AssetClasses lists every class in catalogue order.
var AssetClasses = []AssetClass{
	AssetCash,
	AssetGold,
	AssetInsurance,
	AssetShares,
	AssetETF,
	AssetMutualFunds,
	AssetSukuk,
	AssetInvestmentLand,
	AssetInvestmentProperty,
	AssetCrypto,
	AssetNFT,
	AssetCommodity,
	AssetREIT,
	AssetETC,
	AssetPrivateEquity,
	AssetBusiness,
}

var (
	ErrUnknownAssetClass = errors.New("unknown asset class")
	ErrUnknownSubType    = errors.New("unknown asset sub-type")
)

// ParseAssetClass validates a class id coming from a URL or payload.
func ParseAssetClass(s string) (AssetClass, error) {
	for _, c := range AssetClasses {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAssetClass, s)
}

// RecordState is the part every record shares: whether the user saved a
// computation and the zakat due cached at that save.
type RecordState struct {
	Calculated  bool   `json:"calculated"`
	ZakatAmount Amount `json:"zakatAmount"`
}

func (s *RecordState) state() *RecordState { return s }

// Exemptions holds the exemption conditions the user ticked. Only the nine
// exemption-gated records embed it.
type Exemptions struct {
	LiabilityExemptions []string `json:"liabilityExemptions"`
}

// ExemptionSelection returns the ticked condition ids.
func (e *Exemptions) ExemptionSelection() []string { return e.LiabilityExemptions }

// AssetRecord is the closed set of per-class records. Only types in this
// package implement it.
type AssetRecord interface {
	Class() AssetClass
	Accept(v RecordVisitor)
	state() *RecordState
}

// Exemptible is implemented by records that support conditional exemption.
type Exemptible interface {
	ExemptionSelection() []string
}

// StateOf exposes the shared state of any record.
func StateOf(r AssetRecord) *RecordState { return r.state() }

// RecordVisitor has one method per asset class. Adding a class without
// handling it everywhere fails to compile.
type RecordVisitor interface {
	VisitCash(r *CashRecord)
	VisitGold(r *GoldRecord)
	VisitInsurance(r *InsuranceRecord)
	VisitShares(r *SharesRecord)
	VisitETF(r *ETFRecord)
	VisitMutualFunds(r *MutualFundsRecord)
	VisitSukuk(r *SukukRecord)
	VisitInvestmentLand(r *InvestmentLandRecord)
	VisitInvestmentProperty(r *InvestmentPropertyRecord)
	VisitCrypto(r *CryptoRecord)
	VisitNFT(r *NFTRecord)
	VisitCommodity(r *CommodityRecord)
	VisitREIT(r *REITRecord)
	VisitETC(r *ETCRecord)
	VisitPrivateEquity(r *PrivateEquityRecord)
	VisitBusiness(r *BusinessRecord)
}
