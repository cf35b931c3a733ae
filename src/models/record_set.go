package models

import (
	"encoding/json"
	"fmt"
)

// RecordSet is one member's full set of calculator records. A nil field
// means the member never opened that calculator.
type RecordSet struct {
	Cash               *CashRecord               `json:"cash,omitempty"`
	Gold               *GoldRecord               `json:"gold,omitempty"`
	Insurance          *InsuranceRecord          `json:"insurance,omitempty"`
	Shares             *SharesRecord             `json:"shares,omitempty"`
	ETF                *ETFRecord                `json:"etf,omitempty"`
	MutualFunds        *MutualFundsRecord        `json:"mutual_funds,omitempty"`
	Sukuk              *SukukRecord              `json:"sukuk,omitempty"`
	InvestmentLand     *InvestmentLandRecord     `json:"investment_land,omitempty"`
	InvestmentProperty *InvestmentPropertyRecord `json:"investment_property,omitempty"`
	Crypto             *CryptoRecord             `json:"crypto,omitempty"`
	NFT                *NFTRecord                `json:"nft,omitempty"`
	Commodity          *CommodityRecord          `json:"commodity,omitempty"`
	REIT               *REITRecord               `json:"reit,omitempty"`
	ETC                *ETCRecord                `json:"etc,omitempty"`
	PrivateEquity      *PrivateEquityRecord      `json:"private_equity,omitempty"`
	Business           *BusinessRecord           `json:"business,omitempty"`
}

// NewRecord returns an empty record for class.
func NewRecord(class AssetClass) (AssetRecord, error) {
	switch class {
	case AssetCash:
		return &CashRecord{}, nil
	case AssetGold:
		return &GoldRecord{}, nil
	case AssetInsurance:
		return &InsuranceRecord{}, nil
	case AssetShares:
		return &SharesRecord{}, nil
	case AssetETF:
		return &ETFRecord{}, nil
	case AssetMutualFunds:
		return &MutualFundsRecord{}, nil
	case AssetSukuk:
		return &SukukRecord{}, nil
	case AssetInvestmentLand:
		return &InvestmentLandRecord{}, nil
	case AssetInvestmentProperty:
		return &InvestmentPropertyRecord{}, nil
	case AssetCrypto:
		return &CryptoRecord{}, nil
	case AssetNFT:
		return &NFTRecord{}, nil
	case AssetCommodity:
		return &CommodityRecord{}, nil
	case AssetREIT:
		return &REITRecord{}, nil
	case AssetETC:
		return &ETCRecord{}, nil
	case AssetPrivateEquity:
		return &PrivateEquityRecord{}, nil
	case AssetBusiness:
		return &BusinessRecord{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAssetClass, string(class))
}

// DecodeRecord parses a JSON payload into the record type for class.
// Numeric fields never fail (see Amount); an unknown sub-type tag does.
func DecodeRecord(class AssetClass, data []byte) (AssetRecord, error) {
	rec, err := NewRecord(class)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", class, err)
	}
	return rec, nil
}

// Get returns the record for class, or nil when the member has none.
func (s *RecordSet) Get(class AssetClass) AssetRecord {
	var rec AssetRecord
	switch class {
	case AssetCash:
		if s.Cash != nil {
			rec = s.Cash
		}
	case AssetGold:
		if s.Gold != nil {
			rec = s.Gold
		}
	case AssetInsurance:
		if s.Insurance != nil {
			rec = s.Insurance
		}
	case AssetShares:
		if s.Shares != nil {
			rec = s.Shares
		}
	case AssetETF:
		if s.ETF != nil {
			rec = s.ETF
		}
	case AssetMutualFunds:
		if s.MutualFunds != nil {
			rec = s.MutualFunds
		}
	case AssetSukuk:
		if s.Sukuk != nil {
			rec = s.Sukuk
		}
	case AssetInvestmentLand:
		if s.InvestmentLand != nil {
			rec = s.InvestmentLand
		}
	case AssetInvestmentProperty:
		if s.InvestmentProperty != nil {
			rec = s.InvestmentProperty
		}
	case AssetCrypto:
		if s.Crypto != nil {
			rec = s.Crypto
		}
	case AssetNFT:
		if s.NFT != nil {
			rec = s.NFT
		}
	case AssetCommodity:
		if s.Commodity != nil {
			rec = s.Commodity
		}
	case AssetREIT:
		if s.REIT != nil {
			rec = s.REIT
		}
	case AssetETC:
		if s.ETC != nil {
			rec = s.ETC
		}
	case AssetPrivateEquity:
		if s.PrivateEquity != nil {
			rec = s.PrivateEquity
		}
	case AssetBusiness:
		if s.Business != nil {
			rec = s.Business
		}
	}
	return rec
}

// Set stores rec in the slot for its class, replacing any previous record.
func (s *RecordSet) Set(rec AssetRecord) {
	rec.Accept(recordSetter{set: s})
}

// Clear removes the record for class.
func (s *RecordSet) Clear(class AssetClass) {
	switch class {
	case AssetCash:
		s.Cash = nil
	case AssetGold:
		s.Gold = nil
	case AssetInsurance:
		s.Insurance = nil
	case AssetShares:
		s.Shares = nil
	case AssetETF:
		s.ETF = nil
	case AssetMutualFunds:
		s.MutualFunds = nil
	case AssetSukuk:
		s.Sukuk = nil
	case AssetInvestmentLand:
		s.InvestmentLand = nil
	case AssetInvestmentProperty:
		s.InvestmentProperty = nil
	case AssetCrypto:
		s.Crypto = nil
	case AssetNFT:
		s.NFT = nil
	case AssetCommodity:
		s.Commodity = nil
	case AssetREIT:
		s.REIT = nil
	case AssetETC:
		s.ETC = nil
	case AssetPrivateEquity:
		s.PrivateEquity = nil
	case AssetBusiness:
		s.Business = nil
	}
}

// Records lists the present records in catalogue order.
func (s *RecordSet) Records() []AssetRecord {
	if s == nil {
		return nil
	}
	records := make([]AssetRecord, 0, len(AssetClasses))
	for _, class := range AssetClasses {
		if rec := s.Get(class); rec != nil {
			records = append(records, rec)
		}
	}
	return records
}

type recordSetter struct{ set *RecordSet }

func (v recordSetter) VisitCash(r *CashRecord)                             { v.set.Cash = r }
func (v recordSetter) VisitGold(r *GoldRecord)                             { v.set.Gold = r }
func (v recordSetter) VisitInsurance(r *InsuranceRecord)                   { v.set.Insurance = r }
func (v recordSetter) VisitShares(r *SharesRecord)                         { v.set.Shares = r }
func (v recordSetter) VisitETF(r *ETFRecord)                               { v.set.ETF = r }
func (v recordSetter) VisitMutualFunds(r *MutualFundsRecord)               { v.set.MutualFunds = r }
func (v recordSetter) VisitSukuk(r *SukukRecord)                           { v.set.Sukuk = r }
func (v recordSetter) VisitInvestmentLand(r *InvestmentLandRecord)         { v.set.InvestmentLand = r }
func (v recordSetter) VisitInvestmentProperty(r *InvestmentPropertyRecord) { v.set.InvestmentProperty = r }
func (v recordSetter) VisitCrypto(r *CryptoRecord)                         { v.set.Crypto = r }
func (v recordSetter) VisitNFT(r *NFTRecord)                               { v.set.NFT = r }
func (v recordSetter) VisitCommodity(r *CommodityRecord)                   { v.set.Commodity = r }
func (v recordSetter) VisitREIT(r *REITRecord)                             { v.set.REIT = r }
func (v recordSetter) VisitETC(r *ETCRecord)                               { v.set.ETC = r }
func (v recordSetter) VisitPrivateEquity(r *PrivateEquityRecord)           { v.set.PrivateEquity = r }
func (v recordSetter) VisitBusiness(r *BusinessRecord)                     { v.set.Business = r }
