package models

// BankAccount is one account entered on the cash calculator.
type BankAccount struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	AccountType        string `json:"accountType"` // savings, current, fixed_deposit
	LowestAmountInYear Amount `json:"lowestAmountInYear"`
	InterestEarned     Amount `json:"interestEarned"` // informational, never zakatable
}

type CashRecord struct {
	Accounts   []BankAccount `json:"accounts"`
	TotalDebts Amount        `json:"totalDebts"`
	RecordState
}

func (r *CashRecord) Class() AssetClass      { return AssetCash }
func (r *CashRecord) Accept(v RecordVisitor) { v.VisitCash(r) }

// GoldRecord weights are in grams.
type GoldRecord struct {
	CurrentPricePerGram      Amount `json:"currentPricePerGram"`
	PersonalUseGold          Amount `json:"personalUseGold"`
	InvestmentGold           Amount `json:"investmentGold"`
	ApplyZakatOnPersonalGold bool   `json:"applyZakatOnPersonalGold"`
	RecordState
}

func (r *GoldRecord) Class() AssetClass      { return AssetGold }
func (r *GoldRecord) Accept(v RecordVisitor) { v.VisitGold(r) }

type InsurancePolicy struct {
	ID             string `json:"id"`
	PolicyName     string `json:"policyName"`
	PolicyType     string `json:"policyType"` // endowment, whole_life, term_life, health, auto
	SurrenderValue Amount `json:"surrenderValue"`
}

type InsuranceRecord struct {
	Policies []InsurancePolicy `json:"policies"`
	RecordState
}

func (r *InsuranceRecord) Class() AssetClass      { return AssetInsurance }
func (r *InsuranceRecord) Accept(v RecordVisitor) { v.VisitInsurance(r) }

type ShareHolding struct {
	ID                  string `json:"id"`
	CompanyName         string `json:"companyName"`
	NumberOfShares      Amount `json:"numberOfShares"`
	PricePerShare       Amount `json:"pricePerShare"`
	ZakatableAssetRatio Amount `json:"zakatableAssetRatio"`
}

type SharesRecord struct {
	CalculationMethod SharesMethod   `json:"calculationMethod"`
	Holdings          []ShareHolding `json:"holdings"`
	RecordState
}

func (r *SharesRecord) Class() AssetClass      { return AssetShares }
func (r *SharesRecord) Accept(v RecordVisitor) { v.VisitShares(r) }

// UnitHolding is a fund position priced per unit (ETF, mutual fund, ETC).
type UnitHolding struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NumberOfUnits Amount `json:"numberOfUnits"`
	PricePerUnit  Amount `json:"pricePerUnit"`
}

type ETFRecord struct {
	Exemptions
	CalculationMethod ETFMethod     `json:"calculationMethod"`
	Holdings          []UnitHolding `json:"holdings"`
	RecordState
}

func (r *ETFRecord) Class() AssetClass      { return AssetETF }
func (r *ETFRecord) Accept(v RecordVisitor) { v.VisitETF(r) }

type MutualFundsRecord struct {
	Exemptions
	CalculationMethod MutualFundsMethod `json:"calculationMethod"`
	Holdings          []UnitHolding     `json:"holdings"`
	RecordState
}

func (r *MutualFundsRecord) Class() AssetClass      { return AssetMutualFunds }
func (r *MutualFundsRecord) Accept(v RecordVisitor) { v.VisitMutualFunds(r) }

// SukukRecord carries the fields of every sukuk structure; only the ones
// belonging to SukukType are read.
type SukukRecord struct {
	SukukType SukukType `json:"sukukType"`

	RentalIncomeReceived     Amount `json:"rentalIncomeReceived"`
	RemainingAtDueDate       Amount `json:"remainingAtDueDate"`
	SukukValue               Amount `json:"sukukValue"`
	ZakatableAssetPercentage Amount `json:"zakatableAssetPercentage"`
	MarketValue              Amount `json:"marketValue"`
	ProfitShareReceived      Amount `json:"profitShareReceived"`
	OutstandingReceivable    Amount `json:"outstandingReceivable"`
	TotalIncomeFromGoods     Amount `json:"totalIncomeFromGoods"`
	RecordState
}

func (r *SukukRecord) Class() AssetClass      { return AssetSukuk }
func (r *SukukRecord) Accept(v RecordVisitor) { v.VisitSukuk(r) }

type LandHolding struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MarketValue Amount `json:"marketValue"`
}

type InvestmentLandRecord struct {
	Exemptions
	Holdings []LandHolding `json:"holdings"`
	RecordState
}

func (r *InvestmentLandRecord) Class() AssetClass      { return AssetInvestmentLand }
func (r *InvestmentLandRecord) Accept(v RecordVisitor) { v.VisitInvestmentLand(r) }

type InvestmentPropertyRecord struct {
	Exemptions
	PropertyType PropertyType `json:"propertyType"`
	PropertyName string       `json:"propertyName"`

	CurrentMarketValue            Amount `json:"currentMarketValue"`
	RentalIncomeOnHand            Amount `json:"rentalIncomeOnHand"`
	MarketValueAfterRefurbishment Amount `json:"marketValueAfterRefurbishment"`
	RecordState
}

func (r *InvestmentPropertyRecord) Class() AssetClass      { return AssetInvestmentProperty }
func (r *InvestmentPropertyRecord) Accept(v RecordVisitor) { v.VisitInvestmentProperty(r) }

type CryptoRecord struct {
	Exemptions
	CryptoType          CryptoType `json:"cryptoType"`
	CryptoName          string     `json:"cryptoName"`
	MarketValue         Amount     `json:"marketValue"`
	ZakatableAssetRatio Amount     `json:"zakatableAssetRatio"` // security tokens only
	RecordState
}

func (r *CryptoRecord) Class() AssetClass      { return AssetCrypto }
func (r *CryptoRecord) Accept(v RecordVisitor) { v.VisitCrypto(r) }

type NFTRecord struct {
	Exemptions
	NFTType              NFTType `json:"nftType"`
	NFTName              string  `json:"nftName"`
	MarketValue          Amount  `json:"marketValue"`
	UnderlyingAssetValue Amount  `json:"underlyingAssetValue"`
	RecordState
}

func (r *NFTRecord) Class() AssetClass      { return AssetNFT }
func (r *NFTRecord) Accept(v RecordVisitor) { v.VisitNFT(r) }

type CommodityRecord struct {
	Exemptions
	CommodityName string `json:"commodityName"`
	PremiumPaid   Amount `json:"premiumPaid"`
	RecordState
}

func (r *CommodityRecord) Class() AssetClass      { return AssetCommodity }
func (r *CommodityRecord) Accept(v RecordVisitor) { v.VisitCommodity(r) }

type REITRecord struct {
	Exemptions
	REITType           REITType `json:"reitType"`
	REITName           string   `json:"reitName"`
	NumberOfUnits      Amount   `json:"numberOfUnits"`
	PricePerUnit       Amount   `json:"pricePerUnit"`
	RentalIncomeOnHand Amount   `json:"rentalIncomeOnHand"`
	RecordState
}

func (r *REITRecord) Class() AssetClass      { return AssetREIT }
func (r *REITRecord) Accept(v RecordVisitor) { v.VisitREIT(r) }

type ETCRecord struct {
	Exemptions
	CalculationType ETCCalculationType `json:"calculationType"`
	Holdings        []UnitHolding      `json:"holdings"`
	RecordState
}

func (r *ETCRecord) Class() AssetClass      { return AssetETC }
func (r *ETCRecord) Accept(v RecordVisitor) { v.VisitETC(r) }

type PrivateEquityRecord struct {
	Exemptions
	CompanyName        string `json:"companyName"`
	InvestmentAmount   Amount `json:"investmentAmount"`
	CompanyBookValue   Amount `json:"companyBookValue"`
	ZakatableAssets    Amount `json:"zakatableAssets"`
	CompanyLiabilities Amount `json:"companyLiabilities"`
	RecordState
}

func (r *PrivateEquityRecord) Class() AssetClass      { return AssetPrivateEquity }
func (r *PrivateEquityRecord) Accept(v RecordVisitor) { v.VisitPrivateEquity(r) }

// BusinessRecord mirrors a simplified balance sheet.
type BusinessRecord struct {
	// Current assets
	BankBalance      Amount `json:"bankBalance"`
	CashInHand       Amount `json:"cashInHand"`
	FixedDeposit     Amount `json:"fixedDeposit"`
	PrepaidExpenses  Amount `json:"prepaidExpenses"`
	ClosingStocks    Amount `json:"closingStocks"`
	TradeStocks      Amount `json:"tradeStocks"`
	TradeDebtors     Amount `json:"tradeDebtors"`
	LoanReceivable   Amount `json:"loanReceivable"`
	StaffWelfareFund Amount `json:"staffWelfareFund"`
	StaffLoan        Amount `json:"staffLoan"`
	OtherDeposits    Amount `json:"otherDeposits"`

	// Adjustments to remove
	BankInterestReceived Amount `json:"bankInterestReceived"`
	LatePaymentInterest  Amount `json:"latePaymentInterest"`
	UtilitiesDeposit     Amount `json:"utilitiesDeposit"`
	BadDebts             Amount `json:"badDebts"`
	ObsoleteStocks       Amount `json:"obsoleteStocks"`

	// Adjustments to add
	DonationsLastQuarter Amount `json:"donationsLastQuarter"`
	FixedAssetsPurchased Amount `json:"fixedAssetsPurchased"`
	PersonalDrawings     Amount `json:"personalDrawings"`

	// Current liabilities
	TradeCreditors     Amount `json:"tradeCreditors"`
	FinancialLoans     Amount `json:"financialLoans"`
	AccruedExpenses    Amount `json:"accruedExpenses"`
	IncomeTaxProvision Amount `json:"incomeTaxProvision"`
	Overdraft          Amount `json:"overdraft"`
	DirectorsFees      Amount `json:"directorsFees"`

	MuslimOwnershipPercentage Amount `json:"muslimOwnershipPercentage"`
	RecordState
}

func (r *BusinessRecord) Class() AssetClass      { return AssetBusiness }
func (r *BusinessRecord) Accept(v RecordVisitor) { v.VisitBusiness(r) }

// CurrentAssets sums the eleven current-asset lines.
func (r *BusinessRecord) CurrentAssets() float64 {
	return sumAmounts(r.BankBalance, r.CashInHand, r.FixedDeposit, r.PrepaidExpenses,
		r.ClosingStocks, r.TradeStocks, r.TradeDebtors, r.LoanReceivable,
		r.StaffWelfareFund, r.StaffLoan, r.OtherDeposits)
}

func (r *BusinessRecord) AdjustmentsToRemove() float64 {
	return sumAmounts(r.BankInterestReceived, r.LatePaymentInterest, r.UtilitiesDeposit,
		r.BadDebts, r.ObsoleteStocks)
}

func (r *BusinessRecord) AdjustmentsToAdd() float64 {
	return sumAmounts(r.DonationsLastQuarter, r.FixedAssetsPurchased, r.PersonalDrawings)
}

func (r *BusinessRecord) CurrentLiabilities() float64 {
	return sumAmounts(r.TradeCreditors, r.FinancialLoans, r.AccruedExpenses,
		r.IncomeTaxProvision, r.Overdraft, r.DirectorsFees)
}

func sumAmounts(amounts ...Amount) float64 {
	var total float64
	for _, a := range amounts {
		total += a.Float()
	}
	return total
}
