package processors

import (
	"sort"

	"github.com/mdnaeem95/purifai-mobile/src/models"
)

type portfolioProcessorImpl struct{}

func NewPortfolioProcessor() PortfolioProcessor {
	return &portfolioProcessorImpl{}
}

// assetValue re-derives a record's value through valuation and the exemption
// filter. Records the user never saved are worth nothing here.
func assetValue(rec models.AssetRecord) (float64, bool) {
	if !models.StateOf(rec).Calculated {
		return 0, false
	}
	v := Valuate(rec).TotalAssets
	return v, v > 0
}

func newPortfolioItem(class models.AssetClass) models.PortfolioItem {
	meta := Meta(class)
	return models.PortfolioItem{Type: class, Name: meta.Name, Icon: meta.Icon, Color: meta.Color}
}

// Portfolio is the single-member view, largest asset first.
func (p *portfolioProcessorImpl) Portfolio(set *models.RecordSet) []models.PortfolioItem {
	items := []models.PortfolioItem{}
	for _, rec := range set.Records() {
		value, ok := assetValue(rec)
		if !ok {
			continue
		}
		item := newPortfolioItem(rec.Class())
		item.AssetValue = value
		item.ZakatAmount = models.StateOf(rec).ZakatAmount.Float()
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].AssetValue > items[j].AssetValue })
	return items
}

// Aggregate sums each asset class across members, in member order, keeping
// each member's contribution. Members without records are skipped.
func (p *portfolioProcessorImpl) Aggregate(members []models.ZakatMember, recordsByMember map[string]*models.RecordSet) []models.FamilyPortfolioItem {
	byClass := make(map[models.AssetClass]*models.FamilyPortfolioItem)

	for _, member := range members {
		set := recordsByMember[member.ID]
		if set == nil {
			continue
		}
		for _, rec := range set.Records() {
			value, ok := assetValue(rec)
			if !ok {
				continue
			}
			zakat := models.StateOf(rec).ZakatAmount.Float()

			item, exists := byClass[rec.Class()]
			if !exists {
				item = &models.FamilyPortfolioItem{PortfolioItem: newPortfolioItem(rec.Class())}
				byClass[rec.Class()] = item
			}
			item.AssetValue += value
			item.ZakatAmount += zakat
			item.MemberContributions = append(item.MemberContributions, models.MemberContribution{
				MemberID:    member.ID,
				MemberName:  member.Name,
				AssetValue:  value,
				ZakatAmount: zakat,
			})
		}
	}

	items := []models.FamilyPortfolioItem{}
	for _, class := range models.AssetClasses {
		if item, ok := byClass[class]; ok {
			items = append(items, *item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].AssetValue > items[j].AssetValue })
	return items
}
