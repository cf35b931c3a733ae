package services

import (
	"context"

	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/mdnaeem95/purifai-mobile/src/processors"
)

type portfolioServiceImpl struct {
	records   RecordRepository
	members   MemberRepository
	portfolio processors.PortfolioProcessor
}

func NewPortfolioService(records RecordRepository, members MemberRepository, portfolio processors.PortfolioProcessor) PortfolioService {
	return &portfolioServiceImpl{records: records, members: members, portfolio: portfolio}
}

func (s *portfolioServiceImpl) MemberPortfolio(ctx context.Context, memberID string) ([]models.PortfolioItem, error) {
	if _, err := requireMember(ctx, s.members, memberID); err != nil {
		return nil, err
	}
	set, err := s.records.Load(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.portfolio.Portfolio(set), nil
}

func (s *portfolioServiceImpl) FamilyPortfolio(ctx context.Context) ([]models.FamilyPortfolioItem, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}

	recordsByMember := make(map[string]*models.RecordSet, len(members))
	for _, m := range members {
		set, err := s.records.Load(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		if set != nil {
			recordsByMember[m.ID] = set
		}
	}
	return s.portfolio.Aggregate(members, recordsByMember), nil
}
