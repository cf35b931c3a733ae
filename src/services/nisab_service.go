package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/models"
)

type nisabServiceImpl struct {
	mu    sync.RWMutex
	nisab models.NisabReference
	repo  NisabRepository
	now   Clock
}

// NewNisabService starts from the configured reference unless an admin
// update was persisted earlier.
func NewNisabService(ctx context.Context, initial models.NisabReference, repo NisabRepository, now Clock) (NisabService, error) {
	s := &nisabServiceImpl{nisab: initial, repo: repo, now: now}

	saved, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		s.nisab = *saved
		logger.L.Info("Using persisted nisab reference", "monetary", saved.MonetaryThreshold, "updatedDate", saved.UpdatedDate)
	}
	return s, nil
}

func (s *nisabServiceImpl) GetThresholds() models.NisabReference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nisab
}

func (s *nisabServiceImpl) UpdateNisab(ctx context.Context, monetary, goldWeight, goldPrice float64) (models.NisabReference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.nisab
	updated.MonetaryThreshold = monetary
	updated.GoldWeightThreshold = goldWeight
	updated.GoldPricePerGram = goldPrice
	updated.UpdatedDate = s.now().Format("2006-01-02")

	if err := s.repo.Save(ctx, updated); err != nil {
		return s.nisab, fmt.Errorf("updating nisab: %w", err)
	}
	s.nisab = updated

	logger.FromContext(ctx).Info("Nisab reference updated",
		"monetary", monetary, "goldWeight", goldWeight, "goldPrice", goldPrice, "updatedDate", updated.UpdatedDate)
	return updated, nil
}
