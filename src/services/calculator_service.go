package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/mdnaeem95/purifai-mobile/src/processors"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
)

type calculatorServiceImpl struct {
	records  RecordRepository
	members  MemberRepository
	nisab    NisabService
	zakat    processors.ZakatProcessor
	currency string

	// A member's records are stored as one set, so writes to it are
	// serialised per member.
	locks memberLocks
}

type memberLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock blocks until memberID's lock is held and returns its unlock.
func (l *memberLocks) lock(memberID string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[memberID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[memberID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func NewCalculatorService(
	records RecordRepository,
	members MemberRepository,
	nisab NisabService,
	zakat processors.ZakatProcessor,
	currency string,
) CalculatorService {
	return &calculatorServiceImpl{
		records:  records,
		members:  members,
		nisab:    nisab,
		zakat:    zakat,
		currency: currency,
	}
}

func requireMember(ctx context.Context, members MemberRepository, memberID string) (*models.ZakatMember, error) {
	m, err := members.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}
	return m, nil
}

// loadRecords returns an empty set for members who never saved anything.
func (s *calculatorServiceImpl) loadRecords(ctx context.Context, memberID string) (*models.RecordSet, error) {
	if _, err := requireMember(ctx, s.members, memberID); err != nil {
		return nil, err
	}
	set, err := s.records.Load(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		set = &models.RecordSet{}
	}
	return set, nil
}

func (s *calculatorServiceImpl) GetRecords(ctx context.Context, memberID string) (*models.RecordSet, error) {
	return s.loadRecords(ctx, memberID)
}

func (s *calculatorServiceImpl) Preview(ctx context.Context, memberID string, rec models.AssetRecord) (models.CalculationSummary, error) {
	if _, err := requireMember(ctx, s.members, memberID); err != nil {
		return models.CalculationSummary{}, err
	}
	return s.zakat.Calculate(rec, s.nisab.GetThresholds()), nil
}

func (s *calculatorServiceImpl) Save(ctx context.Context, memberID string, rec models.AssetRecord) (models.CalculationSummary, error) {
	defer s.locks.lock(memberID)()

	set, err := s.loadRecords(ctx, memberID)
	if err != nil {
		return models.CalculationSummary{}, err
	}

	summary := s.zakat.Apply(rec, s.nisab.GetThresholds())
	set.Set(rec)

	if err := s.records.Save(ctx, memberID, set); err != nil {
		return models.CalculationSummary{}, err
	}

	logger.FromContext(ctx).Info("Calculator saved",
		"memberID", memberID, "assetClass", rec.Class(), "zakatDue", summary.ZakatDue, "aboveNisab", summary.IsAboveNisab)
	return summary, nil
}

func (s *calculatorServiceImpl) Clear(ctx context.Context, memberID string, class models.AssetClass) error {
	defer s.locks.lock(memberID)()

	set, err := s.loadRecords(ctx, memberID)
	if err != nil {
		return err
	}
	if set.Get(class) == nil {
		return nil
	}
	set.Clear(class)
	if err := s.records.Save(ctx, memberID, set); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Calculator cleared", "memberID", memberID, "assetClass", class)
	return nil
}

func (s *calculatorServiceImpl) ResetAll(ctx context.Context, memberID string) error {
	defer s.locks.lock(memberID)()

	if _, err := requireMember(ctx, s.members, memberID); err != nil {
		return err
	}
	if err := s.records.Delete(ctx, memberID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("All calculators reset", "memberID", memberID)
	return nil
}

func (s *calculatorServiceImpl) TotalZakat(ctx context.Context, memberID string) (float64, error) {
	set, err := s.loadRecords(ctx, memberID)
	if err != nil {
		return 0, err
	}
	return s.zakat.TotalZakat(set), nil
}

// PaymentSummary lists the saved calculators with zakat due; the payment
// flow allocates the total from here.
func (s *calculatorServiceImpl) PaymentSummary(ctx context.Context, memberID string) (*models.PaymentSummary, error) {
	set, err := s.loadRecords(ctx, memberID)
	if err != nil {
		return nil, err
	}

	summary := &models.PaymentSummary{
		MemberID:  memberID,
		Breakdown: []models.PaymentBreakdown{},
	}
	for _, rec := range set.Records() {
		st := models.StateOf(rec)
		if !st.Calculated || st.ZakatAmount.Float() <= 0 {
			continue
		}
		amount := st.ZakatAmount.Float()
		summary.Breakdown = append(summary.Breakdown, models.PaymentBreakdown{
			AssetClass:  rec.Class(),
			Name:        processors.Meta(rec.Class()).Name,
			ZakatAmount: amount,
			Formatted:   utils.FormatCurrency(amount, s.currency),
		})
	}
	summary.TotalZakatDue = s.zakat.TotalZakat(set)
	summary.Formatted = utils.FormatCurrency(summary.TotalZakatDue, s.currency)
	return summary, nil
}
