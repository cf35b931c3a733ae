package services

import (
	"context"
	"errors"
	"time"

	"github.com/mdnaeem95/purifai-mobile/src/models"
)

// Define common service errors
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrCannotRemoveSelf    = errors.New("the self member cannot be removed")
	ErrInvalidRelationship = errors.New("invalid relationship")
)

// Clock returns the current time; tests pass a fixed one.
type Clock func() time.Time

// RecordRepository persists one record set per member.
type RecordRepository interface {
	// Load returns nil, nil when the member has no saved records.
	Load(ctx context.Context, memberID string) (*models.RecordSet, error)
	Save(ctx context.Context, memberID string, set *models.RecordSet) error
	Delete(ctx context.Context, memberID string) error
}

// MemberRepository persists the household directory.
type MemberRepository interface {
	List(ctx context.Context) ([]models.ZakatMember, error)
	// Get returns nil, nil when no member has id.
	Get(ctx context.Context, id string) (*models.ZakatMember, error)
	Create(ctx context.Context, m models.ZakatMember) error
	Update(ctx context.Context, m models.ZakatMember) error
	Delete(ctx context.Context, id string) error
	ActiveMemberID(ctx context.Context) (string, error)
	SetActiveMemberID(ctx context.Context, id string) error
}

// NisabRepository persists admin updates of the nisab reference.
type NisabRepository interface {
	// Load returns nil, nil when no update was ever saved.
	Load(ctx context.Context) (*models.NisabReference, error)
	Save(ctx context.Context, n models.NisabReference) error
}

// NisabService holds the thresholds shared by every calculation.
type NisabService interface {
	GetThresholds() models.NisabReference
	// UpdateNisab overwrites all three values and stamps today's date.
	UpdateNisab(ctx context.Context, monetary, goldWeight, goldPrice float64) (models.NisabReference, error)
}

// CalculatorService computes and saves records for an explicit member.
type CalculatorService interface {
	GetRecords(ctx context.Context, memberID string) (*models.RecordSet, error)
	// Preview computes a record without saving it.
	Preview(ctx context.Context, memberID string, rec models.AssetRecord) (models.CalculationSummary, error)
	// Save recomputes the record, caches its zakat on it and persists it.
	Save(ctx context.Context, memberID string, rec models.AssetRecord) (models.CalculationSummary, error)
	Clear(ctx context.Context, memberID string, class models.AssetClass) error
	ResetAll(ctx context.Context, memberID string) error
	TotalZakat(ctx context.Context, memberID string) (float64, error)
	PaymentSummary(ctx context.Context, memberID string) (*models.PaymentSummary, error)
}

// FamilyService manages household members and the active member.
type FamilyService interface {
	EnsureSelf(ctx context.Context, name string) (*models.ZakatMember, error)
	ListMembers(ctx context.Context) ([]models.ZakatMember, error)
	GetMember(ctx context.Context, id string) (*models.ZakatMember, error)
	AddMember(ctx context.Context, name string, relationship models.Relationship) (*models.ZakatMember, error)
	RenameMember(ctx context.Context, id, name string) (*models.ZakatMember, error)
	UpdateRelationship(ctx context.Context, id string, relationship models.Relationship) (*models.ZakatMember, error)
	RemoveMember(ctx context.Context, id string) error
	SwitchMember(ctx context.Context, id string) error
	ActiveMember(ctx context.Context) (*models.ZakatMember, error)
}

// PortfolioService builds the portfolio views.
type PortfolioService interface {
	MemberPortfolio(ctx context.Context, memberID string) ([]models.PortfolioItem, error)
	FamilyPortfolio(ctx context.Context) ([]models.FamilyPortfolioItem, error)
}
