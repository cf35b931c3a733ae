package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/mdnaeem95/purifai-mobile/src/security/validation"
	"github.com/samber/lo"
)

type familyServiceImpl struct {
	members MemberRepository
	records RecordRepository
	now     Clock
}

func NewFamilyService(members MemberRepository, records RecordRepository, now Clock) FamilyService {
	return &familyServiceImpl{members: members, records: records, now: now}
}

func (s *familyServiceImpl) findSelf(ctx context.Context) (*models.ZakatMember, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	self, ok := lo.Find(members, func(m models.ZakatMember) bool { return m.IsSelf() })
	if !ok {
		return nil, nil
	}
	return &self, nil
}

// EnsureSelf creates the household owner on first start and makes it the
// active member when none is set.
func (s *familyServiceImpl) EnsureSelf(ctx context.Context, name string) (*models.ZakatMember, error) {
	self, err := s.findSelf(ctx)
	if err != nil {
		return nil, err
	}
	if self == nil {
		cleanName, err := validation.ValidateMemberName(name)
		if err != nil {
			return nil, err
		}
		self = &models.ZakatMember{
			ID:           uuid.NewString(),
			Name:         cleanName,
			Relationship: models.RelationshipSelf,
			CreatedAt:    s.now().UTC(),
		}
		if err := s.members.Create(ctx, *self); err != nil {
			return nil, err
		}
		logger.FromContext(ctx).Info("Self member created", "memberID", self.ID)
	}

	active, err := s.members.ActiveMemberID(ctx)
	if err != nil {
		return nil, err
	}
	if active == "" {
		if err := s.members.SetActiveMemberID(ctx, self.ID); err != nil {
			return nil, err
		}
	}
	return self, nil
}

func (s *familyServiceImpl) ListMembers(ctx context.Context) ([]models.ZakatMember, error) {
	return s.members.List(ctx)
}

func (s *familyServiceImpl) GetMember(ctx context.Context, id string) (*models.ZakatMember, error) {
	return requireMember(ctx, s.members, id)
}

func (s *familyServiceImpl) AddMember(ctx context.Context, name string, relationship models.Relationship) (*models.ZakatMember, error) {
	cleanName, err := validation.ValidateMemberName(name)
	if err != nil {
		return nil, err
	}
	if err := checkRelationship(relationship); err != nil {
		return nil, err
	}

	m := models.ZakatMember{
		ID:           uuid.NewString(),
		Name:         cleanName,
		Relationship: relationship,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Family member added", "memberID", m.ID, "relationship", relationship)
	return &m, nil
}

func (s *familyServiceImpl) RenameMember(ctx context.Context, id, name string) (*models.ZakatMember, error) {
	cleanName, err := validation.ValidateMemberName(name)
	if err != nil {
		return nil, err
	}
	m, err := requireMember(ctx, s.members, id)
	if err != nil {
		return nil, err
	}
	m.Name = cleanName
	if err := s.members.Update(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateRelationship cannot move a member into or out of the self role.
func (s *familyServiceImpl) UpdateRelationship(ctx context.Context, id string, relationship models.Relationship) (*models.ZakatMember, error) {
	if err := checkRelationship(relationship); err != nil {
		return nil, err
	}
	m, err := requireMember(ctx, s.members, id)
	if err != nil {
		return nil, err
	}
	if m.IsSelf() {
		return nil, fmt.Errorf("%w: the self member's relationship is fixed", ErrInvalidRelationship)
	}
	m.Relationship = relationship
	if err := s.members.Update(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

// RemoveMember deletes a member and its records. Removing the active member
// makes the self member active again.
func (s *familyServiceImpl) RemoveMember(ctx context.Context, id string) error {
	m, err := requireMember(ctx, s.members, id)
	if err != nil {
		return err
	}
	if m.IsSelf() {
		return ErrCannotRemoveSelf
	}

	active, err := s.members.ActiveMemberID(ctx)
	if err != nil {
		return err
	}
	if active == id {
		self, err := s.findSelf(ctx)
		if err != nil {
			return err
		}
		if self != nil {
			if err := s.members.SetActiveMemberID(ctx, self.ID); err != nil {
				return err
			}
		}
	}

	if err := s.records.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.members.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Family member removed", "memberID", id)
	return nil
}

func (s *familyServiceImpl) SwitchMember(ctx context.Context, id string) error {
	if _, err := requireMember(ctx, s.members, id); err != nil {
		return err
	}
	return s.members.SetActiveMemberID(ctx, id)
}

// ActiveMember falls back to the self member when none was chosen.
func (s *familyServiceImpl) ActiveMember(ctx context.Context) (*models.ZakatMember, error) {
	active, err := s.members.ActiveMemberID(ctx)
	if err != nil {
		return nil, err
	}
	if active != "" {
		m, err := s.members.Get(ctx, active)
		if err != nil || m != nil {
			return m, err
		}
	}
	self, err := s.findSelf(ctx)
	if err != nil {
		return nil, err
	}
	if self == nil {
		return nil, ErrMemberNotFound
	}
	return self, nil
}

// Only one member may hold the self relationship, and it is created by
// EnsureSelf.
func checkRelationship(r models.Relationship) error {
	if r == models.RelationshipSelf || !lo.Contains(models.Relationships, r) {
		return fmt.Errorf("%w: %q", ErrInvalidRelationship, string(r))
	}
	return nil
}
