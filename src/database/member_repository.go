package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mdnaeem95/purifai-mobile/src/models"
)

// MemberRepository persists the household's members and its active member.
type MemberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// List returns members in the order they were added.
func (r *MemberRepository) List(ctx context.Context) ([]models.ZakatMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, relationship, created_at FROM members ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	members := []models.ZakatMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// Get returns nil, nil when no member has id.
func (r *MemberRepository) Get(ctx context.Context, id string) (*models.ZakatMember, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, relationship, created_at FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) Create(ctx context.Context, m models.ZakatMember) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO members (id, name, relationship, created_at) VALUES (?, ?, ?, ?)`,
		m.ID, m.Name, string(m.Relationship), m.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("creating member %s: %w", m.ID, err)
	}
	return nil
}

// Update writes the member's name and relationship.
func (r *MemberRepository) Update(ctx context.Context, m models.ZakatMember) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE members SET name = ?, relationship = ? WHERE id = ?`,
		m.Name, string(m.Relationship), m.ID)
	if err != nil {
		return fmt.Errorf("updating member %s: %w", m.ID, err)
	}
	return nil
}

// Delete removes the member; its records go with it.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting member %s: %w", id, err)
	}
	return nil
}

// ActiveMemberID returns "" when none was chosen yet.
func (r *MemberRepository) ActiveMemberID(ctx context.Context) (string, error) {
	var id sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT active_member_id FROM household WHERE id = 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading active member: %w", err)
	}
	return id.String, nil
}

func (r *MemberRepository) SetActiveMemberID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO household (id, active_member_id) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET active_member_id = excluded.active_member_id`, id)
	if err != nil {
		return fmt.Errorf("setting active member %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (models.ZakatMember, error) {
	var (
		m            models.ZakatMember
		relationship string
		createdAt    string
	)
	if err := row.Scan(&m.ID, &m.Name, &relationship, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m, err
		}
		return m, fmt.Errorf("scanning member: %w", err)
	}
	m.Relationship = models.Relationship(relationship)
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return m, fmt.Errorf("parsing created_at of member %s: %w", m.ID, err)
	}
	m.CreatedAt = t
	return m, nil
}
