package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mdnaeem95/purifai-mobile/src/models"
)

// RecordRepository stores each member's record set as one JSON document.
type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Load returns nil, nil when the member has never saved a record.
func (r *RecordRepository) Load(ctx context.Context, memberID string) (*models.RecordSet, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM member_records WHERE member_id = ?`, memberID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading records for member %s: %w", memberID, err)
	}

	var set models.RecordSet
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		return nil, fmt.Errorf("decoding records for member %s: %w", memberID, err)
	}
	return &set, nil
}

func (r *RecordRepository) Save(ctx context.Context, memberID string, set *models.RecordSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encoding records for member %s: %w", memberID, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO member_records (member_id, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (member_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		memberID, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("saving records for member %s: %w", memberID, err)
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, memberID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM member_records WHERE member_id = ?`, memberID); err != nil {
		return fmt.Errorf("deleting records for member %s: %w", memberID, err)
	}
	return nil
}
