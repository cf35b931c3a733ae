package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mdnaeem95/purifai-mobile/src/models"
)

// NisabRepository keeps the last admin-updated nisab reference.
type NisabRepository struct {
	db *sql.DB
}

func NewNisabRepository(db *sql.DB) *NisabRepository {
	return &NisabRepository{db: db}
}

// Load returns nil, nil when the nisab was never updated.
func (r *NisabRepository) Load(ctx context.Context) (*models.NisabReference, error) {
	var n models.NisabReference
	err := r.db.QueryRowContext(ctx, `
		SELECT monetary_threshold, gold_weight_threshold, gold_price_per_gram, updated_date, currency
		FROM nisab_reference WHERE id = 1`).
		Scan(&n.MonetaryThreshold, &n.GoldWeightThreshold, &n.GoldPricePerGram, &n.UpdatedDate, &n.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading nisab reference: %w", err)
	}
	return &n, nil
}

func (r *NisabRepository) Save(ctx context.Context, n models.NisabReference) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO nisab_reference (id, monetary_threshold, gold_weight_threshold, gold_price_per_gram, updated_date, currency)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			monetary_threshold = excluded.monetary_threshold,
			gold_weight_threshold = excluded.gold_weight_threshold,
			gold_price_per_gram = excluded.gold_price_per_gram,
			updated_date = excluded.updated_date,
			currency = excluded.currency`,
		n.MonetaryThreshold, n.GoldWeightThreshold, n.GoldPricePerGram, n.UpdatedDate, n.Currency)
	if err != nil {
		return fmt.Errorf("saving nisab reference: %w", err)
	}
	return nil
}
