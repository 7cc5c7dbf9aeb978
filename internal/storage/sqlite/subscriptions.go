package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/brewandbake/internal/models"
	"github.com/mmynk/brewandbake/internal/storage"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UpsertSubscription inserts a subscription or rotates the token hash of an existing one.
func (s *SQLiteStore) UpsertSubscription(ctx context.Context, sub *models.Subscription) (bool, error) {
	sub.Email = normalizeEmail(sub.Email)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID string
	var existingCreatedAt int64
	err = tx.QueryRowContext(ctx,
		"SELECT id, created_at FROM subscriptions WHERE email = ?",
		sub.Email,
	).Scan(&existingID, &existingCreatedAt)

	created := false
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if sub.ID == "" {
			sub.ID = uuid.New().String()
		}
		if sub.CreatedAt == 0 {
			sub.CreatedAt = time.Now().Unix()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO subscriptions (id, email, token_hash, created_at) VALUES (?, ?, ?, ?)",
			sub.ID, sub.Email, sub.TokenHash, sub.CreatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert subscription: %w", err)
		}
		created = true
	case err != nil:
		return false, fmt.Errorf("failed to check subscription: %w", err)
	default:
		_, err = tx.ExecContext(ctx,
			"UPDATE subscriptions SET token_hash = ? WHERE id = ?",
			sub.TokenHash, existingID,
		)
		if err != nil {
			return false, fmt.Errorf("failed to update subscription: %w", err)
		}
		sub.ID = existingID
		sub.CreatedAt = existingCreatedAt
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetSubscription retrieves a subscription by email.
func (s *SQLiteStore) GetSubscription(ctx context.Context, email string) (*models.Subscription, error) {
	sub := &models.Subscription{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, token_hash, created_at FROM subscriptions WHERE email = ?",
		normalizeEmail(email),
	).Scan(&sub.ID, &sub.Email, &sub.TokenHash, &sub.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subscription %w: %s", storage.ErrNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return sub, nil
}

// DeleteSubscription removes a subscription by email.
func (s *SQLiteStore) DeleteSubscription(ctx context.Context, email string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE email = ?", normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("subscription %w: %s", storage.ErrNotFound, email)
	}

	return nil
}
