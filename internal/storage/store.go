// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/brewandbake/internal/models"
)

// ErrNotFound is wrapped by stores when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for inquiry storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateContactMessage persists a contact form message.
	// The ID and CreatedAt fields are populated by the store when empty.
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error

	// UpsertSubscription stores a newsletter signup. When the email is already
	// subscribed only the token hash is replaced and created is false.
	// The ID and CreatedAt fields are populated from the stored row.
	UpsertSubscription(ctx context.Context, sub *models.Subscription) (created bool, err error)

	// GetSubscription retrieves a subscription by email.
	// Returns an error wrapping ErrNotFound if there is none.
	GetSubscription(ctx context.Context, email string) (*models.Subscription, error)

	// DeleteSubscription removes a subscription by email.
	// Returns an error wrapping ErrNotFound if there is none.
	DeleteSubscription(ctx context.Context, email string) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
