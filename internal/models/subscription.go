package models

// Subscription is a newsletter signup.
type Subscription struct {
	// ID is the unique identifier for the subscription (UUID format).
	ID string

	// Email is the subscribed address, stored lower-cased. It is unique.
	Email string

	// TokenHash is the bcrypt hash of the unsubscribe token.
	// The token itself is only ever returned to the subscriber.
	TokenHash string

	// CreatedAt is the Unix timestamp of the first signup.
	CreatedAt int64
}
