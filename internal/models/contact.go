package models

// ContactMessage is a message left through the contact page form.
type ContactMessage struct {
	// ID is the unique identifier for the message (UUID format).
	ID string

	// Name is the sender's name as typed into the form.
	Name string

	// Email is the address to reply to.
	Email string

	// Subject is the one-line topic of the message.
	Subject string

	// Message is the body text.
	Message string

	// CreatedAt is the Unix timestamp when the message was received.
	CreatedAt int64
}
