// Package models defines the records the storefront persists.
//
// Only customer inquiries are stored:
//   - ContactMessage: a message sent through the contact form
//   - Subscription: a newsletter signup
//
// Carts and checkout state are deliberately absent. They live in the in-memory
// page session (see package session) and disappear with it.
package models
