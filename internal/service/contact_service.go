package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/brewandbake/internal/auth"
	"github.com/mmynk/brewandbake/internal/metrics"
	"github.com/mmynk/brewandbake/internal/models"
	"github.com/mmynk/brewandbake/internal/storage"
	"github.com/mmynk/brewandbake/pkg/api"
)

// ContactAcknowledgement is how long the contact form shows its thank-you message.
const ContactAcknowledgement = 3 * time.Second

const acknowledgementText = "Thank you for your message! We'll get back to you soon."

var ErrSubscriptionNotFound = errors.New("subscription not found")

// ContactService implements the Connect ContactService.
type ContactService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewContactService creates a new ContactService with the given storage backend. m may be nil.
func NewContactService(store storage.Store, m *metrics.Metrics) *ContactService {
	return &ContactService{store: store, metrics: m}
}

var _ api.ContactServiceHandler = (*ContactService)(nil)

// SubmitContact stores a contact form message.
func (s *ContactService) SubmitContact(ctx context.Context, req *connect.Request[api.SubmitContactRequest]) (*connect.Response[api.SubmitContactResponse], error) {
	slog.Info("SubmitContact request received", "subject", req.Msg.Subject)

	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Msg.Name),
		Email:   strings.TrimSpace(req.Msg.Email),
		Subject: strings.TrimSpace(req.Msg.Subject),
		Message: strings.TrimSpace(req.Msg.Message),
	}
	if err := requireFields(map[string]string{
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
		"message": msg.Message,
	}); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateContactMessage(ctx, msg); err != nil {
		slog.Error("SubmitContact failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.RecordInquiry("contact")

	slog.Info("Contact message stored", "message_id", msg.ID)

	return connect.NewResponse(&api.SubmitContactResponse{
		ID:                  msg.ID,
		AcknowledgeMillis:   ContactAcknowledgement.Milliseconds(),
		AcknowledgementText: acknowledgementText,
	}), nil
}

// Subscribe adds an email to the newsletter. Subscribing again replaces the
// unsubscribe token.
func (s *ContactService) Subscribe(ctx context.Context, req *connect.Request[api.SubscribeRequest]) (*connect.Response[api.SubscribeResponse], error) {
	email := strings.TrimSpace(req.Msg.Email)
	if err := requireFields(map[string]string{"email": email}); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	token := auth.NewSecret()
	hash, err := auth.HashSecret(token)
	if err != nil {
		slog.Error("Failed to hash unsubscribe token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	sub := &models.Subscription{Email: email, TokenHash: hash}
	created, err := s.store.UpsertSubscription(ctx, sub)
	if err != nil {
		slog.Error("Subscribe failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if created {
		s.metrics.RecordInquiry("subscribe")
	} else {
		s.metrics.RecordInquiry("resubscribe")
	}

	slog.Info("Newsletter subscription stored", "subscription_id", sub.ID, "created", created)

	return connect.NewResponse(&api.SubscribeResponse{
		Email:             sub.Email,
		UnsubscribeToken:  token,
		AlreadySubscribed: !created,
	}), nil
}

// Unsubscribe removes an email from the newsletter when the token matches.
func (s *ContactService) Unsubscribe(ctx context.Context, req *connect.Request[api.UnsubscribeRequest]) (*connect.Response[api.UnsubscribeResponse], error) {
	if err := requireFields(map[string]string{"email": req.Msg.Email, "token": req.Msg.Token}); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	sub, err := s.store.GetSubscription(ctx, req.Msg.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, ErrSubscriptionNotFound)
	}
	if err != nil {
		slog.Error("Unsubscribe lookup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if err := auth.CompareSecret(sub.TokenHash, req.Msg.Token); err != nil {
		slog.Warn("Unsubscribe token mismatch", "subscription_id", sub.ID)
		return nil, connect.NewError(connect.CodePermissionDenied, err)
	}

	if err := s.store.DeleteSubscription(ctx, sub.Email); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, ErrSubscriptionNotFound)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.RecordInquiry("unsubscribe")

	slog.Info("Newsletter subscription removed", "subscription_id", sub.ID)

	return connect.NewResponse(&api.UnsubscribeResponse{}), nil
}

// requireFields lists every blank field, sorted by name.
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
}
