package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/brewandbake/internal/auth"
	"github.com/mmynk/brewandbake/internal/calculator"
	"github.com/mmynk/brewandbake/internal/checkout"
	"github.com/mmynk/brewandbake/internal/metrics"
	"github.com/mmynk/brewandbake/internal/middleware"
	"github.com/mmynk/brewandbake/internal/session"
	"github.com/mmynk/brewandbake/pkg/api"
)

// OrderService implements the Connect OrderService. Every call except
// StartOrder acts on the session named by the caller's token.
type OrderService struct {
	sessions *session.Store
	tokens   *auth.TokenManager
	metrics  *metrics.Metrics
}

// NewOrderService creates a new OrderService. m may be nil.
func NewOrderService(sessions *session.Store, tokens *auth.TokenManager, m *metrics.Metrics) *OrderService {
	return &OrderService{sessions: sessions, tokens: tokens, metrics: m}
}

var _ api.OrderServiceHandler = (*OrderService)(nil)

// PublicOrderProcedures can be called without a session token.
var PublicOrderProcedures = []string{api.OrderServiceStartOrderProcedure}

// StartOrder opens a page session with a seeded cart and returns its token.
func (s *OrderService) StartOrder(ctx context.Context, req *connect.Request[api.StartOrderRequest]) (*connect.Response[api.StartOrderResponse], error) {
	slog.Info("StartOrder request received",
		"items_count", len(req.Msg.Items),
		"empty", req.Msg.Empty,
	)

	seed := session.DefaultSeed()
	switch {
	case len(req.Msg.Items) > 0:
		seed = make([]session.SeedLine, len(req.Msg.Items))
		for i, item := range req.Msg.Items {
			if item.Quantity <= 0 {
				return nil, connect.NewError(connect.CodeInvalidArgument,
					fmt.Errorf("quantity for item %d must be positive, got %d", item.ItemID, item.Quantity))
			}
			seed[i] = session.SeedLine{ItemID: item.ItemID, Quantity: item.Quantity}
		}
	case req.Msg.Empty:
		seed = nil
	}

	snap, err := s.sessions.Create(seed)
	if err != nil {
		slog.Error("StartOrder failed", "error", err)
		return nil, toConnectError(err)
	}

	token, err := s.tokens.Generate(snap.ID)
	if err != nil {
		slog.Error("Failed to issue session token", "session_id", snap.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Order session started", "session_id", snap.ID, "lines", len(snap.Lines))

	return connect.NewResponse(&api.StartOrderResponse{
		Token: token,
		Order: toAPIOrder(snap),
	}), nil
}

// GetOrder returns the current order.
func (s *OrderService) GetOrder(ctx context.Context, req *connect.Request[api.GetOrderRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.update(ctx, func(*session.Session) error { return nil })
}

// IncreaseQuantity adds one to a cart line. An item that is not in the cart
// is left alone and the order is returned unchanged.
func (s *OrderService) IncreaseQuantity(ctx context.Context, req *connect.Request[api.QuantityRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.changeQuantity(ctx, "increase", req.Msg.ItemID, (*calculator.Cart).Increase)
}

// DecreaseQuantity removes one from a cart line, dropping the line at zero.
// An item that is not in the cart is left alone.
func (s *OrderService) DecreaseQuantity(ctx context.Context, req *connect.Request[api.QuantityRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.changeQuantity(ctx, "decrease", req.Msg.ItemID, (*calculator.Cart).Decrease)
}

func (s *OrderService) changeQuantity(ctx context.Context, op string, itemID int, apply func(*calculator.Cart, int) bool) (*connect.Response[api.OrderResponse], error) {
	var found bool
	resp, err := s.update(ctx, func(sess *session.Session) error {
		found = apply(sess.Cart, itemID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCartMutation(op, found)
	if !found {
		slog.Warn("Cart line not found",
			"op", op,
			"item_id", itemID,
			"session_id", middleware.GetSessionID(ctx),
		)
	}

	return resp, nil
}

// NextStep advances the checkout. It does nothing on the payment step.
func (s *OrderService) NextStep(ctx context.Context, req *connect.Request[api.NextStepRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.transition(ctx, "next", func(w *checkout.Wizard) error {
		w.Next()
		return nil
	})
}

// PreviousStep goes back one step. It does nothing on the cart step.
func (s *OrderService) PreviousStep(ctx context.Context, req *connect.Request[api.PreviousStepRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.transition(ctx, "back", func(w *checkout.Wizard) error {
		w.Back()
		return nil
	})
}

// GoToStep jumps to a step already reached.
func (s *OrderService) GoToStep(ctx context.Context, req *connect.Request[api.GoToStepRequest]) (*connect.Response[api.OrderResponse], error) {
	step, err := checkout.ParseStep(req.Msg.Step)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return s.transition(ctx, "goto", func(w *checkout.Wizard) error {
		return w.GoTo(step)
	})
}

// SetDeliveryMethod selects pickup or delivery, which changes the delivery fee.
func (s *OrderService) SetDeliveryMethod(ctx context.Context, req *connect.Request[api.SetDeliveryMethodRequest]) (*connect.Response[api.OrderResponse], error) {
	method, err := calculator.ParseDeliveryMethod(req.Msg.Method)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return s.transition(ctx, "delivery_method", func(w *checkout.Wizard) error {
		w.SetDeliveryMethod(method, req.Msg.Address)
		return nil
	})
}

// SetPaymentMethod selects card or cash.
func (s *OrderService) SetPaymentMethod(ctx context.Context, req *connect.Request[api.SetPaymentMethodRequest]) (*connect.Response[api.OrderResponse], error) {
	method, err := checkout.ParsePaymentMethod(req.Msg.Method)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return s.transition(ctx, "payment_method", func(w *checkout.Wizard) error {
		w.SetPaymentMethod(method)
		return nil
	})
}

func (s *OrderService) transition(ctx context.Context, action string, fn func(*checkout.Wizard) error) (*connect.Response[api.OrderResponse], error) {
	var wizardErr error
	resp, err := s.update(ctx, func(sess *session.Session) error {
		wizardErr = fn(sess.Wizard)
		return wizardErr
	})
	if err == nil || wizardErr != nil {
		s.metrics.RecordWizardTransition(action, wizardErr)
	}
	return resp, err
}

// update applies fn to the caller's session and returns the resulting order.
func (s *OrderService) update(ctx context.Context, fn func(*session.Session) error) (*connect.Response[api.OrderResponse], error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	snap, err := s.sessions.Update(sessionID, fn)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.OrderResponse{Order: toAPIOrder(snap)}), nil
}

// toConnectError maps domain errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrUnknownItem):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, checkout.ErrForwardJump):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, checkout.ErrInvalidStep):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
