package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/brewandbake/pkg/api"
)

func TestSubmitContact(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := clients.contact.SubmitContact(context.Background(), connect.NewRequest(&api.SubmitContactRequest{
		Name:    "Emma R.",
		Email:   "emma@example.com",
		Subject: "Weekend hours",
		Message: "Are you open on Easter Sunday?",
	}))
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if resp.Msg.ID == "" {
		t.Error("expected a message ID")
	}
	if resp.Msg.AcknowledgeMillis != 3000 {
		t.Errorf("acknowledgement: expected 3000ms, got %d", resp.Msg.AcknowledgeMillis)
	}
}

func TestSubmitContact_MissingFields(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.SubmitContactRequest
	}{
		{name: "empty form", req: &api.SubmitContactRequest{}},
		{name: "blank name", req: &api.SubmitContactRequest{Name: "   ", Email: "a@b.c", Subject: "s", Message: "m"}},
		{name: "missing message", req: &api.SubmitContactRequest{Name: "n", Email: "a@b.c", Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clients.contact.SubmitContact(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	first, err := clients.contact.Subscribe(ctx, connect.NewRequest(&api.SubscribeRequest{Email: "Olivia@Example.com"}))
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if first.Msg.AlreadySubscribed {
		t.Error("first signup should not be flagged as already subscribed")
	}
	if first.Msg.Email != "olivia@example.com" {
		t.Errorf("email: expected lower-cased address, got %s", first.Msg.Email)
	}

	second, err := clients.contact.Subscribe(ctx, connect.NewRequest(&api.SubscribeRequest{Email: "olivia@example.com"}))
	if err != nil {
		t.Fatalf("second Subscribe failed: %v", err)
	}
	if !second.Msg.AlreadySubscribed {
		t.Error("second signup should be flagged as already subscribed")
	}
	if second.Msg.UnsubscribeToken == first.Msg.UnsubscribeToken {
		t.Error("expected the unsubscribe token to rotate")
	}

	// The old token no longer works
	_, err = clients.contact.Unsubscribe(ctx, connect.NewRequest(&api.UnsubscribeRequest{
		Email: "olivia@example.com",
		Token: first.Msg.UnsubscribeToken,
	}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = clients.contact.Unsubscribe(ctx, connect.NewRequest(&api.UnsubscribeRequest{
		Email: "olivia@example.com",
		Token: second.Msg.UnsubscribeToken,
	}))
	if err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}

	_, err = clients.contact.Unsubscribe(ctx, connect.NewRequest(&api.UnsubscribeRequest{
		Email: "olivia@example.com",
		Token: second.Msg.UnsubscribeToken,
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestSubscribe_RequiresEmail(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := clients.contact.Subscribe(context.Background(), connect.NewRequest(&api.SubscribeRequest{Email: " "}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
