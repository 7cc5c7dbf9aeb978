package service

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/brewandbake/internal/auth"
	"github.com/mmynk/brewandbake/internal/metrics"
	"github.com/mmynk/brewandbake/internal/middleware"
	"github.com/mmynk/brewandbake/internal/session"
	"github.com/mmynk/brewandbake/internal/storage/sqlite"
	"github.com/mmynk/brewandbake/pkg/api"
)

type testClients struct {
	menu     *api.MenuServiceClient
	order    *api.OrderServiceClient
	contact  *api.ContactServiceClient
	content  *api.ContentServiceClient
	sessions *session.Store
	tokens   *auth.TokenManager
}

// setupTestServer creates a test server with every service and a temp SQLite database.
// opts are applied to the session store.
func setupTestServer(t *testing.T, opts ...session.Option) (*testClients, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	m := metrics.New(prometheus.NewRegistry())
	sessions := session.NewStore(time.Hour, append([]session.Option{session.WithMetrics(m)}, opts...)...)
	tokens := auth.NewTokenManager("test-secret")

	logging := connect.WithInterceptors(middleware.LoggingInterceptor(m))
	orderInterceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(m),
		middleware.RequireSession(tokens, PublicOrderProcedures...),
	)

	mux := http.NewServeMux()
	mux.Handle(api.NewMenuServiceHandler(NewMenuService(), logging))
	mux.Handle(api.NewOrderServiceHandler(NewOrderService(sessions, tokens, m), orderInterceptors))
	mux.Handle(api.NewContactServiceHandler(NewContactService(store, m), logging))
	mux.Handle(api.NewContentServiceHandler(NewContentService(), logging))

	server := httptest.NewServer(mux)

	clients := &testClients{
		menu:     api.NewMenuServiceClient(http.DefaultClient, server.URL),
		order:    api.NewOrderServiceClient(http.DefaultClient, server.URL),
		contact:  api.NewContactServiceClient(http.DefaultClient, server.URL),
		content:  api.NewContentServiceClient(http.DefaultClient, server.URL),
		sessions: sessions,
		tokens:   tokens,
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return clients, cleanup
}

// withToken wraps msg in a request carrying the session token.
func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
