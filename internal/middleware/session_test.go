package middleware

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/brewandbake/internal/auth"
)

func TestRequireSession(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	valid, err := tokens.Generate("session-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantID   string
	}{
		{name: "valid bearer token", header: "Bearer " + valid, wantID: "session-1"},
		{name: "missing header", header: "", wantCode: connect.CodeUnauthenticated},
		{name: "wrong scheme", header: "Basic " + valid, wantCode: connect.CodeUnauthenticated},
		{name: "garbage token", header: "Bearer nope", wantCode: connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				gotID = GetSessionID(ctx)
				return nil, nil
			}

			req := connect.NewRequest(&struct{}{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := RequireSession(tokens)(next)(context.Background(), req)
			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Fatalf("code = %v, want %v (err %v)", connect.CodeOf(err), tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotID != tt.wantID {
				t.Errorf("session ID = %q, want %q", gotID, tt.wantID)
			}
		})
	}
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	wantErr := connect.NewError(connect.CodeNotFound, errors.New("gone"))
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		WithSessionID(ctx, "session-2")
		return nil, wantErr
	}

	_, err := LoggingInterceptor(nil)(next)(context.Background(), connect.NewRequest(&struct{}{}))
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestGetSessionIDEmpty(t *testing.T) {
	if got := GetSessionID(context.Background()); got != "" {
		t.Errorf("GetSessionID() = %q, want empty", got)
	}
}
