package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestSessionData_Success(t *testing.T) {
	var gotSessionID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/session-data" {
			t.Errorf("path = %q, want /auth/session-data", r.URL.Path)
		}
		gotSessionID = r.Header.Get("X-Session-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"golfer@example.com","name":"Golfer","picture":"https://example.com/p.jpg","session_token":"tok-123"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	data, err := client.SessionData(context.Background(), "sess-abc")
	if err != nil {
		t.Fatalf("SessionData() error = %v", err)
	}

	if gotSessionID != "sess-abc" {
		t.Errorf("X-Session-ID = %q, want sess-abc", gotSessionID)
	}
	if data.Email != "golfer@example.com" {
		t.Errorf("email = %q, want golfer@example.com", data.Email)
	}
	if data.SessionToken != "tok-123" {
		t.Errorf("session_token = %q, want tok-123", data.SessionToken)
	}
}

func TestSessionData_Non200IsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown session", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	_, err := client.SessionData(context.Background(), "sess-bad")
	if !errors.Is(err, ErrSessionRejected) {
		t.Errorf("SessionData() error = %v, want ErrSessionRejected", err)
	}
}

func TestSessionData_EmptyEmailIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"No Email"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	_, err := client.SessionData(context.Background(), "sess-x")
	if !errors.Is(err, ErrSessionRejected) {
		t.Errorf("SessionData() error = %v, want ErrSessionRejected", err)
	}
}

func TestSessionData_ProviderUnreachable(t *testing.T) {
	// A closed server produces a transport error distinct from rejection.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, zap.NewNop())
	_, err := client.SessionData(context.Background(), "sess-x")
	if err == nil {
		t.Fatal("SessionData() should fail when provider is unreachable")
	}
	if errors.Is(err, ErrSessionRejected) {
		t.Error("transport failure should not read as a rejection")
	}
}
