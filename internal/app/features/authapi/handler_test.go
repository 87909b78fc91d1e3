package authapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionstore "github.com/dalemusser/fairway/internal/app/store/sessions"
	userstore "github.com/dalemusser/fairway/internal/app/store/users"
	"github.com/dalemusser/fairway/internal/app/system/auditlog"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/dalemusser/fairway/internal/app/system/identity"
	"github.com/dalemusser/fairway/internal/testutil"
	"go.uber.org/zap"
)

type authFixture struct {
	router   http.Handler
	sessions *sessionstore.Store
	users    *userstore.Store
	sm       *auth.Manager
}

// newAuthFixture wires the auth routes against a stand-in identity provider.
func newAuthFixture(t *testing.T, providerURL string) *authFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	users := userstore.New(db)
	sessions := sessionstore.New(db)
	sm := auth.NewManager(sessions, users, "session_token", time.Hour, false, logger)
	idp := identity.New(providerURL, logger)
	h := NewHandler(idp, users, sessions, sm, nil, auditlog.New(nil, logger), logger)

	return &authFixture{
		router:   Routes(h, sm, nil),
		sessions: sessions,
		users:    users,
		sm:       sm,
	}
}

func identityStub(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, body, status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStartSession_Success(t *testing.T) {
	srv := identityStub(t, `{"email":"golfer@example.com","name":"Golfer","picture":"https://example.com/p.jpg","session_token":"tok-123"}`, http.StatusOK)
	f := newAuthFixture(t, srv.URL)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/session", map[string]string{"session_id": "sess-abc"})
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "golfer@example.com")

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_token" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("session cookie not set")
	}
	if cookie.Value != "tok-123" {
		t.Errorf("cookie value = %q, want the provider token", cookie.Value)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	sess, err := f.sessions.GetByToken(ctx, "tok-123")
	if err != nil {
		t.Fatalf("GetByToken() error = %v", err)
	}
	user, err := f.users.GetByEmail(ctx, "golfer@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if sess.UserID != user.ID {
		t.Errorf("session user = %q, want %q", sess.UserID, user.ID)
	}
}

func TestStartSession_ReplacesExistingSessions(t *testing.T) {
	srv := identityStub(t, `{"email":"golfer@example.com","name":"Golfer","session_token":"tok-new"}`, http.StatusOK)
	f := newAuthFixture(t, srv.URL)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	user, err := f.users.UpsertByEmail(ctx, "golfer@example.com", "Golfer", "")
	if err != nil {
		t.Fatalf("UpsertByEmail() error = %v", err)
	}
	if _, err := f.sessions.Create(ctx, user.ID, "tok-old", time.Hour); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/session", map[string]string{"session_id": "sess-abc"})
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	if _, err := f.sessions.GetByToken(ctx, "tok-old"); !errors.Is(err, sessionstore.ErrNotFound) {
		t.Errorf("old session error = %v, want ErrNotFound", err)
	}
	if _, err := f.sessions.GetByToken(ctx, "tok-new"); err != nil {
		t.Errorf("new session error = %v", err)
	}
}

func TestStartSession_RejectedByProvider(t *testing.T) {
	srv := identityStub(t, "unknown session", http.StatusUnauthorized)
	f := newAuthFixture(t, srv.URL)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/session", map[string]string{"session_id": "sess-bad"})
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "invalid session")
}

func TestStartSession_MissingSessionID(t *testing.T) {
	srv := identityStub(t, `{}`, http.StatusOK)
	f := newAuthFixture(t, srv.URL)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/session", map[string]string{})
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "session_id is required")
}

func TestMe(t *testing.T) {
	srv := identityStub(t, `{}`, http.StatusOK)
	f := newAuthFixture(t, srv.URL)

	t.Run("unauthenticated", func(t *testing.T) {
		rec := testutil.NewRecorder()
		f.router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/me"))
		rec.AssertStatus(t, http.StatusUnauthorized)
	})

	t.Run("with live session", func(t *testing.T) {
		ctx, cancel := testutil.TestContext()
		defer cancel()
		user, err := f.users.UpsertByEmail(ctx, "golfer@example.com", "Golfer", "")
		if err != nil {
			t.Fatalf("UpsertByEmail() error = %v", err)
		}
		if _, err := f.sessions.Create(ctx, user.ID, "me-token", time.Hour); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		req := testutil.NewRequest(http.MethodGet, "/me")
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "me-token"})
		rec := testutil.NewRecorder()
		f.router.ServeHTTP(rec, req)

		rec.AssertStatus(t, http.StatusOK)
		rec.AssertContains(t, "golfer@example.com")
	})
}

func TestLogout(t *testing.T) {
	srv := identityStub(t, `{}`, http.StatusOK)
	f := newAuthFixture(t, srv.URL)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	user, err := f.users.UpsertByEmail(ctx, "golfer@example.com", "Golfer", "")
	if err != nil {
		t.Fatalf("UpsertByEmail() error = %v", err)
	}
	if _, err := f.sessions.Create(ctx, user.ID, "bye-token", time.Hour); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := testutil.NewRequest(http.MethodPost, "/logout")
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "bye-token"})
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "logged out")

	if _, err := f.sessions.GetByToken(ctx, "bye-token"); !errors.Is(err, sessionstore.ErrNotFound) {
		t.Errorf("session error = %v, want ErrNotFound after logout", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Errorf("expected a clearing cookie, got %+v", cookies)
	}
}

func TestLogout_WithoutSessionStillSucceeds(t *testing.T) {
	srv := identityStub(t, `{}`, http.StatusOK)
	f := newAuthFixture(t, srv.URL)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewRequest(http.MethodPost, "/logout"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "logged out")
}
