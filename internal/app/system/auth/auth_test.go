package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionstore "github.com/dalemusser/fairway/internal/app/store/sessions"
	userstore "github.com/dalemusser/fairway/internal/app/store/users"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/dalemusser/fairway/internal/testutil"
	"go.uber.org/zap"
)

func TestGenerateSessionToken(t *testing.T) {
	first, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	second, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if first == "" || second == "" {
		t.Error("tokens should not be empty")
	}
	if first == second {
		t.Error("consecutive tokens should differ")
	}
	// 32 random bytes base64url-encode to 43 characters.
	if len(first) != 43 {
		t.Errorf("token length = %d, want 43", len(first))
	}
}

func newTestManager(t *testing.T) (*auth.Manager, *sessionstore.Store, *userstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sessions := sessionstore.New(db)
	users := userstore.New(db)
	m := auth.NewManager(sessions, users, "session_token", time.Hour, false, zap.NewNop())
	return m, sessions, users
}

func TestTokenFromRequest(t *testing.T) {
	m, _, _ := newTestManager(t)

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-token"})
		if got := m.TokenFromRequest(req); got != "cookie-token" {
			t.Errorf("token = %q, want cookie-token", got)
		}
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		if got := m.TokenFromRequest(req); got != "header-token" {
			t.Errorf("token = %q, want header-token", got)
		}
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
		if got := m.TokenFromRequest(req); got != "cookie-token" {
			t.Errorf("token = %q, want cookie-token", got)
		}
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if got := m.TokenFromRequest(req); got != "" {
			t.Errorf("token = %q, want empty", got)
		}
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		if got := m.TokenFromRequest(req); got != "" {
			t.Errorf("token = %q, want empty for non-bearer scheme", got)
		}
	})
}

func TestLoadSessionUser_AttachesUser(t *testing.T) {
	m, sessions, users := newTestManager(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user, err := users.UpsertByEmail(ctx, "golfer@example.com", "Golfer", "")
	if err != nil {
		t.Fatalf("UpsertByEmail() error = %v", err)
	}
	if _, err := sessions.Create(ctx, user.ID, "live-token", time.Hour); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var got *auth.SessionUser
	handler := m.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "live-token"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected user in context")
	}
	if got.ID != user.ID || got.Email != "golfer@example.com" {
		t.Errorf("context user = %+v, want %s", got, user.ID)
	}
	if got.Token != "live-token" {
		t.Errorf("token = %q, want live-token", got.Token)
	}
}

func TestLoadSessionUser_DeadTokenPassesThrough(t *testing.T) {
	m, _, _ := newTestManager(t)

	called := false
	handler := m.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := auth.CurrentUser(r); ok {
			t.Error("dead token should not attach a user")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "nope"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("next handler should still run")
	}
}

func TestRequireUser(t *testing.T) {
	handler := auth.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = auth.WithTestUser(req, &auth.SessionUser{ID: "user_x", Email: "x@example.com"})
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestIssueAndClearCookie(t *testing.T) {
	m, _, _ := newTestManager(t)

	rec := httptest.NewRecorder()
	m.IssueCookie(rec, "abc")
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Value != "abc" || !c.HttpOnly || c.Path != "/" {
		t.Errorf("cookie = %+v, want HttpOnly path=/ value=abc", c)
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("SameSite = %v, want None", c.SameSite)
	}

	rec = httptest.NewRecorder()
	m.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Errorf("clear cookie MaxAge = %d, want -1", cookies[0].MaxAge)
	}
}
