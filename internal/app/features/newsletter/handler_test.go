package newsletter

import (
	"net/http"
	"testing"

	newsletterstore "github.com/dalemusser/fairway/internal/app/store/newsletter"
	"github.com/dalemusser/fairway/internal/app/system/mailer"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/dalemusser/fairway/internal/testutil"
	"go.uber.org/zap"
)

const adminKey = "test-admin-key"

func newNewsletterRouter(t *testing.T) (http.Handler, *newsletterstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	store := newsletterstore.New(db)

	// Unconfigured mailer: no welcome emails go out.
	h := NewHandler(store, mailer.New(mailer.Config{}, logger), "Mallorca Golf", logger)
	return Routes(h, adminKey, nil, logger), store
}

func asAdmin(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+adminKey)
	return r
}

func TestNewsletter_Subscribe(t *testing.T) {
	router, _ := newNewsletterRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", map[string]any{
		"email":    "sam@example.com",
		"language": "de",
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var sub models.NewsletterSubscription
	testutil.DecodeJSON(t, rec, &sub)
	if sub.ID == "" {
		t.Error("subscription should get an id")
	}
	if sub.Language != "de" {
		t.Errorf("language = %q, want de", sub.Language)
	}
}

func TestNewsletter_SubscribeDuplicateConflicts(t *testing.T) {
	router, _ := newNewsletterRouter(t)

	for i, c := range []struct {
		email string
		want  int
	}{
		{"sam@example.com", http.StatusCreated},
		{"Sam@Example.COM", http.StatusConflict},
	} {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/", map[string]any{"email": c.email})
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != c.want {
			t.Errorf("subscribe #%d status = %d, want %d", i+1, rec.Code, c.want)
		}
	}
}

func TestNewsletter_SubscribeValidation(t *testing.T) {
	router, _ := newNewsletterRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", map[string]any{"email": "not-an-email"})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "email")
}

func TestNewsletter_AdminListAndDelete(t *testing.T) {
	router, _ := newNewsletterRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", map[string]any{"email": "sam@example.com"})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	var sub models.NewsletterSubscription
	testutil.DecodeJSON(t, rec, &sub)

	t.Run("list requires admin key", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
		rec.AssertStatus(t, http.StatusUnauthorized)
	})

	t.Run("list and unsubscribe", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, asAdmin(testutil.NewRequest(http.MethodGet, "/")))
		rec.AssertStatus(t, http.StatusOK)
		var subs []models.NewsletterSubscription
		testutil.DecodeJSON(t, rec, &subs)
		if len(subs) != 1 {
			t.Fatalf("subscriptions = %d, want 1", len(subs))
		}

		rec = testutil.NewRecorder()
		router.ServeHTTP(rec, asAdmin(testutil.NewRequest(http.MethodDelete, "/"+sub.ID)))
		rec.AssertStatus(t, http.StatusOK)
		rec.AssertContains(t, "unsubscribed")

		rec = testutil.NewRecorder()
		router.ServeHTTP(rec, asAdmin(testutil.NewRequest(http.MethodDelete, "/"+sub.ID)))
		rec.AssertStatus(t, http.StatusNotFound)
	})
}
