package health

import (
	"net/http"
	"testing"

	"github.com/dalemusser/fairway/internal/testutil"
	"go.uber.org/zap"
)

func newHealthRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return Routes(NewHandler(db.Client(), zap.NewNop()))
}

func TestHealth_Status(t *testing.T) {
	router := newHealthRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"database":"connected"`)
}

func TestHealth_Ready(t *testing.T) {
	router := newHealthRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/ready"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "ready")
}

func TestHealth_Live(t *testing.T) {
	router := newHealthRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/live"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "alive")
}
