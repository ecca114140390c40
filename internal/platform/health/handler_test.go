package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"vcpipe/pkg/testutil"
)

func router(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestReadiness(t *testing.T) {
	testutil.Given(t, "all dependencies are up", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("redis", func(context.Context) error { return nil })

		testutil.Then(t, "readiness is 200", func(t *testing.T) {
			rr := testutil.DoRequest(router(h), testutil.NewRequest(t, http.MethodGet, "/health/ready"))
			testutil.AssertStatusOK(t, rr)
			testutil.AssertJSONContains(t, rr, "status", "ready")
		})
	})

	testutil.Given(t, "one dependency is down", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("redis", func(context.Context) error { return nil })
		h.RegisterCheck("kafka", func(context.Context) error { return errors.New("no brokers") })

		testutil.Then(t, "readiness is 503 with the failing check", func(t *testing.T) {
			rr := testutil.DoRequest(router(h), testutil.NewRequest(t, http.MethodGet, "/health/ready"))
			testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
			resp := testutil.UnmarshalResponse[ReadinessResponse](t, rr)
			assert.Equal(t, "not_ready", resp.Status)
			assert.Equal(t, "down: no brokers", resp.Checks["kafka"])
			assert.Equal(t, "up", resp.Checks["redis"])
		})
	})
}

func TestLivenessAndStatus(t *testing.T) {
	h := New("staging")

	rr := testutil.DoRequest(router(h), testutil.NewRequest(t, http.MethodGet, "/health/live"))
	testutil.AssertStatusOK(t, rr)

	rr = httptest.NewRecorder()
	router(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	resp := testutil.UnmarshalResponse[StatusResponse](t, rr)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "staging", resp.Environment)
}
