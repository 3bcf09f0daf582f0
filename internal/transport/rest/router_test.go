package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walled99/Learn-Deutsch/internal/domain"
	"github.com/walled99/Learn-Deutsch/internal/transport/middleware"
)

func newTestRouter(limit middleware.Middleware, common ...middleware.Middleware) http.Handler {
	svc := &mockExtractor{ExtractFunc: func(_ context.Context, _ string) domain.ExtractionOutcome {
		return domain.SucceededOutcome(nil, 1)
	}}
	return NewRouter(Routes{
		Health:       NewHealthHandler(&modelStatusMock{configured: true}, &networkStatusMock{online: true}, "v"),
		Extraction:   NewExtractionHandler(svc, 1<<20, "", newTestLogger()),
		Metrics:      http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("metrics")) }),
		ExtractLimit: limit,
	}, common...)
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/extractions", http.StatusMethodNotAllowed},
		{http.MethodPost, "/extractions", http.StatusBadRequest},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_LimitAppliesToExtractionsOnly(t *testing.T) {
	t.Parallel()

	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	router := newTestRouter(deny)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extractions", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CommonMiddleware(t *testing.T) {
	t.Parallel()

	router := newTestRouter(nil, middleware.RequestID())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
