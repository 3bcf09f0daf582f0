package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/walled99/Learn-Deutsch/pkg/ctxutil"
)

func serveWithRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReuseIncoming(t *testing.T) {
	incomingID := uuid.New().String()

	ctxID, headerID := serveWithRequestID(t, incomingID)

	if ctxID != incomingID {
		t.Errorf("expected requestID %s in context, got %s", incomingID, ctxID)
	}
	if headerID != incomingID {
		t.Errorf("expected response header %s, got %s", incomingID, headerID)
	}
}

func TestRequestID_GenerateNew(t *testing.T) {
	ctxID, headerID := serveWithRequestID(t, "")

	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("expected generated UUID, got %q: %v", ctxID, err)
	}
	if headerID != ctxID {
		t.Errorf("header %q does not match context %q", headerID, ctxID)
	}
}

func TestRequestID_OversizedIncomingIsReplaced(t *testing.T) {
	incoming := strings.Repeat("a", maxRequestIDLen+1)

	ctxID, headerID := serveWithRequestID(t, incoming)

	if ctxID == incoming {
		t.Error("oversized request id must not be reused")
	}
	if _, err := uuid.Parse(headerID); err != nil {
		t.Errorf("expected generated UUID, got %q", headerID)
	}
}
