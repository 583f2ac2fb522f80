package sellervibe

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
)

func serve(gen *fakeAI, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService(gen, 20)))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-vibe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		gen      *fakeAI
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "short input is null",
			gen:      &fakeAI{reply: goodAnalysis},
			body:     `{"sellerDesc":"ok"}`,
			wantCode: http.StatusOK,
			wantBody: `{"analysis":null}`,
		},
		{
			name:     "analysis",
			gen:      &fakeAI{reply: goodAnalysis},
			body:     `{"sellerDesc":"Barely used bike, price is firm, serious buyers only."}`,
			wantCode: http.StatusOK,
			wantBody: `{"analysis":` + goodAnalysis + `}`,
		},
		{
			name:     "upstream failure",
			gen:      &fakeAI{err: ai.ErrUpstream},
			body:     `{"sellerDesc":"Barely used bike, price is firm, serious buyers only."}`,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to analyze vibe."}`,
		},
		{
			name:     "bad json",
			gen:      &fakeAI{},
			body:     `nope`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid json"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.gen, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
