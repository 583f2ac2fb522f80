package sellervibe

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/httpx"
)

const failureMessage = "Failed to analyze vibe."

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SellerDesc string `json:"sellerDesc"`
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&payload); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), payload.SellerDesc)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, failureMessage)
		return
	}

	// analysis == nil -> {"analysis": null}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"analysis": analysis})
}
