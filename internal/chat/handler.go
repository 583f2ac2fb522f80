package chat

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/httpx"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Messages []Message `json:"messages"`
		Image    string    `json:"image"`    // base64
		MIMEType string    `json:"mimeType"` // для image
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 20<<20)).Decode(&payload); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if len(payload.Messages) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "Messages are required.")
		return
	}

	var image *ai.Part
	if payload.Image != "" {
		data, err := base64.StdEncoding.DecodeString(payload.Image)
		if err != nil || payload.MIMEType == "" {
			httpx.WriteError(w, http.StatusBadRequest, "image must be base64 with mimeType")
			return
		}
		part := ai.InlinePart(payload.MIMEType, data)
		image = &part
	}

	reply, err := h.svc.Reply(r.Context(), payload.Messages, image)
	if err != nil {
		if errors.Is(err, ErrNoMessages) {
			httpx.WriteError(w, http.StatusBadRequest, "Messages are required.")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to get a response from the AI.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": reply})
}
