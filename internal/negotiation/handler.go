package negotiation

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/httpx"
)

const (
	// UserIDHeader ставит auth-шлюз перед сервисом.
	UserIDHeader = "X-User-ID"

	maxBodyBytes = 20 << 20
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type mediaPayload struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
	FileURI  string `json:"fileUri"`
}

type negotiatePayload struct {
	ItemName   string           `json:"itemName"`
	Category   string           `json:"category"`
	Location   string           `json:"location"`
	Price      *decimal.Decimal `json:"price"`
	Vibe       string           `json:"vibe"`
	SellerDesc string           `json:"sellerDesc"`
	Media      []mediaPayload   `json:"media"`
}

type planData struct {
	IsValid bool      `json:"isValid"`
	Plan    *PlanBody `json:"plan,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// HandleNegotiate: вход от UI.
func (h *Handler) HandleNegotiate(w http.ResponseWriter, r *http.Request) {
	userID, err := userFromHeader(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid "+UserIDHeader+" header")
		return
	}

	var payload negotiatePayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	req, err := payload.toRequest()
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.svc.Negotiate(r.Context(), req, userID)

	switch res.Outcome {
	case StateAccepted:
		body := res.Plan.Body()
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"data": planData{IsValid: true, Plan: &body},
		})
	case StateRejected:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"data": planData{IsValid: false, Reason: res.Reason},
		})
	default:
		status := http.StatusBadGateway
		if errors.Is(res.Err, ErrConfiguration) {
			status = http.StatusInternalServerError
		}
		httpx.WriteError(w, status, GenericFailureMessage)
	}
}

func (p negotiatePayload) toRequest() (Request, error) {
	if strings.TrimSpace(p.ItemName) == "" {
		return Request{}, errors.New("itemName is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		return Request{}, errors.New("location is required")
	}
	if p.Price == nil {
		return Request{}, errors.New("price is required")
	}
	if !p.Price.IsPositive() {
		return Request{}, errors.New("price must be positive")
	}

	vibe, err := ParseVibe(p.Vibe)
	if err != nil {
		return Request{}, errors.New("vibe must be one of Friendly, Direct, Analytical")
	}

	media := make([]ai.Part, 0, len(p.Media))
	for _, m := range p.Media {
		part, err := m.toPart()
		if err != nil {
			return Request{}, err
		}
		media = append(media, part)
	}

	return Request{
		ItemName:          p.ItemName,
		Category:          p.Category,
		Location:          p.Location,
		Price:             *p.Price,
		Vibe:              vibe,
		SellerDescription: p.SellerDesc,
		Media:             media,
	}, nil
}

func (m mediaPayload) toPart() (ai.Part, error) {
	if m.MIMEType == "" {
		return ai.Part{}, errors.New("media.mimeType is required")
	}

	switch {
	case m.Data != "" && m.FileURI != "":
		return ai.Part{}, errors.New("media needs either data or fileUri, not both")
	case m.Data != "":
		data, err := base64.StdEncoding.DecodeString(m.Data)
		if err != nil {
			return ai.Part{}, errors.New("media.data must be base64")
		}
		return ai.InlinePart(m.MIMEType, data), nil
	case m.FileURI != "":
		return ai.FilePart(m.MIMEType, m.FileURI), nil
	default:
		return ai.Part{}, errors.New("media needs data or fileUri")
	}
}

func userFromHeader(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
