package negotiation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
)

// Request: одна отправка формы, живёт ровно один прогон пайплайна.
type Request struct {
	ItemName          string
	Category          string
	Location          string
	Price             decimal.Decimal
	Vibe              Vibe
	SellerDescription string
	Media             []ai.Part
}

type Script struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PlanBody: то, что уходит клиенту и в историю.
type PlanBody struct {
	PriceRange string   `json:"priceRange"`
	Reasoning  string   `json:"reasoning"`
	Scripts    []Script `json:"scripts"`
}

// NegotiationPlan: разобранный ответ генератора.
// IsValid=false: заполнен только Reason. IsValid=true: только PriceRange/Reasoning/Scripts.
type NegotiationPlan struct {
	IsValid    bool
	Reason     string
	PriceRange string
	Reasoning  string
	Scripts    []Script
}

func (p NegotiationPlan) Body() PlanBody {
	return PlanBody{
		PriceRange: p.PriceRange,
		Reasoning:  p.Reasoning,
		Scripts:    p.Scripts,
	}
}

// State: шаги пайплайна.
type State int

const (
	StateAwaitingInput State = iota
	StateVibeAnalysisPending
	StatePlanGenerationPending
	StateParsed
	StateAccepted
	StateRejected
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateVibeAnalysisPending:
		return "vibe_analysis_pending"
	case StatePlanGenerationPending:
		return "plan_generation_pending"
	case StateParsed:
		return "parsed"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result: итог прогона. Outcome всегда один из Accepted / Rejected / Failed.
type Result struct {
	Outcome        State
	Plan           *NegotiationPlan // Accepted
	Reason         string           // Rejected
	Err            error            // Failed, только для логов
	SellerAnalysis string
	Trail          []State
}

func (r *Result) enter(s State) {
	r.Trail = append(r.Trail, s)
	r.Outcome = s
}

// PlanRecord: строка истории.
type PlanRecord struct {
	ID           string
	UserID       uuid.UUID
	ItemName     string
	Category     string
	InitialPrice decimal.Decimal
	Location     string
	Vibe         Vibe
	Plan         PlanBody
	CreatedAt    time.Time
}

// Repo: persistence, только запись.
type Repo interface {
	SavePlan(ctx context.Context, rec *PlanRecord) error
}

// OutcomeRecorder: метрики исходов.
type OutcomeRecorder interface {
	ObserveOutcome(outcome string)
}

// Service: оркестрация. userID = uuid.Nil, если пользователь неизвестен.
type Service interface {
	Negotiate(ctx context.Context, req Request, userID uuid.UUID) Result
}
