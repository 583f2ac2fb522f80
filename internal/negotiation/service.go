package negotiation

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
)

type service struct {
	repo     Repo
	planAI   ai.AI
	sellerAI ai.AI
	planMode ai.Mode
	metrics  OutcomeRecorder
}

// NewService: planAI строит план, sellerAI делает короткий разбор продавца.
// Можно передать одного и того же клиента.
func NewService(repo Repo, planAI, sellerAI ai.AI, planMode ai.Mode, metrics OutcomeRecorder) Service {
	return &service{
		repo:     repo,
		planAI:   planAI,
		sellerAI: sellerAI,
		planMode: planMode,
		metrics:  metrics,
	}
}

func (s *service) Negotiate(ctx context.Context, req Request, userID uuid.UUID) Result {
	reqID := middleware.GetReqID(ctx)

	var res Result
	res.enter(StateAwaitingInput)

	log.Printf("[negotiate] req=%s item=%q location=%q price=%s vibe=%s",
		reqID, req.ItemName, req.Location, req.Price, req.Vibe)

	// --------------------------------------------------
	// STEP 1: SELLER ANALYSIS (необязательный)
	// --------------------------------------------------

	res.SellerAnalysis = SellerAnalysisPlaceholder
	if strings.TrimSpace(req.SellerDescription) != "" {
		res.enter(StateVibeAnalysisPending)
		res.SellerAnalysis = s.summarizeSeller(ctx, reqID, req.SellerDescription)
	}

	// --------------------------------------------------
	// STEP 2: PLAN GENERATION
	// --------------------------------------------------

	res.enter(StatePlanGenerationPending)

	prompt, err := BuildPlanPrompt(req, res.SellerAnalysis, s.planMode)
	if err != nil {
		return s.fail(res, reqID, err, "")
	}

	raw, err := s.planAI.GetReply(ctx, prompt)
	if err != nil {
		return s.fail(res, reqID, err, "")
	}

	// --------------------------------------------------
	// STEP 3: PARSE + BRANCH
	// --------------------------------------------------

	res.enter(StateParsed)

	plan, err := ParsePlan(raw, s.planMode)
	if err != nil {
		return s.fail(res, reqID, err, raw)
	}

	if !plan.IsValid {
		res.enter(StateRejected)
		res.Reason = plan.Reason
		log.Printf("[negotiate] req=%s rejected: %s", reqID, short(plan.Reason))
		s.observe(res.Outcome)
		return res
	}

	res.enter(StateAccepted)
	res.Plan = &plan
	log.Printf("[negotiate] req=%s accepted range=%q scripts=%d", reqID, plan.PriceRange, len(plan.Scripts))

	s.persist(ctx, reqID, req, plan, userID)
	s.observe(res.Outcome)

	return res
}

// summarizeSeller не роняет пайплайн, при любой ошибке отдаёт заглушку.
func (s *service) summarizeSeller(ctx context.Context, reqID, desc string) string {
	raw, err := s.sellerAI.GetReply(ctx, BuildSellerSummaryPrompt(desc))
	if err != nil {
		log.Printf("[negotiate] req=%s seller analysis degraded: %v", reqID, err)
		return SellerAnalysisPlaceholder
	}

	summary := firstLine(raw)
	if summary == "" {
		log.Printf("[negotiate] req=%s seller analysis empty, using placeholder", reqID)
		return SellerAnalysisPlaceholder
	}

	log.Printf("[negotiate] req=%s seller analysis: %s", reqID, short(summary))
	return summary
}

func (s *service) fail(res Result, reqID string, err error, raw string) Result {
	log.Printf("[negotiate] req=%s failed at %s: %v", reqID, res.Outcome, err)
	if raw != "" {
		log.Printf("[negotiate] req=%s raw: %s", reqID, short(raw))
	}

	res.enter(StateFailed)
	res.Err = err
	s.observe(res.Outcome)

	return res
}

func (s *service) persist(ctx context.Context, reqID string, req Request, plan NegotiationPlan, userID uuid.UUID) {
	if userID == uuid.Nil {
		log.Printf("[negotiate] req=%s anonymous user, history not saved", reqID)
		return
	}

	rec := &PlanRecord{
		ID:           ulid.Make().String(),
		UserID:       userID,
		ItemName:     strings.TrimSpace(req.ItemName),
		Category:     strings.TrimSpace(req.Category),
		InitialPrice: req.Price,
		Location:     strings.TrimSpace(req.Location),
		Vibe:         req.Vibe,
		Plan:         plan.Body(),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.SavePlan(ctx, rec); err != nil {
		log.Printf("[negotiate] req=%s save history error: %v", reqID, err)
	}
}

func (s *service) observe(outcome State) {
	if s.metrics != nil {
		s.metrics.ObserveOutcome(outcome.String())
	}
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `"`)
		if line != "" {
			return line
		}
	}
	return ""
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
