package sellervibe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/llmjson"
)

type service struct {
	ai       ai.AI
	minChars int
}

// NewService: minChars <= 0 выключает порог.
func NewService(aiClient ai.AI, minChars int) Service {
	return &service{ai: aiClient, minChars: minChars}
}

func (s *service) Analyze(ctx context.Context, sellerDesc string) (*Analysis, error) {
	reqID := middleware.GetReqID(ctx)

	desc := strings.TrimSpace(sellerDesc)
	if desc == "" || utf8.RuneCountInString(desc) < s.minChars {
		return nil, nil
	}

	raw, err := s.ai.GetReply(ctx, ai.Prompt{
		Stage: stageSellerVibe,
		Parts: []ai.Part{ai.TextPart(fmt.Sprintf(analyzePromptTemplate, desc))},
		Mode:  ai.ModeFreeText,
	})
	if err != nil {
		return nil, err
	}

	obj, err := llmjson.ExtractObject(raw)
	if err != nil {
		log.Printf("[vibe] req=%s no json: %s", reqID, short(raw))
		return nil, fmt.Errorf("%w: %w", ErrBadAnalysis, err)
	}

	var a Analysis
	if err := json.Unmarshal([]byte(obj), &a); err != nil {
		log.Printf("[vibe] req=%s json error: %v", reqID, err)
		return nil, fmt.Errorf("%w: %v", ErrBadAnalysis, err)
	}

	if strings.TrimSpace(a.Vibe) == "" || strings.TrimSpace(a.StrategyTip) == "" || strings.TrimSpace(a.Emoji) == "" {
		return nil, fmt.Errorf("%w: missing vibe, strategy_tip or emoji", ErrBadAnalysis)
	}
	if a.KeyPhrases == nil {
		a.KeyPhrases = []string{}
	}

	log.Printf("[vibe] req=%s vibe=%q phrases=%d", reqID, a.Vibe, len(a.KeyPhrases))

	return &a, nil
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
