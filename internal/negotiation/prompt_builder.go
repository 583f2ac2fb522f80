package negotiation

import (
	"fmt"
	"strings"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
)

const (
	stageSellerSummary = "seller_summary"
	stagePlan          = "plan"
)

// BuildPlanPrompt чистая функция, одинаковый вход = байт-в-байт одинаковый промпт.
// Медиа идут отдельными частями после текста, в порядке запроса.
func BuildPlanPrompt(req Request, sellerAnalysis string, mode ai.Mode) (ai.Prompt, error) {
	persona, err := personaInstruction(req.Vibe)
	if err != nil {
		return ai.Prompt{}, err
	}

	text := fmt.Sprintf(planPromptTemplate,
		orNA(req.ItemName),
		orNA(req.Category),
		orNA(req.Location),
		req.Price.String(),
		orNA(req.SellerDescription),
		orNA(sellerAnalysis),
		mediaNote(len(req.Media)),
		persona,
	)

	parts := make([]ai.Part, 0, 1+len(req.Media))
	parts = append(parts, ai.TextPart(text))
	parts = append(parts, req.Media...)

	return ai.Prompt{
		Stage: stagePlan,
		Parts: parts,
		Mode:  mode,
	}, nil
}

func BuildSellerSummaryPrompt(sellerDescription string) ai.Prompt {
	return ai.Prompt{
		Stage: stageSellerSummary,
		Parts: []ai.Part{ai.TextPart(fmt.Sprintf(sellerSummaryPromptTemplate, strings.TrimSpace(sellerDescription)))},
		Mode:  ai.ModeFreeText,
	}
}

func orNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notProvided
	}
	return s
}

func mediaNote(n int) string {
	switch n {
	case 0:
		return notProvided
	case 1:
		return "1 file follows this text; use it to judge the item and its condition."
	default:
		return fmt.Sprintf("%d files follow this text; use them to judge the item and its condition.", n)
	}
}
