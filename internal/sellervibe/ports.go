package sellervibe

import (
	"context"
	"errors"
)

// Analysis: живой разбор продавца для UI.
type Analysis struct {
	Vibe        string   `json:"vibe"`
	KeyPhrases  []string `json:"key_phrases"`
	StrategyTip string   `json:"strategy_tip"`
	Emoji       string   `json:"emoji"`
}

// ErrBadAnalysis: генератор вернул не то.
var ErrBadAnalysis = errors.New("sellervibe: malformed analysis")

// Service возвращает nil без ошибки, если текст слишком короткий.
type Service interface {
	Analyze(ctx context.Context, sellerDesc string) (*Analysis, error)
}
