package chat

import (
	"context"
	"errors"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
)

type Message struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

var ErrNoMessages = errors.New("chat: messages are required")

// Service: разговорный помощник поверх одного вызова генератора.
// image: необязательная картинка к последнему сообщению.
type Service interface {
	Reply(ctx context.Context, history []Message, image *ai.Part) (string, error)
}
