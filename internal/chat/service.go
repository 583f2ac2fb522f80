package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
)

type service struct {
	ai ai.AI
}

func NewService(aiClient ai.AI) Service {
	return &service{ai: aiClient}
}

func (s *service) Reply(ctx context.Context, history []Message, image *ai.Part) (string, error) {
	if len(history) == 0 {
		return "", ErrNoMessages
	}

	parts := []ai.Part{ai.TextPart(transcript(history))}
	if image != nil {
		parts = append(parts, *image)
	}

	log.Printf("[chat] req=%s messages=%d image=%v", middleware.GetReqID(ctx), len(history), image != nil)

	raw, err := s.ai.GetReply(ctx, ai.Prompt{
		Stage:  stageChat,
		System: copilotSystemPrompt,
		Parts:  parts,
		Mode:   ai.ModeFreeText,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", fmt.Errorf("%w: empty chat reply", ai.ErrUpstream)
	}
	return reply, nil
}

func transcript(history []Message) string {
	var b strings.Builder
	b.WriteString("Conversation History:\n")
	for _, m := range history {
		role := m.Role
		if role == "" {
			role = "user"
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}
