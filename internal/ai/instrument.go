package ai

import (
	"context"
	"log"
	"time"
)

// Recorder: куда писать метрики генерации.
type Recorder interface {
	ObserveGeneration(stage, provider string, success bool, duration time.Duration)
}

type instrumented struct {
	next     AI
	provider string
	rec      Recorder
}

// Instrument оборачивает клиента: длительность и статус каждого вызова.
func Instrument(next AI, provider string, rec Recorder) AI {
	return &instrumented{next: next, provider: provider, rec: rec}
}

func (i *instrumented) GetReply(ctx context.Context, prompt Prompt) (string, error) {
	start := time.Now()
	raw, err := i.next.GetReply(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[ai] provider=%s stage=%s mode=%s failed after %s: %v",
			i.provider, prompt.Stage, prompt.Mode, elapsed, err)
	}

	if i.rec != nil {
		i.rec.ObserveGeneration(prompt.Stage, i.provider, err == nil, elapsed)
	}

	return raw, err
}
