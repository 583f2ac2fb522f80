package negotiation

import (
	"context"
	"errors"
	"sync"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
)

type fakeReply struct {
	text string
	err  error
}

// fakeAI отвечает по метке этапа и запоминает все промпты.
type fakeAI struct {
	mu      sync.Mutex
	replies map[string]fakeReply
	calls   []ai.Prompt
}

func newFakeAI(replies map[string]fakeReply) *fakeAI {
	return &fakeAI{replies: replies}
}

func (f *fakeAI) GetReply(_ context.Context, p ai.Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, p)

	r, ok := f.replies[p.Stage]
	if !ok {
		return "", errors.New("fakeAI: unexpected stage " + p.Stage)
	}
	return r.text, r.err
}

func (f *fakeAI) callsFor(stage string) []ai.Prompt {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []ai.Prompt
	for _, c := range f.calls {
		if c.Stage == stage {
			out = append(out, c)
		}
	}
	return out
}

type fakeRepo struct {
	mu    sync.Mutex
	saved []*PlanRecord
	err   error
}

func (r *fakeRepo) SavePlan(_ context.Context, rec *PlanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saved = append(r.saved, rec)
	return r.err
}

type fakeOutcomes struct {
	mu   sync.Mutex
	seen []string
}

func (f *fakeOutcomes) ObserveOutcome(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seen = append(f.seen, outcome)
}
