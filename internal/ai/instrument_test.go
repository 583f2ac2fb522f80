package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAI struct {
	reply string
	err   error
}

func (s stubAI) GetReply(context.Context, Prompt) (string, error) {
	return s.reply, s.err
}

type observation struct {
	stage, provider string
	success         bool
}

type recorderSpy struct {
	seen []observation
}

func (r *recorderSpy) ObserveGeneration(stage, provider string, success bool, _ time.Duration) {
	r.seen = append(r.seen, observation{stage, provider, success})
}

func TestInstrument(t *testing.T) {
	rec := &recorderSpy{}

	ok := Instrument(stubAI{reply: "fine"}, "openai", rec)
	raw, err := ok.GetReply(context.Background(), Prompt{Stage: "plan"})
	require.NoError(t, err)
	assert.Equal(t, "fine", raw)

	boom := errors.New("boom")
	bad := Instrument(stubAI{err: boom}, "gemini", rec)
	_, err = bad.GetReply(context.Background(), Prompt{Stage: "seller_summary"})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []observation{
		{"plan", "openai", true},
		{"seller_summary", "gemini", false},
	}, rec.seen)
}

func TestInstrument_NilRecorder(t *testing.T) {
	c := Instrument(stubAI{reply: "x"}, "openai", nil)
	raw, err := c.GetReply(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.Equal(t, "x", raw)
}
