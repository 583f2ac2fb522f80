package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient: baseURL пустой = api.openai.com.
func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4o
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Model() string {
	return c.model
}

func (c *OpenAIClient) GetReply(ctx context.Context, prompt Prompt) (string, error) {
	msgs, err := toOpenAIMessages(prompt)
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	}

	// строгий JSON-режим
	if prompt.Mode == ModeStructured {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("[ai] openai error stage=%s: %v", prompt.Stage, err)
		return "", fmt.Errorf("%w: openai: %w", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("[ai] openai empty choices stage=%s", prompt.Stage)
		return "", fmt.Errorf("%w: openai: empty choices", ErrUpstream)
	}

	raw := resp.Choices[0].Message.Content
	log.Printf("[ai] openai raw stage=%s: %s", prompt.Stage, short(raw))

	return raw, nil
}

func toOpenAIMessages(prompt Prompt) ([]openai.ChatCompletionMessage, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, 2)

	if prompt.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompt.System,
		})
	}

	hasMedia := false
	for _, p := range prompt.Parts {
		if p.IsMedia() {
			hasMedia = true
			break
		}
	}

	if !hasMedia {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt.Text(),
		})
		return msgs, nil
	}

	parts := make([]openai.ChatMessagePart, 0, len(prompt.Parts))
	for _, p := range prompt.Parts {
		if !p.IsMedia() {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: p.Text,
			})
			continue
		}

		// chat completions принимает только картинки
		if !strings.HasPrefix(p.MIMEType, "image/") {
			return nil, fmt.Errorf("%w: openai: %s", ErrUnsupportedMedia, p.MIMEType)
		}

		url := p.FileURI
		if len(p.Data) > 0 {
			url = "data:" + p.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
		}

		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    url,
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: parts,
	})

	return msgs, nil
}
