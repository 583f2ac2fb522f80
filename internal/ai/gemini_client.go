package ai

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) GetReply(ctx context.Context, prompt Prompt) (string, error) {
	contents, config := toGeminiRequest(prompt)

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		log.Printf("[ai] gemini error stage=%s: %v", prompt.Stage, err)
		return "", fmt.Errorf("%w: gemini: %w", ErrUpstream, err)
	}

	if result == nil {
		return "", fmt.Errorf("%w: gemini: empty response", ErrUpstream)
	}

	raw := result.Text()
	if raw == "" {
		log.Printf("[ai] gemini empty text stage=%s", prompt.Stage)
		return "", fmt.Errorf("%w: gemini: empty text", ErrUpstream)
	}

	log.Printf("[ai] gemini raw stage=%s: %s", prompt.Stage, short(raw))

	return raw, nil
}

func toGeminiRequest(prompt Prompt) ([]*genai.Content, *genai.GenerateContentConfig) {
	parts := make([]*genai.Part, 0, len(prompt.Parts))
	for _, p := range prompt.Parts {
		switch {
		case len(p.Data) > 0:
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{MIMEType: p.MIMEType, Data: p.Data},
			})
		case p.FileURI != "":
			parts = append(parts, &genai.Part{
				FileData: &genai.FileData{FileURI: p.FileURI, MIMEType: p.MIMEType},
			})
		default:
			parts = append(parts, &genai.Part{Text: p.Text})
		}
	}

	config := &genai.GenerateContentConfig{}
	if prompt.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		}
	}
	if prompt.Mode == ModeStructured {
		config.ResponseMIMEType = "application/json"
	}

	return []*genai.Content{{Role: "user", Parts: parts}}, config
}
