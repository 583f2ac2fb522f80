package negotiation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/llmjson"
)

// ParsePlan разбирает сырой ответ генератора.
//
// В ModeFreeText объект ищется внутри текста, в ModeStructured весь текст и есть документ.
// Частично заполненный план не чинится: любой недостающий под isValid ключ это ErrSchema.
func ParsePlan(raw string, mode ai.Mode) (NegotiationPlan, error) {
	doc := strings.TrimSpace(raw)

	if mode == ai.ModeFreeText {
		obj, err := llmjson.ExtractObject(doc)
		if err != nil {
			return NegotiationPlan{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
		doc = obj
	} else if len(doc) > llmjson.MaxScanBytes {
		return NegotiationPlan{}, fmt.Errorf("%w: %w", ErrParse, llmjson.ErrTooLarge)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		return NegotiationPlan{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if fields == nil {
		return NegotiationPlan{}, fmt.Errorf("%w: document is not an object", ErrParse)
	}

	isValid, err := requireBool(fields, "isValid")
	if err != nil {
		return NegotiationPlan{}, err
	}

	if !isValid {
		reason, err := requireString(fields, "reason")
		if err != nil {
			return NegotiationPlan{}, err
		}
		return NegotiationPlan{IsValid: false, Reason: reason}, nil
	}

	priceRange, err := requireString(fields, "priceRange")
	if err != nil {
		return NegotiationPlan{}, err
	}
	reasoning, err := requireString(fields, "reasoning")
	if err != nil {
		return NegotiationPlan{}, err
	}
	scripts, err := requireScripts(fields, "scripts")
	if err != nil {
		return NegotiationPlan{}, err
	}

	return NegotiationPlan{
		IsValid:    true,
		PriceRange: priceRange,
		Reasoning:  reasoning,
		Scripts:    scripts,
	}, nil
}

func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

func requireBool(fields map[string]json.RawMessage, key string) (bool, error) {
	raw, ok := present(fields, key)
	if !ok {
		return false, fmt.Errorf("%w: missing %q", ErrSchema, key)
	}

	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrSchema, key)
	}
	return v, nil
}

func requireString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := present(fields, key)
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrSchema, key)
	}

	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%w: %q is not a string", ErrSchema, key)
	}
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %q is empty", ErrSchema, key)
	}
	return v, nil
}

func requireScripts(fields map[string]json.RawMessage, key string) ([]Script, error) {
	raw, ok := present(fields, key)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrSchema, key)
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %q is not an array of objects", ErrSchema, key)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrSchema, key)
	}

	scripts := make([]Script, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: %s[%d] is null", ErrSchema, key, i)
		}
		title, err := requireString(item, "title")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		content, err := requireString(item, "content")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		scripts = append(scripts, Script{Title: title, Content: content})
	}

	return scripts, nil
}
