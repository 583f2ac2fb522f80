package ai

import "context"

// AI: внешний генератор текста, не знает ни про переговоры, ни про БД.
// Один вызов GetReply = один сетевой запрос, без ретраев.
type AI interface {
	GetReply(ctx context.Context, prompt Prompt) (string, error)
}

// Mode: ограничение формата ответа.
type Mode int

const (
	// ModeFreeText: без ограничений, JSON вытаскивает вызывающий.
	ModeFreeText Mode = iota
	// ModeStructured: строгий JSON-режим провайдера.
	ModeStructured
)

func (m Mode) String() string {
	if m == ModeStructured {
		return "structured"
	}
	return "free_text"
}

// Part это текст, инлайн-медиа или ссылка на файл.
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
	FileURI  string
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func InlinePart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

func FilePart(mimeType, uri string) Part {
	return Part{MIMEType: mimeType, FileURI: uri}
}

func (p Part) IsMedia() bool {
	return len(p.Data) > 0 || p.FileURI != ""
}

// Prompt: универсальный формат запроса к генератору.
type Prompt struct {
	Stage  string // метка этапа для логов и метрик
	System string
	Parts  []Part
	Mode   Mode
}

// Text склеивает все текстовые части.
func (p Prompt) Text() string {
	var out string
	for _, part := range p.Parts {
		if part.IsMedia() {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += part.Text
	}
	return out
}
