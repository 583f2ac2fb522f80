package ai

import "errors"

var (
	// ErrUpstream: сеть, таймаут, не-2xx от провайдера или пустой ответ.
	ErrUpstream = errors.New("ai: upstream generation failed")

	// ErrUnsupportedMedia: провайдер не принимает такой тип вложения.
	ErrUnsupportedMedia = errors.New("ai: unsupported media type")
)

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
