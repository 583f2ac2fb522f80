package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGeminiRequest(t *testing.T) {
	contents, config := toGeminiRequest(Prompt{
		System: "system text",
		Parts: []Part{
			TextPart("describe"),
			InlinePart("audio/mpeg", []byte{9, 9}),
			FilePart("image/png", "https://files.example.com/img.png"),
		},
		Mode: ModeStructured,
	})

	require.Len(t, contents, 1)
	assert.Equal(t, "user", contents[0].Role)
	require.Len(t, contents[0].Parts, 3)

	assert.Equal(t, "describe", contents[0].Parts[0].Text)

	require.NotNil(t, contents[0].Parts[1].InlineData)
	assert.Equal(t, "audio/mpeg", contents[0].Parts[1].InlineData.MIMEType)
	assert.Equal(t, []byte{9, 9}, contents[0].Parts[1].InlineData.Data)

	require.NotNil(t, contents[0].Parts[2].FileData)
	assert.Equal(t, "https://files.example.com/img.png", contents[0].Parts[2].FileData.FileURI)

	require.NotNil(t, config.SystemInstruction)
	assert.Equal(t, "system text", config.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
}

func TestToGeminiRequest_FreeText(t *testing.T) {
	_, config := toGeminiRequest(Prompt{Parts: []Part{TextPart("hi")}})

	assert.Nil(t, config.SystemInstruction)
	assert.Empty(t, config.ResponseMIMEType)
}
