package ai

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToContentsKeepsTextAlongsideAttachments(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47}
	history := []Message{
		{
			Role:    "user",
			Content: "look at this",
			Parts: []Part{
				{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString(png)},
			},
		},
	}

	contents := toContents(history)

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	assert.Equal(t, "look at this", contents[0].Parts[0].Text)
	require.NotNil(t, contents[0].Parts[1].InlineData)
	assert.Equal(t, "image/png", contents[0].Parts[1].InlineData.MIMEType)
	assert.Equal(t, png, contents[0].Parts[1].InlineData.Data)
}

func TestToContentsMapsRoles(t *testing.T) {
	contents := toContents([]Message{
		{Role: "user", Content: "hi"},
		{Role: "model", Content: "hello"},
	})

	require.Len(t, contents, 2)
	assert.Equal(t, "user", string(contents[0].Role))
	assert.Equal(t, "model", string(contents[1].Role))
}

func TestToContentsDropsUndecodableAttachment(t *testing.T) {
	contents := toContents([]Message{
		{
			Role:    "user",
			Content: "caption",
			Parts: []Part{
				{MimeType: "image/png", Data: "not-base64!!!"},
			},
		},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 1)
	assert.Equal(t, "caption", contents[0].Parts[0].Text)
}

func TestToContentsKeepsTextOnlyParts(t *testing.T) {
	contents := toContents([]Message{
		{Role: "user", Parts: []Part{{Text: "first"}, {Text: "second"}}},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	assert.Equal(t, "first", contents[0].Parts[0].Text)
	assert.Equal(t, "second", contents[0].Parts[1].Text)
}
