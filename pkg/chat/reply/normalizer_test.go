package reply

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCleanJSON(t *testing.T) {
	raw := `{"answer": "Stacks are LIFO", "next_suggestions": ["Practice quiz", "See example code", "Go to Unit 2"]}`
	res := Normalize(raw, nil)
	assert.False(t, res.Fallback)
	assert.Equal(t, "Stacks are LIFO", res.Payload.Answer)
	assert.Len(t, res.Payload.NextSuggestions, 3)
	assert.Equal(t, "Practice quiz", res.Payload.NextSuggestions[0])
}

func TestNormalizeFencedJSON(t *testing.T) {
	raw := "```json\n{\"answer\": \"ok\", \"next_suggestions\": []}\n```"
	res := Normalize(raw, ContextSuggestions("stacks"))
	assert.False(t, res.Fallback)
	assert.Equal(t, "ok", res.Payload.Answer)
	assert.Equal(t, "Give a simple example on stacks", res.Payload.NextSuggestions[0])
}

func TestNormalizeProseWrappedJSON(t *testing.T) {
	raw := `Here you go! {"answer": "Queues are FIFO", "next_suggestions": ["More"]} Hope that helps.`
	res := Normalize(raw, nil)
	assert.False(t, res.Fallback)
	assert.Equal(t, "Queues are FIFO", res.Payload.Answer)
}

func TestNormalizeFallbackOnGarbage(t *testing.T) {
	raw := "Namaste! Stacks LIFO hote hain, bahut simple concept hai."
	res := Normalize(raw, ContextSuggestions(""))
	assert.True(t, res.Fallback)
	assert.Equal(t, raw, res.Payload.Answer)
	assert.Len(t, res.Payload.NextSuggestions, 3)
}

func TestNormalizeFallbackOnEmpty(t *testing.T) {
	res := Normalize("", nil)
	assert.True(t, res.Fallback)
	assert.Equal(t, "No response generated.", res.Payload.Answer)
	assert.Equal(t, []string{"Practice MCQ", "Practice MCQ", "Practice MCQ"}, res.Payload.NextSuggestions)
}

func TestNormalizeCoercesNonStringAnswer(t *testing.T) {
	raw := `{"answer": 42, "next_suggestions": ["a", "", 7, "b"]}`
	res := Normalize(raw, nil)
	assert.False(t, res.Fallback)
	assert.Equal(t, "42", res.Payload.Answer)
	assert.Equal(t, []string{"a", "b", "Practice MCQ"}, res.Payload.NextSuggestions)
}

func TestNormalizeRejectsMissingFields(t *testing.T) {
	res := Normalize(`{"answer": "only answer"}`, ContextSuggestions("java"))
	assert.True(t, res.Fallback)
}

func TestNormalizeAlwaysExactlyThree(t *testing.T) {
	raw := `{"answer": "x", "next_suggestions": ["1", "2", "3", "4", "5"]}`
	res := Normalize(raw, nil)
	assert.Len(t, res.Payload.NextSuggestions, 3)
}

func TestBuildPayloadPadsWithFiller(t *testing.T) {
	p := BuildPayload("  ans  ", []string{"one"})
	assert.Equal(t, "ans", p.Answer)
	assert.Equal(t, []string{"one", "Practice MCQ", "Practice MCQ"}, p.NextSuggestions)
}

func TestStripBannedOpeners(t *testing.T) {
	assert.Equal(t, "here is the answer", StripBannedOpeners("Sure, here is the answer"))
	assert.Equal(t, "model hoon", StripBannedOpeners("As an AI model hoon"))
	assert.Equal(t, "Great question", StripBannedOpeners("Great question"))
	// Opener with nothing after it stays untouched.
	assert.Equal(t, "Sure.", StripBannedOpeners("Sure."))
}

func TestFormatSuggestionsStyles(t *testing.T) {
	in := []string{"a", "b"}
	assert.Equal(t, []string{"1. a", "2. b"}, FormatSuggestions(StyleNumeric, in))
	assert.Equal(t, []string{"a. a", "b. b"}, FormatSuggestions(StyleAlpha, in))
	assert.Equal(t, []string{"• a", "• b"}, FormatSuggestions(StyleBullet, in))
}

func TestStyleForIndexRotates(t *testing.T) {
	assert.Equal(t, StyleNumeric, StyleForIndex(0))
	assert.Equal(t, StyleAlpha, StyleForIndex(1))
	assert.Equal(t, StyleBullet, StyleForIndex(2))
	assert.Equal(t, StyleNumeric, StyleForIndex(3))
}
