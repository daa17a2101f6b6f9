package reply

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Payload is the structured reply the client always receives.
type Payload struct {
	Answer          string   `json:"answer"`
	NextSuggestions []string `json:"next_suggestions"`
}

// Result tags whether the model output parsed cleanly or the raw text
// was used as a fallback answer.
type Result struct {
	Payload  Payload
	Fallback bool // raw text used as answer
}

const fillerSuggestion = "Practice MCQ"

// CleanText strips markdown code fences around a JSON body.
func CleanText(text string) string {
	cleaned := strings.TrimSpace(text)
	if idx := strings.Index(cleaned, "```json"); idx != -1 {
		cleaned = cleaned[idx+len("```json"):]
		if end := strings.Index(cleaned, "```"); end != -1 {
			cleaned = cleaned[:end]
		}
		return strings.TrimSpace(cleaned)
	}
	if idx := strings.Index(cleaned, "```"); idx != -1 {
		cleaned = cleaned[idx+3:]
		if end := strings.Index(cleaned, "```"); end != -1 {
			cleaned = cleaned[:end]
		}
		return strings.TrimSpace(cleaned)
	}
	return cleaned
}

// SafeParse recovers a JSON value from model output: direct parse,
// then the first array/object substring, then jsonrepair as last resort.
func SafeParse(text string) (interface{}, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, errors.New("empty JSON")
	}

	var v interface{}
	if err := json.Unmarshal([]byte(cleaned), &v); err == nil {
		return v, nil
	}

	if candidate, ok := extractJSONSubstring(cleaned); ok {
		if err := json.Unmarshal([]byte(candidate), &v); err == nil {
			return v, nil
		}
		if repaired, err := jsonrepair.JSONRepair(candidate); err == nil {
			if err := json.Unmarshal([]byte(repaired), &v); err == nil {
				return v, nil
			}
		}
	}

	if repaired, err := jsonrepair.JSONRepair(cleaned); err == nil {
		if err := json.Unmarshal([]byte(repaired), &v); err == nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("invalid JSON: %q", truncate(cleaned, 80))
}

// extractJSONSubstring picks the earliest '['/'{' and the matching last
// bracket. Models often wrap JSON with prose.
func extractJSONSubstring(s string) (string, bool) {
	firstArr := strings.Index(s, "[")
	firstObj := strings.Index(s, "{")

	start := -1
	closing := ""
	switch {
	case firstArr == -1 && firstObj == -1:
		return "", false
	case firstObj == -1 || (firstArr != -1 && firstArr < firstObj):
		start = firstArr
		closing = "]"
	default:
		start = firstObj
		closing = "}"
	}

	end := strings.LastIndex(s, closing)
	if end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// BuildPayload pads/truncates suggestions to exactly 3 entries.
func BuildPayload(answer string, suggestions []string) Payload {
	out := make([]string, 0, 3)
	out = append(out, suggestions...)
	for len(out) < 3 {
		out = append(out, fillerSuggestion)
	}
	return Payload{
		Answer:          strings.TrimSpace(answer),
		NextSuggestions: out[:3],
	}
}

// ContextSuggestions derives topic-aware filler suggestions.
func ContextSuggestions(hint string) []string {
	if hint == "" {
		hint = "this topic"
	}
	return []string{
		fmt.Sprintf("Give a simple example on %s", hint),
		fmt.Sprintf("Explain %s in 5 bullet points", hint),
		fmt.Sprintf("Practice 10 MCQs on %s", hint),
	}
}

// Normalize turns raw model output into a Payload. The answer is coerced
// to a string, suggestions are filtered to non-empty strings, merged
// with context fillers and clamped to exactly 3. Any parse/validation
// failure falls back to the raw text as the answer.
func Normalize(raw string, contextSuggestions []string) Result {
	payload, err := normalize(raw, contextSuggestions)
	if err != nil {
		fallbackText := raw
		if fallbackText == "" {
			fallbackText = "No response generated."
		}
		return Result{
			Payload:  BuildPayload(fallbackText, contextSuggestions),
			Fallback: true,
		}
	}
	return Result{Payload: payload}
}

func normalize(raw string, contextSuggestions []string) (Payload, error) {
	parsed, err := SafeParse(raw)
	if err != nil {
		return Payload{}, err
	}

	obj, ok := parsed.(map[string]interface{})
	if !ok {
		return Payload{}, errors.New("reply is not a JSON object")
	}

	answerVal, hasAnswer := obj["answer"]
	suggestionsVal, hasSuggestions := obj["next_suggestions"]
	if !hasAnswer || !hasSuggestions {
		return Payload{}, errors.New("missing 'answer' or 'next_suggestions' fields")
	}

	answer, ok := answerVal.(string)
	if !ok {
		answer = fmt.Sprintf("%v", answerVal)
	}

	rawList, ok := suggestionsVal.([]interface{})
	if !ok {
		return Payload{}, errors.New("next_suggestions must be a list")
	}

	var cleaned []string
	for _, s := range rawList {
		str, ok := s.(string)
		if !ok {
			continue
		}
		str = strings.TrimSpace(str)
		if str != "" {
			cleaned = append(cleaned, str)
		}
	}

	merged := append([]string{}, cleaned...)
	for _, s := range contextSuggestions {
		if !containsString(merged, s) {
			merged = append(merged, s)
		}
	}
	if len(merged) == 0 {
		merged = contextSuggestions
	}
	return BuildPayload(answer, merged), nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
