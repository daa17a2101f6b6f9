package exam

import (
	"errors"
	"fmt"
	"strings"

	"ai-studybuddy-be/pkg/chat/reply"
)

// ClampCount bounds a requested item count.
func ClampCount(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ParseQuiz recovers a question array from model output, drops items
// that are not well-formed MCQs (exactly 4 options, correct answer
// matching one of them verbatim) and slices to the requested count.
func ParseQuiz(raw string, count int) ([]map[string]interface{}, error) {
	parsed, err := reply.SafeParse(raw)
	if err != nil {
		return nil, err
	}
	list, ok := parsed.([]interface{})
	if !ok {
		return nil, errors.New("quiz response is not a JSON array")
	}

	items := make([]map[string]interface{}, 0, len(list))
	for _, it := range list {
		obj, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		if strings.TrimSpace(asString(obj["question"])) == "" {
			continue
		}
		options := stringList(obj["options"], 0)
		if len(options) != 4 {
			continue
		}
		correct := asString(obj["correct_answer"])
		valid := false
		for _, opt := range options {
			if opt == correct {
				valid = true
				break
			}
		}
		if !valid {
			continue
		}
		items = append(items, obj)
	}
	if len(items) == 0 {
		return nil, errors.New("quiz response has no valid questions")
	}
	if len(items) > count {
		items = items[:count]
	}
	return items, nil
}

// ExamItem is a normalized question for the mixed-paper endpoint.
type ExamItem struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	MaxMarks      int      `json:"max_marks,omitempty"`
}

// CoerceExamItems validates and normalizes raw exam questions. Item
// type is resolved from "type"/"question_type" or inferred from the
// presence of options; malformed entries are dropped.
func CoerceExamItems(parsed interface{}, total int) ([]ExamItem, error) {
	list, ok := parsed.([]interface{})
	if !ok {
		return nil, errors.New("exam response is not a JSON array")
	}

	items := make([]ExamItem, 0, len(list))
	for _, it := range list {
		obj, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		question := strings.TrimSpace(asString(obj["question"]))
		if question == "" {
			continue
		}

		rawType := strings.ToLower(asString(obj["type"]))
		if rawType == "" {
			rawType = strings.ToLower(asString(obj["question_type"]))
		}
		options := stringList(obj["options"], 0)

		itemType := ""
		switch {
		case strings.Contains(rawType, "subject"):
			itemType = "subjective"
		case strings.Contains(rawType, "mcq"), strings.Contains(rawType, "objective"):
			itemType = "mcq"
		case len(options) > 0:
			itemType = "mcq"
		default:
			itemType = "subjective"
		}

		item := ExamItem{Type: itemType, Question: question}
		if itemType == "mcq" {
			if len(options) == 0 {
				continue
			}
			item.Options = options
			item.CorrectAnswer = asString(obj["correct_answer"])
		} else {
			marks := asInt(obj["max_marks"], 10)
			if marks <= 0 {
				marks = 10
			}
			item.MaxMarks = marks
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, errors.New("exam response has no valid questions")
	}
	if len(items) > total {
		items = items[:total]
	}
	return items, nil
}

// Grade is the normalized subjective-grading result.
type Grade struct {
	Score             int      `json:"score"`
	MaxMarks          int      `json:"max_marks"`
	Feedback          string   `json:"feedback"`
	ModelAnswer       string   `json:"model_answer"`
	MissedPoints      []string `json:"missed_points"`
	SuggestedKeywords []string `json:"suggested_keywords"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
}

// ZeroGrade is returned when the student submitted nothing.
func ZeroGrade(maxMarks int) Grade {
	return Grade{
		Score:             0,
		MaxMarks:          maxMarks,
		Feedback:          "No answer submitted.",
		MissedPoints:      []string{"Answer not provided."},
		SuggestedKeywords: []string{},
		Strengths:         []string{},
		Improvements:      []string{"Write the answer in your own words and attempt again."},
	}
}

// NormalizeGrade coerces a parsed grading response: score clamped to
// [0, maxMarks], alias keys resolved, list lengths bounded.
func NormalizeGrade(parsed interface{}, maxMarks int) (Grade, error) {
	obj, ok := parsed.(map[string]interface{})
	if !ok {
		return Grade{}, errors.New("grading response is not a JSON object")
	}

	score := asInt(obj["score"], 0)
	if score < 0 {
		score = 0
	}
	if score > maxMarks {
		score = maxMarks
	}

	feedback := strings.TrimSpace(asString(obj["feedback"]))
	if feedback == "" {
		feedback = "Reviewed."
	}

	missed := stringList(obj["missed_points"], 6)
	if len(missed) == 0 {
		missed = stringList(obj["missing_points"], 6)
	}
	keywords := stringList(obj["suggested_keywords"], 10)
	if len(keywords) == 0 {
		keywords = stringList(obj["keywords"], 10)
	}
	strengths := stringList(obj["strengths"], 3)
	improvements := stringList(obj["improvements"], 3)
	if len(improvements) == 0 && len(missed) > 0 {
		n := len(missed)
		if n > 3 {
			n = 3
		}
		for _, m := range missed[:n] {
			improvements = append(improvements, fmt.Sprintf("Cover: %s", m))
		}
	}

	return Grade{
		Score:             score,
		MaxMarks:          maxMarks,
		Feedback:          feedback,
		ModelAnswer:       strings.TrimSpace(asString(obj["model_answer"])),
		MissedPoints:      missed,
		SuggestedKeywords: keywords,
		Strengths:         strengths,
		Improvements:      improvements,
	}, nil
}

// NeedsEnrichment reports whether a second model pass should fill the
// study aids.
func (g Grade) NeedsEnrichment() bool {
	return g.ModelAnswer == "" || len(g.MissedPoints) == 0 || len(g.SuggestedKeywords) == 0
}

// MergeEnrichment fills only the empty study-aid fields from a second
// grading pass.
func (g Grade) MergeEnrichment(parsed interface{}) Grade {
	obj, ok := parsed.(map[string]interface{})
	if !ok {
		return g
	}
	if g.ModelAnswer == "" {
		g.ModelAnswer = strings.TrimSpace(asString(obj["model_answer"]))
	}
	if len(g.MissedPoints) == 0 {
		g.MissedPoints = stringList(obj["missed_points"], 6)
	}
	if len(g.SuggestedKeywords) == 0 {
		g.SuggestedKeywords = stringList(obj["suggested_keywords"], 10)
	}
	return g
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}

func asInt(v interface{}, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		var out int
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%d", &out); err == nil {
			return out
		}
	}
	return fallback
}

// stringList filters a raw list to non-empty strings; limit 0 means
// unbounded.
func stringList(v interface{}, limit int) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, it := range raw {
		s, ok := it.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
