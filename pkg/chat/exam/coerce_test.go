package exam

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-studybuddy-be/pkg/chat/reply"
)

func TestClampCount(t *testing.T) {
	assert.Equal(t, 1, ClampCount(0, 1, 50))
	assert.Equal(t, 50, ClampCount(80, 1, 50))
	assert.Equal(t, 10, ClampCount(10, 1, 50))
}

func mcqJSON(question string) string {
	return `{"question": "` + question + `", "options": ["a", "b", "c", "d"], "correct_answer": "a"}`
}

func TestParseQuizSlicesToCount(t *testing.T) {
	raw := "[" + mcqJSON("q1") + "," + mcqJSON("q2") + "," + mcqJSON("q3") + "]"
	items, err := ParseQuiz(raw, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "q1", items[0]["question"])
}

func TestParseQuizFencedArray(t *testing.T) {
	raw := "```json\n[" + mcqJSON("q1") + "]\n```"
	items, err := ParseQuiz(raw, 5)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestParseQuizRejectsObject(t *testing.T) {
	_, err := ParseQuiz(mcqJSON("q1"), 5)
	assert.Error(t, err)
}

func TestParseQuizDropsMalformedMCQs(t *testing.T) {
	raw := `[
		{"question": "ok", "options": ["a", "b", "c", "d"], "correct_answer": "c"},
		{"question": "three options", "options": ["a", "b", "c"], "correct_answer": "a"},
		{"question": "wrong answer", "options": ["a", "b", "c", "d"], "correct_answer": "e"},
		{"question": "", "options": ["a", "b", "c", "d"], "correct_answer": "a"}
	]`
	items, err := ParseQuiz(raw, 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "ok", items[0]["question"])
}

func TestCoerceExamItems(t *testing.T) {
	raw := `[
		{"type": "mcq", "question": "Pick one", "options": ["a", "b"], "correct_answer": "a"},
		{"question_type": "subjective", "question": "Explain stacks", "max_marks": 5},
		{"question": "Implied mcq", "options": ["x", "y"]},
		{"question": "Implied subjective"},
		{"question": ""},
		{"type": "mcq", "question": "Broken mcq without options"}
	]`
	parsed, err := reply.SafeParse(raw)
	assert.NoError(t, err)

	items, err := CoerceExamItems(parsed, 10)
	assert.NoError(t, err)
	assert.Len(t, items, 4)

	assert.Equal(t, "mcq", items[0].Type)
	assert.Equal(t, "a", items[0].CorrectAnswer)
	assert.Equal(t, "subjective", items[1].Type)
	assert.Equal(t, 5, items[1].MaxMarks)
	assert.Equal(t, "mcq", items[2].Type)
	assert.Equal(t, "subjective", items[3].Type)
	assert.Equal(t, 10, items[3].MaxMarks)
}

func TestCoerceExamItemsSlicesToTotal(t *testing.T) {
	parsed, _ := reply.SafeParse(`[{"question": "a"}, {"question": "b"}, {"question": "c"}]`)
	items, err := CoerceExamItems(parsed, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCoerceExamItemsAllInvalid(t *testing.T) {
	parsed, _ := reply.SafeParse(`[{"question": ""}, "junk"]`)
	_, err := CoerceExamItems(parsed, 5)
	assert.Error(t, err)
}

func TestZeroGrade(t *testing.T) {
	g := ZeroGrade(10)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, 10, g.MaxMarks)
	assert.Equal(t, "No answer submitted.", g.Feedback)
	assert.Equal(t, []string{"Answer not provided."}, g.MissedPoints)
}

func TestNormalizeGradeClampsScore(t *testing.T) {
	parsed, _ := reply.SafeParse(`{"score": 25, "feedback": "good"}`)
	g, err := NormalizeGrade(parsed, 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, g.Score)

	parsed, _ = reply.SafeParse(`{"score": -2}`)
	g, err = NormalizeGrade(parsed, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, "Reviewed.", g.Feedback)
}

func TestNormalizeGradeAliasesAndBounds(t *testing.T) {
	parsed, _ := reply.SafeParse(`{
		"score": 6,
		"missing_points": ["p1", "p2", "p3", "p4", "p5", "p6", "p7"],
		"keywords": ["k1", "k2"],
		"strengths": ["s1", "s2", "s3", "s4"]
	}`)
	g, err := NormalizeGrade(parsed, 10)
	assert.NoError(t, err)
	assert.Len(t, g.MissedPoints, 6)
	assert.Equal(t, []string{"k1", "k2"}, g.SuggestedKeywords)
	assert.Len(t, g.Strengths, 3)
	// Improvements derived from missed points when absent.
	assert.Len(t, g.Improvements, 3)
	assert.Equal(t, "Cover: p1", g.Improvements[0])
}

func TestNormalizeGradeScoreAsString(t *testing.T) {
	parsed, _ := reply.SafeParse(`{"score": "7"}`)
	g, err := NormalizeGrade(parsed, 10)
	assert.NoError(t, err)
	assert.Equal(t, 7, g.Score)
}

func TestGradeEnrichment(t *testing.T) {
	g := Grade{Score: 5, MaxMarks: 10, Feedback: "ok"}
	assert.True(t, g.NeedsEnrichment())

	parsed, _ := reply.SafeParse(`{
		"model_answer": "Ideal answer",
		"missed_points": ["p1"],
		"suggested_keywords": ["k1"]
	}`)
	merged := g.MergeEnrichment(parsed)
	assert.Equal(t, "Ideal answer", merged.ModelAnswer)
	assert.False(t, merged.NeedsEnrichment())

	full := Grade{ModelAnswer: "keep", MissedPoints: []string{"x"}, SuggestedKeywords: []string{"y"}}
	kept := full.MergeEnrichment(parsed)
	assert.Equal(t, "keep", kept.ModelAnswer)
	assert.Equal(t, []string{"x"}, kept.MissedPoints)
}
