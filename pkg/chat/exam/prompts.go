package exam

import (
	"fmt"
	"strings"
)

// QuizPrompt asks for an MCQ array in strict JSON.
func QuizPrompt(subjectLabel, topic string, count int) string {
	scope := subjectLabel
	if topic != "" {
		scope = fmt.Sprintf("%s (topic: %s)", subjectLabel, topic)
	}
	return fmt.Sprintf(
		"Generate exactly %d multiple-choice questions for the BCA subject %s.\n"+
			"Return ONLY a JSON array, no markdown, no commentary.\n"+
			"Each element: {\"question\": string, \"options\": [4 strings], \"correct_answer\": string, \"explanation\": string}.\n"+
			"The correct_answer must match one of the options exactly.",
		count, scope)
}

// ExamPrompt asks for a mixed paper of MCQ and subjective questions.
func ExamPrompt(subjectLabel string, mcqCount, subjectiveCount int) string {
	var parts []string
	if mcqCount > 0 {
		parts = append(parts, fmt.Sprintf(
			"%d MCQ items: {\"type\": \"mcq\", \"question\": string, \"options\": [4 strings], \"correct_answer\": string}", mcqCount))
	}
	if subjectiveCount > 0 {
		parts = append(parts, fmt.Sprintf(
			"%d subjective items: {\"type\": \"subjective\", \"question\": string, \"max_marks\": int}", subjectiveCount))
	}
	return fmt.Sprintf(
		"Create an exam paper for the BCA subject %s containing:\n- %s\n"+
			"Return ONLY a single JSON array with all items, no markdown, no commentary.",
		subjectLabel, strings.Join(parts, "\n- "))
}

// SubjectLabel combines a subject name with its semester when known.
func SubjectLabel(subjectName string, semester int) string {
	if semester > 0 {
		return fmt.Sprintf("%s (semester %d)", subjectName, semester)
	}
	return subjectName
}

// GradingPrompt asks for a structured evaluation of a subjective answer.
func GradingPrompt(subjectLabel, question, answer string, maxMarks int) string {
	scope := ""
	if subjectLabel != "" {
		scope = " for " + subjectLabel
	}
	return fmt.Sprintf(
		"You are a strict but fair BCA examiner%s. Grade the student's answer out of %d marks.\n\n"+
			"Question: %s\n\nStudent answer: %s\n\n"+
			"Return ONLY a JSON object:\n"+
			"{\"score\": int, \"feedback\": string, \"model_answer\": string, "+
			"\"missed_points\": [strings], \"suggested_keywords\": [strings], "+
			"\"strengths\": [strings], \"improvements\": [strings]}\n"+
			"Score must be an integer between 0 and %d.",
		scope, maxMarks, question, answer, maxMarks)
}

// EnrichmentPrompt fills the study aids when the grading pass skipped
// them.
func EnrichmentPrompt(question string) string {
	return fmt.Sprintf(
		"For the exam question below, return ONLY a JSON object:\n"+
			"{\"model_answer\": string, \"missed_points\": [up to 6 strings], \"suggested_keywords\": [up to 10 strings]}\n\n"+
			"Question: %s", question)
}
