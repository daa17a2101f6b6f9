package prompt

import (
	"fmt"
	"strings"
)

var greetings = []string{
	"hi", "hello", "hey", "namaste", "yo", "hola", "good morning",
	"good afternoon", "good evening", "kaise ho", "kya haal",
}

// IsGreeting matches short standalone greetings.
func IsGreeting(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, g := range greetings {
		if lower == g || strings.HasPrefix(lower, g+" ") || strings.HasPrefix(lower, g+"!") {
			return true
		}
	}
	return false
}

// IsTopicSwitch decides whether the buffered topic context should reset.
// A greeting always resets; otherwise low word overlap with the last
// user message signals a new topic.
func IsTopicSwitch(message, lastUserMessage string) bool {
	if IsGreeting(message) {
		return true
	}
	if lastUserMessage == "" {
		return false
	}
	return wordOverlap(message, lastUserMessage) < 0.15
}

func wordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	common := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			common++
		}
	}
	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	return float64(common) / float64(smaller)
}

func wordSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,!?;:")
		if len(w) > 2 {
			out[w] = struct{}{}
		}
	}
	return out
}

var basicQuestionTriggers = []string{
	"what is", "define", "meaning of", "full form", "expand", "basics of",
}

// IsBasicQuestion flags short definitional asks for the friendly roast.
func IsBasicQuestion(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	if len(strings.Fields(lower)) > 8 {
		return false
	}
	for _, t := range basicQuestionTriggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// InferGender guesses from the stored profile field only.
func InferGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m":
		return "male"
	case "female", "f":
		return "female"
	default:
		return ""
	}
}

// Salutation picks the direct-address term. The creator account gets
// a personal one.
func Salutation(username, gender string, isCreator bool) string {
	if isCreator || strings.EqualFold(username, "saurav") {
		return "Saurav bhai"
	}
	switch InferGender(gender) {
	case "female":
		return "Behen"
	case "male":
		return "Bhai"
	default:
		return "Buddy"
	}
}

// MaybeGreetingPrefix occasionally returns a salutation prefix. The
// caller supplies the random roll so behavior stays testable.
func MaybeGreetingPrefix(salutation string, roll float64) string {
	if roll < 0.2 {
		return salutation
	}
	return ""
}

// GreetingHint produces a time-aware opener for the first exchange of
// a session.
func GreetingHint(hour, historyLen int) string {
	if historyLen > 0 {
		return ""
	}
	var timeOfDay string
	switch {
	case hour >= 5 && hour < 12:
		timeOfDay = "Good morning"
	case hour >= 12 && hour < 17:
		timeOfDay = "Good afternoon"
	case hour >= 17 && hour < 23:
		timeOfDay = "Good evening"
	default:
		timeOfDay = "Late night grind"
	}
	return fmt.Sprintf("This is the first response in the session. Open warmly with a '%s' vibe, then answer.", timeOfDay)
}

var easterEggMarkers = []string{"19 april", "april 19"}

// EasterEggAllowed scans the recent AI messages for the anniversary
// mention so it never repeats within the window.
func EasterEggAllowed(recentAIMessages []string, window int) bool {
	start := len(recentAIMessages) - window
	if start < 0 {
		start = 0
	}
	for _, m := range recentAIMessages[start:] {
		lower := strings.ToLower(m)
		for _, marker := range easterEggMarkers {
			if strings.Contains(lower, marker) {
				return false
			}
		}
	}
	return true
}

var startFromBeginningTriggers = []string{
	"start from beginning", "start from the beginning", "shuru se",
	"from unit 1", "start unit 1", "begin the course", "start the subject",
}

// IsStartFromBeginning matches requests to restart a subject from Unit 1.
func IsStartFromBeginning(message string) bool {
	lower := strings.ToLower(message)
	for _, t := range startFromBeginningTriggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

var studyTools = map[string]string{
	"viva":        "Act as a strict external examiner. Ask one viva question at a time on %s, wait for the answer, then evaluate it honestly and ask the next.",
	"lab work":    "Provide a practical lab exercise for %s: problem statement, expected output, then a step-by-step solution with code.",
	"pyqs":        "List the most frequently asked previous-year exam questions for %s, grouped by unit, with marks weightage.",
	"notes":       "Generate concise exam-ready notes on %s: definitions, key points as numbered lists, and one example per concept.",
	"assignments": "Create an assignment set for %s: 5 questions mixing theory and practical, with marks allocation.",
	"summary":     "Summarize the full syllabus of %s unit-by-unit in a compact revision format.",
}

// StudyToolPrompt returns the tool-specific directive, or "" when the
// tool name is unknown.
func StudyToolPrompt(tool, subjectLabel string) string {
	if subjectLabel == "" {
		subjectLabel = "the selected subject"
	}
	tpl, ok := studyTools[strings.ToLower(strings.TrimSpace(tool))]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tpl, subjectLabel)
}

// DetectStudyTool matches a message against the known tool names.
func DetectStudyTool(message string) string {
	lower := strings.ToLower(message)
	for tool := range studyTools {
		if strings.Contains(lower, tool) {
			return tool
		}
	}
	return ""
}

// Unit1Overview builds the guided "start from beginning" reply body.
func Unit1Overview(subjectLabel string, points []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Chalo %s shuru karte hain, Unit 1 se! 🚀\n\n", subjectLabel))
	for i, p := range points {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, p))
	}
	b.WriteString("\nKis point se start karein? (1/2/3/4)")
	return b.String()
}
