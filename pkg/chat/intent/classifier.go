package intent

import (
	"strings"
)

// Intent labels
const (
	Academic  = "ACADEMIC"
	Command   = "COMMAND"
	Personal  = "PERSONAL"
	Ambiguous = "AMBIGUOUS"
)

// ContextMessage is a prior turn used by the follow-up heuristic.
type ContextMessage struct {
	Sender string
	Text   string
}

var personaKeywords = []string{
	"saurav", "jiya", "bhabhi", "19 april", "april 19", "19/04",
	"supreme", "architect", "creator", "developer",
}

var commandKeywords = []string{
	"start exam", "clear chat", "new chat", "export", "download",
	"reset", "help", "menu", "settings",
}

var academicKeywords = []string{
	"explain", "what", "how", "define", "teach me", "solve", "question",
	"example", "difference", "algorithm", "code", "unit", "chapter",
}

var subjectKeywords = []string{
	"bcs-", "mcs-", "java", "network", "dbms", "algorithm", "database",
	"os", "operating", "web", "html", "css", "sql", "python", "c++",
	"statistics", "math",
}

var selectionTokens = map[string]bool{
	"yes": true, "no": true, "more": true, "explain": true,
	"1": true, "2": true, "3": true, "4": true,
}

// Classify buckets a message into ACADEMIC | COMMAND | PERSONAL |
// AMBIGUOUS. Checks run in priority order; the final heuristic treats a
// short selection-like reply as academic when the recent context was.
func Classify(message string, history []ContextMessage) string {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, kw := range personaKeywords {
		if strings.Contains(lower, kw) {
			return Personal
		}
	}

	for _, kw := range commandKeywords {
		if strings.Contains(lower, kw) {
			return Command
		}
	}

	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return Academic
		}
	}
	for _, kw := range subjectKeywords {
		if strings.Contains(lower, kw) {
			return Academic
		}
	}

	if len(history) > 0 && len(lower) <= 50 {
		start := len(history) - 2
		if start < 0 {
			start = 0
		}
		var recent strings.Builder
		for _, m := range history[start:] {
			recent.WriteString(strings.ToLower(m.Text))
			recent.WriteString(" ")
		}
		recentText := recent.String()

		contextAcademic := false
		for _, kw := range append(append([]string{}, academicKeywords...), subjectKeywords...) {
			if strings.Contains(recentText, kw) {
				contextAcademic = true
				break
			}
		}
		if contextAcademic {
			for _, tok := range strings.Fields(lower) {
				if selectionTokens[tok] {
					return Academic
				}
			}
		}
	}

	return Ambiguous
}
