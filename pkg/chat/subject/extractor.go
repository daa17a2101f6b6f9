package subject

import (
	"strconv"
	"strings"

	"ai-studybuddy-be/internal/constant"
)

// UnknownSubject is the sentinel code when nothing could be detected.
const UnknownSubject = "UNKNOWN"

// Context is the extracted subject/topic signal for one message.
type Context struct {
	SubjectCode   string   `json:"subject_code"`
	SubjectName   string   `json:"subject_name"`
	TopicKeywords []string `json:"topic_keywords"`
	Unit          int      `json:"unit"` // 0 when absent
	Confidence    float64  `json:"confidence"`
}

var topicStopwords = map[string]bool{
	"explain": true, "teach": true, "define": true, "what": true, "unit": true,
}

// Extract detects a subject code and topic keywords in a message.
// Detection confidence: explicit code 0.95, name keyword 0.80, caller
// fallback 0.60, otherwise UNKNOWN with 0.
func Extract(message, selectedSubject string) Context {
	lower := strings.ToLower(message)

	detected := ""
	confidence := 0.0

	for _, code := range constant.SubjectCodes() {
		if strings.Contains(lower, code) {
			detected = code
			confidence = 0.95
			break
		}
	}

	if detected == "" {
		for _, nk := range constant.SubjectNameKeywords {
			if strings.Contains(lower, nk.Keyword) {
				detected = nk.Code
				confidence = 0.80
				break
			}
		}
	}

	if detected == "" && selectedSubject != "" {
		detected = strings.ToLower(selectedSubject)
		confidence = 0.60
	}

	words := strings.Fields(lower)

	var topics []string
	for _, w := range words {
		if len(w) > 4 && !topicStopwords[w] {
			topics = append(topics, w)
			if len(topics) == 5 {
				break
			}
		}
	}

	unit := 0
	if strings.Contains(lower, "unit") {
		for i, w := range words {
			if w == "unit" && i+1 < len(words) {
				if n, err := strconv.Atoi(strings.Trim(words[i+1], ":,;")); err == nil {
					unit = n
				}
			}
		}
	}

	ctx := Context{
		SubjectCode:   detected,
		SubjectName:   "Unknown Subject",
		TopicKeywords: topics,
		Unit:          unit,
		Confidence:    confidence,
	}
	if detected == "" {
		ctx.SubjectCode = UnknownSubject
	} else if title := constant.SubjectTitle(detected); title != detected {
		ctx.SubjectName = title
	}
	return ctx
}
