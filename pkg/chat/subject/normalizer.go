package subject

import (
	"strings"

	"ai-studybuddy-be/internal/constant"
)

// similarityCutoff matches near-miss tokens onto known vocabulary.
const similarityCutoff = 0.86

func knownVocabulary() map[string]bool {
	known := make(map[string]bool)
	for _, semMap := range constant.SubjectTitles {
		for code, title := range semMap {
			known[strings.ToLower(code)] = true
			known[strings.ToLower(title)] = true
		}
	}
	for _, topics := range constant.SubjectTopics {
		for _, topic := range topics {
			known[strings.ToLower(topic)] = true
		}
	}
	return known
}

// NormalizeMessage rewrites typo'd tokens onto the closest known subject
// code, title, or topic. Tokens already known, or without a close enough
// match, pass through untouched.
func NormalizeMessage(text string) string {
	if text == "" {
		return text
	}
	known := knownVocabulary()

	words := strings.Fields(text)
	fixed := make([]string, 0, len(words))
	for _, w := range words {
		key := sanitizeToken(w)
		if key == "" || known[key] {
			fixed = append(fixed, w)
			continue
		}
		best := ""
		bestScore := 0.0
		for candidate := range known {
			score := similarity(key, candidate)
			if score >= similarityCutoff && score > bestScore {
				best = candidate
				bestScore = score
			}
		}
		if best != "" {
			fixed = append(fixed, best)
		} else {
			fixed = append(fixed, w)
		}
	}
	return strings.Join(fixed, " ")
}

func sanitizeToken(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// similarity is a normalized edit-distance ratio in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	max := la
	if lb > max {
		max = lb
	}
	return 1 - float64(levenshtein(a, b))/float64(max)
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
