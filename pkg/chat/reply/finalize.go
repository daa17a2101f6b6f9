package reply

import (
	"fmt"
	"strings"
)

// Openers stripped from answers to keep the voice conversational.
var bannedOpeners = []string{
	"sure",
	"as an ai",
	"i understand",
	"i can",
	"certainly",
	"absolutely",
}

// StripBannedOpeners drops a robotic opener plus trailing punctuation.
// If nothing remains, the original text stays.
func StripBannedOpeners(text string) string {
	raw := strings.TrimSpace(text)
	lower := strings.ToLower(raw)
	for _, opener := range bannedOpeners {
		if strings.HasPrefix(lower, opener) {
			trimmed := strings.TrimLeft(raw[len(opener):], " ,:.-")
			if trimmed != "" {
				return trimmed
			}
			return raw
		}
	}
	return raw
}

// Suggestion formatting styles, rotated per session.
const (
	StyleNumeric = "numeric"
	StyleAlpha   = "alpha"
	StyleBullet  = "bullet"
)

var styles = []string{StyleNumeric, StyleAlpha, StyleBullet}

// StyleForIndex maps a rotating per-session counter to a style name.
func StyleForIndex(idx int) string {
	if idx < 0 {
		idx = 0
	}
	return styles[idx%len(styles)]
}

// FormatSuggestions prefixes suggestions in the given style.
func FormatSuggestions(style string, suggestions []string) []string {
	formatted := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		switch style {
		case StyleNumeric:
			formatted = append(formatted, fmt.Sprintf("%d. %s", i+1, s))
		case StyleAlpha:
			formatted = append(formatted, fmt.Sprintf("%c. %s", 'a'+i, s))
		default:
			formatted = append(formatted, fmt.Sprintf("• %s", s))
		}
	}
	return formatted
}

// Finalize applies the opener filter and suggestion styling to a payload.
func Finalize(p Payload, styleIdx int) Payload {
	p.Answer = StripBannedOpeners(p.Answer)
	p.NextSuggestions = FormatSuggestions(StyleForIndex(styleIdx), p.NextSuggestions)
	return p
}
