package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		history []ContextMessage
		want    string
	}{
		{"persona trigger wins", "who is saurav and explain java", nil, Personal},
		{"jiya mention", "tell me about jiya", nil, Personal},
		{"command trigger", "please clear chat", nil, Command},
		{"academic keyword", "explain inheritance", nil, Academic},
		{"subject keyword", "dbms normalization notes", nil, Academic},
		{"subject code", "bcs-041 unit 2", nil, Academic},
		{"bare greeting", "hello there friend", nil, Ambiguous},
		{
			"short follow-up after academic context",
			"yes",
			[]ContextMessage{{Sender: "user", Text: "explain stacks"}, {Sender: "ai", Text: "Stacks are LIFO..."}},
			Academic,
		},
		{
			"digit selection after academic context",
			"2",
			[]ContextMessage{{Sender: "ai", Text: "1) Arrays 2) Linked lists, kaunsa topic?"}},
			Ambiguous, // "kaunsa topic" has no academic keyword; digit alone is not enough
		},
		{
			"digit selection after explain context",
			"2",
			[]ContextMessage{{Sender: "ai", Text: "Main kaunsa algorithm explain karun? 1) BFS 2) DFS"}},
			Academic,
		},
		{
			"exactly 50 chars still hits follow-up heuristic",
			strings.Repeat("x", 46) + " yes",
			[]ContextMessage{{Sender: "ai", Text: "explain stacks"}},
			Academic,
		},
		{
			"whitespace padding does not defeat the length check",
			"   yes" + strings.Repeat(" ", 60),
			[]ContextMessage{{Sender: "ai", Text: "explain stacks"}},
			Academic,
		},
		{
			"long reply never hits follow-up heuristic",
			"hmm let me think about it for a while, maybe tomorrow morning works",
			[]ContextMessage{{Sender: "ai", Text: "explain stacks"}},
			Ambiguous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message, tt.history))
		})
	}
}
