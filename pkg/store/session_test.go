package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchTopicCapsAtFive(t *testing.T) {
	s := NewSessionState("sid", "uid")
	for _, topic := range []string{"a", "b", "c", "d", "e", "f"} {
		s.TouchTopic(topic)
	}
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, s.Topics)
	assert.Equal(t, "f", s.LastTopic())
}

func TestTouchTopicMovesRepeatToEnd(t *testing.T) {
	s := NewSessionState("sid", "uid")
	s.TouchTopic("stacks")
	s.TouchTopic("queues")
	s.TouchTopic("stacks")
	assert.Equal(t, []string{"queues", "stacks"}, s.Topics)
}

func TestTouchTopicIgnoresEmpty(t *testing.T) {
	s := NewSessionState("sid", "uid")
	s.TouchTopic("")
	assert.Empty(t, s.Topics)
	assert.Equal(t, "", s.LastTopic())
}
