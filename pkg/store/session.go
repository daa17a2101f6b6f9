package store

// LearningPath captures what the user is currently working through.
type LearningPath struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Intent  string `json:"intent"`
	Vibe    string `json:"vibe"`
}

// SessionState is the ephemeral per-session memory kept between chat
// turns. It is read-modify-written without locking; concurrent requests
// on the same session resolve last-writer-wins.
type SessionState struct {
	ID     string `json:"id"` // ChatSessionID
	UserID string `json:"user_id"`

	// Last <=5 discussed topics, most recent last.
	Topics []string `json:"topics"`

	// Rotating suggestion formatting style index (numeric/alpha/bullet).
	SuggestionStyleIdx int `json:"suggestion_style_idx"`

	LearningPath *LearningPath `json:"learning_path"`
}

const MaxTopics = 5

// Vibe hints for the persona engine
const (
	VibeNormal    = "NORMAL"
	VibeLateNight = "LATE_NIGHT"
	VibeSupport   = "SUPPORT"
)

func NewSessionState(sessionID, userID string) *SessionState {
	return &SessionState{
		ID:     sessionID,
		UserID: userID,
	}
}

// TouchTopic records a topic as most recent. A repeated topic moves to
// the end instead of duplicating; the buffer keeps the last MaxTopics.
func (s *SessionState) TouchTopic(topic string) {
	if topic == "" {
		return
	}
	for i, t := range s.Topics {
		if t == topic {
			s.Topics = append(s.Topics[:i], s.Topics[i+1:]...)
			break
		}
	}
	s.Topics = append(s.Topics, topic)
	if len(s.Topics) > MaxTopics {
		s.Topics = s.Topics[len(s.Topics)-MaxTopics:]
	}
}

// LastTopic returns the most recent topic or "".
func (s *SessionState) LastTopic() string {
	if len(s.Topics) == 0 {
		return ""
	}
	return s.Topics[len(s.Topics)-1]
}
