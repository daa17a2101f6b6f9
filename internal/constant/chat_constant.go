package constant

const (
	ChatSenderUser = "user"
	ChatSenderAI   = "ai"

	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"

	// Intent labels
	IntentAcademic  = "ACADEMIC"
	IntentCommand   = "COMMAND"
	IntentPersonal  = "PERSONAL"
	IntentAmbiguous = "AMBIGUOUS"

	// Response modes
	ResponseModeFast     = "fast"
	ResponseModeThinking = "thinking"
	ResponseModePro      = "pro"

	// Chat modes
	ChatModeStudy  = "study"
	ChatModeCasual = "casual"

	// Session limits
	MaxSessionsPerUser  = 20
	SessionTitleMaxLen  = 50
	HistoryWindow       = 8
	CrossSessionHistory = 500

	// Groq defaults
	GroqDefaultBaseURL = "https://api.groq.com/openai/v1"
)
