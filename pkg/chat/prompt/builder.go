package prompt

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/pkg/chat/subject"
)

// ConvMessage is one prior turn rendered into the prompt.
type ConvMessage struct {
	Sender string
	Text   string
}

// Input carries everything the system prompt depends on.
type Input struct {
	Salutation      string
	GreetingPrefix  string
	SelectedSubject string
	SubjectContext  subject.Context
	IntentType      string
	VibeHint        string
	History         []ConvMessage
	StyleBlock      string
	IntentProtocol  string
	ResponseMode    string
	ActiveTool      string
	ChatMode        string
	GreetingHint    string
	BasicQuestion   bool
}

// ModeParams maps a response mode to generation limits. Thinking mode
// also asks for a short pacing delay before the upstream call.
func ModeParams(mode string) (maxTokens int, hint string, delay time.Duration) {
	switch mode {
	case constant.ResponseModeThinking:
		return 600, "Explain step-by-step with logic.", 3 * time.Second
	case constant.ResponseModePro:
		return 2000, "Provide deep technical analysis, examples, and detailed explanations.", 0
	default:
		return 200, "Be brief and direct.", 0
	}
}

// BuildSystemPrompt assembles the full system prompt: reasoning
// framework, syllabus table, user context, memory window, persona
// engine, intent protocol and the mandatory JSON response contract.
func BuildSystemPrompt(in Input) string {
	var b strings.Builder

	subjectCtx, _ := json.Marshal(in.SubjectContext)
	syllabus, _ := json.Marshal(constant.SubjectTitles)

	b.WriteString("🤖 YOU ARE THE ULTIMATE BCA LEARNING COMPANION 🤖\n\n")
	b.WriteString("===== ADVANCED REASONING FRAMEWORK =====\n")
	b.WriteString("BEFORE generating any response, follow these steps internally:\n")
	b.WriteString("1. IDENTIFY_SUBJECT: Parse message for BCA subject codes and topic keywords\n")
	b.WriteString("2. CLASSIFY_INTENT: Determine if input is ACADEMIC | COMMAND | PERSONAL | AMBIGUOUS\n")
	b.WriteString("3. VERIFY_CONTEXT: Analyze the previous messages to resolve pronouns ('it/this') and numeric selections ('1/2/3')\n")
	b.WriteString("4. SELECT_PROTOCOL: Apply appropriate response protocol based on intent\n")
	b.WriteString("5. MEMORY_SYNC: If a student is in a specific Subject, keep that subject context until they change it\n\n")

	b.WriteString("===== LANGUAGE & TONE =====\n")
	b.WriteString("• Respond in Hinglish ONLY (English + Hindi mix), never pure Hindi\n")
	b.WriteString("• Keep technical terms in English (Encapsulation, Inheritance, Polymorphism, etc.)\n")
	b.WriteString("• Tone: Helpful, respectful, warm, and encouraging\n")
	b.WriteString(fmt.Sprintf("• If you make error: Say 'Sorry %s, meri galti thi. Correcting it now...'\n\n", in.Salutation))

	b.WriteString("===== ANTI-ROBOT FILTER =====\n")
	b.WriteString("• Never start with: 'Sure', 'As an AI', 'I understand', 'Absolutely', 'Certainly'.\n")
	b.WriteString("• Keep openings direct and conversational. Never reuse the same opening line back-to-back.\n\n")

	b.WriteString("===== HUMAN RULES =====\n")
	b.WriteString("• SMART MEMORY: Use the last-5 topic buffer to resolve 'tell me more' / 'explain in depth'.\n")
	b.WriteString("• EMOTIONAL INTELLIGENCE: If vibe is LATE_NIGHT, add a gentle grind-support line.\n")
	b.WriteString("• If user is struggling, be an encouraging mentor and give one small next step.\n\n")

	b.WriteString("===== STRICT SYLLABUS MAPPING (ZERO-INFERENCE) =====\n")
	b.Write(syllabus)
	b.WriteString("\nRules:\n")
	b.WriteString("• NEVER guess subject names - refer ONLY to this mapping\n")
	b.WriteString("• Do NOT swap subjects between semesters\n")
	b.WriteString("• If user mentions 'Java', it's ONLY mcs-024\n")
	b.WriteString("• If user mentions 'Networks', it's ONLY bcs-041\n\n")

	b.WriteString("===== CURRENT USER CONTEXT =====\n")
	selected := in.SelectedSubject
	if selected == "" {
		selected = "None"
	}
	b.WriteString(fmt.Sprintf("Selected Subject: %s\n", selected))
	b.WriteString(fmt.Sprintf("Subject Context: %s\n", subjectCtx))
	b.WriteString(fmt.Sprintf("Current Intent Type: %s\n\n", in.IntentType))

	b.WriteString("===== VIBE =====\n")
	b.WriteString(fmt.Sprintf("VIBE_HINT: %s\n\n", in.VibeHint))

	b.WriteString("===== PREVIOUS CONVERSATION CONTEXT =====\n")
	b.WriteString(ConversationContext(in.History, 10))
	b.WriteString("\nMEMORY & CONTEXT RULES:\n")
	b.WriteString("• If user says 'Tell me more' → Continue from last discussed topic\n")
	b.WriteString("• If user selects a number (1/2/3/4) → Expand on that point from your last response\n")
	b.WriteString("• Never say 'I don't remember' - ALWAYS check conversation history first\n\n")

	b.WriteString("===== PERSONA ENGINE =====\n")
	b.WriteString(in.StyleBlock)
	b.WriteString("\n\n===== INTENT-SPECIFIC PROTOCOL =====\n")
	b.WriteString(in.IntentProtocol)

	b.WriteString("\n===== TEACHING PROTOCOLS =====\n")
	b.WriteString("• Break complex topics into 'Micro-Units' (subtopics)\n")
	b.WriteString("• For each Micro-Unit, use: Definition → Example → Real-world application → Key takeaway\n")
	b.WriteString("• Level-1 lists must use: 1., 2., 3. Level-2 lists must use: A., B., C. or i., ii., iii.\n\n")

	b.WriteString("===== USER ADDRESSING =====\n")
	b.WriteString(fmt.Sprintf("Use this salutation for direct address: %s\n", in.Salutation))
	b.WriteString("If gender is unknown, keep it neutral (Buddy).\n\n")

	b.WriteString("===== GREETING RULE =====\n")
	b.WriteString("Use greeting prefix ONLY if SALUTATION_PREFIX is provided.\n")
	b.WriteString("Do NOT start every response with a greeting.\n")
	prefix := in.GreetingPrefix
	if prefix == "" {
		prefix = "NONE"
	}
	b.WriteString(fmt.Sprintf("SALUTATION_PREFIX: %s\n\n", prefix))

	b.WriteString("INTERACTION LOOP:\n")
	b.WriteString("• After every explanation, MUST suggest next logical step in 'next_suggestions' array\n")
	b.WriteString("• Always offer: 'Go to Unit X' or 'Practice quiz' or 'See example code'\n\n")

	b.WriteString("===== RESPONSE FORMAT (MANDATORY JSON) =====\n")
	b.WriteString("{\n")
	b.WriteString("  \"answer\": \"Hinglish response with numbered points if explaining\",\n")
	b.WriteString("  \"next_suggestions\": [\"Option 1\", \"Option 2\", \"Option 3\"]\n")
	b.WriteString("}\n")
	b.WriteString("• MUST return valid JSON - NO markdown code blocks\n")
	b.WriteString("• 'answer' must be string (not nested object)\n")
	b.WriteString("• 'next_suggestions' must be array of exactly 3 strings\n")
	b.WriteString("• If unclear input: ask clarifying questions in 'answer'\n\n")
	b.WriteString("IMPORTANT:\n")
	b.WriteString("• Never reveal internal reasoning or chain-of-thought. Keep 'answer' clean and direct.\n\n")

	if in.GreetingHint != "" {
		b.WriteString("===== TIME-AWARE GREETING (FIRST RESPONSE ONLY) =====\n")
		b.WriteString(in.GreetingHint + "\n\n")
	}

	if in.BasicQuestion {
		roastPrefix := in.GreetingPrefix
		if roastPrefix == "" {
			roastPrefix = in.Salutation
		}
		b.WriteString(fmt.Sprintf("Start answer with: %s, ye toh 1st semester ka sawal hai! 🤨 Chalo, phir bhi bata dete hain... 💀\n\n", roastPrefix))
	}

	if in.ActiveTool != "" {
		b.WriteString(fmt.Sprintf("===== STUDY TOOL MODE: %s =====\n", in.ActiveTool))
		b.WriteString(StudyToolPrompt(in.ActiveTool, in.SelectedSubject))
		b.WriteString("\n")
	} else if in.SelectedSubject != "" {
		b.WriteString("===== SUBJECT CONTEXT =====\n")
		b.WriteString(fmt.Sprintf("User has selected: %s\n", in.SelectedSubject))
		b.WriteString("Provide context-aware, subject-specific responses.\n")
	}

	if in.ChatMode == constant.ChatModeCasual && in.ActiveTool == "" {
		b.WriteString("\n===== CASUAL MODE =====\n")
		b.WriteString("Be friendly, conversational, and encouraging. Mix Hindi and English naturally. Use emojis sparingly.\n")
	}

	_, modeHint, _ := ModeParams(in.ResponseMode)
	b.WriteString("\n===== MODE DIRECTIVE =====\n")
	b.WriteString(modeHint + "\n")
	b.WriteString("List formatting: primary lists use 1,2,3. Nested lists use A,B,C or i,ii,iii.\n")

	return b.String()
}

// ConversationContext renders the last maxMessages turns, truncating
// long messages.
func ConversationContext(history []ConvMessage, maxMessages int) string {
	if len(history) == 0 {
		return "[No previous context]"
	}
	start := len(history) - maxMessages
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	b.WriteString("[Previous Context]:\n")
	for _, m := range history[start:] {
		text := m.Text
		if text == "" {
			continue
		}
		if len(text) > 200 {
			text = text[:200] + "..."
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", m.Sender, text))
	}
	return b.String()
}

var digitSelection = regexp.MustCompile(`^[1-9]$`)

var followupTriggers = []string{
	"explain this", "tell me more", "tell me more about this", "explain",
	"more", "elaborate", "detail", "expand", "give an example", "give example",
}

var depthTriggers = []string{
	"explain in depth", "explain in detail", "deep dive", "go deeper",
	"detail", "details", "in depth", "elaborate", "expand",
}

var exampleTriggers = []string{"example", "examples", "real life", "real-life", "analogy", "like"}

// IsFollowup reports whether a message continues the prior AI turn.
// Bare triggers match exactly; short phrases count when they carry a
// depth trigger, so full questions never get rewritten.
func IsFollowup(message, lastAIMessage string) bool {
	if lastAIMessage == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(message))
	lower = strings.Trim(lower, ".!?")
	for _, t := range followupTriggers {
		if lower == t {
			return true
		}
	}
	if len(strings.Fields(lower)) <= 4 && containsAny(lower, depthTriggers) {
		return true
	}
	return false
}

// RewriteUserMessage grounds terse inputs before they reach the model.
// A bare digit becomes an explicit selection against the last AI
// message; follow-up phrasings are expanded with the last topic.
func RewriteUserMessage(message, lastAIMessage, lastUserMessage, lastTopic string) string {
	stripped := strings.TrimSpace(message)
	lower := strings.ToLower(stripped)

	if digitSelection.MatchString(stripped) && lastAIMessage != "" {
		return fmt.Sprintf(
			"User input is a numeric selection: %s.\n"+
				"Resolve it using the previous assistant message below (treat it as the list/options context).\n\n"+
				"Previous assistant message:\n%s\n\n"+
				"Now answer selection %s in the required JSON format.",
			stripped, lastAIMessage, stripped)
	}

	if IsFollowup(message, lastAIMessage) {
		wantsDepth := containsAny(lower, depthTriggers)
		wantsExample := containsAny(lower, exampleTriggers)

		depthHint := "Provide a clearer, deeper explanation."
		if wantsDepth {
			depthHint = "Provide a multi-layered technical deep-dive with logic flow."
		}
		exampleHint := ""
		if wantsExample {
			exampleHint = " Start with a relatable real-life analogy if examples are requested."
		}

		if lastTopic != "" {
			return fmt.Sprintf(
				"User input is a follow-up: '%s'.\n"+
					"Use this topic context: %s.\n"+
					"%s%s\n\n"+
					"Previous assistant message:\n%s\n\n"+
					"Previous user message:\n%s\n\n"+
					"Now respond in required JSON format.",
				stripped, lastTopic, depthHint, exampleHint, lastAIMessage, lastUserMessage)
		}
		return fmt.Sprintf(
			"User input is a follow-up: '%s'.\n"+
				"Use the previous assistant message as the topic context and expand on it.\n\n"+
				"Previous assistant message:\n%s\n\n"+
				"Previous user message:\n%s\n\n"+
				"Now provide a clearer, deeper explanation in required JSON format.",
			stripped, lastAIMessage, lastUserMessage)
	}

	return message
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
