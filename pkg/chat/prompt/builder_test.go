package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ai-studybuddy-be/pkg/chat/subject"
)

func TestModeParams(t *testing.T) {
	tokens, hint, delay := ModeParams("fast")
	assert.Equal(t, 200, tokens)
	assert.Contains(t, hint, "brief")
	assert.Zero(t, delay)

	tokens, _, delay = ModeParams("thinking")
	assert.Equal(t, 600, tokens)
	assert.Equal(t, 3*time.Second, delay)

	tokens, _, _ = ModeParams("pro")
	assert.Equal(t, 2000, tokens)

	tokens, _, _ = ModeParams("unknown")
	assert.Equal(t, 200, tokens)
}

func TestBuildSystemPromptContainsSections(t *testing.T) {
	out := BuildSystemPrompt(Input{
		Salutation:      "Bhai",
		SelectedSubject: "mcs-024",
		SubjectContext:  subject.Context{SubjectCode: "mcs-024", SubjectName: "Java Programming"},
		IntentType:      "ACADEMIC",
		VibeHint:        "NORMAL",
		History:         []ConvMessage{{Sender: "user", Text: "explain oop"}},
		StyleBlock:      "STYLE",
		IntentProtocol:  "PROTOCOL",
		ResponseMode:    "fast",
	})

	assert.Contains(t, out, "ADVANCED REASONING FRAMEWORK")
	assert.Contains(t, out, "mcs-024")
	assert.Contains(t, out, "Java Programming")
	assert.Contains(t, out, "user: explain oop")
	assert.Contains(t, out, "RESPONSE FORMAT (MANDATORY JSON)")
	assert.Contains(t, out, "SALUTATION_PREFIX: NONE")
	assert.Contains(t, out, "Be brief and direct.")
}

func TestBuildSystemPromptBasicQuestionRoast(t *testing.T) {
	out := BuildSystemPrompt(Input{Salutation: "Buddy", BasicQuestion: true})
	assert.Contains(t, out, "1st semester ka sawal")
}

func TestBuildSystemPromptStudyTool(t *testing.T) {
	out := BuildSystemPrompt(Input{Salutation: "Buddy", ActiveTool: "viva", SelectedSubject: "mcs-024"})
	assert.Contains(t, out, "STUDY TOOL MODE: viva")
	assert.Contains(t, out, "external examiner")
}

func TestConversationContextTruncates(t *testing.T) {
	long := strings.Repeat("x", 250)
	out := ConversationContext([]ConvMessage{{Sender: "ai", Text: long}}, 10)
	assert.Contains(t, out, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 201))
}

func TestConversationContextEmpty(t *testing.T) {
	assert.Equal(t, "[No previous context]", ConversationContext(nil, 10))
}

func TestRewriteDigitSelection(t *testing.T) {
	out := RewriteUserMessage("2", "Options: 1. Stacks 2. Queues", "show lists", "")
	assert.Contains(t, out, "numeric selection: 2")
	assert.Contains(t, out, "Options: 1. Stacks 2. Queues")
}

func TestRewriteDigitWithoutAIContextUnchanged(t *testing.T) {
	assert.Equal(t, "2", RewriteUserMessage("2", "", "", ""))
}

func TestRewriteFollowUpWithTopic(t *testing.T) {
	out := RewriteUserMessage("tell me more", "Stacks are LIFO", "explain stacks", "stacks")
	assert.Contains(t, out, "follow-up")
	assert.Contains(t, out, "topic context: stacks")
}

func TestRewriteFollowUpDepthHint(t *testing.T) {
	out := RewriteUserMessage("explain in depth", "Stacks are LIFO", "explain stacks", "stacks")
	assert.Contains(t, out, "deep-dive")
}

func TestRewriteOrdinaryMessageUnchanged(t *testing.T) {
	msg := "explain polymorphism in java"
	assert.Equal(t, msg, RewriteUserMessage(msg, "prior answer", "prior question", "java"))
}

func TestIsTopicSwitch(t *testing.T) {
	assert.True(t, IsTopicSwitch("hello", "explain stacks in detail"))
	assert.True(t, IsTopicSwitch("what about computer networks routing", "explain java inheritance concepts"))
	assert.False(t, IsTopicSwitch("more about java inheritance", "explain java inheritance concepts"))
	assert.False(t, IsTopicSwitch("anything", ""))
}

func TestIsBasicQuestion(t *testing.T) {
	assert.True(t, IsBasicQuestion("what is a stack"))
	assert.True(t, IsBasicQuestion("full form of DBMS"))
	assert.False(t, IsBasicQuestion("what is the time complexity of merge sort compared to quick sort in worst case"))
	assert.False(t, IsBasicQuestion("explain polymorphism"))
}

func TestSalutation(t *testing.T) {
	assert.Equal(t, "Saurav bhai", Salutation("anyone", "male", true))
	assert.Equal(t, "Saurav bhai", Salutation("Saurav", "", false))
	assert.Equal(t, "Behen", Salutation("asha", "female", false))
	assert.Equal(t, "Bhai", Salutation("ravi", "M", false))
	assert.Equal(t, "Buddy", Salutation("sam", "", false))
}

func TestMaybeGreetingPrefix(t *testing.T) {
	assert.Equal(t, "Bhai", MaybeGreetingPrefix("Bhai", 0.1))
	assert.Equal(t, "", MaybeGreetingPrefix("Bhai", 0.9))
}

func TestGreetingHint(t *testing.T) {
	assert.Contains(t, GreetingHint(9, 0), "Good morning")
	assert.Contains(t, GreetingHint(14, 0), "Good afternoon")
	assert.Contains(t, GreetingHint(20, 0), "Good evening")
	assert.Contains(t, GreetingHint(2, 0), "Late night")
	assert.Equal(t, "", GreetingHint(9, 4))
}

func TestEasterEggAllowed(t *testing.T) {
	assert.True(t, EasterEggAllowed([]string{"hello", "stacks are fun"}, 15))
	assert.False(t, EasterEggAllowed([]string{"that 19 april story"}, 15))
	// Mention outside the window no longer blocks.
	old := append([]string{"19 april"}, make([]string, 15)...)
	for i := 1; i < len(old); i++ {
		old[i] = "ok"
	}
	assert.True(t, EasterEggAllowed(old, 15))
}

func TestStudyToolPrompt(t *testing.T) {
	assert.Contains(t, StudyToolPrompt("notes", "mcs-021"), "mcs-021")
	assert.Contains(t, StudyToolPrompt("PYQs", ""), "the selected subject")
	assert.Equal(t, "", StudyToolPrompt("karaoke", "mcs-021"))
}

func TestDetectStudyTool(t *testing.T) {
	assert.Equal(t, "viva", DetectStudyTool("start a viva session"))
	assert.Equal(t, "", DetectStudyTool("explain stacks"))
}

func TestIsStartFromBeginning(t *testing.T) {
	assert.True(t, IsStartFromBeginning("let's start from beginning"))
	assert.True(t, IsStartFromBeginning("shuru se padhao"))
	assert.False(t, IsStartFromBeginning("explain unit 3"))
}

func TestUnit1Overview(t *testing.T) {
	out := Unit1Overview("Java Programming", []string{"Intro", "JVM", "Syntax", "Classes"})
	assert.Contains(t, out, "Unit 1")
	assert.Contains(t, out, "1. Intro")
	assert.Contains(t, out, "(1/2/3/4)")
}
