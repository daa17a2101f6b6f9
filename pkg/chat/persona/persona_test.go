package persona

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPrecedence(t *testing.T) {
	assert.Equal(t, Saurav, Detect("who created you?"))
	assert.Equal(t, Saurav, Detect("tell me about saurav and jiya")) // saurav wins
	assert.Equal(t, Jiya, Detect("who is jiya maurya"))
	assert.Equal(t, Jiya, Detect("does the developer have a girlfriend")) // developer hits saurav first
	assert.Equal(t, April19, Detect("what happened on 19 april"))
	assert.Equal(t, None, Detect("explain stacks"))
}

func TestDetectDeveloperBeatsGirlfriend(t *testing.T) {
	// "developer" is a saurav trigger and scans before jiya triggers.
	assert.Equal(t, Saurav, Detect("does the developer have a girlfriend"))
}

func TestClassifyJiyaQuestion(t *testing.T) {
	assert.Equal(t, AILove, ClassifyJiyaQuestion("who do you love?"))
	assert.Equal(t, DeveloperCrush, ClassifyJiyaQuestion("who is saurav's crush"))
	assert.Equal(t, JiyaIdentity, ClassifyJiyaQuestion("who is jiya"))
	assert.Equal(t, JiyaGeneral, ClassifyJiyaQuestion("jiya bhabhi rocks"))
}

func TestJiyaVariantDeterministicAndGuestRedirect(t *testing.T) {
	a := JiyaVariantResponse(JiyaIdentity, MoodPoetic, false, 7)
	b := JiyaVariantResponse(JiyaIdentity, MoodPoetic, false, 7)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Your studies await")

	creator := JiyaVariantResponse(JiyaIdentity, MoodPoetic, true, 7)
	assert.NotContains(t, creator, "Your studies await")
}

func TestJiyaVariantAILoveRewrites(t *testing.T) {
	out := JiyaVariantResponse(AILove, MoodPoetic, true, 0)
	assert.NotContains(t, out, "Jiya Maurya")
	assert.NotContains(t, out, "👑")
	assert.Contains(t, out, "Jiya")
}

func TestJiyaVariantNegativeSeed(t *testing.T) {
	assert.NotPanics(t, func() {
		JiyaVariantResponse(JiyaGeneral, MoodScold, false, -3)
	})
}

func TestDetectStyle(t *testing.T) {
	assert.Equal(t, StyleAcademic, DetectStyle("whatever", "", "ACADEMIC"))
	assert.Equal(t, StyleMotivation, DetectStyle("i am stuck and demotivated", "", "AMBIGUOUS"))
	assert.Equal(t, StyleCasual, DetectStyle("kya haal", "", "AMBIGUOUS"))
	assert.Equal(t, StyleCasual, DetectStyle("ok", "whats up bro", "AMBIGUOUS"))
	assert.Equal(t, StyleAcademic, DetectStyle("ok", "", "AMBIGUOUS"))
}

func TestStyleInstructionFlags(t *testing.T) {
	out := StyleInstruction(StyleCasual, true, false, false)
	assert.True(t, strings.Contains(out, "EASTER_EGG_ALLOWED: false"))
	assert.True(t, strings.Contains(out, "Avoid repeating Jiya's name"))
	assert.True(t, strings.Contains(out, "CASUAL MODE"))
	assert.True(t, strings.Contains(out, "USER IS GUEST"))

	creator := StyleInstruction(StyleAcademic, false, true, true)
	assert.True(t, strings.Contains(creator, "USER IS CREATOR"))
	assert.True(t, strings.Contains(creator, "EASTER_EGG_ALLOWED: true"))
}
