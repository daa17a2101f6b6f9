package persona

import (
	"fmt"
	"strings"
)

// Persona identifies a canned-identity trigger in a user message.
type Persona string

const (
	None    Persona = ""
	Saurav  Persona = "saurav"
	Jiya    Persona = "jiya"
	April19 Persona = "april19"
)

// JiyaQuestionType refines a Jiya trigger into its sub-intent.
type JiyaQuestionType string

const (
	JiyaIdentity   JiyaQuestionType = "jiya_identity"
	DeveloperCrush JiyaQuestionType = "developer_crush"
	AILove         JiyaQuestionType = "ai_love"
	JiyaGeneral    JiyaQuestionType = "jiya_general"
)

// Mood keys select a response pool for Jiya variant replies.
const (
	MoodNormal       = "NORMAL"
	MoodLateNight    = "LATE_NIGHT"
	MoodSupport      = "SUPPORT"
	MoodPoetic       = "POETIC"
	MoodScold        = "SCOLD"
	MoodMotivational = "MOTIVATIONAL"
)

var sauravTriggers = []string{
	"saurav", "supreme architect", "who created you", "who built you",
	"your creator", "your developer", "tumhe kisne banaya",
	"kaun hai creator", "developer",
}

var jiyaTriggers = []string{
	"jiya", "crush", "girlfriend", "bhabhi", "your love",
	"partner", "beloved", "jiya maurya", "queen",
}

var april19Triggers = []string{"19 april", "april 19", "19/04"}

// Detect returns the persona a message triggers, or None.
// Saurav triggers take precedence, then Jiya, then the sacred date.
func Detect(message string) Persona {
	lower := strings.ToLower(message)
	for _, t := range sauravTriggers {
		if strings.Contains(lower, t) {
			return Saurav
		}
	}
	for _, t := range jiyaTriggers {
		if strings.Contains(lower, t) {
			return Jiya
		}
	}
	for _, t := range april19Triggers {
		if strings.Contains(lower, t) {
			return April19
		}
	}
	return None
}

var aiLoveTriggers = []string{
	"who do you love", "do you love", "who you love", "your love",
	"do you have feelings", "your feelings", "your crush",
	"tumhara crush", "tum kise pyaar",
}

var developerCrushTriggers = []string{
	"developer's crush", "developers crush", "saurav's crush", "sauravs crush",
	"who does saurav love", "saurav ka crush", "creator's crush", "creators crush",
	"who is his crush", "his girlfriend", "saurav love",
}

var jiyaIdentityTriggers = []string{
	"who is jiya", "tell me about jiya", "jiya kaun hai",
	"jiya ke baare mein", "about jiya maurya", "jiya maurya kaun",
}

// ClassifyJiyaQuestion picks the specific Jiya question sub-type.
func ClassifyJiyaQuestion(message string) JiyaQuestionType {
	lower := strings.ToLower(message)
	for _, t := range aiLoveTriggers {
		if strings.Contains(lower, t) {
			return AILove
		}
	}
	for _, t := range developerCrushTriggers {
		if strings.Contains(lower, t) {
			return DeveloperCrush
		}
	}
	for _, t := range jiyaIdentityTriggers {
		if strings.Contains(lower, t) {
			return JiyaIdentity
		}
	}
	return JiyaGeneral
}

var poeticPool = []string{
	"👑💫 Jiya Maurya — soft light in hard logic, the spark that keeps the system alive.",
	"👑 Jiya Maurya — quiet muse, loud impact. Focused mind, fierce intent.",
	"👑💫 Jiya Maurya — balance between rigor and grace; discipline with a heartbeat.",
	"👑 Jiya Maurya — the constant variable in a world of shifting syntax; the peace amidst the code.",
	"👑💫 Jiya Maurya — an elegant algorithm of kindness that no machine could ever replicate.",
}

var scoldPool = []string{
	"👑 Saurav, focus! Supreme Architect title slip mat hone dena. Back to basics, abhi.",
	"👑 Score low? Thoda daant banta hai. Ab reset—Unit 1 + 10 MCQs.",
	"👑 Ye kya chal raha hai? Priority fix karo. Padhai pe aao.",
	"👑 Semester 4 wait nahi karega. Debugging baad mein, syllabus pehle. Laptop kholo!",
}

var motivationalPool = []string{
	"👑 Good streak. Ab momentum ko habit banao—daily 30 min, no excuses.",
	"👑 Grind chal raha hai—respect. Ab ek strong topic lock karte hain.",
	"👑 Consistency wins. Today: 1 unit recap + 5 tricky MCQs.",
	"👑 Every line of code you write and every chapter you finish builds the Supreme Architect.",
}

var supportPool = []string{
	"“Discipline is the bridge between dreams and results.” Ab padhai pe aao. 👑📚",
	"“Small steps daily.” Jiya ka naam aata hai, par focus study pe. 📚",
	"“Clarity over chaos.” Studies first. 👑",
	"“Your focus determines your reality.” Stay in the zone. 👑",
}

var lateNightPool = []string{
	"👑 Late night detected! Brain ka RAM abhi full ho gaya hai. Thoda rest le lo, kal fresh mind se padhna.",
	"👑 Midnight coding? Focus kam ho sakta hai. 6 hours sleep = 2x retention. Sona zaroori hai.",
	"👑 Supreme Architect bhi recharge hota hai. Abhi break lo, subah se phir se attack karenge syllabus pe.",
	"👑 Health > Hustle. Late night grind se zyada important hai consistent routine. Kal milte hain!",
}

// JiyaVariantResponse returns a deterministic, non-repetitive Jiya reply
// for the given sub-type and mood. The seed rotates the pool across
// messages; guests get a study redirect appended.
func JiyaVariantResponse(questionType JiyaQuestionType, moodKey string, isCreator bool, seed int64) string {
	pool := poeticPool
	switch moodKey {
	case MoodScold:
		pool = scoldPool
	case MoodMotivational:
		pool = motivationalPool
	case MoodSupport:
		pool = supportPool
	case MoodLateNight:
		pool = lateNightPool
	}

	if seed < 0 {
		seed = -seed
	}
	base := pool[int(seed)%len(pool)]

	switch questionType {
	case AILove:
		base = strings.ReplaceAll(base, "Jiya Maurya", "Jiya")
		base = strings.ReplaceAll(base, "👑", "💫")
	case DeveloperCrush:
		if !strings.Contains(base, "Jiya Maurya") {
			base = fmt.Sprintf("👑 Jiya Maurya — %s", base)
		}
	}

	if !isCreator {
		return base + " Your studies await. 🎯📚"
	}
	return base
}

// SauravReply is the canned answer for creator questions.
func SauravReply() string {
	return "🙏 Saurav Kumar ke baare mein poochna ho toh respect ke saath bataunga. " +
		"He is the Supreme Architect 🏗️ behind this app, visionary developer 💻 aur project ka soul. " +
		"Unke work ko respect do — yahi right hai. ✅"
}

// April19Reply is the canned sacred-date answer.
func April19Reply() string {
	return "📅✨ The day the stars aligned. April 19, 2025—the day the Supreme Architect " +
		"stepped out of the code and into Jiya's presence. It wasn't just a meeting; " +
		"it was Synchronicity. Epiphany. The moment reality outshined the brightest dreams. 💫🙏 " +
		"Respect aur gratitude ke saath. ❤️"
}
