package constant

// SubjectTitles maps semester -> subject code -> title. The chat prompt
// serializes this table verbatim so the model never guesses subject names.
var SubjectTitles = map[string]map[string]string{
	"semester_1": {
		"bcs-011": "Computer Basics",
		"bcs-012": "Basic Mathematics",
		"mcs-011": "Problem Solving",
	},
	"semester_2": {
		"mcs-012": "Computer Organization",
		"mcs-015": "Web Development",
		"bcs-040": "Statistical Techniques",
	},
	"semester_3": {
		"mcs-021": "Data Structures",
		"mcs-023": "Database Systems",
		"bcs-031": "Object-Oriented Programming",
	},
	"semester_4": {
		"mcs-024": "Java Programming",
		"bcs-041": "Computer Networks",
		"bcs-042": "Algorithm Design",
	},
}

// SubjectNameKeywords maps colloquial subject mentions to codes.
// Checked only when no explicit code is present in the message.
var SubjectNameKeywords = []struct {
	Keyword string
	Code    string
}{
	{"java", "mcs-024"},
	{"network", "bcs-041"},
	{"dbms", "mcs-023"},
	{"database", "mcs-023"},
	{"algorithm", "bcs-042"},
	{"data structure", "mcs-021"},
	{"web", "mcs-015"},
	{"html", "mcs-015"},
	{"css", "mcs-015"},
	{"oop", "bcs-031"},
	{"object-oriented", "bcs-031"},
	{"statistics", "bcs-040"},
	{"math", "bcs-012"},
}

// SubjectTopics lists per-subject syllabus topics. Used for Unit 1
// overviews and syllabus progress tracking.
var SubjectTopics = map[string][]string{
	"bcs-011": {"Introduction to Computers", "Memory Hierarchy", "Operating Systems Basics", "Number Systems", "Input Output Devices", "Computer Software"},
	"bcs-012": {"Determinants", "Matrices", "Limits and Continuity", "Differentiation", "Integration", "Vectors"},
	"mcs-011": {"Algorithms and Flowcharts", "C Fundamentals", "Control Statements", "Arrays", "Functions", "Pointers"},
	"mcs-012": {"Digital Logic Circuits", "Von Neumann Architecture", "Instruction Set", "Memory Organization", "Assembly Basics", "Registers"},
	"mcs-015": {"HTML Fundamentals", "CSS Styling", "JavaScript Basics", "Forms and Validation", "Responsive Design", "Web Servers"},
	"bcs-040": {"Descriptive Statistics", "Probability", "Probability Distributions", "Sampling", "Hypothesis Testing", "Correlation and Regression"},
	"mcs-021": {"Stacks", "Queues", "Linked Lists", "Trees", "Graphs", "Searching and Sorting"},
	"mcs-023": {"Relational Model", "SQL", "Normalization", "ER Diagrams", "Transactions", "Indexing"},
	"bcs-031": {"Classes and Objects", "Encapsulation", "Inheritance", "Polymorphism", "Constructors", "Operator Overloading"},
	"mcs-024": {"Java Basics", "Classes and Objects", "Inheritance", "Interfaces", "Exception Handling", "Multithreading", "Collections"},
	"bcs-041": {"OSI Model", "TCP IP", "Routing", "Switching", "Network Security", "Application Protocols"},
	"bcs-042": {"Asymptotic Notation", "Divide and Conquer", "Greedy Algorithms", "Dynamic Programming", "Graph Algorithms", "NP Completeness"},
}

// SubjectTitle resolves a code to its title across all semesters.
func SubjectTitle(code string) string {
	for _, semMap := range SubjectTitles {
		if title, ok := semMap[code]; ok {
			return title
		}
	}
	return code
}

// SubjectCodes returns every known code.
func SubjectCodes() []string {
	var codes []string
	for _, semMap := range SubjectTitles {
		for code := range semMap {
			codes = append(codes, code)
		}
	}
	return codes
}

// Unit1Points returns the first topics of a subject for the Unit 1
// overview, padded with a recap entry when the syllabus is short.
func Unit1Points(code string) []string {
	topics := SubjectTopics[code]
	if len(topics) == 0 {
		return []string{"Introduction", "Core Concepts", "Examples", "Quick Recap"}
	}
	if len(topics) >= 4 {
		return topics[:4]
	}
	return append(append([]string{}, topics...), "Quick Recap")
}
