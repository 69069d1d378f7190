package topics

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hyperifyio/goroadmap/internal/classify"
)

const slot = "{subject}"

// domainTemplates hold progressive beginner-to-advanced title patterns. Every
// pattern carries the subject slot so local output is never a bare "Basics".
var domainTemplates = map[classify.Tag][]string{
	classify.Programming: {
		"{subject} Setup and Development Environment",
		"{subject} Syntax and Program Structure",
		"Variables and Data Types in {subject}",
		"Operators and Expressions in {subject}",
		"Control Flow in {subject}",
		"Loops and Iteration in {subject}",
		"Functions and Scope in {subject}",
		"Working with Collections in {subject}",
		"Error Handling in {subject}",
		"File and I/O Operations in {subject}",
		"Modules and Packages in {subject}",
		"Object-Oriented Design in {subject}",
		"Debugging {subject} Programs",
		"Testing {subject} Code",
		"{subject} Libraries and Frameworks",
		"Performance Optimization in {subject}",
		"{subject} Best Practices and Code Style",
		"Building and Deploying a {subject} Project",
	},
	classify.Language: {
		"{subject} Alphabet and Pronunciation",
		"Basic {subject} Greetings",
		"{subject} Numbers and Counting",
		"Essential {subject} Vocabulary",
		"{subject} Grammar Basics",
		"{subject} Sentence Structure",
		"{subject} Present Tense",
		"{subject} Past Tense",
		"{subject} Question Formation",
		"{subject} Conversation Practice",
		"{subject} Reading Skills",
		"{subject} Writing Practice",
		"{subject} Listening Comprehension",
		"{subject} Cultural Context",
		"Advanced {subject} Grammar",
		"{subject} Fluency Practice",
	},
	classify.Blockchain: {
		"Blockchain Foundations for {subject}",
		"Distributed Ledgers and Consensus in {subject}",
		"Cryptography Essentials for {subject}",
		"Ethereum Architecture for {subject}",
		"Smart Contract Basics in {subject}",
		"{subject} Development Workflow",
		"Testing and Securing {subject} Contracts",
		"Web3 Library Integration for {subject}",
		"Deploying {subject} Contracts to Testnets",
		"Gas, Transactions and Events in {subject}",
		"Token Standards in {subject}",
		"Building a DApp Frontend with {subject}",
		"DeFi Protocols and {subject}",
		"NFT Minting with {subject}",
		"Layer 2 Scalability for {subject}",
		"Permissioned Ledgers and {subject}",
		"{subject} Security Best Practices",
		"Production Monitoring for {subject}",
	},
	classify.Business: {
		"{subject} Fundamentals",
		"Market Research for {subject}",
		"{subject} Strategy Development",
		"Financial Planning in {subject}",
		"Marketing and Promotion in {subject}",
		"Customer Relationships in {subject}",
		"{subject} Operations and Processes",
		"Team Leadership in {subject}",
		"Risk Management in {subject}",
		"{subject} Performance Metrics and KPIs",
		"Growth Strategies in {subject}",
		"Competitive Analysis for {subject}",
		"Legal and Regulatory Compliance in {subject}",
		"Technology Integration in {subject}",
		"Sustainability and Ethics in {subject}",
		"Future Trends in {subject}",
	},
	classify.Science: {
		"Introduction to {subject}",
		"{subject} Fundamentals",
		"Research Methods in {subject}",
		"Data Collection and Analysis in {subject}",
		"Theoretical Foundations of {subject}",
		"Practical Applications of {subject}",
		"Laboratory Techniques for {subject}",
		"Measurement and Instrumentation in {subject}",
		"Statistical Analysis in {subject}",
		"Hypothesis Testing in {subject}",
		"{subject} Case Studies",
		"Current Research Trends in {subject}",
		"Ethical Considerations in {subject}",
		"Tools and Technology for {subject}",
		"Advanced {subject} Concepts",
		"Real-world {subject} Applications",
	},
	classify.Arts: {
		"{subject} Basics and Fundamentals",
		"{subject} Tools and Materials",
		"{subject} Techniques and Methods",
		"Composition and Color in {subject}",
		"Style and Aesthetics in {subject}",
		"Creative Process in {subject}",
		"History and Influences of {subject}",
		"Digital and Traditional {subject}",
		"Building a {subject} Portfolio",
		"Critique and Feedback in {subject}",
		"Professional {subject} Practice",
		"Presenting Your {subject} Work",
		"Collaboration in {subject}",
		"Technology in {subject}",
		"Advanced {subject} Techniques",
		"Developing a Personal {subject} Style",
	},
	classify.Health: {
		"{subject} Fundamentals",
		"Anatomy and Physiology for {subject}",
		"Safety and Precautions in {subject}",
		"Assessment and Evaluation in {subject}",
		"Planning and Goal Setting for {subject}",
		"{subject} Technique and Form",
		"Progression and Adaptation in {subject}",
		"Nutrition and Lifestyle for {subject}",
		"Recovery and Rest in {subject}",
		"Injury Prevention in {subject}",
		"Monitoring and Tracking {subject} Progress",
		"Motivation and Psychology of {subject}",
		"{subject} Equipment and Tools",
		"Professional {subject} Guidelines",
		"Advanced {subject} Practices",
		"Long-term {subject} Maintenance",
	},
	classify.Academic: {
		"Introduction to {subject}",
		"Historical Overview of {subject}",
		"Key Concepts and Theories in {subject}",
		"Major Figures in {subject}",
		"Research Methods in {subject}",
		"Critical Analysis in {subject}",
		"Contemporary Issues in {subject}",
		"Comparative Studies in {subject}",
		"{subject} Case Studies",
		"Practical Applications of {subject}",
		"Ethical Considerations in {subject}",
		"Cultural Perspectives on {subject}",
		"Future Directions in {subject}",
		"Interdisciplinary Connections of {subject}",
		"Assessment Strategies for {subject}",
		"Advanced Topics in {subject}",
	},
	classify.Competitive: {
		"{subject} Exam Pattern and Syllabus",
		"{subject} Study Plan and Time Management",
		"Core Concepts Review for {subject}",
		"{subject} Quantitative Aptitude",
		"{subject} Reasoning Practice",
		"{subject} Reading and Verbal Skills",
		"Previous Year {subject} Papers",
		"{subject} Topic-wise Practice Sets",
		"{subject} Speed and Accuracy Drills",
		"{subject} Formula and Fact Revision",
		"{subject} Sectional Mock Tests",
		"Analyzing {subject} Mock Results",
		"{subject} Weak Area Improvement",
		"{subject} Full-length Mock Tests",
		"{subject} Exam Day Strategy",
		"Final {subject} Revision Plan",
	},
	classify.Certification: {
		"{subject} Exam Objectives and Blueprint",
		"Key {subject} Terminology",
		"{subject} Core Knowledge Areas",
		"{subject} Processes and Frameworks",
		"{subject} Tools and Services",
		"{subject} Security and Governance",
		"{subject} Hands-on Labs",
		"Applying {subject} in Real Scenarios",
		"{subject} Scenario-based Questions",
		"{subject} Common Exam Traps",
		"{subject} Domain Review Sessions",
		"{subject} Practice Exam One",
		"Reviewing {subject} Practice Results",
		"{subject} Practice Exam Two",
		"{subject} Exam Readiness Checklist",
		"Maintaining Your {subject} Credential",
	},
}

// subjectTemplates are hand-written lists for a few very common subjects.
// They are keyed by the normalized, cleaned subject.
var subjectTemplates = map[string][]string{
	"c": {
		"C Programming Setup and Environment",
		"C Syntax and Structure",
		"Variables and Data Types in C",
		"Input and Output in C",
		"Operators and Expressions in C",
		"Control Structures in C",
		"Loops in C Programming",
		"Functions in C",
		"Arrays in C",
		"Strings in C Programming",
		"Pointers in C",
		"Structures and Unions in C",
		"File Handling in C",
		"Dynamic Memory Allocation in C",
		"C Preprocessor Directives",
		"C Standard Library Functions",
		"Debugging C Programs",
		"C Programming Best Practices",
	},
	"python": {
		"Python Syntax and Variables",
		"Python Data Types and Structures",
		"Control Flow in Python",
		"Python Functions and Parameters",
		"Python Lists and Tuples",
		"Python Dictionaries and Sets",
		"File Input/Output in Python",
		"Error Handling in Python",
		"Object-Oriented Programming in Python",
		"Python Classes and Objects",
		"Python Modules and Packages",
		"Data Analysis with Python",
		"Testing Python Code",
		"Python Project Structure and Packaging",
	},
	"javascript": {
		"JavaScript Variables and Data Types",
		"JavaScript Functions and Scope",
		"JavaScript Arrays and Objects",
		"DOM Manipulation with JavaScript",
		"JavaScript Event Handling",
		"JavaScript Conditional Statements",
		"JavaScript Loops and Iteration",
		"Modern JavaScript (ES6+) Features",
		"Asynchronous JavaScript",
		"JavaScript Promises and the Fetch API",
		"Error Handling in JavaScript",
		"JavaScript Modules and Imports",
		"Testing JavaScript Code",
		"Building a JavaScript Project",
	},
	"english": {
		"English Present Simple Tense",
		"English Past Simple Tense",
		"English Future Tense Forms",
		"English Present Continuous",
		"English Past Continuous",
		"English Present Perfect",
		"English Modal Verbs",
		"English Conditional Sentences",
		"English Passive Voice",
		"English Reported Speech",
		"English Phrasal Verbs",
		"English Vocabulary Building",
		"English Reading Comprehension",
		"English Listening Skills",
		"English Speaking Practice",
		"English Writing Skills",
		"Business English Communication",
		"English Pronunciation",
	},
}

var subjectAliases = map[string]string{
	"c programming":          "c",
	"c language":             "c",
	"python programming":     "python",
	"python 3":               "python",
	"js":                     "javascript",
	"javascript programming": "javascript",
	"english language":       "english",
	"spoken english":         "english",
}

// compactTemplate suits single-token subjects such as "Excel" or "Guitar".
var compactTemplate = []string{
	"{subject} Basics and Setup",
	"Getting Started with {subject}",
	"Essential {subject} Skills",
	"{subject} Fundamentals",
	"Intermediate {subject} Techniques",
	"{subject} Best Practices",
	"Advanced {subject} Methods",
	"{subject} Tips and Tricks",
	"Common {subject} Mistakes",
	"{subject} Problem Solving",
	"Professional {subject} Usage",
	"{subject} Projects and Examples",
	"{subject} Workflow Optimization",
	"{subject} Advanced Features",
	"Mastering {subject}",
	"{subject} Expert Techniques",
}

var (
	genericFoundation = []string{
		"Introduction to {subject}",
		"{subject} Fundamentals",
		"Getting Started with {subject}",
		"Basic {subject} Concepts",
		"{subject} Overview and History",
	}
	genericIntermediate = []string{
		"Core {subject} Principles",
		"Practical {subject} Applications",
		"{subject} Techniques and Methods",
		"Working with {subject} Tools",
		"{subject} Problem Solving",
		"Common {subject} Challenges",
		"{subject} Case Studies",
	}
	genericAdvanced = []string{
		"Advanced {subject} Concepts",
		"{subject} Best Practices",
		"Professional {subject} Standards",
		"{subject} Innovation and Trends",
		"Mastering {subject}",
		"{subject} Project Development",
	}
)

var fillerWords = map[string]bool{
	"course": true, "learning": true, "training": true,
	"study": true, "class": true, "program": true,
}

// compoundLearning keeps "learning" when it is part of the subject itself.
var compoundLearning = map[string]bool{
	"machine": true, "deep": true, "reinforcement": true, "transfer": true,
	"supervised": true, "unsupervised": true, "federated": true,
}

// CleanSubject strips filler words such as "course" or "training" and
// collapses whitespace. "Machine Learning" and similar compounds are kept.
// It returns the trimmed input when nothing remains.
func CleanSubject(subject string) string {
	fields := strings.Fields(subject)
	kept := make([]string, 0, len(fields))
	for i, f := range fields {
		w := strings.ToLower(f)
		if fillerWords[w] && !(w == "learning" && i > 0 && compoundLearning[strings.ToLower(fields[i-1])]) {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return strings.Join(fields, " ")
	}
	return strings.Join(kept, " ")
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// displaySubject title-cases subjects typed entirely in lower case and keeps
// any casing the user chose otherwise ("iOS", "PostgreSQL").
func displaySubject(s string) string {
	if s != strings.ToLower(s) {
		return s
	}
	return titleCaser.String(s)
}

// IsCompact reports whether the cleaned subject is a short single token,
// which reads better under the compact template than the phased one.
func IsCompact(cleaned string) bool {
	return len(cleaned) < 15 && !strings.Contains(cleaned, " ")
}

// Local synthesizes topic titles without any remote call. The result is
// ordered from foundational to advanced, holds between 12 and 20 distinct
// titles and mentions the subject in each one.
func Local(subject string, domain classify.Tag) []string {
	cleaned := CleanSubject(subject)
	key := classify.Normalize(cleaned)
	if alias, ok := subjectAliases[key]; ok {
		key = alias
	}
	if list, ok := subjectTemplates[key]; ok {
		return append([]string(nil), list...)
	}
	name := displaySubject(cleaned)
	if tpl, ok := domainTemplates[domain]; ok {
		return fill(tpl, name)
	}
	if IsCompact(cleaned) {
		return fill(compactTemplate, name)
	}
	tpl := make([]string, 0, len(genericFoundation)+len(genericIntermediate)+len(genericAdvanced))
	tpl = append(tpl, genericFoundation...)
	tpl = append(tpl, genericIntermediate...)
	tpl = append(tpl, genericAdvanced...)
	return fill(tpl, name)
}

// Focused puts a fundamentals title for every focus topic, then a practice
// title for each, ahead of Local's templates. Short subjects prefix focus
// topics that do not already mention them. Without focus it is Local.
func Focused(subject string, focus []string, domain classify.Tag) []string {
	base := Local(subject, domain)
	if len(focus) == 0 {
		return base
	}
	cleaned := CleanSubject(subject)
	name := displaySubject(cleaned)
	out := make([]string, 0, 2*len(focus)+len(base))
	seen := make(map[string]struct{}, cap(out))
	add := func(t string) {
		k := strings.ToLower(t)
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	var items []string
	for _, f := range focus {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if IsCompact(cleaned) && !strings.Contains(strings.ToLower(f), strings.ToLower(cleaned)) {
			f = name + " " + f
		}
		items = append(items, f)
	}
	for _, f := range items {
		add(f + " Fundamentals")
	}
	for _, f := range items {
		add(f + " in Practice")
	}
	for _, t := range base {
		add(t)
	}
	return out
}

func fill(tpl []string, name string) []string {
	out := make([]string, 0, len(tpl))
	seen := make(map[string]struct{}, len(tpl))
	for _, p := range tpl {
		t := strings.ReplaceAll(p, slot, name)
		k := strings.ToLower(t)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
