// Package classify maps a free-text course subject to a coarse domain tag.
//
// Classification is table driven: an ordered list of (tag, terms) rules is
// evaluated top to bottom and the first rule with a whole-word hit wins. Narrow
// domains sit above broad catch-alls so that, for example, "solidity smart
// contracts" is blockchain rather than programming.
package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tag is a coarse subject-matter domain.
type Tag string

const (
	Programming   Tag = "programming"
	Language      Tag = "language"
	Business      Tag = "business"
	Science       Tag = "science"
	Arts          Tag = "arts"
	Health        Tag = "health"
	Academic      Tag = "academic"
	Competitive   Tag = "competitive"
	Certification Tag = "certification"
	Blockchain    Tag = "blockchain"
	Skills        Tag = "skills"
	Generic       Tag = "generic"
)

func (t Tag) String() string { return string(t) }

// Tags returns every tag in precedence order, Generic last.
func Tags() []Tag {
	out := make([]Tag, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.tag)
	}
	return append(out, Generic)
}

// exactProgramming holds single-token language names that would otherwise be
// too short to survive whole-word substring rules.
var exactProgramming = map[string]struct{}{
	"c":             {},
	"c++":           {},
	"c#":            {},
	"c programming": {},
	"c language":    {},
	"go":            {},
	"r":             {},
}

type rule struct {
	tag   Tag
	terms []string
	re    *regexp.Regexp
}

var rules = compile([]rule{
	{tag: Blockchain, terms: []string{
		"blockchain", "web3", "solidity", "smart contract", "smart contracts", "ethereum", "bitcoin",
		"hyperledger", "defi", "nft", "nfts", "crypto", "cryptocurrency",
	}},
	{tag: Programming, terms: []string{
		"programming", "coding", "development", "javascript", "python", "java", "react", "html", "css",
		"php", "ruby", "swift", "kotlin", "cpp", "c++", "c#", "golang", "rust", "typescript", "angular",
		"vue", "node", "nodejs", "node.js", "django", "flask", "spring", "laravel", "rails", "dotnet",
		"csharp", "sql", "database", "web", "mobile", "app", "software", "algorithm", "algorithms",
		"data structure", "data structures",
	}},
	{tag: Language, terms: []string{
		"english", "spanish", "french", "german", "chinese", "mandarin", "japanese", "korean", "italian",
		"portuguese", "russian", "arabic", "hindi", "bengali", "tamil", "telugu", "marathi", "gujarati",
		"punjabi", "urdu", "language", "grammar", "vocabulary", "speaking", "listening", "reading",
		"writing", "pronunciation", "conversation", "fluency", "ielts", "toefl", "toeic",
	}},
	{tag: Competitive, terms: []string{
		"jee", "neet", "cat", "gate", "upsc", "ssc", "bank", "railway", "exam", "competitive", "entrance",
		"ias", "ips", "pcs", "cds", "nda", "afcat", "clat", "aiims", "bitsat", "wbjee", "comedk", "viteee",
		"srmjeee", "kiitee", "manipal", "amueee",
	}},
	{tag: Certification, terms: []string{
		"aws", "azure", "google cloud", "gcp", "cisco", "microsoft", "oracle", "ibm", "salesforce",
		"vmware", "redhat", "red hat", "comptia", "pmp", "scrum", "agile", "itil", "certification",
		"certified", "professional", "associate", "expert", "specialist", "architect",
	}},
	{tag: Business, terms: []string{
		"business", "marketing", "finance", "accounting", "management", "economics", "sales",
		"entrepreneurship", "commerce", "trade", "investment", "investing", "banking", "insurance", "hr",
		"human resources", "operations", "strategy", "consulting", "leadership", "negotiation",
		"communication", "presentation",
	}},
	{tag: Science, terms: []string{
		"science", "physics", "chemistry", "biology", "mathematics", "math", "maths", "calculus",
		"algebra", "geometry", "statistics", "data", "research", "analysis", "laboratory", "experiment",
		"theory", "quantum", "molecular", "organic", "inorganic", "genetics", "ecology", "astronomy",
		"geology", "meteorology", "botany", "zoology",
	}},
	{tag: Arts, terms: []string{
		"art", "arts", "design", "photography", "music", "drawing", "painting", "creative", "graphics",
		"video", "animation", "illustration", "sculpture", "pottery", "crafts", "fashion", "interior",
		"architecture", "film", "cinema", "theater", "theatre", "dance", "singing", "instrument", "guitar",
		"piano", "violin", "drums",
	}},
	{tag: Health, terms: []string{
		"health", "fitness", "yoga", "nutrition", "medical", "wellness", "exercise", "sports", "therapy",
		"physiotherapy", "diet", "weight", "muscle", "cardio", "strength", "meditation", "mindfulness",
		"mental health", "psychology", "counseling", "nursing", "pharmacy", "medicine", "doctor",
		"healthcare",
	}},
	{tag: Academic, terms: []string{
		"history", "geography", "literature", "philosophy", "sociology", "political", "politics", "law",
		"education", "teaching", "pedagogy", "curriculum", "anthropology", "archaeology", "linguistics",
		"journalism", "media", "library", "information", "engineering", "btech", "mtech", "bca", "mca",
		"bba", "mba", "bsc", "msc", "ba", "ma", "bcom", "mcom", "college", "university", "degree",
		"semester", "syllabus", "academic", "diploma", "bachelor", "master", "phd", "doctorate",
	}},
	{tag: Skills, terms: []string{
		"skill", "skills", "practical", "hands-on", "workshop", "training", "course", "tutorial", "guide",
		"how to", "diy", "craft", "repair", "maintenance", "cooking", "baking", "gardening", "driving",
		"typing", "computer", "excel", "word", "powerpoint", "photoshop", "editing",
	}},
})

func compile(in []rule) []rule {
	for i := range in {
		in[i].re = WordPattern(in[i].terms)
	}
	return in
}

// WordPattern matches any of terms as a whole word in lower-case text. Word characters include
// '+' and '#' so that "c++" does not match inside "c+++" and "c" never matches
// the prefix of "c#".
func WordPattern(terms []string) *regexp.Regexp {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	return regexp.MustCompile(`(?:^|[^a-z0-9+#])(?:` + strings.Join(quoted, "|") + `)(?:$|[^a-z0-9+#])`)
}

// Classify returns the domain tag for subject. It never fails; unmatched
// subjects are Generic.
func Classify(subject string) Tag {
	s := Normalize(subject)
	if s == "" {
		return Generic
	}
	if _, ok := exactProgramming[s]; ok {
		return Programming
	}
	for _, r := range rules {
		if r.re.MatchString(s) {
			return r.tag
		}
	}
	return Generic
}

// Normalize lower-cases subject, folds accents ("Español" → "espanol") and
// collapses internal whitespace.
func Normalize(subject string) string {
	s := strings.ToLower(strings.TrimSpace(subject))
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}
