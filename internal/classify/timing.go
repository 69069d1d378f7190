package classify

import (
	"regexp"
	"strings"
)

// minutesPerTopic is how much runtime of a long-form source one topic is
// expected to cover. Denser domains get more per topic.
var minutesPerTopic = map[Tag]int{
	Programming:   15,
	Blockchain:    15,
	Competitive:   18,
	Academic:      20,
	Certification: 25,
	Language:      10,
	Business:      12,
	Arts:          14,
	Health:        12,
	Science:       18,
	Skills:        10,
	Generic:       12,
}

// MinutesPerTopic returns the per-topic runtime budget for tag.
func MinutesPerTopic(tag Tag) int {
	if m, ok := minutesPerTopic[tag]; ok {
		return m
	}
	return minutesPerTopic[Generic]
}

// keywords are domain-characteristic terms a piece of media must mention to be
// considered on-topic. Tags without an entry accept any content.
var keywords = map[Tag][]string{
	Programming: {"code", "coding", "programming", "development", "software", "algorithm", "function", "variable", "syntax", "debug", "compile"},
	Blockchain:  {"blockchain", "web3", "solidity", "smart contract", "ethereum", "bitcoin", "hyperledger", "gas", "transaction", "dapp", "nft", "defi", "erc-20", "erc-721", "erc-1155", "ethers.js", "web3.js"},
	Language:    {"language", "grammar", "vocabulary", "pronunciation", "speaking", "listening", "reading", "writing", "fluency", "conversation"},
	Business:    {"business", "management", "strategy", "marketing", "finance", "sales", "leadership", "entrepreneur", "company", "corporate"},
	Science:     {"science", "research", "experiment", "theory", "analysis", "data", "laboratory", "study", "scientific", "method"},
	Health:      {"health", "fitness", "exercise", "nutrition", "wellness", "medical", "therapy", "training", "workout", "diet"},
	Arts:        {"art", "design", "creative", "graphics", "illustration", "animation", "videography", "filmmaking", "cinema", "cinematography", "storyboard", "composition", "color grading", "transition", "timeline", "render", "export", "drawing", "painting", "music"},
	Skills:      {"skill", "workshop", "training", "how to", "tutorial", "guide", "editing", "premiere pro", "after effects", "final cut", "davinci resolve", "capcut", "editor"},
}

var keywordPatterns = func() map[Tag]*regexp.Regexp {
	out := make(map[Tag]*regexp.Regexp, len(keywords))
	for tag, terms := range keywords {
		out[tag] = WordPattern(terms)
	}
	return out
}()

// MatchesDomain reports whether text mentions at least one keyword of tag as
// a whole word. Tags without a vocabulary accept any text.
func MatchesDomain(tag Tag, text string) bool {
	re, ok := keywordPatterns[tag]
	if !ok {
		return true
	}
	return re.MatchString(strings.ToLower(text))
}
