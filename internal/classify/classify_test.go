package classify

import (
	"testing"

	"pgregory.net/rapid"
)

func TestClassify_KnownSubjects(t *testing.T) {
	cases := []struct {
		in   string
		want Tag
	}{
		{"c", Programming},
		{"C", Programming},
		{"  C  ", Programming},
		{"C++", Programming},
		{"c#", Programming},
		{"C Programming", Programming},
		{"Python", Programming},
		{"React Native mobile apps", Programming},
		{"spanish", Language},
		{"Español conversation", Language},
		{"IELTS preparation", Language},
		{"Solidity smart contracts", Blockchain},
		{"web3 development", Blockchain},
		{"JEE Mains", Competitive},
		{"AWS Solutions Architect", Certification},
		{"digital marketing", Business},
		{"organic chemistry", Science},
		{"guitar", Arts},
		{"yoga for beginners", Health},
		{"world history", Academic},
		{"excel", Skills},
		{"random unmapped gibberish subject", Generic},
		{"", Generic},
	}
	for _, tc := range cases {
		if got := Classify(tc.in); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassify_WholeWordOnly(t *testing.T) {
	// "cat" is a competitive exam acronym; it must not fire inside "category".
	if got := Classify("category theory"); got != Science {
		t.Fatalf("expected science for 'category theory', got %q", got)
	}
	// "art" must not fire inside "startup".
	if got := Classify("startup"); got != Generic {
		t.Fatalf("expected generic for 'startup', got %q", got)
	}
}

func TestClassify_PrecedenceBlockchainBeforeProgramming(t *testing.T) {
	if got := Classify("ethereum programming"); got != Blockchain {
		t.Fatalf("expected blockchain to shadow programming, got %q", got)
	}
}

func TestNormalize_FoldsAccentsAndSpaces(t *testing.T) {
	if got := Normalize("  Français   Avancé "); got != "francais avance" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestMinutesPerTopic_DomainDifferentiated(t *testing.T) {
	if MinutesPerTopic(Certification) <= MinutesPerTopic(Language) {
		t.Fatalf("certification should get more runtime per topic than language")
	}
	if MinutesPerTopic(Tag("unknown")) != MinutesPerTopic(Generic) {
		t.Fatalf("unknown tags should use the generic budget")
	}
}

func TestClassify_AlwaysReturnsKnownTag(t *testing.T) {
	known := map[Tag]bool{}
	for _, tag := range Tags() {
		known[tag] = true
	}
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "subject")
		if got := Classify(s); !known[got] {
			rt.Fatalf("Classify(%q) returned unknown tag %q", s, got)
		}
	})
}

func TestMatchesDomain(t *testing.T) {
	if !MatchesDomain(Programming, "Learn Python syntax in 10 minutes") {
		t.Fatal("syntax is a programming keyword")
	}
	if MatchesDomain(Programming, "Barcode scanner review") {
		t.Fatal("code must not match inside barcode")
	}
	if !MatchesDomain(Generic, "anything at all") {
		t.Fatal("generic accepts everything")
	}
	if !MatchesDomain(Blockchain, "Deploy an ERC-20 token") {
		t.Fatal("erc-20 should match")
	}
}
