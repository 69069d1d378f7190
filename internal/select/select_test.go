package selecter

import (
	"testing"

	"github.com/hyperifyio/goroadmap/internal/classify"
	"github.com/hyperifyio/goroadmap/internal/search"
)

var pyLoops = Criteria{Subject: "Python", Topic: "Loops and Iteration in Python", Domain: classify.Programming}

func TestAssess_RejectsEntertainment(t *testing.T) {
	r := search.Result{SourceID: "a", Title: "Funny Python coding fails compilation", Snippet: "programming tutorial gone wrong"}
	if Assess(r, pyLoops).Accept() {
		t.Fatal("blacklisted term should reject")
	}
}

func TestAssess_RequiresEducationalOrExactPhrase(t *testing.T) {
	plain := search.Result{SourceID: "a", Title: "My Python setup", Snippet: "programming desk tour"}
	if Assess(plain, pyLoops).Accept() {
		t.Fatal("no educational term and no exact phrase should reject")
	}
	edu := search.Result{SourceID: "b", Title: "Python for loops tutorial", Snippet: "coding basics"}
	if !Assess(edu, pyLoops).Accept() {
		t.Fatalf("educational + programming keyword should pass: %+v", Assess(edu, pyLoops))
	}
	phrase := search.Result{SourceID: "c", Title: "Loops and Iteration in Python", Snippet: "write better code"}
	v := Assess(phrase, pyLoops)
	if !v.ExactPhrase || !v.Accept() {
		t.Fatalf("exact simplified phrase should pass: %+v", v)
	}
}

func TestAssess_DomainRelevance(t *testing.T) {
	r := search.Result{SourceID: "a", Title: "Python snake care guide", Snippet: "feeding your pet python"}
	if Assess(r, pyLoops).Accept() {
		t.Fatal("content without programming keywords should reject")
	}
	generic := Criteria{Subject: "Juggling", Topic: "Juggling Basics and Setup", Domain: classify.Generic}
	if !Assess(search.Result{Title: "Juggling lesson for beginners"}, generic).Accept() {
		t.Fatal("generic domain should not require domain keywords")
	}
}

func TestAssess_EditingGuard(t *testing.T) {
	c := Criteria{Subject: "Video Editing", Topic: "Video Editing Fundamentals", Domain: classify.Arts}
	bad := search.Result{Title: "Design tutorial for beginners", Snippet: "creative art"}
	if Assess(bad, c).Accept() {
		t.Fatal("editing context requires an editing tool keyword")
	}
	good := search.Result{Title: "DaVinci Resolve tutorial", Snippet: "timeline and color grading design basics"}
	if !Assess(good, c).Accept() {
		t.Fatalf("editing tool content should pass: %+v", Assess(good, c))
	}
}

func TestSimplify(t *testing.T) {
	cases := map[string]string{
		"Introduction to Python Loops":  "Python Loops",
		"Advanced Excel Methods":        "Excel Methods",
		"Getting Started with Guitar":   "Guitar",
		"Hands-on Rust Ownership":       "Rust Ownership",
		"Pointers in C":                 "Pointers in C",
	}
	for in, want := range cases {
		if got := Simplify(in); got != want {
			t.Fatalf("Simplify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSelect_ClampsAndBoostsQualityChannels(t *testing.T) {
	in := []search.Result{
		{SourceID: "1", Title: "Python loops tutorial", Snippet: "coding", Channel: "Random Person"},
		{SourceID: "2", Title: "Python loops explained", Snippet: "programming", Channel: "Code Academy"},
		{SourceID: "1", Title: "Python loops tutorial (dup)", Snippet: "coding", Channel: "Random Person"},
		{SourceID: "3", Title: "Python loops lesson", Snippet: "software", Channel: "Someone"},
	}
	out := Select(in, pyLoops, Options{MaxResults: 5})
	if len(out) != 2 {
		t.Fatalf("expected clamp to 2, got %d", len(out))
	}
	if out[0].SourceID != "2" || out[1].SourceID != "1" {
		t.Fatalf("unexpected order: %v, %v", out[0].SourceID, out[1].SourceID)
	}
	one := Select(in, pyLoops, Options{})
	if len(one) != 1 || one[0].SourceID != "2" {
		t.Fatalf("zero MaxResults should clamp to 1, got %+v", one)
	}
}

func TestSelect_DedupesByCanonicalURL(t *testing.T) {
	in := []search.Result{
		{Title: "Python loops tutorial", Snippet: "coding", URL: "https://Example.com:443/v#a"},
		{Title: "Python loops tutorial again", Snippet: "coding", URL: "https://example.com/v"},
		{Title: "No url or id", Snippet: "coding tutorial"},
	}
	out := Select(in, pyLoops, Options{MaxResults: 2})
	if len(out) != 1 {
		t.Fatalf("expected canonical duplicate and keyless entry dropped, got %d", len(out))
	}
}
