package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":         "dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42":        "dQw4w9WgXcQ",
		"https://m.youtube.com/watch?v=dQw4w9WgXcQ":           "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=10":                   "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ?start=5":   "dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":          "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=short":               "",
		"https://vimeo.com/123456":                            "",
		"not a url at all":                                    "",
	}
	for in, want := range cases {
		if got := VideoID(in); got != want {
			t.Fatalf("VideoID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDomainPolicy_Allows(t *testing.T) {
	p := &DomainPolicy{Allowlist: []string{"youtube.com"}, Denylist: []string{"music.youtube.com"}}
	if !p.Allows("https://www.youtube.com/watch?v=x") {
		t.Fatal("subdomain of allowlisted host should pass")
	}
	if p.Allows("https://music.youtube.com/watch?v=x") {
		t.Fatal("denylist must take precedence")
	}
	if p.Allows("https://notyoutube.com/") {
		t.Fatal("suffix without dot boundary must not match")
	}
	var nilPolicy *DomainPolicy
	if !nilPolicy.Allows("https://anything.example") {
		t.Fatal("nil policy allows all")
	}
}

func TestFileProvider_MatchesSignificantTerms(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "videos.json")
	data := `[
	  {"title": "Python Loops Explained", "url": "https://www.youtube.com/watch?v=AAAAAAAAAAA", "channel": "Code Academy", "snippet": "for and while loops"},
	  {"title": "Python Functions", "url": "https://www.youtube.com/watch?v=BBBBBBBBBBB", "channel": "Code Academy", "snippet": "def and return"},
	  {"title": "Missing URL", "url": ""}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f := &FileProvider{Path: path}
	got, err := f.Search(context.Background(), "Python Loops tutorial", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].SourceID != "AAAAAAAAAAA" || got[0].Source != "file" {
		t.Fatalf("unexpected results: %+v", got)
	}
	all, err := f.Search(context.Background(), "learn python", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("limit not applied: %d", len(all))
	}
	if _, err := (&FileProvider{}).Search(context.Background(), "q", 1); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestFunc_Adapter(t *testing.T) {
	var p Provider = Func(func(_ context.Context, q string, n int) ([]Result, error) {
		return []Result{{Title: q}}, nil
	})
	got, err := p.Search(context.Background(), "hello", 1)
	if err != nil || got[0].Title != "hello" || p.Name() != "func" {
		t.Fatalf("adapter mismatch: %v %v", got, err)
	}
}
