package extract

import (
    "strings"
    "testing"
)

func TestPlainText_StripsHighlightMarkup(t *testing.T) {
    in := `Learn <b>Python</b> loops &amp; iteration<br>in   10 minutes`
    got := PlainText(in)
    want := "Learn Python loops & iteration in 10 minutes"
    if got != want {
        t.Fatalf("PlainText = %q, want %q", got, want)
    }
}

func TestPlainText_DropsScriptAndStyle(t *testing.T) {
    in := `<p>Intro</p><script>alert(1)</script><style>.x{}</style><p>Outro</p>`
    got := PlainText(in)
    if strings.Contains(got, "alert") || strings.Contains(got, ".x{}") {
        t.Fatalf("script/style leaked: %q", got)
    }
    if got != "Intro Outro" {
        t.Fatalf("unexpected text %q", got)
    }
}

func TestPlainText_PassesThroughPlainInput(t *testing.T) {
    if got := PlainText("  already\tplain \n text "); got != "already plain text" {
        t.Fatalf("got %q", got)
    }
    if got := PlainText(""); got != "" {
        t.Fatalf("empty input should stay empty, got %q", got)
    }
}

func TestSnippet_TruncatesOnWordBoundary(t *testing.T) {
    in := "The quick brown fox jumps over the lazy dog"
    got := Snippet(in, 20)
    if got != "The quick brown fox…" {
        t.Fatalf("Snippet = %q", got)
    }
    if got := Snippet(in, 0); got != in {
        t.Fatalf("zero limit should not truncate, got %q", got)
    }
    if got := Snippet("short", 20); got != "short" {
        t.Fatalf("short input should not change, got %q", got)
    }
}
