package app

import (
    "strings"
    "testing"
)

func TestAppendReproFooter_AppendsDeterministicFooter(t *testing.T) {
    base := "# Go Learning Roadmap\n"
    out := appendReproFooter(base, runInfo{TopicSource: "remote", Model: "gpt-4o-mini", BaseURL: "http://localhost:11434/v1", MediaProvider: "searxng", MediaDay: 1, CacheBackend: "file"})
    if !strings.HasPrefix(out, base) || !strings.Contains(out, "Reproducibility:") {
        t.Fatalf("expected footer appended; got:\n%s", out)
    }
    for _, want := range []string{"topic_source=remote", "model=gpt-4o-mini", "llm_base_url=http://localhost:11434/v1", "media_provider=searxng", "media_day=1", "cache=file"} {
        if !strings.Contains(out, want) {
            t.Fatalf("missing %q in footer:\n%s", want, out)
        }
    }
    if out != appendReproFooter(base, runInfo{TopicSource: "remote", Model: "gpt-4o-mini", BaseURL: "http://localhost:11434/v1", MediaProvider: "searxng", MediaDay: 1, CacheBackend: "file"}) {
        t.Fatal("footer must be deterministic")
    }
}

func TestAppendReproFooter_MarksMissingCollaborators(t *testing.T) {
    out := appendReproFooter("", runInfo{TopicSource: "local"})
    if !strings.Contains(out, "media_provider=none") || !strings.Contains(out, "cache=none") {
        t.Fatalf("expected none markers, got %q", out)
    }
}
