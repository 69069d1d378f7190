package app

import (
    "strconv"
    "strings"
)

// runInfo records how a roadmap was produced.
type runInfo struct {
    TopicSource   string
    Model         string
    BaseURL       string
    MediaProvider string
    MediaDay      int
    CacheBackend  string
}

// appendReproFooter appends a minimal, deterministic footer that records
// configuration useful for reproducing a roadmap.
func appendReproFooter(markdown string, info runInfo) string {
    var b strings.Builder
    b.WriteString(markdown)
    b.WriteString("\n---\n")
    b.WriteString("Reproducibility: ")
    b.WriteString("topic_source=")
    b.WriteString(strings.TrimSpace(info.TopicSource))
    b.WriteString("; model=")
    b.WriteString(strings.TrimSpace(info.Model))
    b.WriteString("; llm_base_url=")
    b.WriteString(strings.TrimSpace(info.BaseURL))
    b.WriteString("; media_provider=")
    b.WriteString(orNone(info.MediaProvider))
    b.WriteString("; media_day=")
    b.WriteString(strconv.Itoa(info.MediaDay))
    b.WriteString("; cache=")
    b.WriteString(orNone(info.CacheBackend))
    b.WriteString("\n")
    return b.String()
}

func orNone(s string) string {
    if s = strings.TrimSpace(s); s == "" { return "none" }
    return s
}
