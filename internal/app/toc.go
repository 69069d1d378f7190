package app

import (
    "strings"

    "github.com/hyperifyio/goroadmap/internal/roadmap"
)

// tableOfContents links every day heading, and the quiz section when
// present. Single-day roadmaps get none.
func tableOfContents(rm roadmap.Roadmap, withQuizzes bool) string {
    if len(rm.Days) < 2 { return "" }
    var b strings.Builder
    b.WriteString("## Table of contents\n\n")
    for _, d := range rm.Days {
        h := dayHeading(d)
        b.WriteString("- [")
        b.WriteString(h)
        b.WriteString("](#")
        b.WriteString(makeSlugForToC(h))
        b.WriteString(")\n")
    }
    if withQuizzes {
        b.WriteString("- [Quizzes](#quizzes)\n")
    }
    b.WriteString("\n")
    return b.String()
}

// makeSlugForToC follows the GitHub heading anchor rules closely enough for
// the headings this package writes.
func makeSlugForToC(s string) string {
    s = strings.ToLower(strings.TrimSpace(s))
    var b strings.Builder
    lastHyphen := false
    for _, r := range s {
        if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
            b.WriteRune(r)
            lastHyphen = false
            continue
        }
        if r == ' ' || r == '-' || r == '_' {
            if !lastHyphen {
                b.WriteByte('-')
                lastHyphen = true
            }
            continue
        }
    }
    return strings.Trim(b.String(), "-")
}
