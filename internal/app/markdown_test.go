package app

import (
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/hyperifyio/goroadmap/internal/classify"
    "github.com/hyperifyio/goroadmap/internal/quiz"
    "github.com/hyperifyio/goroadmap/internal/roadmap"
)

func sampleRoadmap(t *testing.T, days int) roadmap.Roadmap {
    t.Helper()
    parts, err := roadmap.Partition("Python", []string{"Python Variables", "Python Loops"}, days, roadmap.Beginner, 2)
    if err != nil { t.Fatalf("partition: %v", err) }
    rm := roadmap.Roadmap{
        Subject: "Python", Domain: classify.Programming, TotalDays: days,
        SkillLevel: roadmap.Beginner, StudyHoursPerDay: 2, TopicSource: "local", Days: parts,
    }
    rm.Progress.TotalTopics = roadmap.CountTopics(parts)
    return rm
}

func TestRenderMarkdown_DaysMediaAndQuizzes(t *testing.T) {
    rm := sampleRoadmap(t, 5)
    rm.Days[0].Topics[0].Media = []roadmap.MediaItem{{
        SourceID: "abcdefghijk", Title: "Python Variables", Channel: "Code Academy",
        URL: "https://www.youtube.com/watch?v=abcdefghijk&t=90s", TimelineOffsetSeconds: 90,
    }}
    first := rm.Days[0].Topics[0]
    quizzes := []quiz.Quiz{{ID: "quiz_" + first.ID, TopicID: first.ID, Questions: quiz.Fallback(first.Title), Source: quiz.SourceLocal}}

    md := renderMarkdown(rm, quizzes)
    for _, want := range []string{
        "# Python Learning Roadmap",
        "- Duration: 5 days",
        "- Study Hours: 2 hours/day",
        "- [Day 5 (Revision)](#day-5-revision)",
        "- [Quizzes](#quizzes)",
        "## Day 5 (Revision)",
        "### Python Variables",
        "Duration: 2 hours | Difficulty: Beginner | Category: Theory",
        "- [Python Variables (Code Academy)](https://www.youtube.com/watch?v=abcdefghijk&t=90s) starts at 1:30",
        "## Quizzes",
        "   - a) ",
    } {
        if !strings.Contains(md, want) {
            t.Fatalf("markdown missing %q\n%s", want, md)
        }
    }
    if strings.Contains(md, "## Day 4 (Revision)") {
        t.Fatal("only multiples of five are revision days")
    }
}

func TestRenderMarkdown_SingleDayHasNoToC(t *testing.T) {
    md := renderMarkdown(sampleRoadmap(t, 1), nil)
    if strings.Contains(md, "Table of contents") {
        t.Fatal("single-day roadmap should not carry a table of contents")
    }
    if strings.Contains(md, "## Quizzes") {
        t.Fatal("quiz section written without quizzes")
    }
}

func TestMakeSlugForToC(t *testing.T) {
    cases := map[string]string{
        "Day 5 (Revision)": "day-5-revision",
        "Day 12":           "day-12",
        "  Quizzes ":       "quizzes",
        "Day 1 - Intro_x":  "day-1-intro-x",
    }
    for in, want := range cases {
        if got := makeSlugForToC(in); got != want {
            t.Fatalf("makeSlugForToC(%q) = %q, want %q", in, got, want)
        }
    }
}

func TestWriteRoadmapPDF_WritesPDF(t *testing.T) {
    out := filepath.Join(t.TempDir(), "nested", "roadmap.pdf")
    md := appendReproFooter(renderMarkdown(sampleRoadmap(t, 3), nil), runInfo{TopicSource: "local"})
    if err := writeMarkdownPDF(md, out); err != nil {
        t.Fatalf("write pdf: %v", err)
    }
    b, err := os.ReadFile(out)
    if err != nil { t.Fatalf("read pdf: %v", err) }
    if !strings.HasPrefix(string(b), "%PDF") || len(b) < 500 {
        t.Fatalf("unexpected pdf output (%d bytes)", len(b))
    }
}

func TestResolveOutputPath(t *testing.T) {
    if got := resolveOutputPath("out.json", "Python"); got != "out.json" {
        t.Fatalf("file paths pass through, got %q", got)
    }
    dir := t.TempDir()
    got := resolveOutputPath(dir, "Machine Learning")
    base := filepath.Base(got)
    if filepath.Dir(got) != dir || !strings.HasPrefix(base, "machine-learning-") || !strings.HasSuffix(base, ".json") {
        t.Fatalf("unexpected derived path %q", got)
    }
    if again := resolveOutputPath(dir, "Machine Learning"); again != got {
        t.Fatalf("derived path not stable: %q vs %q", again, got)
    }
    if q := quizSidecarPath("a/b/rm.json"); q != "a/b/rm.quiz.json" {
        t.Fatalf("unexpected sidecar %q", q)
    }
}
