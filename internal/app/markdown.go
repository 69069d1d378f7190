package app

import (
    "fmt"
    "strconv"
    "strings"

    "github.com/hyperifyio/goroadmap/internal/quiz"
    "github.com/hyperifyio/goroadmap/internal/roadmap"
)

// renderMarkdown lays a roadmap out as a study document: header facts, a
// table of contents, one section per day with its topics and any media, and
// the quizzes when present.
func renderMarkdown(rm roadmap.Roadmap, quizzes []quiz.Quiz) string {
    var b strings.Builder
    fmt.Fprintf(&b, "# %s Learning Roadmap\n\n", courseTitle(rm))
    if rm.Course != nil && strings.TrimSpace(rm.Course.Description) != "" {
        b.WriteString(strings.TrimSpace(rm.Course.Description))
        b.WriteString("\n\n")
    }
    fmt.Fprintf(&b, "- Duration: %d days\n", rm.TotalDays)
    fmt.Fprintf(&b, "- Skill Level: %s\n", rm.SkillLevel)
    fmt.Fprintf(&b, "- Study Hours: %s hours/day\n", formatHours(rm.StudyHoursPerDay))
    fmt.Fprintf(&b, "- Domain: %s\n", rm.Domain)
    fmt.Fprintf(&b, "- Topics: %d\n\n", rm.Progress.TotalTopics)

    b.WriteString(tableOfContents(rm, len(quizzes) > 0))

    for _, d := range rm.Days {
        b.WriteString("## ")
        b.WriteString(dayHeading(d))
        b.WriteString("\n\n")
        for _, t := range d.Topics {
            fmt.Fprintf(&b, "### %s\n\n", t.Title)
            if s := strings.TrimSpace(t.Description); s != "" {
                b.WriteString(s)
                b.WriteString("\n\n")
            }
            fmt.Fprintf(&b, "Duration: %s hours | Difficulty: %s | Category: %s\n\n", formatHours(t.DurationHours), t.Difficulty, t.Category)
            if len(t.Media) > 0 {
                b.WriteString("Media:\n\n")
                for _, m := range t.Media {
                    b.WriteString("- ")
                    b.WriteString(mediaLine(m))
                    b.WriteString("\n")
                }
                b.WriteString("\n")
            }
        }
    }

    if len(quizzes) > 0 {
        b.WriteString("## Quizzes\n\n")
        titles := topicTitles(rm)
        for _, q := range quizzes {
            title := titles[q.TopicID]
            if title == "" { title = q.TopicID }
            fmt.Fprintf(&b, "### %s\n\n", title)
            for _, qq := range q.Questions {
                fmt.Fprintf(&b, "%d. %s\n", qq.ID, qq.Question)
                for i, o := range qq.Options {
                    fmt.Fprintf(&b, "   - %c) %s\n", 'a'+i, o)
                }
                if qq.Correct >= 0 && qq.Correct < len(qq.Options) {
                    fmt.Fprintf(&b, "   - Answer: %c) %s\n", 'a'+qq.Correct, strings.TrimSpace(qq.Explanation))
                }
            }
            b.WriteString("\n")
        }
    }
    return b.String()
}

// courseTitle names a roadmap by its catalog course when it has one.
func courseTitle(rm roadmap.Roadmap) string {
    if rm.Course != nil && strings.TrimSpace(rm.Course.Name) != "" {
        return strings.TrimSpace(rm.Course.Name)
    }
    return rm.Subject
}

func dayHeading(d roadmap.Day) string {
    h := "Day " + strconv.Itoa(d.DayNumber)
    if d.IsRevisionDay {
        h += " (Revision)"
    }
    return h
}

func mediaLine(m roadmap.MediaItem) string {
    label := strings.TrimSpace(m.Title)
    if c := strings.TrimSpace(m.Channel); c != "" {
        label += " (" + c + ")"
    }
    if m.URL == "" {
        return label
    }
    line := "[" + label + "](" + m.URL + ")"
    if m.TimelineOffsetSeconds > 0 {
        line += fmt.Sprintf(" starts at %d:%02d", m.TimelineOffsetSeconds/60, m.TimelineOffsetSeconds%60)
    }
    return line
}

func topicTitles(rm roadmap.Roadmap) map[string]string {
    out := map[string]string{}
    for _, d := range rm.Days {
        for _, t := range d.Topics {
            out[t.ID] = t.Title
        }
    }
    return out
}

// formatHours prints 2 as "2" and 1.67 as "1.67".
func formatHours(h float64) string {
    return strconv.FormatFloat(h, 'f', -1, 64)
}
