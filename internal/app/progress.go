package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "math"
    "os"
    "strings"
    "time"

    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/goroadmap/internal/roadmap"
)

// progressStats summarizes the completion flags of a roadmap.
type progressStats struct {
    Percent         int
    CompletedTopics int
    TotalTopics     int
    CompletedDays   int
    TotalDays       int
    Streak          int
}

// computeProgress counts completion from the day and topic flags. A day is
// complete when it is flagged or every one of its topics is. The streak is
// the run of consecutive complete days ending at the last complete one,
// unless the roadmap already records a streak of its own.
func computeProgress(rm roadmap.Roadmap) progressStats {
    st := progressStats{TotalDays: rm.TotalDays}
    if st.TotalDays == 0 {
        st.TotalDays = len(rm.Days)
    }
    run := 0
    for _, d := range rm.Days {
        done := 0
        for _, t := range d.Topics {
            st.TotalTopics++
            if t.Completed {
                done++
            }
        }
        st.CompletedTopics += done
        if d.Completed || (len(d.Topics) > 0 && done == len(d.Topics)) {
            st.CompletedDays++
            run++
            st.Streak = run
        } else {
            run = 0
        }
    }
    if rm.Progress.Streak > 0 {
        st.Streak = rm.Progress.Streak
    }
    if st.TotalTopics > 0 {
        st.Percent = int(math.Round(float64(st.CompletedTopics) * 100 / float64(st.TotalTopics)))
    }
    return st
}

// renderProgressReport lays the statistics out as Markdown, followed by a
// checklist of days.
func renderProgressReport(rm roadmap.Roadmap, now time.Time) string {
    st := computeProgress(rm)
    var b strings.Builder
    b.WriteString("# Learning Progress Report\n\n")
    fmt.Fprintf(&b, "- Course: %s\n", courseTitle(rm))
    fmt.Fprintf(&b, "- Generated: %s\n\n", now.Format("2006-01-02"))
    b.WriteString("## Progress Statistics\n\n")
    fmt.Fprintf(&b, "- Completion: %d%%\n", st.Percent)
    fmt.Fprintf(&b, "- Topics Completed: %d/%d\n", st.CompletedTopics, st.TotalTopics)
    fmt.Fprintf(&b, "- Days Completed: %d/%d\n", st.CompletedDays, st.TotalDays)
    fmt.Fprintf(&b, "- Learning Streak: %d days\n\n", st.Streak)

    if len(rm.Days) == 0 {
        return b.String()
    }
    b.WriteString("## Days\n\n")
    for _, d := range rm.Days {
        titles := make([]string, 0, len(d.Topics))
        done := 0
        for _, t := range d.Topics {
            titles = append(titles, t.Title)
            if t.Completed {
                done++
            }
        }
        mark := " "
        if d.Completed || (len(d.Topics) > 0 && done == len(d.Topics)) {
            mark = "x"
        }
        fmt.Fprintf(&b, "- [%s] %s: %s\n", mark, dayHeading(d), strings.Join(titles, ", "))
    }
    return b.String()
}

// WriteProgressReport reads a roadmap JSON written by an earlier run and
// renders its progress report to mdPath and pdfPath. With neither path set
// the Markdown goes to w.
func WriteProgressReport(roadmapPath, mdPath, pdfPath string, w io.Writer, now time.Time) error {
    data, err := os.ReadFile(roadmapPath)
    if err != nil {
        return fmt.Errorf("read roadmap: %w", err)
    }
    var rm roadmap.Roadmap
    if err := json.Unmarshal(data, &rm); err != nil {
        return fmt.Errorf("parse roadmap %s: %w", roadmapPath, err)
    }
    if len(rm.Days) == 0 {
        return errors.New("roadmap has no days")
    }
    md := renderProgressReport(rm, now)
    if mdPath == "" && pdfPath == "" {
        _, err := io.WriteString(w, md)
        return err
    }
    if mdPath != "" {
        if err := writeFile(mdPath, []byte(md)); err != nil {
            return fmt.Errorf("write report markdown: %w", err)
        }
        log.Info().Str("out", mdPath).Msg("wrote progress report")
    }
    if pdfPath != "" {
        if err := writeMarkdownPDF(md, pdfPath); err != nil {
            return fmt.Errorf("write report pdf: %w", err)
        }
        log.Info().Str("out", pdfPath).Msg("wrote progress report pdf")
    }
    return nil
}
