package app

import (
    "bufio"
    "os"
    "path/filepath"
    "regexp"
    "strings"

    "github.com/jung-kurt/gofpdf"
)

var linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`) // [text](url)

// writeMarkdownPDF renders a roadmap or report Markdown as a simple A4 document.
// Headings become bold lines, list items are indented, links stay clickable
// and intra-document anchors are written as plain text. It does not attempt
// full Markdown layout.
func writeMarkdownPDF(markdown string, outPath string) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    tr := pdf.UnicodeTranslatorFromDescriptor("")
    pdf.SetTitle(tr(firstHeading(markdown)), false)
    pdf.SetFont("Helvetica", "", 11)
    pdf.AddPage()

    scanner := bufio.NewScanner(strings.NewReader(markdown))
    scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
    for scanner.Scan() {
        raw := scanner.Text()
        s := strings.TrimSpace(raw)
        switch {
        case s == "":
            pdf.Ln(3)
            continue
        case s == "---":
            y := pdf.GetY() + 2
            pdf.Line(10, y, 200, y)
            pdf.Ln(5)
            continue
        case strings.HasPrefix(s, "#"):
            level := countPrefix(s, '#')
            text := strings.TrimSpace(s[level:])
            if text == "" { continue }
            size := 16.0
            switch {
            case level == 2:
                size = 13
            case level >= 3:
                size = 11.5
            }
            if level == 2 && pdf.GetY() > 250 {
                pdf.AddPage()
            }
            pdf.SetFont("Helvetica", "B", size)
            pdf.MultiCell(0, 7, tr(text), "", "L", false)
            pdf.SetFont("Helvetica", "", 11)
            continue
        }

        indent := 0.0
        if strings.HasPrefix(s, "- ") {
            indent = 4
            if lead := len(raw) - len(strings.TrimLeft(raw, " ")); lead > 0 {
                indent += float64(lead) * 1.5
            }
            s = "• " + strings.TrimPrefix(s, "- ")
        }
        pdf.SetX(10 + indent)

        parts := linkRe.FindAllStringSubmatchIndex(s, -1)
        if len(parts) == 0 {
            pdf.MultiCell(0, 5, tr(s), "", "L", false)
            continue
        }
        pos := 0
        for _, m := range parts {
            // m: [fullStart, fullEnd, textStart, textEnd, urlStart, urlEnd]
            if m[0] > pos {
                pdf.Write(5, tr(s[pos:m[0]]))
            }
            text := tr(s[m[2]:m[3]])
            url := s[m[4]:m[5]]
            if strings.HasPrefix(url, "#") {
                pdf.Write(5, text)
            } else {
                pdf.SetTextColor(20, 60, 180)
                pdf.WriteLinkString(5, text, url)
                pdf.SetTextColor(0, 0, 0)
            }
            pos = m[1]
        }
        if pos < len(s) {
            pdf.Write(5, tr(s[pos:]))
        }
        pdf.Ln(6)
    }
    if err := scanner.Err(); err != nil {
        return err
    }
    if dir := filepath.Dir(outPath); dir != "" && dir != "." {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return err
        }
    }
    return pdf.OutputFileAndClose(outPath)
}

func firstHeading(markdown string) string {
    for _, line := range strings.Split(markdown, "\n") {
        if s := strings.TrimSpace(line); strings.HasPrefix(s, "# ") {
            return strings.TrimSpace(s[2:])
        }
    }
    return "Learning Roadmap"
}

func countPrefix(s string, r byte) int {
    n := 0
    for i := 0; i < len(s) && s[i] == r; i++ { n++ }
    return n
}
