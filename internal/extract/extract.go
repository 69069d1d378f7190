// Package extract turns the HTML-bearing fields returned by search backends
// (titles and content snippets with <b> highlights, entities and stray
// markup) into plain single-line text.
package extract

import (
    "strings"
    "unicode/utf8"

    "golang.org/x/net/html"
)

// PlainText strips markup from an HTML fragment, decodes entities and
// collapses whitespace. Script, style and iframe contents are dropped.
// Input without markup comes back trimmed and collapsed.
func PlainText(fragment string) string {
    if !strings.ContainsAny(fragment, "<&") {
        return collapseSpaces(strings.TrimSpace(fragment))
    }
    nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
        Type: html.ElementNode,
        Data: "div",
    })
    if err != nil {
        return collapseSpaces(strings.TrimSpace(fragment))
    }
    var b strings.Builder
    for _, n := range nodes {
        collectText(&b, n)
    }
    return collapseSpaces(strings.TrimSpace(b.String()))
}

// Snippet returns PlainText(fragment) cut to at most maxRunes runes on a word
// boundary, with an ellipsis appended when shortened. maxRunes <= 0 disables
// truncation.
func Snippet(fragment string, maxRunes int) string {
    s := PlainText(fragment)
    if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
        return s
    }
    r := []rune(s)[:maxRunes]
    cut := string(r)
    if i := strings.LastIndexByte(cut, ' '); i > len(cut)/2 {
        cut = cut[:i]
    }
    return strings.TrimRight(cut, " ,.;:") + "…"
}

func collectText(b *strings.Builder, n *html.Node) {
    if n.Type == html.ElementNode {
        switch strings.ToLower(n.Data) {
        case "script", "style", "noscript", "iframe":
            return
        case "br", "p", "div", "li":
            b.WriteByte(' ')
        }
    }
    if n.Type == html.TextNode {
        b.WriteString(n.Data)
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collectText(b, c)
    }
}

func collapseSpaces(s string) string {
    var b strings.Builder
    lastSpace := false
    for _, r := range s {
        if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\u00a0' {
            if !lastSpace {
                b.WriteByte(' ')
                lastSpace = true
            }
            continue
        }
        b.WriteRune(r)
        lastSpace = false
    }
    return b.String()
}
