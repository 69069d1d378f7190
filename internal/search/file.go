package search

import (
    "context"
    "encoding/json"
    "errors"
    "os"
    "strings"
)

// FileProvider loads video results from a local JSON file for offline and
// test use. The file is an array of objects:
// {"sourceId": "...", "title": "...", "url": "...", "channel": "...", "snippet": "..."}.
// sourceId is optional and derived from url when absent.
type FileProvider struct {
    Path   string
    Policy *DomainPolicy
}

func (f *FileProvider) Name() string { return "file" }

// queryNoise are words the media query ladder adds around the topic; they
// carry no matching signal.
var queryNoise = map[string]bool{
    "tutorial": true, "explained": true, "course": true, "learn": true,
    "in": true, "the": true, "and": true, "of": true, "for": true,
}

// Search returns entries whose title, channel or snippet contain every
// significant query term, in file order.
func (f *FileProvider) Search(_ context.Context, query string, limit int) ([]Result, error) {
    if strings.TrimSpace(f.Path) == "" {
        return nil, errors.New("file provider path is empty")
    }
    b, err := os.ReadFile(f.Path)
    if err != nil {
        return nil, err
    }
    var raw []Result
    if err := json.Unmarshal(b, &raw); err != nil {
        return nil, err
    }
    terms := make([]string, 0, 8)
    for _, w := range strings.Fields(strings.ToLower(query)) {
        if !queryNoise[w] {
            terms = append(terms, w)
        }
    }
    out := make([]Result, 0, len(raw))
    for _, r := range raw {
        if r.URL == "" || r.Title == "" || !f.Policy.Allows(r.URL) {
            continue
        }
        hay := strings.ToLower(r.Title + " " + r.Channel + " " + r.Snippet)
        if !containsAll(hay, terms) {
            continue
        }
        if r.SourceID == "" {
            r.SourceID = sourceIDFor(r.URL)
        }
        r.Source = f.Name()
        out = append(out, r)
        if limit > 0 && len(out) >= limit {
            break
        }
    }
    return out, nil
}

func containsAll(hay string, terms []string) bool {
    for _, t := range terms {
        if !strings.Contains(hay, t) {
            return false
        }
    }
    return true
}
