package app

import (
    "crypto/sha256"
    "encoding/hex"
    "encoding/json"
    "os"
    "path/filepath"
    "regexp"
    "strings"
)

// resolveOutputPath returns out unchanged unless it names a directory (an
// existing one, or any path ending in a separator). In that case the file
// name is derived from the subject: a slug plus a short hash so different
// subjects with the same slug do not collide.
func resolveOutputPath(out, subject string) string {
    out = strings.TrimSpace(out)
    isDir := strings.HasSuffix(out, "/") || strings.HasSuffix(out, string(filepath.Separator))
    if !isDir {
        if fi, err := os.Stat(out); err == nil && fi.IsDir() { isDir = true }
    }
    if !isDir { return out }
    h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(subject))))
    short := hex.EncodeToString(h[:])[:12]
    return filepath.Join(out, slugify(subject)+"-"+short+".json")
}

// quizSidecarPath places quizzes next to the roadmap JSON.
func quizSidecarPath(outputPath string) string {
    return strings.TrimSuffix(outputPath, ".json") + ".quiz.json"
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
    s = nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
    s = strings.Trim(s, "-")
    if s == "" { s = "roadmap" }
    return s
}

// writeJSON writes v indented, creating parent directories as needed.
func writeJSON(path string, v any) error {
    b, err := json.MarshalIndent(v, "", "  ")
    if err != nil { return err }
    return writeFile(path, append(b, '\n'))
}

func writeFile(path string, data []byte) error {
    if dir := filepath.Dir(path); dir != "" && dir != "." {
        if err := os.MkdirAll(dir, 0o755); err != nil { return err }
    }
    return os.WriteFile(path, data, 0o644)
}
