package cache

import (
    "context"
    "os"
    "path/filepath"
    "testing"
    "time"
)

func TestPurgeLLMCacheByAge(t *testing.T) {
    dir := t.TempDir()
    c := &LLMCache{Dir: dir}
    oldKey, newKey := KeyFrom("m", "old"), KeyFrom("m", "new")
    for _, k := range []string{oldKey, newKey} {
        if err := c.Save(context.Background(), k, []byte("{}")); err != nil {
            t.Fatalf("save: %v", err)
        }
    }
    past := time.Now().Add(-48 * time.Hour)
    if err := os.Chtimes(filepath.Join(dir, oldKey+".json"), past, past); err != nil {
        t.Fatalf("chtimes: %v", err)
    }
    // Non-cache files are left alone.
    if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
        t.Fatalf("write: %v", err)
    }
    removed, err := PurgeLLMCacheByAge(dir, 24*time.Hour)
    if err != nil {
        t.Fatalf("purge: %v", err)
    }
    if removed != 1 {
        t.Fatalf("expected 1 removed, got %d", removed)
    }
    if _, err := os.Stat(filepath.Join(dir, newKey+".json")); err != nil {
        t.Fatalf("fresh entry should remain: %v", err)
    }
    if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
        t.Fatalf("unrelated file removed: %v", err)
    }
}

func TestPurgeLLMCacheByAge_DisabledAndMissingDir(t *testing.T) {
    if n, err := PurgeLLMCacheByAge(t.TempDir(), 0); n != 0 || err != nil {
        t.Fatalf("zero maxAge should be a no-op, got %d %v", n, err)
    }
    missing := filepath.Join(t.TempDir(), "nope")
    if n, err := PurgeLLMCacheByAge(missing, time.Hour); n != 0 || err != nil {
        t.Fatalf("missing dir should be a no-op, got %d %v", n, err)
    }
}

func TestClearDir(t *testing.T) {
    dir := filepath.Join(t.TempDir(), "c")
    c := &LLMCache{Dir: dir}
    if err := c.Save(context.Background(), "k", []byte("{}")); err != nil {
        t.Fatalf("save: %v", err)
    }
    if err := ClearDir(dir); err != nil {
        t.Fatalf("clear: %v", err)
    }
    ents, err := os.ReadDir(dir)
    if err != nil {
        t.Fatalf("readdir: %v", err)
    }
    if len(ents) != 0 {
        t.Fatalf("expected empty dir, got %d entries", len(ents))
    }
    if err := ClearDir("  "); err == nil {
        t.Fatal("expected error for blank dir")
    }
}
