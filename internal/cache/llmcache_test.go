package cache

import (
    "context"
    "fmt"
    "os"
    "path/filepath"
    "testing"
    "time"
)

func TestLLMCache_SaveGet(t *testing.T) {
	tmp := t.TempDir()
	c := &LLMCache{Dir: tmp}
	key := KeyFrom("model", "prompt")
	data := []byte(`{"titles":["a","b"]}`)
	if err := c.Save(context.Background(), key, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := c.Get(context.Background(), key)
	if err != nil || !ok {
		t.Fatalf("get: %v ok=%v", err, ok)
	}
	if string(got) != string(data) {
		t.Fatalf("mismatch")
	}
}

func TestLLMCache_MissIsNotAnError(t *testing.T) {
    c := &LLMCache{Dir: t.TempDir()}
    b, ok, err := c.Get(context.Background(), KeyFrom("m", "absent"))
    if err != nil || ok || b != nil {
        t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
    }
}

func TestLLMCache_UnconfiguredDir(t *testing.T) {
    var c *LLMCache
    if _, _, err := c.Get(context.Background(), "k"); err == nil {
        t.Fatal("expected error for nil cache")
    }
}

func TestKeyFrom_ModelSensitive(t *testing.T) {
    if KeyFrom("a", "p") == KeyFrom("b", "p") {
        t.Fatal("key must depend on model")
    }
    if KeyFrom("a", "p") != KeyFrom("a", "p") {
        t.Fatal("key must be deterministic")
    }
}

func TestLLMCache_LRUEnforcement(t *testing.T) {
    tmp := t.TempDir()
    c := &LLMCache{Dir: tmp}
    keys := []string{KeyFrom("m", "p1"), KeyFrom("m", "p2"), KeyFrom("m", "p3")}
    base := time.Now().Add(-time.Hour)
    for i, k := range keys {
        if err := c.Save(context.Background(), k, []byte(fmt.Sprintf("%d", i))); err != nil {
            t.Fatalf("save %d: %v", i, err)
        }
        mt := base.Add(time.Duration(i) * time.Minute)
        if err := os.Chtimes(filepath.Join(tmp, k+".json"), mt, mt); err != nil {
            t.Fatalf("chtimes: %v", err)
        }
    }
    // Touch p1 so p2 becomes the least recently used.
    if _, ok, _ := c.Get(context.Background(), keys[0]); !ok {
        t.Fatal("expected hit")
    }
    removed, err := EnforceLLMCacheLimits(tmp, 0, 2)
    if err != nil {
        t.Fatalf("enforce: %v", err)
    }
    if removed != 1 {
        t.Fatalf("expected 1 removed, got %d", removed)
    }
    if _, ok, _ := c.Get(context.Background(), keys[1]); ok {
        t.Fatal("expected least recently used entry evicted")
    }
    if _, ok, _ := c.Get(context.Background(), keys[0]); !ok {
        t.Fatal("recently touched entry should survive")
    }
}
