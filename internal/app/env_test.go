package app

import (
    "os"
    "path/filepath"
    "testing"
    "time"
)

// LoadEnvFiles reads KEY=VALUE pairs into the process environment.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
    t.Setenv("FOO", "")
    t.Setenv("BAR", "")

    dir := t.TempDir()
    envPath := filepath.Join(dir, ".env.test")
    content := "\n# sample dotenv file\nFOO=alpha\nBAR=beta\n"
    if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
        t.Fatalf("write dotenv: %v", err)
    }

    if err := LoadEnvFiles(envPath); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }

    if got := os.Getenv("FOO"); got != "alpha" {
        t.Fatalf("FOO=%q, want alpha", got)
    }
    if got := os.Getenv("BAR"); got != "beta" {
        t.Fatalf("BAR=%q, want beta", got)
    }
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
    t.Setenv("K", "")
    dir := t.TempDir()
    a := filepath.Join(dir, ".env.a")
    b := filepath.Join(dir, ".env.b")
    if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil { t.Fatalf("write a: %v", err) }
    if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil { t.Fatalf("write b: %v", err) }

    if err := LoadEnvFiles(a, b); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("K"); got != "second" {
        t.Fatalf("override order failed: got %q, want second", got)
    }
}

// Verify ApplyEnvToConfig reads key settings from environment, including
// the SEARXNG_URL fallback and numeric request fields.
func TestApplyEnvToConfig_FromEnv(t *testing.T) {
    t.Setenv("SEARX_URL", "")
    t.Setenv("SEARXNG_URL", "http://searxng.example")
    t.Setenv("CACHE_DIR", "/tmp/goroadmap-cache")
    t.Setenv("ROADMAP_SUBJECT", "Rust")
    t.Setenv("ROADMAP_DAYS", "14")
    t.Setenv("ROADMAP_HOURS", "1.5")
    t.Setenv("TOPICS_TIMEOUT", "3s")
    t.Setenv("QUIZ", "yes")

    var cfg Config
    ApplyEnvToConfig(&cfg)
    if cfg.SearxURL != "http://searxng.example" {
        t.Fatalf("SearxURL=%q, want fallback from SEARXNG_URL", cfg.SearxURL)
    }
    if cfg.CacheDir != "/tmp/goroadmap-cache" {
        t.Fatalf("CacheDir=%q, want /tmp/goroadmap-cache", cfg.CacheDir)
    }
    if cfg.Subject != "Rust" || cfg.Days != 14 || cfg.StudyHours != 1.5 {
        t.Fatalf("request fields not read: %+v", cfg)
    }
    if cfg.TopicTimeout != 3*time.Second || !cfg.Quiz {
        t.Fatalf("timeout/quiz not read: %s %v", cfg.TopicTimeout, cfg.Quiz)
    }
}

// Explicit values win over env in ApplyEnvToConfig but not in ApplyEnvOverrides.
func TestApplyEnv_Precedence(t *testing.T) {
    t.Setenv("ROADMAP_SUBJECT", "Go")
    t.Setenv("ROADMAP_DAYS", "not-a-number")
    t.Setenv("VERBOSE", "false")

    cfg := Config{Subject: "Python", Days: 5, Verbose: true}
    ApplyEnvToConfig(&cfg)
    if cfg.Subject != "Python" || cfg.Days != 5 || !cfg.Verbose {
        t.Fatalf("explicit values should be kept: %+v", cfg)
    }
    ApplyEnvOverrides(&cfg)
    if cfg.Subject != "Go" {
        t.Fatalf("override should replace subject, got %q", cfg.Subject)
    }
    if cfg.Days != 5 {
        t.Fatalf("unparsable env must not clobber days, got %d", cfg.Days)
    }
    if cfg.Verbose {
        t.Fatalf("VERBOSE=false should switch verbose off")
    }
}

func TestParseEnvLine(t *testing.T) {
    cases := []struct {
        in       string
        key, val string
        ok       bool
    }{
        {"A=b", "A", "b", true},
        {"export LLM_MODEL=gpt", "LLM_MODEL", "gpt", true},
        {`Q="keep # this"`, "Q", "keep # this", true},
        {"C=value # trailing", "C", "value", true},
        {"# comment", "", "", false},
        {"=novalue", "", "", false},
        {"noequals", "", "", false},
    }
    for _, tc := range cases {
        k, v, ok := parseEnvLine(tc.in)
        if ok != tc.ok || k != tc.key || v != tc.val {
            t.Fatalf("parseEnvLine(%q) = %q %q %v", tc.in, k, v, ok)
        }
    }
}
