package app

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.Subject == "" { cfg.Subject = os.Getenv("ROADMAP_SUBJECT") }
    if cfg.SkillLevel == "" { cfg.SkillLevel = os.Getenv("ROADMAP_LEVEL") }
    if cfg.Category == "" { cfg.Category = os.Getenv("ROADMAP_CATEGORY") }
    if cfg.Subcategory == "" { cfg.Subcategory = os.Getenv("ROADMAP_SUBCATEGORY") }
    if len(cfg.CourseTopics) == 0 { cfg.CourseTopics = envList("ROADMAP_TOPICS") }
    if cfg.Days == 0 {
        if n, ok := envInt("ROADMAP_DAYS"); ok { cfg.Days = n }
    }
    if cfg.StudyHours == 0 {
        if f, ok := envFloat("ROADMAP_HOURS"); ok { cfg.StudyHours = f }
    }

    if cfg.LLMBaseURL == "" { cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL") }
    if cfg.LLMModel == "" { cfg.LLMModel = os.Getenv("LLM_MODEL") }
    if cfg.LLMAPIKey == "" { cfg.LLMAPIKey = os.Getenv("LLM_API_KEY") }

    if cfg.SearxURL == "" {
        // Support both SEARX_URL and SEARXNG_URL; prefer SEARX_URL if set
        v := os.Getenv("SEARX_URL")
        if v == "" { v = os.Getenv("SEARXNG_URL") }
        cfg.SearxURL = v
    }
    if cfg.SearxKey == "" {
        v := os.Getenv("SEARX_KEY")
        if v == "" { v = os.Getenv("SEARXNG_KEY") }
        cfg.SearxKey = v
    }
    if cfg.FileSearchPath == "" { cfg.FileSearchPath = os.Getenv("SEARCH_FILE") }

    if cfg.CacheDir == "" { cfg.CacheDir = os.Getenv("CACHE_DIR") }
    if cfg.RedisURL == "" { cfg.RedisURL = os.Getenv("REDIS_URL") }

    setDuration := func(dst *time.Duration, envKey string) {
        if *dst != 0 { return }
        if d, ok := envDuration(envKey); ok { *dst = d }
    }
    setDuration(&cfg.CacheMaxAge, "CACHE_MAX_AGE")
    setDuration(&cfg.TopicTimeout, "TOPICS_TIMEOUT")
    setDuration(&cfg.MediaTimeout, "MEDIA_TIMEOUT")

    // Booleans
    setBool := func(dst *bool, envKey string) {
        if *dst { return }
        if v, ok := envBool(envKey); ok && v { *dst = true }
    }
    setBool(&cfg.Quiz, "QUIZ")
    setBool(&cfg.Verbose, "VERBOSE")
    setBool(&cfg.CacheClear, "CACHE_CLEAR")
    setBool(&cfg.CacheStrictPerms, "CACHE_STRICT_PERMS")
    setBool(&cfg.LLMCacheOnly, "LLM_CACHE_ONLY")
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when the corresponding env vars are set. This is used to let env take
// precedence over values coming from a config file while still allowing flags
// to remain highest precedence.
func ApplyEnvOverrides(cfg *Config) {
    if cfg == nil { return }

    if v := os.Getenv("ROADMAP_SUBJECT"); v != "" { cfg.Subject = v }
    if v := os.Getenv("ROADMAP_LEVEL"); v != "" { cfg.SkillLevel = v }
    if v := os.Getenv("ROADMAP_CATEGORY"); v != "" { cfg.Category = v }
    if v := os.Getenv("ROADMAP_SUBCATEGORY"); v != "" { cfg.Subcategory = v }
    if l := envList("ROADMAP_TOPICS"); len(l) > 0 { cfg.CourseTopics = l }
    if n, ok := envInt("ROADMAP_DAYS"); ok { cfg.Days = n }
    if f, ok := envFloat("ROADMAP_HOURS"); ok { cfg.StudyHours = f }

    if v := os.Getenv("LLM_BASE_URL"); v != "" { cfg.LLMBaseURL = v }
    if v := os.Getenv("LLM_MODEL"); v != "" { cfg.LLMModel = v }
    if v := os.Getenv("LLM_API_KEY"); v != "" { cfg.LLMAPIKey = v }

    if v := os.Getenv("SEARX_URL"); v != "" { cfg.SearxURL = v }
    if v := os.Getenv("SEARXNG_URL"); v != "" { cfg.SearxURL = v }
    if v := os.Getenv("SEARX_KEY"); v != "" { cfg.SearxKey = v }
    if v := os.Getenv("SEARXNG_KEY"); v != "" { cfg.SearxKey = v }
    if v := os.Getenv("SEARCH_FILE"); v != "" { cfg.FileSearchPath = v }

    if v := os.Getenv("CACHE_DIR"); v != "" { cfg.CacheDir = v }
    if v := os.Getenv("REDIS_URL"); v != "" { cfg.RedisURL = v }

    if d, ok := envDuration("CACHE_MAX_AGE"); ok { cfg.CacheMaxAge = d }
    if d, ok := envDuration("TOPICS_TIMEOUT"); ok { cfg.TopicTimeout = d }
    if d, ok := envDuration("MEDIA_TIMEOUT"); ok { cfg.MediaTimeout = d }

    // Booleans override when env present and truthy/falsey
    setBool := func(dst *bool, envKey string) {
        if v, ok := envBool(envKey); ok { *dst = v }
    }
    setBool(&cfg.Quiz, "QUIZ")
    setBool(&cfg.Verbose, "VERBOSE")
    setBool(&cfg.CacheClear, "CACHE_CLEAR")
    setBool(&cfg.CacheStrictPerms, "CACHE_STRICT_PERMS")
    setBool(&cfg.LLMCacheOnly, "LLM_CACHE_ONLY")
}

// envList splits a comma-separated variable, dropping blank entries.
func envList(key string) []string {
    var out []string
    for _, p := range strings.Split(os.Getenv(key), ",") {
        if v := strings.TrimSpace(p); v != "" { out = append(out, v) }
    }
    return out
}

func envInt(key string) (int, bool) {
    s := strings.TrimSpace(os.Getenv(key))
    if s == "" { return 0, false }
    n, err := strconv.Atoi(s)
    if err != nil { return 0, false }
    return n, true
}

func envFloat(key string) (float64, bool) {
    s := strings.TrimSpace(os.Getenv(key))
    if s == "" { return 0, false }
    f, err := strconv.ParseFloat(s, 64)
    if err != nil { return 0, false }
    return f, true
}

func envDuration(key string) (time.Duration, bool) {
    s := strings.TrimSpace(os.Getenv(key))
    if s == "" { return 0, false }
    d, err := time.ParseDuration(s)
    if err != nil { return 0, false }
    return d, true
}

func envBool(key string) (bool, bool) {
    switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
    case "1", "true", "yes", "on":
        return true, true
    case "0", "false", "no", "off":
        return false, true
    }
    return false, false
}
