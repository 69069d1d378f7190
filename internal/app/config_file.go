package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/goroadmap/internal/catalog"
    "github.com/hyperifyio/goroadmap/internal/roadmap"
)

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags/env.
type FileConfig struct {
    Subject string  `yaml:"subject" json:"subject"`
    Days    int     `yaml:"days" json:"days"`
    Level   string  `yaml:"level" json:"level"`
    Hours   float64 `yaml:"hours" json:"hours"`

    Category    string   `yaml:"category" json:"category"`
    Subcategory string   `yaml:"subcategory" json:"subcategory"`
    Topics      []string `yaml:"topics" json:"topics"`

    Output         string `yaml:"output" json:"output"`
    OutputMarkdown string `yaml:"outputMarkdown" json:"outputMarkdown"`
    OutputPDF      string `yaml:"outputPDF" json:"outputPDF"`

    Media struct {
        Day int `yaml:"day" json:"day"`
        Max int `yaml:"max" json:"max"`
    } `yaml:"media" json:"media"`
    Quiz bool `yaml:"quiz" json:"quiz"`

    LLM struct {
        BaseURL string `yaml:"base" json:"base"`
        Model   string `yaml:"model" json:"model"`
        APIKey  string `yaml:"key" json:"key"`
    } `yaml:"llm" json:"llm"`

    Searx struct {
        URL string `yaml:"url" json:"url"`
        Key string `yaml:"key" json:"key"`
        UA  string `yaml:"ua" json:"ua"`
    } `yaml:"searx" json:"searx"`

    Search struct {
        File string `yaml:"file" json:"file"`
    } `yaml:"search" json:"search"`

    Domains struct {
        Allow []string `yaml:"allow" json:"allow"`
        Deny  []string `yaml:"deny" json:"deny"`
    } `yaml:"domains" json:"domains"`

    Timeouts struct {
        Topics time.Duration `yaml:"topics" json:"topics"`
        Media  time.Duration `yaml:"media" json:"media"`
    } `yaml:"timeouts" json:"timeouts"`

    Cache struct {
        Dir         string        `yaml:"dir" json:"dir"`
        MaxAge      time.Duration `yaml:"maxAge" json:"maxAge"`
        MaxBytes    int64         `yaml:"maxBytes" json:"maxBytes"`
        MaxCount    int           `yaml:"maxCount" json:"maxCount"`
        Clear       bool          `yaml:"clear" json:"clear"`
        StrictPerms bool          `yaml:"strictPerms" json:"strictPerms"`
        Redis       string        `yaml:"redis" json:"redis"`
    } `yaml:"cache" json:"cache"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag default. Flags should already
// have been parsed; this lets the file supply values while preserving
// explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if cfg.Subject == "" && fc.Subject != "" { cfg.Subject = fc.Subject }
    if (cfg.Days == 0 || cfg.Days == DefaultDays) && fc.Days > 0 { cfg.Days = fc.Days }
    if (cfg.SkillLevel == "" || cfg.SkillLevel == DefaultSkillLevel) && fc.Level != "" { cfg.SkillLevel = fc.Level }
    if (cfg.StudyHours == 0 || cfg.StudyHours == DefaultStudyHours) && fc.Hours > 0 { cfg.StudyHours = fc.Hours }
    if cfg.Category == "" && fc.Category != "" { cfg.Category = fc.Category }
    if cfg.Subcategory == "" && fc.Subcategory != "" { cfg.Subcategory = fc.Subcategory }
    if len(cfg.CourseTopics) == 0 && len(fc.Topics) > 0 { cfg.CourseTopics = append([]string{}, fc.Topics...) }

    if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Output != "" { cfg.OutputPath = fc.Output }
    if cfg.OutputMarkdownPath == "" && fc.OutputMarkdown != "" { cfg.OutputMarkdownPath = fc.OutputMarkdown }
    if cfg.OutputPDFPath == "" && fc.OutputPDF != "" { cfg.OutputPDFPath = fc.OutputPDF }

    if cfg.MediaDay == DefaultMediaDay && fc.Media.Day > 0 { cfg.MediaDay = fc.Media.Day }
    if (cfg.MediaMax == 0 || cfg.MediaMax == DefaultMediaMax) && fc.Media.Max > 0 { cfg.MediaMax = fc.Media.Max }
    if !cfg.Quiz && fc.Quiz { cfg.Quiz = true }

    if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" { cfg.LLMBaseURL = fc.LLM.BaseURL }
    if cfg.LLMModel == "" && fc.LLM.Model != "" { cfg.LLMModel = fc.LLM.Model }
    if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" { cfg.LLMAPIKey = fc.LLM.APIKey }

    if cfg.SearxURL == "" && fc.Searx.URL != "" { cfg.SearxURL = fc.Searx.URL }
    if cfg.SearxKey == "" && fc.Searx.Key != "" { cfg.SearxKey = fc.Searx.Key }
    if (cfg.SearxUA == "" || cfg.SearxUA == DefaultSearxUA) && fc.Searx.UA != "" { cfg.SearxUA = fc.Searx.UA }
    if cfg.FileSearchPath == "" && fc.Search.File != "" { cfg.FileSearchPath = fc.Search.File }
    if len(cfg.DomainAllowlist) == 0 && len(fc.Domains.Allow) > 0 { cfg.DomainAllowlist = append([]string{}, fc.Domains.Allow...) }
    if len(cfg.DomainDenylist) == 0 && len(fc.Domains.Deny) > 0 { cfg.DomainDenylist = append([]string{}, fc.Domains.Deny...) }

    if (cfg.TopicTimeout == 0 || cfg.TopicTimeout == DefaultTopicTimeout) && fc.Timeouts.Topics > 0 { cfg.TopicTimeout = fc.Timeouts.Topics }
    if (cfg.MediaTimeout == 0 || cfg.MediaTimeout == DefaultMediaTimeout) && fc.Timeouts.Media > 0 { cfg.MediaTimeout = fc.Timeouts.Media }

    if (cfg.CacheDir == "" || cfg.CacheDir == DefaultCacheDir) && fc.Cache.Dir != "" { cfg.CacheDir = fc.Cache.Dir }
    if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 { cfg.CacheMaxAge = fc.Cache.MaxAge }
    if cfg.CacheMaxBytes == 0 && fc.Cache.MaxBytes > 0 { cfg.CacheMaxBytes = fc.Cache.MaxBytes }
    if cfg.CacheMaxCount == 0 && fc.Cache.MaxCount > 0 { cfg.CacheMaxCount = fc.Cache.MaxCount }
    if !cfg.CacheClear && fc.Cache.Clear { cfg.CacheClear = true }
    if !cfg.CacheStrictPerms && fc.Cache.StrictPerms { cfg.CacheStrictPerms = true }
    if cfg.RedisURL == "" && fc.Cache.Redis != "" { cfg.RedisURL = fc.Cache.Redis }

    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig rejects requests that cannot produce a roadmap before any
// remote call is made.
func ValidateConfig(cfg Config) error {
    subject := cfg.Subject
    course, err := resolveCourse(cfg)
    if err != nil {
        return fmt.Errorf("config: %w", err)
    }
    if course != nil {
        subject = course.Subject
    }
    if err := roadmap.Validate(subject, cfg.Days, cfg.StudyHours); err != nil {
        return fmt.Errorf("config: %w", err)
    }
    if strings.TrimSpace(cfg.OutputPath) == "" {
        return errors.New("config: output path is required")
    }
    if cfg.MediaDay < 0 || cfg.MediaDay > cfg.Days {
        return fmt.Errorf("config: media.day must be between 0 and %d, got %d", cfg.Days, cfg.MediaDay)
    }
    if cfg.MediaMax < 0 || cfg.TopicTimeout < 0 || cfg.MediaTimeout < 0 || cfg.CacheMaxAge < 0 || cfg.CacheMaxBytes < 0 || cfg.CacheMaxCount < 0 {
        return errors.New("config: negative limits are not allowed")
    }
    return nil
}

// resolveCourse returns the catalog course cfg selects, or nil when no
// category is set.
func resolveCourse(cfg Config) (*catalog.Course, error) {
    if strings.TrimSpace(cfg.Category) == "" {
        if strings.TrimSpace(cfg.Subcategory) != "" || len(cfg.CourseTopics) > 0 {
            return nil, &roadmap.InvalidInputError{Field: "category", Reason: "subcategory and topics need a category"}
        }
        return nil, nil
    }
    cat, err := catalog.Default()
    if err != nil {
        return nil, err
    }
    c, err := cat.Resolve(catalog.Selection{
        Category:    cfg.Category,
        Subcategory: cfg.Subcategory,
        Topics:      cfg.CourseTopics,
        Custom:      cfg.Subject,
    })
    if err != nil {
        return nil, err
    }
    return &c, nil
}
