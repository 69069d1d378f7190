package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// Request
	Subject    string
	Days       int
	SkillLevel string
	StudyHours float64

	// Catalog selection; when Category is set the course replaces Subject,
	// which then only names "other" subcategories.
	Category     string
	Subcategory  string
	CourseTopics []string

	// Outputs
	OutputPath         string
	OutputMarkdownPath string
	OutputPDFPath      string

	// Media and quiz for one day; MediaDay 0 leaves every day lazy.
	MediaDay int
	MediaMax int
	Quiz     bool

	// Search
	SearxURL        string
	SearxKey        string
	SearxUA         string
	FileSearchPath  string
	DomainAllowlist []string
	DomainDenylist  []string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	TopicTimeout time.Duration
	MediaTimeout time.Duration
	// InsecureTLS skips certificate checks for self-signed local endpoints.
	InsecureTLS bool

	// Cache
	CacheDir         string
	CacheMaxAge      time.Duration
	// CacheMaxBytes and CacheMaxCount bound the file cache; 0 is unlimited.
	CacheMaxBytes    int64
	CacheMaxCount    int
	CacheClear       bool
	CacheStrictPerms bool
	LLMCacheOnly     bool
	RedisURL         string

	Verbose bool
}

// Defaults shared by the CLI flags and ApplyFileConfig, which only lets the
// file override a value still at its default.
const (
	DefaultDays         = 7
	DefaultSkillLevel   = "Intermediate"
	DefaultStudyHours   = 2.0
	DefaultOutputPath   = "roadmap.json"
	DefaultMediaDay     = 1
	DefaultMediaMax     = 1
	DefaultCacheDir     = ".goroadmap-cache"
	DefaultSearxUA      = "goroadmap/1.0 (+https://github.com/hyperifyio/goroadmap)"
	DefaultTopicTimeout = 15 * time.Second
	DefaultMediaTimeout = 10 * time.Second
)

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Days:         DefaultDays,
		SkillLevel:   DefaultSkillLevel,
		StudyHours:   DefaultStudyHours,
		OutputPath:   DefaultOutputPath,
		MediaDay:     DefaultMediaDay,
		MediaMax:     DefaultMediaMax,
		SearxUA:      DefaultSearxUA,
		TopicTimeout: DefaultTopicTimeout,
		MediaTimeout: DefaultMediaTimeout,
		CacheDir:     DefaultCacheDir,
	}
}
