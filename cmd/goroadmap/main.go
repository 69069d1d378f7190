package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goroadmap/internal/app"
	"github.com/hyperifyio/goroadmap/internal/catalog"
	"github.com/hyperifyio/goroadmap/internal/roadmap"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// options are CLI-only switches that never reach app.Config.
type options struct {
	envFiles    []string
	configPath  string
	showVersion bool
	listCatalog bool
	// reportFrom switches to progress-report mode over an existing roadmap.
	reportFrom string
	reportMD   string
	reportPDF  string
}

func realMain(args []string, stdout io.Writer) int {
	cfg, opts, err := parseConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Error().Err(err).Msg("invalid arguments")
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, app.VersionString())
		return 0
	}
	if opts.listCatalog {
		cat, err := catalog.Default()
		if err == nil {
			err = cat.List(stdout)
		}
		if err != nil {
			log.Error().Err(err).Msg("list catalog failed")
			return 1
		}
		return 0
	}
	if opts.reportFrom != "" {
		if err := app.WriteProgressReport(opts.reportFrom, opts.reportMD, opts.reportPDF, stdout, time.Now()); err != nil {
			log.Error().Err(err).Msg("progress report failed")
			return 1
		}
		return 0
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		return exitCode(err)
	}
	return 0
}

// parseConfig layers configuration with precedence flags > env > file >
// defaults. Flags are bound straight onto the defaults, then every flag the
// user actually passed is replayed after the file and env layers so it wins.
func parseConfig(args []string) (app.Config, options, error) {
	cfg := app.DefaultConfig()
	var (
		opts        options
		envFiles    string
		domainAllow string
		domainDeny  string
		topics      string
	)
	fs := flag.NewFlagSet("goroadmap", flag.ContinueOnError)
	fs.StringVar(&cfg.Subject, "subject", "", "Subject to learn, e.g. 'Python' or 'Spanish conversation'")
	fs.IntVar(&cfg.Days, "days", app.DefaultDays, "Number of days in the roadmap")
	fs.StringVar(&cfg.SkillLevel, "level", app.DefaultSkillLevel, "Skill level: Beginner, Intermediate or Advanced")
	fs.Float64Var(&cfg.StudyHours, "hours", app.DefaultStudyHours, "Study hours per day")
	fs.StringVar(&cfg.Category, "category", "", "Catalog course type, e.g. programming or languages (see -catalog)")
	fs.StringVar(&cfg.Subcategory, "subcategory", "", "Catalog subcategory, e.g. python or spanish")
	fs.StringVar(&topics, "topics", "", "Comma-separated catalog topic ids within the subcategory")
	fs.BoolVar(&opts.listCatalog, "catalog", false, "List catalog categories, subcategories and topic ids, then exit")
	fs.StringVar(&opts.reportFrom, "report.from", "", "Write a progress report for this roadmap JSON instead of generating one")
	fs.StringVar(&opts.reportMD, "report.md", "", "Markdown path for the progress report (stdout when no report path is set)")
	fs.StringVar(&opts.reportPDF, "report.pdf", "", "PDF path for the progress report")
	fs.StringVar(&cfg.OutputPath, "output", app.DefaultOutputPath, "Path (or directory) for the roadmap JSON")
	fs.StringVar(&cfg.OutputMarkdownPath, "output.md", "", "Optional path for a Markdown rendering")
	fs.StringVar(&cfg.OutputPDFPath, "output.pdf", "", "Optional path for a PDF rendering")
	fs.IntVar(&cfg.MediaDay, "media.day", app.DefaultMediaDay, "Day whose media is populated eagerly (0 disables)")
	fs.IntVar(&cfg.MediaMax, "media.max", app.DefaultMediaMax, "Media items per topic (1 or 2)")
	fs.BoolVar(&cfg.Quiz, "quiz", false, "Generate quizzes for the media day")
	fs.StringVar(&cfg.LLMBaseURL, "llm.base", "", "OpenAI-compatible base URL")
	fs.StringVar(&cfg.LLMModel, "llm.model", "", "Model name; empty disables remote topics and quizzes")
	fs.StringVar(&cfg.LLMAPIKey, "llm.key", "", "API key for OpenAI-compatible server")
	fs.BoolVar(&cfg.LLMCacheOnly, "llm.cacheOnly", false, "Serve model answers from cache only; never call the model")
	fs.StringVar(&cfg.SearxURL, "searx.url", "", "SearxNG base URL for video search")
	fs.StringVar(&cfg.SearxKey, "searx.key", "", "SearxNG API key (optional)")
	fs.StringVar(&cfg.SearxUA, "searx.ua", app.DefaultSearxUA, "Custom User-Agent for SearxNG requests")
	fs.StringVar(&cfg.FileSearchPath, "search.file", "", "Path to JSON file for offline file-based video search")
	fs.StringVar(&domainAllow, "domains.allow", "", "Comma-separated allowlist of media hosts (subdomains included)")
	fs.StringVar(&domainDeny, "domains.deny", "", "Comma-separated denylist of media hosts; takes precedence over allow")
	fs.DurationVar(&cfg.TopicTimeout, "timeout.topics", app.DefaultTopicTimeout, "Bound on the remote topic call")
	fs.DurationVar(&cfg.MediaTimeout, "timeout.media", app.DefaultMediaTimeout, "Bound on each topic's media search")
	fs.BoolVar(&cfg.InsecureTLS, "tls.insecure", false, "Skip TLS verification for self-signed local endpoints")
	fs.StringVar(&cfg.CacheDir, "cache.dir", app.DefaultCacheDir, "Cache directory path")
	fs.DurationVar(&cfg.CacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	fs.Int64Var(&cfg.CacheMaxBytes, "cache.maxBytes", 0, "Evict least recently used cache entries beyond this total size; 0 disables")
	fs.IntVar(&cfg.CacheMaxCount, "cache.maxCount", 0, "Evict least recently used cache entries beyond this count; 0 disables")
	fs.BoolVar(&cfg.CacheClear, "cache.clear", false, "Clear cache directory before run")
	fs.BoolVar(&cfg.CacheStrictPerms, "cache.strictPerms", false, "Restrict cache permissions (0700 dirs, 0600 files)")
	fs.StringVar(&cfg.RedisURL, "cache.redis", "", "Redis URL for a shared cache; falls back to the file cache when unreachable")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	fs.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files loaded before reading env")
	fs.StringVar(&opts.configPath, "config", "", "YAML or JSON config file")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, opts, err
	}
	if rest := strings.TrimSpace(strings.Join(fs.Args(), " ")); rest != "" && cfg.Subject == "" {
		if err := fs.Set("subject", rest); err != nil {
			return cfg, opts, err
		}
	}
	if opts.showVersion || opts.listCatalog || opts.reportFrom != "" {
		return cfg, opts, nil
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

	opts.envFiles = splitList(envFiles)
	if err := app.LoadEnvFiles(opts.envFiles...); err != nil {
		return cfg, opts, fmt.Errorf("load env: %w", err)
	}
	if opts.configPath == "" {
		opts.configPath = strings.TrimSpace(os.Getenv("GOROADMAP_CONFIG"))
	}
	if opts.configPath != "" {
		fc, err := app.LoadConfigFile(opts.configPath)
		if err != nil {
			return cfg, opts, fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)
	for name, v := range explicit {
		if err := fs.Set(name, v); err != nil {
			return cfg, opts, err
		}
	}
	if l := splitList(topics); len(l) > 0 {
		cfg.CourseTopics = l
	}
	if l := splitList(domainAllow); len(l) > 0 {
		cfg.DomainAllowlist = l
	}
	if l := splitList(domainDeny); len(l) > 0 {
		cfg.DomainDenylist = l
	}
	return cfg, opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// exitCode maps errors to the process exit status: 2 for input the user must
// fix, 1 for anything else. Remote failures never get here because the
// engine falls back locally.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, roadmap.ErrInvalidInput):
		return 2
	default:
		return 1
	}
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
