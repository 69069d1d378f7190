package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goroadmap/internal/cache"
	"github.com/hyperifyio/goroadmap/internal/catalog"
	"github.com/hyperifyio/goroadmap/internal/engine"
	"github.com/hyperifyio/goroadmap/internal/llm"
	"github.com/hyperifyio/goroadmap/internal/quiz"
	"github.com/hyperifyio/goroadmap/internal/roadmap"
	"github.com/hyperifyio/goroadmap/internal/search"
	"github.com/hyperifyio/goroadmap/internal/topics"
)

// App wires configuration to the roadmap engine and writes the results.
type App struct {
	cfg      Config
	ai       llm.Client
	store    cache.Store
	closer   io.Closer
	provider search.Provider
	cacheTag string
	course   *catalog.Course
}

// defaultMediaHosts restricts remote media to video hosts the selector knows
// how to link and embed.
var defaultMediaHosts = []string{"youtube.com", "youtu.be"}

// New prepares collaborators from cfg. Remote pieces that are not configured
// are left nil and the engine falls back to local generation; a Redis cache
// that cannot be reached degrades to the file cache.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	course, err := resolveCourse(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, course: course}
	httpClient := newHTTPClient(60*time.Second, cfg.InsecureTLS)

	if cfg.RedisURL != "" {
		rs, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.CacheMaxAge)
		if err != nil {
			log.Warn().Str("stage", "cache").Err(err).Msg("redis cache unavailable; using file cache")
		} else {
			a.store, a.closer, a.cacheTag = rs, rs, "redis"
		}
	}
	if a.store == nil && cfg.CacheDir != "" {
		// Apply cache invalidation controls
		if cfg.CacheClear {
			if err := cache.ClearDir(cfg.CacheDir); err != nil {
				log.Warn().Str("stage", "cache").Err(err).Msg("cache clear failed")
			}
		}
		if cfg.CacheMaxAge > 0 {
			if n, err := cache.PurgeLLMCacheByAge(cfg.CacheDir, cfg.CacheMaxAge); err != nil {
				log.Warn().Str("stage", "cache").Err(err).Msg("cache purge failed")
			} else if n > 0 {
				log.Debug().Str("stage", "cache").Int("removed", n).Msg("purged stale cache entries")
			}
		}
		if cfg.CacheMaxBytes > 0 || cfg.CacheMaxCount > 0 {
			if n, err := cache.EnforceLLMCacheLimits(cfg.CacheDir, cfg.CacheMaxBytes, cfg.CacheMaxCount); err != nil {
				log.Warn().Str("stage", "cache").Err(err).Msg("cache limit enforcement failed")
			} else if n > 0 {
				log.Debug().Str("stage", "cache").Int("evicted", n).Msg("evicted cache entries over limit")
			}
		}
		a.store = &cache.LLMCache{Dir: cfg.CacheDir, StrictPerms: cfg.CacheStrictPerms}
		a.cacheTag = "file"
	}

	if strings.TrimSpace(cfg.LLMModel) != "" {
		p := llm.NewOpenAI(cfg.LLMBaseURL, cfg.LLMAPIKey, httpClient)
		a.ai = p
		// Preflight is best-effort: an unreachable model only means local
		// templates will be used.
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		models, err := p.ListModels(pctx)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("LLM model list failed; continuing")
		} else if len(models.Models) > 0 {
			log.Info().Int("count", len(models.Models)).Msg("LLM models available")
		} else {
			log.Warn().Msg("LLM returned zero models")
		}
	}

	policy := &search.DomainPolicy{Allowlist: cfg.DomainAllowlist, Denylist: cfg.DomainDenylist}
	if len(policy.Allowlist) == 0 {
		policy.Allowlist = defaultMediaHosts
	}
	switch {
	case strings.TrimSpace(cfg.FileSearchPath) != "":
		a.provider = &search.FileProvider{Path: cfg.FileSearchPath, Policy: policy}
	case strings.TrimSpace(cfg.SearxURL) != "":
		a.provider = &search.SearxNG{BaseURL: cfg.SearxURL, APIKey: cfg.SearxKey, HTTPClient: httpClient, UserAgent: cfg.SearxUA, Policy: policy}
	}
	return a, nil
}

// Close releases the Redis connection when one is open.
func (a *App) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *App) deps() engine.Deps {
	d := engine.Deps{
		TopicTimeout: a.cfg.TopicTimeout,
		MediaTimeout: a.cfg.MediaTimeout,
		MaxMedia:     a.cfg.MediaMax,
	}
	if a.ai != nil {
		d.Topics = &topics.LLMGenerator{Client: a.ai, Model: a.cfg.LLMModel, Cache: a.store, Verbose: a.cfg.Verbose, CacheOnly: a.cfg.LLMCacheOnly}
	}
	if a.provider != nil {
		d.Media = a.provider
	}
	return d
}

// Run generates the roadmap, fills media and quizzes for the configured day
// and writes every requested output. Invalid input is returned unwrapped
// enough for errors.As to find a *roadmap.InvalidInputError.
func (a *App) Run(ctx context.Context) error {
	deps := a.deps()
	level := roadmap.SkillLevel(a.cfg.SkillLevel)
	var (
		rm  roadmap.Roadmap
		err error
	)
	if a.course != nil {
		rm, err = engine.GenerateCourseRoadmap(ctx, *a.course, a.cfg.Days, level, a.cfg.StudyHours, deps)
	} else {
		rm, err = engine.GenerateRoadmap(ctx, a.cfg.Subject, a.cfg.Days, level, a.cfg.StudyHours, deps)
	}
	if err != nil {
		return fmt.Errorf("generate roadmap: %w", err)
	}
	log.Info().Str("subject", rm.Subject).Str("domain", string(rm.Domain)).Str("topics", rm.TopicSource).Int("days", len(rm.Days)).Msg("roadmap generated")

	var quizzes []quiz.Quiz
	if a.cfg.MediaDay > 0 {
		rm, err = engine.PopulateMedia(ctx, rm, a.cfg.MediaDay, deps)
		if err != nil {
			return fmt.Errorf("populate media: %w", err)
		}
		if a.cfg.Quiz {
			quizzes = a.quizzesFor(ctx, rm, a.cfg.MediaDay)
		}
	}

	out := resolveOutputPath(a.cfg.OutputPath, courseTitle(rm))
	if err := writeJSON(out, rm); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", out).Msg("wrote roadmap")
	if len(quizzes) > 0 {
		qp := quizSidecarPath(out)
		if err := writeJSON(qp, quizzes); err != nil {
			return fmt.Errorf("write quizzes: %w", err)
		}
		log.Info().Str("out", qp).Int("quizzes", len(quizzes)).Msg("wrote quizzes")
	}

	if a.cfg.OutputMarkdownPath == "" && a.cfg.OutputPDFPath == "" {
		return nil
	}
	md := appendReproFooter(renderMarkdown(rm, quizzes), a.runInfo(rm))
	if p := a.cfg.OutputMarkdownPath; p != "" {
		if err := writeFile(p, []byte(md)); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		log.Info().Str("out", p).Msg("wrote markdown")
	}
	if p := a.cfg.OutputPDFPath; p != "" {
		if err := writeMarkdownPDF(md, p); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", p).Msg("wrote pdf")
	}
	return nil
}

func (a *App) quizzesFor(ctx context.Context, rm roadmap.Roadmap, dayNumber int) []quiz.Quiz {
	var remote quiz.Generator
	if a.ai != nil {
		remote = &quiz.LLMGenerator{Client: a.ai, Model: a.cfg.LLMModel, Cache: a.store, Verbose: a.cfg.Verbose, CacheOnly: a.cfg.LLMCacheOnly}
	}
	var out []quiz.Quiz
	for _, d := range rm.Days {
		if d.DayNumber != dayNumber {
			continue
		}
		for _, t := range d.Topics {
			out = append(out, quiz.Generate(ctx, t, remote, a.cfg.TopicTimeout))
		}
	}
	return out
}

func (a *App) runInfo(rm roadmap.Roadmap) runInfo {
	info := runInfo{
		TopicSource:  rm.TopicSource,
		Model:        a.cfg.LLMModel,
		BaseURL:      a.cfg.LLMBaseURL,
		MediaDay:     a.cfg.MediaDay,
		CacheBackend: a.cacheTag,
	}
	if a.provider != nil {
		info.MediaProvider = a.provider.Name()
	}
	return info
}
