// Package topics synthesizes the ordered topic list a roadmap is built from.
// A remote generator is tried first under a bounded timeout; any failure
// silently falls back to local per-domain templates.
package topics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goroadmap/internal/classify"
	"github.com/hyperifyio/goroadmap/internal/roadmap"
)

// Request carries the learner preferences a remote generator may use to
// tailor its titles.
type Request struct {
	Subject    string
	Days       int
	SkillLevel roadmap.SkillLevel
	StudyHours float64
	// Course is the display name of a catalog course; Subject stays the
	// short base name.
	Course string
	// Focus topics are covered first; Guidance lines are extra requirements
	// for the remote generator.
	Focus    []string
	Guidance []string
}

// Generator produces topic titles for a request. Implementations may fail or
// block; Synthesize bounds and absorbs both.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]string, error)
}

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, req Request) ([]string, error)

func (f Func) Generate(ctx context.Context, req Request) ([]string, error) { return f(ctx, req) }

// Source records which path produced a topic list.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// ErrRemoteUnavailable wraps every reason the remote path was abandoned. It
// never leaves this package's callers in the engine.
var ErrRemoteUnavailable = errors.New("remote topic generator unavailable")

// DefaultTimeout bounds a remote topic call when the caller passes zero.
const DefaultTimeout = 15 * time.Second

// Result is the synthesized topic list and where it came from.
type Result struct {
	Titles []string
	Source Source
}

// Synthesize returns remote titles when remote answers in time with a valid
// list, and Focused(subject, focus, domain) otherwise. It never fails.
//
// The remote call runs in its own goroutine and races a timer. When the timer
// wins the call is abandoned rather than cancelled: its eventual result is
// dropped and the caller is not kept waiting for it.
func Synthesize(ctx context.Context, req Request, domain classify.Tag, remote Generator, timeout time.Duration) Result {
	if remote != nil {
		titles, err := callRemote(ctx, req, remote, timeout)
		if err == nil {
			log.Debug().Str("stage", "topics").Int("count", len(titles)).Msg("using remote topics")
			return Result{Titles: titles, Source: SourceRemote}
		}
		log.Warn().Str("stage", "topics").Err(err).Msg("remote topics unavailable; using local templates")
	}
	return Result{Titles: Focused(req.Subject, req.Focus, domain), Source: SourceLocal}
}

type outcome struct {
	titles []string
	err    error
}

func callRemote(ctx context.Context, req Request, remote Generator, timeout time.Duration) ([]string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		titles, err := remote.Generate(ctx, req)
		done <- outcome{titles: titles, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case o := <-done:
		if o.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, o.err)
		}
		titles, err := ValidateTitles(o.titles)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
		}
		return titles, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w: timed out after %s", ErrRemoteUnavailable, timeout)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, ctx.Err())
	}
}

// ValidateTitles accepts a non-empty list of distinct, non-blank titles and
// returns it with surrounding whitespace trimmed. Distinctness is
// case-insensitive.
func ValidateTitles(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, errors.New("empty topic list")
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, t := range in {
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, fmt.Errorf("blank topic at index %d", i)
		}
		k := strings.ToLower(s)
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("duplicate topic %q", s)
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
