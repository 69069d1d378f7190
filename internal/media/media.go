// Package media picks supplementary videos for a topic. Remote search results
// are preferred when they pass the quality filter; otherwise a curated local
// pool supplies a deterministic pick so the same topic always gets the same
// video at the same offset.
package media

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goroadmap/internal/classify"
	"github.com/hyperifyio/goroadmap/internal/roadmap"
	"github.com/hyperifyio/goroadmap/internal/search"
	selecter "github.com/hyperifyio/goroadmap/internal/select"
)

const (
	foundationalOffsetMinutes = 5
	advancedOffsetMinutes     = 10
)

var (
	advancedTopic = classify.WordPattern([]string{
		"advanced", "optimization", "performance", "architecture", "design patterns",
		"algorithms", "data structures",
	})
	foundationalTopic = classify.WordPattern([]string{
		"introduction", "basics", "getting started", "setup", "installation", "overview",
	})
)

// TimelineOffset returns where in a long-form source the topic at
// globalIndex is expected to start, in seconds. Foundational titles start a
// little earlier and advanced ones a little later than their slot.
func TimelineOffset(topicTitle string, domain classify.Tag, globalIndex int) int {
	if globalIndex < 0 {
		globalIndex = 0
	}
	minutes := globalIndex * classify.MinutesPerTopic(domain)
	t := strings.ToLower(topicTitle)
	switch {
	case advancedTopic.MatchString(t):
		minutes += advancedOffsetMinutes
	case foundationalTopic.MatchString(t):
		minutes -= foundationalOffsetMinutes
	}
	if minutes < 0 {
		minutes = 0
	}
	return minutes * 60
}

// Queries returns the search ladder for a topic, most specific first.
// Duplicates are dropped case-insensitively.
func Queries(subject, topicTitle string) []string {
	subject = strings.TrimSpace(subject)
	topic := selecter.Simplify(topicTitle)
	if topic == "" {
		topic = strings.TrimSpace(topicTitle)
	}
	candidates := []string{
		subject + " " + topic + " tutorial",
		topic + " in " + subject,
		subject + " " + topic + " explained",
		topic + " " + subject + " course",
		"learn " + topic + " " + subject,
		topic + " tutorial",
	}
	if subject == "" || strings.Contains(strings.ToLower(topic), strings.ToLower(subject)) {
		candidates = []string{
			topic + " tutorial",
			topic,
			topic + " explained",
			topic + " course",
			"learn " + topic,
		}
	}
	out := make([]string, 0, len(candidates))
	seen := map[string]struct{}{}
	for _, q := range candidates {
		q = strings.Join(strings.Fields(q), " ")
		k := strings.ToLower(q)
		if q == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, q)
	}
	return out
}

// Request identifies the topic media is selected for.
type Request struct {
	TopicTitle  string
	Subject     string
	Domain      classify.Tag
	GlobalIndex int
	// MaxResults is clamped to 1..2.
	MaxResults int
}

func (r Request) max() int {
	switch {
	case r.MaxResults < 1:
		return 1
	case r.MaxResults > 2:
		return 2
	default:
		return r.MaxResults
	}
}

// Select returns up to MaxResults media items for the topic. It never
// fails: provider errors, panics, empty results and a nil provider all fall
// back to the local pool. The remote lookup is abandoned, not waited on,
// once ctx is done, so a provider that ignores its context cannot stall the
// caller.
func Select(ctx context.Context, req Request, provider search.Provider) []roadmap.MediaItem {
	if provider != nil {
		items, err := remoteGuarded(ctx, req, provider)
		if err == nil && len(items) > 0 {
			return items
		}
		ev := log.Debug()
		if err != nil {
			ev = log.Warn().Err(err)
		}
		ev.Str("stage", "media").Str("topic", req.TopicTitle).Msg("no usable remote media; using local pool")
	}
	return Local(req)
}

type remoteOutcome struct {
	items []roadmap.MediaItem
	err   error
}

func remoteGuarded(ctx context.Context, req Request, provider search.Provider) ([]roadmap.MediaItem, error) {
	done := make(chan remoteOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- remoteOutcome{err: fmt.Errorf("%s search panic: %v", provider.Name(), r)}
			}
		}()
		items, err := Remote(ctx, req, provider)
		done <- remoteOutcome{items: items, err: err}
	}()
	select {
	case o := <-done:
		return o.items, o.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%s search abandoned: %w", provider.Name(), ctx.Err())
	}
}

// Remote walks the query ladder until a query yields at least one candidate
// that passes the quality filter. A provider error aborts the walk.
func Remote(ctx context.Context, req Request, provider search.Provider) ([]roadmap.MediaItem, error) {
	criteria := selecter.Criteria{Subject: req.Subject, Topic: req.TopicTitle, Domain: req.Domain}
	offset := TimelineOffset(req.TopicTitle, req.Domain, req.GlobalIndex)
	for _, q := range Queries(req.Subject, req.TopicTitle) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results, err := provider.Search(ctx, q, 10)
		if err != nil {
			return nil, fmt.Errorf("%s search %q: %w", provider.Name(), q, err)
		}
		if len(results) == 0 {
			continue
		}
		picked := selecter.Select(results, criteria, selecter.Options{MaxResults: req.max()})
		if len(picked) == 0 {
			continue
		}
		out := make([]roadmap.MediaItem, 0, len(picked))
		for _, r := range picked {
			out = append(out, remoteItem(r, offset))
		}
		return out, nil
	}
	return nil, nil
}

func remoteItem(r search.Result, offset int) roadmap.MediaItem {
	item := roadmap.MediaItem{
		SourceID:              r.SourceID,
		Title:                 r.Title,
		Channel:               r.Channel,
		Description:           r.Snippet,
		TimelineOffsetSeconds: offset,
		IsRemote:              true,
	}
	if id := search.VideoID(r.URL); id != "" {
		item.SourceID = id
		item.URL = WatchURL(id, offset)
		item.EmbedURL = EmbedURL(id, offset)
	} else {
		item.URL = r.URL
	}
	if item.SourceID == "" {
		item.SourceID = r.URL
	}
	return item
}

// Local picks from the narrowest curated pool. The starting index is a
// stable hash of topic and subject, so repeated calls agree and different
// topics spread across the pool.
func Local(req Request) []roadmap.MediaItem {
	pool := poolFor(req.Subject, req.TopicTitle, req.Domain)
	n := req.max()
	if n > len(pool) {
		n = len(pool)
	}
	start := int(stableHash(req.TopicTitle, req.Subject) % uint64(len(pool)))
	computed := TimelineOffset(req.TopicTitle, req.Domain, req.GlobalIndex)
	out := make([]roadmap.MediaItem, 0, n)
	for i := 0; i < n; i++ {
		e := pool[(start+i)%len(pool)]
		offset := computed
		if e.HasStart {
			offset = e.Start
		}
		out = append(out, roadmap.MediaItem{
			SourceID:              e.ID,
			Title:                 e.Title,
			Channel:               e.Channel,
			Description:           fmt.Sprintf("%s. Starts at %s", strings.TrimSpace(req.TopicTitle), clock(offset)),
			TimelineOffsetSeconds: offset,
			URL:                   WatchURL(e.ID, offset),
			EmbedURL:              EmbedURL(e.ID, offset),
		})
	}
	return out
}

func stableHash(topicTitle, subject string) uint64 {
	key := strings.ToLower(topicTitle + "_" + subject)
	key = strings.Join(strings.Fields(key), "")
	return xxhash.Sum64String(key)
}

// WatchURL links to the video at the offset.
func WatchURL(id string, offsetSeconds int) string {
	u := "https://www.youtube.com/watch?v=" + id
	if offsetSeconds > 0 {
		u += fmt.Sprintf("&t=%ds", offsetSeconds)
	}
	return u
}

// EmbedURL is the embeddable player URL starting at the offset.
func EmbedURL(id string, offsetSeconds int) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?start=%d", id, offsetSeconds)
}

func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

var (
	javascriptSubject = classify.WordPattern([]string{"javascript", "js"})
	pythonSubject     = classify.WordPattern([]string{"python"})
	subtopics         = []struct {
		key string
		re  *regexp.Regexp
	}{
		{"variables", regexp.MustCompile(`variable|data type`)},
		{"functions", regexp.MustCompile(`function`)},
		{"pointers", regexp.MustCompile(`pointer`)},
		{"arrays", regexp.MustCompile(`array`)},
		{"loops", regexp.MustCompile(`loop`)},
	}
)

func subjectKey(subject string) string {
	s := classify.Normalize(subject)
	switch {
	case s == "c" || s == "c programming" || s == "c language":
		return "c"
	case javascriptSubject.MatchString(s):
		return "javascript"
	case pythonSubject.MatchString(s):
		return "python"
	}
	return ""
}

func subtopicKey(topic string) string {
	t := strings.ToLower(topic)
	for _, st := range subtopics {
		if st.re.MatchString(t) {
			return st.key
		}
	}
	return ""
}
