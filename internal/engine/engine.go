// Package engine is the single entry point for building a roadmap. It
// chains classification, topic synthesis and partitioning, and degrades to
// local generation whenever a remote collaborator misbehaves. Only invalid
// input is ever reported as an error.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/goroadmap/internal/catalog"
	"github.com/hyperifyio/goroadmap/internal/classify"
	"github.com/hyperifyio/goroadmap/internal/media"
	"github.com/hyperifyio/goroadmap/internal/roadmap"
	"github.com/hyperifyio/goroadmap/internal/search"
	"github.com/hyperifyio/goroadmap/internal/topics"
)

// Deps are the optional collaborators of one request. The zero value runs
// fully offline.
type Deps struct {
	// Topics is the remote topic generator; nil means local templates only.
	Topics topics.Generator
	// Media is the remote media search; nil means curated pools only.
	Media        search.Provider
	TopicTimeout time.Duration
	// MediaTimeout bounds each topic's media lookup.
	MediaTimeout time.Duration
	// MaxMedia is the per-topic media count, clamped to 1..2.
	MaxMedia int
	// Concurrency limits parallel media lookups; zero means one per topic.
	Concurrency int
	Now         func() time.Time
	NewID       func() string
}

// DefaultMediaTimeout bounds one topic's media lookup when Deps leaves it zero.
const DefaultMediaTimeout = 10 * time.Second

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now().UTC()
}

func (d Deps) newID() string {
	if d.NewID != nil {
		return d.NewID()
	}
	return uuid.NewString()
}

// GenerateRoadmap builds a roadmap with every topic's media left empty.
func GenerateRoadmap(ctx context.Context, subject string, days int, level roadmap.SkillLevel, studyHours float64, deps Deps) (roadmap.Roadmap, error) {
	req := topics.Request{Subject: subject, Days: days, SkillLevel: level, StudyHours: studyHours}
	return generate(ctx, req, nil, deps)
}

// GenerateCourseRoadmap builds a roadmap for a resolved catalog course. The
// course's base subject drives classification, templates and media search;
// its focus topics lead the topic list.
func GenerateCourseRoadmap(ctx context.Context, course catalog.Course, days int, level roadmap.SkillLevel, studyHours float64, deps Deps) (roadmap.Roadmap, error) {
	req := topics.Request{
		Subject:    course.Subject,
		Days:       days,
		SkillLevel: level,
		StudyHours: studyHours,
		Course:     course.Name,
		Focus:      course.Focus,
		Guidance:   course.Guidance,
	}
	return generate(ctx, req, course.Record(), deps)
}

func generate(ctx context.Context, req topics.Request, course *roadmap.Course, deps Deps) (roadmap.Roadmap, error) {
	if err := roadmap.Validate(req.Subject, req.Days, req.StudyHours); err != nil {
		return roadmap.Roadmap{}, err
	}
	req.Subject = strings.TrimSpace(req.Subject)
	if strings.TrimSpace(string(req.SkillLevel)) == "" {
		req.SkillLevel = roadmap.Intermediate
	}
	domain := classify.Classify(req.Subject)
	log.Debug().Str("stage", "classify").Str("subject", req.Subject).Str("domain", string(domain)).Msg("classified subject")

	rm := roadmap.Roadmap{
		ID:               deps.newID(),
		Subject:          req.Subject,
		Domain:           domain,
		TotalDays:        req.Days,
		SkillLevel:       req.SkillLevel,
		StudyHoursPerDay: req.StudyHours,
		Course:           course,
		CreatedAt:        deps.now(),
	}
	planned, source, err := plan(ctx, req, domain, deps)
	if err != nil {
		log.Error().Str("stage", "engine").Err(err).Msg("planning failed; returning minimal roadmap")
		planned = minimalDays(req.Subject, req.StudyHours, req.SkillLevel)
		source = topics.SourceLocal
	}
	rm.Days = planned
	rm.TopicSource = string(source)
	rm.Progress = roadmap.Progress{TotalTopics: roadmap.CountTopics(planned)}
	return rm, nil
}

// plan never lets a panic escape; it is reported as an error so the caller
// can return the minimal roadmap instead.
func plan(ctx context.Context, req topics.Request, domain classify.Tag, deps Deps) (out []roadmap.Day, source topics.Source, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	res := topics.Synthesize(ctx, req, domain, deps.Topics, deps.TopicTimeout)
	out, err = roadmap.Partition(req.Subject, res.Titles, req.Days, req.SkillLevel, req.StudyHours)
	if err != nil {
		return nil, "", err
	}
	return out, res.Source, nil
}

func minimalDays(subject string, hours float64, level roadmap.SkillLevel) []roadmap.Day {
	title := subject + " Fundamentals"
	return []roadmap.Day{{
		DayNumber: 1,
		Topics: []roadmap.Topic{{
			ID:            "1_1",
			Title:         title,
			Description:   "Learn " + title + " with practical examples and exercises",
			DurationHours: roadmap.RoundHours(hours),
			Difficulty:    roadmap.ProgressiveDifficulty(1, 1, level),
			Category:      roadmap.Theory,
			Media:         []roadmap.MediaItem{},
		}},
	}}
}

// PopulateDayMedia fills every topic of day with media, looking topics up
// concurrently. globalIndexOffset is the flattened index of the day's first
// topic. The input is not modified; each topic's media is replaced, so
// calling it again on a populated day never duplicates items.
func PopulateDayMedia(ctx context.Context, day roadmap.Day, subject string, domain classify.Tag, globalIndexOffset int, deps Deps) roadmap.Day {
	out := day
	out.Topics = make([]roadmap.Topic, len(day.Topics))
	copy(out.Topics, day.Topics)

	timeout := deps.MediaTimeout
	if timeout <= 0 {
		timeout = DefaultMediaTimeout
	}
	g, gctx := errgroup.WithContext(ctx)
	if deps.Concurrency > 0 {
		g.SetLimit(deps.Concurrency)
	}
	for i := range out.Topics {
		i := i
		g.Go(func() error {
			req := media.Request{
				TopicTitle:  out.Topics[i].Title,
				Subject:     subject,
				Domain:      domain,
				GlobalIndex: globalIndexOffset + i,
				MaxResults:  deps.MaxMedia,
			}
			defer func() {
				if r := recover(); r != nil {
					log.Error().Str("stage", "media").Str("topic", req.TopicTitle).Interface("panic", r).Msg("media lookup panicked; using local pool")
					out.Topics[i].Media = media.Local(req)
				}
			}()
			tctx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()
			out.Topics[i].Media = media.Select(tctx, req, deps.Media)
			return nil
		})
	}
	_ = g.Wait()
	log.Debug().Str("stage", "media").Int("day", day.DayNumber).Int("topics", len(out.Topics)).Msg("populated day media")
	return out
}

// PopulateMedia returns a copy of rm with the media for dayNumber filled in.
func PopulateMedia(ctx context.Context, rm roadmap.Roadmap, dayNumber int, deps Deps) (roadmap.Roadmap, error) {
	idx := -1
	for i, d := range rm.Days {
		if d.DayNumber == dayNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rm, &roadmap.InvalidInputError{Field: "day", Reason: fmt.Sprintf("day %d is not in the roadmap", dayNumber)}
	}
	days := make([]roadmap.Day, len(rm.Days))
	copy(days, rm.Days)
	offset := roadmap.GlobalTopicIndex(rm.Days, dayNumber)
	days[idx] = PopulateDayMedia(ctx, rm.Days[idx], rm.Subject, rm.Domain, offset, deps)
	rm.Days = days
	return rm, nil
}
