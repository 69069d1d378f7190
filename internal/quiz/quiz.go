// Package quiz builds short multiple choice checks for a topic. A remote
// model is asked first; anything it gets wrong falls back to a fixed
// two-question quiz so callers always receive something usable.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goroadmap/internal/roadmap"
)

// Question is one multiple choice item. Correct indexes Options.
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Quiz belongs to exactly one topic.
type Quiz struct {
	ID        string     `json:"id"`
	TopicID   string     `json:"topicId"`
	Questions []Question `json:"questions"`
	Source    string     `json:"source"`
}

const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Generator produces questions for a topic.
type Generator interface {
	Generate(ctx context.Context, topic roadmap.Topic) ([]Question, error)
}

// DefaultTimeout bounds a remote quiz call when the caller passes zero.
const DefaultTimeout = 20 * time.Second

// Generate returns a quiz for topic from remote when it answers in time with
// at least one valid question, and the fallback quiz otherwise.
func Generate(ctx context.Context, topic roadmap.Topic, remote Generator, timeout time.Duration) Quiz {
	q := Quiz{ID: "quiz_" + topic.ID, TopicID: topic.ID}
	if remote != nil {
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cctx, cancel := context.WithTimeout(ctx, timeout)
		questions, err := remote.Generate(cctx, topic)
		cancel()
		if err == nil {
			questions, err = Validate(questions)
		}
		if err == nil {
			q.Questions = questions
			q.Source = SourceRemote
			return q
		}
		log.Warn().Str("stage", "quiz").Str("topic", topic.ID).Err(err).Msg("remote quiz unavailable; using fallback")
	}
	q.Questions = Fallback(topic.Title)
	q.Source = SourceLocal
	return q
}

// MaxQuestions caps how many remote questions are kept.
const MaxQuestions = 5

// Validate drops malformed questions, renumbers the rest from 1 and keeps at
// most MaxQuestions. It fails when nothing survives.
func Validate(in []Question) ([]Question, error) {
	out := make([]Question, 0, len(in))
	for _, q := range in {
		if err := check(q); err != nil {
			log.Debug().Str("stage", "quiz").Err(err).Msg("dropping question")
			continue
		}
		q.Question = strings.TrimSpace(q.Question)
		q.Explanation = strings.TrimSpace(q.Explanation)
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			opts[i] = strings.TrimSpace(o)
		}
		q.Options = opts
		q.ID = len(out) + 1
		out = append(out, q)
		if len(out) == MaxQuestions {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no valid questions among %d", len(in))
	}
	return out, nil
}

func check(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("blank question")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("want 4 options, got %d", len(q.Options))
	}
	seen := map[string]struct{}{}
	for _, o := range q.Options {
		k := strings.ToLower(strings.TrimSpace(o))
		if k == "" {
			return fmt.Errorf("blank option")
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate option %q", o)
		}
		seen[k] = struct{}{}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range", q.Correct)
	}
	return nil
}

// Fallback is the fixed quiz used whenever no remote questions are available.
func Fallback(topicTitle string) []Question {
	title := strings.TrimSpace(topicTitle)
	return []Question{
		{
			ID:          1,
			Question:    fmt.Sprintf("What is the main concept of %s?", title),
			Options:     []string{"A fundamental principle", "An advanced technique", "A basic overview", "A practical application"},
			Correct:     0,
			Explanation: "This covers the fundamental principle of the topic.",
		},
		{
			ID:          2,
			Question:    fmt.Sprintf("Which approach is best for learning %s?", title),
			Options:     []string{"Theory only", "Practice only", "Theory and practice combined", "Reading documentation"},
			Correct:     2,
			Explanation: "Combining theory with practice provides the best learning experience.",
		},
	}
}
