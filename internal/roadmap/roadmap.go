// Package roadmap holds the serializable roadmap model and the partitioner
// that spreads a topic list across study days.
//
// Every type here is plain data with JSON tags so presentation, persistence
// and export layers can consume a Roadmap without importing the engine.
package roadmap

import (
	"strings"
	"time"

	"github.com/hyperifyio/goroadmap/internal/classify"
)

// SkillLevel is the learner's self-reported level. Extended labels such as
// "Complete Beginner" or "Expert" are kept verbatim; Tier maps them onto the
// three-step difficulty scale.
type SkillLevel string

const (
	Beginner     SkillLevel = "Beginner"
	Intermediate SkillLevel = "Intermediate"
	Advanced     SkillLevel = "Advanced"
)

// Tier collapses extended skill labels onto Beginner, Intermediate or
// Advanced. Unknown labels fall into the Advanced tier, matching the
// "Advanced/other" branch of the difficulty curve.
func (s SkillLevel) Tier() SkillLevel {
	v := strings.ToLower(strings.TrimSpace(string(s)))
	switch {
	case v == "" || strings.Contains(v, "intermediate"):
		return Intermediate
	case strings.Contains(v, "beginner") || v == "novice" || v == "newbie":
		return Beginner
	default:
		return Advanced
	}
}

// Difficulty is the per-topic difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Rank orders difficulties Beginner < Intermediate < Advanced.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return -1
	}
}

// Category classifies what kind of study a topic is.
type Category string

const (
	Theory     Category = "Theory"
	Practical  Category = "Practical"
	Assessment Category = "Assessment"
)

// Roadmap is one generated curriculum. The engine never mutates it after
// returning it, except for filling Topic.Media on request.
type Roadmap struct {
	ID               string       `json:"id"`
	Subject          string       `json:"subject"`
	Domain           classify.Tag `json:"domain"`
	TotalDays        int          `json:"totalDays"`
	SkillLevel       SkillLevel   `json:"skillLevel"`
	StudyHoursPerDay float64      `json:"studyHoursPerDay"`
	// TopicSource is "remote" when topic titles came from the remote
	// generator and "local" when they were synthesized from templates.
	TopicSource string `json:"topicSource"`
	// Course is set when the roadmap was built from a catalog selection.
	Course    *Course   `json:"course,omitempty"`
	Days      []Day     `json:"days"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"createdAt"`
}

// Course names the catalog selection a roadmap was built from.
type Course struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Subcategory string   `json:"subcategory"`
	Selected    []string `json:"selectedTopics,omitempty"`
}

// Day is one study day.
type Day struct {
	DayNumber     int     `json:"dayNumber"`
	IsRevisionDay bool    `json:"isRevisionDay"`
	Topics        []Topic `json:"topics"`
	// Completed is owned by the progress tracker.
	Completed bool `json:"completed"`
}

// Topic is one learning unit scheduled on a day.
type Topic struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	DurationHours float64     `json:"durationHours"`
	Difficulty    Difficulty  `json:"difficulty"`
	Category      Category    `json:"category"`
	Media         []MediaItem `json:"media"`
	Completed     bool        `json:"completed"`
}

// MediaItem references a supplementary external resource, usually a video,
// plus the offset into it where this topic starts.
type MediaItem struct {
	SourceID              string `json:"sourceId"`
	Title                 string `json:"title"`
	Channel               string `json:"channel"`
	Description           string `json:"description"`
	TimelineOffsetSeconds int    `json:"timelineOffsetSeconds"`
	IsRemote              bool   `json:"isRemote"`
	URL                   string `json:"url,omitempty"`
	EmbedURL              string `json:"embedUrl,omitempty"`
}

// Progress is the consumer-owned completion summary. The engine only fills
// TotalTopics.
type Progress struct {
	CompletedDays   int `json:"completedDays"`
	CompletedTopics int `json:"completedTopics"`
	TotalTopics     int `json:"totalTopics"`
	QuizScore       int `json:"quizScore"`
	Streak          int `json:"streak"`
	XPPoints        int `json:"xpPoints"`
}

// CountTopics sums topic counts across days.
func CountTopics(days []Day) int {
	n := 0
	for _, d := range days {
		n += len(d.Topics)
	}
	return n
}

// GlobalTopicIndex returns the position of the first topic of dayNumber in
// the flattened topic sequence of days.
func GlobalTopicIndex(days []Day, dayNumber int) int {
	n := 0
	for _, d := range days {
		if d.DayNumber >= dayNumber {
			break
		}
		n += len(d.Topics)
	}
	return n
}
