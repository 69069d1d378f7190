package roadmap

import (
	"fmt"
	"math"
	"strings"
)

// RevisionEvery is the revision-day cadence: every day whose number is a
// multiple of it is a review day.
const RevisionEvery = 5

// hoursPerTopic is the study-time slice one topic is sized for.
const hoursPerTopic = 2.0

// IsRevisionDay reports whether dayNumber is a review day.
func IsRevisionDay(dayNumber int) bool { return dayNumber%RevisionEvery == 0 }

// TopicsPerDay returns max(1, ceil(hours/2)).
func TopicsPerDay(studyHoursPerDay float64) int {
	n := int(math.Ceil(studyHoursPerDay / hoursPerTopic))
	if n < 1 {
		return 1
	}
	return n
}

// TopicDuration returns the hours allotted to each topic on a regular day,
// rounded to two decimals.
func TopicDuration(studyHoursPerDay float64) float64 {
	return RoundHours(studyHoursPerDay / float64(TopicsPerDay(studyHoursPerDay)))
}

// RoundHours rounds a duration in hours to two decimals.
func RoundHours(v float64) float64 { return math.Round(v*100) / 100 }

// ProgressiveDifficulty maps a day's position in the plan onto a difficulty
// tier for the given skill level. It is non-decreasing in day, and day ==
// totalDays always yields the level's terminal tier.
func ProgressiveDifficulty(day, totalDays int, level SkillLevel) Difficulty {
	if totalDays <= 0 {
		totalDays = 1
	}
	progress := float64(day) / float64(totalDays)
	switch level.Tier() {
	case Beginner:
		if progress < 0.4 {
			return DifficultyBeginner
		}
		if progress < 0.8 {
			return DifficultyIntermediate
		}
		return DifficultyAdvanced
	case Intermediate:
		if progress < 0.3 {
			return DifficultyBeginner
		}
		if progress < 0.7 {
			return DifficultyIntermediate
		}
		return DifficultyAdvanced
	default:
		if progress < 0.2 {
			return DifficultyIntermediate
		}
		return DifficultyAdvanced
	}
}

// Partition lays titles out over totalDays. Regular days take TopicsPerDay
// titles round-robin from the list, wrapping when it runs out; review days
// get a single Assessment topic. Media is left empty.
func Partition(subject string, titles []string, totalDays int, level SkillLevel, studyHoursPerDay float64) ([]Day, error) {
	if err := Validate(subject, totalDays, studyHoursPerDay); err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, &InvalidInputError{Field: "topics", Reason: "must not be empty"}
	}
	subject = strings.TrimSpace(subject)
	perDay := TopicsPerDay(studyHoursPerDay)
	duration := TopicDuration(studyHoursPerDay)

	days := make([]Day, 0, totalDays)
	next := 0
	for day := 1; day <= totalDays; day++ {
		difficulty := ProgressiveDifficulty(day, totalDays, level)
		if IsRevisionDay(day) {
			days = append(days, Day{
				DayNumber:     day,
				IsRevisionDay: true,
				Topics:        []Topic{revisionTopic(subject, day, studyHoursPerDay, difficulty)},
			})
			continue
		}
		topics := make([]Topic, 0, perDay)
		for i := 0; i < perDay; i++ {
			title := titles[next%len(titles)]
			next++
			category := Theory
			if i%2 == 1 {
				category = Practical
			}
			topics = append(topics, Topic{
				ID:            fmt.Sprintf("%d_%d", day, i+1),
				Title:         title,
				Description:   describe(title, category),
				DurationHours: duration,
				Difficulty:    difficulty,
				Category:      category,
				Media:         []MediaItem{},
			})
		}
		days = append(days, Day{DayNumber: day, Topics: topics})
	}
	return days, nil
}

func revisionTopic(subject string, day int, hours float64, difficulty Difficulty) Topic {
	return Topic{
		ID:            fmt.Sprintf("revision_%d", day),
		Title:         subject + " Review & Practice",
		Description:   fmt.Sprintf("Review and practice %s concepts from days 1-%d", subject, day-1),
		DurationHours: RoundHours(hours),
		Difficulty:    difficulty,
		Category:      Assessment,
		Media:         []MediaItem{},
	}
}

func describe(title string, c Category) string {
	if c == Practical {
		return "Practice " + title + " with hands-on exercises and a small project"
	}
	return "Learn " + title + " with practical examples and exercises"
}
