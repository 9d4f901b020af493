package emotion

import (
	"sort"
	"strings"

	"animo/internal/domain/emotion"
)

// Engine implements the keyword analysis engine. It is a pure transformation
// over its input: no I/O, no retained state, safe for concurrent use.
type Engine struct{}

// NewEngine creates the analysis engine
func NewEngine() *Engine {
	return &Engine{}
}

// Classify maps free text to exactly one emotion. Matching is case-insensitive
// substring search over the category table; the first keyword found wins and
// no further categories are examined. Text with no match is neutral.
func (e *Engine) Classify(text string) emotion.Classification {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, category := range categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				return emotion.Classification{
					Emotion:   category.Label,
					Intensity: category.Intensity,
					Sentiment: category.Sentiment,
					Color:     category.Color,
				}
			}
		}
	}

	return neutral
}

// moodRule pairs a predicate over the sentiment counts with the mood it
// selects. Rules are evaluated in order; the first match wins.
type moodRule struct {
	matches func(positive, negative, neutral int) bool
	mood    emotion.Mood
}

var moodRules = []moodRule{
	{func(p, n, u int) bool { return p > n && p > u }, emotion.MoodMostlyPositive},
	{func(p, n, u int) bool { return n > p && n > u }, emotion.MoodMostlyNegative},
	{func(p, n, u int) bool { return p == n && p > u }, emotion.MoodMixed},
	{func(p, n, u int) bool { return true }, emotion.MoodNeutral},
}

// recommendationRule pairs a predicate over the sentiment counts with a
// recommendation template, evaluated in order
type recommendationRule struct {
	matches func(positive, negative int) bool
	text    string
}

var recommendationRules = []recommendationRule{
	{func(p, n int) bool { return n >= p && n > 0 }, recommendationDifficult},
	{func(p, n int) bool { return p > n }, recommendationKeepItUp},
	{func(p, n int) bool { return true }, recommendationBalance},
}

// Analyze folds a batch of entries into a weekly analysis. Entries are sorted
// ascending by date (stable, so same-day entries keep their relative order)
// and every entry produces exactly one classification. An empty batch yields
// a neutral analysis with empty sequences, not an error.
func (e *Engine) Analyze(entries []emotion.RawEntry) emotion.WeeklyAnalysis {
	sorted := make([]emotion.RawEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	emotions := make([]emotion.WeeklyEmotion, 0, len(sorted))
	for _, entry := range sorted {
		c := e.Classify(entry.Text)
		emotions = append(emotions, emotion.WeeklyEmotion{
			Day:       entry.Date.Format("2006-01-02"),
			Emotion:   c.Emotion,
			Intensity: c.Intensity,
			Sentiment: c.Sentiment,
			Color:     c.Color,
		})
	}

	var positive, negative, neutralCount int
	for _, we := range emotions {
		switch we.Sentiment {
		case emotion.SentimentPositive:
			positive++
		case emotion.SentimentNegative:
			negative++
		default:
			neutralCount++
		}
	}

	return emotion.WeeklyAnalysis{
		WeeklyEmotions:   emotions,
		OverallMood:      overallMood(positive, negative, neutralCount),
		MoodTrend:        moodTrend(emotions),
		DominantEmotions: dominantEmotions(emotions),
		Recommendation:   recommendation(positive, negative),
	}
}

func overallMood(positive, negative, neutral int) emotion.Mood {
	for _, rule := range moodRules {
		if rule.matches(positive, negative, neutral) {
			return rule.mood
		}
	}
	return emotion.MoodNeutral
}

func recommendation(positive, negative int) string {
	for _, rule := range recommendationRules {
		if rule.matches(positive, negative) {
			return rule.text
		}
	}
	return recommendationBalance
}

// moodTrend compares the signed sentiment score of the first half of the
// sequence against the second half. The midpoint rounds up, so with a single
// entry the second half is empty; that degenerate comparison is kept as-is.
func moodTrend(emotions []emotion.WeeklyEmotion) emotion.Trend {
	midpoint := (len(emotions) + 1) / 2
	firstScore := sentimentScore(emotions[:midpoint])
	secondScore := sentimentScore(emotions[midpoint:])

	switch {
	case secondScore > firstScore:
		return emotion.TrendImproving
	case secondScore < firstScore:
		return emotion.TrendDeclining
	default:
		return emotion.TrendStable
	}
}

func sentimentScore(emotions []emotion.WeeklyEmotion) int {
	score := 0
	for _, we := range emotions {
		switch we.Sentiment {
		case emotion.SentimentPositive:
			score++
		case emotion.SentimentNegative:
			score--
		}
	}
	return score
}

// dominantEmotions returns the up-to-three most frequent labels. Ties keep
// first-appearance order because labels are collected in encounter order and
// the sort is stable.
func dominantEmotions(emotions []emotion.WeeklyEmotion) []string {
	counts := make(map[string]int)
	labels := make([]string, 0, len(emotions))
	for _, we := range emotions {
		if _, seen := counts[we.Emotion]; !seen {
			labels = append(labels, we.Emotion)
		}
		counts[we.Emotion]++
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return counts[labels[i]] > counts[labels[j]]
	})

	if len(labels) > 3 {
		labels = labels[:3]
	}
	return labels
}
