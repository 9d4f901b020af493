package emotion

import (
	"time"
)

// Sentiment is the coarse three-way bucket attached to every emotion label
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Mood is the aggregate mood label for a batch of entries
type Mood string

const (
	MoodMostlyPositive Mood = "Mostly Positive"
	MoodMostlyNegative Mood = "Mostly Negative"
	MoodMixed          Mood = "Mixed"
	MoodNeutral        Mood = "Neutral"
)

// Trend is the first-half vs second-half sentiment direction
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Category is one row of the keyword table: an emotion label together with
// the keywords that select it and the fixed attributes it carries.
// Table order and keyword order are significant: the earlier match wins.
type Category struct {
	Label     string
	Keywords  []string
	Sentiment Sentiment
	Color     string
	Intensity float64
}

// RawEntry is a single journal entry as handed to the engine. The engine
// never retains entries between calls.
type RawEntry struct {
	ID   string
	Text string
	Date time.Time
}

// WeeklyEmotion is the classification of one entry, paired with its day
type WeeklyEmotion struct {
	Day       string    `json:"day"`
	Emotion   string    `json:"emotion"`
	Intensity float64   `json:"intensity"`
	Sentiment Sentiment `json:"sentiment"`
	Color     string    `json:"color"`
}

// WeeklyAnalysis is the engine's output for one batch of entries
type WeeklyAnalysis struct {
	WeeklyEmotions   []WeeklyEmotion `json:"weeklyEmotions"`
	OverallMood      Mood            `json:"overallMood"`
	MoodTrend        Trend           `json:"moodTrend"`
	DominantEmotions []string        `json:"dominantEmotions"`
	Recommendation   string          `json:"recommendation"`
}
