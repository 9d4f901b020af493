package emotion

// Classification is the label/intensity/sentiment/color tuple produced for a
// single piece of text, before a day is attached
type Classification struct {
	Emotion   string
	Intensity float64
	Sentiment Sentiment
	Color     string
}

// Engine defines the pure analysis functions over journal entries.
// Implementations hold no state between calls and are safe for concurrent use.
type Engine interface {
	// Classify maps free text to exactly one emotion. It cannot fail; text
	// with no keyword match classifies as neutral.
	Classify(text string) Classification

	// Analyze folds a batch of entries into a weekly analysis. Input order
	// does not matter; output emotions are sorted ascending by date.
	Analyze(entries []RawEntry) WeeklyAnalysis
}
