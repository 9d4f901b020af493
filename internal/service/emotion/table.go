package emotion

import (
	"animo/internal/domain/emotion"
)

// categories is the canonical keyword table. Order matters twice over: when
// text contains keywords from several categories the earlier category wins,
// and within a category the earlier keyword wins. The lists deliberately
// include common misspellings ("peliz") so real diary text still matches.
var categories = []emotion.Category{
	{
		Label: "triste",
		Keywords: []string{
			"triste", "tristeza", "llorar", "lloro", "dolor",
			"pena", "melancolia", "deprimido", "mal",
		},
		Sentiment: emotion.SentimentNegative,
		Color:     "#EF4444",
		Intensity: 0.8,
	},
	{
		Label: "feliz",
		Keywords: []string{
			"feliz", "peliz", "contento", "alegre", "bien",
			"genial", "happy", "joy", "bueno",
		},
		Sentiment: emotion.SentimentPositive,
		Color:     "#10B981",
		Intensity: 0.8,
	},
	{
		Label: "ansioso",
		Keywords: []string{
			"ansioso", "ansiedad", "nervioso", "preocupado",
			"estres", "estrés", "agobiado",
		},
		Sentiment: emotion.SentimentNegative,
		Color:     "#F59E0B",
		Intensity: 0.7,
	},
	{
		Label: "enojado",
		Keywords: []string{
			"enojado", "molesto", "furioso", "ira", "rabia",
			"irritado", "cabreado",
		},
		Sentiment: emotion.SentimentNegative,
		Color:     "#DC2626",
		Intensity: 0.9,
	},
	{
		Label: "cansado",
		Keywords: []string{
			"cansado", "agotado", "fatiga", "exhausto", "sin energia",
		},
		Sentiment: emotion.SentimentNeutral,
		Color:     "#6B7280",
		Intensity: 0.6,
	},
	{
		Label: "motivado",
		Keywords: []string{
			"motivado", "energia", "entusiasmo", "animado", "inspirado",
		},
		Sentiment: emotion.SentimentPositive,
		Color:     "#8B5CF6",
		Intensity: 0.9,
	},
	{
		Label: "relajado",
		Keywords: []string{
			"relajado", "tranquilo", "calma", "paz", "sereno",
		},
		Sentiment: emotion.SentimentPositive,
		Color:     "#06B6D4",
		Intensity: 0.7,
	},
}

// neutral is the fallback when no keyword matches
var neutral = emotion.Classification{
	Emotion:   "neutral",
	Intensity: 0.5,
	Sentiment: emotion.SentimentNeutral,
	Color:     "#3B82F6",
}

// Recommendation templates, selected by sentiment-count comparison
const (
	recommendationDifficult = "Has tenido algunos días difíciles. Considera hacer actividades que disfrutes, hablar con alguien de confianza, o buscar momentos de relajación."
	recommendationKeepItUp  = "¡Vas por buen camino! Sigue manteniendo las actividades que te hacen sentir bien."
	recommendationBalance   = "Mantén un equilibrio saludable. Continúa registrando tus emociones para identificar patrones."
)
