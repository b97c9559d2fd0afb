// Package catalog holds the static knowledge base the gateway answers from
// when the upstream model is unavailable. All tables are immutable for the
// process lifetime.
package catalog

import "strings"

// fallbackModels is the ordered list of alternate model identifiers tried
// when the active model fails.
var fallbackModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-pro",
}

// fallbackBucket pairs a keyword set with a canned domain answer. Buckets are
// checked in order; the first match wins.
type fallbackBucket struct {
	keywords []string
	answer   string
}

var fallbackBuckets = []fallbackBucket{
	{
		keywords: []string{"asteroid", "neo"},
		answer: "Asteroids are rocky remnants from the early solar system, most of them orbiting " +
			"between Mars and Jupiter. Near-Earth objects (NEOs) are the subset whose orbits bring " +
			"them within 1.3 AU of the Sun. Cosmic Watch tracks close approaches daily using NASA's " +
			"NeoWs feed, and no currently tracked asteroid poses a significant impact threat to Earth.",
	},
	{
		keywords: []string{"mars", "planet"},
		answer: "Mars is the fourth planet from the Sun, about half Earth's diameter, with a thin " +
			"CO2 atmosphere, the largest volcano in the solar system (Olympus Mons), and strong " +
			"evidence of ancient surface water. It remains the primary target for future crewed " +
			"exploration missions.",
	},
	{
		keywords: []string{"moon", "lunar"},
		answer: "The Moon is Earth's only natural satellite, orbiting at an average distance of " +
			"384,400 km — the baseline unit (lunar distance) we use to express asteroid close " +
			"approaches. Its gravitational pull drives Earth's tides and stabilizes our axial tilt.",
	},
	{
		keywords: []string{"star", "galaxy"},
		answer: "Our Sun is one of roughly 200 billion stars in the Milky Way galaxy. Stars form " +
			"from collapsing clouds of gas and dust, and their fusion forges the heavy elements " +
			"that make up rocky planets and asteroids alike.",
	},
	{
		keywords: []string{"risk", "danger"},
		answer: "Cosmic Watch scores every tracked object from 0 to 100 based on size, velocity, " +
			"approach distance and NASA's hazard flag. Nothing currently tracked scores in the " +
			"critical band. Impact risks at civilization scale are statistically rare events.",
	},
}

const genericFallback = "All monitoring systems are operational. I'm currently running on local " +
	"knowledge while the AI service reconnects — ask me about asteroids, planets, the Moon, or " +
	"current risk levels and I'll answer from the Cosmic Watch knowledge base."

// PickFallback returns the canned answer whose keyword bucket matches the
// user message, or the generic operational message when nothing matches.
// Matching is case-insensitive substring search in priority order.
func PickFallback(userMessage string) string {
	lowered := strings.ToLower(userMessage)
	for _, bucket := range fallbackBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lowered, keyword) {
				return bucket.answer
			}
		}
	}
	return genericFallback
}

// FallbackModels returns the full ordered fallback-model list.
func FallbackModels() []string {
	models := make([]string, len(fallbackModels))
	copy(models, fallbackModels)
	return models
}

// NextModel returns the first fallback model that is not the excluded one,
// or empty when the list is exhausted.
func NextModel(excluding string) string {
	for _, model := range fallbackModels {
		if model != excluding {
			return model
		}
	}
	return ""
}
