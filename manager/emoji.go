package manager

var emojis = map[string]string{
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Rain":         "🌧️",
	"Drizzle":      "🌦️",
	"Thunderstorm": "⛈️",
	"Snow":         "❄️",
	"Mist":         "🌫️",
	"Smoke":        "🌫️",
	"Haze":         "🌫️",
	"Dust":         "🌪️",
	"Fog":          "🌫️",
	"Sand":         "🌪️",
	"Ash":          "🌋",
	"Squall":       "💨",
	"Tornado":      "🌪️",
}

// EmojiFor returns the glyph of a condition category, or "" for unknown ones.
func EmojiFor(condition string) string {
	return emojis[condition]
}
