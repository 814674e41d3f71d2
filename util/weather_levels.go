package util

// Level is a presentational bucket: a label plus the colour tone the UI uses for it.
type Level struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

// UVLevel buckets a UV index using the WHO exposure categories.
func UVLevel(uv float64) Level {
	switch {
	case uv <= 2:
		return Level{Text: "Low", Tone: "green"}
	case uv <= 5:
		return Level{Text: "Moderate", Tone: "yellow"}
	case uv <= 7:
		return Level{Text: "High", Tone: "orange"}
	case uv <= 10:
		return Level{Text: "Very High", Tone: "red"}
	default:
		return Level{Text: "Extreme", Tone: "purple"}
	}
}

// PrecipitationIntensity describes a precipitation amount in millimetres.
func PrecipitationIntensity(mm float64) Level {
	switch {
	case mm <= 0:
		return Level{Text: "No rain", Tone: "green"}
	case mm < 2.5:
		return Level{Text: "Light rain", Tone: "blue"}
	case mm < 7.6:
		return Level{Text: "Moderate rain", Tone: "yellow"}
	default:
		return Level{Text: "Heavy rain", Tone: "red"}
	}
}

// VisibilityRating rates visibility in kilometres.
func VisibilityRating(km float64) Level {
	switch {
	case km >= 10:
		return Level{Text: "Excellent", Tone: "green"}
	case km >= 5:
		return Level{Text: "Good", Tone: "blue"}
	case km >= 2:
		return Level{Text: "Moderate", Tone: "yellow"}
	default:
		return Level{Text: "Poor", Tone: "red"}
	}
}

const (
	CategoryClearDay   = "clear-day"
	CategoryClearNight = "clear-night"
	CategoryCloudy     = "cloudy"
	CategoryRain       = "rain"
	CategoryDrizzle    = "drizzle"
	CategorySnow       = "snow"
)

// ConditionCategory maps a WeatherAPI condition code to the icon family the
// UI renders. Unknown codes fall back to clear sky.
func ConditionCategory(code int, isDay bool) string {
	clear := CategoryClearNight
	if isDay {
		clear = CategoryClearDay
	}

	switch {
	case code == 1000:
		return clear
	case code == 1003:
		return CategoryCloudy
	case code >= 1180 && code <= 1201:
		return CategoryRain
	case code >= 1063 && code <= 1072:
		return CategoryDrizzle
	case code >= 1210 && code <= 1225:
		return CategorySnow
	default:
		return clear
	}
}
