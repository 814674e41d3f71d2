package util

import "aeris-weather/models/forecast"

// ForecastSummary is the decoded forecast annotated with the categories the
// presentation layer shows next to raw values.
type ForecastSummary struct {
	Location  string         `json:"location"`
	LocalTime string         `json:"local_time"`
	Current   CurrentSummary `json:"current"`
	Days      []DaySummary   `json:"days"`
}

type CurrentSummary struct {
	TempC         float64 `json:"temp_c"`
	FeelsLikeC    float64 `json:"feelslike_c"`
	Condition     string  `json:"condition"`
	Category      string  `json:"category"`
	Humidity      int     `json:"humidity"`
	WindKph       float64 `json:"wind_kph"`
	WindDir       string  `json:"wind_dir"`
	PressureMb    float64 `json:"pressure_mb"`
	PrecipMm      float64 `json:"precip_mm"`
	Precipitation Level   `json:"precipitation"`
	VisKm         float64 `json:"vis_km"`
	Visibility    Level   `json:"visibility"`
	UV            float64 `json:"uv"`
	UVLevel       Level   `json:"uv_level"`
}

type DaySummary struct {
	Date          string  `json:"date"`
	MaxTempC      float64 `json:"maxtemp_c"`
	MinTempC      float64 `json:"mintemp_c"`
	Condition     string  `json:"condition"`
	Category      string  `json:"category"`
	ChanceOfRain  int     `json:"chance_of_rain"`
	Precipitation Level   `json:"precipitation"`
	UV            float64 `json:"uv"`
	UVLevel       Level   `json:"uv_level"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	MoonPhase     string  `json:"moon_phase"`
}

func BuildForecastSummary(f *forecast.Forecast) *ForecastSummary {
	c := f.Current
	summary := &ForecastSummary{
		Location:  f.Location.Label(),
		LocalTime: f.Location.LocalTime,
		Current: CurrentSummary{
			TempC:         c.TempC,
			FeelsLikeC:    c.FeelsLikeC,
			Condition:     c.Condition.Text,
			Category:      ConditionCategory(c.Condition.Code, c.IsDay == 1),
			Humidity:      c.Humidity,
			WindKph:       c.WindKph,
			WindDir:       c.WindDir,
			PressureMb:    c.PressureMb,
			PrecipMm:      c.PrecipMm,
			Precipitation: PrecipitationIntensity(c.PrecipMm),
			VisKm:         c.VisKm,
			Visibility:    VisibilityRating(c.VisKm),
			UV:            c.UV,
			UVLevel:       UVLevel(c.UV),
		},
		Days: make([]DaySummary, 0, len(f.Days())),
	}

	for _, d := range f.Days() {
		summary.Days = append(summary.Days, DaySummary{
			Date:          d.Date,
			MaxTempC:      d.Day.MaxTempC,
			MinTempC:      d.Day.MinTempC,
			Condition:     d.Day.Condition.Text,
			Category:      ConditionCategory(d.Day.Condition.Code, true),
			ChanceOfRain:  d.Day.DailyChanceOfRain,
			Precipitation: PrecipitationIntensity(d.Day.TotalPrecipMm),
			UV:            d.Day.UV,
			UVLevel:       UVLevel(d.Day.UV),
			Sunrise:       d.Astro.Sunrise,
			Sunset:        d.Astro.Sunset,
			MoonPhase:     d.Astro.MoonPhase,
		})
	}
	return summary
}
