package forecast

// Forecast is the typed view of a forecast.json payload.
type Forecast struct {
	Location Location         `json:"location"`
	Current  Current          `json:"current"`
	Forecast *ForecastSection `json:"forecast"`
}

type ForecastSection struct {
	ForecastDays []ForecastDay `json:"forecastday"`
}

// Days returns the forecast days, or nil when the section is absent.
func (f *Forecast) Days() []ForecastDay {
	if f.Forecast == nil {
		return nil
	}
	return f.Forecast.ForecastDays
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}
