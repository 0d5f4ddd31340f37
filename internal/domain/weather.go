package domain

// ForecastSummaries are the descriptions a generated forecast can carry.
var ForecastSummaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Forecast is a single day of (mock) weather.
type Forecast struct {
	Date         Date   `json:"date"`
	TemperatureC int    `json:"temperatureC"`
	TemperatureF int    `json:"temperatureF"`
	Summary      string `json:"summary"`
}

// NewForecast builds a forecast, deriving the Fahrenheit temperature.
func NewForecast(date Date, temperatureC int, summary string) Forecast {
	return Forecast{
		Date:         date,
		TemperatureC: temperatureC,
		TemperatureF: 32 + int(float64(temperatureC)/0.5556),
		Summary:      summary,
	}
}
