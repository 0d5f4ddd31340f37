package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/validation"
)

// Forecast generation constants.
const (
	DefaultForecastDays = 5
	// MaxForecastAhead is how many days ahead a single-date forecast may be.
	MaxForecastAhead = 30
	minTemperatureC  = -20
	maxTemperatureC  = 55 // exclusive
)

// WeatherService produces mock weather forecasts.
type WeatherService interface {
	// Forecast returns one forecast per day for the next days days,
	// starting tomorrow. days must be between 1 and 10.
	Forecast(ctx context.Context, days int) ([]domain.Forecast, error)

	// ForecastFor returns the forecast for a date after today and at most
	// MaxForecastAhead days away.
	ForecastFor(ctx context.Context, date string) (domain.Forecast, error)
}

// WeatherServiceImpl implements the WeatherService interface
type WeatherServiceImpl struct {
	validator *validation.Validator
	now       func() time.Time
	intN      func(n int) int
	logger    *slog.Logger
}

// Ensure WeatherServiceImpl implements WeatherService interface
var _ WeatherService = (*WeatherServiceImpl)(nil)

// NewWeatherService creates a WeatherService backed by the process-wide
// random source and wall clock.
func NewWeatherService(validator *validation.Validator, logger *slog.Logger) *WeatherServiceImpl {
	return newWeatherService(validator, time.Now, rand.IntN, logger)
}

func newWeatherService(
	validator *validation.Validator,
	now func() time.Time,
	intN func(int) int,
	logger *slog.Logger,
) *WeatherServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeatherServiceImpl{
		validator: validator,
		now:       now,
		intN:      intN,
		logger:    logger.With("component", "weather_service"),
	}
}

// Forecast implements WeatherService.Forecast
func (s *WeatherServiceImpl) Forecast(ctx context.Context, days int) ([]domain.Forecast, error) {
	if err := s.validator.Check(validation.ForecastQuery{Days: days}); err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now())
	forecasts := make([]domain.Forecast, 0, days)
	for i := 1; i <= days; i++ {
		forecasts = append(forecasts, s.generate(today.AddDays(i)))
	}

	s.logger.Debug("generated weather forecast", "days", days)
	return forecasts, nil
}

// ForecastFor implements WeatherService.ForecastFor
func (s *WeatherServiceImpl) ForecastFor(ctx context.Context, date string) (domain.Forecast, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return domain.Forecast{}, domain.NewBadRequestError("Invalid date format, expected YYYY-MM-DD", err)
	}

	today := domain.DateOf(s.now())
	if !d.After(today) || d.After(today.AddDays(MaxForecastAhead)) {
		return domain.Forecast{}, domain.NewBadRequestError(
			"Date must be tomorrow or within the next 30 days", nil)
	}

	s.logger.Debug("generated weather forecast", "date", d.String())
	return s.generate(d), nil
}

func (s *WeatherServiceImpl) generate(d domain.Date) domain.Forecast {
	temperature := minTemperatureC + s.intN(maxTemperatureC-minTemperatureC)
	summary := domain.ForecastSummaries[s.intN(len(domain.ForecastSummaries))]
	return domain.NewForecast(d, temperature, summary)
}
