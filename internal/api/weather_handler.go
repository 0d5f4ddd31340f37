package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/fluentfox-api/internal/api/shared"
	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/platform/logger"
	"github.com/phrazzld/fluentfox-api/internal/service"
)

// WeatherHandler serves the mock weather forecast.
type WeatherHandler struct {
	weatherService service.WeatherService
	logger         *slog.Logger
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherService service.WeatherService, logger *slog.Logger) *WeatherHandler {
	if weatherService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("weatherService cannot be nil for WeatherHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WeatherHandler{
		weatherService: weatherService,
		logger:         logger.With(slog.String("component", "weather_handler")),
	}
}

// GetForecast handles GET /api/weatherforecast?days=N. Days defaults to
// service.DefaultForecastDays.
func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	days := service.DefaultForecastDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Debug("non-numeric days parameter", slog.String("days", raw))
			shared.RespondWithAPIError(w, r, domain.NewBadRequestError("Days must be an integer", err))
			return
		}
		days = n
	}

	forecasts, err := h.weatherService.Forecast(r.Context(), days)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, forecasts)
}

// GetForecastForDate handles GET /api/weatherforecast/{date}
func (h *WeatherHandler) GetForecastForDate(w http.ResponseWriter, r *http.Request) {
	forecast, err := h.weatherService.ForecastFor(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, forecast)
}
