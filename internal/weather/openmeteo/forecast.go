package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/cityweather/internal/weather"
)

// DefaultForecastBaseURL is the production Open-Meteo forecast endpoint.
const DefaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"

// currentFields is the fixed set of instantaneous readings requested from the
// forecast API.
const currentFields = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"

// ForecastClient implements weather.Forecaster against the Open-Meteo
// forecast API.
type ForecastClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewForecastClient creates a ForecastClient. An empty baseURL selects the
// production endpoint.
func NewForecastClient(client *http.Client, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}
	return &ForecastClient{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo-forecast"),
	}
}

// Current fetches instantaneous conditions for the coordinates using the
// service's local-timezone default. Temperature is rounded to the nearest
// whole degree; the other readings pass through unrounded.
func (c *ForecastClient) Current(ctx context.Context, lat, lon float64) (weather.CurrentConditions, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("current", currentFields)
	values.Set("timezone", "auto")

	resp, err := doGet(ctx, c.client, c.circuit, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()))
	if err != nil {
		return weather.CurrentConditions{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    int     `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentConditions{}, fmt.Errorf("%w: decode forecast response: %v", weather.ErrUnavailable, err)
	}

	return weather.CurrentConditions{
		Temperature: int(math.Round(payload.Current.Temperature)),
		WeatherCode: payload.Current.WeatherCode,
		Humidity:    payload.Current.Humidity,
		WindSpeed:   payload.Current.WindSpeed,
	}, nil
}
