package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Salon location (New York).
const (
	latitude  = 40.7128
	longitude = -74.0060
)

const apiBase = "https://api.openweathermap.org/data/2.5"

type Conditions struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
}

// Client fetches current conditions from OpenWeatherMap. It is purely
// decorative: without an API key, or on any failure, it falls back to
// fixed mock conditions so the confirmation flow never depends on it.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func mockConditions() Conditions {
	return Conditions{
		Temperature: 22,
		Condition:   "cloudy",
		Humidity:    65,
		WindSpeed:   12,
		Description: "Partly cloudy",
	}
}

func (c *Client) Current(ctx context.Context) Conditions {
	if c.apiKey == "" {
		return mockConditions()
	}

	cond, err := c.fetch(ctx)
	if err != nil {
		return mockConditions()
	}
	return cond
}

type owmResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (c *Client) fetch(ctx context.Context) (Conditions, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"/weather?"+q.Encode(), nil)
	if err != nil {
		return Conditions{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Conditions{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Conditions{}, err
	}
	if len(body.Weather) == 0 {
		return Conditions{}, fmt.Errorf("weather api returned no conditions")
	}

	return Conditions{
		Temperature: body.Main.Temp,
		Condition:   mapCondition(body.Weather[0].ID, body.Weather[0].Main),
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
		Description: body.Weather[0].Description,
	}, nil
}

func mapCondition(weatherID int, main string) string {
	switch {
	case weatherID >= 200 && weatherID < 300:
		return "storm"
	case weatherID >= 300 && weatherID < 600:
		return "rain"
	case weatherID >= 600 && weatherID < 700:
		return "snow"
	case weatherID >= 700 && weatherID < 800:
		return "windy"
	case weatherID == 800:
		return "sunny"
	case weatherID > 800:
		return "cloudy"
	}
	if main != "" {
		return main
	}
	return "cloudy"
}
