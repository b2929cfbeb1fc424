package weather

// Snapshot is the full weather view for a resolved place at the moment of a
// lookup. It is assembled all-or-nothing and never persisted.
type Snapshot struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	Temperature int     `json:"temp"`
	Description string  `json:"description"`
	WeatherCode int     `json:"weatherCode"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// GeocodeResult is the best match for a free-text city query, taken verbatim
// from the geocoding provider.
type GeocodeResult struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// CurrentConditions holds the instantaneous readings for a coordinate pair.
// Temperature is already rounded to the nearest whole degree.
type CurrentConditions struct {
	Temperature int
	WeatherCode int
	Humidity    int
	WindSpeed   float64
}
