package weather

import "testing"

func TestDescribeKnownCodes(t *testing.T) {
	expected := map[int]string{
		0:  "Clear sky",
		1:  "Mainly clear",
		2:  "Partly cloudy",
		3:  "Overcast",
		45: "Foggy",
		48: "Depositing rime fog",
		51: "Light drizzle",
		53: "Moderate drizzle",
		55: "Dense drizzle",
		61: "Slight rain",
		63: "Moderate rain",
		65: "Heavy rain",
		71: "Slight snow",
		73: "Moderate snow",
		75: "Heavy snow",
		77: "Snow grains",
		80: "Slight rain showers",
		81: "Moderate rain showers",
		82: "Violent rain showers",
		85: "Slight snow showers",
		86: "Heavy snow showers",
		95: "Thunderstorm",
		96: "Thunderstorm with slight hail",
		99: "Thunderstorm with heavy hail",
	}

	for code, want := range expected {
		if got := Describe(code); got != want {
			t.Errorf("Describe(%d) = %q, want %q", code, got, want)
		}
	}

	if len(expected) != len(wmoDescriptions) {
		t.Errorf("description table has %d entries, want %d", len(wmoDescriptions), len(expected))
	}
}

func TestDescribeUnknownCodes(t *testing.T) {
	for _, code := range []int{-1, 4, 12, 50, 100, 9999} {
		if got := Describe(code); got != "Unknown" {
			t.Errorf("Describe(%d) = %q, want Unknown", code, got)
		}
	}
}
