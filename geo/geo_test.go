package geo_test

import (
	"math"
	"testing"

	"restaurant-reservation-api/geo"
)

func TestHaversine(t *testing.T) {
	// Tashkent to Samarkand is roughly 264 km as the crow flies
	d := geo.Haversine(41.2995, 69.2401, 39.6542, 66.9597)
	if math.Abs(d-264) > 10 {
		t.Errorf("expected ~264 km, got %.1f", d)
	}

	if d := geo.Haversine(41.3, 69.2, 41.3, 69.2); d != 0 {
		t.Errorf("distance to self should be 0, got %f", d)
	}
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{41.3, 69.2, true},
		{-90, -180, true},
		{90, 180, true},
		{91, 0, false},
		{-91, 0, false},
		{0, 181, false},
		{0, -181, false},
	}
	for _, tt := range tests {
		if got := geo.ValidCoordinates(tt.lat, tt.lon); got != tt.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
		}
	}
}
