package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_KnownPair(t *testing.T) {
	// Jakarta to Bandung, roughly 116 km great-circle
	jakarta := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}
	bandung := GeoPoint{Latitude: -6.9175, Longitude: 107.6191}

	distance := CalculateDistance(jakarta, bandung)

	assert.InDelta(t, 116, distance, 5)
}

func TestCalculateDistance_SamePointIsZero(t *testing.T) {
	point := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}

	assert.Equal(t, 0.0, CalculateDistance(point, point))
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := GeoPoint{Latitude: -6.1754, Longitude: 106.8272}
	b := GeoPoint{Latitude: -6.1352, Longitude: 106.8133}

	assert.Equal(t, CalculateDistance(a, b), CalculateDistance(b, a))
}

func TestEncodeLocation_RoundTrip(t *testing.T) {
	point := GeoPoint{Latitude: -6.1754, Longitude: 106.8272}

	hash := EncodeLocation(point, 6)
	assert.Len(t, hash, 6)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, lat, 0.01)
	assert.InDelta(t, point.Longitude, lng, 0.01)
}

func TestEncodeLocation_NearbyPointsShareHash(t *testing.T) {
	// Points a few meters apart land in the same precision-6 cell
	a := GeoPoint{Latitude: -6.17540, Longitude: 106.82720}
	b := GeoPoint{Latitude: -6.17541, Longitude: 106.82721}

	assert.Equal(t, EncodeLocation(a, 6), EncodeLocation(b, 6))
}
