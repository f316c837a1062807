package utils

import (
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
)

func TestEncodePoint(t *testing.T) {
	ferryBuilding := GeoPoint{Latitude: 37.7955, Longitude: -122.3937}

	hash := EncodePoint(ferryBuilding, 6)
	assert.Len(t, hash, 6)

	lat, lng := geohash.Decode(hash)
	assert.InDelta(t, ferryBuilding.Latitude, lat, 0.01)
	assert.InDelta(t, ferryBuilding.Longitude, lng, 0.01)
}

func TestGetNeighbors(t *testing.T) {
	hash := EncodePoint(GeoPoint{Latitude: 37.7955, Longitude: -122.3937}, 6)
	neighbors := GetNeighbors(hash)
	assert.Len(t, neighbors, 8)
	assert.NotContains(t, neighbors, hash)
}

func TestCalculateDistance(t *testing.T) {
	sf := GeoPoint{Latitude: 37.7749, Longitude: -122.4194}
	oakland := GeoPoint{Latitude: 37.8044, Longitude: -122.2712}
	la := GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

	assert.InDelta(t, 13.4, CalculateDistance(sf, oakland), 0.5)
	assert.InDelta(t, 559, CalculateDistance(sf, la), 5)
	assert.Zero(t, CalculateDistance(sf, sf))

	// Symmetric.
	assert.Equal(t, CalculateDistance(sf, oakland), CalculateDistance(oakland, sf))
}
