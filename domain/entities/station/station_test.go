package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKM(t *testing.T) {
	coordinates := Coordinates{}
	coordinates.Add(StationData{City: "Chicago", Name: "A", Latitude: 41.8781, Longitude: -87.6298})
	coordinates.Add(StationData{City: "Chicago", Name: "B", Latitude: 41.8881, Longitude: -87.6298})

	km, ok := coordinates.DistanceKM("A", "B")
	assert.True(t, ok)
	assert.InDelta(t, 1.11, km, 0.01)

	km, ok = coordinates.DistanceKM("A", "A")
	assert.True(t, ok)
	assert.Zero(t, km)
}

func TestDistanceKM_UnknownStation(t *testing.T) {
	coordinates := Coordinates{}
	coordinates.Add(StationData{Name: "A"})

	_, ok := coordinates.DistanceKM("A", "Z")
	assert.False(t, ok)

	_, ok = coordinates.DistanceKM("Z", "A")
	assert.False(t, ok)
}
