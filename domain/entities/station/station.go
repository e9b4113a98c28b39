package station

import "github.com/umahmood/haversine"

// StationData position of a station of a city
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinates index of stations by name for a single city
type Coordinates map[string]StationData

func (c Coordinates) Add(stationData StationData) {
	c[stationData.Name] = stationData
}

// DistanceKM returns the straight-line distance between two stations using haversine formula.
// The second value is false if any of the stations is unknown.
func (c Coordinates) DistanceKM(startStation string, endStation string) (float64, bool) {
	start, ok := c[startStation]
	if !ok {
		return 0, false
	}
	end, ok := c[endStation]
	if !ok {
		return 0, false
	}

	startCoord := haversine.Coord{Lat: start.Latitude, Lon: start.Longitude}
	endCoord := haversine.Coord{Lat: end.Latitude, Lon: end.Longitude}

	_, km := haversine.Distance(startCoord, endCoord)
	return km, true
}
