package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// Coordinates returns the station positions of the city. If the catalog has no stations file for
// the city, nil is returned without error.
func (l *Loader) Coordinates(city string) (station.Coordinates, error) {
	entry, err := l.catalog.Lookup(city)
	if err != nil {
		return nil, err
	}

	if entry.StationsFile == "" {
		return nil, nil
	}

	coordinates, err := readCoordinates(entry.City, entry.StationsFile)
	if err != nil {
		log.Warn(l.getLogMessage("Coordinates", fmt.Sprintf("error reading stations of %s", entry.City), err))
		return nil, err
	}

	log.Debug(l.getLogMessage("Coordinates", fmt.Sprintf("%s: %v stations read", entry.City, len(coordinates)), nil))
	return coordinates, nil
}

// readCoordinates reads a csv with name, latitude and longitude columns. Column names are
// matched case-insensitively.
func readCoordinates(city string, filepath string) (station.Coordinates, error) {
	stationsFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %s: %w", filepath, err.Error(), dataErrors.ErrDatasetNotFound)
	}
	defer stationsFile.Close()

	frame, err := readFrame(stationsFile, filepath)
	if err != nil {
		return nil, err
	}

	columns := make(map[string]string)
	for _, column := range frame.Names() {
		columns[strings.ToLower(strings.TrimSpace(column))] = column
	}

	var values [3][]string
	for idx, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		frameColumn, ok := columns[column]
		if !ok {
			return nil, fmt.Errorf("%s: %w %q: %w", filepath, dataErrors.ErrMissingColumn, column, dataErrors.ErrMalformedRecord)
		}
		values[idx] = frame.Col(frameColumn).Records()
	}

	coordinates := make(station.Coordinates, frame.Nrow())
	for idx := 0; idx < frame.Nrow(); idx++ {
		latitude, err := strconv.ParseFloat(strings.TrimSpace(values[1][idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %v: invalid latitude %q: %w", filepath, idx+2, values[1][idx], dataErrors.ErrMalformedRecord)
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(values[2][idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %v: invalid longitude %q: %w", filepath, idx+2, values[2][idx], dataErrors.ErrMalformedRecord)
		}

		coordinates.Add(station.StationData{
			City:      city,
			Name:      values[0][idx],
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	return coordinates, nil
}
