package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/catalog"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
)

func TestCoordinates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "chicago_stations.csv", "Name,Latitude,Longitude\n"+
		"Wood St & Hubbard St,41.889899,-87.671473\n"+
		"Damen Ave & Chicago Ave,41.895769,-87.67722\n")

	cityCatalog, err := catalog.New(dir, catalog.Entry{City: filter.Chicago, File: "chicago.csv", StationsFile: "chicago_stations.csv"})
	require.NoError(t, err)
	loader := NewLoader(cityCatalog, 1)

	coordinates, err := loader.Coordinates(filter.Chicago)
	require.NoError(t, err)
	require.Len(t, coordinates, 2)
	assert.Equal(t, filter.Chicago, coordinates["Wood St & Hubbard St"].City)
	assert.InDelta(t, 41.895769, coordinates["Damen Ave & Chicago Ave"].Latitude, 1e-9)

	km, ok := coordinates.DistanceKM("Wood St & Hubbard St", "Damen Ave & Chicago Ave")
	assert.True(t, ok)
	assert.InDelta(t, 0.8, km, 0.05)
}

func TestCoordinates_NotConfigured(t *testing.T) {
	loader, _ := newTestLoader(t)

	coordinates, err := loader.Coordinates(filter.Chicago)
	require.NoError(t, err)
	assert.Nil(t, coordinates)
}

func TestCoordinates_InvalidFiles(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{name: "missing longitude", content: "name,latitude\nA,41.8\n", expectedErr: dataErrors.ErrMalformedRecord},
		{name: "invalid latitude", content: "name,latitude,longitude\nA,north,-87.6\n", expectedErr: dataErrors.ErrMalformedRecord},
		{name: "row with missing fields", content: "name,latitude,longitude\nA,41.8\n", expectedErr: dataErrors.ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "stations.csv", tt.content)
			cityCatalog, err := catalog.New(dir, catalog.Entry{City: filter.Washington, File: "washington.csv", StationsFile: "stations.csv"})
			require.NoError(t, err)

			_, err = NewLoader(cityCatalog, 1).Coordinates(filter.Washington)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	cityCatalog, err := catalog.New(t.TempDir(), catalog.Entry{City: filter.Washington, File: "washington.csv", StationsFile: "missing.csv"})
	require.NoError(t, err)
	_, err = NewLoader(cityCatalog, 1).Coordinates(filter.Washington)
	assert.ErrorIs(t, err, dataErrors.ErrDatasetNotFound)
}

func TestCoordinates_HeaderOnlyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stations.csv", "name,latitude,longitude\n")
	cityCatalog, err := catalog.New(dir, catalog.Entry{City: filter.Washington, File: "washington.csv", StationsFile: "stations.csv"})
	require.NoError(t, err)

	coordinates, err := NewLoader(cityCatalog, 1).Coordinates(filter.Washington)
	require.NoError(t, err)
	assert.Empty(t, coordinates)
}
