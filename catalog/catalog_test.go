package catalog

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
)

func TestLookup(t *testing.T) {
	catalog, err := New("/data", DefaultEntries()...)
	require.NoError(t, err)

	entry, err := catalog.Lookup("new york city")
	require.NoError(t, err)
	assert.Equal(t, filter.NewYorkCity, entry.City)
	assert.Equal(t, filepath.Join("/data", "new_york_city.csv"), entry.File)
	assert.Empty(t, entry.StationsFile)

	assert.Equal(t, []string{filter.Chicago, filter.NewYorkCity, filter.Washington}, catalog.Cities())
}

func TestLookup_UnknownCity(t *testing.T) {
	catalog, err := New("/data", DefaultEntries()...)
	require.NoError(t, err)

	_, err = catalog.Lookup("boston")
	assert.ErrorIs(t, err, dataErrors.ErrDatasetNotFound)
}

func TestNew_EntryNormalization(t *testing.T) {
	catalog, err := New("data",
		Entry{City: "chicago", File: "/abs/chicago.csv", StationsFile: "chicago_stations.csv"},
		Entry{City: "new york", File: "nyc.csv"},
	)
	require.NoError(t, err)

	entry, err := catalog.Lookup(filter.Chicago)
	require.NoError(t, err)
	assert.Equal(t, "/abs/chicago.csv", entry.File)
	assert.Equal(t, filepath.Join("data", "chicago_stations.csv"), entry.StationsFile)

	entry, err = catalog.Lookup(filter.NewYorkCity)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "nyc.csv"), entry.File)

	_, err = catalog.Lookup(filter.Washington)
	assert.ErrorIs(t, err, dataErrors.ErrDatasetNotFound)
}

func TestNew_UnknownCity(t *testing.T) {
	_, err := New("data", Entry{City: "boston", File: "boston.csv"})
	assert.ErrorIs(t, err, dataErrors.ErrInvalidSelection)
}

func TestNew_WarnsAboutCitiesWithoutDataset(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	catalog, err := New("data", Entry{City: "washington", File: "washington.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{filter.Washington}, catalog.Cities())

	var warnings []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry.Message)
		}
	}
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "no dataset configured for Chicago")
	assert.Contains(t, warnings[1], "no dataset configured for New York City")
}
