package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const componentName = "catalog"

// Entry backing files of a city
// + City: canonical city name, e.g. New York City
// + File: trips csv
// + StationsFile: optional csv with name, latitude and longitude of the stations
type Entry struct {
	City         string
	File         string
	StationsFile string
}

// Catalog maps each known city to its files. It is built once at start and never changes.
type Catalog struct {
	entries map[string]Entry
}

// DefaultEntries returns the files used when no configuration says otherwise
func DefaultEntries() []Entry {
	return []Entry{
		{City: filter.Chicago, File: "chicago.csv"},
		{City: filter.NewYorkCity, File: "new_york_city.csv"},
		{City: filter.Washington, File: "washington.csv"},
	}
}

// New returns a Catalog whose relative paths are resolved against dataDir. Cities must be
// resolvable by the city enumeration, so the catalog can't drift from what the user is offered.
func New(dataDir string, entries ...Entry) (*Catalog, error) {
	catalogEntries := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		city, err := filter.Resolve(entry.City, filter.Cities())
		if err != nil {
			log.Error(getLogMessage("New", fmt.Sprintf("invalid catalog city %q", entry.City), err))
			return nil, fmt.Errorf("error building catalog: %w", err)
		}
		catalogEntries[city] = Entry{
			City:         city,
			File:         resolvePath(dataDir, entry.File),
			StationsFile: resolvePath(dataDir, entry.StationsFile),
		}
	}

	cityCatalog := &Catalog{entries: catalogEntries}
	available := cityCatalog.Cities()
	for _, city := range filter.Cities().Names() {
		if !utils.ContainsString(city, available) {
			log.Warn(getLogMessage("New", fmt.Sprintf("no dataset configured for %s, loading it will fail", city), nil))
		}
	}

	log.Debug(getLogMessage("New", fmt.Sprintf("cities available: %s", strings.Join(available, ", ")), nil))
	return cityCatalog, nil
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", componentName, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", componentName, method, message)
}

// Lookup returns the entry of the city. The city is matched case-insensitively.
func (c *Catalog) Lookup(city string) (Entry, error) {
	for name, entry := range c.entries {
		if strings.EqualFold(name, strings.TrimSpace(city)) {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("city %q is not in the catalog: %w", city, dataErrors.ErrDatasetNotFound)
}

// Cities returns the cities of the catalog following the order of the city enumeration
func (c *Catalog) Cities() []string {
	var cities []string
	for _, city := range filter.Cities().Names() {
		if _, ok := c.entries[city]; ok {
			cities = append(cities, city)
		}
	}
	return cities
}

func resolvePath(dataDir string, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dataDir, file)
}
