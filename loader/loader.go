package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bluele/gcache"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/catalog"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	componentName   = "loader"
	monthColumn     = "month"
	dayOfWeekColumn = "day_of_week"
)

// missingValues spellings of a missing value in the optional columns
var missingValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "<nil>"}

// timestampLayouts accepted layouts for Start Time and End Time, in order of preference
var timestampLayouts = []string{
	time.DateTime,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// cityFrame parsed content of a city file, before applying any filter.
// Besides the file columns, the frame has the month and day_of_week derived columns.
type cityFrame struct {
	frame  dataframe.DataFrame
	schema dataset.Schema
}

// Loader reads city files and narrows them by month and day. Parsed files are kept in an
// LRU cache, so restarting an analysis of the same city does not read the file again.
// Cached frames are never modified: every filter produces a new frame.
type Loader struct {
	catalog *catalog.Catalog
	frames  gcache.Cache
}

func NewLoader(cityCatalog *catalog.Catalog, cacheSize int) *Loader {
	loader := &Loader{catalog: cityCatalog}
	loader.frames = gcache.New(cacheSize).
		LRU().
		LoaderFunc(func(key interface{}) (interface{}, error) {
			return loader.readCity(key.(string))
		}).
		Build()
	return loader
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", componentName, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", componentName, method, message)
}

// LoadFilter returns the dataset selected by the FilterSpec
func (l *Loader) LoadFilter(filterSpec filter.FilterSpec) (*dataset.Dataset, error) {
	return l.Load(filterSpec.City, filterSpec.Month, filterSpec.Day)
}

// Load returns the trips of the city whose start time matches the month and the day of week.
// City, month and day accept the same tokens as the filter enumerations, All disables a filter.
// Possible errors:
// + ErrDatasetNotFound: the city is unknown, is not in the catalog or its file can't be read
// + ErrMalformedRecord: a required column is missing, a row can't be parsed or a timestamp is invalid
// + ErrInvalidSelection: month or day are not valid
func (l *Loader) Load(city string, month string, day string) (*dataset.Dataset, error) {
	resolvedCity, err := filter.Resolve(city, filter.Cities())
	if err != nil {
		log.Warn(l.getLogMessage("Load", "unknown city", err))
		return nil, fmt.Errorf("%w: %w", err, dataErrors.ErrDatasetNotFound)
	}

	filterSpec, err := filter.NewFilterSpec(resolvedCity, month, day)
	if err != nil {
		log.Warn(l.getLogMessage("Load", "invalid filter", err))
		return nil, err
	}

	entry, err := l.catalog.Lookup(filterSpec.City)
	if err != nil {
		log.Warn(l.getLogMessage("Load", "city without dataset", err))
		return nil, err
	}

	cached, err := l.frames.Get(entry.City)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error loading %s data", entry.City), err))
		return nil, err
	}
	parsedCity := cached.(*cityFrame)

	filteredFrame := filterFrame(parsedCity.frame, filterSpec)
	if filteredFrame.Err != nil {
		return nil, fmt.Errorf("error filtering %s data: %s: %w", entry.City, filteredFrame.Err.Error(), dataErrors.ErrMalformedRecord)
	}

	records, err := toRecords(filteredFrame, parsedCity.schema)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error converting %s trips", entry.City), err))
		return nil, err
	}

	log.Debug(l.getLogMessage("Load", fmt.Sprintf("%v of %v trips match %s", len(records), parsedCity.frame.Nrow(), filterSpec), nil))
	return dataset.New(entry.City, filterSpec.Month, filterSpec.Day, parsedCity.schema, records), nil
}

// readCity reads the whole file of the city and adds the derived calendar columns
func (l *Loader) readCity(city string) (*cityFrame, error) {
	entry, err := l.catalog.Lookup(city)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Open(entry.File)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %s: %w", entry.File, err.Error(), dataErrors.ErrDatasetNotFound)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("readCity", fmt.Sprintf("error closing %s", entry.File), err))
		}
	}(dataFile)

	frame, err := readFrame(dataFile, entry.File)
	if err != nil {
		return nil, err
	}

	columns := frame.Names()
	for _, column := range dataset.RequiredColumns {
		if !utils.ContainsString(column, columns) {
			return nil, fmt.Errorf("%s: %w %q: %w", entry.File, dataErrors.ErrMissingColumn, column, dataErrors.ErrMalformedRecord)
		}
	}

	startTimes, err := parseTimestamps(frame.Col(dataset.StartTimeColumn).Records())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.File, err)
	}

	// End Time is not needed for the derived columns, but a malformed value must fail the load
	if _, err = parseTimestamps(frame.Col(dataset.EndTimeColumn).Records()); err != nil {
		return nil, fmt.Errorf("%s: %w", entry.File, err)
	}

	months := make([]string, len(startTimes))
	daysOfWeek := make([]string, len(startTimes))
	for idx, startTime := range startTimes {
		months[idx] = startTime.Month().String()
		daysOfWeek[idx] = startTime.Weekday().String()
	}

	frame = frame.
		Mutate(series.New(months, series.String, monthColumn)).
		Mutate(series.New(daysOfWeek, series.String, dayOfWeekColumn))
	if frame.Err != nil {
		return nil, fmt.Errorf("error deriving calendar columns of %s: %s: %w", entry.File, frame.Err.Error(), dataErrors.ErrMalformedRecord)
	}

	log.Info(l.getLogMessage("readCity", fmt.Sprintf("%s: %v trips read from %s", entry.City, frame.Nrow(), entry.File), nil))
	return &cityFrame{
		frame:  frame,
		schema: dataset.NewSchema(columns),
	}, nil
}

// filterFrame keeps the rows whose derived month and day of week match the FilterSpec
func filterFrame(frame dataframe.DataFrame, filterSpec filter.FilterSpec) dataframe.DataFrame {
	if filterSpec.FiltersMonth() && frame.Nrow() > 0 {
		frame = frame.Filter(dataframe.F{Colname: monthColumn, Comparator: series.Eq, Comparando: filterSpec.Month})
	}

	if filterSpec.FiltersDay() && frame.Nrow() > 0 {
		frame = frame.Filter(dataframe.F{Colname: dayOfWeekColumn, Comparator: series.Eq, Comparando: filterSpec.Day})
	}

	return frame
}

// toRecords converts the rows of the frame into TripRecords. Optional columns are read only if
// the schema says the city has them. Blank User Type and Gender values become Unknown.
func toRecords(frame dataframe.DataFrame, schema dataset.Schema) ([]trip.TripRecord, error) {
	rowsAmount := frame.Nrow()
	if rowsAmount == 0 {
		return []trip.TripRecord{}, nil
	}

	startTimes, err := parseTimestamps(frame.Col(dataset.StartTimeColumn).Records())
	if err != nil {
		return nil, err
	}

	endTimes, err := parseTimestamps(frame.Col(dataset.EndTimeColumn).Records())
	if err != nil {
		return nil, err
	}

	startStations := frame.Col(dataset.StartStationColumn).Records()
	endStations := frame.Col(dataset.EndStationColumn).Records()
	userTypes := optionalColumn(frame, dataset.UserTypeColumn, schema.HasUserType)
	genders := optionalColumn(frame, dataset.GenderColumn, schema.HasGender)
	birthYears := optionalColumn(frame, dataset.BirthYearColumn, schema.HasBirthYear)

	records := make([]trip.TripRecord, rowsAmount)
	for idx := 0; idx < rowsAmount; idx++ {
		record := trip.TripRecord{
			StartTime:    startTimes[idx],
			EndTime:      endTimes[idx],
			StartStation: startStations[idx],
			EndStation:   endStations[idx],
		}

		if userTypes != nil {
			record.UserType = valueOrUnknown(userTypes[idx])
		}

		if genders != nil {
			record.Gender = valueOrUnknown(genders[idx])
		}

		if birthYears != nil {
			record.BirthYear, record.HasBirthYear = parseBirthYear(birthYears[idx])
		}

		records[idx] = record
	}

	return records, nil
}

func optionalColumn(frame dataframe.DataFrame, column string, present bool) []string {
	if !present {
		return nil
	}
	return frame.Col(column).Records()
}

func parseTimestamps(values []string) ([]time.Time, error) {
	timestamps := make([]time.Time, len(values))
	for idx, value := range values {
		timestamp, err := parseTimestamp(value)
		if err != nil {
			// +2: header line and 1-based line numbers
			return nil, fmt.Errorf("line %v: %w: %w", idx+2, err, dataErrors.ErrMalformedRecord)
		}
		timestamps[idx] = timestamp
	}
	return timestamps, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		timestamp, err := time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", dataErrors.ErrInvalidDate, value)
}

// parseBirthYear accepts integers and floats (pandas exports the column as 1992.0)
func parseBirthYear(value string) (int, bool) {
	if isMissing(value) {
		return 0, false
	}

	birthYear, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Debugf("[component: %s] ignoring invalid birth year %q", componentName, value)
		return 0, false
	}
	return int(birthYear), true
}

func valueOrUnknown(value string) string {
	if isMissing(value) {
		return trip.UnknownValue
	}
	return value
}

func isMissing(value string) bool {
	return utils.ContainsString(strings.TrimSpace(value), missingValues)
}
