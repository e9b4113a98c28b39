package stats

import (
	"fmt"
	"time"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// ValueCount amount of trips that share a value, e.g. the amount of trips of Subscribers
type ValueCount = frequencycounter.ValueCount[string]

// TimeReport most frequent times of travel
type TimeReport struct {
	PopularMonth string `json:"popular_month"`
	PopularDay   string `json:"popular_day"`
	PopularHour  int    `json:"popular_hour"`
}

// StationReport most popular stations and trip.
// TripDistanceKM is only meaningful if HasTripDistance is true, that is, if the position of both
// stations of the popular trip is known.
type StationReport struct {
	PopularStartStation string  `json:"popular_start_station"`
	PopularEndStation   string  `json:"popular_end_station"`
	PopularTrip         string  `json:"popular_trip"`
	PopularTripStart    string  `json:"popular_trip_start"`
	PopularTripEnd      string  `json:"popular_trip_end"`
	TripDistanceKM      float64 `json:"trip_distance_km,omitempty"`
	HasTripDistance     bool    `json:"has_trip_distance"`
}

// DurationReport total and mean travel time
type DurationReport struct {
	TripCount     int           `json:"trip_count"`
	TotalDuration time.Duration `json:"total_duration_ns"`
	MeanDuration  time.Duration `json:"mean_duration_ns"`
}

// BirthYearReport earliest, most recent and most common year of birth
type BirthYearReport struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// UserReport demographics of the users. Each Has* flag tells if the dataset has the data;
// when false the related field must be shown as unavailable.
type UserReport struct {
	UserTypes     []ValueCount    `json:"user_types,omitempty"`
	HasUserTypes  bool            `json:"has_user_types"`
	Genders       []ValueCount    `json:"genders,omitempty"`
	HasGenders    bool            `json:"has_genders"`
	BirthYears    BirthYearReport `json:"birth_years"`
	HasBirthYears bool            `json:"has_birth_years"`
}

type stationPair struct {
	start string
	end   string
}

// TimeStats returns the most common month, day of week and start hour.
// Ties are broken by the value that appears first in the dataset.
func TimeStats(data *dataset.Dataset) (*TimeReport, error) {
	if data.IsEmpty() {
		return nil, emptyDatasetError("time stats", data)
	}

	months := frequencycounter.NewFrequencyCounter[string]()
	days := frequencycounter.NewFrequencyCounter[string]()
	hours := frequencycounter.NewFrequencyCounter[int]()
	for _, record := range data.Records {
		months.UpdateCounter(record.Month())
		days.UpdateCounter(record.Weekday())
		hours.UpdateCounter(record.StartHour())
	}

	popularMonth, _ := months.Mode()
	popularDay, _ := days.Mode()
	popularHour, _ := hours.Mode()

	return &TimeReport{
		PopularMonth: popularMonth,
		PopularDay:   popularDay,
		PopularHour:  popularHour,
	}, nil
}

// StationStats returns the most common start station, end station and start-end combination.
// If coordinates has both stations of the popular trip, the distance between them is added.
// coordinates can be nil.
func StationStats(data *dataset.Dataset, coordinates station.Coordinates) (*StationReport, error) {
	if data.IsEmpty() {
		return nil, emptyDatasetError("station stats", data)
	}

	startStations := frequencycounter.NewFrequencyCounter[string]()
	endStations := frequencycounter.NewFrequencyCounter[string]()
	pairs := frequencycounter.NewFrequencyCounter[stationPair]()
	for _, record := range data.Records {
		startStations.UpdateCounter(record.StartStation)
		endStations.UpdateCounter(record.EndStation)
		pairs.UpdateCounter(stationPair{start: record.StartStation, end: record.EndStation})
	}

	popularStart, _ := startStations.Mode()
	popularEnd, _ := endStations.Mode()
	popularPair, _ := pairs.Mode()

	report := &StationReport{
		PopularStartStation: popularStart,
		PopularEndStation:   popularEnd,
		PopularTrip:         trip.PairLabel(popularPair.start, popularPair.end),
		PopularTripStart:    popularPair.start,
		PopularTripEnd:      popularPair.end,
	}

	if coordinates != nil {
		report.TripDistanceKM, report.HasTripDistance = coordinates.DistanceKM(popularPair.start, popularPair.end)
	}

	return report, nil
}

// TripDurationStats returns the total travel time and the mean travel time
func TripDurationStats(data *dataset.Dataset) (*DurationReport, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, record := range data.Records {
		accumulator.UpdateAccumulator(record.TravelDuration())
	}

	meanDuration, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, emptyDatasetError("trip duration stats", data)
	}

	return &DurationReport{
		TripCount:     accumulator.Counter,
		TotalDuration: accumulator.TotalDuration,
		MeanDuration:  meanDuration,
	}, nil
}

// UserStats returns the counts of user types and genders, sorted by descending count, and the
// birth year stats. Data the city does not have is flagged as unavailable.
func UserStats(data *dataset.Dataset) (*UserReport, error) {
	if data.IsEmpty() {
		return nil, emptyDatasetError("user stats", data)
	}

	report := &UserReport{}

	if data.Schema.HasUserType {
		userTypes := frequencycounter.NewFrequencyCounter[string]()
		for _, record := range data.Records {
			userTypes.UpdateCounter(record.UserType)
		}
		report.UserTypes = userTypes.Counts()
		report.HasUserTypes = true
	}

	if data.Schema.HasGender {
		genders := frequencycounter.NewFrequencyCounter[string]()
		for _, record := range data.Records {
			genders.UpdateCounter(record.Gender)
		}
		report.Genders = genders.Counts()
		report.HasGenders = true
	}

	if data.Schema.HasBirthYear {
		report.BirthYears, report.HasBirthYears = birthYearStats(data.Records)
	}

	return report, nil
}

// birthYearStats ignores trips without birth year. The second value is false if no trip has it
func birthYearStats(records []trip.TripRecord) (BirthYearReport, bool) {
	birthYears := frequencycounter.NewFrequencyCounter[int]()
	var report BirthYearReport
	for _, record := range records {
		if !record.HasBirthYear {
			continue
		}

		if birthYears.GetTotal() == 0 || record.BirthYear < report.Earliest {
			report.Earliest = record.BirthYear
		}
		if birthYears.GetTotal() == 0 || record.BirthYear > report.MostRecent {
			report.MostRecent = record.BirthYear
		}
		birthYears.UpdateCounter(record.BirthYear)
	}

	mostCommon, err := birthYears.Mode()
	if err != nil {
		return BirthYearReport{}, false
	}
	report.MostCommon = mostCommon
	return report, true
}

func emptyDatasetError(report string, data *dataset.Dataset) error {
	return fmt.Errorf("%s of %s (month: %s, day: %s): %w", report, data.City, data.Month, data.Day, dataErrors.ErrEmptyDataset)
}
