package stats

import (
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
)

const (
	summaryType  = "summary"
	summaryStage = "stats"
)

// Summary the four reports of an analysis, as published to the report queue
type Summary struct {
	Metadata  entities.Metadata `json:"metadata"`
	Filter    filter.FilterSpec `json:"filter"`
	TripCount int               `json:"trip_count"`
	Time      *TimeReport       `json:"time"`
	Stations  *StationReport    `json:"stations"`
	Duration  *DurationReport   `json:"duration"`
	Users     *UserReport       `json:"users"`
}

func NewSummary(data *dataset.Dataset, timeReport *TimeReport, stationReport *StationReport, durationReport *DurationReport, userReport *UserReport) *Summary {
	filterSpec := filter.FilterSpec{City: data.City, Month: data.Month, Day: data.Day}
	return &Summary{
		Metadata:  entities.NewMetadata(data.City, summaryType, summaryStage, filterSpec.String()),
		Filter:    filterSpec,
		TripCount: data.Len(),
		Time:      timeReport,
		Stations:  stationReport,
		Duration:  durationReport,
		Users:     userReport,
	}
}

// Summarize computes the four reports of the dataset
func Summarize(data *dataset.Dataset, coordinates station.Coordinates) (*Summary, error) {
	timeReport, err := TimeStats(data)
	if err != nil {
		return nil, err
	}

	stationReport, err := StationStats(data, coordinates)
	if err != nil {
		return nil, err
	}

	durationReport, err := TripDurationStats(data)
	if err != nil {
		return nil, err
	}

	userReport, err := UserStats(data)
	if err != nil {
		return nil, err
	}

	return NewSummary(data, timeReport, stationReport, durationReport, userReport), nil
}
