package trip

import (
	"fmt"
	"time"
)

const (
	UnknownValue  = "Unknown"
	pairSeparator = " to "
)

// TripRecord struct that contains the data of a single bike trip
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends
// + StartStation: name of the station where the trip begins
// + EndStation: name of the station where the trip ends
// + UserType: Subscriber, Customer, etc. Only meaningful if the city file has the column
// + Gender: only meaningful if the city file has the column
// + BirthYear: year of birth of the user. HasBirthYear is false when the value is blank
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"-"`
}

// Month returns the full month name of the start time, e.g. June
func (tr TripRecord) Month() string {
	return tr.StartTime.Month().String()
}

// Weekday returns the weekday name of the start time, e.g. Monday
func (tr TripRecord) Weekday() string {
	return tr.StartTime.Weekday().String()
}

func (tr TripRecord) StartHour() int {
	return tr.StartTime.Hour()
}

// TravelDuration returns EndTime - StartTime
func (tr TripRecord) TravelDuration() time.Duration {
	return tr.EndTime.Sub(tr.StartTime)
}

// StationPair returns the label used to count start/end combinations: "<start> to <end>"
func (tr TripRecord) StationPair() string {
	return PairLabel(tr.StartStation, tr.EndStation)
}

func PairLabel(startStation string, endStation string) string {
	return startStation + pairSeparator + endStation
}

// ToRow returns the record fields in the order they are shown to the user
func (tr TripRecord) ToRow() []string {
	birthYear := ""
	if tr.HasBirthYear {
		birthYear = fmt.Sprintf("%d", tr.BirthYear)
	}
	return []string{
		tr.StartTime.Format(time.DateTime),
		tr.EndTime.Format(time.DateTime),
		tr.StartStation,
		tr.EndStation,
		tr.UserType,
		tr.Gender,
		birthYear,
	}
}
