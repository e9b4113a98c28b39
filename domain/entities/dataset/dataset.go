package dataset

import "bikeshare/domain/entities/trip"

// Column names of the city files
const (
	StartTimeColumn    = "Start Time"
	EndTimeColumn      = "End Time"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"
)

// RequiredColumns columns that every city file must have
var RequiredColumns = []string{StartTimeColumn, EndTimeColumn, StartStationColumn, EndStationColumn}

// Schema declares which optional columns are present in a city file. Reports branch on
// these flags instead of probing the data.
type Schema struct {
	HasUserType  bool `json:"has_user_type"`
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// NewSchema builds the Schema based on the header of a city file
func NewSchema(columns []string) Schema {
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[column] = true
	}
	return Schema{
		HasUserType:  present[UserTypeColumn],
		HasGender:    present[GenderColumn],
		HasBirthYear: present[BirthYearColumn],
	}
}

// Dataset trips of a city that survived the month/day filters, in file order
// + City: city the trips belong to
// + Month: month filter applied, All if none
// + Day: day filter applied, All if none
// + Schema: optional columns available for this city
// + Records: the trips
type Dataset struct {
	City    string
	Month   string
	Day     string
	Schema  Schema
	Records []trip.TripRecord
}

func New(city string, month string, day string, schema Schema, records []trip.TripRecord) *Dataset {
	return &Dataset{
		City:    city,
		Month:   month,
		Day:     day,
		Schema:  schema,
		Records: records,
	}
}

func (d *Dataset) Len() int {
	return len(d.Records)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.Records) == 0
}
