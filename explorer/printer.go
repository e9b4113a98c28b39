package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	"bikeshare/stats"
)

const (
	choiceIndent = 5
	separator    = "----------------------------------------"
	noMoreData   = "---no more data to load---"
)

// Printer writes the reports in a human readable way. The output is not meant to be parsed.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Println(message string) {
	fmt.Fprintln(p.out, message)
}

func (p *Printer) Separator() {
	fmt.Fprintln(p.out, separator)
}

// Choices prints a numbered list, starting at 1
func (p *Printer) Choices(names []string) {
	for idx, name := range names {
		fmt.Fprintf(p.out, "%s%v. %s\n", strings.Repeat(" ", choiceIndent), idx+1, name)
	}
}

func (p *Printer) Calculating(title string) {
	fmt.Fprintf(p.out, "\nCalculating %s...\n\n", title)
}

func (p *Printer) Elapsed(elapsed time.Duration) {
	fmt.Fprintf(p.out, "\nThis took %f seconds.\n", elapsed.Seconds())
	p.Separator()
}

func (p *Printer) TimeReport(report *stats.TimeReport) {
	fmt.Fprintln(p.out, "Most Frequent Start Month:", report.PopularMonth)
	fmt.Fprintln(p.out, "Most Frequent Start Day of the Week:", report.PopularDay)
	fmt.Fprintln(p.out, "Most Frequent Start Hour:", report.PopularHour)
}

func (p *Printer) StationReport(report *stats.StationReport) {
	fmt.Fprintln(p.out, "Most Frequent Start Station:", report.PopularStartStation)
	fmt.Fprintln(p.out, "Most Frequent End Station:", report.PopularEndStation)
	fmt.Fprintln(p.out, "Most Frequent Combination of Start Station and End Station:", report.PopularTrip)
	if report.HasTripDistance {
		fmt.Fprintf(p.out, "Straight-line distance of that trip: %.2f km\n", report.TripDistanceKM)
	}
}

func (p *Printer) DurationReport(report *stats.DurationReport) {
	fmt.Fprintf(p.out, "Total Travel Time: %s\n", formatDuration(report.TotalDuration))
	fmt.Fprintf(p.out, "Mean Trip Duration: %s\n", formatDuration(report.MeanDuration))
}

func (p *Printer) UserReport(report *stats.UserReport) {
	fmt.Fprintln(p.out, "Number of Users by User-Type:")
	if report.HasUserTypes {
		p.counts(report.UserTypes)
	} else {
		fmt.Fprintln(p.out, "No user type data available")
	}
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, "Number of Users by Gender:")
	if report.HasGenders {
		p.counts(report.Genders)
	} else {
		fmt.Fprintln(p.out, "No gender data available")
	}
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, "User Birth Year Stats:")
	if report.HasBirthYears {
		fmt.Fprintf(p.out, "Earliest year of birth: %v\n", report.BirthYears.Earliest)
		fmt.Fprintf(p.out, "Most recent year of birth: %v\n", report.BirthYears.MostRecent)
		fmt.Fprintf(p.out, "Most common year of birth: %v\n", report.BirthYears.MostCommon)
	} else {
		fmt.Fprintln(p.out, "No birth year data available")
	}
}

func (p *Printer) counts(counts []stats.ValueCount) {
	writer := tabwriter.NewWriter(p.out, 0, 0, 4, ' ', 0)
	for _, count := range counts {
		fmt.Fprintf(writer, "%s\t%v\n", count.Value, count.Count)
	}
	_ = writer.Flush()
}

// Page prints the trips as a table. offset is the position of the first trip in the dataset.
// Optional columns are printed only if the schema has them.
func (p *Printer) Page(records []trip.TripRecord, offset int, schema dataset.Schema) {
	columns := []string{"", dataset.StartTimeColumn, dataset.EndTimeColumn, dataset.StartStationColumn, dataset.EndStationColumn}
	optional := []bool{schema.HasUserType, schema.HasGender, schema.HasBirthYear}
	for idx, column := range []string{dataset.UserTypeColumn, dataset.GenderColumn, dataset.BirthYearColumn} {
		if optional[idx] {
			columns = append(columns, column)
		}
	}

	writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(columns, "\t"))
	for idx, record := range records {
		row := []string{fmt.Sprintf("%v", offset+idx)}
		fields := record.ToRow()
		row = append(row, fields[:4]...)
		for optionalIdx, present := range optional {
			if present {
				row = append(row, fields[4+optionalIdx])
			}
		}
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	_ = writer.Flush()
}

// formatDuration formats like "2 days 03:04:05", rounded to the second
func formatDuration(duration time.Duration) string {
	sign := ""
	if duration < 0 {
		sign = "-"
		duration = -duration
	}
	duration = duration.Round(time.Second)

	days := duration / (24 * time.Hour)
	duration -= days * 24 * time.Hour
	hours := duration / time.Hour
	duration -= hours * time.Hour
	minutes := duration / time.Minute
	duration -= minutes * time.Minute
	seconds := duration / time.Second

	return fmt.Sprintf("%s%d days %02d:%02d:%02d", sign, days, hours, minutes, seconds)
}
