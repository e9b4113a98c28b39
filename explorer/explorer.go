package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/paginator"
	"bikeshare/stats"
)

const (
	greeting         = "Hello! Let's explore some US bikeshare data!"
	restartQuestion  = "\nWould you like to restart? Enter yes or no."
	rawDataQuestion  = "\nWould you like to see %v lines of raw data? Enter yes or no."
	moreDataQuestion = "\nWould you like to see %v more lines of raw data? Enter yes or no."
)

type dataLoader interface {
	LoadFilter(filterSpec filter.FilterSpec) (*dataset.Dataset, error)
	Coordinates(city string) (station.Coordinates, error)
}

type summaryPublisher interface {
	Publish(ctx context.Context, summary *stats.Summary) error
}

// Explorer interactive session: asks for the filters, prints the stats of the filtered trips and
// lets the user page through them. The publisher is optional.
type Explorer struct {
	loader    dataLoader
	publisher summaryPublisher
	printer   *Printer
	prompt    *Prompt
}

func NewExplorer(loader dataLoader, publisher summaryPublisher, in io.Reader, out io.Writer) *Explorer {
	printer := NewPrinter(out)
	return &Explorer{
		loader:    loader,
		publisher: publisher,
		printer:   printer,
		prompt:    NewPrompt(in, printer),
	}
}

func (e *Explorer) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[explorer][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[explorer][method: %s][status: OK] %s", method, message)
}

// Run runs analyses until the user does not want to restart, the input ends or ctx is done.
func (e *Explorer) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			log.Info(e.getLogMessage("Run", "context done, finishing session", nil))
			return nil
		}

		err := e.analyze(ctx)
		if errors.Is(err, io.EOF) {
			log.Debug(e.getLogMessage("Run", "input finished", nil))
			return nil
		}
		if err != nil {
			log.Error(e.getLogMessage("Run", "error during analysis", err))
			return err
		}

		restart, err := e.prompt.Confirm(restartQuestion)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			log.Debug(e.getLogMessage("Run", "user finished the session", nil))
			return nil
		}
	}
}

// analyze a single round. Problems with the data are shown to the user and are not returned.
func (e *Explorer) analyze(ctx context.Context) error {
	filterSpec, err := e.selectFilters()
	if err != nil {
		return err
	}
	log.Info(e.getLogMessage("analyze", fmt.Sprintf("filters selected: %s", filterSpec), nil))

	data, err := e.loader.LoadFilter(filterSpec)
	if err != nil {
		if errors.Is(err, dataErrors.ErrDatasetNotFound) || errors.Is(err, dataErrors.ErrMalformedRecord) {
			log.Warn(e.getLogMessage("analyze", "cannot load trips", err))
			e.printer.Println(fmt.Sprintf("\nCould not load the data of %s: %s", filterSpec.City, err))
			return nil
		}
		return err
	}

	if data.IsEmpty() {
		e.printer.Println(fmt.Sprintf("\nThere are no trips for %s.", filterSpec))
		return nil
	}

	summary, err := e.printReports(data)
	if err != nil {
		return err
	}
	e.publish(ctx, summary)

	return e.showRawData(data)
}

func (e *Explorer) selectFilters() (filter.FilterSpec, error) {
	e.printer.Println(greeting)

	city, err := e.prompt.Choose("\nWhich city would you like to look at?", filter.Cities())
	if err != nil {
		return filter.FilterSpec{}, err
	}
	month, err := e.prompt.Choose("\nWhich month? Choose All to apply no month filter.", filter.Months())
	if err != nil {
		return filter.FilterSpec{}, err
	}
	day, err := e.prompt.Choose("\nWhich day of the week? Choose All to apply no day filter.", filter.Days())
	if err != nil {
		return filter.FilterSpec{}, err
	}

	e.printer.Separator()
	return filter.NewFilterSpec(city, month, day)
}

// printReports prints the four reports, each one with the time it took
func (e *Explorer) printReports(data *dataset.Dataset) (*stats.Summary, error) {
	e.printer.Calculating("The Most Frequent Times of Travel")
	start := time.Now()
	timeReport, err := stats.TimeStats(data)
	if err != nil {
		return nil, err
	}
	e.printer.TimeReport(timeReport)
	e.printer.Elapsed(time.Since(start))

	e.printer.Calculating("The Most Popular Stations and Trip")
	start = time.Now()
	coordinates, err := e.loader.Coordinates(data.City)
	if err != nil {
		log.Warn(e.getLogMessage("printReports", "station coordinates not available", err))
		coordinates = nil
	}
	stationReport, err := stats.StationStats(data, coordinates)
	if err != nil {
		return nil, err
	}
	e.printer.StationReport(stationReport)
	e.printer.Elapsed(time.Since(start))

	e.printer.Calculating("Trip Duration")
	start = time.Now()
	durationReport, err := stats.TripDurationStats(data)
	if err != nil {
		return nil, err
	}
	e.printer.DurationReport(durationReport)
	e.printer.Elapsed(time.Since(start))

	e.printer.Calculating("User Stats")
	start = time.Now()
	userReport, err := stats.UserStats(data)
	if err != nil {
		return nil, err
	}
	e.printer.UserReport(userReport)
	e.printer.Elapsed(time.Since(start))

	return stats.NewSummary(data, timeReport, stationReport, durationReport, userReport), nil
}

// publish failures are logged, the session goes on
func (e *Explorer) publish(ctx context.Context, summary *stats.Summary) {
	if e.publisher == nil {
		return
	}

	if err := e.publisher.Publish(ctx, summary); err != nil {
		log.Error(e.getLogMessage("publish", "error publishing summary", err))
		return
	}
	log.Debug(e.getLogMessage("publish", fmt.Sprintf("summary of %s published", summary.Filter), nil))
}

func (e *Explorer) showRawData(data *dataset.Dataset) error {
	show, err := e.prompt.Confirm(fmt.Sprintf(rawDataQuestion, paginator.PageSize))
	if err != nil || !show {
		return err
	}

	pager := paginator.NewPaginator(data)
	offset := 0
	for {
		page := pager.Next()
		e.printer.Page(page, offset, data.Schema)
		offset += len(page)

		if pager.Exhausted() {
			e.printer.Println(noMoreData)
			return nil
		}

		more, err := e.prompt.Confirm(fmt.Sprintf(moreDataQuestion, paginator.PageSize))
		if err != nil || !more {
			return err
		}
	}
}
