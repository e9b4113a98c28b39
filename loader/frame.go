package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	dataErrors "bikeshare/domain/errors"
)

// readFrame reads a csv with header as string columns. Values are kept as written: no value is
// turned into NaN, missing values are handled per column by the caller.
// A file with only the header is a frame without rows. Rows that can't be parsed, e.g. with
// a different amount of fields than the header, are ErrMalformedRecord; any other read error
// is ErrDatasetNotFound.
func readFrame(reader io.Reader, filepath string) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return dataframe.DataFrame{}, fmt.Errorf("error parsing %s: %s: %w", filepath, err.Error(), dataErrors.ErrMalformedRecord)
		}
		return dataframe.DataFrame{}, fmt.Errorf("error reading %s: %s: %w", filepath, err.Error(), dataErrors.ErrDatasetNotFound)
	}

	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%s has no header: %w", filepath, dataErrors.ErrMalformedRecord)
	}

	if len(records) == 1 {
		return emptyFrame(records[0]), nil
	}

	frame := dataframe.LoadRecords(
		records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error loading %s: %s: %w", filepath, frame.Err.Error(), dataErrors.ErrMalformedRecord)
	}
	return frame, nil
}

// emptyFrame returns a frame with the header columns and no rows
func emptyFrame(header []string) dataframe.DataFrame {
	columns := make([]series.Series, len(header))
	for idx, column := range header {
		columns[idx] = series.New([]string{}, series.String, column)
	}
	return dataframe.New(columns...)
}
