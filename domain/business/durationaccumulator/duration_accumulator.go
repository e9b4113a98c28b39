package durationaccumulator

import (
	"time"

	dataErrors "bikeshare/domain/errors"
)

// DurationAccumulator struct that collects the total duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations of trips
type DurationAccumulator struct {
	Counter       int           `json:"counter"`
	TotalDuration time.Duration `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration time.Duration) {
	da.Counter += 1
	da.TotalDuration += duration
}

// GetAverageDuration returns TotalDuration / Counter, truncated to the nanosecond.
// If nothing was collected ErrEmptyDataset is returned
func (da *DurationAccumulator) GetAverageDuration() (time.Duration, error) {
	if da.Counter == 0 {
		return 0, dataErrors.ErrEmptyDataset
	}
	return da.TotalDuration / time.Duration(da.Counter), nil
}
