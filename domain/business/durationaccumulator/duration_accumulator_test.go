package durationaccumulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
)

func TestGetAverageDuration(t *testing.T) {
	accumulator := NewDurationAccumulator()
	accumulator.UpdateAccumulator(10 * time.Minute)
	accumulator.UpdateAccumulator(20 * time.Minute)
	accumulator.UpdateAccumulator(45 * time.Second)

	assert.Equal(t, 3, accumulator.Counter)
	assert.Equal(t, 30*time.Minute+45*time.Second, accumulator.TotalDuration)

	average, err := accumulator.GetAverageDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute+15*time.Second, average)
}

func TestGetAverageDuration_LargeTotals(t *testing.T) {
	accumulator := NewDurationAccumulator()
	accumulator.UpdateAccumulator(time.Duration(1<<60 + 3))
	accumulator.UpdateAccumulator(time.Duration(1<<60 + 5))

	average, err := accumulator.GetAverageDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(1<<60+4), average)
}

func TestGetAverageDuration_Empty(t *testing.T) {
	_, err := NewDurationAccumulator().GetAverageDuration()
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}
