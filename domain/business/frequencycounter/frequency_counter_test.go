package frequencycounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
)

func counterWith(values ...string) *FrequencyCounter[string] {
	counter := NewFrequencyCounter[string]()
	for _, value := range values {
		counter.UpdateCounter(value)
	}
	return counter
}

func TestMode(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "single value", values: []string{"a"}, expected: "a"},
		{name: "clear winner", values: []string{"a", "b", "b", "c"}, expected: "b"},
		{name: "tie goes to first seen", values: []string{"b", "a", "a", "b"}, expected: "b"},
		{name: "late winner", values: []string{"a", "b", "c", "c"}, expected: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := counterWith(tt.values...).Mode()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestMode_Empty(t *testing.T) {
	_, err := NewFrequencyCounter[int]().Mode()
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}

func TestCounts_StableDescending(t *testing.T) {
	counter := counterWith("Customer", "Subscriber", "Dependent", "Subscriber", "Dependent", "Unknown")

	expected := []ValueCount[string]{
		{Value: "Subscriber", Count: 2},
		{Value: "Dependent", Count: 2},
		{Value: "Customer", Count: 1},
		{Value: "Unknown", Count: 1},
	}
	assert.Equal(t, expected, counter.Counts())
	assert.Equal(t, 6, counter.GetTotal())
}
