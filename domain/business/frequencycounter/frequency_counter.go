package frequencycounter

import (
	"sort"

	dataErrors "bikeshare/domain/errors"
)

// ValueCount amount of times a value was seen
type ValueCount[T comparable] struct {
	Value T   `json:"value"`
	Count int `json:"count"`
}

// FrequencyCounter counts occurrences of values keeping the order in which each value was
// first seen. That order is the tie-break for Mode and Counts.
type FrequencyCounter[T comparable] struct {
	counters   map[T]int
	firstSeen  []T
	totalCount int
}

func NewFrequencyCounter[T comparable]() *FrequencyCounter[T] {
	return &FrequencyCounter[T]{
		counters: make(map[T]int),
	}
}

func (fc *FrequencyCounter[T]) UpdateCounter(value T) {
	if _, ok := fc.counters[value]; !ok {
		fc.firstSeen = append(fc.firstSeen, value)
	}
	fc.counters[value] += 1
	fc.totalCount += 1
}

// GetTotal returns the amount of values counted, repetitions included
func (fc *FrequencyCounter[T]) GetTotal() int {
	return fc.totalCount
}

// Mode returns the most frequent value. On a tie, the value that was seen first wins.
// If nothing was counted ErrEmptyDataset is returned.
func (fc *FrequencyCounter[T]) Mode() (T, error) {
	var mode T
	if len(fc.firstSeen) == 0 {
		return mode, dataErrors.ErrEmptyDataset
	}

	maxCount := 0
	for _, value := range fc.firstSeen {
		if fc.counters[value] > maxCount {
			mode = value
			maxCount = fc.counters[value]
		}
	}
	return mode, nil
}

// Counts returns every distinct value with its counter, sorted by descending counter.
// Values with the same counter keep the order in which they were first seen.
func (fc *FrequencyCounter[T]) Counts() []ValueCount[T] {
	counts := make([]ValueCount[T], 0, len(fc.firstSeen))
	for _, value := range fc.firstSeen {
		counts = append(counts, ValueCount[T]{Value: value, Count: fc.counters[value]})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
