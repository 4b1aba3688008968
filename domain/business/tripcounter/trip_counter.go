package tripcounter

import (
	"errors"
	"sort"
)

var ErrEmptyCounter = errors.New("counter has no values")

// ValueCount amount of trips that have the same Value
type ValueCount[T comparable] struct {
	Value   T
	Counter int
}

// TripCounter counts the amount of trips for each value of a field.
// Values keep the order in which they were seen for the first time: when two values
// have the same counter, the one seen first wins. This is the tie-break used by Mode
// and by Counts.
type TripCounter[T comparable] struct {
	order    []T
	counters map[T]int
}

func NewTripCounter[T comparable]() *TripCounter[T] {
	return &TripCounter[T]{
		counters: make(map[T]int),
	}
}

// UpdateCounter adds one trip to the counter of value
func (tc *TripCounter[T]) UpdateCounter(value T) {
	if _, ok := tc.counters[value]; !ok {
		tc.order = append(tc.order, value)
	}
	tc.counters[value] += 1
}

// Len returns the amount of distinct values
func (tc *TripCounter[T]) Len() int {
	return len(tc.order)
}

// Mode returns the most frequent value. ErrEmptyCounter is returned if nothing was counted
func (tc *TripCounter[T]) Mode() (T, error) {
	var mode T
	if len(tc.order) == 0 {
		return mode, ErrEmptyCounter
	}

	best := 0
	for _, value := range tc.order {
		if tc.counters[value] > best {
			mode = value
			best = tc.counters[value]
		}
	}
	return mode, nil
}

// Counts returns every value with its counter sorted by counter in descending order
func (tc *TripCounter[T]) Counts() []ValueCount[T] {
	counts := make([]ValueCount[T], 0, len(tc.order))
	for _, value := range tc.order {
		counts = append(counts, ValueCount[T]{Value: value, Counter: tc.counters[value]})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Counter > counts[j].Counter
	})
	return counts
}
