package modecounter

import (
	"fmt"
	"sort"

	"bikeshare/domain/entities"
	dataErrors "bikeshare/domain/errors"
)

// ValueCount amount of occurrences of a value
type ValueCount[T comparable] struct {
	Value T   `json:"value"`
	Count int `json:"count"`
}

// ModeCounter counts the occurrences of each value of a column.
// + counters: occurrences by value
// + order: values in the order they were first seen. Ties are broken with it
// + missing: amount of null values seen
type ModeCounter[T comparable] struct {
	counters map[T]int
	order    []T
	missing  int
}

func NewModeCounter[T comparable]() *ModeCounter[T] {
	return &ModeCounter[T]{
		counters: make(map[T]int),
	}
}

func (mc *ModeCounter[T]) UpdateCounter(value T) {
	if _, ok := mc.counters[value]; !ok {
		mc.order = append(mc.order, value)
	}
	mc.counters[value] += 1
}

// UpdateNullable counts value, or a missing value if it is null
func (mc *ModeCounter[T]) UpdateNullable(value entities.Nullable[T]) {
	v, ok := value.Get()
	if !ok {
		mc.missing += 1
		return
	}
	mc.UpdateCounter(v)
}

func (mc *ModeCounter[T]) GetMissing() int {
	return mc.missing
}

func (mc *ModeCounter[T]) IsEmpty() bool {
	return len(mc.order) == 0
}

// GetMode returns the most frequent value. If two values have the same amount of
// occurrences, the one that was seen first wins.
func (mc *ModeCounter[T]) GetMode() (ValueCount[T], error) {
	if mc.IsEmpty() {
		return ValueCount[T]{}, fmt.Errorf("%w: cannot get mode, there are no values", dataErrors.ErrAggregation)
	}

	mode := ValueCount[T]{Value: mc.order[0], Count: mc.counters[mc.order[0]]}
	for _, value := range mc.order[1:] {
		if mc.counters[value] > mode.Count {
			mode = ValueCount[T]{Value: value, Count: mc.counters[value]}
		}
	}
	return mode, nil
}

// GetValueCounts returns every value with its count, sorted by count in descending
// order. Values with the same count keep the order in which they were first seen.
func (mc *ModeCounter[T]) GetValueCounts() []ValueCount[T] {
	valueCounts := make([]ValueCount[T], 0, len(mc.order))
	for _, value := range mc.order {
		valueCounts = append(valueCounts, ValueCount[T]{Value: value, Count: mc.counters[value]})
	}

	sort.SliceStable(valueCounts, func(i, j int) bool {
		return valueCounts[i].Count > valueCounts[j].Count
	})
	return valueCounts
}
