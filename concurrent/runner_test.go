package concurrent

import (
	"fmt"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAggregatesResultsAndErrors(t *testing.T) {
	runner := NewRunner[int, int](RunnerConfig{LogPrefix: "Test"})

	result := runner.Run([]int{1, 2, 3, 4, 5}, func(
		item int,
		messages chan<- string,
		results chan<- int,
		errors chan<- error,
	) {
		if item == 3 {
			errors <- fmt.Errorf("item %d failed", item)
			return
		}
		results <- item * 2
	})

	require.Len(t, result.Results, 4)
	require.Len(t, result.Errors, 1)

	sort.Ints(result.Results)
	assert.Equal(t, []int{2, 4, 8, 10}, result.Results)
	assert.EqualError(t, result.Errors[0], "item 3 failed")
}

func TestRunEmptyInput(t *testing.T) {
	runner := NewRunner[int, int](RunnerConfig{})

	result := runner.Run(nil, func(int, chan<- string, chan<- int, chan<- error) {
		t.Fatal("worker must not run for empty input")
	})

	assert.Empty(t, result.Results)
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.Results)
}

func TestRunRespectsMaxConcurrency(t *testing.T) {
	var current, peak atomic.Int32

	runner := NewRunner[int, int](RunnerConfig{MaxConcurrency: 2})
	items := make([]int, 20)

	result := runner.Run(items, func(
		_ int,
		messages chan<- string,
		results chan<- int,
		errors chan<- error,
	) {
		now := current.Add(1)
		for {
			observed := peak.Load()
			if now <= observed || peak.CompareAndSwap(observed, now) {
				break
			}
		}
		current.Add(-1)
		results <- 1
	})

	assert.Len(t, result.Results, 20)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunDroppedItems(t *testing.T) {
	runner := NewRunner[int, int](RunnerConfig{})

	// workers that report nothing silently drop their item
	result := runner.Run([]int{1, 2, 3}, func(
		item int,
		messages chan<- string,
		results chan<- int,
		errors chan<- error,
	) {
		if item == 2 {
			results <- item
		}
	})

	assert.Equal(t, []int{2}, result.Results)
	assert.Empty(t, result.Errors)
}
