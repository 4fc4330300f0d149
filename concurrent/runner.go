package concurrent

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

// WorkerFunc processes one item and reports through the channels: progress
// messages, a result on success, an error on failure. A worker that
// produces neither result nor error simply drops its item, which is how
// collection loads skip files of the wrong shape.
type WorkerFunc[T any, R any] func(item T, messages chan<- string, results chan<- R, errors chan<- error)

// RunnerConfig configures a runner
type RunnerConfig struct {
	MaxConcurrency int    // 0 means unlimited concurrency
	LogPrefix      string // prefix for progress log messages
}

// Runner fans work out over a list of items and fans results back in.
// One item's failure never cancels its siblings; the caller decides what to
// do with the aggregated errors.
type Runner[T any, R any] struct {
	config RunnerConfig
}

// NewRunner creates a runner with the given configuration
func NewRunner[T any, R any](config RunnerConfig) *Runner[T, R] {
	if config.LogPrefix == "" {
		config.LogPrefix = "Runner"
	}
	return &Runner[T, R]{config: config}
}

// RunResult aggregates a run's outputs
type RunResult[R any] struct {
	Results []R
	Errors  []error
}

// Run executes the worker for every item concurrently and blocks until all
// workers and channel readers have finished.
func (r *Runner[T, R]) Run(items []T, worker WorkerFunc[T, R]) RunResult[R] {
	if len(items) == 0 {
		return RunResult[R]{Results: []R{}, Errors: []error{}}
	}

	var readersWG sync.WaitGroup

	messages := make(chan string)
	readersWG.Add(1)
	go func() {
		defer readersWG.Done()
		for message := range messages {
			r.logInfo(message)
		}
	}()

	results := make(chan R)
	var resultsList []R
	readersWG.Add(1)
	go func() {
		defer readersWG.Done()
		for result := range results {
			resultsList = append(resultsList, result)
		}
	}()

	errors := make(chan error)
	var errorsList []error
	readersWG.Add(1)
	go func() {
		defer readersWG.Done()
		for err := range errors {
			errorsList = append(errorsList, err)
		}
	}()

	var workersWG sync.WaitGroup

	var throttle chan int
	if r.config.MaxConcurrency > 0 {
		throttle = make(chan int, r.config.MaxConcurrency)
	}

	for _, item := range items {
		workersWG.Add(1)

		if throttle != nil {
			throttle <- 1
		}

		go func(item T) {
			defer workersWG.Done()
			if throttle != nil {
				defer func() { <-throttle }()
			}
			worker(item, messages, results, errors)
		}(item)
	}

	workersWG.Wait()

	close(messages)
	close(results)
	close(errors)

	readersWG.Wait()

	return RunResult[R]{Results: resultsList, Errors: errorsList}
}

func (r *Runner[T, R]) logInfo(message string) {
	log.Info(fmt.Sprintf("%s: %s", r.config.LogPrefix, message))
}
