package bench

import "time"

// RunMany executes the benchmark numRuns times sequentially and returns one
// elapsed-time sample per run. Each run gets fresh queues and tasks; no
// state is carried across runs. numRuns is clamped to at least 1.
func RunMany(numQTasks, numCTasks, numRuns int, opts Options) ([]time.Duration, error) {
	if numRuns < 1 {
		numRuns = 1
	}
	samples := make([]time.Duration, 0, numRuns)
	for i := 0; i < numRuns; i++ {
		b, err := New(numQTasks, numCTasks, opts)
		if err != nil {
			return nil, err
		}
		elapsed, err := b.Run()
		if err != nil {
			return nil, err
		}
		samples = append(samples, elapsed)
	}
	return samples, nil
}
