// Package qmark is a simple CPU benchmark. It simulates a small in-process
// distributed system of queue micro servers and clients relaying messages,
// and scores the machine by inverse wall-clock time.
//
// It can be run from the command line (cmd/qmark) or called as a library:
//
//	score, err := qmark.QMark()
package qmark

import (
	"qmark/pkg/bench"
	"qmark/pkg/report"
)

// QMark runs the default sweep (61 qtasks, 379 ctasks, 7 runs) and returns
// the cpu performance indicator floor(1000/mean elapsed seconds).
func QMark() (int, error) {
	samples, err := bench.RunMany(bench.DefaultQTasks, bench.DefaultCTasks, bench.DefaultRuns, bench.Options{})
	if err != nil {
		return 0, err
	}
	return report.Summarize(bench.DefaultQTasks, bench.DefaultCTasks, samples).Score, nil
}
