// Package report aggregates run samples into the final qmark figures and
// renders them for humans or machines.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"qmark/pkg/protocol/codec"
)

// Summary holds the aggregated result of one benchmark sweep. Times are in
// seconds.
type Summary struct {
	QTasks  int       `json:"qtasks" cbor:"qtasks"`
	CTasks  int       `json:"ctasks" cbor:"ctasks"`
	Samples []float64 `json:"samples" cbor:"samples"`
	Mean    float64   `json:"mean" cbor:"mean"`
	Stdev   float64   `json:"stdev" cbor:"stdev"`
	Score   int       `json:"qmark" cbor:"qmark"`
}

// Summarize computes mean, population standard deviation and the qmark
// score floor(1000/mean) over the given samples. samples must be non-empty;
// elapsed time of a real run is always positive.
func Summarize(numQTasks, numCTasks int, samples []time.Duration) Summary {
	s := Summary{
		QTasks:  numQTasks,
		CTasks:  numCTasks,
		Samples: make([]float64, len(samples)),
	}
	var sum float64
	for i, d := range samples {
		s.Samples[i] = d.Seconds()
		sum += s.Samples[i]
	}
	n := float64(len(samples))
	s.Mean = sum / n
	var sq float64
	for _, x := range s.Samples {
		sq += (x - s.Mean) * (x - s.Mean)
	}
	s.Stdev = math.Sqrt(sq / n)
	s.Score = int(math.Floor(1000.0 / s.Mean))
	return s
}

// Render writes the fixed-format human-readable report.
func (s Summary) Render(w io.Writer) error {
	times := make([]string, len(s.Samples))
	for i, x := range s.Samples {
		times[i] = fmt.Sprintf("%07.3f", x)
	}
	_, err := fmt.Fprintf(w,
		"Simple CPU benchmark test\n"+
			"   number of qtasks: %d\n"+
			"   number of ctasks: %d\n"+
			"   results [s]:      %s\n"+
			"   average [s]:      %07.3f\n"+
			"   stdev   [s]:      %07.3f\n"+
			"   qmark:            %d\n",
		s.QTasks, s.CTasks, strings.Join(times, " "), s.Mean, s.Stdev, s.Score)
	return err
}

// Marshal serializes the summary with the codec registered for contentType.
func (s Summary) Marshal(contentType string, reg *codec.Registry) ([]byte, error) {
	c := reg.Get(contentType)
	if c == nil {
		return nil, fmt.Errorf("report: no codec for %q", contentType)
	}
	return c.Marshal(s)
}
