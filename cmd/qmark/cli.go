package main

import "flag"

// Options holds CLI options for the benchmark.
type Options struct {
	ConfigPath string
	QTasks     int
	CTasks     int
	Runs       int
	Debug      bool
	Out        string
	Format     string
}

// ParseFlags parses CLI flags from args and returns Options. All flags are
// optional; the zero invocation runs the default sweep.
func ParseFlags(args []string) Options {
	fs := flag.NewFlagSet("qmark", flag.ExitOnError)
	var opts Options
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to YAML config file")
	fs.IntVar(&opts.QTasks, "qtasks", 0, "Number of queue micro servers (overrides config)")
	fs.IntVar(&opts.CTasks, "ctasks", 0, "Number of client tasks (overrides config)")
	fs.IntVar(&opts.Runs, "runs", 0, "Number of benchmark runs (overrides config)")
	fs.BoolVar(&opts.Debug, "debug", false, "Log every processed message (skews timing)")
	fs.StringVar(&opts.Out, "out", "", "Write a machine-readable summary to this file")
	fs.StringVar(&opts.Format, "format", "json", "Summary format: json or cbor")
	_ = fs.Parse(args)
	return opts
}
