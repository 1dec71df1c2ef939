package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		level.Error(log.NewLogfmtLogger(os.Stderr)).Log("msg", "jemi failed", "err", err)
		os.Exit(1)
	}
}

// newApp wires every command to the given streams.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("jemi", "Build JSON in a fixed node arena and stream it out.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	cfg := &config{stderr: stderr}
	cfg.registerFlags(app)

	addDemoCommand(app, cfg, stdout)
	addConvertCommand(app, cfg, stdin, stdout)
	addStatsCommand(app, cfg, stdin, stdout)
	return app
}
