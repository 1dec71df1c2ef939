package main

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/jemi"
)

// statsCommand prints how much of the arena a document needs.
type statsCommand struct {
	cfg  *config
	in   io.Reader
	out  io.Writer
	file string
}

func (cmd *statsCommand) run(_ *kingpin.ParseContext) error {
	if err := cmd.cfg.load(); err != nil {
		return err
	}
	logger, err := cmd.cfg.logger()
	if err != nil {
		return err
	}
	a := cmd.cfg.newArena(logger)
	if _, err := decodeInput(a, cmd.file, cmd.in); err != nil {
		return err
	}

	m := a.Metrics()
	slotSize := uint64(unsafe.Sizeof(jemi.Slot{}))
	_, err = fmt.Fprintf(cmd.out,
		"%s: nodes: %d/%d, free: %d, utilization: %.1f%%, arena size: %s, used: %s\n",
		displayName(cmd.file),
		m.InUse, m.Capacity, m.Available,
		m.Utilization*100,
		humanize.IBytes(slotSize*uint64(m.Capacity)),
		humanize.IBytes(slotSize*uint64(m.InUse)),
	)
	return errors.Wrap(err, "write stats")
}

func addStatsCommand(app *kingpin.Application, cfg *config, in io.Reader, out io.Writer) {
	cmd := &statsCommand{cfg: cfg, in: in, out: out}
	c := app.Command("stats", "Print arena usage for a YAML or JSON document.").Action(cmd.run)
	c.Arg("file", "Input file, stdin when omitted or -.").StringVar(&cmd.file)
}
