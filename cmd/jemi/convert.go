package main

import (
	"bytes"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/pavanmanishd/jemi"
	"github.com/pavanmanishd/jemi/internal/yamltree"
)

// convertCommand re-emits a YAML or JSON document through the arena.
type convertCommand struct {
	cfg      *config
	in       io.Reader
	out      io.Writer
	file     string
	validate bool
	verify   bool
	metrics  bool
}

func (cmd *convertCommand) run(_ *kingpin.ParseContext) error {
	if err := cmd.cfg.load(); err != nil {
		return err
	}
	logger, err := cmd.cfg.logger()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	a := cmd.cfg.newArena(logger, jemi.WithPrometheus(jemi.NewPrometheusMetrics(reg)))

	root, err := decodeInput(a, cmd.file, cmd.in)
	if err != nil {
		return err
	}
	if cmd.validate {
		if err := a.Validate(root); err != nil {
			return errors.Wrap(err, "validate")
		}
	}

	var buf bytes.Buffer
	if err := emitLine(a, root, &buf, cmd.cfg.terminate); err != nil {
		return err
	}
	if cmd.verify && !jsoniter.Valid(bytes.TrimRight(buf.Bytes(), "\x00\n")) {
		return errors.New("emitted document is not valid JSON")
	}
	if _, err := cmd.out.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "write output")
	}

	level.Debug(logger).Log("msg", "converted document", "nodes", a.InUse(), "capacity", a.Capacity(), "bytes", buf.Len())
	if cmd.metrics {
		return logMetrics(logger, reg)
	}
	return nil
}

// decodeInput builds the document from file, or from in when file is empty or "-".
func decodeInput(a *jemi.Arena, file string, in io.Reader) (jemi.Node, error) {
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return jemi.Nil, errors.Wrap(err, "open input")
		}
		defer func() { _ = f.Close() }()
		in = f
	}
	root, err := yamltree.Decode(a, in)
	if err != nil {
		return jemi.Nil, errors.Wrapf(err, "build %s", displayName(file))
	}
	return root, nil
}

func displayName(file string) string {
	if file == "" || file == "-" {
		return "stdin"
	}
	return file
}

// logMetrics writes every gathered counter and gauge as one log line.
func logMetrics(logger log.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				v = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			level.Info(logger).Log("metric", mf.GetName(), "value", v)
		}
	}
	return nil
}

func addConvertCommand(app *kingpin.Application, cfg *config, in io.Reader, out io.Writer) {
	cmd := &convertCommand{cfg: cfg, in: in, out: out}
	c := app.Command("convert", "Re-emit a YAML or JSON document built in the arena.").Action(cmd.run)
	c.Flag("validate", "Reject documents the emitter would render as malformed JSON, such as non-finite floats. Use --no-validate to emit them as nan/inf.").Default("true").BoolVar(&cmd.validate)
	c.Flag("verify", "Check the emitted text parses as JSON.").BoolVar(&cmd.verify)
	c.Flag("metrics", "Log arena metrics after the conversion.").BoolVar(&cmd.metrics)
	c.Arg("file", "Input file, stdin when omitted or -.").StringVar(&cmd.file)
}
