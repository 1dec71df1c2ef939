package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/jemi"
)

const defaultNodes = 1024

// fileConfig is the YAML layout of --config.file.
type fileConfig struct {
	Nodes     int    `yaml:"nodes"`
	LogLevel  string `yaml:"log_level"`
	Terminate bool   `yaml:"terminate"`
}

// config holds the global flags. Values set on the command line win over
// the config file.
type config struct {
	file      string
	nodes     int
	logLevel  string
	terminate bool

	nodesSet, logLevelSet, terminateSet bool

	stderr io.Writer
}

func (c *config) registerFlags(app *kingpin.Application) {
	app.Flag("config.file", "YAML file with nodes, log_level and terminate settings.").StringVar(&c.file)
	app.Flag("nodes", "Number of node slots in the arena.").Default("1024").IsSetByUser(&c.nodesSet).IntVar(&c.nodes)
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").IsSetByUser(&c.logLevelSet).EnumVar(&c.logLevel, "debug", "info", "warn", "error")
	app.Flag("terminate", "Write a NUL byte after the document.").IsSetByUser(&c.terminateSet).BoolVar(&c.terminate)
}

// load merges the config file, if any, under the command-line flags.
func (c *config) load() error {
	if c.file == "" {
		return c.check()
	}
	buf, err := os.ReadFile(c.file)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return errors.Wrapf(err, "parse config file %s", c.file)
	}
	if !c.nodesSet && fc.Nodes != 0 {
		c.nodes = fc.Nodes
	}
	if !c.logLevelSet && fc.LogLevel != "" {
		c.logLevel = fc.LogLevel
	}
	if !c.terminateSet && fc.Terminate {
		c.terminate = true
	}
	return c.check()
}

func (c *config) check() error {
	if c.nodes <= 0 {
		return errors.Errorf("nodes must be positive, got %d", c.nodes)
	}
	return nil
}

func (c *config) logger() (log.Logger, error) {
	var opt level.Option
	switch c.logLevel {
	case "debug":
		opt = level.AllowDebug()
	case "info", "":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level %q", c.logLevel)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(c.stderr))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

// newArena allocates the backing slots once and builds the arena over them.
func (c *config) newArena(logger log.Logger, opts ...jemi.Option) *jemi.Arena {
	slots := make([]jemi.Slot, c.nodes)
	return jemi.NewArena(slots, append([]jemi.Option{jemi.WithLogger(logger)}, opts...)...)
}
