package main

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/jemi"
)

type rgb struct {
	name    string
	r, g, b float64
}

var palette = []rgb{
	{"yellow", 255, 255, 0},
	{"cyan", 0, 255, 255},
	{"magenta", 255, 0, 255},
}

// demoCommand prints the same document built three different ways.
type demoCommand struct {
	cfg *config
	out io.Writer
}

func (cmd *demoCommand) run(_ *kingpin.ParseContext) error {
	if err := cmd.cfg.load(); err != nil {
		return err
	}
	logger, err := cmd.cfg.logger()
	if err != nil {
		return err
	}
	a := cmd.cfg.newArena(logger)

	builds := []struct {
		name  string
		build func(*jemi.Arena) jemi.Node
	}{
		{"nested", colorsNested},
		{"piecewise", colorsPiecewise},
		{"template", colorsFromTemplate},
	}
	for _, b := range builds {
		a.Reset()
		root := b.build(a)
		if root.IsNil() {
			return errors.Errorf("%s: arena of %d nodes is too small", b.name, a.Capacity())
		}
		if err := emitLine(a, root, cmd.out, cmd.cfg.terminate); err != nil {
			return errors.Wrap(err, b.name)
		}
		level.Debug(logger).Log("msg", "emitted demo document", "build", b.name, "nodes", a.InUse())
	}
	return nil
}

// colorsNested builds the whole document in one expression.
func colorsNested(a *jemi.Arena) jemi.Node {
	return a.Object(
		a.String("colors"),
		a.Object(
			a.String("yellow"),
			a.Array(a.Float(255), a.Float(255), a.Float(0)),
			a.String("cyan"),
			a.Array(a.Float(0), a.Float(255), a.Float(255)),
			a.String("magenta"),
			a.Array(a.Float(255), a.Float(0), a.Float(255)),
		),
	)
}

// colorsPiecewise builds from the inside out with the append calls.
func colorsPiecewise(a *jemi.Arena) jemi.Node {
	obj := a.Object()
	for _, c := range palette {
		arr := a.Array()
		a.AppendArray(arr, a.Float(c.r))
		a.AppendArray(arr, a.Float(c.g))
		a.AppendArray(arr, a.Float(c.b))
		a.AppendMember(obj, c.name, arr)
	}
	root := a.Object()
	return a.AppendMember(root, "colors", obj)
}

// colorsFromTemplate mutates one key/value template and snapshots it into
// the target object once per color.
func colorsFromTemplate(a *jemi.Arena) jemi.Node {
	name := a.String("")
	r, g, b := a.Float(0), a.Float(0), a.Float(0)
	template := a.List(name, a.Array(r, g, b))

	obj := a.Object()
	for _, c := range palette {
		a.SetString(name, c.name)
		a.SetFloat(r, c.r)
		a.SetFloat(g, c.g)
		a.SetFloat(b, c.b)
		a.AppendObject(obj, a.Copy(template))
	}
	return a.Object(a.String("colors"), obj)
}

func emitLine(a *jemi.Arena, root jemi.Node, w io.Writer, terminate bool) error {
	s := jemi.NewWriterSink(w)
	a.Emit(root, s)
	if terminate {
		s.Put(0)
	} else {
		s.Put('\n')
	}
	return s.Flush()
}

func addDemoCommand(app *kingpin.Application, cfg *config, out io.Writer) {
	cmd := &demoCommand{cfg: cfg, out: out}
	app.Command("demo", "Print the colors document built nested, piecewise and from a template.").Action(cmd.run)
}
