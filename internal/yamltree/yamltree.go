// Package yamltree turns YAML (and therefore JSON) documents into jemi
// arena trees.
package yamltree

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/jemi"
)

var (
	// ErrArenaFull is returned when the arena runs out of slots mid-build.
	ErrArenaFull = errors.New("node arena exhausted")
	// ErrUnsupportedKey is returned for mapping keys that are not scalars.
	ErrUnsupportedKey = errors.New("unsupported mapping key")
	// ErrRecursiveAlias is returned for an alias inside its own anchor.
	ErrRecursiveAlias = errors.New("recursive alias")
)

// Decode reads one YAML document from r and builds it in a.
// An empty input yields Nil and no error.
func Decode(a *jemi.Arena, r io.Reader) (jemi.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return jemi.Nil, nil
		}
		return jemi.Nil, errors.Wrap(err, "decode yaml")
	}
	return Build(a, &doc)
}

// Build converts n into arena nodes. String payloads borrow the values held
// by n, so n must stay reachable while the tree is in use.
func Build(a *jemi.Arena, n *yaml.Node) (jemi.Node, error) {
	b := &builder{
		arena:    a,
		anchors:  map[*yaml.Node]jemi.Node{},
		building: map[*yaml.Node]bool{},
	}
	return b.build(n)
}

type builder struct {
	arena    *jemi.Arena
	anchors  map[*yaml.Node]jemi.Node
	building map[*yaml.Node]bool // anchored nodes whose content is still being built
}

func (b *builder) build(n *yaml.Node) (jemi.Node, error) {
	var (
		out jemi.Node
		err error
	)
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return jemi.Nil, nil
		}
		return b.build(n.Content[0])
	}
	if n.Anchor != "" {
		b.building[n] = true
		defer delete(b.building, n)
	}
	switch n.Kind {
	case yaml.AliasNode:
		out, err = b.alias(n)
	case yaml.MappingNode:
		out, err = b.mapping(n)
	case yaml.SequenceNode:
		out, err = b.sequence(n)
	case yaml.ScalarNode:
		out, err = b.scalar(n)
	default:
		return jemi.Nil, errors.Errorf("line %d: unknown yaml node kind %d", n.Line, n.Kind)
	}
	if err != nil {
		return jemi.Nil, err
	}
	if out.IsNil() {
		return jemi.Nil, b.full(n)
	}
	if n.Anchor != "" {
		b.anchors[n] = out
	}
	return out, nil
}

func (b *builder) alias(n *yaml.Node) (jemi.Node, error) {
	if b.building[n.Alias] {
		return jemi.Nil, errors.Wrapf(ErrRecursiveAlias, "line %d: *%s", n.Line, n.Value)
	}
	if built, ok := b.anchors[n.Alias]; ok {
		return b.arena.CopyValue(built), nil
	}
	return b.build(n.Alias)
}

func (b *builder) mapping(n *yaml.Node) (jemi.Node, error) {
	elems := make([]jemi.Node, 0, len(n.Content))
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return jemi.Nil, errors.Wrapf(ErrUnsupportedKey, "line %d", k.Line)
		}
		key := b.arena.String(k.Value)
		if key.IsNil() {
			return jemi.Nil, b.full(k)
		}
		val, err := b.build(v)
		if err != nil {
			return jemi.Nil, err
		}
		elems = append(elems, key, val)
	}
	return b.arena.Object(elems...), nil
}

func (b *builder) sequence(n *yaml.Node) (jemi.Node, error) {
	elems := make([]jemi.Node, 0, len(n.Content))
	for _, c := range n.Content {
		val, err := b.build(c)
		if err != nil {
			return jemi.Nil, err
		}
		elems = append(elems, val)
	}
	return b.arena.Array(elems...), nil
}

func (b *builder) scalar(n *yaml.Node) (jemi.Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return b.arena.Null(), nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return jemi.Nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return b.arena.Bool(v), nil
	case "!!int":
		var v int64
		if err := n.Decode(&v); err == nil {
			return b.arena.Integer(v), nil
		}
		// out of int64 range, keep the magnitude as a float
		fallthrough
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return jemi.Nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return b.arena.Float(v), nil
	default:
		return b.arena.String(n.Value), nil
	}
}

func (b *builder) full(n *yaml.Node) error {
	return errors.Wrapf(ErrArenaFull, "line %d: %d of %d nodes in use", n.Line, b.arena.InUse(), b.arena.Capacity())
}
