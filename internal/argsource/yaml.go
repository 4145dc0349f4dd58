package argsource

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vangoframework/clsx/pkg/clsx"
)

// YAML tags beyond the core schema.
const (
	TagSymbol   = "!sym" // a symbol argument
	TagCallable = "!fn"  // a callable; never produces a class
)

// Alias expansion limits. A decoded document may hold at most
// aliasRatio times as many nodes as its source, and never less than
// minNodeBudget.
const (
	aliasRatio    = 10
	minNodeBudget = 4096
)

// yamlDecoder converts nodes while charging every produced node, aliases
// expanded, against a budget.
type yamlDecoder struct {
	budget int
}

// DecodeYAML decodes a YAML document. Mapping keys may be any node,
// including sequences and mappings, and keep their document order. An
// empty document is an empty argument list.
func DecodeYAML(data []byte) ([]clsx.Arg, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	d := &yamlDecoder{budget: max(minNodeBudget, aliasRatio*countNodes(root))}
	if root.Kind == yaml.SequenceNode && root.Tag != TagCallable {
		return d.elems(root)
	}
	arg, err := d.arg(root)
	if err != nil {
		return nil, err
	}
	return []clsx.Arg{arg}, nil
}

// countNodes counts the nodes of the source document without following
// aliases.
func countNodes(n *yaml.Node) int {
	total := 1
	for _, c := range n.Content {
		total += countNodes(c)
	}
	return total
}

func (d *yamlDecoder) arg(n *yaml.Node) (clsx.Arg, error) {
	d.budget--
	if d.budget < 0 {
		return clsx.Arg{}, fmt.Errorf("%w: line %d: alias expansion exceeds %d times the document size", ErrInvalid, n.Line, aliasRatio)
	}

	if n.Tag == TagCallable {
		return clsx.Func(n.Value), nil
	}

	switch n.Kind {
	case yaml.AliasNode:
		return d.arg(n.Alias)
	case yaml.SequenceNode:
		elems, err := d.elems(n)
		if err != nil {
			return clsx.Arg{}, err
		}
		return clsx.Seq(elems...), nil
	case yaml.MappingNode:
		return d.mapping(n)
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return clsx.Arg{}, fmt.Errorf("%w: line %d: unexpected node", ErrInvalid, n.Line)
}

func (d *yamlDecoder) elems(n *yaml.Node) ([]clsx.Arg, error) {
	args := make([]clsx.Arg, 0, len(n.Content))
	for _, c := range n.Content {
		a, err := d.arg(c)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

func (d *yamlDecoder) mapping(n *yaml.Node) (clsx.Arg, error) {
	entries := make([]clsx.Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, err := d.arg(n.Content[i])
		if err != nil {
			return clsx.Arg{}, err
		}
		value, err := d.arg(n.Content[i+1])
		if err != nil {
			return clsx.Arg{}, err
		}
		entries = append(entries, clsx.Entry{Key: key, Value: value})
	}
	return clsx.Mapping(entries...), nil
}

func yamlScalar(n *yaml.Node) (clsx.Arg, error) {
	switch n.ShortTag() {
	case "!!null":
		return clsx.Nil(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return clsx.Arg{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		return clsx.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return clsx.Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return clsx.Uint(u), nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return clsx.Arg{}, fmt.Errorf("%w: line %d: bad integer %q", ErrInvalid, n.Line, n.Value)
		}
		return clsx.Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return clsx.Arg{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		return clsx.Float(f), nil
	case "!!str", "!!binary", "!!timestamp":
		return clsx.Str(n.Value), nil
	case TagSymbol:
		return clsx.Sym(n.Value), nil
	}
	return clsx.Arg{}, fmt.Errorf("%w: line %d: unsupported tag %s", ErrInvalid, n.Line, n.Tag)
}
