package weak

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FromYAML lifts a YAML document into a Value. Mappings become Map, sequences
// become List, integers and floats become Number, strings and timestamps
// become Text, and null becomes Absent. An empty document is Absent. Only the
// first document of a stream is read.
//
// Aliases are expanded in place. A merge key ("<<") copies the entries of a
// mapping, or of each mapping in a sequence, that are not already present;
// explicit keys win, and earlier mappings in a sequence win over later ones.
// An anchor that contains an alias of itself is an error, and so is a
// document that expands aliases excessively.
//
// Booleans and other tags have no counterpart and result in a *LiftError.
func FromYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if doc.Kind == 0 {
		return Absent{}, nil
	}
	l := &yamlLifter{expanding: make(map[*yaml.Node]bool)}
	return l.lift(&doc, nil)
}

// Limits on alias expansion, as used by the YAML decoder itself. Small
// documents may consist almost entirely of expanded aliases; large ones may
// not.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(lifted int) float64 {
	switch {
	case lifted <= aliasRatioRangeLow:
		return 0.99
	case lifted >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(lifted-aliasRatioRangeLow)/aliasRatioRange)
	}
}

var errExcessiveAliasing = errors.New("document contains excessive aliasing")

type yamlLifter struct {
	// Anchored nodes whose aliases are being expanded.
	expanding  map[*yaml.Node]bool
	aliasDepth int
	// Number of nodes lifted, and how many of them were inside an alias.
	lifted, aliased int
}

func (l *yamlLifter) lift(n *yaml.Node, path []string) (Value, error) {
	l.lifted++
	if l.aliasDepth > 0 {
		l.aliased++
	}
	if l.aliased > 100 && l.lifted > 1000 &&
		float64(l.aliased)/float64(l.lifted) > allowedAliasRatio(l.lifted) {
		return nil, errExcessiveAliasing
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Absent{}, nil
		}
		return l.lift(n.Content[0], path)
	case yaml.AliasNode:
		if l.expanding[n.Alias] {
			return nil, fmt.Errorf("anchor %q value contains itself", n.Value)
		}
		l.expanding[n.Alias] = true
		l.aliasDepth++
		v, err := l.lift(n.Alias, path)
		l.aliasDepth--
		delete(l.expanding, n.Alias)
		return v, err
	case yaml.SequenceNode:
		elems := make([]Value, len(n.Content))
		for i, child := range n.Content {
			v, err := l.lift(child, appendPath(path, fmt.Sprint(i)))
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return List{elems}, nil
	case yaml.MappingNode:
		entries := make(map[string]Value, len(n.Content)/2)
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &LiftError{GoType: "YAML non-scalar key", Path: path}
			}
			if keyNode.ShortTag() == "!!merge" {
				merges = append(merges, valueNode)
				continue
			}
			v, err := l.lift(valueNode, appendPath(path, keyNode.Value))
			if err != nil {
				return nil, err
			}
			entries[keyNode.Value] = v
		}
		for _, m := range merges {
			if err := l.merge(entries, m, path); err != nil {
				return nil, err
			}
		}
		return Map{entries}, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n, path)
	}
	return nil, &LiftError{GoType: fmt.Sprintf("YAML node kind %d", n.Kind), Path: path}
}

// Adds the entries of the merge value n that are not yet in entries.
func (l *yamlLifter) merge(entries map[string]Value, n *yaml.Node, path []string) error {
	v, err := l.lift(n, appendPath(path, "<<"))
	if err != nil {
		return err
	}
	var maps []Map
	switch v := v.(type) {
	case Map:
		maps = []Map{v}
	case List:
		for _, elem := range v.elems {
			m, ok := elem.(Map)
			if !ok {
				return errBadMerge(path)
			}
			maps = append(maps, m)
		}
	default:
		return errBadMerge(path)
	}
	for _, m := range maps {
		for k, v := range m.entries {
			if _, ok := entries[k]; !ok {
				entries[k] = v
			}
		}
	}
	return nil
}

func errBadMerge(path []string) error {
	return fmt.Errorf("merge at %v requires a mapping or a sequence of mappings", path)
}

func fromYAMLScalar(n *yaml.Node, path []string) (Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!str", "!!timestamp":
		return Text(n.Value), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode %s at line %d: %w", tag, n.Line, err)
		}
		return Number(f), nil
	case "!!null":
		return Absent{}, nil
	default:
		return nil, &LiftError{GoType: "YAML " + tag, Path: path}
	}
}

// FromTOML lifts a TOML document into a Value. The document itself becomes a
// Map; see FromGo for how the decoded TOML values are lifted.
func FromTOML(data []byte) (Value, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	return FromGo(doc)
}
