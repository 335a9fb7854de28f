package route

import (
	"maps"
	"slices"
	"strings"
)

// Node is one entry of a route tree.
// A child whose Path does not start with "/" is relative to its parent.
type Node struct {
	Path     string         `json:"path" yaml:"path"`
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Alias    []string       `json:"alias,omitempty" yaml:"alias,omitempty"`
	Children []Node         `json:"children,omitempty" yaml:"children,omitempty"`
	Redirect string         `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	File     string         `json:"file,omitempty" yaml:"file,omitempty"`
	Meta     map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	c := n
	c.Alias = slices.Clone(n.Alias)
	c.Meta = maps.Clone(n.Meta)
	if n.Children != nil {
		c.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// IsRelative reports whether the path is resolved against a parent route.
func (n Node) IsRelative() bool {
	return !strings.HasPrefix(n.Path, "/")
}

// CloneAll deep-copies a route list.
func CloneAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
