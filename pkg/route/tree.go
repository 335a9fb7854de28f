package route

import "strings"

// Walk visits nodes in pre-order. Returning false from fn skips the
// node's children.
func Walk(nodes []Node, fn func(n Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(Node, int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(n.Children, depth+1, fn)
		}
	}
}

// Find returns the first node with the given name.
func Find(nodes []Node, name string) (Node, bool) {
	var (
		found Node
		ok    bool
	)
	Walk(nodes, func(n Node, _ int) bool {
		if ok {
			return false
		}
		if n.Name == name {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// Entry is a flattened route with an absolute path.
type Entry struct {
	Node   Node // Children is always nil
	Path   string
	Alias  []string
	Parent string // absolute path of the enclosing route, "" at the top level
}

// Flatten resolves every node to its absolute path.
func Flatten(nodes []Node) []Entry {
	var out []Entry
	flatten(nodes, "", &out)
	return out
}

func flatten(nodes []Node, parent string, out *[]Entry) {
	for _, n := range nodes {
		abs := Join(parent, n.Path)

		aliases := make([]string, 0, len(n.Alias))
		for _, a := range n.Alias {
			aliases = append(aliases, Join(parent, a))
		}

		leaf := n
		leaf.Children = nil
		*out = append(*out, Entry{Node: leaf, Path: abs, Alias: aliases, Parent: parent})

		flatten(n.Children, abs, out)
	}
}

// Join resolves p against parent. Absolute paths are returned unchanged.
func Join(parent, p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	if p == "" {
		if parent == "" {
			return "/"
		}
		return parent
	}
	return strings.TrimSuffix(parent, "/") + "/" + p
}
