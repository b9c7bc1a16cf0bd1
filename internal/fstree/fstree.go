// Package fstree is an arena-backed directory tree with cached size
// rollups. Nodes refer to each other by index into the arena; the root is
// always index 0.
package fstree

import "aoc2022/internal/puzzle"

// Root is the index of the root directory.
const Root = 0

// Kind distinguishes directories from files.
type Kind int

const (
	Dir Kind = iota
	File
)

// Node is one entry in the tree.
type Node struct {
	Name     string
	Kind     Kind
	Size     uint64 // own size; zero for directories
	Parent   int    // -1 for the root
	Children []int

	total  uint64
	cached bool
}

// Tree owns every node.
type Tree struct {
	nodes []Node
}

// New returns a tree holding only the root directory "/".
func New() *Tree {
	return &Tree{nodes: []Node{{Name: "/", Kind: Dir, Parent: -1}}}
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a copy of node i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Child resolves name inside directory i. ".." yields the parent and "/"
// the root.
func (t *Tree) Child(i int, name string) (int, error) {
	switch name {
	case "/":
		return Root, nil
	case "..":
		if p := t.nodes[i].Parent; p >= 0 {
			return p, nil
		}
		return 0, puzzle.Logicf("cd", "%q has no parent", t.nodes[i].Name)
	}
	for _, c := range t.nodes[i].Children {
		if t.nodes[c].Name == name {
			return c, nil
		}
	}
	return 0, puzzle.Logicf("cd", "no entry %q in %q", name, t.Path(i))
}

// AddChild adds an entry under directory parent and returns its index. An
// entry with the same name is returned as is, so a repeated listing does
// not duplicate nodes.
func (t *Tree) AddChild(parent int, name string, kind Kind, size uint64) (int, error) {
	if t.nodes[parent].Kind != Dir {
		return 0, puzzle.Logicf("add", "%q is not a directory", t.Path(parent))
	}
	for _, c := range t.nodes[parent].Children {
		if t.nodes[c].Name == name {
			if t.nodes[c].Kind != kind {
				return 0, puzzle.Logicf("add", "%q listed as both file and directory", name)
			}
			return c, nil
		}
	}
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{Name: name, Kind: kind, Size: size, Parent: parent})
	t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	t.invalidate(parent)
	return idx, nil
}

// invalidate clears cached totals from i up to the root.
func (t *Tree) invalidate(i int) {
	for ; i >= 0 && t.nodes[i].cached; i = t.nodes[i].Parent {
		t.nodes[i].cached = false
	}
}

// TotalSize returns the own size of node i plus the totals of all its
// descendants. Results are cached per node.
func (t *Tree) TotalSize(i int) uint64 {
	n := &t.nodes[i]
	if n.cached {
		return n.total
	}
	total := n.Size
	for _, c := range n.Children {
		total += t.TotalSize(c)
	}
	n = &t.nodes[i]
	n.total, n.cached = total, true
	return total
}

// Dirs returns the indices of every directory, root first.
func (t *Tree) Dirs() []int {
	var out []int
	for i, n := range t.nodes {
		if n.Kind == Dir {
			out = append(out, i)
		}
	}
	return out
}

// Path returns the slash-separated path of node i.
func (t *Tree) Path(i int) string {
	if i == Root {
		return "/"
	}
	var parts []string
	for ; i != Root; i = t.nodes[i].Parent {
		parts = append(parts, t.nodes[i].Name)
	}
	path := ""
	for k := len(parts) - 1; k >= 0; k-- {
		path += "/" + parts[k]
	}
	return path
}
