// Package menugraph is the bundled graph editor for bot menus: a node/port
// graph of menu items, documents and FAQ entries, convertible to and from the
// bot_data.json format the Telegram bot reads.
package menugraph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

type NodeKind string

const (
	KindMenuItem NodeKind = "menu_item"
	KindDocument NodeKind = "document"
	KindFAQ      NodeKind = "faq_item"
)

const (
	PortParent    = "parent_menu"
	PortSubMenu   = "sub_menu"
	PortDocuments = "documents"
)

var (
	ErrUnknownKind = errors.New("unknown node kind")
	ErrUnknownNode = errors.New("unknown node")
	ErrUnknownPort = errors.New("unknown port")
	ErrSelfLoop    = errors.New("node cannot connect to itself")
	ErrInputTaken  = errors.New("input port already connected")
	ErrCycle       = errors.New("connection would create a cycle")
	ErrDuplicateID = errors.New("duplicate node id")
)

func (k NodeKind) Valid() bool {
	switch k {
	case KindMenuItem, KindDocument, KindFAQ:
		return true
	}
	return false
}

func (k NodeKind) Inputs() []string {
	switch k {
	case KindMenuItem, KindDocument:
		return []string{PortParent}
	}
	return nil
}

func (k NodeKind) Outputs() []string {
	if k == KindMenuItem {
		return []string{PortSubMenu, PortDocuments}
	}
	return nil
}

// Params lists the editable parameters a node of kind k carries.
func (k NodeKind) Params() []string {
	switch k {
	case KindMenuItem:
		return []string{"callback_data", "description", "url", "text_content", "data"}
	case KindDocument:
		return []string{"callback_data", "url"}
	case KindFAQ:
		return []string{"answer", "tags"}
	}
	return nil
}

type Node struct {
	ID     string
	Kind   NodeKind
	Title  string
	Params map[string]string
	X, Y   int
}

func (n *Node) Param(key string) string {
	if n == nil || n.Params == nil {
		return ""
	}
	return n.Params[key]
}

func (n *Node) SetParam(key, value string) {
	if n.Params == nil {
		n.Params = map[string]string{}
	}
	n.Params[key] = value
}

type Connection struct {
	FromNode string
	FromPort string
	ToNode   string
	ToPort   string
}

// Graph keeps nodes and connections in insertion order, which is also the
// order menus are exported in.
type Graph struct {
	Title string
	nodes []*Node
	index map[string]*Node
	conns []Connection
}

func New() *Graph {
	return &Graph{index: map[string]*Node{}}
}

func (g *Graph) Len() int { return len(g.nodes) }

// AddNode creates a node with a fresh id and empty parameters for its kind.
func (g *Graph) AddNode(kind NodeKind, title string, x, y int) (*Node, error) {
	n := &Node{ID: uuid.NewString(), Kind: kind, Title: title, X: x, Y: y, Params: map[string]string{}}
	for _, p := range kind.Params() {
		n.Params[p] = ""
	}
	if err := g.Insert(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Insert adds an already identified node, as read back from storage.
func (g *Graph) Insert(n *Node) error {
	if !n.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
	if _, exists := g.index[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	if n.Params == nil {
		n.Params = map[string]string{}
	}
	g.nodes = append(g.nodes, n)
	g.index[n.ID] = n
	return nil
}

// Connect links an output port of from to an input port of to. An input
// port takes at most one connection, and to may not be an ancestor of from,
// so every menu item stays reachable from Roots.
func (g *Graph) Connect(from, fromPort, to, toPort string) error {
	src, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, from)
	}
	dst, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, to)
	}
	if from == to {
		return ErrSelfLoop
	}
	if !slices.Contains(src.Kind.Outputs(), fromPort) {
		return fmt.Errorf("%w: %s has no output %q", ErrUnknownPort, src.Kind, fromPort)
	}
	if !slices.Contains(dst.Kind.Inputs(), toPort) {
		return fmt.Errorf("%w: %s has no input %q", ErrUnknownPort, dst.Kind, toPort)
	}
	for _, c := range g.conns {
		if c.ToNode == to && c.ToPort == toPort {
			return fmt.Errorf("%w: %s.%s", ErrInputTaken, to, toPort)
		}
	}
	if g.isAncestor(to, from) {
		return fmt.Errorf("%w: %s -> %s", ErrCycle, from, to)
	}
	g.conns = append(g.conns, Connection{FromNode: from, FromPort: fromPort, ToNode: to, ToPort: toPort})
	return nil
}

func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

func (g *Graph) Connections() []Connection {
	return slices.Clone(g.conns)
}

// Children returns the nodes wired to the given output port of id.
func (g *Graph) Children(id, port string) []*Node {
	var out []*Node
	for _, c := range g.conns {
		if c.FromNode == id && c.FromPort == port {
			out = append(out, g.index[c.ToNode])
		}
	}
	return out
}

func (g *Graph) Parent(id string) (*Node, bool) {
	for _, c := range g.conns {
		if c.ToNode == id && c.ToPort == PortParent {
			return g.index[c.FromNode], true
		}
	}
	return nil, false
}

// isAncestor reports whether anc is on the parent chain of id.
func (g *Graph) isAncestor(anc, id string) bool {
	for p, ok := g.Parent(id); ok; p, ok = g.Parent(p.ID) {
		if p.ID == anc {
			return true
		}
	}
	return false
}

// Roots returns the menu items that have no parent: the bot's main menu.
func (g *Graph) Roots() []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.Kind != KindMenuItem {
			continue
		}
		if _, ok := g.Parent(n.ID); !ok {
			out = append(out, n)
		}
	}
	return out
}

func (g *Graph) FAQ() []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.Kind == KindFAQ {
			out = append(out, n)
		}
	}
	return out
}
