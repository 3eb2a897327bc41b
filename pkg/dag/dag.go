package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist. [FromRegistry] relies on it to drop dangling course
	// references.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrGraphHasCycle is returned by [DAG.Validate] when the prerequisite
	// edges form a directed cycle.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes or the graph.
// Metadata maps are never nil after AddNode or New.
type Metadata map[string]any

// EdgeKind distinguishes the course relationships an edge can represent.
type EdgeKind int

const (
	// EdgePrerequisite points from a course to a course that must be
	// completed before it.
	EdgePrerequisite EdgeKind = iota
	// EdgeCorequisite points from a course to a course that must be taken
	// alongside it (or earlier).
	EdgeCorequisite
)

// String returns "prerequisite" or "corequisite".
func (k EdgeKind) String() string {
	if k == EdgeCorequisite {
		return "corequisite"
	}
	return "prerequisite"
}

// Node is a vertex in the course graph.
type Node struct {
	ID   string   // Course ID
	Meta Metadata // Display data (code, name, year, semester)
}

// Edge is a directed relationship From a course To the course it requires.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}

// DAG is a directed graph of courses. Despite the name, cycles can be
// represented (catalog data is not trusted); [DAG.Validate] and
// [DAG.FindCycle] detect them.
//
// Nodes and edges are kept in insertion order so that every query is
// deterministic. The zero value is not usable; use [New].
// DAG is not safe for concurrent mutation; it is safe for concurrent reads
// once built.
type DAG struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]Edge
	incoming map[string][]Edge
	meta     Metadata
}

// New creates an empty graph with optional graph-level metadata.
func New(meta Metadata) *DAG {
	if meta == nil {
		meta = Metadata{}
	}
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]Edge),
		incoming: make(map[string][]Edge),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map.
func (d *DAG) Meta() Metadata { return d.meta }

// AddNode adds a node. Returns ErrInvalidNodeID for an empty ID or
// ErrDuplicateNodeID if the ID is already present.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	d.nodes[n.ID] = &n
	d.order = append(d.order, n.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Returns
// ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is missing.
// Self-loops and parallel edges are accepted; they are data problems that
// [DAG.FindCycle] and package lint report.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e)
	d.incoming[e.To] = append(d.incoming[e.To], e)
	return nil
}

// Node returns the node with the given ID and true, or nil and false.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, len(d.order))
	for i, id := range d.order {
		nodes[i] = d.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the targets of id's outgoing edges of the given kind, in
// insertion order. For prerequisite edges these are the course's direct
// prerequisites.
func (d *DAG) Children(id string, kind EdgeKind) []string {
	var out []string
	for _, e := range d.outgoing[id] {
		if e.Kind == kind {
			out = append(out, e.To)
		}
	}
	return out
}

// Parents returns the sources of id's incoming edges of the given kind, in
// insertion order. For prerequisite edges these are the courses that require
// id.
func (d *DAG) Parents(id string, kind EdgeKind) []string {
	var out []string
	for _, e := range d.incoming[id] {
		if e.Kind == kind {
			out = append(out, e.From)
		}
	}
	return out
}

// OutDegree returns the number of outgoing edges of the given kind.
func (d *DAG) OutDegree(id string, kind EdgeKind) int { return len(d.Children(id, kind)) }

// InDegree returns the number of incoming edges of the given kind.
func (d *DAG) InDegree(id string, kind EdgeKind) int { return len(d.Parents(id, kind)) }

// Sources returns nodes that no other course lists as a prerequisite, in
// insertion order. In a curriculum these are terminal courses.
func (d *DAG) Sources() []*Node {
	var out []*Node
	for _, id := range d.order {
		if d.InDegree(id, EdgePrerequisite) == 0 {
			out = append(out, d.nodes[id])
		}
	}
	return out
}

// Sinks returns nodes without prerequisites, in insertion order. In a
// curriculum these are entry-level courses.
func (d *DAG) Sinks() []*Node {
	var out []*Node
	for _, id := range d.order {
		if d.OutDegree(id, EdgePrerequisite) == 0 {
			out = append(out, d.nodes[id])
		}
	}
	return out
}

// Validate returns ErrGraphHasCycle if the prerequisite edges contain a
// directed cycle (including a self-loop), nil otherwise.
func (d *DAG) Validate() error {
	if d.FindCycle() != nil {
		return ErrGraphHasCycle
	}
	return nil
}

// FindCycle returns the node IDs of one prerequisite cycle, starting and
// ending with the same ID, or nil if the prerequisite edges are acyclic.
func (d *DAG) FindCycle() []string {
	cycles := d.Cycles()
	if len(cycles) == 0 {
		return nil
	}
	return cycles[0]
}

// Cycles returns one cycle per back edge found by a depth-first search over
// prerequisite edges. Each cycle starts and ends with the same ID; a
// self-loop is reported as [id id]. Not every elementary cycle is listed,
// but the result is empty if and only if the prerequisite edges are
// acyclic.
//
// Detection runs in O(N+E) using white/gray/black coloring. Nodes are
// visited in insertion order so the result is deterministic.
func (d *DAG) Cycles() [][]string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var stack []string
	var cycles [][]string

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		stack = append(stack, id)
		for _, child := range d.Children(id, EdgePrerequisite) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				start := slices.Index(stack, child)
				cycles = append(cycles, append(slices.Clone(stack[start:]), child))
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, id := range d.order {
		if color[id] == white {
			dfs(id)
		}
	}
	return cycles
}
