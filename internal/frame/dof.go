package frame

import "github.com/alexiusacademia/gosdm/internal/linsolve"

// DOF offsets within a node.
const (
	UX = iota
	UY
	RZ
	dofsPerNode
)

// dofTable maps nodes and members to global DOF indices. It is built once
// per request and shared by assembly and recovery so both agree on the
// ordering: node n owns indices 3n, 3n+1, 3n+2.
type dofTable struct {
	size       int
	nodeIndex  map[string]int
	members    [][6]int
	restrained []bool
	free       []int
	fixed      []int
}

func newDOFTable(nodes []Node) *dofTable {
	t := &dofTable{
		size:       dofsPerNode * len(nodes),
		nodeIndex:  make(map[string]int, len(nodes)),
		restrained: make([]bool, dofsPerNode*len(nodes)),
	}
	for n, node := range nodes {
		t.nodeIndex[node.ID] = n
		t.restrained[t.node(n, UX)] = node.FixX
		t.restrained[t.node(n, UY)] = node.FixY
		t.restrained[t.node(n, RZ)] = node.FixRotation
	}
	t.free, t.fixed = linsolve.Partition(t.restrained)
	return t
}

// node returns the global index of DOF d of node n.
func (t *dofTable) node(n, d int) int { return dofsPerNode*n + d }

// addMember records the six DOFs of a member from start to end and returns
// its index.
func (t *dofTable) addMember(start, end int) int {
	t.members = append(t.members, [6]int{
		t.node(start, UX), t.node(start, UY), t.node(start, RZ),
		t.node(end, UX), t.node(end, UY), t.node(end, RZ),
	})
	return len(t.members) - 1
}

// gather picks the member's DOF values out of a global vector.
func (t *dofTable) gather(member int, u []float64) []float64 {
	out := make([]float64, 6)
	for i, g := range t.members[member] {
		out[i] = u[g]
	}
	return out
}
