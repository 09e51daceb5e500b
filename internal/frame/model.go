package frame

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/nscp"
	"github.com/alexiusacademia/gosdm/internal/stiffness"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

// model is a validated request in solver form.
type model struct {
	nodes       []Node
	members     []member
	nodal       []float64 // global nodal loads by DOF
	dofs        *dofTable
	combination *nscp.LoadCombination
}

type member struct {
	id           string
	start, end   int // node indices
	props        stiffness.Properties
	dx, dy       float64
	length       float64
	releaseStart bool
	releaseEnd   bool
	loads        []load.Load
}

// build validates req and converts it. Every check runs before any matrix
// is allocated.
func build(req *Request) (*model, error) {
	if req == nil {
		return nil, &structure.ValidationError{Msg: "empty request"}
	}
	if err := structure.CheckTags(req); err != nil {
		return nil, err
	}

	m := &model{nodes: req.Nodes}
	if req.Combination != "" {
		lc, ok := nscp.Lookup(req.Combination)
		if !ok {
			return nil, structure.Invalid("request", "combination", "unknown NSCP load combination %q", req.Combination)
		}
		m.combination = &lc
	}

	if err := checkNodes(req.Nodes); err != nil {
		return nil, err
	}
	m.dofs = newDOFTable(req.Nodes)

	byID := make(map[string]int, len(req.Members))
	for i := range req.Members {
		mem, err := m.buildMember(&req.Members[i])
		if err != nil {
			return nil, err
		}
		if _, dup := byID[mem.id]; dup {
			return nil, structure.Invalid("member "+mem.id, "id", "is not unique")
		}
		byID[mem.id] = len(m.members)
		m.dofs.addMember(mem.start, mem.end)
		m.members = append(m.members, mem)
	}
	if err := checkConnected(m); err != nil {
		return nil, err
	}

	m.nodal = make([]float64, m.dofs.size)
	for i, pl := range req.PointLoads {
		if err := m.addPointLoad(i, pl, byID); err != nil {
			return nil, err
		}
	}
	for i, ul := range req.UniformLoads {
		entity := fmt.Sprintf("uniform load %d", i+1)
		idx, ok := byID[ul.MemberID]
		if !ok {
			return nil, structure.Invalid(entity, "memberId", "references unknown member %q", ul.MemberID)
		}
		f, err := m.factor(entity, ul.Case)
		if err != nil {
			return nil, err
		}
		m.members[idx].loads = append(m.members[idx].loads, load.Uniform{W: f * ul.MagnitudeY, Axial: f * ul.MagnitudeX})
	}
	return m, nil
}

// checkConnected rejects nodes that no member frames into.
func checkConnected(m *model) error {
	used := make([]bool, len(m.nodes))
	for _, mem := range m.members {
		used[mem.start] = true
		used[mem.end] = true
	}
	for i, ok := range used {
		if !ok {
			return structure.Invalid("node "+m.nodes[i].ID, "id", "is not connected to any member")
		}
	}
	return nil
}

func checkNodes(nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	var fixX, fixY, restrained int
	for _, n := range nodes {
		if seen[n.ID] {
			return structure.Invalid("node "+n.ID, "id", "is not unique")
		}
		seen[n.ID] = true
		if n.FixX {
			fixX++
		}
		if n.FixY {
			fixY++
		}
		for _, r := range []bool{n.FixX, n.FixY, n.FixRotation} {
			if r {
				restrained++
			}
		}
	}

	// A planar body has three rigid-body modes.
	switch {
	case fixX == 0:
		return structure.Invalid("supports", "fixX", "no node restrains x translation; the frame can slide horizontally")
	case fixY == 0:
		return structure.Invalid("supports", "fixY", "no node restrains y translation; the frame can slide vertically")
	case restrained < 3:
		return structure.Invalid("supports", "restraints", "only %d DOF restrained; at least 3 are needed to prevent rigid-body motion", restrained)
	}
	return nil
}

func (m *model) buildMember(in *Member) (member, error) {
	entity := "member " + in.ID
	start, ok := m.dofs.nodeIndex[in.StartNodeID]
	if !ok {
		return member{}, structure.Invalid(entity, "startNodeId", "references unknown node %q", in.StartNodeID)
	}
	end, ok := m.dofs.nodeIndex[in.EndNodeID]
	if !ok {
		return member{}, structure.Invalid(entity, "endNodeId", "references unknown node %q", in.EndNodeID)
	}
	if start == end {
		return member{}, structure.Invalid(entity, "endNodeId", "starts and ends at node %q", in.StartNodeID)
	}

	mem := member{
		id:           in.ID,
		start:        start,
		end:          end,
		dx:           m.nodes[end].X - m.nodes[start].X,
		dy:           m.nodes[end].Y - m.nodes[start].Y,
		releaseStart: in.ReleaseStart,
		releaseEnd:   in.ReleaseEnd,
		props:        stiffness.Properties{E: in.ElasticModulus, A: in.CrossSectionArea, I: in.MomentOfInertia},
	}
	mem.length = math.Hypot(mem.dx, mem.dy)
	if mem.length == 0 {
		return member{}, structure.Invalid(entity, "length", "is zero; nodes %q and %q coincide", in.StartNodeID, in.EndNodeID)
	}

	if in.Section != nil && (mem.props.I == 0 || mem.props.A == 0) {
		if err := in.Section.Validate(); err != nil {
			return member{}, fmt.Errorf("%s: %w", entity, err)
		}
		sp := in.Section.CalculateProperties()
		if mem.props.I == 0 {
			mem.props.I = sp.Ix
		}
		if mem.props.A == 0 {
			mem.props.A = sp.Area
		}
	}
	if mem.props.I <= 0 {
		return member{}, structure.Invalid(entity, "momentOfInertia", "must be positive (or give a section)")
	}
	if mem.props.A <= 0 {
		return member{}, structure.Invalid(entity, "crossSectionArea", "must be positive (or give a section)")
	}
	return mem, nil
}

func (m *model) addPointLoad(i int, pl PointLoad, members map[string]int) error {
	entity := fmt.Sprintf("point load %d", i+1)
	f, err := m.factor(entity, pl.Case)
	if err != nil {
		return err
	}

	switch pl.Type {
	case NodeLoad:
		n, ok := m.dofs.nodeIndex[pl.TargetID]
		if !ok {
			return structure.Invalid(entity, "targetId", "references unknown node %q", pl.TargetID)
		}
		m.nodal[m.dofs.node(n, UX)] += f * pl.MagnitudeX
		m.nodal[m.dofs.node(n, UY)] += f * pl.MagnitudeY
		m.nodal[m.dofs.node(n, RZ)] += f * pl.Moment
	case MemberPointLoad:
		idx, ok := members[pl.TargetID]
		if !ok {
			return structure.Invalid(entity, "targetId", "references unknown member %q", pl.TargetID)
		}
		mem := &m.members[idx]
		a := mem.length / 2
		if pl.Position != nil {
			a = *pl.Position
		}
		loads := []load.Load{load.Point{P: f * pl.MagnitudeY, Axial: f * pl.MagnitudeX, A: a}}
		if pl.Moment != 0 {
			loads = append(loads, load.Couple{M: f * pl.Moment, A: a})
		}
		for _, l := range loads {
			if err := load.Validate(entity, l, mem.length); err != nil {
				return err
			}
		}
		mem.loads = append(mem.loads, loads...)
	default:
		return structure.Invalid(entity, "type", "unknown point load type %q", pl.Type)
	}
	return nil
}

// factor is the combination factor for a load case; 1 without a combination.
func (m *model) factor(entity, c string) (float64, error) {
	if c == "" {
		return 1, nil
	}
	lc, err := nscp.ParseCase(c)
	if err != nil {
		return 0, structure.Invalid(entity, "case", "%v", err)
	}
	if m.combination == nil {
		return 1, nil
	}
	return m.combination.Factor(lc), nil
}
