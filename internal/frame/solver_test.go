package frame

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosdm/internal/linsolve"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

const tol = 1e-6

func ptr(v float64) *float64 { return &v }

func steel(id, start, end string) Member {
	return Member{ID: id, StartNodeID: start, EndNodeID: end, ElasticModulus: 200e6, MomentOfInertia: 1e-4, CrossSectionArea: 0.01}
}

func fixed(id string, x, y float64) Node {
	return Node{ID: id, X: x, Y: y, FixX: true, FixY: true, FixRotation: true}
}

func pinned(id string, x, y float64) Node {
	return Node{ID: id, X: x, Y: y, FixX: true, FixY: true}
}

func portal() *Request {
	return &Request{
		Nodes: []Node{fixed("A", 0, 0), {ID: "B", X: 0, Y: 4}, {ID: "C", X: 6, Y: 4}, fixed("D", 6, 0)},
		Members: []Member{
			steel("AB", "A", "B"),
			steel("BC", "B", "C"),
			steel("CD", "C", "D"),
		},
		PointLoads:   []PointLoad{{Type: NodeLoad, TargetID: "B", MagnitudeX: 10}},
		UniformLoads: []UniformLoad{{MemberID: "BC", MagnitudeY: -12}},
	}
}

func TestStiffnessIsSymmetric(t *testing.T) {
	req := portal()
	req.Nodes = append(req.Nodes, Node{ID: "E", X: 9, Y: 7})
	req.Members = append(req.Members, steel("CE", "C", "E"))

	m, err := build(req)
	require.NoError(t, err)
	k, _ := assemble(m, elements(m))

	n, _ := k.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, k.At(i, j), k.At(j, i), 1e-6*math.Max(1, math.Abs(k.At(i, j))))
		}
	}
}

func TestFixedFixedUniformLoad(t *testing.T) {
	req := &Request{
		Nodes:        []Node{fixed("A", 0, 0), fixed("B", 6, 0)},
		Members:      []Member{steel("M1", "A", "B")},
		UniformLoads: []UniformLoad{{MemberID: "M1", MagnitudeY: -10}},
	}
	res, err := Analyze(req, Options{})
	require.NoError(t, err)

	f := res.Members[0].EndForces()
	assert.InDeltaSlice(t, []float64{0, 30, 30, 0, 30, -30}, f, tol)
	assert.InDeltaSlice(t, make([]float64, 6), res.Displacements, 1e-15)
	assert.InDeltaSlice(t, []float64{0, 30, 30, 0, 30, -30}, res.Reactions, tol)

	d := res.Members[0].Diagrams
	assert.InDelta(t, -30, d.Moment.Total[0], tol)
	assert.InDelta(t, 15, d.Moment.Total[len(d.X)/2], tol)
}

func TestProppedCantilever(t *testing.T) {
	req := &Request{
		Nodes:        []Node{fixed("A", 0, 0), pinned("B", 6, 0)},
		Members:      []Member{steel("M1", "A", "B")},
		UniformLoads: []UniformLoad{{MemberID: "M1", MagnitudeY: -10}},
	}
	res, err := Analyze(req, Options{})
	require.NoError(t, err)

	m := res.Members[0]
	assert.InDelta(t, 45, m.MomentStart, tol)
	assert.InDelta(t, 0, m.MomentEnd, tol)
	assert.InDelta(t, 37.5, m.ShearStart, tol)
	assert.InDelta(t, 22.5, m.ShearEnd, tol)
	assert.InDelta(t, 37.5, res.Nodes[0].ReactionY, tol)
	assert.InDelta(t, 45, res.Nodes[0].ReactionMoment, tol)
	assert.InDelta(t, 22.5, res.Nodes[1].ReactionY, tol)
	assert.Zero(t, res.Reactions[5])

	// the same member released at B and held against rotation there
	req.Nodes[1].FixRotation = true
	req.Members[0].ReleaseEnd = true
	released, err := Analyze(req, Options{})
	require.NoError(t, err)
	assert.InDeltaSlice(t, m.EndForces(), released.Members[0].EndForces(), tol)
	assert.InDelta(t, 0, released.Nodes[1].ReactionMoment, tol)
}

func TestSimplySupportedMemberPointLoad(t *testing.T) {
	req := &Request{
		Nodes:      []Node{pinned("A", 0, 0), {ID: "B", X: 4, Y: 0, FixY: true}},
		Members:    []Member{steel("M1", "A", "B")},
		PointLoads: []PointLoad{{Type: MemberPointLoad, TargetID: "M1", MagnitudeY: -10}},
	}
	res, err := Analyze(req, Options{})
	require.NoError(t, err)

	m := res.Members[0]
	assert.InDelta(t, 0, m.MomentStart, tol)
	assert.InDelta(t, 0, m.MomentEnd, tol)
	assert.InDelta(t, 5, m.ShearStart, tol)
	assert.InDelta(t, 10, m.MaxMoment, tol)
	assert.InDelta(t, 2, m.MaxMomentAt, tol)
	assert.InDelta(t, 5, res.Nodes[0].ReactionY, tol)
	assert.InDelta(t, 5, res.Nodes[1].ReactionY, tol)
}

func TestPortalFrameEquilibrium(t *testing.T) {
	res, err := Analyze(portal(), Options{})
	require.NoError(t, err)
	require.Empty(t, res.Warnings)

	assert.InDelta(t, 0, res.Equilibrium.Fx, tol)
	assert.InDelta(t, 0, res.Equilibrium.Fy, tol)
	assert.InDelta(t, 0, res.Equilibrium.Moment, tol)

	assert.InDelta(t, -10, res.Nodes[0].ReactionX+res.Nodes[3].ReactionX, tol)
	assert.InDelta(t, 72, res.Nodes[0].ReactionY+res.Nodes[3].ReactionY, tol)
	assert.Greater(t, res.Nodes[1].UX, 0.0)

	// joints B and C carry no applied couple
	ab, bc, cd := res.Members[0], res.Members[1], res.Members[2]
	assert.InDelta(t, 0, ab.MomentEnd+bc.MomentStart, tol)
	assert.InDelta(t, 0, bc.MomentEnd+cd.MomentStart, tol)

	for _, n := range res.Nodes[1:3] {
		assert.Zero(t, n.ReactionX)
		assert.Zero(t, n.ReactionY)
		assert.Zero(t, n.ReactionMoment)
	}
}

func TestInclinedCantilever(t *testing.T) {
	l := 4.0
	c, s := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	req := &Request{
		Nodes:      []Node{fixed("A", 0, 0), {ID: "B", X: l * c, Y: l * s}},
		Members:    []Member{steel("M1", "A", "B")},
		PointLoads: []PointLoad{{Type: NodeLoad, TargetID: "B", MagnitudeY: -10}},
	}
	res, err := Analyze(req, Options{})
	require.NoError(t, err)

	assert.InDelta(t, 10, res.Nodes[0].ReactionY, tol)
	assert.InDelta(t, 10*l*c, res.Nodes[0].ReactionMoment, tol)

	m := res.Members[0]
	assert.InDelta(t, 30, m.Angle, 1e-9)
	assert.InDelta(t, -10*s, m.AxialEnd, tol)
	assert.InDelta(t, -10*s, m.Diagrams.Axial[0], tol)
	assert.Less(t, res.Nodes[1].UY, 0.0)
}

func TestCollinearPinnedMechanismIsSingular(t *testing.T) {
	m := steel("M1", "A", "B")
	m.ReleaseStart, m.ReleaseEnd = true, true
	req := &Request{
		Nodes:   []Node{pinned("A", 0, 0), pinned("B", 5, 0)},
		Members: []Member{m},
	}
	_, err := Analyze(req, Options{})
	require.Error(t, err)

	var se *linsolve.SingularSystemError
	assert.True(t, errors.As(err, &se))
	assert.False(t, structure.IsValidation(err))
}

func TestHingedMidspanIsSingular(t *testing.T) {
	left := steel("M1", "A", "B")
	left.ReleaseEnd = true
	right := steel("M2", "B", "C")
	right.ReleaseStart = true
	req := &Request{
		Nodes:      []Node{pinned("A", 0, 0), {ID: "B", X: 3}, pinned("C", 6, 0)},
		Members:    []Member{left, right},
		PointLoads: []PointLoad{{Type: NodeLoad, TargetID: "B", MagnitudeY: -1}},
	}
	_, err := Analyze(req, Options{})

	var se *linsolve.SingularSystemError
	assert.True(t, errors.As(err, &se), "got %v", err)
}

func TestEquilibriumToleranceWarning(t *testing.T) {
	req := portal()
	req.Members[1].CrossSectionArea = 1e3
	req.Members[1].MomentOfInertia = 1e-7

	res, err := Analyze(req, Options{EquilibriumTolerance: 1e-18})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, structure.NumericalTolerance, res.Warnings[0].Kind)
	assert.Positive(t, res.Warnings[0].Residual)
}

func TestToleranceWarning(t *testing.T) {
	_, ok := toleranceWarning(Residual{Fx: 1e-9, Fy: 1e-9, Moment: 1e-9}, 1e-6)
	assert.False(t, ok)

	w, ok := toleranceWarning(Residual{Fx: 2e-5, Fy: 1e-9, Moment: -1e-9}, 1e-6)
	require.True(t, ok)
	assert.Equal(t, structure.NumericalTolerance, w.Kind)
	assert.InDelta(t, 2e-5, w.Residual, 1e-12)
}

func TestLoadCombination(t *testing.T) {
	req := &Request{
		Nodes:   []Node{fixed("A", 0, 0), fixed("B", 6, 0)},
		Members: []Member{steel("M1", "A", "B")},
		UniformLoads: []UniformLoad{
			{MemberID: "M1", MagnitudeY: -10, Case: "D"},
			{MemberID: "M1", MagnitudeY: -5, Case: "L"},
		},
		Combination: "2",
	}
	res, err := Analyze(req, Options{})
	require.NoError(t, err)

	w := 1.2*10 + 1.6*5
	assert.Equal(t, "2", res.Combination)
	assert.InDelta(t, w*36/12, res.Members[0].MomentStart, tol)
}

func TestDeterministic(t *testing.T) {
	a, err := Analyze(portal(), Options{AnalysisID: "same"})
	require.NoError(t, err)
	b, err := Analyze(portal(), Options{AnalysisID: "same"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{"duplicate node", func(r *Request) { r.Nodes[1].ID = "A" }, "id"},
		{"duplicate member", func(r *Request) { r.Members[1].ID = "AB" }, "id"},
		{"dangling start", func(r *Request) { r.Members[0].StartNodeID = "Z" }, "startNodeId"},
		{"dangling end", func(r *Request) { r.Members[0].EndNodeID = "Z" }, "endNodeId"},
		{"zero length", func(r *Request) { r.Nodes[1].Y = 0 }, "length"},
		{"self loop", func(r *Request) { r.Members[0].EndNodeID = "A" }, "endNodeId"},
		{"bad modulus", func(r *Request) { r.Members[0].ElasticModulus = 0 }, "elasticModulus"},
		{"no inertia", func(r *Request) { r.Members[1].MomentOfInertia = 0 }, "momentOfInertia"},
		{"no area", func(r *Request) { r.Members[1].CrossSectionArea = 0 }, "crossSectionArea"},
		{"unknown load target", func(r *Request) { r.PointLoads[0].TargetID = "Q" }, "targetId"},
		{"unknown load type", func(r *Request) { r.PointLoads[0].Type = "WIND" }, "type"},
		{"unknown uniform member", func(r *Request) { r.UniformLoads[0].MemberID = "Q" }, "memberId"},
		{"position outside member", func(r *Request) {
			r.PointLoads = append(r.PointLoads, PointLoad{Type: MemberPointLoad, TargetID: "BC", MagnitudeY: -1, Position: ptr(7)})
		}, "position"},
		{"no x restraint", func(r *Request) {
			r.Nodes[0].FixX = false
			r.Nodes[3].FixX = false
		}, "fixX"},
		{"too few restraints", func(r *Request) {
			r.Nodes[0] = Node{ID: "A", FixX: true}
			r.Nodes[3] = Node{ID: "D", X: 6, FixY: true}
		}, "restraints"},
		{"unconnected node", func(r *Request) { r.Nodes = append(r.Nodes, Node{ID: "E", X: 9, Y: 4}) }, "id"},
		{"unknown combination", func(r *Request) { r.Combination = "0" }, "combination"},
		{"unknown case", func(r *Request) { r.UniformLoads[0].Case = "snow" }, "case"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := portal()
			tt.mutate(req)
			_, err := Analyze(req, Options{})
			require.Error(t, err)

			var ve *structure.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")
	data := `{
  "nodes": [
    {"id": "A", "x": 0, "y": 0, "fixX": true, "fixY": true, "fixRotation": true},
    {"id": "B", "x": 6, "y": 0, "fixX": true, "fixY": true, "fixRotation": true}
  ],
  "members": [
    {"id": "M1", "startNodeId": "A", "endNodeId": "B", "elasticModulus": 200000000,
     "momentOfInertia": 0.0001, "crossSectionArea": 0.01}
  ],
  "uniformLoads": [{"memberId": "M1", "magnitudeY": -10}]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	req, err := LoadFromFile(path)
	require.NoError(t, err)
	res, err := Analyze(req, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 30, res.Members[0].MomentStart, tol)
}
