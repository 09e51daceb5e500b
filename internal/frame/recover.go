package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/linsolve"
	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/stiffness"
)

// memberResult recovers local end forces f = k·(R·u) + fixedEnd and the
// member diagrams.
func memberResult(mem member, el *stiffness.Element, u []float64, stations int) MemberResult {
	f := el.EndForces(u)
	d := diagram.Generate(mem.length, mem.loads, diagram.Ends{
		MomentStart: -f[stiffness.RotationStart],
		MomentEnd:   f[stiffness.RotationEnd],
		AxialStart:  -f[stiffness.AxialStart],
	}, diagram.Options{Stations: stations})

	return MemberResult{
		ID:          mem.id,
		Length:      mem.length,
		Angle:       math.Atan2(mem.dy, mem.dx) * 180 / math.Pi,
		AxialStart:  f[0],
		ShearStart:  f[1],
		MomentStart: f[2],
		AxialEnd:    f[3],
		ShearEnd:    f[4],
		MomentEnd:   f[5],
		MaxMoment:   d.MaxMoment.Value,
		MaxMomentAt: d.MaxMoment.X,
		Diagrams:    d,
	}
}

// reactions are the restrained rows of K·u − P; free rows are zero.
func reactions(t *dofTable, k *mat.Dense, u, p []float64) []float64 {
	r := linsolve.Residual(k, u, p)
	for _, i := range t.free {
		r[i] = 0
	}
	return r
}

// equilibrium sums reactions, nodal loads and member loads in global axes.
// Moments are taken about the origin, counter-clockwise positive.
func equilibrium(m *model, r []float64) Residual {
	var res Residual
	add := func(x, y, fx, fy, mz float64) {
		res.Fx += fx
		res.Fy += fy
		res.Moment += x*fy - y*fx + mz
	}

	for n, node := range m.nodes {
		i := m.dofs.node(n, UX)
		add(node.X, node.Y, r[i]+m.nodal[i], r[i+1]+m.nodal[i+1], r[i+2]+m.nodal[i+2])
	}

	for _, mem := range m.members {
		c, s := mem.dx/mem.length, mem.dy/mem.length
		x0, y0 := m.nodes[mem.start].X, m.nodes[mem.start].Y
		for _, l := range mem.loads {
			st := load.Resultant(mem.length, l)
			add(x0+c*st.Centroid, y0+s*st.Centroid,
				c*st.Axial-s*st.Force, s*st.Axial+c*st.Force, st.Couple)
		}
	}
	return res
}

// loadScale is the magnitude the equilibrium tolerance is measured against.
func loadScale(m *model) float64 {
	var extent float64
	for _, n := range m.nodes {
		extent = math.Max(extent, math.Hypot(n.X, n.Y))
	}
	extent = math.Max(1, extent)

	scale := 1.0
	for _, v := range m.nodal {
		scale = math.Max(scale, math.Abs(v)*extent)
	}
	for _, mem := range m.members {
		for _, l := range mem.loads {
			st := load.Resultant(mem.length, l)
			scale = math.Max(scale, (math.Abs(st.Force)+math.Abs(st.Axial))*extent+math.Abs(st.Couple))
		}
	}
	return scale
}
