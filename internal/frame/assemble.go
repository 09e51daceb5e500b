package frame

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/stiffness"
)

// elements builds the stiffness of every member, releases condensed.
func elements(m *model) []*stiffness.Element {
	out := make([]*stiffness.Element, len(m.members))
	for i, mem := range m.members {
		fe := load.FixedEnd(mem.length, mem.loads...).Vector()
		out[i] = stiffness.NewElement(mem.props, mem.dx, mem.dy, mem.releaseStart, mem.releaseEnd, fe)
	}
	return out
}

// assemble scatters each member's global stiffness into K and builds the
// load vector P = nodal loads − Σ Rᵀ·fixedEnd.
func assemble(m *model, els []*stiffness.Element) (*mat.Dense, []float64) {
	n := m.dofs.size
	k := mat.NewDense(n, n, nil)
	p := append([]float64(nil), m.nodal...)

	for e, el := range els {
		dofs := m.dofs.members[e]
		for i, gi := range dofs {
			for j, gj := range dofs {
				k.Set(gi, gj, k.At(gi, gj)+el.Global.At(i, j))
			}
		}
		for i, f := range el.GlobalFixedEnd() {
			p[dofs[i]] -= f
		}
	}
	return k, p
}
