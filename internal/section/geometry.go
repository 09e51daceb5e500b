package section

import (
	"math"
	"slices"
)

// CalculateProperties computes geometric properties of the section.
// Vertices may run in either direction.
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}
	if len(s.Vertices) < 3 {
		return props
	}

	props.MinX, props.MaxX, props.MinY, props.MaxY = s.bounds()
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	m := s.moments()
	if m.area == 0 {
		return props
	}
	props.Area = math.Abs(m.area)
	props.CentroidX = m.qy / m.area
	props.CentroidY = m.qx / m.area

	// parallel axis: moments about the origin to the centroid
	props.Ix = math.Abs(m.ixx) - props.Area*props.CentroidY*props.CentroidY
	props.Iy = math.Abs(m.iyy) - props.Area*props.CentroidX*props.CentroidX
	return props
}

func (s *Section) bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = s.Vertices[0].X, s.Vertices[0].X
	minY, maxY = s.Vertices[0].Y, s.Vertices[0].Y
	for _, v := range s.Vertices[1:] {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	return minX, maxX, minY, maxY
}

// polygonMoments are signed area integrals about the origin. Their sign
// follows the vertex order (positive counter-clockwise).
type polygonMoments struct {
	area     float64 // ∫dA
	qx, qy   float64 // ∫y dA, ∫x dA
	ixx, iyy float64 // ∫y² dA, ∫x² dA
}

// moments integrates over the polygon edge by edge (Green's theorem).
func (s *Section) moments() polygonMoments {
	var m polygonMoments
	n := len(s.Vertices)
	for i := range n {
		a, b := s.Vertices[i], s.Vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		m.area += cross
		m.qx += (a.Y + b.Y) * cross
		m.qy += (a.X + b.X) * cross
		m.ixx += (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y) * cross
		m.iyy += (a.X*a.X + a.X*b.X + b.X*b.X) * cross
	}
	m.area /= 2
	m.qx /= 6
	m.qy /= 6
	m.ixx /= 12
	m.iyy /= 12
	return m
}

// WidthAtDepth returns the total width of material cut by a horizontal line
// depthFromTop below the highest vertex. Separate flanges are summed.
func (s *Section) WidthAtDepth(depthFromTop float64) float64 {
	if len(s.Vertices) < 3 {
		return 0
	}
	_, _, _, top := s.bounds()
	return s.widthAtY(top - depthFromTop)
}

func (s *Section) widthAtY(y float64) float64 {
	xs := s.crossingsAtY(y)
	slices.Sort(xs)

	var width float64
	for i := 0; i+1 < len(xs); i += 2 {
		width += xs[i+1] - xs[i]
	}
	return width
}

// crossingsAtY lists the x of every edge crossing the line at y. Edges are
// treated as half-open in y so a vertex on the line is counted once.
func (s *Section) crossingsAtY(y float64) []float64 {
	var xs []float64
	n := len(s.Vertices)
	for i := range n {
		a, b := s.Vertices[i], s.Vertices[(i+1)%n]
		if (a.Y <= y) == (b.Y <= y) {
			continue
		}
		t := (y - a.Y) / (b.Y - a.Y)
		xs = append(xs, a.X+t*(b.X-a.X))
	}
	return xs
}
