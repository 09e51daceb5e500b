// Package diagram builds shear, moment and axial diagrams along a member by
// superposing a simply supported "free" diagram with the linear effect of
// the end moments, and renders them to the terminal or to image files.
package diagram

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gosdm/internal/load"
)

// DefaultStations is the number of evenly spaced stations when none is
// configured.
const DefaultStations = 51

// Ends carries the member end actions in diagram convention: sagging moment
// positive, axial tension positive.
type Ends struct {
	MomentStart float64
	MomentEnd   float64
	AxialStart  float64 // tension just right of the start
}

// Options controls sampling.
type Options struct {
	Stations int
}

// Series is one quantity decomposed as Total = Free + End.
type Series struct {
	Free  []float64 `json:"free" yaml:"free"`
	End   []float64 `json:"end" yaml:"end"`
	Total []float64 `json:"total" yaml:"total"`
}

// Peak locates the largest absolute value of a series.
type Peak struct {
	X     float64 `json:"x" yaml:"x"`
	Value float64 `json:"value" yaml:"value"`
}

// Diagrams holds every sampled quantity. X may contain the same abscissa
// twice where a concentrated load makes the diagram jump: the first entry
// is the left limit, the second the right limit.
type Diagrams struct {
	X         []float64 `json:"x" yaml:"x"`
	Shear     Series    `json:"shear" yaml:"shear"`
	Moment    Series    `json:"moment" yaml:"moment"`
	Axial     []float64 `json:"axial" yaml:"axial"`
	MaxMoment Peak      `json:"maxMoment" yaml:"maxMoment"`
	MaxShear  Peak      `json:"maxShear" yaml:"maxShear"`
}

type station struct {
	x     float64
	after bool // right limit at a discontinuity
}

// Generate samples the diagrams of a member of the given length. Loads use
// the member-local convention of package load.
func Generate(length float64, loads []load.Load, ends Ends, opts Options) Diagrams {
	stations := sample(length, loads, opts.Stations)

	t := load.Total(length, loads...)
	// free-body reaction at the start of the simply supported member
	r0 := -(t.Force*(length-t.Centroid) - t.Couple) / length
	endShear := (ends.MomentEnd - ends.MomentStart) / length

	n := len(stations)
	d := Diagrams{
		X:      make([]float64, n),
		Shear:  newSeries(n),
		Moment: newSeries(n),
		Axial:  make([]float64, n),
	}

	for i, s := range stations {
		v, m, a := r0, r0*s.x, ends.AxialStart
		for _, l := range loads {
			dv, dm, da := contribution(l, length, s)
			v += dv
			m += dm
			a += da
		}

		d.X[i] = s.x
		d.Shear.Free[i] = v
		d.Shear.End[i] = endShear
		d.Shear.Total[i] = v + endShear
		d.Moment.Free[i] = m
		d.Moment.End[i] = ends.MomentStart + endShear*s.x
		d.Moment.Total[i] = m + d.Moment.End[i]
		d.Axial[i] = a
	}

	d.MaxMoment = peak(d.X, d.Moment.Total)
	d.MaxShear = peak(d.X, d.Shear.Total)
	return d
}

func newSeries(n int) Series {
	return Series{Free: make([]float64, n), End: make([]float64, n), Total: make([]float64, n)}
}

// sample returns evenly spaced stations plus both limits at every interior
// concentrated load position, in ascending order.
func sample(length float64, loads []load.Load, count int) []station {
	if count < 2 {
		count = DefaultStations
	}

	jumps := make(map[float64]bool)
	for _, l := range loads {
		if a, ok := load.Position(l, length); ok && a > 0 && a < length {
			jumps[a] = true
		}
	}

	out := make([]station, 0, count+2*len(jumps))
	for i := 0; i < count; i++ {
		x := length * float64(i) / float64(count-1)
		if i == count-1 {
			x = length
		}
		if jumps[x] {
			continue
		}
		out = append(out, station{x: x, after: x < length})
	}
	for a := range jumps {
		out = append(out, station{x: a}, station{x: a, after: true})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].x != out[j].x {
			return out[i].x < out[j].x
		}
		return !out[i].after && out[j].after
	})
	return out
}

// contribution is the change in shear, moment and axial force at s caused
// by l alone, summing the forces left of the section.
func contribution(l load.Load, length float64, s station) (v, m, a float64) {
	x := s.x
	passed := func(at float64) bool { return x > at || (x == at && s.after) }

	switch ld := l.(type) {
	case load.Uniform:
		return ld.W * x, ld.W * x * x / 2, -ld.Axial * x
	case load.Midspan:
		if passed(length / 2) {
			return ld.P, ld.P * (x - length/2), 0
		}
	case load.Point:
		if passed(ld.A) {
			return ld.P, ld.P * (x - ld.A), -ld.Axial
		}
	case load.Couple:
		if passed(ld.A) {
			return 0, -ld.M, 0
		}
	case load.Triangular:
		if ld.PeakAtStart {
			return ld.W * (x - x*x/(2*length)), ld.W * (x*x/2 - x*x*x/(6*length)), 0
		}
		return ld.W * x * x / (2 * length), ld.W * x * x * x / (6 * length), 0
	}
	return 0, 0, 0
}

func peak(x, values []float64) Peak {
	var p Peak
	for i, v := range values {
		if math.Abs(v) > math.Abs(p.Value) {
			p = Peak{X: x[i], Value: v}
		}
	}
	return p
}
