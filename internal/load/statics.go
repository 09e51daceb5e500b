package load

import "fmt"

// Statics is the rigid-body resultant of a load on a member of given length.
type Statics struct {
	Force    float64 // transverse resultant along +y'
	Axial    float64 // axial resultant along +x'
	Centroid float64 // line of action of Force and Axial, from the start
	Couple   float64 // applied couple, CCW positive
}

// Resultant reduces l to its statically equivalent forces.
func Resultant(length float64, l Load) Statics {
	switch v := l.(type) {
	case None:
		return Statics{}
	case Uniform:
		return Statics{Force: v.W * length, Axial: v.Axial * length, Centroid: length / 2}
	case Midspan:
		return Statics{Force: v.P, Centroid: length / 2}
	case Point:
		return Statics{Force: v.P, Axial: v.Axial, Centroid: v.A}
	case Triangular:
		c := 2 * length / 3
		if v.PeakAtStart {
			c = length / 3
		}
		return Statics{Force: v.W * length / 2, Centroid: c}
	case Couple:
		return Statics{Couple: v.M, Centroid: v.A}
	default:
		panic(fmt.Sprintf("load: unhandled load %T", l))
	}
}

// Total sums the resultants of several loads. The returned Centroid is the
// line of action of the total transverse force, or zero when it vanishes.
func Total(length float64, loads ...Load) Statics {
	var t Statics
	var moment float64
	for _, l := range loads {
		r := Resultant(length, l)
		t.Force += r.Force
		t.Axial += r.Axial
		t.Couple += r.Couple
		moment += r.Force * r.Centroid
	}
	if t.Force != 0 {
		t.Centroid = moment / t.Force
	}
	return t
}
