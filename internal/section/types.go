package section

import (
	"math"

	"github.com/alexiusacademia/gosdm/internal/structure"
)

// Section is a cross-section outline defined by vertices.
// The section is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
//
// Coordinates use the same length unit as the structure that references
// the section.
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Vertices should be listed in order around the outer boundary, either
	// direction. The section is assumed to be a simple polygon (no holes).
	Vertices []Point `json:"vertices" yaml:"vertices" validate:"min=3,dive"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x" validate:"finite"`
	Y float64 `json:"y" yaml:"y" validate:"finite"`
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Area   float64 `json:"area" yaml:"area"`

	// Centroid location
	CentroidX float64 `json:"centroidX" yaml:"centroidX"`
	CentroidY float64 `json:"centroidY" yaml:"centroidY"`

	// Second moments of area about the centroidal axes
	Ix float64 `json:"ix" yaml:"ix"` // bending about the horizontal axis
	Iy float64 `json:"iy" yaml:"iy"`

	// Bounding box
	MinX float64 `json:"minX" yaml:"minX"`
	MaxX float64 `json:"maxX" yaml:"maxX"`
	MinY float64 `json:"minY" yaml:"minY"`
	MaxY float64 `json:"maxY" yaml:"maxY"`
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	entity := "section"
	if s.Name != "" {
		entity = "section " + s.Name
	}
	if len(s.Vertices) < 3 {
		return structure.Invalid(entity, "vertices", "must have at least 3 vertices, got %d", len(s.Vertices))
	}
	for i, v := range s.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return structure.Invalid(entity, "vertices", "vertex %d is not finite", i+1)
		}
	}
	if s.moments().area == 0 {
		return structure.Invalid(entity, "vertices", "enclose no area")
	}
	return nil
}
