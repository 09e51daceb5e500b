// Package frame analyses planar frames by the direct stiffness method.
//
// Global axes: x to the right, y up, rotations counter-clockwise positive.
// Member local axes run from the start node to the end node with y' rotated
// 90° counter-clockwise. Member end forces are the forces the nodes exert on
// the member, in local axes, ordered [N1 V1 M1 N2 V2 M2].
package frame

import (
	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/section"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

// PointLoadType tells whether a point load targets a node or a member.
type PointLoadType string

const (
	NodeLoad        PointLoadType = "NODE_LOAD"
	MemberPointLoad PointLoadType = "MEMBER_POINT_LOAD"
)

// Request describes a planar frame.
type Request struct {
	Nodes        []Node        `json:"nodes" yaml:"nodes" validate:"required,min=2,dive"`
	Members      []Member      `json:"members" yaml:"members" validate:"required,min=1,dive"`
	PointLoads   []PointLoad   `json:"pointLoads,omitempty" yaml:"pointLoads,omitempty" validate:"dive"`
	UniformLoads []UniformLoad `json:"uniformLoads,omitempty" yaml:"uniformLoads,omitempty" validate:"dive"`

	// Combination is an NSCP load combination id applied to loads tagged
	// with a case.
	Combination string `json:"combination,omitempty" yaml:"combination,omitempty"`
}

// Node is a joint with optional restraints.
type Node struct {
	ID          string  `json:"id" yaml:"id" validate:"required"`
	X           float64 `json:"x" yaml:"x" validate:"finite"`
	Y           float64 `json:"y" yaml:"y" validate:"finite"`
	FixX        bool    `json:"fixX,omitempty" yaml:"fixX,omitempty"`
	FixY        bool    `json:"fixY,omitempty" yaml:"fixY,omitempty"`
	FixRotation bool    `json:"fixRotation,omitempty" yaml:"fixRotation,omitempty"`
}

// Member is a beam-column between two nodes. A section may stand in for
// MomentOfInertia and CrossSectionArea.
type Member struct {
	ID               string           `json:"id" yaml:"id" validate:"required"`
	StartNodeID      string           `json:"startNodeId" yaml:"startNodeId" validate:"required"`
	EndNodeID        string           `json:"endNodeId" yaml:"endNodeId" validate:"required"`
	ElasticModulus   float64          `json:"elasticModulus" yaml:"elasticModulus" validate:"gt=0,finite"`
	MomentOfInertia  float64          `json:"momentOfInertia,omitempty" yaml:"momentOfInertia,omitempty" validate:"gte=0,finite"`
	CrossSectionArea float64          `json:"crossSectionArea,omitempty" yaml:"crossSectionArea,omitempty" validate:"gte=0,finite"`
	Section          *section.Section `json:"section,omitempty" yaml:"section,omitempty" validate:"omitempty"`
	ReleaseStart     bool             `json:"releaseStart,omitempty" yaml:"releaseStart,omitempty"`
	ReleaseEnd       bool             `json:"releaseEnd,omitempty" yaml:"releaseEnd,omitempty"`
}

// PointLoad is a concentrated force and couple. Node loads use global axes;
// member point loads use member axes (MagnitudeX axial, MagnitudeY
// transverse) and act at Position from the start node, or at midspan when
// Position is omitted. Moments are counter-clockwise positive.
type PointLoad struct {
	Type       PointLoadType `json:"type" yaml:"type" validate:"required,oneof=NODE_LOAD MEMBER_POINT_LOAD"`
	TargetID   string        `json:"targetId" yaml:"targetId" validate:"required"`
	MagnitudeX float64       `json:"magnitudeX,omitempty" yaml:"magnitudeX,omitempty" validate:"finite"`
	MagnitudeY float64       `json:"magnitudeY,omitempty" yaml:"magnitudeY,omitempty" validate:"finite"`
	Moment     float64       `json:"moment,omitempty" yaml:"moment,omitempty" validate:"finite"`
	Position   *float64      `json:"position,omitempty" yaml:"position,omitempty"`
	Case       string        `json:"case,omitempty" yaml:"case,omitempty"`
}

// UniformLoad is a distributed load over a whole member in member axes.
type UniformLoad struct {
	MemberID   string  `json:"memberId" yaml:"memberId" validate:"required"`
	MagnitudeX float64 `json:"magnitudeX,omitempty" yaml:"magnitudeX,omitempty" validate:"finite"`
	MagnitudeY float64 `json:"magnitudeY,omitempty" yaml:"magnitudeY,omitempty" validate:"finite"`
	Case       string  `json:"case,omitempty" yaml:"case,omitempty"`
}

// Result is a solved frame.
type Result struct {
	AnalysisID  string `json:"analysisId" yaml:"analysisId"`
	Combination string `json:"combination,omitempty" yaml:"combination,omitempty"`

	// Displacements and Reactions are indexed by DOF: 3 per node in node
	// order (UX, UY, RZ). Reactions are zero at free DOFs.
	Displacements []float64 `json:"displacements" yaml:"displacements"`
	Reactions     []float64 `json:"reactions" yaml:"reactions"`

	Nodes   []NodeResult   `json:"nodes" yaml:"nodes"`
	Members []MemberResult `json:"members" yaml:"members"`

	Equilibrium Residual            `json:"equilibrium" yaml:"equilibrium"`
	Warnings    []structure.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NodeResult holds the displacement and reactions at one node.
type NodeResult struct {
	ID string  `json:"id" yaml:"id"`
	UX float64 `json:"ux" yaml:"ux"`
	UY float64 `json:"uy" yaml:"uy"`
	RZ float64 `json:"rz" yaml:"rz"`

	ReactionX      float64 `json:"reactionX" yaml:"reactionX"`
	ReactionY      float64 `json:"reactionY" yaml:"reactionY"`
	ReactionMoment float64 `json:"reactionMoment" yaml:"reactionMoment"`
}

// MemberResult holds the local end forces and diagrams of one member.
type MemberResult struct {
	ID     string  `json:"memberId" yaml:"memberId"`
	Length float64 `json:"length" yaml:"length"`
	Angle  float64 `json:"angle" yaml:"angle"` // degrees from global x

	AxialStart  float64 `json:"axialStart" yaml:"axialStart"`
	ShearStart  float64 `json:"shearStart" yaml:"shearStart"`
	MomentStart float64 `json:"momentStart" yaml:"momentStart"`
	AxialEnd    float64 `json:"axialEnd" yaml:"axialEnd"`
	ShearEnd    float64 `json:"shearEnd" yaml:"shearEnd"`
	MomentEnd   float64 `json:"momentEnd" yaml:"momentEnd"`

	MaxMoment   float64 `json:"maxMoment" yaml:"maxMoment"`
	MaxMomentAt float64 `json:"maxMomentAt" yaml:"maxMomentAt"`

	Diagrams diagram.Diagrams `json:"diagrams" yaml:"diagrams"`
}

// EndForces returns the member end forces as [N1 V1 M1 N2 V2 M2].
func (m MemberResult) EndForces() []float64 {
	return []float64{m.AxialStart, m.ShearStart, m.MomentStart, m.AxialEnd, m.ShearEnd, m.MomentEnd}
}

// Residual is the out-of-balance force and moment (about the origin) of
// all loads plus reactions.
type Residual struct {
	Fx     float64 `json:"fx" yaml:"fx"`
	Fy     float64 `json:"fy" yaml:"fy"`
	Moment float64 `json:"moment" yaml:"moment"`
}
