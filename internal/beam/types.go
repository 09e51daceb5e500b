// Package beam analyses continuous beams by the slope-deflection method.
//
// Requests and results use the textbook beam convention: load magnitudes
// are positive downward, applied couples, end moments and joint rotations
// are clockwise positive, and shears and reactions are positive upward.
// Diagrams use the sagging-positive convention of package diagram.
package beam

import (
	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/section"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

// SupportType restrains a beam joint.
type SupportType string

const (
	Fixed  SupportType = "FIXED"  // rotation and translation restrained
	Pinned SupportType = "PINNED" // translation restrained
	Roller SupportType = "ROLLER" // transverse translation restrained
)

// Request describes a continuous beam: spans left to right and one support
// per joint, joints numbered 0..len(Spans).
type Request struct {
	Spans        []Span        `json:"spans" yaml:"spans" validate:"required,min=1,dive"`
	Supports     []Support     `json:"supports" yaml:"supports" validate:"required,min=1,dive"`
	JointMoments []JointMoment `json:"jointMoments,omitempty" yaml:"jointMoments,omitempty" validate:"dive"`

	// Combination is an NSCP load combination id applied to loads tagged
	// with a case.
	Combination string `json:"combination,omitempty" yaml:"combination,omitempty"`

	// IncludeSteps defaults to true.
	IncludeSteps *bool `json:"includeSteps,omitempty" yaml:"includeSteps,omitempty"`
}

// Span is one member between consecutive joints. The inline load fields
// describe a single load; Loads adds any number of further loads.
type Span struct {
	ID              string           `json:"id,omitempty" yaml:"id,omitempty"`
	Length          float64          `json:"length" yaml:"length" validate:"gt=0,finite"`
	ElasticModulus  float64          `json:"elasticModulus" yaml:"elasticModulus" validate:"gt=0,finite"`
	MomentOfInertia float64          `json:"momentOfInertia,omitempty" yaml:"momentOfInertia,omitempty" validate:"gte=0,finite"`
	Section         *section.Section `json:"section,omitempty" yaml:"section,omitempty" validate:"omitempty"`

	LoadSpec `yaml:",inline"`
	Loads    []LoadSpec `json:"loads,omitempty" yaml:"loads,omitempty" validate:"dive"`
}

// LoadSpec is a load in request form.
type LoadSpec struct {
	Type        load.Kind `json:"loadType,omitempty" yaml:"loadType,omitempty" validate:"omitempty,oneof=NONE UDL POINT_CENTER POINT_ARBITRARY TRIANGULAR MOMENT"`
	Magnitude   float64   `json:"loadMagnitude,omitempty" yaml:"loadMagnitude,omitempty" validate:"finite"`
	Position    *float64  `json:"loadPosition,omitempty" yaml:"loadPosition,omitempty"`
	PeakAtStart bool      `json:"peakAtStart,omitempty" yaml:"peakAtStart,omitempty"`
	Case        string    `json:"case,omitempty" yaml:"case,omitempty"`
}

// Support restrains joint JointIndex.
type Support struct {
	JointIndex  int         `json:"jointIndex" yaml:"jointIndex" validate:"gte=0"`
	SupportType SupportType `json:"supportType" yaml:"supportType" validate:"required,oneof=FIXED PINNED ROLLER"`
}

// JointMoment is an external couple applied at a joint, clockwise positive.
type JointMoment struct {
	JointIndex int     `json:"jointIndex" yaml:"jointIndex" validate:"gte=0"`
	Moment     float64 `json:"moment" yaml:"moment" validate:"finite"`
}

// Result is a solved beam.
type Result struct {
	AnalysisID  string        `json:"analysisId" yaml:"analysisId"`
	Combination string        `json:"combination,omitempty" yaml:"combination,omitempty"`
	Spans       []SpanResult  `json:"spans" yaml:"spans"`
	Joints      []JointResult `json:"joints" yaml:"joints"`

	// Rotations holds one clockwise rotation per joint, zero at FIXED joints.
	Rotations []float64 `json:"rotations" yaml:"rotations"`
	// Reactions is [Fy0, M0, Fy1, M1, ...]; M is zero unless the joint is FIXED.
	Reactions []float64 `json:"reactions" yaml:"reactions"`

	Equilibrium Residual            `json:"equilibrium" yaml:"equilibrium"`
	Warnings    []structure.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Steps       []Step              `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// SpanResult holds the end actions and diagrams of one span.
type SpanResult struct {
	Index  int     `json:"index" yaml:"index"`
	ID     string  `json:"id,omitempty" yaml:"id,omitempty"`
	Length float64 `json:"length" yaml:"length"`

	FixedEndStart float64 `json:"fixedEndMomentStart" yaml:"fixedEndMomentStart"`
	FixedEndEnd   float64 `json:"fixedEndMomentEnd" yaml:"fixedEndMomentEnd"`

	MomentStart float64 `json:"momentStart" yaml:"momentStart"`
	MomentEnd   float64 `json:"momentEnd" yaml:"momentEnd"`
	ShearStart  float64 `json:"shearStart" yaml:"shearStart"`
	ShearEnd    float64 `json:"shearEnd" yaml:"shearEnd"`

	MaxMoment   float64 `json:"maxMoment" yaml:"maxMoment"`
	MaxMomentAt float64 `json:"maxMomentAt" yaml:"maxMomentAt"`

	Diagrams diagram.Diagrams `json:"diagrams" yaml:"diagrams"`
}

// JointResult holds the rotation and support reactions at a joint.
type JointResult struct {
	Index          int         `json:"index" yaml:"index"`
	Support        SupportType `json:"support" yaml:"support"`
	Rotation       float64     `json:"rotation" yaml:"rotation"`
	Reaction       float64     `json:"reaction" yaml:"reaction"`
	MomentReaction *float64    `json:"momentReaction,omitempty" yaml:"momentReaction,omitempty"`
}

// Residual is the out-of-balance force and moment (about joint 0,
// counter-clockwise positive) of loads plus reactions.
type Residual struct {
	Force  float64 `json:"force" yaml:"force"`
	Moment float64 `json:"moment" yaml:"moment"`
}

// Step is one line of the worked solution.
type Step struct {
	Number      int    `json:"number" yaml:"number"`
	Description string `json:"description" yaml:"description"`
	Equation    string `json:"equation,omitempty" yaml:"equation,omitempty"`
	Result      string `json:"result,omitempty" yaml:"result,omitempty"`
}
