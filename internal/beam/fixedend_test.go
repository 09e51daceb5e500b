package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

func TestFixedEndEffects(t *testing.T) {
	tests := []struct {
		name        string
		length      float64
		combination string
		specs       []LoadSpec
		want        FixedEnd
	}{
		{
			name:   "uniform",
			length: 6,
			specs:  []LoadSpec{{Type: load.KindUniform, Magnitude: 10}},
			want:   FixedEnd{MomentStart: -30, MomentEnd: 30, ReactionStart: 30, ReactionEnd: 30},
		},
		{
			name:   "off-centre point",
			length: 6,
			specs:  []LoadSpec{{Type: load.KindPoint, Magnitude: 20, Position: ptr(2)}},
			want:   FixedEnd{MomentStart: -320.0 / 18, MomentEnd: 160.0 / 18, ReactionStart: 3200.0 / 216, ReactionEnd: 1120.0 / 216},
		},
		{
			name:        "factored superposition",
			length:      4,
			combination: "2",
			specs: []LoadSpec{
				{Type: load.KindMidspan, Magnitude: 10, Case: "D"},
				{Type: load.KindMidspan, Magnitude: 10, Case: "L"},
			},
			want: FixedEnd{MomentStart: -(1.2 + 1.6) * 5, MomentEnd: (1.2 + 1.6) * 5, ReactionStart: (1.2 + 1.6) * 5, ReactionEnd: (1.2 + 1.6) * 5},
		},
		{
			name:   "nothing",
			length: 3,
			specs:  []LoadSpec{{Type: load.KindNone}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FixedEndEffects(tt.length, tt.combination, tt.specs...)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.MomentStart, got.MomentStart, tol)
			assert.InDelta(t, tt.want.MomentEnd, got.MomentEnd, tol)
			assert.InDelta(t, tt.want.ReactionStart, got.ReactionStart, tol)
			assert.InDelta(t, tt.want.ReactionEnd, got.ReactionEnd, tol)
		})
	}
}

func TestFixedEndEffectsRejects(t *testing.T) {
	_, err := FixedEndEffects(0, "", LoadSpec{Type: load.KindUniform, Magnitude: 1})
	assert.True(t, structure.IsValidation(err))

	_, err = FixedEndEffects(4, "99", LoadSpec{Type: load.KindUniform, Magnitude: 1})
	assert.True(t, structure.IsValidation(err))

	_, err = FixedEndEffects(4, "", LoadSpec{Type: load.KindPoint, Magnitude: 1})
	assert.True(t, structure.IsValidation(err), "position is required")

	_, err = FixedEndEffects(4, "", LoadSpec{Type: load.KindPoint, Magnitude: 1, Position: ptr(5)})
	assert.True(t, structure.IsValidation(err))
}
