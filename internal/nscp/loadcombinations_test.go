package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	lc, ok := Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "1.2D + 1.6L + 0.5(Lr or R)", lc.Description)

	_, ok = Lookup("99")
	assert.False(t, ok)
}

func TestFactor(t *testing.T) {
	lc, _ := Lookup("2")
	assert.Equal(t, 1.2, lc.Factor(Dead))
	assert.Equal(t, 1.6, lc.Factor(Live))
	assert.Equal(t, 0.5, lc.Factor(Roof))
	assert.Equal(t, 0.0, lc.Factor(Earthquake))
	assert.Equal(t, 1.0, lc.Factor(""))
}

func TestParseCase(t *testing.T) {
	for in, want := range map[string]Case{"d": Dead, "LR": Roof, " e ": Earthquake, "W": Wind} {
		c, err := ParseCase(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c)
	}
	_, err := ParseCase("snow")
	assert.Error(t, err)
}
