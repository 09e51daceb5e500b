package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOFTable(t *testing.T) {
	tbl := newDOFTable([]Node{
		{ID: "A", FixX: true, FixY: true},
		{ID: "B"},
		{ID: "C", FixY: true, FixRotation: true},
	})

	assert.Equal(t, 9, tbl.size)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, tbl.nodeIndex)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, tbl.free)
	assert.Equal(t, []int{0, 1, 7, 8}, tbl.fixed)
	assert.Equal(t, 7, tbl.node(2, UY))

	assert.Equal(t, 0, tbl.addMember(0, 2))
	assert.Equal(t, 1, tbl.addMember(2, 1))
	assert.Equal(t, [6]int{0, 1, 2, 6, 7, 8}, tbl.members[0])
	assert.Equal(t, [6]int{6, 7, 8, 3, 4, 5}, tbl.members[1])

	u := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, []float64{6, 7, 8, 3, 4, 5}, tbl.gather(1, u))
}
