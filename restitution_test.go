package bounce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestitutionDefault(t *testing.T) {
	table := NewRestitutionTable(DefaultRestitution)
	assert.Equal(t, 0.9, table.Get(1, 2))
	e, ok := table.Lookup(1, 2)
	assert.False(t, ok)
	assert.Equal(t, 0.9, e)
	assert.Equal(t, 0, table.Len())
}

func TestRestitutionSymmetric(t *testing.T) {
	table := NewRestitutionTable(DefaultRestitution)
	table.Set(7, 3, 0.25)

	assert.Equal(t, 0.25, table.Get(3, 7))
	assert.Equal(t, 0.25, table.Get(7, 3))
	assert.Equal(t, 1, table.Len())

	table.Set(3, 7, 0.5)
	assert.Equal(t, 0.5, table.Get(7, 3))
	assert.Equal(t, 1, table.Len())

	assert.Equal(t, 0.9, table.Get(3, 8))
}

func TestRestitutionVerbatim(t *testing.T) {
	table := NewRestitutionTable(DefaultRestitution)
	table.Set(1, 2, 4)
	table.Set(1, 3, -1)
	table.Set(2, 3, math.NaN())

	assert.Equal(t, 4.0, table.Get(2, 1))
	assert.Equal(t, -1.0, table.Get(3, 1))
	assert.True(t, math.IsNaN(table.Get(3, 2)))
}

func TestRestitutionSelfPair(t *testing.T) {
	table := NewRestitutionTable(0.5)
	table.Set(4, 4, 0.1)
	assert.Equal(t, 0.1, table.Get(4, 4))
	assert.Equal(t, 0.5, table.Default())
}
