package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, 0.0, Distance(7, 7, 7, 7), 1e-9)
}

func TestOverlapBoundaryIsExclusive(t *testing.T) {
	// Two size-0.5 objects touch below 30 pixels apart.
	assert.True(t, Overlap(0, 0, 0.5, 29, 0, 0.5))
	assert.False(t, Overlap(0, 0, 0.5, 30, 0, 0.5))
}

func TestOverlapSymmetric(t *testing.T) {
	cases := []struct {
		x1, y1 int
		s1     float64
		x2, y2 int
		s2     float64
	}{
		{0, 0, 1.0, 50, 20, 0.5},
		{300, 100, 1.0, 300, 150, 0.5},
		{10, 700, 2.0, 130, 650, 1.0},
		{599, 0, 0.1, 0, 799, 4.5},
	}
	for _, c := range cases {
		assert.Equal(t,
			Overlap(c.x1, c.y1, c.s1, c.x2, c.y2, c.s2),
			Overlap(c.x2, c.y2, c.s2, c.x1, c.y1, c.s1))
	}
}

func TestAbsInt(t *testing.T) {
	assert.Equal(t, 10, AbsInt(-10))
	assert.Equal(t, 10, AbsInt(10))
	assert.Equal(t, 0, AbsInt(0))
}
