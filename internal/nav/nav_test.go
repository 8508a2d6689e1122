package nav

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ranks/internal/host"
)

type fixedSensors struct {
	x, y  float64
	reads int
}

func (s *fixedSensors) Position() (float64, float64) { s.reads++; return s.x, s.y }
func (s *fixedSensors) Heat() float64                { return 0 }

func TestCourseFromOrigin(t *testing.T) {
	n := New(&fixedSensors{}, host.StdMath{})
	assert.InDelta(t, 0, n.CourseTo(100, 0), 1e-9)
	assert.InDelta(t, math.Pi/2, n.CourseTo(0, 100), 1e-9)
	assert.InDelta(t, math.Pi/4, n.CourseTo(100, 100), 1e-9)
	assert.InDelta(t, 100, n.DistanceTo(100, 0), 1e-9)
	assert.InDelta(t, 100*math.Sqrt2, n.DistanceTo(100, 100), 1e-9)
}

func TestCoincidentTarget(t *testing.T) {
	n := New(&fixedSensors{x: 5, y: 5}, nil)
	c := n.CourseTo(5, 5)
	assert.False(t, math.IsNaN(c))
	assert.Equal(t, 0.0, n.DistanceTo(5, 5))
}

func TestPositionReadEveryCall(t *testing.T) {
	s := &fixedSensors{}
	n := New(s, nil)
	n.DistanceTo(10, 0)
	s.x = 4
	assert.InDelta(t, 6, n.DistanceTo(10, 0), 1e-9)
	n.CourseTo(10, 0)
	assert.Equal(t, 3, s.reads)
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	assert.Equal(t, 5.0, v.Len())
	assert.Equal(t, Vec2{}, Vec2{}.Norm())
	assert.InDelta(t, 1, v.Norm().Len(), 1e-12)
	assert.Equal(t, 7.0, v.Manhattan(Vec2{}))
	p := Polar(math.Pi / 2)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, math.Pi/2, p.Angle(), 1e-12)
	assert.Equal(t, Vec2{6, 8}, v.Scale(2))
	assert.Equal(t, Vec2{4, 4}, v.Add(Vec2{1, 0}))
	assert.Equal(t, Vec2{2, 4}, v.Sub(Vec2{1, 0}))
}
