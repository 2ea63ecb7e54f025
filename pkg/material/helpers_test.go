package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// constantSampler returns the same value for every dimension
type constantSampler struct {
	value float64
}

func (c constantSampler) Get1D() float64 { return c.value }
func (c constantSampler) Get2D() core.Vec2 {
	return core.NewVec2(c.value, c.value)
}
func (c constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(c.value, c.value, c.value)
}

// queueSampler replays a fixed list of 2D samples, then falls back to 0.5
type queueSampler struct {
	samples []core.Vec2
}

func (q *queueSampler) Get1D() float64 { return q.Get2D().X }
func (q *queueSampler) Get2D() core.Vec2 {
	if len(q.samples) == 0 {
		return core.NewVec2(0.5, 0.5)
	}
	s := q.samples[0]
	q.samples = q.samples[1:]
	return s
}
func (q *queueSampler) Get3D() core.Vec3 {
	s := q.Get2D()
	return core.NewVec3(s.X, s.Y, 0.5)
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
