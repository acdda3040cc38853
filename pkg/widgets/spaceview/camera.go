package spaceview

import (
	"github.com/roffe/polyview/pkg/ndim"
)

// camera is the trackball looking at the projected 3-space. Rotation
// accumulates as a matrix so drags always orbit relative to the current
// view, position pans in camera space and zoom scales the scene before
// the rotation is applied.
type camera struct {
	rotation ndim.Matrix
	position ndim.Vector
	zoom     float64
}

func newCamera() *camera {
	return &camera{
		rotation: ndim.Identity(3),
		position: ndim.Zero(3),
		zoom:     1,
	}
}

// rotate orbits the camera by the given deltas in radians. The delta
// rotation is multiplied in front of the accumulated rotation so the
// motion is camera-relative rather than world-relative.
func (c *camera) rotate(pitch, yaw, roll float64) {
	delta, err := ndim.Compose(
		ndim.Rotation{Dimension: 3, Axis1: 0, Axis2: 1, Angle: roll},
		ndim.Rotation{Dimension: 3, Axis1: 2, Axis2: 0, Angle: yaw},
		ndim.Rotation{Dimension: 3, Axis1: 1, Axis2: 2, Angle: pitch},
	)
	if err != nil {
		return
	}
	next, err := delta.Multiply(c.rotation)
	if err != nil {
		return
	}
	c.rotation = next
}

// pan moves the camera along its own right and up vectors.
func (c *camera) pan(dx, dy float64) {
	right, err := c.rotation.Transform(ndim.Basis(3, 0))
	if err != nil {
		return
	}
	// Negative because screen Y is down.
	up, err := c.rotation.Transform(ndim.Basis(3, 1).Scale(-1))
	if err != nil {
		return
	}
	c.position = c.position.Add(right.Scale(dx)).Add(up.Scale(dy))
}

func (c *camera) scale(factor float64) {
	c.zoom *= factor
}

func (c *camera) reset() {
	c.rotation = ndim.Identity(3)
	c.position = ndim.Zero(3)
	c.zoom = 1
}

// view takes a 3-dimensional point in world units and returns it in
// camera space: scaled, rotated, then offset by the camera position.
func (c *camera) view(p ndim.Vector) ndim.Vector {
	out, err := c.rotation.Transform(p.Scale(c.zoom))
	if err != nil {
		return p
	}
	return out.Sub(c.position)
}
