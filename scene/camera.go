package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultRadius = 10.0

	// minRadius is the smallest orbit radius a zoom may leave behind; below
	// it the orbit is treated as collapsed and re-anchored.
	minRadius = 0.1

	// phiMin and phiMax bound the polar angle. phiMax keeps the eye away from
	// the lower pole where lookAt loses its up reference.
	phiMin = 0.00001
	phiMax = 2*math.Pi - 0.1
)

// OrbitCamera orbits a centre point at a given radius using spherical
// angles. theta is the azimuth around the Y axis, phi the polar angle
// measured from +Y. Eye and up are always derived from the other fields.
type OrbitCamera struct {
	radius float32
	theta  float32
	phi    float32
	center mgl32.Vec3

	eye mgl32.Vec3
	up  mgl32.Vec3
}

// NewOrbitCamera returns a camera looking at the origin from radius 10 on
// the horizontal plane.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		radius: DefaultRadius,
		theta:  math.Pi / 2,
		phi:    math.Pi / 2,
	}
	c.recompute()
	return c
}

func (c *OrbitCamera) Radius() float32    { return c.radius }
func (c *OrbitCamera) Theta() float32     { return c.theta }
func (c *OrbitCamera) Phi() float32       { return c.phi }
func (c *OrbitCamera) Center() mgl32.Vec3 { return c.center }
func (c *OrbitCamera) Eye() mgl32.Vec3    { return c.eye }
func (c *OrbitCamera) Up() mgl32.Vec3     { return c.up }

// SetCenter moves the orbit centre without changing radius or angles.
func (c *OrbitCamera) SetCenter(center mgl32.Vec3) {
	c.center = center
	c.recompute()
}

// Zoom scales the radius by (1 + factor). A radius that falls below 0.1 is
// reset to 10 and the centre is pushed forward along the old view direction,
// so the camera keeps its position instead of collapsing into its target.
func (c *OrbitCamera) Zoom(factor float32) {
	c.radius += factor * c.radius
	if c.radius < minRadius {
		c.radius = DefaultRadius
		c.center = c.eye.Add(c.center.Sub(c.eye).Normalize().Mul(c.radius))
	}
	c.recompute()
}

// Turn adds dTheta to the azimuth and subtracts dPhi from the polar angle.
// Phi wraps to just inside the opposite bound when it leaves
// [phiMin, phiMax), which keeps rotation continuous across the poles.
func (c *OrbitCamera) Turn(dPhi, dTheta float32) {
	c.theta += dTheta
	c.phi -= dPhi
	if c.phi >= phiMax {
		c.phi = phiMin
	} else if c.phi < phiMin {
		c.phi = phiMax - phiMin
	}
	c.recompute()
}

// Pan translates the orbit centre in the view plane. dx moves along the
// camera's side axis, dy along its up axis, both scaled by the diameter of
// the orbit.
func (c *OrbitCamera) Pan(dx, dy float32) {
	forward := c.center.Sub(c.eye).Normalize()
	side := forward.Cross(c.up)
	if side.Len() == 0 {
		c.recompute()
		return
	}
	side = side.Normalize()
	up := side.Cross(forward).Normalize()

	scale := c.radius * 2
	c.center = c.center.
		Add(up.Mul(dy * scale)).
		Sub(side.Mul(dx * scale))
	c.recompute()
}

// ViewMatrix returns the world-to-view transform.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.center, c.up)
}

func (c *OrbitCamera) recompute() {
	sinPhi := float32(math.Sin(float64(c.phi)))
	cosPhi := float32(math.Cos(float64(c.phi)))
	sinTheta := float32(math.Sin(float64(c.theta)))
	cosTheta := float32(math.Cos(float64(c.theta)))

	c.eye = mgl32.Vec3{
		cosTheta*sinPhi*c.radius + c.center[0],
		cosPhi*c.radius + c.center[1],
		sinTheta*sinPhi*c.radius + c.center[2],
	}

	upY := float32(1)
	if c.phi >= math.Pi {
		upY = -1
	}
	c.up = mgl32.Vec3{0, upY, 0}
}
