package scene

import (
	"github.com/chewxy/math32"

	"shadowbox/math"
)

const maxPitch = 89 * math32.Pi / 180

// Camera is a first-person perspective camera. Orientation is held as
// absolute yaw/pitch angles and the look target is recomputed from
// them on every rotation, so repeated incremental rotations cannot
// accumulate drift. View and projection matrices are cached behind
// separate dirty flags: moving the camera never rebuilds the
// projection, and resizing never rebuilds the view. All state is
// mutated through setters so the caches can never go stale.
type Camera struct {
	position math.Vec3
	target   math.Vec3
	up       math.Vec3

	fov         float32
	aspectRatio float32
	nearPlane   float32
	farPlane    float32

	yaw   float32
	pitch float32

	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	viewDirty        bool
	projectionDirty  bool
}

// NewCamera builds a camera at position looking toward target. Yaw and
// pitch are derived from the initial look direction; fov is vertical,
// in radians.
func NewCamera(position, target math.Vec3, fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	c := &Camera{
		position:        position,
		target:          target,
		up:              math.Vec3Up,
		fov:             fov,
		aspectRatio:     aspectRatio,
		nearPlane:       nearPlane,
		farPlane:        farPlane,
		viewDirty:       true,
		projectionDirty: true,
	}
	c.deriveAngles()
	return c
}

// deriveAngles recomputes yaw/pitch from the current look direction.
func (c *Camera) deriveAngles() {
	dir := c.target.Sub(c.position).Normalize()
	c.yaw = math32.Atan2(dir.X, -dir.Z)
	c.pitch = math32.Asin(clamp(dir.Y, -1, 1))
}

func (c *Camera) Position() math.Vec3  { return c.position }
func (c *Camera) Target() math.Vec3    { return c.target }
func (c *Camera) Up() math.Vec3        { return c.up }
func (c *Camera) FOV() float32         { return c.fov }
func (c *Camera) AspectRatio() float32 { return c.aspectRatio }
func (c *Camera) NearPlane() float32   { return c.nearPlane }
func (c *Camera) FarPlane() float32    { return c.farPlane }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }

// Forward returns the unit look direction.
func (c *Camera) Forward() math.Vec3 {
	return directionFromAngles(c.yaw, c.pitch)
}

// Right returns the unit right vector on the ground plane.
func (c *Camera) Right() math.Vec3 {
	return c.Forward().Cross(c.up).Normalize()
}

// SetPosition moves the eye while keeping the target, so the camera
// turns to keep looking at the same point.
func (c *Camera) SetPosition(position math.Vec3) {
	c.position = position
	c.deriveAngles()
	c.viewDirty = true
}

// SetTarget aims the camera at a new point.
func (c *Camera) SetTarget(target math.Vec3) {
	c.target = target
	c.deriveAngles()
	c.viewDirty = true
}

func (c *Camera) SetUp(up math.Vec3) {
	c.up = up.Normalize()
	c.viewDirty = true
}

// SetFOV marks only the projection dirty; fov is vertical, in radians.
func (c *Camera) SetFOV(fov float32) {
	c.fov = fov
	c.projectionDirty = true
}

// SetClipPlanes marks only the projection dirty.
func (c *Camera) SetClipPlanes(nearPlane, farPlane float32) {
	c.nearPlane = nearPlane
	c.farPlane = farPlane
	c.projectionDirty = true
}

// Move translates position and target together by delta, preserving
// the look direction.
func (c *Camera) Move(delta math.Vec3) {
	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
	c.viewDirty = true
}

func (c *Camera) MoveForward(distance float32) {
	c.Move(c.Forward().Mul(distance))
}

func (c *Camera) MoveRight(distance float32) {
	c.Move(c.Right().Mul(distance))
}

func (c *Camera) MoveUp(distance float32) {
	c.Move(c.up.Mul(distance))
}

// Rotate applies yaw and pitch deltas in radians. Pitch is clamped
// short of straight up/down to keep the view basis well-defined, and
// yaw wraps into (-π, π]. The target is recomputed from the absolute
// angles rather than incrementally rotated.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.yaw = wrapAngle(c.yaw + deltaYaw)
	c.pitch = clamp(c.pitch+deltaPitch, -maxPitch, maxPitch)

	c.target = c.position.Add(directionFromAngles(c.yaw, c.pitch))
	c.viewDirty = true
}

// Orbit swings the eye around the target by yaw and pitch deltas,
// keeping the distance to the target constant and the look direction
// pointed at it. The pitch of the resulting look direction is clamped
// like Rotate's. A camera sitting on its target has no orbit radius
// and stays put.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	offset := c.position.Sub(c.target)
	radius := offset.Length()
	if radius == 0 {
		return
	}

	dir := offset.Mul(-1 / radius)
	c.yaw = wrapAngle(math32.Atan2(dir.X, -dir.Z) + deltaYaw)
	c.pitch = clamp(math32.Asin(clamp(dir.Y, -1, 1))+deltaPitch, -maxPitch, maxPitch)

	c.position = c.target.Sub(directionFromAngles(c.yaw, c.pitch).Mul(radius))
	c.viewDirty = true
}

// SetAspectRatio marks only the projection dirty.
func (c *Camera) SetAspectRatio(width, height float32) {
	if height > 0 {
		c.aspectRatio = width / height
		c.projectionDirty = true
	}
}

// ViewMatrix returns the cached view matrix, rebuilding it only when
// position or orientation changed since the last call.
func (c *Camera) ViewMatrix() math.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math.Mat4LookAt(c.position, c.target, c.up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	if c.projectionDirty {
		c.projectionMatrix = math.Mat4Perspective(c.fov, c.aspectRatio, c.nearPlane, c.farPlane)
		c.projectionDirty = false
	}
	return c.projectionMatrix
}

func (c *Camera) ViewProjectionMatrix() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// directionFromAngles maps yaw/pitch to a unit direction. Yaw zero
// looks down -Z; positive yaw turns toward +X, positive pitch tilts up.
func directionFromAngles(yaw, pitch float32) math.Vec3 {
	cosPitch := math32.Cos(pitch)
	return math.Vec3{
		X: cosPitch * math32.Sin(yaw),
		Y: math32.Sin(pitch),
		Z: -cosPitch * math32.Cos(yaw),
	}
}

func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
