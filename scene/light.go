package scene

import (
	"github.com/chewxy/math32"

	"shadowbox/math"
)

// DirectionalLight models a distant light (like the sun) by a
// direction plus an orthographic shadow volume. The light's virtual
// position is the direction scaled by Distance, looking back at the
// world origin; the ortho box of HalfExtent around that view is the
// region that can receive shadows.
type DirectionalLight struct {
	Direction  math.Vec3
	Distance   float32
	HalfExtent float32
	NearPlane  float32
	FarPlane   float32
	Ambient    float32
}

func NewDirectionalLight(direction math.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Direction:  direction.Normalize(),
		Distance:   15,
		HalfExtent: 15,
		NearPlane:  0.1,
		FarPlane:   50,
		Ambient:    0.3,
	}
}

// Position is the light's virtual eye point for the shadow pass.
func (l *DirectionalLight) Position() math.Vec3 {
	return l.Direction.Mul(l.Distance)
}

func (l *DirectionalLight) ViewMatrix() math.Mat4 {
	// A vertical light is parallel to the world up vector; fall back
	// to +Z so the view basis stays well-defined.
	up := math.Vec3Up
	if math32.Abs(l.Direction.Normalize().Dot(up)) > 0.999 {
		up = math.Vec3Front
	}
	return math.Mat4LookAt(l.Position(), math.Vec3Zero, up)
}

func (l *DirectionalLight) ProjectionMatrix() math.Mat4 {
	e := l.HalfExtent
	return math.Mat4Orthographic(-e, e, -e, e, l.NearPlane, l.FarPlane)
}

// SpaceMatrix maps world space into the light's clip space. It is
// cheap enough to recompute every frame, which keeps a future moving
// light from needing any extra invalidation.
func (l *DirectionalLight) SpaceMatrix() math.Mat4 {
	return l.ProjectionMatrix().Mul(l.ViewMatrix())
}
