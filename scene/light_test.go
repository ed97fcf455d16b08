package scene

import (
	"testing"

	"shadowbox/math"
)

func TestDirectionalLightPosition(t *testing.T) {
	l := NewDirectionalLight(math.NewVec3(0, 1, 0))
	l.Distance = 15

	pos := l.Position()
	if pos != math.NewVec3(0, 15, 0) {
		t.Errorf("expected light position (0,15,0), got %v", pos)
	}
}

func TestDirectionalLightViewLooksAtOrigin(t *testing.T) {
	l := NewDirectionalLight(math.NewVec3(-0.45, 0.82, -0.4))

	// The light's eye maps to the view-space origin, and the world
	// origin lands on the view-space -Z axis at the light's distance.
	view := l.ViewMatrix()
	eye := view.TransformPoint(l.Position())
	if eye.Length() > 0.001 {
		t.Errorf("expected light eye to map to origin, got %v", eye)
	}

	origin := view.TransformPoint(math.Vec3Zero)
	if !almostEqual(origin.X, 0, 0.001) || !almostEqual(origin.Y, 0, 0.001) {
		t.Errorf("expected world origin on the view axis, got %v", origin)
	}
	if !almostEqual(-origin.Z, l.Distance, 0.001) {
		t.Errorf("expected world origin at distance %v, got z=%v", l.Distance, origin.Z)
	}
}

func TestDirectionalLightSpaceMatrix(t *testing.T) {
	l := NewDirectionalLight(math.NewVec3(-0.45, 0.82, -0.4))

	// The world origin sits inside the shadow volume.
	clip := l.SpaceMatrix().MulVec(math.Vec3Zero.ToVec4(1))
	ndc := clip.ToVec3DivW()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		t.Errorf("expected origin inside light clip volume, got %v", ndc)
	}

	// A point far outside the ortho box lands outside NDC.
	far := l.SpaceMatrix().MulVec(math.NewVec3(1000, 0, 0).ToVec4(1)).ToVec3DivW()
	if far.X >= -1 && far.X <= 1 && far.Y >= -1 && far.Y <= 1 {
		t.Errorf("expected far point outside light clip volume, got %v", far)
	}
}

func TestDirectionalLightSpaceMatrixTracksDirection(t *testing.T) {
	l := NewDirectionalLight(math.NewVec3(0, 1, 0))
	before := l.SpaceMatrix()

	l.Direction = math.NewVec3(1, 1, 0).Normalize()
	after := l.SpaceMatrix()

	if before == after {
		t.Error("space matrix unchanged after direction change")
	}
}

func TestNewDirectionalLightNormalizesDirection(t *testing.T) {
	l := NewDirectionalLight(math.NewVec3(0, 10, 0))
	if !almostEqual(l.Direction.Length(), 1, 0.0001) {
		t.Errorf("expected unit direction, got length %v", l.Direction.Length())
	}
}
