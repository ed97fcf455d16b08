package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"shadowbox/math"
)

func almostEqual(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func TestNewCameraDerivesAngles(t *testing.T) {
	// Camera behind the scene on +Z, slightly above, looking at the
	// origin: yaw must be zero (straight down -Z), pitch slightly down.
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 800.0/600.0, 0.1, 100)

	if !almostEqual(c.Yaw(), 0, 0.0001) {
		t.Errorf("expected yaw 0, got %v", c.Yaw())
	}
	if c.Pitch() >= 0 {
		t.Errorf("expected negative pitch, got %v", c.Pitch())
	}

	// Forward points from the eye toward the origin.
	want := math.Vec3Zero.Sub(c.Position()).Normalize()
	got := c.Forward()
	if !almostEqual(got.X, want.X, 0.0001) ||
		!almostEqual(got.Y, want.Y, 0.0001) ||
		!almostEqual(got.Z, want.Z, 0.0001) {
		t.Errorf("Forward: expected %v, got %v", want, got)
	}
}

func TestCameraViewTransformsEyeToOrigin(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 4.0/3.0, 0.1, 100)

	result := c.ViewMatrix().TransformPoint(c.Position())
	if result.Length() > 0.001 {
		t.Errorf("expected eye to map to origin, got %v", result)
	}
}

func TestCameraMoveTranslatesTarget(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 4.0/3.0, 0.1, 100)

	before := c.Forward()
	c.Move(math.NewVec3(1, 0, -2))

	if c.Position() != math.NewVec3(1, 2, 6) {
		t.Errorf("expected position (1,2,6), got %v", c.Position())
	}
	if c.Target() != math.NewVec3(1, 0, -2) {
		t.Errorf("expected target (1,0,-2), got %v", c.Target())
	}

	// Look direction survives translation.
	after := c.Forward()
	if !almostEqual(before.X, after.X, 0.0001) ||
		!almostEqual(before.Y, after.Y, 0.0001) ||
		!almostEqual(before.Z, after.Z, 0.0001) {
		t.Errorf("Forward changed by Move: %v -> %v", before, after)
	}
}

func TestCameraRotateIsDriftFree(t *testing.T) {
	c := NewCamera(math.Vec3Zero, math.Vec3Back, math32.Pi/2, 1, 0.1, 100)

	// 360 small yaw steps return exactly to the starting angles.
	step := 2 * math32.Pi / 360
	for i := 0; i < 360; i++ {
		c.Rotate(step, 0)
	}
	if !almostEqual(c.Yaw(), 0, 0.001) {
		t.Errorf("expected yaw back at 0 after full turn, got %v", c.Yaw())
	}
	if !almostEqual(c.Pitch(), 0, 0.0001) {
		t.Errorf("expected pitch unchanged, got %v", c.Pitch())
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(math.Vec3Zero, math.Vec3Back, math32.Pi/2, 1, 0.1, 100)

	c.Rotate(0, 10)
	if c.Pitch() > maxPitch {
		t.Errorf("pitch exceeded clamp: %v", c.Pitch())
	}
	c.Rotate(0, -20)
	if c.Pitch() < -maxPitch {
		t.Errorf("pitch exceeded negative clamp: %v", c.Pitch())
	}

	// Even at the clamp the view basis stays valid.
	v := c.ViewMatrix()
	if v == math.Mat4Zero() {
		t.Error("view matrix degenerated at pitch clamp")
	}
}

func TestCameraYawWraps(t *testing.T) {
	c := NewCamera(math.Vec3Zero, math.Vec3Back, math32.Pi/2, 1, 0.1, 100)

	c.Rotate(3*math32.Pi/2, 0)
	if c.Yaw() > math32.Pi || c.Yaw() <= -math32.Pi {
		t.Errorf("yaw not wrapped into (-π,π]: %v", c.Yaw())
	}
}

func TestCameraOrbitKeepsDistanceAndAim(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 0, 8), math.NewVec3(1, 1, 1), math32.Pi/2, 1, 0.1, 100)

	target := c.Target()
	radius := c.Position().Sub(target).Length()

	c.Orbit(math32.Pi/3, 0.2)

	if c.Target() != target {
		t.Errorf("orbit moved the target: %v", c.Target())
	}
	if !almostEqual(c.Position().Sub(target).Length(), radius, 0.001) {
		t.Errorf("orbit changed the radius: want %v, got %v",
			radius, c.Position().Sub(target).Length())
	}

	// Still looking at the target from the new position.
	want := target.Sub(c.Position()).Normalize()
	got := c.Forward()
	if !almostEqual(got.X, want.X, 0.0001) ||
		!almostEqual(got.Y, want.Y, 0.0001) ||
		!almostEqual(got.Z, want.Z, 0.0001) {
		t.Errorf("Forward off target after orbit: want %v, got %v", want, got)
	}
}

func TestCameraOrbitFullTurnReturns(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 1, 0.1, 100)
	start := c.Position()

	step := 2 * math32.Pi / 90
	for i := 0; i < 90; i++ {
		c.Orbit(step, 0)
	}

	if !almostEqual(c.Position().X, start.X, 0.01) ||
		!almostEqual(c.Position().Y, start.Y, 0.01) ||
		!almostEqual(c.Position().Z, start.Z, 0.01) {
		t.Errorf("expected position back at %v after full orbit, got %v", start, c.Position())
	}
}

func TestCameraOrbitZeroRadius(t *testing.T) {
	c := NewCamera(math.NewVec3(3, 1, 2), math.NewVec3(3, 1, 2), math32.Pi/2, 1, 0.1, 100)

	// A camera on its target has nothing to orbit around; must not
	// produce NaNs or move.
	c.Orbit(1, 1)
	if c.Position() != math.NewVec3(3, 1, 2) {
		t.Errorf("expected position unchanged, got %v", c.Position())
	}
}

func TestCameraSetPositionKeepsAim(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 1, 0.1, 100)

	c.SetPosition(math.NewVec3(5, 0, 5))

	// The camera turned to keep looking at the old target.
	want := c.Target().Sub(c.Position()).Normalize()
	got := c.Forward()
	if !almostEqual(got.X, want.X, 0.0001) ||
		!almostEqual(got.Y, want.Y, 0.0001) ||
		!almostEqual(got.Z, want.Z, 0.0001) {
		t.Errorf("Forward not re-derived after SetPosition: want %v, got %v", want, got)
	}

	// The moved eye still maps to the view-space origin, so the cache
	// was invalidated.
	result := c.ViewMatrix().TransformPoint(c.Position())
	if result.Length() > 0.001 {
		t.Errorf("stale view matrix after SetPosition: eye maps to %v", result)
	}
}

func TestCameraProjectionSetters(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 4.0/3.0, 0.1, 100)
	view := c.ViewMatrix()

	proj := c.ProjectionMatrix()
	c.SetFOV(math32.Pi / 3)
	if c.ProjectionMatrix() == proj {
		t.Error("projection unchanged after SetFOV")
	}

	proj = c.ProjectionMatrix()
	c.SetClipPlanes(0.5, 200)
	if c.ProjectionMatrix() == proj {
		t.Error("projection unchanged after SetClipPlanes")
	}
	if c.NearPlane() != 0.5 || c.FarPlane() != 200 {
		t.Errorf("clip planes not stored: near %v far %v", c.NearPlane(), c.FarPlane())
	}

	// Projection-only setters never touch the view.
	if c.ViewMatrix() != view {
		t.Error("view changed after projection-only setters")
	}
}

func TestCameraViewMatrixMemoization(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 4.0/3.0, 0.1, 100)

	// Repeated reads without mutation return bit-identical matrices.
	first := c.ViewMatrix()
	second := c.ViewMatrix()
	if first != second {
		t.Error("repeated ViewMatrix calls disagreed without mutation")
	}

	// Mutation invalidates the cache.
	c.MoveForward(1)
	if c.ViewMatrix() == first {
		t.Error("ViewMatrix unchanged after MoveForward")
	}
}

func TestCameraProjectionIndependentOfView(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 2, 8), math.Vec3Zero, math32.Pi/2, 4.0/3.0, 0.1, 100)

	proj := c.ProjectionMatrix()
	c.Move(math.NewVec3(5, 0, 0))
	c.Rotate(0.5, 0.1)
	if c.ProjectionMatrix() != proj {
		t.Error("projection changed after view-only mutations")
	}

	view := c.ViewMatrix()
	c.SetAspectRatio(1920, 1080)
	if c.ProjectionMatrix() == proj {
		t.Error("projection unchanged after aspect ratio change")
	}
	if c.ViewMatrix() != view {
		t.Error("view changed after projection-only mutation")
	}
}
