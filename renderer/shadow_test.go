package renderer

import (
	"testing"

	"github.com/chewxy/math32"

	"shadowbox/math"
	"shadowbox/scene"
)

// overheadLight builds a light shining straight down, which keeps the
// depth arithmetic in these tests easy to reason about.
func overheadLight() *scene.DirectionalLight {
	return scene.NewDirectionalLight(math.NewVec3(0, 1, 0))
}

// lightDepthOf returns the remapped [0,1] shadow-map depth of a world
// point, the same value the depth pass would write.
func lightDepthOf(l *scene.DirectionalLight, p math.Vec3) float32 {
	proj := l.SpaceMatrix().MulVec(p.ToVec4(1)).ToVec3DivW()
	return proj.Z*0.5 + 0.5
}

func TestShadowFactorLitWithoutOccluder(t *testing.T) {
	l := overheadLight()
	up := math.Vec3Up

	// Empty shadow map: everything reads maximum depth.
	sample := func(u, v float32) float32 { return 1 }

	got := ShadowFactor(l.SpaceMatrix(), math.Vec3Zero, up, l.Direction, sample)
	if got != 0 {
		t.Errorf("expected lit (0) with empty shadow map, got %v", got)
	}
}

func TestShadowFactorOccluded(t *testing.T) {
	l := overheadLight()
	up := math.Vec3Up

	// An occluder hangs at y=5 over the ground at the origin; the map
	// holds the occluder's depth everywhere.
	occluderDepth := lightDepthOf(l, math.NewVec3(0, 5, 0))
	sample := func(u, v float32) float32 { return occluderDepth }

	got := ShadowFactor(l.SpaceMatrix(), math.Vec3Zero, up, l.Direction, sample)
	if got != 1 {
		t.Errorf("expected shadowed (1) under occluder, got %v", got)
	}
}

func TestShadowFactorBiasPreventsSelfShadowing(t *testing.T) {
	l := overheadLight()
	up := math.Vec3Up
	p := math.NewVec3(1, 0, 1)

	// The map holds the surface's own depth: without bias this is the
	// acne case, with bias the surface stays lit.
	ownDepth := lightDepthOf(l, p)
	sample := func(u, v float32) float32 { return ownDepth }

	got := ShadowFactor(l.SpaceMatrix(), p, up, l.Direction, sample)
	if got != 0 {
		t.Errorf("expected surface lit against its own depth, got %v", got)
	}
}

func TestShadowFactorFailsOpenOutsideVolume(t *testing.T) {
	l := scene.NewDirectionalLight(math.NewVec3(-0.45, 0.82, -0.4))

	// A point far outside the shadow volume must be lit even when the
	// sampler claims everything is occluded.
	sample := func(u, v float32) float32 { return 0 }

	got := ShadowFactor(l.SpaceMatrix(), math.NewVec3(1000, 0, 0), math.Vec3Up, l.Direction, sample)
	if got != 0 {
		t.Errorf("expected fail-open lit (0) outside shadow volume, got %v", got)
	}
}

func TestShadowBias(t *testing.T) {
	lightDir := math.Vec3Up

	// Directly lit surface: minimum bias.
	if b := ShadowBias(math.Vec3Up, lightDir); b != 0.001 {
		t.Errorf("expected floor bias 0.001 facing the light, got %v", b)
	}

	// Grazing surface: slope-scaled bias.
	grazing := ShadowBias(math.Vec3Right, lightDir)
	if math32.Abs(grazing-0.005) > 0.0001 {
		t.Errorf("expected bias 0.005 at grazing angle, got %v", grazing)
	}

	// Bias grows monotonically as the surface tilts away.
	tilted := ShadowBias(math.NewVec3(1, 1, 0), lightDir)
	if !(tilted > 0.001 && tilted < grazing) {
		t.Errorf("expected tilted bias between floor and grazing, got %v", tilted)
	}
}

func TestBrightness(t *testing.T) {
	up := math.Vec3Up
	ambient := float32(0.3)

	// Fully shadowed: only the ambient floor remains.
	if b := Brightness(up, up, ambient, 1); b != ambient {
		t.Errorf("expected ambient %v in full shadow, got %v", ambient, b)
	}

	// Facing the light, unshadowed: full brightness.
	if b := Brightness(up, up, ambient, 0); math32.Abs(b-1) > 0.0001 {
		t.Errorf("expected brightness 1 facing the light, got %v", b)
	}

	// Perpendicular to the light: diffuse vanishes, ambient remains.
	if b := Brightness(math.Vec3Right, up, ambient, 0); b != ambient {
		t.Errorf("expected ambient %v at grazing angle, got %v", ambient, b)
	}

	// Surfaces facing away clamp diffuse at zero rather than darken.
	if b := Brightness(math.Vec3Down, up, ambient, 0); b != ambient {
		t.Errorf("expected ambient %v facing away, got %v", ambient, b)
	}
}
