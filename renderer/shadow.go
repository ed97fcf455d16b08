package renderer

import (
	"github.com/chewxy/math32"

	"shadowbox/math"
)

// This file is the CPU statement of the shadow test and lighting model
// the composite shader implements. Keeping it here pins the exact
// semantics (remap, fail-open, bias) independently of GLSL.

// DepthSampler reads the shadow map at normalized coordinates in
// [0,1]². Reads outside that range must return 1 (maximum depth).
type DepthSampler func(u, v float32) float32

// ShadowBias returns the slope-scaled depth bias for a surface facing
// the light at the given angle. Surfaces nearly perpendicular to the
// light need a larger bias to avoid self-shadowing acne; the floor
// keeps a minimum bias on directly lit surfaces.
func ShadowBias(normal, lightDir math.Vec3) float32 {
	nDotL := normal.Normalize().Dot(lightDir.Normalize())
	bias := 0.005 * (1 - nDotL)
	if bias < 0.001 {
		bias = 0.001
	}
	return bias
}

// ShadowFactor returns 1 when the world-space point is occluded from
// the light and 0 when lit. Points beyond the light's far plane
// (remapped depth > 1) are always lit: the shadow test fails open so
// geometry outside the shadow volume is never spuriously darkened.
func ShadowFactor(lightSpace math.Mat4, worldPos, normal, lightDir math.Vec3, sample DepthSampler) float32 {
	clip := lightSpace.MulVec(worldPos.ToVec4(1))
	proj := clip.ToVec3DivW()

	// NDC [-1,1] to texture space [0,1].
	u := proj.X*0.5 + 0.5
	v := proj.Y*0.5 + 0.5
	depth := proj.Z*0.5 + 0.5

	if depth > 1 {
		return 0
	}

	mapDepth := float32(1)
	if u >= 0 && u <= 1 && v >= 0 && v <= 1 {
		mapDepth = sample(u, v)
	}

	if depth-ShadowBias(normal, lightDir) > mapDepth {
		return 1
	}
	return 0
}

// Brightness combines the ambient floor with shadow-attenuated
// Lambertian diffuse. A fully shadowed surface still shows at the
// ambient level; a fully lit surface facing the light reaches 1.
func Brightness(normal, lightDir math.Vec3, ambient, shadow float32) float32 {
	diffuse := math32.Max(normal.Normalize().Dot(lightDir.Normalize()), 0)
	return ambient + (1-ambient)*diffuse*(1-shadow)
}
