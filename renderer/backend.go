package renderer

import (
	"shadowbox/core"
	"shadowbox/math"
	"shadowbox/scene"
)

// FrameParams carries the per-frame lighting state handed to the
// backend at the start of the composite pass.
type FrameParams struct {
	Background     core.Color
	LightDirection math.Vec3
	LightSpace     math.Mat4
	Ambient        float32
}

// DrawBackend is the GPU-facing half of the renderer. The orchestrator
// decides pass order and matrices; the backend owns shaders, buffers
// and GL state.
//
// Contract: EndShadowPass must restore the default render target and
// the viewport set by the last SetViewport call, so the composite pass
// never sees shadow-pass state.
type DrawBackend interface {
	SetViewport(width, height int)

	// Shadow pass: depth-only rendering into the shadow map.
	BeginShadowPass()
	DrawDepth(mesh *scene.Mesh, lightMVP math.Mat4)
	EndShadowPass()

	// Composite pass: clear, then lit or emissive draws sampling the
	// shadow map produced above.
	BeginFrame(params FrameParams)
	DrawLit(mesh *scene.Mesh, mvp, model math.Mat4, color core.Color)
	DrawEmissive(mesh *scene.Mesh, mvp math.Mat4, color core.Color)

	Destroy()
}
