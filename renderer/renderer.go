package renderer

import (
	"fmt"

	"shadowbox/math"
	"shadowbox/scene"
)

// passState tracks where RenderFrame is in the frame. It exists to
// catch re-entrant or misordered calls, not to drive behavior.
type passState int

const (
	passIdle passState = iota
	passShadow
	passComposite
)

// Renderer drives the two-pass shadow-mapped frame: first the scene's
// shadow casters are rendered depth-only from the light's point of
// view, then the full scene is drawn from the camera sampling that
// depth map. All matrix composition happens here; the backend only
// executes draws.
type Renderer struct {
	backend DrawBackend
	scene   *scene.Scene
	state   passState

	// Per-frame stats from the last RenderFrame.
	lastObjects   int
	lastTriangles int
}

func New(backend DrawBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) SetScene(s *scene.Scene) {
	r.scene = s
}

func (r *Renderer) Resize(width, height int) {
	r.backend.SetViewport(width, height)
	if r.scene != nil && r.scene.Camera != nil {
		r.scene.Camera.SetAspectRatio(float32(width), float32(height))
	}
}

// RenderFrame executes both passes for the current scene. The light's
// space matrix is recomputed from scratch each frame, so moving the
// light between frames needs no invalidation anywhere.
func (r *Renderer) RenderFrame() error {
	if r.state != passIdle {
		return fmt.Errorf("RenderFrame re-entered during pass %d", r.state)
	}
	if r.scene == nil || r.scene.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}
	if r.scene.Light == nil {
		return fmt.Errorf("no directional light")
	}
	defer func() { r.state = passIdle }()

	light := r.scene.Light
	lightSpace := light.SpaceMatrix()

	// Shadow pass: depth only, casters only. Emissive objects are
	// skipped here so the light marker never shadows the scene.
	r.state = passShadow
	r.backend.BeginShadowPass()
	for _, obj := range r.scene.Objects {
		if obj.Mesh == nil || !obj.CastsShadow() {
			continue
		}
		r.backend.DrawDepth(obj.Mesh, lightSpace.Mul(obj.WorldMatrix()))
	}
	r.backend.EndShadowPass()

	// Composite pass from the camera.
	r.state = passComposite
	r.backend.BeginFrame(FrameParams{
		Background:     r.scene.Background,
		LightDirection: light.Direction,
		LightSpace:     lightSpace,
		Ambient:        light.Ambient,
	})

	viewProj := r.scene.Camera.ViewProjectionMatrix()

	objects, triangles := 0, 0
	for _, obj := range r.scene.Objects {
		if obj.Mesh == nil {
			continue
		}
		model := obj.WorldMatrix()
		mvp := viewProj.Mul(model)

		if obj.Emissive {
			r.backend.DrawEmissive(obj.Mesh, mvp, obj.Color)
		} else {
			r.backend.DrawLit(obj.Mesh, mvp, model, obj.Color)
		}
		objects++
		triangles += len(obj.Mesh.Indices) / 3
	}

	r.lastObjects = objects
	r.lastTriangles = triangles
	return nil
}

// DrawStats returns counts from the most recent RenderFrame.
func (r *Renderer) DrawStats() (objects, triangles int) {
	return r.lastObjects, r.lastTriangles
}

// WorldToScreen projects a world-space point to pixel coordinates for
// the given viewport. The second return is false when the point is
// behind the camera.
func (r *Renderer) WorldToScreen(p math.Vec3, width, height int) (math.Vec2, bool) {
	if r.scene == nil || r.scene.Camera == nil {
		return math.Vec2{}, false
	}
	clip := r.scene.Camera.ViewProjectionMatrix().MulVec(p.ToVec4(1))
	if clip.W <= 0 {
		return math.Vec2{}, false
	}
	ndc := clip.ToVec3DivW()
	return math.Vec2{
		X: (ndc.X*0.5 + 0.5) * float32(width),
		Y: (1 - (ndc.Y*0.5 + 0.5)) * float32(height),
	}, true
}

func (r *Renderer) Destroy() {
	r.backend.Destroy()
}
