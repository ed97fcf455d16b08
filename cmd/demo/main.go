package main

import (
	"time"

	"github.com/chewxy/math32"

	"shadowbox/config"
	"shadowbox/core"
	"shadowbox/internal/opengl"
	"shadowbox/math"
	"shadowbox/renderer"
	"shadowbox/scene"
)

// Letter dimensions for the rotating "N" centerpiece. The diagonal bar
// spans the inner gap between the two legs corner to corner.
const (
	legHeight    = 2.75
	legThickness = 0.4
	legDepth     = 0.6
	legOffsetX   = 0.85
)

// buildLetterN assembles the two legs and the diagonal as children of
// an empty root, so the whole letter spins as one unit. Returns the
// root (no mesh of its own) and the drawable parts.
func buildLetterN(color core.Color) (*scene.Object, []*scene.Object) {
	root := scene.NewObject("letter-n", nil)
	root.Transform.Position = math.NewVec3(1.5, 1, 1.5)
	root.Transform.Rotation.X = 0.35

	// One shared cube; per-part tint comes from the object color.
	bar := scene.CreateCube(1)

	left := scene.NewObject("left-leg", bar)
	left.Transform.Position = math.NewVec3(-legOffsetX, 0, 0)
	left.Transform.Scale = math.NewVec3(legThickness, legHeight, legDepth)

	right := scene.NewObject("right-leg", bar)
	right.Transform.Position = math.NewVec3(legOffsetX, 0, 0)
	right.Transform.Scale = math.NewVec3(legThickness, legHeight, legDepth)

	innerSpanX := float32(2 * (legOffsetX - legThickness/2))
	diagonalLength := math32.Sqrt(innerSpanX*innerSpanX+legHeight*legHeight) + legThickness
	diagonalAngle := -math32.Atan2(innerSpanX, legHeight)

	diagonal := scene.NewObject("diagonal", bar)
	diagonal.Transform.Rotation.Z = diagonalAngle
	diagonal.Transform.Scale = math.NewVec3(legThickness, diagonalLength, legDepth)

	parts := []*scene.Object{left, right, diagonal}
	for _, p := range parts {
		p.Parent = root
		p.Color = color
	}
	return root, parts
}

// buildRoom returns the floor and the two back walls. They share one
// double-sided cube so both faces survive back-face culling and catch
// shadows from either side.
func buildRoom() []*scene.Object {
	slab := scene.CreateCube(1)
	slab.MakeDoubleSided()

	floor := scene.NewObject("floor", slab)
	floor.Color = core.Color{R: 160, G: 160, B: 160}
	floor.Transform.Position = math.NewVec3(1.5, -0.7, 1.5)
	floor.Transform.Rotation.Y = math32.Pi
	floor.Transform.Scale = math.NewVec3(6, 0.2, 6)

	wallX := scene.NewObject("wall-x", slab)
	wallX.Color = core.Color{R: 190, G: 190, B: 190}
	wallX.Transform.Position = math.NewVec3(4.5, 0.7, 1.5)
	wallX.Transform.Rotation.Y = math32.Pi
	wallX.Transform.Scale = math.NewVec3(0.2, 3, 6)

	wallZ := scene.NewObject("wall-z", slab)
	wallZ.Color = core.Color{R: 190, G: 190, B: 190}
	wallZ.Transform.Position = math.NewVec3(1.5, 0.7, 4.5)
	wallZ.Transform.Rotation.Y = math32.Pi
	wallZ.Transform.Scale = math.NewVec3(6, 3, 0.2)

	return []*scene.Object{floor, wallX, wallZ}
}

func handleInput(window *core.Window, camera *scene.Camera, cfg *config.Config, dt float32) {
	move := cfg.Camera.MoveSpeed * dt
	rotate := cfg.Camera.RotateSpeed * math32.Pi / 180 * dt

	if window.IsKeyPressed(core.KeyW) {
		camera.MoveForward(move)
	}
	if window.IsKeyPressed(core.KeyS) {
		camera.MoveForward(-move)
	}
	if window.IsKeyPressed(core.KeyD) {
		camera.MoveRight(move)
	}
	if window.IsKeyPressed(core.KeyA) {
		camera.MoveRight(-move)
	}
	if window.IsKeyPressed(core.KeyE) {
		camera.MoveUp(move)
	}
	if window.IsKeyPressed(core.KeyQ) {
		camera.MoveUp(-move)
	}
	if window.IsKeyPressed(core.KeyRight) {
		camera.Rotate(rotate, 0)
	}
	if window.IsKeyPressed(core.KeyLeft) {
		camera.Rotate(-rotate, 0)
	}
	if window.IsKeyPressed(core.KeyUp) {
		camera.Rotate(0, rotate)
	}
	if window.IsKeyPressed(core.KeyDown) {
		camera.Rotate(0, -rotate)
	}
	if window.IsKeyPressed(core.KeyEscape) {
		window.SetShouldClose(true)
	}
}

func main() {
	cfg, err := config.Load("shadowbox.toml")
	if err != nil {
		core.LogFatal("config: %v", err)
	}
	core.SetLogLevel(cfg.LogLevel)

	windowConfig := core.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	}
	window, err := core.NewWindow(windowConfig)
	if err != nil {
		core.LogFatal("window: %v", err)
	}
	defer window.Destroy()

	backend, err := opengl.NewRenderer(cfg.Shadow.MapSize)
	if err != nil {
		core.LogFatal("renderer: %v", err)
	}

	r := renderer.New(backend)
	defer r.Destroy()

	s := scene.NewScene()
	s.Camera = scene.NewCamera(
		math.NewVec3(0, 2, -8),
		math.Vec3Zero,
		cfg.Camera.FovDegrees*math32.Pi/180,
		float32(cfg.Window.Width)/float32(cfg.Window.Height),
		cfg.Camera.Near,
		cfg.Camera.Far,
	)

	light := scene.NewDirectionalLight(math.NewVec3(
		cfg.Light.Direction[0], cfg.Light.Direction[1], cfg.Light.Direction[2]))
	light.Distance = cfg.Light.Distance
	light.HalfExtent = cfg.Light.HalfExtent
	light.NearPlane = cfg.Light.Near
	light.FarPlane = cfg.Light.Far
	light.Ambient = cfg.Light.Ambient
	s.Light = light

	letter, parts := buildLetterN(core.Color{R: 40, G: 190, B: 255})
	s.Add(parts...)
	s.Add(buildRoom()...)

	marker := scene.NewObject("light-marker", scene.CreateSphere(0.3, 10, 10))
	marker.Color = core.Color{R: 255, G: 255, B: 200}
	marker.Emissive = true
	marker.Transform.Position = light.Position()
	marker.Transform.Scale = math.NewVec3(0.5, 0.5, 0.5)
	s.Add(marker)

	r.SetScene(s)
	r.Resize(window.GetFramebufferSize())

	core.LogInfo("controls: WASD move, Q/E down/up, arrows look, ESC quit")

	// Fixed 1/60 s step: vsync paces the loop, and animation stays
	// deterministic regardless of real frame time.
	const dt = float32(1.0 / 60.0)
	spin := scene.Spin{Object: letter, Speed: 0.6}

	var elapsed float32
	frames := 0
	fpsLast := time.Now()

	for !window.ShouldClose() {
		window.PollEvents()
		elapsed += dt

		handleInput(window, s.Camera, cfg, dt)

		// The light marker tracks the light so a moving light stays
		// visualized.
		spin.Apply(elapsed)
		marker.Transform.Position = light.Position()

		if err := r.RenderFrame(); err != nil {
			core.LogError("render: %v", err)
			break
		}
		window.SwapBuffers()

		frames++
		if wall := time.Since(fpsLast).Seconds(); wall >= 0.5 {
			objects, triangles := r.DrawStats()
			core.LogDebug("fps=%.0f objects=%d triangles=%d",
				float64(frames)/wall, objects, triangles)
			frames = 0
			fpsLast = time.Now()
		}
	}
}
