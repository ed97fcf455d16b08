package scene

import (
	"shadowbox/core"
)

// Scene is the renderable world: one camera, one directional light and
// a flat list of objects. Parent/child structure lives on the objects
// themselves.
type Scene struct {
	Camera     *Camera
	Light      *DirectionalLight
	Objects    []*Object
	Background core.Color
}

func NewScene() *Scene {
	return &Scene{
		Background: core.Color{R: 25, G: 25, B: 35},
	}
}

func (s *Scene) Add(objects ...*Object) {
	s.Objects = append(s.Objects, objects...)
}
