package scene

// Spin rotates an object about its local Y axis as a pure function of
// elapsed time: the angle is always speed·elapsed, never an
// accumulation of per-frame increments, so replaying the same elapsed
// time reproduces the same pose exactly.
type Spin struct {
	Object *Object
	Speed  float32 // radians per second
}

func (s Spin) Apply(elapsed float32) {
	if s.Object == nil {
		return
	}
	s.Object.Transform.Rotation.Y = s.Speed * elapsed
}
