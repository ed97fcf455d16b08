package scene

import (
	"shadowbox/core"
	"shadowbox/math"
)

// Transform is a position/rotation/scale triple. Rotation is euler
// angles in radians, applied Y then X then Z.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.Vec3Zero,
		Scale:    math.Vec3One,
	}
}

// Matrix composes translate·rotate·scale, so scale applies in the
// object's local frame before it is rotated and placed.
func (t Transform) Matrix() math.Mat4 {
	return math.Mat4TRS(t.Position, t.Rotation, t.Scale)
}

// Object is a renderable scene node: a mesh instance with its own
// transform, color and shading mode. Emissive objects draw at full
// vertex color, ignore the light and never cast shadows; the light
// marker in a scene is the typical use.
type Object struct {
	Name      string
	Mesh      *Mesh
	Transform Transform
	Color     core.Color
	Emissive  bool

	// Parent chains transforms: the object's world matrix is the
	// parent's world matrix times its own local matrix.
	Parent *Object
}

func NewObject(name string, mesh *Mesh) *Object {
	return &Object{
		Name:      name,
		Mesh:      mesh,
		Transform: NewTransform(),
		Color:     core.ColorWhite,
	}
}

// WorldMatrix walks the parent chain from the root down, so a child's
// local transform is expressed inside its parent's frame.
func (o *Object) WorldMatrix() math.Mat4 {
	local := o.Transform.Matrix()
	if o.Parent == nil {
		return local
	}
	return o.Parent.WorldMatrix().Mul(local)
}

// CastsShadow reports whether the object takes part in the shadow
// depth pass.
func (o *Object) CastsShadow() bool {
	return !o.Emissive
}
