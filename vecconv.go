package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ToVec3 converts an integer coordinate triple, as used throughout the
// algebra, to the float vector type the rest of the rendering stack
// (meshing, transform composition) works in.
func ToVec3(p [3]int) mgl32.Vec3 {
	return mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}

// FromVec3 rounds a float vector back to an integer coordinate triple,
// for the case where a caller needs to feed a rotated render-space
// vector back into face/coordinate lookups.
func FromVec3(v mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Round(float64(v[0]))),
		int(math.Round(float64(v[1]))),
		int(math.Round(float64(v[2]))),
	}
}

// TransformVec3 applies o's coordinate action directly to a float
// vector, the form the mesher actually consumes per vertex.
func (o Orientation) TransformVec3(v mgl32.Vec3) mgl32.Vec3 {
	x := o.Transform([3]int{1, 0, 0})
	y := o.Transform([3]int{0, 1, 0})
	z := o.Transform([3]int{0, 0, 1})
	var out mgl32.Vec3
	for i := 0; i < 3; i++ {
		out[i] = float32(x[i])*v[0] + float32(y[i])*v[1] + float32(z[i])*v[2]
	}
	return out
}
