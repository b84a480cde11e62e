package orient

// Face is one of the six outward cube-face normals, tagged so that the
// zero value is +Y. A default-initialized Face (and, by extension, a
// default-initialized Rotation or Orientation) is never an accident:
// it is always the identity/top face.
type Face uint8

const (
	PosY Face = iota // up
	NegY              // down
	PosX              // right
	NegX              // left
	PosZ              // toward the viewer
	NegZ              // away from the viewer
)

const numFaces = 6

func (f Face) String() string {
	return faceNames[f]
}

var faceNames = [numFaces]string{
	PosY: "+Y", NegY: "-Y",
	PosX: "+X", NegX: "-X",
	PosZ: "+Z", NegZ: "-Z",
}

// vec3i is an axis-aligned unit vector, used only to carry out the
// small amount of integer cross-product arithmetic the face and
// rotation tables are built from. It never appears in the public API.
type vec3i struct{ x, y, z int8 }

func (a vec3i) add(b vec3i) vec3i {
	return vec3i{a.x + b.x, a.y + b.y, a.z + b.z}
}

func (a vec3i) scale(s int8) vec3i {
	return vec3i{a.x * s, a.y * s, a.z * s}
}

func (a vec3i) cross(b vec3i) vec3i {
	return vec3i{
		a.y*b.z - a.z*b.y,
		a.z*b.x - a.x*b.z,
		a.x*b.y - a.y*b.x,
	}
}

func (a vec3i) negate() vec3i { return vec3i{-a.x, -a.y, -a.z} }

var faceVectors = [numFaces]vec3i{
	PosY: {0, 1, 0}, NegY: {0, -1, 0},
	PosX: {1, 0, 0}, NegX: {-1, 0, 0},
	PosZ: {0, 0, 1}, NegZ: {0, 0, -1},
}

// faceFromVector is built once from faceVectors; every vector that
// appears anywhere in this package is the image of some Face under a
// signed permutation, so it is always present.
var faceFromVector = func() map[vec3i]Face {
	m := make(map[vec3i]Face, numFaces)
	for f, v := range faceVectors {
		m[v] = Face(f)
	}
	return m
}()

func vectorToFace(v vec3i) Face {
	f, ok := faceFromVector[v]
	if !ok {
		panic("orient: vector is not a unit cube-face vector")
	}
	return f
}

// Invert returns the opposite face on the same axis. invert(invert(f)) == f
// because the six tags are paired as (even, even+1).
func (f Face) Invert() Face {
	return Face(uint8(f) ^ 1)
}

// Flip applies a Flip's per-axis reflection to f: if fl reflects f's
// axis, f is inverted, otherwise f is returned unchanged.
func (f Face) Flip(fl Flip) Face {
	if fl.axisSet(f.axis()) {
		return f.Invert()
	}
	return f
}

// axis identifies which of the three principal axes f lies on (0=X, 1=Y, 2=Z),
// matching the bit order Flip uses for x()/y()/z().
func (f Face) axis() axis {
	switch f {
	case PosY, NegY:
		return axisY
	case PosX, NegX:
		return axisX
	default:
		return axisZ
	}
}

// Up returns f's neighbor face toward the top of f's own UV plane, in
// the reference right-handed, +Y-up, +X-right, +Z-toward-viewer
// convention. Every other face-neighbor accessor is derived from this
// one and the cross-product identity right = up × normal; changing
// convention means changing only this function.
func (f Face) Up() Face {
	switch f {
	case PosY:
		return NegZ
	case NegY:
		return PosZ
	default:
		return PosY
	}
}

// Down returns the neighbor opposite Up; Down = Invert ∘ Up.
func (f Face) Down() Face {
	return f.Up().Invert()
}

// Right returns f's neighbor toward the right of f's own UV plane.
// Derived from Up via right = up × f, which reproduces the reference
// convention's anchor points +Y.right = +X and +X.right = -Z.
func (f Face) Right() Face {
	return vectorToFace(faceVectors[f.Up()].cross(faceVectors[f]))
}

// Left returns the neighbor opposite Right; Left = Invert ∘ Right.
func (f Face) Left() Face {
	return f.Right().Invert()
}

// Vector returns f's outward unit normal as an integer triple, for
// callers outside this package that need to build geometry from Faces
// (mesh generation, occlusion-mask placement) without reimplementing
// the face/vector correspondence.
func (f Face) Vector() [3]int {
	v := faceVectors[f]
	return [3]int{int(v.x), int(v.y), int(v.z)}
}
