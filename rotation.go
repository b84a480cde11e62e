package orient

import "fmt"

// Rotation is one of the 24 proper rotations of a cube, encoded as the
// face that ends up on top (up) plus a quarter-turn count (angle) of
// that top face, viewed from outside the cube. The zero value is the
// identity rotation (up=+Y, angle=0).
type Rotation struct {
	up    Face
	angle uint8 // 0..3
}

// Identity is the neutral Rotation: up=+Y, angle=0.
var Identity = Rotation{up: PosY, angle: 0}

// numRotations is the size of the rotation group: 6 ups times 4 angles.
const numRotations = numFaces * 4

// ErrIncompatibleAxes is returned by FromUpAndForward when forward lies
// on the same axis as up, leaving no valid basis to rotate to.
var ErrIncompatibleAxes = fmt.Errorf("orient: forward face shares an axis with up")

// FromUpAndForward builds the Rotation whose top face is up and whose
// forward() accessor is forward. It fails when forward is up or
// invert(up), the only degenerate basis in the whole algebra.
func FromUpAndForward(up, forward Face) (Rotation, error) {
	if forward == up || forward == up.Invert() {
		return Rotation{}, ErrIncompatibleAxes
	}
	for angle := uint8(0); angle < 4; angle++ {
		r := Rotation{up: up, angle: angle}
		if r.Forward() == forward {
			return r, nil
		}
	}
	// unreachable: the four candidate angles exhaust the four faces
	// orthogonal to up, and forward is guaranteed to be one of them.
	panic("orient: no angle produced the requested forward face")
}

// Up returns r's stored top face.
func (r Rotation) Up() Face { return r.up }

// Angle returns r's quarter-turn count in 0..3.
func (r Rotation) Angle() uint8 { return r.angle }

// Down returns the face opposite Up.
func (r Rotation) Down() Face { return r.up.Invert() }

// Right returns reface(r, +X).
func (r Rotation) Right() Face { return r.Reface(PosX) }

// Left returns reface(r, -X).
func (r Rotation) Left() Face { return r.Reface(NegX) }

// Forward returns reface(r, +Z).
func (r Rotation) Forward() Face { return r.Reface(PosZ) }

// Backward returns reface(r, -Z).
func (r Rotation) Backward() Face { return r.Reface(NegZ) }

// index is r's position in the dense 0..23 enumeration used by the
// generated tables and by Cycle. It is unrelated to the sparse
// single-byte packing in pack.go, which exists for storage, not
// enumeration.
func (r Rotation) index() int {
	return int(r.angle)*numFaces + int(r.up)
}

func rotationFromIndex(idx int) Rotation {
	return Rotation{up: Face(idx % numFaces), angle: uint8(idx / numFaces)}
}

// Reface is the group action of r on Faces: the face that f's content
// is carried onto.
func (r Rotation) Reface(f Face) Face {
	return refaceTable[r.index()*numFaces+int(f)]
}

// SourceFace is the inverse action: the unique g with Reface(g) == f.
func (r Rotation) SourceFace(f Face) Face {
	return sourceFaceTable[r.index()*numFaces+int(f)]
}

// FaceAngle reports, for the face g whose content Reface carries onto
// f, how many quarter turns g's own UV "up" is rotated relative to
// f's native UV "up". It is 0 for every face under Identity.
func (r Rotation) FaceAngle(f Face) int {
	return faceAngleTable[r.index()*numFaces+int(f)]
}

// Rotate applies r's coordinate action to an integer triple: one of
// the 24 signed permutations of three axes. It agrees with Reface in
// that Rotate(unitVector(f)) == unitVector(Reface(f)) for every f.
func (r Rotation) Rotate(p [3]int) [3]int {
	return rotateVector(r.up, int(r.angle), p)
}

// Reorient composes r then s: the Rotation t with
// reface(t, f) == reface(s, reface(r, f)) for every f.
func (r Rotation) Reorient(s Rotation) Rotation {
	t, err := FromUpAndForward(s.Reface(r.Up()), s.Reface(r.Forward()))
	if err != nil {
		panic("orient: Reorient produced a degenerate basis: " + err.Error())
	}
	return t
}

// Deorient is the inverse of Reorient: the Rotation t with
// t.Reorient(s) == r.
func (r Rotation) Deorient(s Rotation) Rotation {
	t, err := FromUpAndForward(s.SourceFace(r.Up()), s.SourceFace(r.Forward()))
	if err != nil {
		panic("orient: Deorient produced a degenerate basis: " + err.Error())
	}
	return t
}

// Invert returns the Rotation t with t.Reorient(r) == Identity.
func (r Rotation) Invert() Rotation {
	return Identity.Deorient(r)
}

// Cycle returns the Rotation offset places ahead of r in the dense
// 0..23 enumeration, wrapping with Euclidean remainder so negative
// offsets move backward correctly.
func (r Rotation) Cycle(offset int) Rotation {
	idx := ((r.index()+offset)%numRotations + numRotations) % numRotations
	return rotationFromIndex(idx)
}

func (r Rotation) String() string {
	return fmt.Sprintf("Rotation(up=%s, angle=%d)", r.up, r.angle)
}

// refaceNaive computes Reface directly from the coordinate action,
// with no table lookup. It is the single source of truth the
// generated tables in tables_gen.go are built from.
func refaceNaive(r Rotation, f Face) Face {
	v := faceVectorInt(f)
	rv := rotateVector(r.up, int(r.angle), v)
	return faceFromVectorInt(rv)
}

// faceAngleNaive computes FaceAngle directly: it compares where g's
// own "up" neighbor lands under r against f's native up/right/down/left
// cycle, where g is the face whose content r carries onto f.
func faceAngleNaive(r Rotation, f Face) int {
	g := sourceFaceNaive(r, f)
	mappedUp := refaceNaive(r, g.Up())
	cyc := faceUVCycle(f)
	for i, c := range cyc {
		if c == mappedUp {
			return i
		}
	}
	panic("orient: face_angle bootstrap found no matching UV-cycle offset")
}

func sourceFaceNaive(r Rotation, f Face) Face {
	for g := Face(0); g < numFaces; g++ {
		if refaceNaive(r, g) == f {
			return g
		}
	}
	panic("orient: reface is not a permutation of the six faces (unreachable)")
}

// faceUVCycle returns f's four UV-plane neighbors in rotational order:
// up, right, down, left.
func faceUVCycle(f Face) [4]Face {
	return [4]Face{f.Up(), f.Right(), f.Down(), f.Left()}
}

// --- coordinate-level rotation math -----------------------------------
//
// A Rotation's coordinate action is built from two pieces: a base
// rotation that carries the canonical +Y axis onto `up` (baseRotate),
// followed by `angle` quarter turns about the `up` axis itself
// (quarterTurn). Both pieces are instances of the same 90-degree
// Rodrigues rotation formula about a chosen axis:
//
//	rotate90(axis, v) = cross(axis, v) + dot(axis, v)*axis
//
// which holds because cos(90) = 0 and sin(90) = 1.

func dotVec3(a, b [3]int) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func crossVec3(a, b [3]int) [3]int {
	return [3]int{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func quarterTurn(axis, v [3]int) [3]int {
	c := crossVec3(axis, v)
	d := dotVec3(axis, v)
	return [3]int{c[0] + axis[0]*d, c[1] + axis[1]*d, c[2] + axis[2]*d}
}

func faceVectorInt(f Face) [3]int {
	v := faceVectors[f]
	return [3]int{int(v.x), int(v.y), int(v.z)}
}

func faceFromVectorInt(v [3]int) Face {
	return vectorToFace(vec3i{int8(v[0]), int8(v[1]), int8(v[2])})
}

// baseRotate carries the canonical +Y axis onto up, with no additional
// twist. For up=+Y it is the identity; for up=-Y it is a 180-degree
// turn about +X (any axis orthogonal to Y would do, +X is simply the
// fixed convention choice); otherwise it is the single 90-degree turn
// about the axis perpendicular to both +Y and up.
func baseRotate(up Face, v [3]int) [3]int {
	switch up {
	case PosY:
		return v
	case NegY:
		axisX := faceVectorInt(PosX)
		return quarterTurn(axisX, quarterTurn(axisX, v))
	default:
		k := crossVec3(faceVectorInt(PosY), faceVectorInt(up))
		return quarterTurn(k, v)
	}
}

func rotateVector(up Face, angle int, v [3]int) [3]int {
	out := baseRotate(up, v)
	axis := faceVectorInt(up)
	for i := 0; i < angle; i++ {
		out = quarterTurn(axis, out)
	}
	return out
}
