package orient

import "fmt"

// Orientation is a Rotation composed with a Flip, denoting the
// composite action "first rotate, then flip." The zero value is the
// identity Orientation (identity Rotation, zero Flip).
type Orientation struct {
	Rotation Rotation
	Flip     Flip
}

// IdentityOrientation leaves every face and coordinate unchanged.
var IdentityOrientation = Orientation{Rotation: Identity, Flip: FlipNone}

// numOrientations is the full representable space: 24 rotations times
// 8 flips. Only 48 of these are distinct actions (each signed
// permutation of the three axes is reached by four pairs), but all 192
// pairs are valid values.
const numOrientations = numRotations * 8

// index is o's position in the dense 0..191 enumeration the generated
// CoordMap tables are indexed by.
func (o Orientation) index() int {
	return o.Rotation.index()*8 + int(o.Flip)
}

// Reface is the group action of o on Faces: rotate, then flip.
func (o Orientation) Reface(f Face) Face {
	return o.Rotation.Reface(f).Flip(o.Flip)
}

// SourceFace is the functional inverse of Reface. Flip is its own
// inverse, so flipping f before asking the Rotation for its source
// undoes Reface exactly.
func (o Orientation) SourceFace(f Face) Face {
	return o.Rotation.SourceFace(f.Flip(o.Flip))
}

// Transform applies o's coordinate action: rotate, then flip.
func (o Orientation) Transform(p [3]int) [3]int {
	return o.Flip.Apply(o.Rotation.Rotate(p))
}

// Reorient composes o then p, following §4.4's refaced-basis
// reconstruction: refacing o's up/forward through p, composing the
// flips, flipping the refaced basis by the composed flip, and
// rebuilding a Rotation from the result.
func (o Orientation) Reorient(p Orientation) Orientation {
	up1 := p.Reface(o.Reface(PosY))
	fwd1 := p.Reface(o.Reface(PosZ))
	flip := o.Flip.Compose(p.Flip)
	up2 := up1.Flip(flip)
	fwd2 := fwd1.Flip(flip)
	rot, err := FromUpAndForward(up2, fwd2)
	if err != nil {
		panic("orient: Orientation.Reorient produced a degenerate basis: " + err.Error())
	}
	return Orientation{Rotation: rot, Flip: flip}
}

// Deorient is the inverse of Reorient: identical construction but
// using SourceFace of p in place of Reface, since Flip composition is
// its own inverse.
func (o Orientation) Deorient(p Orientation) Orientation {
	up1 := p.SourceFace(o.Reface(PosY))
	fwd1 := p.SourceFace(o.Reface(PosZ))
	flip := o.Flip.Compose(p.Flip)
	up2 := up1.Flip(flip)
	fwd2 := fwd1.Flip(flip)
	rot, err := FromUpAndForward(up2, fwd2)
	if err != nil {
		panic("orient: Orientation.Deorient produced a degenerate basis: " + err.Error())
	}
	return Orientation{Rotation: rot, Flip: flip}
}

// Invert returns the Orientation t with t.Reorient(o) == IdentityOrientation.
func (o Orientation) Invert() Orientation {
	return IdentityOrientation.Deorient(o)
}

// MapFaceCoord answers: given a point uv on the pre-orientation source
// face that o carries onto face, what coordinate does it occupy on
// face's own UV plane?
func (o Orientation) MapFaceCoord(face Face, uv UV) UV {
	return mapFaceCoordTable[o.index()*numFaces+int(face)].Apply(uv)
}

// SourceFaceCoord is the inverse of MapFaceCoord: given a uv expressed
// on face, where on o.SourceFace(face) did it originate?
func (o Orientation) SourceFaceCoord(face Face, uv UV) UV {
	return sourceFaceCoordTable[o.index()*numFaces+int(face)].Apply(uv)
}

func (o Orientation) String() string {
	return fmt.Sprintf("Orientation(%s, flip=%s)", o.Rotation, o.Flip)
}
