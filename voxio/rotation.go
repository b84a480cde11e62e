package voxio

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/voxorient"
)

// ErrInvalidRotationByte is returned by DecodeRotationByte when a
// `.vox` file's `_r` byte does not encode a valid signed permutation
// matrix (its two low index fields name the same row, or no known
// Orientation reproduces the matrix it does encode).
var ErrInvalidRotationByte = errors.New("voxio: invalid rotation byte")

// DecodeRotationByte translates a MagicaVoxel `_r` rotation byte into
// this package's Orientation. The byte encodes its own signed
// permutation matrix: bits 0-1 name which output row +X's column
// lands in, bits 2-3 name +Y's, the remaining row is +Z's, and bits
// 4-6 carry a per-row sign. It is a different encoding of the same
// kind of value orient.Orientation.Pack produces, so the bridge is a
// change of representation, not a lossy conversion for any byte that
// actually encodes a permutation — but a structurally valid chunk can
// still carry a byte that doesn't, and this function reports that
// instead of indexing out of bounds.
func DecodeRotationByte(b byte) (orient.Orientation, error) {
	if b == 0 {
		// 0x00 is not a valid MagicaVoxel permutation byte (its two
		// low index fields collide on row 0); nodes with no "_r" key
		// default to it, meaning "no rotation recorded."
		return orient.IdentityOrientation, nil
	}

	rowX, rowY := int(b&3), int((b>>2)&3)
	if rowX == rowY || rowX > 2 || rowY > 2 {
		return orient.IdentityOrientation, fmt.Errorf("%w: 0x%02x: rows %d and %d are not two of {0,1,2}", ErrInvalidRotationByte, b, rowX, rowY)
	}
	rowForCol := [3]int{rowX, rowY, 3 - rowX - rowY}

	signBit := (b >> 4) & 7
	sign := func(row int) int {
		if signBit&(1<<uint(row)) != 0 {
			return -1
		}
		return 1
	}

	// matrix[row][col] is the (row,col) entry of the 3x3 signed
	// permutation matrix the byte encodes.
	var matrix [3][3]int
	for col, row := range rowForCol {
		matrix[row][col] = sign(row)
	}

	apply := func(v [3]int) [3]int {
		var out [3]int
		for row := 0; row < 3; row++ {
			out[row] = matrix[row][0]*v[0] + matrix[row][1]*v[1] + matrix[row][2]*v[2]
		}
		return out
	}

	wantX := apply([3]int{1, 0, 0})
	wantY := apply([3]int{0, 1, 0})
	wantZ := apply([3]int{0, 0, 1})

	for idx := 0; idx < orient.NumOrientations; idx++ {
		o := orient.OrientationFromIndex(idx)
		if o.Transform([3]int{1, 0, 0}) == wantX &&
			o.Transform([3]int{0, 1, 0}) == wantY &&
			o.Transform([3]int{0, 0, 1}) == wantZ {
			return o, nil
		}
	}
	return orient.IdentityOrientation, fmt.Errorf("%w: 0x%02x: no Orientation reproduces this permutation", ErrInvalidRotationByte, b)
}

// OrientationToTRS produces the translation/rotation/scale matrix a
// mesher or scene graph needs to place a block: o's coordinate action
// expressed as a rotation matrix, combined with the given world
// translation. Scale is always 1 — the algebra has no scale concept
// (see spec non-goals), so it is filled in only for API convenience
// at the boundary with mgl32-based rendering code.
func OrientationToTRS(o orient.Orientation, translation mgl32.Vec3) mgl32.Mat4 {
	x := vec3From(o.Transform([3]int{1, 0, 0}))
	y := vec3From(o.Transform([3]int{0, 1, 0}))
	z := vec3From(o.Transform([3]int{0, 0, 1}))

	rot := mgl32.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
	return mgl32.Translate3D(translation[0], translation[1], translation[2]).Mul4(rot)
}

func vec3From(p [3]int) mgl32.Vec3 {
	return mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}
