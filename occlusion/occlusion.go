// Package occlusion answers face-overlap queries between oriented
// blocks using a fixed-resolution per-face occupancy mask, the CPU
// equivalent of the teacher's GPU Hi-Z occluder concept.
package occlusion

import "github.com/gekko3d/voxorient"

// MaskSize is the occupancy grid resolution along each axis of a
// face's UV plane.
const MaskSize = 8

// FaceMask is an 8x8 boolean occupancy grid for one cube face, packed
// one bit per cell into a uint64, mirroring the bit-packing idiom of
// mesh.Brick's OccupancyMask64.
type FaceMask uint64

// Set marks cell (u, v) (each in 0..7) as occupied.
func (m FaceMask) Set(u, v int) FaceMask {
	return m | 1<<uint(v*MaskSize+u)
}

// Test reports whether cell (u, v) is occupied. Coordinates outside
// 0..7 are always unoccupied.
func (m FaceMask) Test(u, v int) bool {
	if u < 0 || v < 0 || u >= MaskSize || v >= MaskSize {
		return false
	}
	return m&(1<<uint(v*MaskSize+u)) != 0
}

// gridToSigned maps a 0..MaskSize-1 grid index to the odd, symmetric
// coordinate space orient.CoordMap's negation operates on, so that
// negating a mapped coordinate mirrors the cell around the face
// center rather than wrapping outside the grid.
func gridToSigned(i int) int {
	return 2*i - (MaskSize - 1)
}

// signedToGrid is the exact inverse of gridToSigned.
func signedToGrid(c int) int {
	return (c + (MaskSize - 1)) / 2
}

// Overlaps reports whether the occluder's solid mask on its own source
// face shares any cell with the occludee's mask on face, once the
// occludee's Orientation is accounted for. For every occupied cell of
// the occludee mask it uses SourceFaceCoord to translate that cell
// back through the occludee's Orientation onto the occluder's source
// face, then tests the occluder mask there.
func Overlaps(occluderMask FaceMask, occludeeOrientation orient.Orientation, occludeeMask FaceMask, face orient.Face) bool {
	for v := 0; v < MaskSize; v++ {
		for u := 0; u < MaskSize; u++ {
			if !occludeeMask.Test(u, v) {
				continue
			}
			signed := orient.UV{U: gridToSigned(u), V: gridToSigned(v)}
			source := occludeeOrientation.SourceFaceCoord(face, signed)
			sourceU, sourceV := signedToGrid(source.U), signedToGrid(source.V)
			if occluderMask.Test(sourceU, sourceV) {
				return true
			}
		}
	}
	return false
}
