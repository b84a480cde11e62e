package mesh

import (
	"golang.org/x/image/math/fixed"

	"github.com/gekko3d/voxorient"
)

// AtlasRect names a single tile in a texture atlas. Index is the
// atlas slot packed into a vertex's 8-bit texture field; Min/Max are
// the tile's actual UV bounds, held in 26.6 fixed point to snap
// exactly onto atlas texel boundaries regardless of the float
// rounding a renderer's sampler would otherwise introduce.
type AtlasRect struct {
	Index uint8
	Min   fixed.Point26_6
	Max   fixed.Point26_6
}

// Snap maps a 0/1 corner selector (as produced by BuildFaceQuad's
// signed-to-atlas conversion) onto the tile's actual fixed-point UV
// bounds.
func (a AtlasRect) Snap(u, v int) fixed.Point26_6 {
	p := a.Min
	if u != 0 {
		p.X = a.Max.X
	}
	if v != 0 {
		p.Y = a.Max.Y
	}
	return p
}

// PackVertex packs one mesh vertex into a single uint32, following the
// same bit layout the reference mesher in the examples pack uses:
// 5 bits each for x/y/z (0-31), 1 bit each for u/v, 3 bits for the
// face direction, 8 bits for the atlas tile, 3 bits for ambient
// occlusion.
func PackVertex(x, y, z, u, v int, face orient.Face, atlasIndex uint8, ao int) uint32 {
	return uint32(x&31) |
		uint32(y&31)<<5 |
		uint32(z&31)<<10 |
		uint32(u&1)<<15 |
		uint32(v&1)<<16 |
		uint32(face&7)<<17 |
		uint32(atlasIndex)<<20 |
		uint32(ao&7)<<28
}

// BuildFaceQuad emits the four packed vertices of one cube face of a
// brick voxel, oriented by o. localFace names the face in the brick's
// own unrotated frame (the side of the unit cube the solid neighbor
// check found exposed); voxelPos is the voxel's local integer position
// within its BrickSize^3 brick. Winding is always emitted as
// (0,0)-(1,0)-(1,1)-(0,1) in source-face UV order; callers must
// reverse the two triangles built from it when o.Flip.ReverseIndices()
// is true, per spec.
func BuildFaceQuad(o orient.Orientation, localFace orient.Face, voxelPos [3]int, atlas AtlasRect) [4]uint32 {
	worldFace := o.Reface(localFace)
	normal := localFace.Vector()
	right := localFace.Right().Vector()
	up := localFace.Up().Vector()

	axisN, offsetN := 0, 0
	for i, n := range normal {
		if n != 0 {
			axisN = i
			if n > 0 {
				offsetN = 1
			}
		}
	}
	base := voxelPos
	base[axisN] += offsetN

	corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	var packed [4]uint32
	for i, c := range corners {
		localPos := addAxisOffsets(base, right, c[0], up, c[1])
		worldPos := rotateAboutBrickCenter(o, localPos)

		su, sv := 2*c[0]-1, 2*c[1]-1
		mapped := o.MapFaceCoord(worldFace, orient.UV{U: su, V: sv})
		atlasU, atlasV := (mapped.U+1)/2, (mapped.V+1)/2

		packed[i] = PackVertex(worldPos[0], worldPos[1], worldPos[2], atlasU, atlasV, worldFace, atlas.Index, 0)
	}
	return packed
}

func addAxisOffsets(base, right [3]int, uSel int, up [3]int, vSel int) [3]int {
	out := base
	out = addScaled(out, right, uSel)
	out = addScaled(out, up, vSel)
	return out
}

// addScaled adds sel to out along whichever single axis vec is
// nonzero on, or 1-sel when vec points the other way, so the offset
// stays within the voxel's unit cell.
func addScaled(out, vec [3]int, sel int) [3]int {
	for i, v := range vec {
		switch v {
		case 1:
			out[i] += sel
		case -1:
			out[i] += 1 - sel
		}
	}
	return out
}

// rotateAboutBrickCenter applies o's coordinate action around the
// brick's own center rather than the world origin, so a rotated
// voxel's packed position stays inside the BrickSize^3 cell its five
// position bits can address.
func rotateAboutBrickCenter(o orient.Orientation, p [3]int) [3]int {
	const half = BrickSize / 2
	centered := [3]int{p[0] - half, p[1] - half, p[2] - half}
	rotated := o.Transform(centered)
	return [3]int{rotated[0] + half, rotated[1] + half, rotated[2] + half}
}
