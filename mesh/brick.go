// Package mesh turns oriented voxel bricks into face-quad geometry,
// combining the orient package's algebra with a brick storage scheme
// adapted from the teacher's sparse brick map.
package mesh

import (
	"github.com/google/uuid"

	"github.com/gekko3d/voxorient"
)

const (
	// BrickSize is the edge length of a brick in voxels.
	BrickSize = 8
	// microSize is the edge length of an occupancy-mask cell: each bit
	// of OccupancyMask64 covers a 2x2x2 region, giving a 4x4x4 = 64 bit
	// coarse occupancy summary for a whole brick.
	microSize = 2
)

// Brick is a fixed BrickSize^3 block of palette indices, with a cached
// coarse occupancy mask used to skip empty regions during meshing.
type Brick struct {
	OccupancyMask64 uint64
	Payload         [BrickSize][BrickSize][BrickSize]uint8
}

// NewBrick returns an empty (all-air) Brick.
func NewBrick() *Brick {
	return &Brick{}
}

// SetVoxel writes a palette index at local coordinate (x,y,z) and
// refreshes the coarse occupancy bit for the 2x2x2 cell it falls in.
func (b *Brick) SetVoxel(x, y, z int, paletteIndex uint8) {
	b.Payload[x][y][z] = paletteIndex

	mx, my, mz := x/microSize, y/microSize, z/microSize
	bit := mx + my*4 + mz*16

	if paletteIndex != 0 {
		b.OccupancyMask64 |= 1 << uint(bit)
		return
	}
	if b.microCellEmpty(mx, my, mz) {
		b.OccupancyMask64 &^= 1 << uint(bit)
	}
}

func (b *Brick) microCellEmpty(mx, my, mz int) bool {
	sx, sy, sz := mx*microSize, my*microSize, mz*microSize
	for x := 0; x < microSize; x++ {
		for y := 0; y < microSize; y++ {
			for z := 0; z < microSize; z++ {
				if b.Payload[sx+x][sy+y][sz+z] != 0 {
					return false
				}
			}
		}
	}
	return true
}

// IsEmpty reports whether the brick has no solid voxels at all.
func (b *Brick) IsEmpty() bool {
	return b.OccupancyMask64 == 0
}

// At returns the palette index at local coordinate (x,y,z), or 0 (air)
// when out of range — callers use this to test face neighbors without
// bounds-checking at every call site.
func (b *Brick) At(x, y, z int) uint8 {
	if x < 0 || y < 0 || z < 0 || x >= BrickSize || y >= BrickSize || z >= BrickSize {
		return 0
	}
	return b.Payload[x][y][z]
}

// BrickCoord identifies a brick's position in a World by brick-grid
// coordinates (not voxel coordinates).
type BrickCoord struct{ X, Y, Z int }

// World is a sparse grid of Bricks, each independently oriented:
// meshing a world means iterating its instances, not just its raw
// voxel payloads.
type World struct {
	Bricks    map[BrickCoord]*Brick
	Instances []Instance
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{Bricks: make(map[BrickCoord]*Brick)}
}

// Brick returns the brick at coord, creating it if absent.
func (w *World) Brick(coord BrickCoord) *Brick {
	b, ok := w.Bricks[coord]
	if !ok {
		b = NewBrick()
		w.Bricks[coord] = b
	}
	return b
}

// Instance places a brick in world space under a given Orientation,
// plus the atlas region its solid faces should sample from. ID is a
// stable handle a caller can use to track the instance across edits
// without reusing its brick-grid coordinate as an identity.
type Instance struct {
	ID          string
	Brick       BrickCoord
	WorldOrigin [3]int
	Orientation orient.Orientation
	Atlas       AtlasRect
}

// NewInstance returns an Instance with a freshly generated ID.
func NewInstance(coord BrickCoord, origin [3]int, o orient.Orientation, atlas AtlasRect) Instance {
	return Instance{
		ID:          uuid.NewString(),
		Brick:       coord,
		WorldOrigin: origin,
		Orientation: o,
		Atlas:       atlas,
	}
}
