package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/gekko3d/voxorient"
)

func TestAtlasRectSnap(t *testing.T) {
	rect := AtlasRect{
		Min: fixed.Point26_6{X: fixed.I(0), Y: fixed.I(0)},
		Max: fixed.Point26_6{X: fixed.I(16), Y: fixed.I(16)},
	}
	require.Equal(t, fixed.I(0), rect.Snap(0, 0).X)
	require.Equal(t, fixed.I(16), rect.Snap(1, 0).X)
	require.Equal(t, fixed.I(16), rect.Snap(1, 1).Y)
}

func TestNewInstanceAssignsID(t *testing.T) {
	a := NewInstance(BrickCoord{}, [3]int{}, orient.IdentityOrientation, AtlasRect{})
	b := NewInstance(BrickCoord{}, [3]int{}, orient.IdentityOrientation, AtlasRect{})
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestBuildInstanceMeshSingleVoxel(t *testing.T) {
	b := NewBrick()
	b.SetVoxel(0, 0, 0, 1)
	require.False(t, b.IsEmpty())

	m := BuildInstanceMesh(b, Instance{Orientation: orient.IdentityOrientation})
	require.Len(t, m.PackedVertices, 6*4)
	require.Len(t, m.Indices, 6*6)
}

func TestBuildInstanceMeshEmptyBrick(t *testing.T) {
	b := NewBrick()
	m := BuildInstanceMesh(b, Instance{Orientation: orient.IdentityOrientation})
	require.Empty(t, m.PackedVertices)
	require.Empty(t, m.Indices)
}

func TestBuildInstanceMeshInteriorVoxelHasNoFaces(t *testing.T) {
	b := NewBrick()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				b.SetVoxel(x, y, z, 1)
			}
		}
	}
	m := BuildInstanceMesh(b, Instance{Orientation: orient.IdentityOrientation})
	// A 3x3x3 solid block exposes only its outer surface: 6 sides of
	// 3x3 voxel faces each. The center voxel (1,1,1) contributes none,
	// and faces shared by two solid voxels are not emitted.
	require.Len(t, m.PackedVertices, 6*9*4)
}

func TestBuildInstanceMeshWindingReversesUnderOddFlip(t *testing.T) {
	o := orient.Orientation{Rotation: orient.Identity, Flip: orient.FlipY}
	require.True(t, o.Flip.ReverseIndices())

	b := NewBrick()
	b.SetVoxel(0, 0, 0, 1)
	m := BuildInstanceMesh(b, Instance{Orientation: o})
	require.Equal(t, uint32(0), m.Indices[0])
	require.Equal(t, uint32(2), m.Indices[1])
	require.Equal(t, uint32(1), m.Indices[2])
}
