package occlusion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gekko3d/voxorient"
)

func TestFaceMaskSetAndTest(t *testing.T) {
	var m FaceMask
	m = m.Set(2, 5)
	require.True(t, m.Test(2, 5))
	require.False(t, m.Test(5, 2))
	require.False(t, m.Test(-1, 0))
	require.False(t, m.Test(MaskSize, 0))
}

func TestGridSignedRoundTrip(t *testing.T) {
	for i := 0; i < MaskSize; i++ {
		require.Equal(t, i, signedToGrid(gridToSigned(i)))
	}
}

func TestOverlapsIdentityOrientationIsDirect(t *testing.T) {
	var occluder, occludee FaceMask
	occluder = occluder.Set(3, 3)
	occludee = occludee.Set(3, 3)
	require.True(t, Overlaps(occluder, orient.IdentityOrientation, occludee, orient.PosY))

	occludee = FaceMask(0).Set(0, 0)
	require.False(t, Overlaps(occluder, orient.IdentityOrientation, occludee, orient.PosY))
}

func TestOverlapsFullOccluderCoversAnyOrientation(t *testing.T) {
	var occluder FaceMask = ^FaceMask(0) // every cell solid

	var occludee FaceMask
	occludee = occludee.Set(0, 0)

	for idx := 0; idx < orient.NumOrientations; idx++ {
		o := orient.OrientationFromIndex(idx)
		require.True(t, Overlaps(occluder, o, occludee, orient.PosY), "o=%v", o)
	}
}
