package orient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotationIdentity(t *testing.T) {
	require.Equal(t, PosY, Identity.Up())
	require.Equal(t, uint8(0), Identity.Angle())
	for f := Face(0); f < numFaces; f++ {
		require.Equal(t, f, Identity.Reface(f))
	}
	require.Equal(t, [3]int{1, 2, 3}, Identity.Rotate([3]int{1, 2, 3}))
}

func TestRotationScenarioS1(t *testing.T) {
	r := Rotation{up: PosY, angle: 1}
	require.Equal(t, PosX, r.Reface(PosZ))
}

func TestRotationScenarioS4(t *testing.T) {
	one := Rotation{up: PosY, angle: 1}
	two := one.Reorient(one)
	require.Equal(t, Rotation{up: PosY, angle: 2}, two)
	require.Equal(t, NegZ, two.Reface(PosZ))
}

func TestRotationScenarioS5(t *testing.T) {
	_, err := FromUpAndForward(PosY, NegY)
	require.ErrorIs(t, err, ErrIncompatibleAxes)

	r, err := FromUpAndForward(PosY, PosZ)
	require.NoError(t, err)
	require.Equal(t, Rotation{up: PosY, angle: 0}, r)
}

func TestRotationBijectivity(t *testing.T) {
	for idx := 0; idx < numRotations; idx++ {
		r := rotationFromIndex(idx)
		seen := make(map[Face]bool, numFaces)
		for f := Face(0); f < numFaces; f++ {
			seen[r.Reface(f)] = true
		}
		require.Len(t, seen, numFaces)
	}
}

func TestRotationSourceFaceInversion(t *testing.T) {
	for idx := 0; idx < numRotations; idx++ {
		r := rotationFromIndex(idx)
		for f := Face(0); f < numFaces; f++ {
			require.Equal(t, f, r.SourceFace(r.Reface(f)))
			require.Equal(t, f, r.Reface(r.SourceFace(f)))
		}
	}
}

func TestRotationCoordinateAgreement(t *testing.T) {
	for idx := 0; idx < numRotations; idx++ {
		r := rotationFromIndex(idx)
		for f := Face(0); f < numFaces; f++ {
			got := r.Rotate(faceVectorInt(f))
			want := faceVectorInt(r.Reface(f))
			require.Equal(t, want, got)
		}
	}
}

func TestRotationInverseLaw(t *testing.T) {
	for idx := 0; idx < numRotations; idx++ {
		r := rotationFromIndex(idx)
		require.Equal(t, Identity, r.Reorient(r.Invert()))
	}
}

func TestRotationCycleCoverage(t *testing.T) {
	seen := make(map[Rotation]bool, numRotations)
	for k := 0; k < numRotations; k++ {
		seen[Identity.Cycle(k)] = true
	}
	require.Len(t, seen, numRotations)

	// Negative offsets wrap via Euclidean remainder.
	require.Equal(t, Identity.Cycle(numRotations-1), Identity.Cycle(-1))
}

func TestRotationFaceAngleIdentity(t *testing.T) {
	for f := Face(0); f < numFaces; f++ {
		require.Equal(t, 0, Identity.FaceAngle(f))
	}
}

func TestRotationPackRoundTrip(t *testing.T) {
	for idx := 0; idx < numRotations; idx++ {
		r := rotationFromIndex(idx)
		require.Equal(t, r, UnpackRotation(r.Pack()))
	}
	require.Equal(t, Identity, UnpackRotation(0x00))
}
