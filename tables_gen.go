package orient

// This file is the bootstrap table generator spec.md §9 calls for: the
// naive, directly-computed definitions in rotation.go and coordmap.go
// are run once, here, over every input in their domain, and the
// results are cached in flat arrays. Every public lookup method reads
// these arrays; none of the "hard part" combinatorics is duplicated by
// hand anywhere else. A coordinate-convention change only requires
// editing the six-face neighbor table in face.go — these tables are
// rebuilt from it automatically the next time the package is loaded.
//
//go:generate go run ./internal/gentables

var (
	refaceTable    [numRotations * numFaces]Face
	sourceFaceTable [numRotations * numFaces]Face
	faceAngleTable  [numRotations * numFaces]int

	mapFaceCoordTable    [numOrientations * numFaces]CoordMap
	sourceFaceCoordTable [numOrientations * numFaces]CoordMap
)

func init() {
	buildRotationTables()
	buildCoordMapTables()
}

func buildRotationTables() {
	for idx := 0; idx < numRotations; idx++ {
		r := rotationFromIndex(idx)
		for f := Face(0); f < numFaces; f++ {
			base := idx*numFaces + int(f)
			refaceTable[base] = refaceNaive(r, f)
			sourceFaceTable[base] = sourceFaceNaive(r, f)
		}
	}
	// faceAngleNaive calls sourceFaceNaive, which in turn only needs
	// refaceNaive (not the tables above), so it is safe to run in a
	// second pass once refaceTable exists conceptually but before
	// anything here actually reads it.
	for idx := 0; idx < numRotations; idx++ {
		r := rotationFromIndex(idx)
		for f := Face(0); f < numFaces; f++ {
			faceAngleTable[idx*numFaces+int(f)] = faceAngleNaive(r, f)
		}
	}
}

func buildCoordMapTables() {
	for idx := 0; idx < numOrientations; idx++ {
		o := orientationFromIndex(idx)
		for f := Face(0); f < numFaces; f++ {
			base := idx*numFaces + int(f)
			mapFaceCoordTable[base] = mapFaceCoordNaive(o, f)
			sourceFaceCoordTable[base] = sourceFaceCoordNaive(o, f)
		}
	}
}

func orientationFromIndex(idx int) Orientation {
	return Orientation{
		Rotation: rotationFromIndex(idx / 8),
		Flip:     Flip(idx % 8),
	}
}
