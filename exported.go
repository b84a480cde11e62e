package orient

// NumFaces, NumRotations and NumOrientations are the cardinalities of
// the three enumerable value types, exported for callers that need to
// iterate the full universe (table generation, bootstrap bridges from
// other encodings, exhaustive tests in other packages).
const (
	NumFaces       = numFaces
	NumRotations   = numRotations
	NumOrientations = numOrientations
)

// RotationFromIndex returns the Rotation at position idx in the dense
// 0..23 enumeration used internally for table indexing and by Cycle.
func RotationFromIndex(idx int) Rotation { return rotationFromIndex(idx) }

// OrientationFromIndex returns the Orientation at position idx in the
// dense 0..191 enumeration used internally for CoordMap table indexing.
func OrientationFromIndex(idx int) Orientation { return orientationFromIndex(idx) }
