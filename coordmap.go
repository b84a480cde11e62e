package orient

// AxisMap selects one component of a 2D face-UV coordinate, optionally
// negated: one of {+u, -u, +v, -v}.
type AxisMap uint8

const (
	PlusU AxisMap = iota
	MinusU
	PlusV
	MinusV
)

func (a AxisMap) String() string {
	return [4]string{"+u", "-u", "+v", "-v"}[a]
}

// apply evaluates the AxisMap against a source (u, v) coordinate.
func (a AxisMap) apply(u, v int) int {
	switch a {
	case PlusU:
		return u
	case MinusU:
		return -u
	case PlusV:
		return v
	default:
		return -v
	}
}

// UV is a 2D coordinate in a face's local UV plane.
type UV struct{ U, V int }

// CoordMap is a signed permutation of the two UV axes: applying it to
// a source UV yields (xAxis(u,v), yAxis(u,v)). Only the 8 orthogonal
// maps (xAxis and yAxis naming different axes) ever arise from the
// algebra, though all 16 combinations are representable.
type CoordMap struct {
	X, Y AxisMap
}

// IdentityCoordMap leaves a UV unchanged.
var IdentityCoordMap = CoordMap{X: PlusU, Y: PlusV}

// Apply transforms uv through m.
func (m CoordMap) Apply(uv UV) UV {
	return UV{U: m.X.apply(uv.U, uv.V), V: m.Y.apply(uv.U, uv.V)}
}

// sameAxis reports whether two AxisMaps name the same underlying axis
// (u or v) regardless of sign.
func (a AxisMap) sameAxis(b AxisMap) bool {
	return (a == PlusU || a == MinusU) == (b == PlusU || b == MinusU)
}

// Compose returns the CoordMap equivalent to applying m then n.
func (m CoordMap) Compose(n CoordMap) CoordMap {
	return CoordMap{X: composeAxis(m, n.X), Y: composeAxis(m, n.Y)}
}

// composeAxis evaluates which of m's two axes n.axis reads from, and
// with what sign, producing the single AxisMap equivalent to reading
// n.axis's component after m has already been applied.
func composeAxis(m CoordMap, axis AxisMap) AxisMap {
	switch axis {
	case PlusU:
		return m.X
	case MinusU:
		return negateAxis(m.X)
	case PlusV:
		return m.Y
	default:
		return negateAxis(m.Y)
	}
}

func negateAxis(a AxisMap) AxisMap {
	switch a {
	case PlusU:
		return MinusU
	case MinusU:
		return PlusU
	case PlusV:
		return MinusV
	default:
		return PlusV
	}
}

// mapFaceCoordNaive computes, for a point uv expressed on the source
// face that o.SourceFace(face) carries onto face, the CoordMap from
// that source face's UV plane to face's UV plane.
//
// Derivation: compare the four neighbor faces of the source face
// (after carrying them through o.Reface) against the four neighbor
// faces of the target face; the two matches fix each AxisMap.
func mapFaceCoordNaive(o Orientation, face Face) CoordMap {
	source := o.SourceFace(face)
	return deriveCoordMap(o, source, face)
}

// sourceFaceCoordNaive is the inverse of mapFaceCoordNaive: given a uv
// on face, it locates where on o.SourceFace(face) it came from.
func sourceFaceCoordNaive(o Orientation, face Face) CoordMap {
	source := o.SourceFace(face)
	return invertCoordMap(deriveCoordMap(o, source, face))
}

// deriveCoordMap builds the CoordMap carrying source's UV plane onto
// target's UV plane under o, given that o.Reface(source) == target.
// It works by asking, for each of target's two UV axes (its up
// neighbor and its right neighbor), which of source's two UV axes
// maps onto it under o, and with what sign.
func deriveCoordMap(o Orientation, source, target Face) CoordMap {
	return CoordMap{
		X: resolveAxis(o, source, target, target.Right()),
		Y: resolveAxis(o, source, target, target.Up()),
	}
}

// resolveAxis finds which signed axis of source's own UV frame
// (up/right/down/left) lands on targetNeighbor once carried through o,
// and returns it as an AxisMap expressed in source's (u, v) basis
// where +u = source.Right() and +v = source.Up().
func resolveAxis(o Orientation, source, target, targetNeighbor Face) AxisMap {
	candidates := [4]struct {
		face Face
		axis AxisMap
	}{
		{source.Right(), PlusU},
		{source.Left(), MinusU},
		{source.Up(), PlusV},
		{source.Down(), MinusV},
	}
	for _, c := range candidates {
		if o.Reface(c.face) == targetNeighbor {
			return c.axis
		}
	}
	panic("orient: face-coordinate bootstrap found no matching UV axis")
}

// invertCoordMap finds the CoordMap inv with m.Compose(inv) == identity,
// by brute force over the 16 representable maps (only 8 are ever
// orthogonal, but checking all 16 costs nothing at table-build time).
func invertCoordMap(m CoordMap) CoordMap {
	axes := [4]AxisMap{PlusU, MinusU, PlusV, MinusV}
	for _, x := range axes {
		for _, y := range axes {
			cand := CoordMap{X: x, Y: y}
			if m.Compose(cand) == IdentityCoordMap {
				return cand
			}
		}
	}
	panic("orient: CoordMap has no inverse (unreachable for an orthogonal map)")
}
