package orient

import "testing"

// TestUniversalProperties checks, exhaustively over the full universe
// (6 Faces, 8 Flips, 24 Rotations, 192 Orientations), the eleven
// properties the algebra is required to satisfy. Any failure here
// means composition, face-action or coordinate-action have drifted
// out of agreement and downstream meshing/occlusion will silently
// corrupt.
func TestUniversalProperties(t *testing.T) {
	allFaces := func() []Face {
		fs := make([]Face, numFaces)
		for f := Face(0); f < numFaces; f++ {
			fs[f] = f
		}
		return fs
	}()

	allFlips := func() []Flip {
		fls := make([]Flip, 8)
		for fl := Flip(0); fl < 8; fl++ {
			fls[fl] = fl
		}
		return fls
	}()

	allRotations := func() []Rotation {
		rs := make([]Rotation, numRotations)
		for i := range rs {
			rs[i] = rotationFromIndex(i)
		}
		return rs
	}()

	allOrientations := func() []Orientation {
		os := make([]Orientation, numOrientations)
		for i := range os {
			os[i] = orientationFromIndex(i)
		}
		return os
	}()

	t.Run("1_face_inversion_involution", func(t *testing.T) {
		for _, f := range allFaces {
			if got := f.Invert().Invert(); got != f {
				t.Errorf("invert(invert(%s)) = %s, want %s", f, got, f)
			}
		}
	})

	t.Run("2_flip_involution", func(t *testing.T) {
		points := [][3]int{{1, 1, 1}, {1, -1, 1}, {-1, -1, -1}}
		for _, fl := range allFlips {
			for _, p := range points {
				if got := fl.Apply(fl.Apply(p)); got != p {
					t.Errorf("apply(%s, apply(%s, %v)) = %v, want %v", fl, fl, p, got, p)
				}
			}
		}
	})

	t.Run("3_rotation_bijectivity_on_faces", func(t *testing.T) {
		for _, r := range allRotations {
			seen := make(map[Face]bool, numFaces)
			for _, f := range allFaces {
				seen[r.Reface(f)] = true
			}
			if len(seen) != numFaces {
				t.Errorf("reface(%s, ·) is not a permutation: saw %d distinct faces", r, len(seen))
			}
		}
	})

	t.Run("4_source_face_inversion", func(t *testing.T) {
		for _, r := range allRotations {
			for _, f := range allFaces {
				if got := r.SourceFace(r.Reface(f)); got != f {
					t.Errorf("source_face(%s, reface(%s, %s)) = %s, want %s", r, r, f, got, f)
				}
				if got := r.Reface(r.SourceFace(f)); got != f {
					t.Errorf("reface(%s, source_face(%s, %s)) = %s, want %s", r, r, f, got, f)
				}
			}
		}
	})

	t.Run("5_rotation_coordinate_agreement", func(t *testing.T) {
		for _, r := range allRotations {
			for _, f := range allFaces {
				got := r.Rotate(faceVectorInt(f))
				want := faceVectorInt(r.Reface(f))
				if got != want {
					t.Errorf("rotate(%s, unit_vector(%s)) = %v, want unit_vector(reface(%s,%s)) = %v", r, f, got, r, f, want)
				}
			}
		}
	})

	t.Run("6_composition_homomorphism", func(t *testing.T) {
		for _, r := range allRotations {
			for _, s := range allRotations {
				t_ := r.Reorient(s)
				for _, f := range allFaces {
					got := t_.Reface(f)
					want := s.Reface(r.Reface(f))
					if got != want {
						t.Errorf("reface(reorient(%s,%s), %s) = %s, want %s", r, s, f, got, want)
					}
				}
			}
		}
	})

	t.Run("7_inverse_law", func(t *testing.T) {
		for _, r := range allRotations {
			if got := r.Reorient(r.Invert()); got != Identity {
				t.Errorf("reorient(%s, invert(%s)) = %s, want Identity", r, r, got)
			}
		}
		for _, o := range allOrientations {
			if got := o.Reorient(o.Invert()); got != IdentityOrientation {
				t.Errorf("reorient(%s, invert(%s)) = %s, want IdentityOrientation", o, o, got)
			}
		}
	})

	t.Run("8_cycle_coverage", func(t *testing.T) {
		seen := make(map[Rotation]bool, numRotations)
		for k := 0; k < numRotations; k++ {
			seen[Identity.Cycle(k)] = true
		}
		if len(seen) != numRotations {
			t.Errorf("cycle(Identity, 0..24) visited %d distinct rotations, want %d", len(seen), numRotations)
		}
	})

	t.Run("9_coordmap_round_trip", func(t *testing.T) {
		probe := UV{U: 1, V: -1}
		for _, o := range allOrientations {
			for _, f := range allFaces {
				mapped := o.MapFaceCoord(f, probe)
				back := o.SourceFaceCoord(f, mapped)
				if back != probe {
					t.Errorf("source_face_coord(%s,%s,map_face_coord(%s,%s,%v)) = %v, want %v",
						o, f, o, f, probe, back, probe)
				}
			}
		}
	})

	t.Run("10_reverse_indices_cochain", func(t *testing.T) {
		for _, a := range allFlips {
			for _, b := range allFlips {
				want := a.ReverseIndices() != b.ReverseIndices()
				if got := a.Compose(b).ReverseIndices(); got != want {
					t.Errorf("reverse_indices(compose(%s,%s)) = %v, want %v", a, b, got, want)
				}
			}
		}
	})

	t.Run("11_identity_sanity", func(t *testing.T) {
		if UnpackOrientation(0x00) != IdentityOrientation {
			t.Errorf("UnpackOrientation(0x00) = %v, want IdentityOrientation", UnpackOrientation(0x00))
		}
		for _, f := range allFaces {
			if got := IdentityOrientation.Reface(f); got != f {
				t.Errorf("reface(IDENTITY, %s) = %s, want %s", f, got, f)
			}
		}
		p := [3]int{1, 2, 3}
		if got := IdentityOrientation.Transform(p); got != p {
			t.Errorf("transform(IDENTITY, %v) = %v, want %v", p, got, p)
		}
	})
}
