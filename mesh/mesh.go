package mesh

import "github.com/gekko3d/voxorient"

// Mesh is a flat, renderer-ready triangle list: PackedVertices holds
// one uint32 per vertex (see PackVertex) and Indices holds triangle
// indices into it.
type Mesh struct {
	PackedVertices []uint32
	Indices        []uint32
}

// allFaces enumerates the six local cube faces a voxel can expose.
var allFaces = [6]orient.Face{orient.PosY, orient.NegY, orient.PosX, orient.NegX, orient.PosZ, orient.NegZ}

// BuildInstanceMesh meshes a single brick Instance, discarding log
// output. See BuildInstanceMeshWithLogger.
func BuildInstanceMesh(brick *Brick, inst Instance) Mesh {
	return BuildInstanceMeshWithLogger(brick, inst, orient.NewNopLogger())
}

// BuildInstanceMeshWithLogger meshes a single brick Instance: for every
// solid voxel and every one of its six faces not covered by a solid
// neighbor, it emits an oriented quad. Voxels on the brick boundary
// are always treated as exposed on that side — cross-brick occlusion
// is the occlusion package's job, not the mesher's.
func BuildInstanceMeshWithLogger(brick *Brick, inst Instance, logger orient.Logger) Mesh {
	var m Mesh
	if brick.IsEmpty() {
		logger.Debugf("instance %s: brick is empty, skipping mesh", inst.ID)
		return m
	}

	for x := 0; x < BrickSize; x++ {
		for y := 0; y < BrickSize; y++ {
			for z := 0; z < BrickSize; z++ {
				if brick.At(x, y, z) == 0 {
					continue
				}
				for _, face := range allFaces {
					n := face.Vector()
					if brick.At(x+n[0], y+n[1], z+n[2]) != 0 {
						continue
					}
					m.appendQuad(inst.Orientation, face, [3]int{x, y, z}, inst.Atlas)
				}
			}
		}
	}
	logger.Debugf("instance %s: built %d vertices, %d indices", inst.ID, len(m.PackedVertices), len(m.Indices))
	return m
}

func (m *Mesh) appendQuad(o orient.Orientation, face orient.Face, voxelPos [3]int, atlas AtlasRect) {
	quad := BuildFaceQuad(o, face, voxelPos, atlas)
	base := uint32(len(m.PackedVertices))
	m.PackedVertices = append(m.PackedVertices, quad[:]...)

	if o.Flip.ReverseIndices() {
		m.Indices = append(m.Indices, base, base+2, base+1, base, base+3, base+2)
	} else {
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
}
