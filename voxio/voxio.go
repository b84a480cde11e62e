// Package voxio loads MagicaVoxel .vox models and bridges the file
// format's own rotation-byte encoding to the orient package's algebra.
package voxio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/voxorient"
)

const magicNumber = "VOX "

// Voxel is one filled cell of a model, in model-local integer space.
type Voxel struct {
	X, Y, Z    uint32
	ColorIndex byte
}

// Palette is the 256-entry RGBA color table a .vox file's voxels index into.
type Palette [256][4]byte

// Model is a single parsed MagicaVoxel SIZE/XYZI model pair.
type Model struct {
	SizeX, SizeY, SizeZ uint32
	Voxels              []Voxel
}

// Instance is a placed model: the transform-node orientation and
// translation MagicaVoxel records alongside a shape reference.
type Instance struct {
	ModelIndex  int
	Translation mgl32.Vec3
	Orientation orient.Orientation
}

// File is the subset of a parsed .vox file this package cares about:
// the geometry models, their palette, and the placed instances found
// in the scene graph's transform nodes.
type File struct {
	Models    []Model
	Palette   Palette
	Instances []Instance
}

// LoadFile reads a MagicaVoxel .vox file from path, discarding log
// output. See LoadFileWithLogger.
func LoadFile(path string) (*File, error) {
	return LoadFileWithLogger(path, orient.NewNopLogger())
}

// LoadFileWithLogger reads a MagicaVoxel .vox file from path. It parses
// the MAIN/SIZE/XYZI/RGBA/nTRN/nSHP chunks; unrecognized chunks (nGRP,
// MATL, layer metadata, …) are skipped and reported at debug level,
// matching the behavior of a reader that only needs geometry, color
// and placement.
func LoadFileWithLogger(path string, logger orient.Logger) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("voxio: open %s: %w", path, err)
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return nil, fmt.Errorf("voxio: read magic: %w", err)
	}
	if string(magic[:]) != magicNumber {
		return nil, errors.New("voxio: not a valid VOX file")
	}

	var version int32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("voxio: read version: %w", err)
	}

	file := &File{Palette: defaultPalette()}
	currentModel := -1
	pendingRotation := byte(0)
	pendingTranslation := mgl32.Vec3{}
	havePendingTransform := false

	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(f, chunkID[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("voxio: read chunk id: %w", err)
		}

		var chunkSize, childrenSize int32
		if err := binary.Read(f, binary.LittleEndian, &chunkSize); err != nil {
			return nil, fmt.Errorf("voxio: read chunk size: %w", err)
		}
		if err := binary.Read(f, binary.LittleEndian, &childrenSize); err != nil {
			return nil, fmt.Errorf("voxio: read children size: %w", err)
		}

		data := make([]byte, chunkSize)
		if _, err := io.ReadFull(f, data); err != nil {
			return nil, fmt.Errorf("voxio: read chunk data: %w", err)
		}

		switch string(chunkID[:]) {
		case "MAIN":
			continue
		case "SIZE":
			currentModel++
			if currentModel >= len(file.Models) {
				file.Models = append(file.Models, Model{})
			}
			if len(data) < 12 {
				return nil, errors.New("voxio: SIZE chunk too small")
			}
			m := &file.Models[currentModel]
			m.SizeX = binary.LittleEndian.Uint32(data[0:4])
			m.SizeY = binary.LittleEndian.Uint32(data[4:8])
			m.SizeZ = binary.LittleEndian.Uint32(data[8:12])
		case "XYZI":
			if currentModel < 0 || currentModel >= len(file.Models) {
				return nil, errors.New("voxio: XYZI chunk without preceding SIZE")
			}
			if len(data) < 4 {
				return nil, errors.New("voxio: XYZI chunk too small")
			}
			m := &file.Models[currentModel]
			n := binary.LittleEndian.Uint32(data[:4])
			m.Voxels = make([]Voxel, 0, n)
			for i := 0; i < int(n); i++ {
				off := 4 + i*4
				if off+3 >= len(data) {
					return nil, errors.New("voxio: XYZI chunk data overflow")
				}
				m.Voxels = append(m.Voxels, Voxel{
					X:          uint32(data[off]),
					Y:          uint32(data[off+1]),
					Z:          uint32(data[off+2]),
					ColorIndex: data[off+3],
				})
			}
		case "RGBA":
			for i := 0; i < 255 && i*4+3 < len(data); i++ {
				off := i * 4
				file.Palette[i+1] = [4]byte{data[off], data[off+1], data[off+2], data[off+3]}
			}
		case "nTRN":
			rot, trans, ok := parseTransformChunk(data)
			if ok {
				pendingRotation = rot
				pendingTranslation = trans
				havePendingTransform = true
			}
		case "nSHP":
			modelIdx, ok := parseShapeChunk(data)
			if ok {
				o := orient.IdentityOrientation
				trans := mgl32.Vec3{}
				if havePendingTransform {
					decoded, err := DecodeRotationByte(pendingRotation)
					if err != nil {
						return nil, fmt.Errorf("voxio: model %d: %w", modelIdx, err)
					}
					o = decoded
					trans = pendingTranslation
				} else {
					logger.Warnf("nSHP model %d placed with no preceding nTRN, defaulting to identity", modelIdx)
				}
				file.Instances = append(file.Instances, Instance{
					ModelIndex:  modelIdx,
					Translation: trans,
					Orientation: o,
				})
				havePendingTransform = false
			}
		default:
			logger.Debugf("skipping unrecognized chunk %q (%d bytes)", string(chunkID[:]), chunkSize)
		}
	}

	logger.Infof("loaded %d model(s), %d instance(s) from %s", len(file.Models), len(file.Instances), path)
	return file, nil
}

func defaultPalette() Palette {
	var p Palette
	for i := 1; i < 256; i++ {
		v := byte((i * 37) % 256)
		p[i] = [4]byte{v, v, v, 255}
	}
	return p
}
