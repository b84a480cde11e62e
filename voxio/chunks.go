package voxio

import (
	"bytes"
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// parseDict reads a MagicaVoxel DICT: an int32 count followed by that
// many (key STRING, value STRING) pairs, each STRING itself an int32
// length followed by that many bytes.
func parseDict(r *bytes.Reader) (map[string]string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string]string, n)
	for i := 0; i < int(n); i++ {
		key, err := readDictString(r)
		if err != nil {
			return nil, err
		}
		val, err := readDictString(r)
		if err != nil {
			return nil, err
		}
		m[key] = val
	}
	return m, nil
}

func readDictString(r *bytes.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// parseTransformChunk extracts the rotation byte and translation of an
// nTRN chunk's first animation frame. Only the first frame is used:
// this package treats models as static placements, not animations.
func parseTransformChunk(data []byte) (rotation byte, translation mgl32.Vec3, ok bool) {
	r := bytes.NewReader(data)

	var nodeID int32
	if err := binary.Read(r, binary.LittleEndian, &nodeID); err != nil {
		return 0, mgl32.Vec3{}, false
	}
	if _, err := parseDict(r); err != nil {
		return 0, mgl32.Vec3{}, false
	}

	var childID, reservedID, layerID, numFrames int32
	for _, p := range []*int32{&childID, &reservedID, &layerID, &numFrames} {
		if err := binary.Read(r, binary.LittleEndian, p); err != nil {
			return 0, mgl32.Vec3{}, false
		}
	}
	if numFrames < 1 {
		return 0, mgl32.Vec3{}, false
	}

	frame, err := parseDict(r)
	if err != nil {
		return 0, mgl32.Vec3{}, false
	}

	if s, present := frame["_r"]; present {
		if v, err := strconv.Atoi(s); err == nil {
			rotation = byte(v)
		}
	}
	if s, present := frame["_t"]; present {
		parts := strings.Fields(s)
		if len(parts) == 3 {
			x, _ := strconv.ParseFloat(parts[0], 32)
			y, _ := strconv.ParseFloat(parts[1], 32)
			z, _ := strconv.ParseFloat(parts[2], 32)
			translation = mgl32.Vec3{float32(x), float32(y), float32(z)}
		}
	}
	return rotation, translation, true
}

// parseShapeChunk extracts the model index an nSHP chunk references.
// MagicaVoxel allows multiple (model, attributes) pairs per shape node
// for animated multi-model shapes; this package only needs the first.
func parseShapeChunk(data []byte) (modelIndex int, ok bool) {
	r := bytes.NewReader(data)

	var nodeID int32
	if err := binary.Read(r, binary.LittleEndian, &nodeID); err != nil {
		return 0, false
	}
	if _, err := parseDict(r); err != nil {
		return 0, false
	}

	var numModels int32
	if err := binary.Read(r, binary.LittleEndian, &numModels); err != nil || numModels < 1 {
		return 0, false
	}

	var modelID int32
	if err := binary.Read(r, binary.LittleEndian, &modelID); err != nil {
		return 0, false
	}
	if _, err := parseDict(r); err != nil {
		return 0, false
	}
	return int(modelID), true
}
