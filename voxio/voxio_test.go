package voxio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFileRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.vox")
	require.NoError(t, os.WriteFile(path, []byte("NOPE1234"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.vox"))
	require.Error(t, err)
}

func TestDefaultPaletteIndexZeroIsAir(t *testing.T) {
	p := defaultPalette()
	require.Equal(t, [4]byte{}, p[0])
}
