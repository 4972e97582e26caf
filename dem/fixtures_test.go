package dem

import (
	"archive/zip"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalHeader = "ncols 2\nnrows 2\ncellsize 1\nxllcorner 0\nyllcorner 0\nNODATA_value -9999\n"

type fixtureFile struct {
	name string
	data []byte
}

func floatsLE(values ...float32) []byte {
	buf := make([]byte, 0, 4*len(values))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

func minimalFiles() []fixtureFile {
	return []fixtureFile{
		{"a.hdr", []byte(minimalHeader)},
		{"a.flt", floatsLE(1, 2, 3, 4)},
	}
}

func writeZip(t *testing.T, files ...fixtureFile) string {
	t.Helper()

	archivePath := filepath.Join(t.TempDir(), "grid.zip")
	out, err := os.Create(archivePath)
	require.NoError(t, err)

	w := zip.NewWriter(out)
	for _, f := range files {
		fw, err := w.Create(f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, out.Close())

	return archivePath
}

func writeDir(t *testing.T, files ...fixtureFile) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f.name), f.data, 0o644))
	}

	return dir
}
