package formats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats/traindat"
)

func TestDecodeText_UTF8PassesThrough(t *testing.T) {
	got, err := DecodeText([]byte("\ufeff#加速\n"))

	require.NoError(t, err)
	assert.Equal(t, "\ufeff#加速\n", got)
}

func TestReadFile_ShiftJIS(t *testing.T) {
	// GIVEN a train.dat saved as Shift_JIS with Japanese headers
	sjis, err := japanese.ShiftJIS.NewEncoder().String("BVE2000000\n#加速\n1,2,3,4,5\n#ハンドル\n0\n4\n6\n")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "train.dat")
	require.NoError(t, os.WriteFile(path, []byte(sjis), 0o644))

	// WHEN it is read and parsed
	text, err := ReadFile(path)
	require.NoError(t, err)
	td, diags := traindat.Parse(text)

	// THEN the headers are recognised
	assert.Empty(t, diags)
	assert.Len(t, td.Acceleration.Notches, 1)
	assert.Equal(t, 4, td.Handle.PowerNotches)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.cfg"))

	assert.ErrorContains(t, err, "reading")
}
