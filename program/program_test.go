package program

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	image, err := Parse(strings.NewReader("1,9,10,3,2,3,11,0,99,30,40,50"))
	require.NoError(t, err)
	require.Equal(t, []int{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, image)
}

func TestParseWhitespace(t *testing.T) {
	image, err := Parse(strings.NewReader("  1101, 100 ,-1,\n4, 0\n"))
	require.NoError(t, err)
	require.Equal(t, []int{1101, 100, -1, 4, 0}, image)
}

func TestParseSingleCell(t *testing.T) {
	image, err := Parse(strings.NewReader("99"))
	require.NoError(t, err)
	require.Equal(t, []int{99}, image)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("  \n "))
	require.Error(t, err)
}

func TestParseJunk(t *testing.T) {
	_, err := Parse(strings.NewReader("1,two,3"))
	require.ErrorContains(t, err, "cell 1")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "add.int")
	require.NoError(t, os.WriteFile(path, []byte("1,0,0,0,99\n"), 0o644))

	image, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 0, 99}, image)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.int"))
	require.Error(t, err)
}
