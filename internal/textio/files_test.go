package textio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world \n\t\n"), 0o644))

	text, err := ReadText(path, true)
	require.NoError(t, err)
	require.Equal(t, "hello world", text)

	text, err = ReadText(path, false)
	require.NoError(t, err)
	require.Equal(t, "hello world \n\t\n", text)
}

func TestReadText_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadText(filepath.Join(dir, "missing.txt"), true)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte{'a', 0xff, 'b'}, 0o644))
	_, err = ReadText(bad, true)
	require.Error(t, err)
}

func TestPaths(t *testing.T) {
	p := DefaultPaths
	require.Equal(t, "dir/notes.bin", p.Compressed("dir/notes.txt"))
	require.Equal(t, "dir/notes_decompressed.txt", p.Decompressed("dir/notes.txt"))
	require.Equal(t, "README.bin", p.Compressed("README"))

	custom := Paths{BinExt: ".huf", OutSuffix: ".out"}
	require.Equal(t, "a.b.huf", custom.Compressed("a.b.c"))
	require.Equal(t, "a.b.out", custom.Decompressed("a.b.c"))
}

func TestWriteFileAndSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, WriteFile(path, []byte{1, 2, 3}))

	size, err := Size(path)
	require.NoError(t, err)
	require.Equal(t, int64(3), size)
}
