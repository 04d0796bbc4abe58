package fileio

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAllTruncateAndAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	require.NoError(t, WriteAll(path, []byte("header"), Truncate))
	require.NoError(t, WriteAll(path, []byte("+payload"), Append))
	data, err := ReadAll(path)
	require.NoError(t, err)
	require.Equal(t, "header+payload", string(data))

	require.NoError(t, WriteAll(path, []byte("new"), Truncate))
	data, err = ReadAll(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestReadAllMissing(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing"))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	require.Equal(t, "read", ioErr.Op)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteAllBadPath(t *testing.T) {
	err := WriteAll(filepath.Join(t.TempDir(), "no", "such", "dir", "f"), []byte("x"), Truncate)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	require.Equal(t, "open", ioErr.Op)
}

func TestWriteAllUnknownMode(t *testing.T) {
	err := WriteAll(filepath.Join(t.TempDir(), "f"), nil, Mode(42))
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
}
