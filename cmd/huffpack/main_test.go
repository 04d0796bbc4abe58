package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adilg123/huffpack/internal/compression"
	"github.com/adilg123/huffpack/internal/compression/huffman"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunRoundTrip(t *testing.T) {
	input := writeInput(t, "hello huffman, hello world")
	var out bytes.Buffer

	require.NoError(t, newApp(strings.NewReader(""), &out, compression.Options{}).run(context.Background(), modeRoundTrip, input, ""))

	restored, err := os.ReadFile(input + "_decompressed")
	require.NoError(t, err)
	require.Equal(t, "hello huffman, hello world", string(restored))
	require.FileExists(t, input+"_compressed")
	require.Contains(t, out.String(), "completed successfully")
}

func TestRunCompressThenDecompress(t *testing.T) {
	input := writeInput(t, "aabbbccc")
	dir := filepath.Dir(input)
	compressed := filepath.Join(dir, "out.huff")
	restored := filepath.Join(dir, "restored.txt")
	a := newApp(strings.NewReader(""), new(bytes.Buffer), compression.Options{})

	require.NoError(t, a.run(context.Background(), modeCompress, input, compressed))
	data, err := os.ReadFile(compressed)
	require.NoError(t, err)
	require.Len(t, data, 30)

	require.NoError(t, a.run(context.Background(), modeDecompress, compressed, restored))
	data, err = os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, "aabbbccc", string(data))
}

func TestRunMenu(t *testing.T) {
	input := writeInput(t, "menu driven")
	var out bytes.Buffer
	a := newApp(strings.NewReader("2\n"+input+"\n"), &out, compression.Options{})

	require.NoError(t, a.run(context.Background(), "", "", ""))
	require.FileExists(t, input+"_compressed")
	require.Contains(t, out.String(), "Choose an option:")
}

func TestRunInvalidChoice(t *testing.T) {
	a := newApp(strings.NewReader("7\n"), new(bytes.Buffer), compression.Options{})
	require.ErrorIs(t, a.run(context.Background(), "", "", ""), errInvalidChoice)

	require.ErrorIs(t, a.run(context.Background(), "shrink", "x", ""), errInvalidChoice)
}

func TestRunErrors(t *testing.T) {
	a := newApp(strings.NewReader(""), new(bytes.Buffer), compression.Options{})

	require.Error(t, a.run(context.Background(), modeCompress, "", ""))
	require.Error(t, a.run(context.Background(), modeCompress, filepath.Join(t.TempDir(), "missing"), ""))

	empty := writeInput(t, "")
	require.ErrorIs(t, a.run(context.Background(), modeCompress, empty, ""), huffman.ErrEmptyInput)

	garbage := writeInput(t, "not a compressed stream")
	require.ErrorIs(t, a.run(context.Background(), modeDecompress, garbage, ""), huffman.ErrCorruptStream)
}
