package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var knownCodes = CodeTable{'a': "10", 'b': "11", 'c': "0"}

func TestPackSingleSymbol(t *testing.T) {
	payload, paddedBits, err := Pack([]byte("aaaa"), CodeTable{'a': "0"}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, payload)
	require.Equal(t, 4, paddedBits)
}

func TestPackKnownVector(t *testing.T) {
	// 10 10 11 11 11 0 0 0 + 3 fill bits
	payload, paddedBits, err := Pack([]byte("aabbbccc"), knownCodes, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAF, 0xC0}, payload)
	require.Equal(t, 3, paddedBits)

	out, err := Unpack(payload, knownCodes, paddedBits, nil)
	require.NoError(t, err)
	require.Equal(t, "aabbbccc", string(out))
}

func TestPackByteAligned(t *testing.T) {
	payload, paddedBits, err := Pack([]byte("abab"), CodeTable{'a': "10", 'b': "01"}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x99}, payload)
	require.Zero(t, paddedBits)
}

func TestPackMissingCode(t *testing.T) {
	_, _, err := Pack([]byte("abc"), CodeTable{'a': "0", 'b': "1"}, nil)
	require.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestPackLongCodes(t *testing.T) {
	long := strings.Repeat("1", 70)
	codes := CodeTable{'a': "0", 'b': long}
	payload, paddedBits, err := Pack([]byte("abba"), codes, nil)
	require.NoError(t, err)
	require.Equal(t, 2+2*70, len(payload)*8-paddedBits)

	out, err := Unpack(payload, codes, paddedBits, nil)
	require.NoError(t, err)
	require.Equal(t, "abba", string(out))
}

func TestPackReportsProgress(t *testing.T) {
	content := make([]byte, 3*progressStep+10)
	reported := 0
	_, _, err := Pack(content, CodeTable{0: "0"}, func(n int) { reported += n })
	require.NoError(t, err)
	require.Equal(t, len(content), reported)
}

func TestCompileCode(t *testing.T) {
	code := strings.Repeat("10", 50)
	compiled, err := compileCode(code)
	require.NoError(t, err)
	require.Equal(t, 100, compiled.length)
	require.Equal(t, []uint8{64, 36}, compiled.widths)
	require.Equal(t, uint64(0xAAAAAAAAAAAAAAAA), compiled.chunks[0])

	_, err = compileCode("012")
	require.Error(t, err)
}

func TestUnpackCorrupt(t *testing.T) {
	tests := []struct {
		name       string
		payload    []byte
		codes      CodeTable
		paddedBits int
	}{
		{"padding out of range", []byte{0x00}, knownCodes, 8},
		{"negative padding", []byte{0x00}, knownCodes, -1},
		{"padding without payload", nil, knownCodes, 3},
		{"payload without codes", []byte{0x00}, CodeTable{}, 0},
		{"non-zero padding bits", []byte{0xAF}, knownCodes, 3},
		{"bits match no code", []byte{0x80}, CodeTable{'a': "0"}, 7},
		{"stream ends inside a code", []byte{0x00}, CodeTable{'x': "00", 'y': "01", 'z': "1"}, 7},
		{"codes not prefix-free", []byte{0x00}, CodeTable{'a': "0", 'b': "01"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unpack(tt.payload, tt.codes, tt.paddedBits, nil)
			require.ErrorIs(t, err, ErrCorruptStream)
		})
	}
}

func TestUnpackEmpty(t *testing.T) {
	out, err := Unpack(nil, CodeTable{}, 0, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}
