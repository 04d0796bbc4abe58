package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func requirePrefixFree(t *testing.T, codes CodeTable) {
	t.Helper()
	for a, codeA := range codes {
		require.NotEmpty(t, codeA, "symbol %d", a)
		for b, codeB := range codes {
			if a == b {
				continue
			}
			require.False(t, strings.HasPrefix(codeB, codeA), "code %q of %d prefixes code %q of %d", codeA, a, codeB, b)
		}
	}
}

func TestCountFrequencies(t *testing.T) {
	table := CountFrequencies([]byte("aabbbccc"))
	require.Equal(t, []FrequencyEntry{{'a', 2}, {'b', 3}, {'c', 3}}, table.Entries())
	require.Equal(t, uint64(3), table.Count('c'))
	require.Zero(t, table.Count('z'))
	require.Equal(t, uint64(8), table.Total())
}

func TestBuildTreeEmpty(t *testing.T) {
	_, err := BuildTree(CountFrequencies(nil))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	root, err := BuildTree(CountFrequencies([]byte("aaaa")))
	require.NoError(t, err)
	require.True(t, root.IsLeaf())
	require.Equal(t, byte('a'), root.Symbol)
	require.Equal(t, uint64(4), root.Freq)

	require.Equal(t, CodeTable{'a': "0"}, AssignCodes(root))
}

func TestBuildTreeKnownVector(t *testing.T) {
	table := CountFrequencies([]byte("aabbbccc"))
	root, err := BuildTree(table)
	require.NoError(t, err)
	require.Equal(t, uint64(8), root.Freq)

	codes := AssignCodes(root)
	require.Len(t, codes, 3)
	requirePrefixFree(t, codes)
	total := 2*len(codes['a']) + 3*len(codes['b']) + 3*len(codes['c'])
	require.Equal(t, uint64(total), codes.EncodedBits(table))
	require.Equal(t, 13, total)
}

func TestAssignCodesPrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		content := make([]byte, 1+rng.Intn(4096))
		alphabet := 1 + rng.Intn(256)
		for j := range content {
			content[j] = byte(rng.Intn(alphabet))
		}
		table := CountFrequencies(content)
		root, err := BuildTree(table)
		require.NoError(t, err)
		codes := AssignCodes(root)
		require.Len(t, codes, table.Len())
		requirePrefixFree(t, codes)
		require.NoError(t, codes.Validate())
		require.LessOrEqual(t, root.height(), table.Len())
	}
}

func TestAssignCodesDeepTree(t *testing.T) {
	// Fibonacci counts give the most lopsided tree.
	var content []byte
	a, b := 1, 1
	for symbol := 0; symbol < 20; symbol++ {
		for i := 0; i < a; i++ {
			content = append(content, byte(symbol))
		}
		a, b = b, a+b
	}
	root, err := BuildTree(CountFrequencies(content))
	require.NoError(t, err)
	require.Equal(t, 19, root.height())

	codes := AssignCodes(root)
	requirePrefixFree(t, codes)
	longest := 0
	for _, code := range codes {
		longest = max(longest, len(code))
	}
	require.Equal(t, 19, longest)
}
