package huffman

import (
	"fmt"
	"slices"
	"strings"
)

// maxCodeLength is the deepest leaf a tree over 256 symbols can have.
const maxCodeLength = 255

// CodeTable maps each symbol to its code, a string of '0' and '1'.
type CodeTable map[byte]string

// AssignCodes walks the tree and records the root-to-leaf path of every leaf,
// '0' for a left turn and '1' for a right one. A lone leaf gets code "0".
func AssignCodes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if root.IsLeaf() {
		codes[root.Symbol] = "0"
		return codes
	}
	getSymbolEncoding(root, codes, make([]byte, 0, 16))
	return codes
}

func getSymbolEncoding(node *Node, codes CodeTable, currentPrefix []byte) {
	if node.IsLeaf() {
		codes[node.Symbol] = string(currentPrefix)
		return
	}
	getSymbolEncoding(node.Left, codes, append(currentPrefix, '0'))
	getSymbolEncoding(node.Right, codes, append(currentPrefix, '1'))
}

// Symbols returns the table's symbols in ascending order.
func (ct CodeTable) Symbols() []byte {
	symbols := make([]byte, 0, len(ct))
	for s := range ct {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// EncodedBits returns the number of payload bits needed to encode table's
// counts with these codes.
func (ct CodeTable) EncodedBits(table *FrequencyTable) uint64 {
	var total uint64
	for _, e := range table.entries {
		total += e.Count * uint64(len(ct[e.Symbol]))
	}
	return total
}

// Validate checks that every code is a non-empty run of '0'/'1' no longer
// than maxCodeLength and that no code is a prefix of another.
func (ct CodeTable) Validate() error {
	_, err := newDecodeTrie(ct)
	return err
}

// decodeTrie is the binary trie spelled out by a code table. Walking it bit
// by bit stops at the first code equal to the bits read so far.
type decodeTrie struct {
	children [2]*decodeTrie
	symbol   byte
	leaf     bool
}

func newDecodeTrie(codes CodeTable) (*decodeTrie, error) {
	root := &decodeTrie{}
	for _, symbol := range codes.Symbols() {
		code := codes[symbol]
		if len(code) == 0 || len(code) > maxCodeLength {
			return nil, fmt.Errorf("symbol %d: code length %d: %w", symbol, len(code), ErrCorruptStream)
		}
		if strings.Trim(code, "01") != "" {
			return nil, fmt.Errorf("symbol %d: code %q is not binary: %w", symbol, code, ErrCorruptStream)
		}
		node := root
		for i := 0; i < len(code); i++ {
			if node.leaf {
				return nil, fmt.Errorf("symbol %d: code %q extends the code of symbol %d: %w", symbol, code, node.symbol, ErrCorruptStream)
			}
			bit := code[i] - '0'
			if node.children[bit] == nil {
				node.children[bit] = &decodeTrie{}
			}
			node = node.children[bit]
		}
		if node.leaf || node.children[0] != nil || node.children[1] != nil {
			return nil, fmt.Errorf("symbol %d: code %q collides with another code: %w", symbol, code, ErrCorruptStream)
		}
		node.leaf = true
		node.symbol = symbol
	}
	return root, nil
}
