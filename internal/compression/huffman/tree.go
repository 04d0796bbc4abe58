package huffman

import "fmt"

// Node is a Huffman tree node. Leaves have nil children; internal nodes
// always have both.
type Node struct {
	Symbol      byte
	Freq        uint64
	Left, Right *Node
	seq         int
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree merges the two least frequent nodes until a single root is left.
// A table with one entry produces a lone leaf.
func BuildTree(table *FrequencyTable) (*Node, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("build tree: %w", ErrEmptyInput)
	}
	if table.Len() > 256 {
		return nil, fmt.Errorf("build tree: %d symbols: %w", table.Len(), ErrUnsupportedInput)
	}
	pq := NewPriorityQueue(table.Len())
	for _, entry := range table.entries {
		pq.Insert(&Node{Symbol: entry.Symbol, Freq: entry.Count})
	}
	for pq.Len() > 1 {
		x, _ := pq.ExtractMin()
		y, _ := pq.ExtractMin()
		pq.Insert(&Node{
			Freq:  x.Freq + y.Freq,
			Left:  x,
			Right: y,
		})
	}
	root, _ := pq.ExtractMin()
	return root, nil
}

// height returns the length of the longest root-to-leaf path.
func (n *Node) height() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.height(), n.Right.height())
}
