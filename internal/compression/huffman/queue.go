package huffman

import "container/heap"

type nodeHeap []*Node

func (nh *nodeHeap) Push(item any) {
	*nh = append(*nh, item.(*Node))
}

func (nh *nodeHeap) Pop() any {
	popped := (*nh)[len(*nh)-1]
	(*nh)[len(*nh)-1] = nil
	*nh = (*nh)[:len(*nh)-1]
	return popped
}

func (nh nodeHeap) Len() int {
	return len(nh)
}

func (nh nodeHeap) Less(i, j int) bool {
	if nh[i].Freq != nh[j].Freq {
		return nh[i].Freq < nh[j].Freq
	}
	return nh[i].seq < nh[j].seq
}

func (nh nodeHeap) Swap(i, j int) {
	nh[i], nh[j] = nh[j], nh[i]
}

// PriorityQueue is a binary min-heap of tree nodes keyed by frequency.
// Nodes with equal frequency come out in insertion order.
type PriorityQueue struct {
	nodes   nodeHeap
	nextSeq int
}

// NewPriorityQueue returns an empty queue with room for capacity nodes.
// The queue grows past capacity as needed.
func NewPriorityQueue(capacity int) *PriorityQueue {
	return &PriorityQueue{nodes: make(nodeHeap, 0, max(capacity, 1))}
}

func (pq *PriorityQueue) Len() int {
	return pq.nodes.Len()
}

// Insert adds node to the queue.
func (pq *PriorityQueue) Insert(node *Node) {
	node.seq = pq.nextSeq
	pq.nextSeq++
	heap.Push(&pq.nodes, node)
}

// ExtractMin removes and returns the lowest-frequency node.
// The boolean is false when the queue is empty.
func (pq *PriorityQueue) ExtractMin() (*Node, bool) {
	if pq.nodes.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&pq.nodes).(*Node), true
}
