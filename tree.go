package huffman

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// noChild marks the child links of a leaf.
const noChild = int32(-1)

// Tree is a Huffman tree stored as an arena.  Nodes refer to their children by
// index, and the index of a node is also the order in which it entered the
// priority queue.
type Tree struct {
	nodes []treeNode
	root  int32
}

type treeNode struct {
	symbol Symbol
	weight uint64
	left   int32
	right  int32
}

func (n treeNode) isLeaf() bool {
	return n.left == noChild
}

// BuildTree reduces a FrequencyTable to a single Huffman tree by repeatedly
// merging the two lightest nodes.  Nodes of equal weight are ordered by when
// they were inserted: leaves in the table's first-seen order, then merged
// nodes in order of creation.  The first node popped becomes the left child.
//
// A table with exactly one symbol produces a tree whose root is that leaf.  An
// empty table returns *EmptyAlphabetError.
//
func BuildTree(freq *FrequencyTable) (*Tree, error) {
	numLeaves := freq.Len()
	if numLeaves == 0 {
		return nil, &EmptyAlphabetError{}
	}
	assert.Assertf(numLeaves <= math.MaxInt32/2, "numLeaves %d > %d", numLeaves, math.MaxInt32/2)

	// A full binary tree with n leaves has n-1 internal nodes.
	t := &Tree{nodes: make([]treeNode, 0, 2*numLeaves-1)}
	h := nodeHeap{tree: t, list: make([]int32, 0, numLeaves)}

	for _, symbol := range freq.order {
		h.list = append(h.list, t.push(treeNode{
			symbol: symbol,
			weight: freq.counts[symbol],
			left:   noChild,
			right:  noChild,
		}))
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		// Compute weight using saturating addition
		wa, wb := t.nodes[a].weight, t.nodes[b].weight
		weight := wa + wb
		if weight < wa {
			weight = math.MaxUint64
		}

		heap.Push(&h, t.push(treeNode{weight: weight, left: a, right: b}))
	}

	t.root = heap.Pop(&h).(int32)
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "arena holds %d nodes, expected %d", len(t.nodes), 2*numLeaves-1)
	return t, nil
}

// NumLeaves returns the number of symbols in the tree.
func (t *Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the total symbol count.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

func (t *Tree) push(n treeNode) int32 {
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return index
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	wa, wb := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	assert.Assertf(len(h.list) != 0, "Pop on empty nodeHeap")
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
