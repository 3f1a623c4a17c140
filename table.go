package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
)

// CodeTable holds the forward (Symbol → Code) and reverse (Code → Symbol)
// mappings derived from a Huffman tree.  The two mappings are exact inverses
// and the set of codes is prefix-free.  A CodeTable is immutable once built.
type CodeTable struct {
	forward map[Symbol]Code
	reverse map[Code]Symbol
	minSize int
	maxSize int
}

// BuildTable builds the Huffman tree for freq and derives its CodeTable.  An
// empty FrequencyTable yields an empty CodeTable, which can only pack the empty
// text.
func BuildTable(freq *FrequencyTable) (*CodeTable, error) {
	if freq.Len() == 0 {
		return &CodeTable{}, nil
	}
	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	return DeriveTable(tree), nil
}

// DeriveTable walks tree depth-first, appending '0' for each left edge and '1'
// for each right edge, and records the accumulated path of every leaf as that
// leaf's Code.  A tree consisting of a single leaf assigns it the code "0".
//
func DeriveTable(tree *Tree) *CodeTable {
	numLeaves := tree.NumLeaves()
	ct := &CodeTable{
		forward: make(map[Symbol]Code, numLeaves),
		reverse: make(map[Code]Symbol, numLeaves),
	}

	root := tree.nodes[tree.root]
	if root.isLeaf() {
		ct.record(root.symbol, "0")
		return ct
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path always holds the edges from the root to the child currently
	// being processed.

	type stackItem struct {
		node int32
		x    byte
	}

	stack := make([]stackItem, 0, 32)
	path := make([]byte, 0, 32)

	processChild := func(child int32, bit byte) {
		path = append(path, bit)
		n := tree.nodes[child]
		if n.isLeaf() {
			ct.record(n.symbol, Code(path))
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{node: child})
	}

	stack = append(stack, stackItem{node: tree.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := tree.nodes[top.node]
		switch x {
		case 0:
			processChild(n.left, '0')
		case 1:
			processChild(n.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	assert.Assertf(len(ct.forward) == numLeaves, "derived %d codes for %d leaves", len(ct.forward), numLeaves)
	return ct
}

func (ct *CodeTable) record(symbol Symbol, hc Code) {
	_, dupe := ct.reverse[hc]
	assert.Assertf(!dupe, "code %s assigned twice", hc)
	ct.forward[symbol] = hc
	ct.reverse[hc] = symbol

	size := hc.Size()
	if len(ct.forward) == 1 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return len(ct.forward)
}

// Encode returns the Code assigned to symbol.
func (ct *CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc, found := ct.forward[symbol]
	return hc, found
}

// Decode returns the Symbol whose Code is exactly hc.
func (ct *CodeTable) Decode(hc Code) (Symbol, bool) {
	symbol, found := ct.reverse[hc]
	return symbol, found
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// Equal reports whether both tables assign identical codes to identical
// symbols.
func (ct *CodeTable) Equal(other *CodeTable) bool {
	if len(ct.forward) != len(other.forward) {
		return false
	}
	for symbol, hc := range ct.forward {
		if otherCode, found := other.forward[symbol]; !found || otherCode != hc {
			return false
		}
	}
	return true
}

// Fingerprint returns a 64-bit digest of the table.  Two tables with equal
// fingerprints are, with overwhelming probability, Equal.  Since the table is
// never stored in the payload, this is how a decompressor can confirm that it
// regenerated the same table as the compressor.
//
func (ct *CodeTable) Fingerprint() uint64 {
	d := xxhash.New()
	var scratch [4]byte
	for _, symbol := range ct.sortedSymbols() {
		binary.BigEndian.PutUint32(scratch[:], uint32(symbol))
		_, _ = d.Write(scratch[:])
		_, _ = d.WriteString(string(ct.forward[symbol]))
		_, _ = d.Write([]byte{'\n'})
	}
	return d.Sum64()
}

// String returns a brief description of this CodeTable.
func (ct *CodeTable) String() string {
	if len(ct.forward) == 0 {
		return "(Huffman code table with 0 symbols)"
	}
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", len(ct.forward), ct.minSize, ct.maxSize)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	keys := make(byCode, 0, len(ct.reverse))
	for hc := range ct.reverse {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", hc, ct.reverse[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (ct *CodeTable) DebugString() string {
	var buf bytes.Buffer
	_, _ = ct.Dump(&buf)
	return buf.String()
}

var _ fmt.Stringer = (*CodeTable)(nil)

func (ct *CodeTable) sortedSymbols() []Symbol {
	out := make([]Symbol, 0, len(ct.forward))
	for symbol := range ct.forward {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
