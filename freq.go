package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable maps each Symbol of an alphabet to its number of occurrences.
// Symbols are remembered in the order in which they were first seen; that
// order is the tie-break used when building the tree, which is what makes the
// resulting codes reproducible.
type FrequencyTable struct {
	counts map[Symbol]uint64
	order  []Symbol
}

// Count returns the FrequencyTable of text.  Empty text yields an empty table.
func Count(text string) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[Symbol]uint64)}
	for _, ch := range text {
		ft.add(Symbol(ch), 1)
	}
	return ft
}

// ExtendWithMissing inserts every Symbol of text that is not yet in the table
// with a count of 0.  Counts of symbols already present are not changed.
func (ft *FrequencyTable) ExtendWithMissing(text string) {
	if ft.counts == nil {
		ft.counts = make(map[Symbol]uint64)
	}
	for _, ch := range text {
		ft.add(Symbol(ch), 0)
	}
}

func (ft *FrequencyTable) add(symbol Symbol, n uint64) {
	if _, found := ft.counts[symbol]; !found {
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol] += n
}

// Len returns the number of distinct symbols, including zero-count ones.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Has reports whether symbol is a key of the table.
func (ft *FrequencyTable) Has(symbol Symbol) bool {
	_, found := ft.counts[symbol]
	return found
}

// Freq returns the count for symbol, or 0 if it is absent.
func (ft *FrequencyTable) Freq(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Symbols returns the table's symbols in first-seen order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range ft.counts {
		sum += n
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range ft.order {
		fmt.Fprintf(&buf, "\tFreq(%s) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
