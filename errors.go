package huffman

import (
	"fmt"
)

// UnknownSymbolError is returned by Pack when the text contains a Symbol that
// has no code in the active CodeTable.
type UnknownSymbolError struct {
	// Symbol is the offending symbol.
	Symbol Symbol

	// Offset is the index of Symbol within the text, counted in symbols.
	Offset int
}

func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %s at offset %d has no code", err.Symbol, err.Offset)
}

// CorruptHeaderError is returned by Unpack when the padding header is outside
// 1 .. 8, or when the payload is shorter than the header demands.
type CorruptHeaderError struct {
	Header int
	Size   int
}

func (err *CorruptHeaderError) Error() string {
	if err.Header < 0 {
		return "huffman: payload is missing its padding header"
	}
	if err.Header < 1 || err.Header > 8 {
		return fmt.Sprintf("huffman: invalid padding header: got %d, expected 1 .. 8", err.Header)
	}
	return fmt.Sprintf("huffman: padding header %d exceeds the %d payload bits", err.Header, err.Size*8)
}

// UndecodableSequenceError is returned by Unpack when the payload ends with
// (or contains) a run of bits that matches no code in the CodeTable.
type UndecodableSequenceError struct {
	// Pending holds the unmatched bits.
	Pending Code

	// Offset is the bit offset, after the header, at which Pending began.
	Offset int
}

func (err *UndecodableSequenceError) Error() string {
	return fmt.Sprintf("huffman: undecodable bit sequence %s at bit offset %d", err.Pending, err.Offset)
}

// EmptyAlphabetError is returned when a tree is requested for an empty
// FrequencyTable, or when non-empty text is packed with an empty CodeTable.
type EmptyAlphabetError struct{}

func (err *EmptyAlphabetError) Error() string {
	return "huffman: empty alphabet"
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*CorruptHeaderError)(nil)
	_ error = (*UndecodableSequenceError)(nil)
	_ error = (*EmptyAlphabetError)(nil)
)
