package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits, one '0' or '1' byte per bit, first bit
// first.  Codes are unbounded in length: a dictionary extended with many
// zero-count symbols can produce trees deeper than any machine word.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) bool {
	return hc[i] == '1'
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(hc) >= len(prefix) && hc[:len(prefix)] == prefix
}

var _ fmt.Stringer = Code("")
