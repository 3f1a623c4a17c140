package huffman

import (
	"strconv"
)

// Symbol represents one Unicode code point of the text being coded.
//
// Text is iterated as UTF-8, so an invalid byte sequence is seen as
// utf8.RuneError and will not survive a round trip byte-for-byte.
type Symbol rune

// String returns the Go-quoted representation of this Symbol.
func (s Symbol) String() string {
	return strconv.QuoteRune(rune(s))
}
