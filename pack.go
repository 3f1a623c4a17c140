package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// HeaderSize is the size in bytes of the padding header that starts every
// payload.
const HeaderSize = 1

// PadLen returns the number of zero bits appended after numBits bits of codes.
//
// The result is always in 1 .. 8.  When numBits is already a multiple of 8, a
// whole byte of padding is emitted; this is part of the wire format and must
// not be "fixed", or existing payloads will no longer decode.
//
func PadLen(numBits int) int {
	return 8 - numBits%8
}

// PackedSize returns the payload size in bytes for numBits bits of codes.
func PackedSize(numBits int) int {
	return HeaderSize + (numBits+PadLen(numBits))/8
}

// Pack encodes text with table.  The result is a padding header byte followed
// by the concatenated codes of each symbol of text, most significant bit
// first, followed by the padding.
func Pack(text string, table *CodeTable) ([]byte, error) {
	codes := make([]Code, 0, len(text))
	var numBits int
	var offset int
	for _, ch := range text {
		hc, found := table.forward[Symbol(ch)]
		if !found {
			if len(table.forward) == 0 {
				return nil, &EmptyAlphabetError{}
			}
			return nil, &UnknownSymbolError{Symbol: Symbol(ch), Offset: offset}
		}
		codes = append(codes, hc)
		numBits += hc.Size()
		offset++
	}

	padLen := PadLen(numBits)

	var buf bytes.Buffer
	buf.Grow(PackedSize(numBits))
	w := bitio.NewWriter(&buf)

	if err := w.WriteByte(byte(padLen)); err != nil {
		return nil, err
	}
	for _, hc := range codes {
		for i := 0; i < hc.Size(); i++ {
			if err := w.WriteBool(hc.Bit(i)); err != nil {
				return nil, err
			}
		}
	}
	if err := w.WriteBits(0, uint8(padLen)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack decodes a payload produced by Pack with the same table.
//
// Bits are consumed greedily: as soon as the accumulated bits equal some code,
// its symbol is emitted and accumulation restarts.  This is unambiguous
// because the codes of a CodeTable are prefix-free.
//
func Unpack(payload []byte, table *CodeTable) (string, error) {
	if len(payload) < HeaderSize {
		return "", &CorruptHeaderError{Header: -1}
	}

	padLen := int(payload[0])
	body := payload[HeaderSize:]
	if padLen < 1 || padLen > 8 || padLen > len(body)*8 {
		return "", &CorruptHeaderError{Header: padLen, Size: len(body)}
	}
	numBits := len(body)*8 - padLen

	r := bitio.NewReader(bytes.NewReader(body))

	var sb strings.Builder
	sb.Grow(numBits / 2)
	candidate := make([]byte, 0, table.maxSize)
	var start int
	for i := 0; i < numBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("huffman: failed to read bit %d of %d: %w", i, numBits, err)
		}
		if bit {
			candidate = append(candidate, '1')
		} else {
			candidate = append(candidate, '0')
		}

		if symbol, found := table.reverse[Code(candidate)]; found {
			sb.WriteRune(rune(symbol))
			candidate = candidate[:0]
			start = i + 1
			continue
		}

		// No code is longer than maxSize, so this candidate can never
		// match.
		if len(candidate) >= table.maxSize {
			return "", &UndecodableSequenceError{Pending: Code(candidate), Offset: start}
		}
	}

	if len(candidate) != 0 {
		return "", &UndecodableSequenceError{Pending: Code(candidate), Offset: start}
	}
	return sb.String(), nil
}
