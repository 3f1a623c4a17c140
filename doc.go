// Package huffman implements Huffman coding of text.  A code table is built
// from per-symbol frequencies, either of the text being compressed or of a
// separate dictionary text extended with the target's alphabet, and then used
// to pack the text into a byte stream with a one-byte padding header.
//
// Payload format:
//
//     offset 0   1 byte    padding length, 1 .. 8
//     offset 1   variable  codes, most significant bit first, followed by
//                          padding length zero bits
//
// The code table is not embedded in the payload.  Callers keep the
// *CodeTable returned by the compressor, or regenerate it from the same
// source texts.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
