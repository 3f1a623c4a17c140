// Package textio connects the huffman codec to the filesystem: it reads
// source texts, writes payloads and decompressed texts next to their sources,
// and reports the resulting file sizes.
package textio
