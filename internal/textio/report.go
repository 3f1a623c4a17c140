package textio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/huff0"
)

// Report holds the file sizes of one compress/decompress cycle.
type Report struct {
	Mode string

	Source       string
	Compressed   string
	Decompressed string

	InputSize        int64
	CompressedSize   int64
	DecompressedSize int64

	// Symbols is the number of codes in the table used.
	Symbols int

	// Fingerprint identifies the code table used.
	Fingerprint uint64

	// Huff0Size is the size of the source compressed as a single
	// byte-oriented huff0 block, or -1 if huff0 declined to compress it.
	Huff0Size int
}

// Ratio returns CompressedSize / InputSize, or 0 for an empty input.
func (r *Report) Ratio() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.InputSize)
}

// WriteTo writes the report in human-readable form.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Input file size: %d bytes\n", r.InputSize)
	fmt.Fprintf(&buf, "Compressed file size: %d bytes\n", r.CompressedSize)
	fmt.Fprintf(&buf, "Decompressed file size: %d bytes\n", r.DecompressedSize)
	fmt.Fprintf(&buf, "Compression ratio: %.3f\n", r.Ratio())
	fmt.Fprintf(&buf, "Code table: %d symbols, fingerprint %016x\n", r.Symbols, r.Fingerprint)
	if r.Huff0Size < 0 {
		buf.WriteString("huff0 baseline: n/a\n")
	} else {
		fmt.Fprintf(&buf, "huff0 baseline: %d bytes\n", r.Huff0Size)
	}
	return buf.WriteTo(w)
}

var _ io.WriterTo = (*Report)(nil)

// huff0Size compresses raw as one huff0 1X block and returns the result's
// size.  huff0 refuses empty, incompressible, single-symbol and oversized
// inputs; those are reported as -1.
func huff0Size(raw []byte) int {
	if len(raw) == 0 || len(raw) > huff0.BlockSizeMax {
		return -1
	}
	out, _, err := huff0.Compress1X(raw, nil)
	if err != nil {
		log.Debugf("huff0 baseline unavailable: %v", err)
		return -1
	}
	return len(out)
}
