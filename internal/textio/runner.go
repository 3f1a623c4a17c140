package textio

import (
	"fmt"
	"io"

	huffman "github.com/chronos-tachyon/texthuff"
)

// Runner executes full compress → write → read back → decompress → write
// cycles over files.
type Runner struct {
	Paths Paths

	// Trim removes trailing whitespace from every text read.
	Trim bool

	// Out receives progress messages.  May be nil.
	Out io.Writer
}

// NewRunner returns a Runner with the default file naming and trimming.
func NewRunner(out io.Writer) *Runner {
	return &Runner{Paths: DefaultPaths, Trim: true, Out: out}
}

// RunSelf compresses src with its own code table, writes the payload, then
// reads it back and writes the decompressed text.
func (r *Runner) RunSelf(src string) (*Report, error) {
	text, err := ReadText(src, r.Trim)
	if err != nil {
		return nil, err
	}

	payload, table, err := huffman.CompressSelf(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	log.Infof("%s: %s", src, table)

	return r.cycle("self", src, text, payload, table, func(payload []byte) (string, error) {
		return huffman.DecompressSelf(payload, table)
	})
}

// RunShared compresses src with the code table of dict extended by src's
// alphabet, writes the payload, then reads it back and writes the decompressed
// text.  The table is regenerated from both files for decompression.
func (r *Runner) RunShared(dict string, src string) (*Report, error) {
	dictText, err := ReadText(dict, r.Trim)
	if err != nil {
		return nil, err
	}
	text, err := ReadText(src, r.Trim)
	if err != nil {
		return nil, err
	}

	payload, table, err := huffman.CompressShared(dictText, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	log.Infof("%s: dictionary %s: %s", src, dict, table)

	return r.cycle("shared", src, text, payload, table, func(payload []byte) (string, error) {
		return huffman.DecompressShared(payload, dictText, text)
	})
}

func (r *Runner) cycle(mode string, src string, text string, payload []byte, table *huffman.CodeTable, decompress func([]byte) (string, error)) (*Report, error) {
	report := &Report{
		Mode:         mode,
		Source:       src,
		Compressed:   r.Paths.Compressed(src),
		Decompressed: r.Paths.Decompressed(src),
		Symbols:      table.Len(),
		Fingerprint:  table.Fingerprint(),
		Huff0Size:    huff0Size([]byte(text)),
	}

	var err error
	if report.InputSize, err = Size(src); err != nil {
		return nil, err
	}

	if err = WriteFile(report.Compressed, payload); err != nil {
		return nil, err
	}
	r.printf("Compression complete!\n")
	if report.CompressedSize, err = Size(report.Compressed); err != nil {
		return nil, err
	}

	stored, err := readPayload(report.Compressed)
	if err != nil {
		return nil, err
	}
	decoded, err := decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", report.Compressed, err)
	}
	if decoded != text {
		return nil, fmt.Errorf("%s: decompressed text does not match %s", report.Compressed, src)
	}

	if err = WriteFile(report.Decompressed, []byte(decoded)); err != nil {
		return nil, err
	}
	r.printf("Decompression complete!\n")
	if report.DecompressedSize, err = Size(report.Decompressed); err != nil {
		return nil, err
	}

	log.Debugf("%s: %d → %d bytes (ratio %.3f)", src, report.InputSize, report.CompressedSize, report.Ratio())
	return report, nil
}

func (r *Runner) printf(format string, args ...interface{}) {
	if r.Out != nil {
		fmt.Fprintf(r.Out, format, args...)
	}
}
