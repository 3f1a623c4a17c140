package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("texthuff/textio")

// ReadText reads the file at path as UTF-8 text.  If trim is true, trailing
// whitespace is removed.
func ReadText(path string, trim bool) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%s: not valid UTF-8 text", path)
	}
	text := string(raw)
	if trim {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}
	log.Debugf("read %d bytes (%d after trimming) from %s", len(raw), len(text), path)
	return text, nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	log.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

// Size returns the size in bytes of the file at path.
func Size(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return fi.Size(), nil
}

// Paths derives the companion file names of a source file.
type Paths struct {
	// BinExt replaces the source's extension on compressed files.
	BinExt string

	// OutSuffix replaces the source's extension on decompressed files.
	OutSuffix string
}

// DefaultPaths turns "notes.txt" into "notes.bin" and
// "notes_decompressed.txt".
var DefaultPaths = Paths{
	BinExt:    ".bin",
	OutSuffix: "_decompressed.txt",
}

// Compressed returns the path of the payload compressed from src.
func (p Paths) Compressed(src string) string {
	return stem(src) + p.BinExt
}

// Decompressed returns the path of the text decompressed from the payload of
// src.
func (p Paths) Decompressed(src string) string {
	return stem(src) + p.OutSuffix
}

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func readPayload(path string) ([]byte, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}
