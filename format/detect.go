// Package format provides file format detection for the converter.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a file format read or written by the converter.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PLT indicates a plotter command stream.
	PLT
	// DXF indicates a drawing exchange file.
	DXF
	// Text indicates a plain text report.
	Text
	// PNG indicates a PNG image.
	PNG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PLT:
		return "PLT"
	case DXF:
		return "DXF"
	case Text:
		return "Text"
	case PNG:
		return "PNG"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PLT:
		return ".plt"
	case DXF:
		return ".dxf"
	case Text:
		return ".txt"
	case PNG:
		return ".png"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".plt", ".hpgl", ".hpg", ".hgl":
		return PLT
	case ".dxf":
		return DXF
	case ".txt":
		return Text
	case ".png":
		return PNG
	default:
		return Unknown
	}
}

// ReplaceExtension returns filename with its extension replaced by the
// typical extension of f.
func ReplaceExtension(filename string, f Format) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + f.Extension()
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown if the format cannot be determined from the data alone.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, pngMagic) {
		return PNG
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}

	// DXF files open with group code 0 and a SECTION marker
	if trimmed[0] == '0' {
		rest := bytes.TrimLeft(trimmed[1:], " \t\r\n")
		if bytes.HasPrefix(rest, []byte("SECTION")) {
			return DXF
		}
	}

	if detectPLTMagic(trimmed) {
		return PLT
	}
	return Unknown
}

// detectPLTMagic checks if the data starts like a plotter command stream:
// an escape sequence or a two-letter mnemonic followed by an argument,
// a separator, or the end of data.
func detectPLTMagic(data []byte) bool {
	if data[0] == 0x1b {
		return true
	}
	if len(data) < 2 || !isLetter(data[0]) || !isLetter(data[1]) {
		return false
	}
	if len(data) == 2 {
		return true
	}
	c := data[2]
	return c == ';' || c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') || c == '\r' || c == '\n'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// DetectFromReader inspects the first bytes of r to determine format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
