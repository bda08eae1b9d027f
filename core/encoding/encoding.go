// Package encoding converts between the byte encodings Aozora Bunko files
// use on disk and the UTF-8 the pipeline works in. Files are Shift_JIS by
// long convention, with newer sources in UTF-8; detection is by trial, not
// declaration.
package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	textenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeToUTF8 interprets raw file bytes as text: a UTF-8 byte order mark is
// dropped, valid UTF-8 passes through, anything else decodes as Shift_JIS.
// Malformed Shift_JIS bytes become U+FFFD; the function never fails.
func DecodeToUTF8(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}
	// The x/text decoder substitutes U+FFFD for undecodable bytes rather
	// than returning an error.
	decoded, _ := japanese.ShiftJIS.NewDecoder().Bytes(data)
	return string(decoded)
}

// EncodeShiftJIS converts UTF-8 text to Shift_JIS bytes for HTML output.
// Runes outside Shift_JIS become decimal numeric character references, which
// is what a charset=Shift_JIS document needs.
func EncodeShiftJIS(text string) []byte {
	enc := textenc.HTMLEscapeUnsupported(japanese.ShiftJIS.NewEncoder())
	out, _ := enc.Bytes([]byte(text))
	return out
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes the four characters that are markup in attribute and
// text positions. Single quotes stay literal, matching the rendered corpus.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
