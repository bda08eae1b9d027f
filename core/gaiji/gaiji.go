// Package gaiji resolves 外字 (gaiji) annotations, the ［＃...］ notes Aozora
// Bunko texts use for characters outside the JIS X 0208 repertoire. A note
// may carry a Unicode scalar ("U+4E9C"), a JIS X 0213 men-ku-ten code
// ("1-84-22"), or neither, and each case renders differently downstream.
package gaiji

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind discriminates the outcomes of parsing a gaiji description.
type Kind string

const (
	// KindUnicode means the description named a Unicode code point directly.
	KindUnicode Kind = "unicode"

	// KindJISConverted means a JIS X 0213 code was found and mapped to Unicode.
	KindJISConverted Kind = "jis_converted"

	// KindJISImage means a JIS X 0213 code was found but has no Unicode
	// mapping in the table, so it must be rendered as a glyph image.
	KindJISImage Kind = "jis_image"

	// KindUnconvertible means the description carried no usable code at all.
	KindUnconvertible Kind = "unconvertible"
)

// Result is the parsed form of a gaiji description.
type Result struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind `json:"kind"`

	// Unicode is the resolved character (set for KindUnicode and
	// KindJISConverted). JIS X 0213 maps some cells to composed sequences,
	// so this may hold more than one rune.
	Unicode string `json:"unicode,omitempty"`

	// JISCode is the normalized men-ku-ten code (set for KindJISConverted
	// and KindJISImage).
	JISCode string `json:"jis_code,omitempty"`
}

// Parse classifies a gaiji description. A Unicode reference wins over a JIS
// code when both are present; a JIS code without a table entry still yields
// the normalized code so callers can point at a glyph image.
func Parse(description string) Result {
	if r, ok := extractUnicode(description); ok {
		return Result{Kind: KindUnicode, Unicode: string(r)}
	}
	if code, ok := extractJISCode(description); ok {
		normalized := NormalizeJISCode(code)
		if u, ok := LookupJIS(normalized); ok {
			return Result{Kind: KindJISConverted, Unicode: u, JISCode: normalized}
		}
		return Result{Kind: KindJISImage, JISCode: normalized}
	}
	return Result{Kind: KindUnconvertible}
}

// Convert resolves a gaiji description to plain text, falling back to the
// geta mark 〓 when no character can be recovered.
func Convert(description string) string {
	if r, ok := extractUnicode(description); ok {
		return string(r)
	}
	if code, ok := extractJISCode(description); ok {
		if u, ok := LookupJIS(code); ok {
			return u
		}
	}
	return "〓"
}

// extractUnicode finds the first "U+" marker (case-insensitive) and reads
// the hexadecimal run after it. Values that are not valid scalar runes are
// rejected so the JIS path gets a chance instead.
func extractUnicode(description string) (rune, bool) {
	start := -1
	for i := 0; i+1 < len(description); i++ {
		if (description[i] == 'U' || description[i] == 'u') && description[i+1] == '+' {
			start = i + 2
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(description) && isHexDigit(description[end]) {
		end++
	}
	if end == start {
		return 0, false
	}
	cp, err := strconv.ParseUint(description[start:end], 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(cp)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}

// extractJISCode scans for the first digits-dash-digits-dash-digits run in
// the description. Whatever follows a complete code is ignored, and an
// incomplete run is abandoned as soon as an unexpected character appears.
func extractJISCode(description string) (string, bool) {
	var buf strings.Builder
	parts := 1
	runLen := 0
	reset := func() {
		buf.Reset()
		parts = 1
		runLen = 0
	}
	complete := func() bool { return parts == 3 && runLen > 0 }

	for _, r := range description {
		switch {
		case r >= '0' && r <= '9':
			buf.WriteRune(r)
			runLen++
		case r == '-' && runLen > 0 && parts < 3:
			buf.WriteRune(r)
			parts++
			runLen = 0
		default:
			if complete() {
				return buf.String(), true
			}
			reset()
		}
	}
	if complete() {
		return buf.String(), true
	}
	return "", false
}
