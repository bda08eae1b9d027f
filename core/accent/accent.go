// Package accent converts 〔...〕 accent composition spans, the notation
// Aozora Bunko texts use for Latin letters with diacritics. Inside a span a
// letter followed by a mark stands for the accented form ("e'" for é), and
// two letters closed by "&" form a ligature ("oe&" for œ).
package accent

import (
	"strings"
	"unicode"

	"github.com/FocuswithJustin/Aozora/core/gaiji"
	"github.com/FocuswithJustin/Aozora/core/token"
)

// PartKind discriminates the segments of a parsed accent span.
type PartKind string

const (
	// PartText is a literal run with no accent composition in it.
	PartText PartKind = "text"

	// PartAccent is one composed accented character.
	PartAccent PartKind = "accent"
)

// Part is one segment of an accent composition span.
type Part struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind PartKind `json:"kind"`

	// Text is the literal run (PartText only).
	Text string `json:"text,omitempty"`

	// JISCode is the men-ku-ten code of the accented form (PartAccent only).
	JISCode string `json:"jis_code,omitempty"`

	// Name is the Japanese description of the accented form, used when the
	// character has to be shown as a note or a glyph image (PartAccent only).
	Name string `json:"name,omitempty"`

	// Unicode is the resolved character, when the table has one.
	Unicode string `json:"unicode,omitempty"`
}

// Convert resolves every accent sequence in s to its Unicode form, leaving
// unrecognized characters as they are.
func Convert(s string) string {
	var out strings.Builder
	chars := []rune(s)
	for i := 0; i < len(chars); {
		if key, code, n := match(chars, i); n > 0 {
			if u, ok := gaiji.LookupJIS(code); ok {
				out.WriteString(u)
			} else {
				out.WriteString(key)
			}
			i += n
			continue
		}
		out.WriteRune(chars[i])
		i++
	}
	return out.String()
}

// Parse splits s into literal text and composed accented characters.
func Parse(s string) []Part {
	var parts []Part
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, Part{Kind: PartText, Text: text.String()})
			text.Reset()
		}
	}

	chars := []rune(s)
	for i := 0; i < len(chars); {
		if key, code, n := match(chars, i); n > 0 {
			flush()
			u, _ := gaiji.LookupJIS(code)
			parts = append(parts, Part{
				Kind:    PartAccent,
				JISCode: code,
				Name:    accentName(key),
				Unicode: u,
			})
			i += n
			continue
		}
		text.WriteRune(chars[i])
		i++
	}
	flush()
	return parts
}

// match tries the three-rune ligature form before the two-rune form so that
// "oe&" is not read as a plain "o" followed by "e&". It reports how many
// runes were consumed; zero means no composition starts at i.
func match(chars []rune, i int) (key, code string, n int) {
	if i+2 < len(chars) && token.IsAccentMark(chars[i+2]) {
		k := string(chars[i : i+3])
		if c, ok := accentTable[k]; ok {
			return k, c, 3
		}
	}
	if i+1 < len(chars) && token.IsAccentMark(chars[i+1]) {
		k := string(chars[i : i+2])
		if c, ok := accentTable[k]; ok {
			return k, c, 2
		}
	}
	return "", "", 0
}

func accentName(key string) string {
	runes := []rune(key)
	switch len(runes) {
	case 2:
		mark := markName(runes[1])
		base := runes[0]
		if unicode.IsLower(base) {
			return mark + "付き" + strings.ToUpper(string(base)) + "小文字"
		}
		return mark + "付き" + string(base)
	case 3:
		if unicode.IsUpper(runes[0]) {
			return "リガチャ大文字"
		}
		return "リガチャ小文字"
	}
	return key
}

func markName(mark rune) string {
	switch mark {
	case '\'':
		return "アキュートアクセント"
	case '`':
		return "グレーブアクセント"
	case '^':
		return "サーカムフレックスアクセント"
	case ':':
		return "ダイエレシス"
	case '~':
		return "チルダ"
	case '_':
		return "マクロン"
	case ',':
		return "セディラ"
	}
	return "アクセント"
}
