// Package chartype classifies characters into the semantic classes used by
// ruby base extraction. Classification is total: every rune maps to exactly
// one class.
package chartype

// CharType is the semantic class of a single character.
type CharType int

const (
	// Hiragana covers the hiragana block plus iteration marks.
	Hiragana CharType = iota
	// Katakana covers the katakana block plus the prolonged sound mark,
	// iteration marks, and ヴ.
	Katakana
	// Zenkaku covers fullwidth alphanumerics, Greek, Cyrillic, and a small
	// set of fullwidth punctuation.
	Zenkaku
	// Hankaku covers halfwidth alphanumerics and a small set of punctuation.
	Hankaku
	// Kanji covers the CJK unified ideographs block plus ideograph-adjacent
	// symbols (々 ※ 〆 〇 ヶ).
	Kanji
	// HankakuTerminate covers halfwidth punctuation that ends a run and can
	// never carry ruby.
	HankakuTerminate
	// Else is the catch-all class for everything not matched above.
	Else
)

// String returns the class name for diagnostics.
func (t CharType) String() string {
	switch t {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Zenkaku:
		return "zenkaku"
	case Hankaku:
		return "hankaku"
	case Kanji:
		return "kanji"
	case HankakuTerminate:
		return "hankaku_terminate"
	default:
		return "else"
	}
}

// CanBeRubyBase reports whether characters of this class may serve as the
// base text of a ruby annotation. Only the catch-all class is excluded.
func (t CharType) CanBeRubyBase() bool {
	return t != Else
}

// Classify returns the semantic class of r.
func Classify(r rune) CharType {
	switch {
	case r >= 'ぁ' && r <= 'ん', r == 'ゝ', r == 'ゞ':
		return Hiragana
	case r >= 'ァ' && r <= 'ン', r == 'ー', r == 'ヽ', r == 'ヾ', r == 'ヴ':
		return Katakana
	case r >= '０' && r <= '９', r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ',
		r >= 'Α' && r <= 'Ω', r >= 'α' && r <= 'ω',
		r >= 'А' && r <= 'Я', r >= 'а' && r <= 'я',
		r == '−', r == '＆', r == '’', r == '，', r == '．':
		return Zenkaku
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
		r == '#', r == '-', r == '&', r == '\'', r == ',':
		return Hankaku
	case r >= 0x4E00 && r <= 0x9FFF, r == '々', r == '※', r == '〆', r == '〇', r == 'ヶ':
		return Kanji
	case r == '.', r == ';', r == '"', r == '?', r == '!', r == ')':
		return HankakuTerminate
	default:
		return Else
	}
}
