package token

// Delimiter runes of the Aozora Bunko notation. All are fullwidth forms; the
// halfwidth equivalents are ordinary text.
const (
	// CommandBegin opens a directive: ［ (U+FF3B).
	CommandBegin = '［'
	// CommandEnd closes a directive: ］ (U+FF3D).
	CommandEnd = '］'
	// Igeta marks directive content: ＃ (U+FF03), always directly after ［.
	Igeta = '＃'
	// RubyBegin opens ruby text: 《 (U+300A).
	RubyBegin = '《'
	// RubyEnd closes ruby text: 》 (U+300B).
	RubyEnd = '》'
	// RubyPrefix marks the start of an explicit ruby base: ｜ (U+FF5C).
	RubyPrefix = '｜'
	// GaijiMark prefixes a glyph directive: ※ (U+203B).
	GaijiMark = '※'
	// AccentBegin opens an accent composition span: 〔 (U+3014).
	AccentBegin = '〔'
	// AccentEnd closes an accent composition span: 〕 (U+3015).
	AccentEnd = '〕'
)

// AccentMarks are the combining notation characters; an 〔...〕 span is only
// treated as accent composition when its interior contains at least one.
var AccentMarks = []rune{'\'', '`', '^', '~', ':', '&', '_', ',', '/', '@'}

// IsAccentMark reports whether r is one of the accent notation marks.
func IsAccentMark(r rune) bool {
	for _, m := range AccentMarks {
		if r == m {
			return true
		}
	}
	return false
}

// isDelimiter reports whether r starts a non-text token.
func isDelimiter(r rune) bool {
	switch r {
	case CommandBegin, RubyBegin, RubyPrefix, GaijiMark, AccentBegin:
		return true
	}
	return false
}
