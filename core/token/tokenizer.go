package token

// tokenizer is a cursor over the runes of one line.
type tokenizer struct {
	runes []rune
	pos   int
}

// Tokenize converts one line of markup into a flat token sequence. The
// grammar is total: every input produces a token list, never an error.
func Tokenize(input string) []Token {
	t := &tokenizer{runes: []rune(input)}
	return t.tokenize()
}

func (t *tokenizer) tokenize() []Token {
	var tokens []Token

	for !t.eof() {
		r := t.runes[t.pos]

		switch r {
		case CommandBegin:
			if t.peek(1) == Igeta {
				tokens = append(tokens, t.readCommand())
			} else {
				// ［ alone is plain text.
				tokens = append(tokens, NewText(string(r)))
				t.skip(1)
			}

		case RubyBegin:
			tokens = append(tokens, t.readRuby())

		case RubyPrefix:
			tokens = append(tokens, t.readPrefixedRuby())

		case GaijiMark:
			if t.peek(1) == CommandBegin && t.peek(2) == Igeta {
				tokens = append(tokens, t.readGaiji())
			} else {
				// ※ alone is plain text.
				tokens = append(tokens, NewText(string(r)))
				t.skip(1)
			}

		case AccentBegin:
			if tok, ok := t.tryReadAccent(); ok {
				tokens = append(tokens, tok)
			} else {
				// No accent marks inside: 〔 is plain text.
				tokens = append(tokens, NewText(string(r)))
				t.skip(1)
			}

		default:
			tokens = append(tokens, t.readText())
		}
	}

	return tokens
}

// readText consumes a literal run up to the next delimiter.
func (t *tokenizer) readText() Token {
	start := t.pos
	for t.pos < len(t.runes) && !isDelimiter(t.runes[t.pos]) {
		t.pos++
	}
	return NewText(t.sliceFrom(start))
}

// readCommand consumes ［＃...］, tracking bracket depth so directive text may
// itself contain bracketed sub-content.
func (t *tokenizer) readCommand() Token {
	t.skip(2) // ［＃
	start := t.pos

	t.skipUntilBalanced(CommandBegin, CommandEnd)
	content := t.sliceFrom(start)
	t.skipIf(CommandEnd)

	return Token{Kind: KindCommand, Text: content}
}

// readRuby consumes 《...》 and recursively tokenizes the interior. The base
// text stays empty here; the reference resolver attaches it later.
func (t *tokenizer) readRuby() Token {
	t.skip(1) // 《
	start := t.pos

	t.skipUntil(RubyEnd)
	content := t.sliceFrom(start)
	t.skipIf(RubyEnd)

	return Token{Kind: KindRuby, Children: Tokenize(content)}
}

// readPrefixedRuby consumes ｜base《ruby》. When no 《 follows, the ｜ itself
// becomes plain text and scanning resumes just past it.
func (t *tokenizer) readPrefixedRuby() Token {
	t.skip(1) // ｜
	baseStart := t.pos

	if !t.skipUntil(RubyBegin) {
		t.pos = baseStart
		return NewText(string(RubyPrefix))
	}

	baseContent := t.sliceFrom(baseStart)
	t.skip(1) // 《
	rubyStart := t.pos

	t.skipUntil(RubyEnd)
	rubyContent := t.sliceFrom(rubyStart)
	t.skipIf(RubyEnd)

	return Token{
		Kind: KindPrefixedRuby,
		Base: Tokenize(baseContent),
		Ruby: Tokenize(rubyContent),
	}
}

// readGaiji consumes ※［＃...］ like a command but yields a glyph token.
func (t *tokenizer) readGaiji() Token {
	t.skip(3) // ※［＃
	start := t.pos

	t.skipUntilBalanced(CommandBegin, CommandEnd)
	description := t.sliceFrom(start)
	t.skipIf(CommandEnd)

	return Token{Kind: KindGaiji, Text: description}
}

// tryReadAccent tentatively consumes 〔...〕. It backtracks and reports false
// when the closer is missing or the interior contains no accent marks.
func (t *tokenizer) tryReadAccent() (Token, bool) {
	start := t.pos
	t.skip(1) // 〔
	contentStart := t.pos

	if !t.skipUntil(AccentEnd) {
		t.pos = start
		return Token{}, false
	}

	content := t.sliceFrom(contentStart)
	if !containsAccentMarks(content) {
		t.pos = start
		return Token{}, false
	}

	t.skip(1) // 〕

	return Token{Kind: KindAccent, Children: Tokenize(content)}, true
}

func containsAccentMarks(s string) bool {
	for _, r := range s {
		if IsAccentMark(r) {
			return true
		}
	}
	return false
}

// --- cursor helpers ---

func (t *tokenizer) eof() bool {
	return t.pos >= len(t.runes)
}

// peek returns the rune n positions ahead, or 0 past the end.
func (t *tokenizer) peek(n int) rune {
	if t.pos+n >= len(t.runes) {
		return 0
	}
	return t.runes[t.pos+n]
}

func (t *tokenizer) skip(n int) {
	t.pos += n
}

// skipUntil advances to the next occurrence of target and reports whether it
// was found before the end of input.
func (t *tokenizer) skipUntil(target rune) bool {
	for t.pos < len(t.runes) {
		if t.runes[t.pos] == target {
			return true
		}
		t.pos++
	}
	return false
}

// skipUntilBalanced advances to the matching close rune, counting nested
// opens, and stops just before the closer.
func (t *tokenizer) skipUntilBalanced(open, close rune) {
	depth := 1
	for t.pos < len(t.runes) && depth > 0 {
		switch t.runes[t.pos] {
		case open:
			depth++
		case close:
			depth--
		}
		if depth > 0 {
			t.pos++
		}
	}
}

func (t *tokenizer) skipIf(target rune) {
	if t.pos < len(t.runes) && t.runes[t.pos] == target {
		t.pos++
	}
}

func (t *tokenizer) sliceFrom(start int) string {
	return string(t.runes[start:t.pos])
}
