// Package token defines the lexical token model for Aozora Bunko markup and
// the tokenizer that produces it. Tokens are transient: they are created and
// consumed within the processing of a single line.
package token

// Kind identifies the lexical category of a token.
type Kind string

// Token kind constants.
const (
	// KindText is a literal text run.
	KindText Kind = "text"

	// KindRuby is an implicit ruby span 《...》 whose base text is attached
	// later by the reference resolver.
	KindRuby Kind = "ruby"

	// KindPrefixedRuby is an explicit ruby span ｜base《ruby》.
	KindPrefixedRuby Kind = "prefixed_ruby"

	// KindCommand is a directive ［＃...］.
	KindCommand Kind = "command"

	// KindGaiji is a glyph directive ※［＃...］.
	KindGaiji Kind = "gaiji"

	// KindAccent is an accent composition span 〔...〕.
	KindAccent Kind = "accent"
)

// validKinds is the set of valid token kinds.
var validKinds = map[Kind]bool{
	KindText:         true,
	KindRuby:         true,
	KindPrefixedRuby: true,
	KindCommand:      true,
	KindGaiji:        true,
	KindAccent:       true,
}

// IsValid returns true if the token kind is valid.
func (k Kind) IsValid() bool {
	return validKinds[k]
}

// Token is one lexical unit of a markup line.
type Token struct {
	// Kind is the lexical category.
	Kind Kind `json:"kind"`

	// Text carries the literal run for KindText, the directive content for
	// KindCommand, and the glyph description for KindGaiji.
	Text string `json:"text,omitempty"`

	// Children contains the recursively tokenized interior of KindRuby and
	// KindAccent spans.
	Children []Token `json:"children,omitempty"`

	// Base contains the tokenized base text of KindPrefixedRuby.
	Base []Token `json:"base,omitempty"`

	// Ruby contains the tokenized ruby text of KindPrefixedRuby.
	Ruby []Token `json:"ruby,omitempty"`
}

// NewText returns a literal text token.
func NewText(s string) Token {
	return Token{Kind: KindText, Text: s}
}
