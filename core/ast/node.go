// Package ast defines the content tree produced by parsing Aozora Bunko
// markup. A document line becomes a flat list of Node values; reference
// resolution rewrites that list in place, attaching ruby bases and wrapping
// annotation targets, until only renderable nodes remain.
package ast

import "github.com/FocuswithJustin/Aozora/core/chartype"

// Kind discriminates the node variant.
type Kind string

// Node kind constants.
const (
	// KindText is a literal text run.
	KindText Kind = "text"
	// KindRuby is base text with phonetic ruby text attached.
	KindRuby Kind = "ruby"
	// KindStyle is text carrying an emphasis or line decoration.
	KindStyle Kind = "style"
	// KindMidashi is a heading.
	KindMidashi Kind = "midashi"
	// KindGaiji is a character outside the encodable set, described by its
	// source notation and, when known, its Unicode value or JIS code.
	KindGaiji Kind = "gaiji"
	// KindAccent is an accented Latin letter composed from accent notation.
	KindAccent Kind = "accent"
	// KindImage is an illustration reference.
	KindImage Kind = "image"
	// KindTcy is horizontal-in-vertical text.
	KindTcy Kind = "tcy"
	// KindKeigakomi is text in a ruled box.
	KindKeigakomi Kind = "keigakomi"
	// KindYokogumi is horizontally set text.
	KindYokogumi Kind = "yokogumi"
	// KindCaption is a figure caption.
	KindCaption Kind = "caption"
	// KindWarigaki is an inline two-row note.
	KindWarigaki Kind = "warigaki"
	// KindKaeriten is a kanbun return mark.
	KindKaeriten Kind = "kaeriten"
	// KindOkurigana is kanbun okurigana.
	KindOkurigana Kind = "okurigana"
	// KindFontSize is text at an enlarged or reduced size.
	KindFontSize Kind = "font_size"
	// KindBlockStart opens a block-scoped formatting region.
	KindBlockStart Kind = "block_start"
	// KindBlockEnd closes a block-scoped formatting region.
	KindBlockEnd Kind = "block_end"
	// KindNote is an editorial note reproduced verbatim.
	KindNote Kind = "note"
	// KindAnnotationEnd marks the end of a left-side annotated range. It is
	// kept as a node because the end notation may itself contain gaiji.
	KindAnnotationEnd Kind = "annotation_end"
	// KindUnresolvedReference is a backward reference that has not yet been
	// matched against preceding text.
	KindUnresolvedReference Kind = "unresolved_reference"
)

// validKinds is the set of valid node kinds.
var validKinds = map[Kind]bool{
	KindText:                true,
	KindRuby:                true,
	KindStyle:               true,
	KindMidashi:             true,
	KindGaiji:               true,
	KindAccent:              true,
	KindImage:               true,
	KindTcy:                 true,
	KindKeigakomi:           true,
	KindYokogumi:            true,
	KindCaption:             true,
	KindWarigaki:            true,
	KindKaeriten:            true,
	KindOkurigana:           true,
	KindFontSize:            true,
	KindBlockStart:          true,
	KindBlockEnd:            true,
	KindNote:                true,
	KindAnnotationEnd:       true,
	KindUnresolvedReference: true,
}

// IsValid returns true if the kind is a known node variant.
func (k Kind) IsValid() bool {
	return validKinds[k]
}

// RubyDirection selects which side of the base text ruby is set on.
type RubyDirection string

// Ruby direction constants.
const (
	RubyRight RubyDirection = "right"
	RubyLeft  RubyDirection = "left"
)

// Node is one node of the content tree. Kind selects the variant; the other
// fields are populated per variant and left zero otherwise.
type Node struct {
	// Kind discriminates the node variant.
	Kind Kind `json:"kind"`

	// Text is the literal payload of text, kaeriten, okurigana, and note
	// nodes.
	Text string `json:"text,omitempty"`

	// Children holds the base text of ruby nodes, the wrapped content of
	// style, midashi, tcy, keigakomi, yokogumi, caption, and font_size
	// nodes, and the annotation content of annotation_end nodes.
	Children []Node `json:"children,omitempty"`

	// Ruby holds the ruby text of a ruby node.
	Ruby []Node `json:"ruby,omitempty"`

	// Direction is the ruby side of a ruby node.
	Direction RubyDirection `json:"direction,omitempty"`

	// Style is the decoration applied by a style node.
	Style StyleType `json:"style,omitempty"`

	// ClassName is an extra CSS class carried by a style node.
	ClassName string `json:"class_name,omitempty"`

	// Level is the heading level of a midashi node.
	Level MidashiLevel `json:"level,omitempty"`

	// MidashiStyle is the heading placement of a midashi node.
	MidashiStyle MidashiStyle `json:"midashi_style,omitempty"`

	// Description is the source notation of a gaiji node.
	Description string `json:"description,omitempty"`

	// Unicode is the converted character of a gaiji or accent node, when
	// one is known.
	Unicode string `json:"unicode,omitempty"`

	// JISCode is the JIS X 0213 men-ku-ten code of a gaiji or accent node,
	// when one is known.
	JISCode string `json:"jis_code,omitempty"`

	// Name is the generated Japanese name of an accent node.
	Name string `json:"name,omitempty"`

	// Filename, Alt, and CSSClass describe an image node.
	Filename string `json:"filename,omitempty"`
	Alt      string `json:"alt,omitempty"`
	CSSClass string `json:"css_class,omitempty"`

	// Width and Height are image dimensions in pixels; nil when the source
	// notation omits them.
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`

	// Upper and Lower are the two rows of a warigaki node.
	Upper []Node `json:"upper,omitempty"`
	Lower []Node `json:"lower,omitempty"`

	// SizeType and SizeLevel describe a font_size node.
	SizeType  FontSizeType `json:"size_type,omitempty"`
	SizeLevel int          `json:"size_level,omitempty"`

	// Block and Params describe block_start and block_end nodes.
	Block  BlockType   `json:"block,omitempty"`
	Params BlockParams `json:"params,omitempty"`

	// Prefix and Suffix frame the annotation content of an annotation_end
	// node.
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`

	// Target, Spec, and Connector describe an unresolved_reference node:
	// the preceding text to find, the decoration to apply, and the particle
	// that joined them in the source.
	Target    string `json:"target,omitempty"`
	Spec      string `json:"spec,omitempty"`
	Connector string `json:"connector,omitempty"`
}

// NewText returns a text node.
func NewText(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// PlainText flattens the node to the text a reader would see. Ruby text,
// formatting commands, and notes contribute nothing; gaiji and accents
// contribute their converted character when known, falling back to the
// description or name.
func (n Node) PlainText() string {
	switch n.Kind {
	case KindText, KindKaeriten, KindOkurigana:
		return n.Text
	case KindRuby, KindStyle, KindMidashi, KindTcy, KindKeigakomi, KindYokogumi, KindCaption, KindFontSize:
		return plainText(n.Children)
	case KindGaiji:
		if n.Unicode != "" {
			return n.Unicode
		}
		return n.Description
	case KindAccent:
		if n.Unicode != "" {
			return n.Unicode
		}
		return n.Name
	case KindImage:
		return n.Alt
	case KindWarigaki:
		return plainText(n.Upper) + "（" + plainText(n.Lower) + "）"
	case KindUnresolvedReference:
		return "［＃「" + n.Target + "」" + n.Connector + n.Spec + "］"
	default:
		return ""
	}
}

func plainText(nodes []Node) string {
	var out string
	for _, n := range nodes {
		out += n.PlainText()
	}
	return out
}

// LastCharType reports the character class of the node's final character for
// ruby base extraction. The boolean is false for nodes that cannot end a ruby
// base run, such as commands and notes.
func (n Node) LastCharType() (chartype.CharType, bool) {
	switch n.Kind {
	case KindText:
		runes := []rune(n.Text)
		if len(runes) == 0 {
			return 0, false
		}
		ct := chartype.Classify(runes[len(runes)-1])
		if !ct.CanBeRubyBase() {
			return chartype.Else, true
		}
		return ct, true
	case KindGaiji:
		return chartype.Kanji, true
	case KindAccent:
		return chartype.Hankaku, true
	default:
		return 0, false
	}
}
