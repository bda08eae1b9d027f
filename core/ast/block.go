package ast

import "strings"

// BlockType identifies a block-scoped formatting region.
type BlockType string

// Block type constants.
const (
	// BlockJisage is left indentation.
	BlockJisage BlockType = "jisage"
	// BlockChitsuki is bottom alignment, optionally raised by a character
	// count.
	BlockChitsuki BlockType = "chitsuki"
	// BlockJizume is a fixed line length.
	BlockJizume BlockType = "jizume"
	// BlockKeigakomi is a ruled box.
	BlockKeigakomi BlockType = "keigakomi"
	// BlockMidashi is a heading region.
	BlockMidashi BlockType = "midashi"
	// BlockYokogumi is horizontally set text.
	BlockYokogumi BlockType = "yokogumi"
	// BlockFutoji is bold text.
	BlockFutoji BlockType = "futoji"
	// BlockShatai is italic text.
	BlockShatai BlockType = "shatai"
	// BlockFontDai is enlarged text.
	BlockFontDai BlockType = "font_dai"
	// BlockFontSho is reduced text.
	BlockFontSho BlockType = "font_sho"
	// BlockTcy is horizontal-in-vertical text.
	BlockTcy BlockType = "tcy"
	// BlockCaption is a figure caption region.
	BlockCaption BlockType = "caption"
	// BlockWarigaki is an inline two-row note region.
	BlockWarigaki BlockType = "warigaki"
	// BlockBurasage is hanging indentation: the first line keeps its own
	// indent while wrapped lines indent by the wrap width.
	BlockBurasage BlockType = "burasage"
	// BlockStyle is a decoration region opened by a bare style command.
	BlockStyle BlockType = "style"
	// BlockAnnotationRange is a range later resolved into ruby carrying the
	// annotation text.
	BlockAnnotationRange BlockType = "annotation_range"
	// BlockLeftAnnotationRange is an annotated range whose annotation sits
	// on the left side; it is resolved into note markers instead of ruby.
	BlockLeftAnnotationRange BlockType = "left_annotation_range"
)

// validBlockTypes is the set of valid block types.
var validBlockTypes = map[BlockType]bool{
	BlockJisage:              true,
	BlockChitsuki:            true,
	BlockJizume:              true,
	BlockKeigakomi:           true,
	BlockMidashi:             true,
	BlockYokogumi:            true,
	BlockFutoji:              true,
	BlockShatai:              true,
	BlockFontDai:             true,
	BlockFontSho:             true,
	BlockTcy:                 true,
	BlockCaption:             true,
	BlockWarigaki:            true,
	BlockBurasage:            true,
	BlockStyle:               true,
	BlockAnnotationRange:     true,
	BlockLeftAnnotationRange: true,
}

// IsValid returns true if the block type is valid.
func (b BlockType) IsValid() bool {
	return validBlockTypes[b]
}

// blockCommandWords maps command substrings to block types. Order matters:
// 折り返して must win over 字下げ so that hanging indents are not read as
// plain indents.
var blockCommandWords = []struct {
	word string
	typ  BlockType
}{
	{"折り返して", BlockBurasage},
	{"字下げ", BlockJisage},
	{"地付き", BlockChitsuki},
	{"地から", BlockChitsuki},
	{"字詰め", BlockJizume},
	{"罫囲み", BlockKeigakomi},
	{"見出し", BlockMidashi},
	{"横組み", BlockYokogumi},
	{"太字", BlockFutoji},
	{"斜体", BlockShatai},
	{"大きな文字", BlockFontDai},
	{"小さな文字", BlockFontSho},
	{"縦中横", BlockTcy},
	{"キャプション", BlockCaption},
	{"割り注", BlockWarigaki},
}

// BlockTypeFromCommand maps a command body such as "2字下げ" or "太字" to its
// block type. It returns false for command bodies that name no block.
func BlockTypeFromCommand(command string) (BlockType, bool) {
	for _, w := range blockCommandWords {
		if strings.Contains(command, w.word) {
			return w.typ, true
		}
	}
	return "", false
}

// BlockParams carries the parameters of a block region. Pointer fields
// distinguish an absent value from an explicit zero: ［＃ここから字下げ］ has
// no width while 天付き hanging indents have width zero.
type BlockParams struct {
	// Width is the indent, raise, or line length in characters.
	Width *int `json:"width,omitempty"`

	// WrapWidth is the indent of wrapped lines in a hanging indent.
	WrapWidth *int `json:"wrap_width,omitempty"`

	// Level is the heading level of a midashi block.
	Level MidashiLevel `json:"level,omitempty"`

	// MidashiStyle is the heading placement of a midashi block.
	MidashiStyle MidashiStyle `json:"midashi_style,omitempty"`

	// FontSize is the size step of a font_dai or font_sho block.
	FontSize *int `json:"font_size,omitempty"`

	// IsBlock is true for regions opened with ここから, which render as
	// block elements; bare commands open inline regions closed at line end.
	IsBlock bool `json:"is_block,omitempty"`

	// Style is the decoration of a style block.
	Style StyleType `json:"style,omitempty"`

	// Annotation is the annotation text carried by the end of an annotated
	// range.
	Annotation string `json:"annotation,omitempty"`

	// HasOpenParen and HasCloseParen record whether the surrounding text
	// already supplies the parentheses around a warigaki region.
	HasOpenParen  bool `json:"has_open_paren,omitempty"`
	HasCloseParen bool `json:"has_close_paren,omitempty"`
}

// WidthOr returns the width, or def when absent.
func (p BlockParams) WidthOr(def int) int {
	if p.Width == nil {
		return def
	}
	return *p.Width
}

// WrapWidthOr returns the wrap width, or def when absent.
func (p BlockParams) WrapWidthOr(def int) int {
	if p.WrapWidth == nil {
		return def
	}
	return *p.WrapWidth
}

// FontSizeOr returns the font size step, or def when absent.
func (p BlockParams) FontSizeOr(def int) int {
	if p.FontSize == nil {
		return def
	}
	return *p.FontSize
}

// IntPtr returns a pointer to v, for building params literals.
func IntPtr(v int) *int {
	return &v
}
