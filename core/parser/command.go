// Package parser turns token sequences into content tree nodes. It has three
// layers: a command interpreter that classifies ［＃...］ directive bodies, a
// builder that maps tokens to nodes, and a resolver that attaches backward
// references (ruby bases, annotated ranges, style references) to the text
// they point at.
package parser

import (
	"strings"

	"github.com/FocuswithJustin/Aozora/core/ast"
)

// CommandKind discriminates the interpreted forms of a directive body.
type CommandKind string

// Command kind constants.
const (
	// CommandNote is a directive reproduced verbatim as an editorial note.
	CommandNote CommandKind = "note"

	// CommandLeftRuby is 「target」の左に「ruby」のルビ.
	CommandLeftRuby CommandKind = "left_ruby"

	// CommandReference is a backward reference: a decoration applied to
	// 「target」 text that has already been emitted.
	CommandReference CommandKind = "reference"

	// CommandBlockStart opens a formatting region.
	CommandBlockStart CommandKind = "block_start"

	// CommandBlockEnd closes a formatting region.
	CommandBlockEnd CommandKind = "block_end"

	// CommandKaeriten is a kanbun return mark.
	CommandKaeriten CommandKind = "kaeriten"

	// CommandOkurigana is kanbun okurigana.
	CommandOkurigana CommandKind = "okurigana"

	// CommandImage is an illustration reference.
	CommandImage CommandKind = "image"
)

// Command is the interpreted form of one directive body. Kind selects the
// variant; the other fields are populated per variant.
type Command struct {
	// Kind discriminates the variant.
	Kind CommandKind

	// Text is the note body, the kaeriten marks, or the okurigana.
	Text string

	// Target, Spec, and Connector describe a backward reference.
	Target    string
	Spec      string
	Connector string

	// Ruby is the left ruby text of a left_ruby command.
	Ruby string

	// Block and Params describe block_start and block_end commands.
	Block  ast.BlockType
	Params ast.BlockParams

	// Filename, Alt, Width, and Height describe an image command.
	Filename string
	Alt      string
	Width    *int
	Height   *int
}

// rule is one row of the interpreter table: a recognizer that either claims
// the directive body or passes it to the next row.
type rule struct {
	name  string
	parse func(content string) (Command, bool)
}

// rules is the interpreter table. Order is load-bearing. The left-ruby rule
// must run before the backward-reference rule, which would otherwise claim
// its 「target」; block forms must run before the bare words they contain;
// and the final rows only see bodies nothing else recognized.
var rules = []rule{
	{"left_ruby", parseLeftRuby},
	{"reference", parseReference},
	{"block_start", parseBlockStart},
	{"block_end", parseBlockEnd},
	{"annotation_range", parseAnnotationRange},
	{"side_note", parseSideNote},
	{"inline_end", parseInlineEnd},
	{"line_indent", parseLineIndent},
	{"line_chitsuki", parseLineChitsuki},
	{"kaeriten", parseKaeriten},
	{"okurigana", parseOkurigana},
	{"kunten_note", parseKuntenNote},
	{"image", parseImage},
	{"tcy_start", parseTcyStart},
	{"warigaki_start", parseWarigakiStart},
	{"keigakomi_start", parseKeigakomiStart},
	{"yokogumi_start", parseYokogumiStart},
	{"style_start", parseStyleStart},
	{"caption_start", parseCaptionStart},
	{"midashi_start", parseMidashiStart},
	{"font_size_start", parseFontSizeStart},
}

// Interpret classifies one directive body. Bodies no rule recognizes become
// notes, reproduced verbatim in the output.
func Interpret(content string) Command {
	content = strings.TrimSpace(content)
	for _, r := range rules {
		if cmd, ok := r.parse(content); ok {
			return cmd
		}
	}
	return Command{Kind: CommandNote, Text: content}
}

// firstBracket returns the text inside the first 「...」 pair and the rest of
// the string after the closing bracket.
func firstBracket(s string) (inner, rest string, ok bool) {
	open := strings.Index(s, "「")
	if open < 0 {
		return "", "", false
	}
	afterOpen := open + len("「")
	close := strings.Index(s[afterOpen:], "」")
	if close < 0 {
		return "", "", false
	}
	inner = s[afterOpen : afterOpen+close]
	rest = s[afterOpen+close+len("」"):]
	return inner, rest, true
}

// bracketContent returns the text between the first 「 and the last 」,
// so annotation text may itself contain bracket pairs.
func bracketContent(s string) (string, bool) {
	open := strings.Index(s, "「")
	closeIdx := strings.LastIndex(s, "」")
	if open < 0 || closeIdx < open {
		return "", false
	}
	return s[open+len("「") : closeIdx], true
}
