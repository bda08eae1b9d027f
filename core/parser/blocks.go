package parser

import (
	"strings"

	"github.com/FocuswithJustin/Aozora/core/ast"
)

// parseBlockStart recognizes ここから... region openers. Anything after
// ここから that names no known region is still claimed, as a note, so the
// opener never degrades into a line-scoped command.
func parseBlockStart(content string) (Command, bool) {
	if !strings.HasPrefix(content, "ここから") {
		return Command{}, false
	}
	rest := strings.TrimPrefix(content, "ここから")
	params := ast.BlockParams{IsBlock: true}

	if strings.Contains(rest, "折り返して") {
		if cmd, ok := parseBurasage(rest, params); ok {
			return cmd, true
		}
	}

	if n, ok := ast.ExtractNumber(rest); ok {
		params.Width = ast.IntPtr(n)
	}
	if strings.Contains(rest, "段階") {
		if n, ok := ast.ExtractNumber(rest); ok {
			params.FontSize = ast.IntPtr(n)
		}
	}
	bt, ok := ast.BlockTypeFromCommand(rest)
	if !ok {
		return Command{Kind: CommandNote, Text: content}, true
	}
	if bt == ast.BlockMidashi {
		params.Level, _ = ast.MidashiLevelFromCommand(rest)
		params.MidashiStyle = ast.MidashiStyleFromCommand(rest)
	}
	return Command{Kind: CommandBlockStart, Block: bt, Params: params}, true
}

// parseBurasage handles the hanging indent form 改行天付き、折り返してN字下げ:
// the width indents the first line, the wrap width indents the rest.
func parseBurasage(rest string, params ast.BlockParams) (Command, bool) {
	parts := strings.Split(rest, "折り返して")
	if len(parts) != 2 {
		return Command{}, false
	}
	if n, ok := ast.ExtractNumber(parts[1]); ok {
		params.WrapWidth = ast.IntPtr(n)
	}
	if strings.Contains(parts[0], "天付き") {
		params.Width = ast.IntPtr(0)
	} else if n, ok := ast.ExtractNumber(parts[0]); ok {
		params.Width = ast.IntPtr(n)
	}
	return Command{Kind: CommandBlockStart, Block: ast.BlockBurasage, Params: params}, true
}

// parseBlockEnd recognizes ここで...終わり region closers.
func parseBlockEnd(content string) (Command, bool) {
	if !strings.HasPrefix(content, "ここで") || !strings.HasSuffix(content, "終わり") {
		return Command{}, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(content, "ここで"), "終わり")
	if bt, ok := ast.BlockTypeFromCommand(inner); ok {
		return Command{Kind: CommandBlockEnd, Block: bt}, true
	}
	return Command{Kind: CommandNote, Text: content}, true
}

// parseAnnotationRange recognizes the three forms of annotated ranges:
// the openers 注記付き and 左に注記付き, and the 「...」の注記付き終わり
// closer that carries the annotation text.
func parseAnnotationRange(content string) (Command, bool) {
	switch content {
	case "注記付き":
		return Command{Kind: CommandBlockStart, Block: ast.BlockAnnotationRange}, true
	case "左に注記付き":
		return Command{Kind: CommandBlockStart, Block: ast.BlockLeftAnnotationRange}, true
	}
	if !strings.HasSuffix(content, "の注記付き終わり") {
		return Command{}, false
	}
	inner := strings.TrimSuffix(content, "の注記付き終わり")
	annotation, _ := bracketContent(inner)
	params := ast.BlockParams{Annotation: annotation}
	if strings.HasPrefix(inner, "左に") {
		return Command{Kind: CommandBlockEnd, Block: ast.BlockLeftAnnotationRange, Params: params}, true
	}
	return Command{Kind: CommandBlockEnd, Block: ast.BlockAnnotationRange, Params: params}, true
}

// parseInlineEnd recognizes bare ...終わり closers for regions opened on the
// same line.
func parseInlineEnd(content string) (Command, bool) {
	if !strings.HasSuffix(content, "終わり") {
		return Command{}, false
	}
	inner := strings.TrimSuffix(content, "終わり")
	switch inner {
	case "縦中横":
		return Command{Kind: CommandBlockEnd, Block: ast.BlockTcy}, true
	case "割り注":
		return Command{Kind: CommandBlockEnd, Block: ast.BlockWarigaki}, true
	case "キャプション":
		return Command{Kind: CommandBlockEnd, Block: ast.BlockCaption}, true
	}
	if st, ok := ast.StyleTypeFromCommand(inner); ok {
		return Command{Kind: CommandBlockEnd, Block: ast.BlockStyle, Params: ast.BlockParams{Style: st}}, true
	}
	if bt, ok := ast.BlockTypeFromCommand(inner); ok {
		return Command{Kind: CommandBlockEnd, Block: bt}, true
	}
	return Command{Kind: CommandNote, Text: content}, true
}

// parseLineIndent recognizes N字下げ, an indent scoped to the current line.
// The count is required; 字下げ without one reads as something else entirely
// (a closer already claimed above, or a note).
func parseLineIndent(content string) (Command, bool) {
	if !strings.Contains(content, "字下げ") {
		return Command{}, false
	}
	n, ok := ast.ExtractNumber(content)
	if !ok {
		return Command{}, false
	}
	params := ast.BlockParams{Width: ast.IntPtr(n)}
	return Command{Kind: CommandBlockStart, Block: ast.BlockJisage, Params: params}, true
}

// parseLineChitsuki recognizes 地付き and 地からN字上げ, bottom alignment
// scoped to the current line.
func parseLineChitsuki(content string) (Command, bool) {
	if strings.Contains(content, "地付き") {
		return Command{Kind: CommandBlockStart, Block: ast.BlockChitsuki}, true
	}
	if strings.Contains(content, "地から") && strings.Contains(content, "字上げ") {
		params := ast.BlockParams{}
		if n, ok := ast.ExtractNumber(content); ok && n > 0 {
			params.Width = ast.IntPtr(n)
		}
		return Command{Kind: CommandBlockStart, Block: ast.BlockChitsuki, Params: params}, true
	}
	return Command{}, false
}

// parseTcyStart recognizes 縦中横.
func parseTcyStart(content string) (Command, bool) {
	if content != "縦中横" {
		return Command{}, false
	}
	return Command{Kind: CommandBlockStart, Block: ast.BlockTcy}, true
}

// parseWarigakiStart recognizes 割り注.
func parseWarigakiStart(content string) (Command, bool) {
	if content != "割り注" {
		return Command{}, false
	}
	return Command{Kind: CommandBlockStart, Block: ast.BlockWarigaki}, true
}

// parseKeigakomiStart recognizes a bare 罫囲み, which opens an inline ruled
// span; the block form goes through ここから罫囲み.
func parseKeigakomiStart(content string) (Command, bool) {
	if content != "罫囲み" {
		return Command{}, false
	}
	return Command{Kind: CommandBlockStart, Block: ast.BlockKeigakomi}, true
}

// parseYokogumiStart recognizes a bare 横組み.
func parseYokogumiStart(content string) (Command, bool) {
	if content != "横組み" {
		return Command{}, false
	}
	return Command{Kind: CommandBlockStart, Block: ast.BlockYokogumi}, true
}

// parseStyleStart recognizes bare style names such as 傍点 and 太字, which
// open a decoration span closed by the matching ...終わり.
func parseStyleStart(content string) (Command, bool) {
	st, ok := ast.StyleTypeFromCommand(content)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: CommandBlockStart, Block: ast.BlockStyle, Params: ast.BlockParams{Style: st}}, true
}

// parseCaptionStart recognizes キャプション.
func parseCaptionStart(content string) (Command, bool) {
	if content != "キャプション" {
		return Command{}, false
	}
	return Command{Kind: CommandBlockStart, Block: ast.BlockCaption}, true
}

// parseMidashiStart recognizes heading openers such as 大見出し and
// 同行中見出し.
func parseMidashiStart(content string) (Command, bool) {
	level, ok := ast.MidashiLevelFromCommand(content)
	if !ok {
		return Command{}, false
	}
	params := ast.BlockParams{Level: level, MidashiStyle: ast.MidashiStyleFromCommand(content)}
	return Command{Kind: CommandBlockStart, Block: ast.BlockMidashi, Params: params}, true
}

// parseFontSizeStart recognizes N段階大きな文字 and N段階小さな文字.
func parseFontSizeStart(content string) (Command, bool) {
	typ, level, ok := ast.FontSizeFromCommand(content)
	if !ok {
		return Command{}, false
	}
	block := ast.BlockFontDai
	if typ == ast.FontSho {
		block = ast.BlockFontSho
	}
	return Command{Kind: CommandBlockStart, Block: block, Params: ast.BlockParams{FontSize: ast.IntPtr(level)}}, true
}
