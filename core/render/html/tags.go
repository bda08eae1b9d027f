package html

import (
	"strconv"

	"github.com/FocuswithJustin/Aozora/core/ast"
)

// blockStartTag builds the opening tag for a block region. Headings take
// the anchor id generated by the block manager.
func blockStartTag(bt ast.BlockType, params ast.BlockParams, midashiID int) string {
	switch bt {
	case ast.BlockJisage:
		return jisageStartTag(params)
	case ast.BlockChitsuki:
		return chitsukiStartTag(params)
	case ast.BlockJizume:
		return jizumeStartTag(params)
	case ast.BlockKeigakomi:
		if params.IsBlock {
			return `<div class="keigakomi" style="border: solid 1px">`
		}
		return `<span class="keigakomi">`
	case ast.BlockMidashi:
		return midashiStartTag(params, midashiID)
	case ast.BlockYokogumi:
		if params.IsBlock {
			return `<div class="yokogumi">`
		}
		return `<span class="yokogumi">`
	case ast.BlockFutoji:
		return `<div class="futoji">`
	case ast.BlockShatai:
		return `<div class="shatai">`
	case ast.BlockFontDai:
		return fontStartTag(params, "dai", fontDaiSize)
	case ast.BlockFontSho:
		return fontStartTag(params, "sho", fontShoSize)
	case ast.BlockTcy:
		return `<span dir="ltr">`
	case ast.BlockCaption:
		if params.IsBlock {
			return `<div class="caption">`
		}
		return `<span class="caption">`
	case ast.BlockWarigaki:
		if params.HasOpenParen {
			return `<span class="warichu">`
		}
		return `<span class="warichu">（`
	case ast.BlockBurasage:
		return burasageStartTag(params)
	case ast.BlockStyle:
		if params.Style != "" {
			return "<" + styleTag(params.Style) + ` class="` + styleClass(params.Style) + `">`
		}
		return "<span>"
	}
	// Annotated ranges resolve to ruby before rendering and never reach
	// here.
	return ""
}

// blockEndTag builds the closing tag for a block region.
func blockEndTag(bt ast.BlockType, params ast.BlockParams) string {
	switch bt {
	case ast.BlockJisage, ast.BlockChitsuki, ast.BlockJizume,
		ast.BlockFutoji, ast.BlockShatai, ast.BlockBurasage:
		return "</div>"
	case ast.BlockKeigakomi, ast.BlockYokogumi, ast.BlockCaption,
		ast.BlockFontDai, ast.BlockFontSho:
		if params.IsBlock {
			return "</div>"
		}
		return "</span>"
	case ast.BlockMidashi:
		return "</a></" + midashiTag(params.Level) + ">"
	case ast.BlockTcy:
		return "</span>"
	case ast.BlockWarigaki:
		if params.HasCloseParen {
			return "</span>"
		}
		return "）</span>"
	case ast.BlockStyle:
		if params.Style != "" {
			return "</" + styleTag(params.Style) + ">"
		}
		return "</span>"
	}
	return ""
}

func jisageStartTag(params ast.BlockParams) string {
	if params.Width == nil {
		return `<div class="jisage">`
	}
	w := strconv.Itoa(*params.Width)
	return `<div class="jisage_` + w + `" style="margin-left: ` + w + `em">`
}

func chitsukiStartTag(params ast.BlockParams) string {
	w := strconv.Itoa(params.WidthOr(0))
	return `<div class="chitsuki_` + w + `" style="text-align:right; margin-right: ` + w + `em">`
}

func jizumeStartTag(params ast.BlockParams) string {
	if params.Width == nil {
		return `<div class="jizume">`
	}
	w := strconv.Itoa(*params.Width)
	return `<div class="jizume_` + w + `" style="width: ` + w + `em">`
}

func midashiStartTag(params ast.BlockParams, midashiID int) string {
	tag := midashiTag(params.Level)
	class := midashiClass(params.Level, params.MidashiStyle)
	return "<" + tag + ` class="` + class + `"><a class="midashi_anchor" id="midashi` +
		strconv.Itoa(midashiID) + `">`
}

func fontDaiSize(step int) string {
	switch step {
	case 1:
		return "large"
	case 2:
		return "x-large"
	}
	return "xx-large"
}

func fontShoSize(step int) string {
	switch step {
	case 1:
		return "small"
	case 2:
		return "x-small"
	}
	return "xx-small"
}

func fontStartTag(params ast.BlockParams, class string, size func(int) string) string {
	step := params.FontSizeOr(1)
	tag := "span"
	if params.IsBlock {
		tag = "div"
	}
	return "<" + tag + ` class="` + class + strconv.Itoa(step) + `" style="font-size: ` +
		size(step) + `;">`
}

func burasageStartTag(params ast.BlockParams) string {
	wrap := params.WrapWidthOr(1)
	indent := params.WidthOr(0) - wrap
	return `<div class="burasage" style="margin-left: ` + strconv.Itoa(wrap) +
		`em; text-indent: ` + strconv.Itoa(indent) + `em;">`
}
