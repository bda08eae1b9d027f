package html

import (
	"strings"
	"unicode/utf8"

	"github.com/FocuswithJustin/Aozora/core/ast"
)

// lineType classifies a rendered line for layout decisions: block lines get
// no <br /> and no hanging-indent wrap.
type lineType int

const (
	lineEmpty lineType = iota
	lineBlock
	lineInline
)

func classifyLine(html string) lineType {
	if html == "" {
		return lineEmpty
	}
	if strings.HasPrefix(html, `<div class="`) ||
		strings.HasPrefix(html, "<h3") ||
		strings.HasPrefix(html, "<h4") ||
		strings.HasPrefix(html, "<h5") ||
		strings.HasSuffix(html, "</div>") ||
		strings.HasSuffix(html, "</h3>") ||
		strings.HasSuffix(html, "</h4>") ||
		strings.HasSuffix(html, "</h5>") {
		return lineBlock
	}
	return lineInline
}

// styleClass returns the CSS class for a decoration. StyleType values are
// the class names.
func styleClass(st ast.StyleType) string {
	return string(st)
}

// styleTag returns the element a decoration renders as. Dots and lines use
// em; bold and italic carry their meaning in the class alone.
func styleTag(st ast.StyleType) string {
	switch st {
	case ast.StyleSubscript:
		return "sub"
	case ast.StyleSuperscript:
		return "sup"
	case ast.StyleBold, ast.StyleItalic:
		return "span"
	}
	return "em"
}

func midashiTag(level ast.MidashiLevel) string {
	switch level {
	case ast.MidashiNaka:
		return "h4"
	case ast.MidashiKo:
		return "h5"
	}
	return "h3"
}

// midashiClass combines level and placement the way the Aozora site CSS
// names headings: o-midashi, dogyo-naka-midashi, mado-ko-midashi.
func midashiClass(level ast.MidashiLevel, style ast.MidashiStyle) string {
	levelStr := "o"
	switch level {
	case ast.MidashiNaka:
		levelStr = "naka"
	case ast.MidashiKo:
		levelStr = "ko"
	}
	switch style {
	case ast.MidashiDogyo:
		return "dogyo-" + levelStr + "-midashi"
	case ast.MidashiMado:
		return "mado-" + levelStr + "-midashi"
	}
	return levelStr + "-midashi"
}

// jisCodeToPath splits a men-ku-ten code into the glyph image folder and
// file stem: 1-02-22 lives at 1-02/1-02-22.png.
func jisCodeToPath(code string) (folder, file string) {
	parts := strings.Split(code, "-")
	if len(parts) == 3 {
		return parts[0] + "-" + parts[1], code
	}
	return "", code
}

// isBlockOnlyLine reports whether a rendered line needs no trailing <br />.
func isBlockOnlyLine(html string) bool {
	if strings.HasSuffix(html, "<br />") {
		return true
	}
	if strings.HasSuffix(html, "</p>") {
		return true
	}
	for _, h := range []string{"</h1>", "</h2>", "</h3>", "</h4>", "</h5>", "</h6>"} {
		if strings.HasSuffix(html, h) {
			// Run-in and window headings stay in the text flow and keep
			// their <br />.
			if !strings.Contains(html, "dogyo-") && !strings.Contains(html, "mado-") {
				return true
			}
			break
		}
	}
	if strings.HasSuffix(html, "</div>") {
		return true
	}
	if strings.HasSuffix(html, ">") {
		if lt := strings.LastIndexByte(html, '<'); lt >= 0 {
			lastTag := html[lt:]
			if strings.HasPrefix(lastTag, "<div") && !strings.HasPrefix(lastTag, "</div") {
				return true
			}
			if strings.HasPrefix(lastTag, `<a class="midashi_anchor"`) {
				return true
			}
		}
	}
	if strings.HasSuffix(html, `">`) {
		if strings.Contains(html, "<h3") || strings.Contains(html, "<h4") || strings.Contains(html, "<h5") {
			return true
		}
	}
	if strings.HasPrefix(html, "<") && strings.HasSuffix(html, ">") && len(html) > 2 {
		if strings.HasSuffix(html, " />") || strings.HasSuffix(html, "/>") {
			return false
		}
		inner := html[1 : len(html)-1]
		if !strings.Contains(inner, ">") {
			return true
		}
	}
	return false
}

// autoLink wraps label（http://...） runs in the colophon sections with
// anchor tags. The label reaches back to the nearest separator; the rest of
// the line is linked recursively.
func autoLink(text string) string {
	paren := strings.Index(text, "（http://")
	if paren < 0 {
		paren = strings.Index(text, "（https://")
	}
	if paren < 0 {
		return text
	}
	closeOff := strings.Index(text[paren:], "）")
	if closeOff < 0 {
		return text
	}
	closePos := paren + closeOff
	url := text[paren+len("（") : closePos]

	labelStart := findLabelStart(text[:paren])
	beforeLabel := text[:labelStart]
	label := text[labelStart:paren]
	suffix := text[closePos+len("）"):]

	return beforeLabel + `<a href="` + url + `">` + label + "（" + url + "）</a>" + autoLink(suffix)
}

func findLabelStart(text string) int {
	for i := len(text); i > 0; {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		i -= size
		switch r {
		case '、', '。', '！', '？', '　', ' ', '「', '『', '（', '\n':
			return i + size
		}
	}
	return 0
}
