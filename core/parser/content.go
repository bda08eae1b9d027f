package parser

import (
	"strconv"
	"strings"
)

// kaeritenMarks are the characters allowed in a kanbun return mark.
const kaeritenMarks = "一二三四上中下天地人甲乙丙丁レ"

// parseKaeriten recognizes kanbun return marks such as レ and 一二. At most
// four marks appear together in practice; longer runs are left to the note
// fallback rather than guessed at.
func parseKaeriten(content string) (Command, bool) {
	runes := []rune(content)
	if len(runes) == 0 || len(runes) > 4 {
		return Command{}, false
	}
	for _, r := range runes {
		if !strings.ContainsRune(kaeritenMarks, r) {
			return Command{}, false
		}
	}
	return Command{Kind: CommandKaeriten, Text: content}, true
}

// parseOkurigana recognizes （...） okurigana attached to kanbun text.
func parseOkurigana(content string) (Command, bool) {
	if !strings.HasPrefix(content, "（") || !strings.HasSuffix(content, "）") {
		return Command{}, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(content, "（"), "）")
	n := len([]rune(inner))
	if n < 1 || n > 10 {
		return Command{}, false
	}
	return Command{Kind: CommandOkurigana, Text: inner}, true
}

// parseKuntenNote claims 訓点送り仮名 directives as notes before the image
// rule can look at them.
func parseKuntenNote(content string) (Command, bool) {
	if !strings.HasPrefix(content, "訓点送り仮名") {
		return Command{}, false
	}
	return Command{Kind: CommandNote, Text: content}, true
}

// parseImage recognizes illustration directives such as
// 挿絵（fig42175_01.png、横321×縦123）入る. A directive that ends in 入る but
// does not parse as an image falls through to later rules.
func parseImage(content string) (Command, bool) {
	if !strings.HasSuffix(content, "入る") {
		return Command{}, false
	}
	body := strings.TrimSpace(strings.TrimSuffix(content, "入る"))

	open := strings.LastIndex(body, "（")
	closeIdx := strings.LastIndex(body, "）")
	if open < 0 || closeIdx < open {
		return Command{}, false
	}
	info := body[open+len("（") : closeIdx]
	parts := strings.Split(info, "、")

	filename := parts[0]
	if !hasImageExt(filename) {
		return Command{}, false
	}

	cmd := Command{Kind: CommandImage, Filename: filename}
	if len(parts) > 1 {
		cmd.Width, cmd.Height = parseDimensions(parts[1])
	}
	cmd.Alt = imageAlt(body[:open])
	return cmd, true
}

func hasImageExt(filename string) bool {
	for _, ext := range []string{".png", ".jpg", ".gif"} {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// parseDimensions reads 横N×縦M pixel dimensions. Units or other trailing
// text after the height digits are tolerated.
func parseDimensions(s string) (*int, *int) {
	s = strings.TrimSpace(s)
	yoko := strings.Index(s, "横")
	times := strings.Index(s, "×")
	tate := strings.Index(s, "縦")
	if yoko < 0 || times < yoko || tate < times {
		return nil, nil
	}
	w, err := strconv.Atoi(s[yoko+len("横") : times])
	if err != nil {
		return nil, nil
	}
	h := strings.TrimRightFunc(s[tate+len("縦"):], func(r rune) bool {
		return r < '0' || r > '9'
	})
	hv, err := strconv.Atoi(h)
	if err != nil {
		return nil, nil
	}
	return &w, &hv
}

// imageAlt derives the alt text from what precedes the （filename...） info.
// Captioned figures keep the full phrase; a parenthesized label sheds its
// parentheses.
func imageAlt(before string) string {
	if strings.HasSuffix(before, "のキャプション付きの図") {
		return before
	}
	if strings.HasPrefix(before, "（") && strings.HasSuffix(before, "）") && len(before) > len("（）") {
		return strings.TrimSuffix(strings.TrimPrefix(before, "（"), "）")
	}
	return before
}
