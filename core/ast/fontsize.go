package ast

import (
	"strconv"
	"strings"
)

// FontSizeType selects between enlarged and reduced text.
type FontSizeType string

// Font size type constants.
const (
	// FontDai is enlarged text (大きな文字).
	FontDai FontSizeType = "dai"
	// FontSho is reduced text (小さな文字).
	FontSho FontSizeType = "sho"
)

// FontSizeFromCommand parses a size command body such as ２段階大きな文字,
// returning the direction and step count. Bodies without a step count are
// one step. It returns false for bodies naming no size change.
func FontSizeFromCommand(command string) (FontSizeType, int, bool) {
	var typ FontSizeType
	switch {
	case strings.Contains(command, "大きな文字"):
		typ = FontDai
	case strings.Contains(command, "小さな文字"):
		typ = FontSho
	default:
		return "", 0, false
	}
	level, ok := ExtractNumber(command)
	if !ok {
		level = 1
	}
	return typ, level, true
}

// FontSizeCommandName reconstructs the command name for a size change, such
// as 2段階大きな文字. References to size changes carry this name as their
// spec.
func FontSizeCommandName(typ FontSizeType, level int) string {
	base := "大きな文字"
	if typ == FontSho {
		base = "小さな文字"
	}
	return strconv.Itoa(level) + "段階" + base
}

// ExtractNumber collects every ASCII and fullwidth digit in s, in order, and
// parses the run as one number. 字下げ widths appear both as 2字下げ and
// ２字下げ in circulating texts.
func ExtractNumber(s string) (int, bool) {
	var digits strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r >= '０' && r <= '９':
			digits.WriteRune('0' + (r - '０'))
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
