package ast

import "strings"

// MidashiLevel is the heading level. 大見出し maps to h3, 中見出し to h4,
// and 小見出し to h5.
type MidashiLevel string

// Midashi level constants.
const (
	MidashiO    MidashiLevel = "o"
	MidashiNaka MidashiLevel = "naka"
	MidashiKo   MidashiLevel = "ko"
)

// MidashiLevelFromCommand maps a command body containing 大見出し, 中見出し,
// or 小見出し to its level. It returns false for bodies naming no heading.
func MidashiLevelFromCommand(command string) (MidashiLevel, bool) {
	switch {
	case strings.Contains(command, "大見出し"):
		return MidashiO, true
	case strings.Contains(command, "中見出し"):
		return MidashiNaka, true
	case strings.Contains(command, "小見出し"):
		return MidashiKo, true
	}
	return "", false
}

// MidashiStyle is the heading placement.
type MidashiStyle string

// Midashi style constants.
const (
	// MidashiNormal is a heading on its own line.
	MidashiNormal MidashiStyle = "normal"
	// MidashiDogyo is a heading sharing its line with body text.
	MidashiDogyo MidashiStyle = "dogyo"
	// MidashiMado is a window heading set into the body.
	MidashiMado MidashiStyle = "mado"
)

// MidashiStyleFromCommand maps a command body to its heading placement.
// Bodies without 同行 or 窓 are normal headings.
func MidashiStyleFromCommand(command string) MidashiStyle {
	switch {
	case strings.Contains(command, "同行"):
		return MidashiDogyo
	case strings.Contains(command, "窓"):
		return MidashiMado
	}
	return MidashiNormal
}

// MidashiCommandName reconstructs the command name for a heading level and
// placement, such as 同行中見出し. References to headings carry this name as
// their spec.
func MidashiCommandName(level MidashiLevel, style MidashiStyle) string {
	var name string
	switch level {
	case MidashiNaka:
		name = "中見出し"
	case MidashiKo:
		name = "小見出し"
	default:
		name = "大見出し"
	}
	switch style {
	case MidashiDogyo:
		return "同行" + name
	case MidashiMado:
		return "窓" + name
	}
	return name
}
