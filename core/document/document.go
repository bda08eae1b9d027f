// Package document splits an Aozora Bunko text file into its conventional
// sections: the header naming the work and its people, an optional 記号
// explanation block fenced by dashed lines, the body, an afterword, and the
// 底本 bibliographical colophon.
package document

import "strings"

// HeaderInfo is the work metadata read from the header lines.
type HeaderInfo struct {
	// Title is the work title, always the first header line.
	Title string `json:"title"`

	// Subtitle and OriginalSubtitle are secondary titles.
	Subtitle         string `json:"subtitle,omitempty"`
	OriginalSubtitle string `json:"original_subtitle,omitempty"`

	// OriginalTitle is the title in the source language of a translation.
	OriginalTitle string `json:"original_title,omitempty"`

	// Author, Translator, Editor, and Henyaku name the people involved.
	// Henyaku is a combined editor-translator credit.
	Author     string `json:"author,omitempty"`
	Translator string `json:"translator,omitempty"`
	Editor     string `json:"editor,omitempty"`
	Henyaku    string `json:"henyaku,omitempty"`
}

// HTMLTitle builds the <title> text: people first, then titles, joined by
// spaces.
func (h HeaderInfo) HTMLTitle() string {
	parts := []string{
		h.Author, h.Translator, h.Editor, h.Henyaku,
		h.Title, h.OriginalTitle, h.Subtitle, h.OriginalSubtitle,
	}
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// personRole classifies a header line naming a person by its suffix.
type personRole int

const (
	roleAuthor personRole = iota
	roleTranslator
	roleEditor
	roleHenyaku
)

// detectRole reads the credit suffix of a person line. 編訳 must be checked
// before 訳 catches it.
func detectRole(line string) personRole {
	switch {
	case strings.HasSuffix(line, "編訳"):
		return roleHenyaku
	case strings.HasSuffix(line, "校訂"), strings.HasSuffix(line, "編"), strings.HasSuffix(line, "編集"):
		return roleEditor
	case strings.HasSuffix(line, "訳"):
		return roleTranslator
	}
	return roleAuthor
}

func (h *HeaderInfo) assignPerson(line string) {
	switch detectRole(line) {
	case roleTranslator:
		h.Translator = line
	case roleEditor:
		h.Editor = line
	case roleHenyaku:
		h.Henyaku = line
	default:
		h.Author = line
	}
}

// isOriginalTitle reports whether a line looks like a source-language title:
// every rune is ASCII, CJK punctuation, a fullwidth form, Greek, or
// Cyrillic.
func isOriginalTitle(line string) bool {
	for _, r := range line {
		switch {
		case r < 0x80:
		case r >= 0x3000 && r <= 0x303F:
		case r >= 0xFF00 && r <= 0xFFEF:
		case r >= 0x0370 && r <= 0x03FF:
		case r >= 0x0400 && r <= 0x04FF:
		default:
			return false
		}
	}
	return true
}

// ExtractHeaderInfo reads the work metadata from the lines before the first
// blank line. Which line means what depends on how many there are; the
// patterns follow the Aozora Bunko header conventions.
func ExtractHeaderInfo(lines []string) HeaderInfo {
	var header []string
	for _, line := range lines {
		if line == "" {
			break
		}
		header = append(header, line)
	}

	var h HeaderInfo
	if len(header) == 0 {
		return h
	}
	h.Title = header[0]

	switch len(header) {
	case 1:
	case 2:
		h.assignPerson(header[1])
	case 3:
		switch {
		case isOriginalTitle(header[1]):
			h.OriginalTitle = header[1]
			h.assignPerson(header[2])
		case detectRole(header[2]) == roleAuthor:
			h.Subtitle = header[1]
			h.Author = header[2]
		default:
			h.Author = header[1]
			h.assignPerson(header[2])
		}
	case 4:
		if isOriginalTitle(header[1]) {
			h.OriginalTitle = header[1]
		} else {
			h.Subtitle = header[1]
		}
		if detectRole(header[3]) == roleAuthor {
			h.Subtitle = header[2]
		} else {
			h.Author = header[2]
		}
		h.assignPerson(header[3])
	case 5:
		h.OriginalTitle = header[1]
		h.Subtitle = header[2]
		h.Author = header[3]
		h.assignPerson(header[4])
	default:
		h.OriginalTitle = header[1]
		h.Subtitle = header[2]
		h.OriginalSubtitle = header[3]
		h.Author = header[4]
		h.assignPerson(header[5])
	}
	return h
}

// bodyEndMark explicitly ends the body ahead of the colophon.
const bodyEndMark = "［＃本文終わり］"

// biblioPrefix starts the bibliographical colophon.
const biblioPrefix = "底本："

func isFence(line string) bool {
	return strings.HasPrefix(line, "----")
}

// ExtractBodyLines returns the body: everything after the header and the
// optional fenced 記号 block, up to the colophon or the explicit end mark.
func ExtractBodyLines(lines []string) []string {
	const (
		stateHeader = iota
		stateAfterHeader
		stateChuuki
		stateBody
	)

	var body []string
	state := stateHeader
	for _, line := range lines {
		switch state {
		case stateHeader:
			if line == "" {
				state = stateAfterHeader
			}
		case stateAfterHeader:
			if strings.HasPrefix(line, biblioPrefix) {
				return body
			}
			switch {
			case isFence(line):
				state = stateChuuki
			case line != "":
				body = append(body, line)
				state = stateBody
			}
		case stateChuuki:
			if isFence(line) {
				state = stateBody
			}
		case stateBody:
			if strings.HasPrefix(line, biblioPrefix) || line == bodyEndMark {
				return body
			}
			body = append(body, line)
		}
	}
	return body
}

// ExtractAfterTextLines returns the lines between the explicit body end mark
// and the colophon; empty when the text has no such section.
func ExtractAfterTextLines(lines []string) []string {
	var after []string
	seen := false
	for _, line := range lines {
		if !seen {
			if line == bodyEndMark {
				seen = true
			}
			continue
		}
		if strings.HasPrefix(line, biblioPrefix) {
			break
		}
		after = append(after, line)
	}
	return after
}

// ExtractBibliographicalLines returns the colophon: the 底本： line and
// everything after it.
func ExtractBibliographicalLines(lines []string) []string {
	for i, line := range lines {
		if strings.HasPrefix(line, biblioPrefix) {
			out := make([]string, len(lines)-i)
			copy(out, lines[i:])
			return out
		}
	}
	return nil
}

// SplitLines splits text into lines, accepting both LF and CRLF endings. A
// trailing newline yields no empty final line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
