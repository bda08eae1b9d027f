package html

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/Aozora/core/document"
	"github.com/FocuswithJustin/Aozora/core/parser"
	"github.com/FocuswithJustin/Aozora/core/token"
)

// Renderer converts Aozora Bunko text to XHTML.
type Renderer struct {
	opts Options
}

// NewRenderer returns a renderer using the given options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Convert renders a whole Aozora Bunko file into an XHTML document.
func Convert(input string, opts Options) string {
	return NewRenderer(opts).Render(input)
}

// ConvertLine renders one line of markup with no surrounding document.
func ConvertLine(line string, opts Options) string {
	return NewRenderer(opts).RenderLine(line)
}

// Render converts a whole file: header metadata, the body with block
// nesting tracked across lines, afterword and colophon sections with
// auto-linked URLs, notation notes, and the library card block.
func (r *Renderer) Render(input string) string {
	var out strings.Builder
	lines := document.SplitLines(input)
	info := document.ExtractHeaderInfo(lines)

	doc := documentWriter{opts: &r.opts}
	nodes := newNodeRenderer(&r.opts)
	blocks := &blockManager{}

	doc.writeHead(&out, info)
	doc.writeMetadata(&out, info)
	doc.writeMainTextStart(&out)

	for _, line := range document.ExtractBodyLines(lines) {
		lineHTML := r.renderLineWithContext(line, nodes, blocks)

		// Inside a hanging indent each inline line becomes its own wrapped
		// div.
		if wrap, indent, ok := blocks.findBurasage(); ok && classifyLine(lineHTML) == lineInline {
			out.WriteString(`<div class="burasage" style="margin-left: ` +
				strconv.Itoa(wrap) + `em; text-indent: ` + strconv.Itoa(indent) +
				`em;">` + lineHTML + "</div>\r\n")
			continue
		}

		// A line whose markup produced nothing visible, such as a lone
		// unmatched closing directive, leaves no trace in the output.
		if lineHTML == "" && line != "" {
			continue
		}

		out.WriteString(lineHTML)

		for _, c := range blocks.closeInlineBlocks() {
			out.WriteString(blocks.endTag(c.blockType, c.params))
		}

		needsBR := true
		switch {
		case lineHTML == "":
		case strings.HasSuffix(out.String(), "</div>"):
			needsBR = false
		default:
			needsBR = !isBlockOnlyLine(lineHTML)
		}
		if needsBR {
			out.WriteString("<br />")
		}
		out.WriteString("\r\n")
	}

	for {
		c, ok := blocks.pop()
		if !ok {
			break
		}
		out.WriteString(blocks.endTag(c.blockType, c.params))
	}
	doc.writeMainTextEnd(&out)

	if after := document.ExtractAfterTextLines(lines); len(after) > 0 {
		doc.writeAfterTextHeader(&out)
		for _, line := range after {
			out.WriteString(autoLink(r.renderLineWithContext(line, nodes, blocks)))
			out.WriteString("<br />\r\n")
		}
		doc.writeAfterTextFooter(&out)
	}

	if biblio := document.ExtractBibliographicalLines(lines); len(biblio) > 0 {
		doc.writeBibliographicalHeader(&out)
		for _, line := range biblio {
			out.WriteString(autoLink(r.renderLineWithContext(line, nodes, blocks)))
			out.WriteString("<br />\r\n")
		}
		doc.writeBibliographicalFooter(&out)
	}

	doc.writeNotationNotes(&out, nodes)
	doc.writeCardSection(&out)
	doc.writeFoot(&out)

	return out.String()
}

// RenderLine converts one line with fresh renderer state.
func (r *Renderer) RenderLine(line string) string {
	return r.renderLineWithContext(line, newNodeRenderer(&r.opts), &blockManager{})
}

func (r *Renderer) renderLineWithContext(line string, nodes *nodeRenderer, blocks *blockManager) string {
	parsed := parser.Parse(token.Tokenize(line))

	before := blocks.stackLen()
	out := nodes.renderNodes(parsed, blocks)

	// A bare indent directive at the start of a line scopes to that line
	// alone; ここから forms stay open until closed.
	lineScope := strings.HasPrefix(line, "［＃") &&
		!strings.Contains(line, "ここから") &&
		(strings.Contains(line, "字下げ") ||
			strings.Contains(line, "地付き") ||
			strings.Contains(line, "地から"))
	if lineScope {
		for _, c := range blocks.popToLength(before) {
			out += blocks.endTag(c.blockType, c.params)
		}
	}
	return out
}
