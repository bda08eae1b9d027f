package html

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/Aozora/core/ast"
	"github.com/FocuswithJustin/Aozora/core/encoding"
	"github.com/FocuswithJustin/Aozora/core/gaiji"
)

// unconvertedGaiji records a gaiji rendered as a note, for the
// notation-notes table at the end of the document.
type unconvertedGaiji struct {
	description string
	unicode     string
}

// nodeRenderer turns node lists into HTML while accumulating the facts the
// notation-notes section reports: whether notes, glyph images, accent
// images, or JIS X 0213 characters appeared.
type nodeRenderer struct {
	opts *Options

	hasNotes       bool
	hasGaijiImages bool
	hasAccent      bool
	hasJISX0213    bool
	unconverted    []unconvertedGaiji
}

func newNodeRenderer(opts *Options) *nodeRenderer {
	return &nodeRenderer{opts: opts}
}

func (r *nodeRenderer) renderNodes(nodes []ast.Node, blocks *blockManager) string {
	var out strings.Builder
	for _, n := range nodes {
		out.WriteString(r.renderNode(n, blocks))
	}
	return out.String()
}

func (r *nodeRenderer) renderNode(n ast.Node, blocks *blockManager) string {
	switch n.Kind {
	case ast.KindText:
		return encoding.EscapeHTML(n.Text)

	case ast.KindRuby:
		return r.renderRuby(n, blocks)

	case ast.KindStyle:
		inner := r.renderNodes(n.Children, blocks)
		tag := styleTag(n.Style)
		return "<" + tag + ` class="` + styleClass(n.Style) + `">` + inner + "</" + tag + ">"

	case ast.KindMidashi:
		inner := r.renderNodes(n.Children, blocks)
		tag := midashiTag(n.Level)
		class := midashiClass(n.Level, n.MidashiStyle)
		id := blocks.nextMidashiID(n.Level)
		return "<" + tag + ` class="` + class + `"><a class="midashi_anchor" id="midashi` +
			strconv.Itoa(id) + `">` + inner + "</a></" + tag + ">"

	case ast.KindGaiji:
		return r.renderGaiji(n.Description, n.Unicode, n.JISCode)

	case ast.KindAccent:
		r.hasAccent = true
		if r.opts.UseJISX0213 || r.opts.UseUnicode {
			return charRefs(n.Unicode)
		}
		r.hasGaijiImages = true
		return r.gaijiImage(n.JISCode, n.Name)

	case ast.KindImage:
		return r.renderImage(n)

	case ast.KindTcy:
		return `<span dir="ltr">` + r.renderNodes(n.Children, blocks) + "</span>"

	case ast.KindKeigakomi:
		return `<span class="keigakomi">` + r.renderNodes(n.Children, blocks) + "</span>"

	case ast.KindYokogumi:
		return `<span class="yokogumi">` + r.renderNodes(n.Children, blocks) + "</span>"

	case ast.KindCaption:
		return `<span class="caption">` + r.renderNodes(n.Children, blocks) + "</span>"

	case ast.KindWarigaki:
		upper := r.renderNodes(n.Upper, blocks)
		lower := r.renderNodes(n.Lower, blocks)
		return `<span class="warichu"><span class="warichu_upper">` + upper +
			`</span><span class="warichu_lower">` + lower + "</span></span>"

	case ast.KindFontSize:
		return r.renderFontSize(n, blocks)

	case ast.KindKaeriten:
		return `<sub class="kaeriten">` + encoding.EscapeHTML(n.Text) + "</sub>"

	case ast.KindOkurigana:
		return `<sup class="okurigana">` + encoding.EscapeHTML(n.Text) + "</sup>"

	case ast.KindBlockStart:
		var out strings.Builder
		for _, c := range blocks.closeRelatedBlocks(n.Block) {
			out.WriteString(blocks.endTag(c.blockType, c.params))
		}
		blocks.push(n.Block, n.Params)
		// Hanging indents wrap each line separately, so the region itself
		// emits no tag.
		if n.Block != ast.BlockBurasage {
			out.WriteString(blocks.startTag(n.Block, n.Params))
		}
		return out.String()

	case ast.KindBlockEnd:
		ctx, ok := blocks.findAndClose(n.Block)
		if !ok {
			return ""
		}
		switch ctx.blockType {
		case ast.BlockBurasage:
			return ""
		case ast.BlockWarigaki, ast.BlockStyle:
			// The closing directive knows whether the text supplies its own
			// paren, and which decoration is ending.
			return blocks.endTag(ctx.blockType, n.Params)
		}
		return blocks.endTag(ctx.blockType, ctx.params)

	case ast.KindNote:
		r.hasNotes = true
		return `<span class="notes">［＃` + encoding.EscapeHTML(n.Text) + `］</span>`

	case ast.KindAnnotationEnd:
		r.hasNotes = true
		content := r.renderNodes(n.Children, blocks)
		return `<span class="notes">［＃` + encoding.EscapeHTML(n.Prefix) + content +
			encoding.EscapeHTML(n.Suffix) + `］</span>`

	case ast.KindUnresolvedReference:
		return `<span class="notes">［＃「` + encoding.EscapeHTML(n.Target) + `」` +
			encoding.EscapeHTML(n.Connector) + encoding.EscapeHTML(n.Spec) + `］</span>`
	}
	return ""
}

func (r *nodeRenderer) renderRuby(n ast.Node, blocks *blockManager) string {
	base := r.renderNodes(n.Children, blocks)
	ruby := r.renderNodes(n.Ruby, blocks)
	// Side-note ruby joins its repeats with U+00A0; entity form keeps the
	// Shift_JIS output clean.
	ruby = strings.ReplaceAll(ruby, " ", "&nbsp;")

	if n.Direction == ast.RubyLeft {
		return `<ruby class="leftrb"><rb>` + base + `</rb><rp>（</rp><rt>` + ruby +
			`</rt><rp>）</rp></ruby>`
	}
	return "<ruby><rb>" + base + "</rb><rp>（</rp><rt>" + ruby + "</rt><rp>）</rp></ruby>"
}

func (r *nodeRenderer) renderFontSize(n ast.Node, blocks *blockManager) string {
	inner := r.renderNodes(n.Children, blocks)
	level := n.SizeLevel
	if level < 1 {
		level = 1
	}
	var class, size string
	if n.SizeType == ast.FontSho {
		class = "sho" + strconv.Itoa(level)
		size = fontShoSize(level)
	} else {
		class = "dai" + strconv.Itoa(level)
		size = fontDaiSize(level)
	}
	return `<span class="` + class + `" style="font-size: ` + size + `;">` + inner + "</span>"
}

// renderGaiji picks the gaiji's rendering: a character reference when the
// options allow it, a glyph image when a JIS code locates one, and a visible
// note otherwise.
func (r *nodeRenderer) renderGaiji(description, unicode, jisCode string) string {
	switch {
	case unicode != "" && jisCode != "":
		r.hasJISX0213 = true
		if r.opts.UseJISX0213 || r.opts.UseUnicode {
			return charRefs(unicode)
		}
		r.hasGaijiImages = true
		return r.gaijiImage(jisCode, description)

	case unicode != "":
		if r.opts.UseUnicode {
			return charRefs(unicode)
		}
		// No JIS code means no glyph image; fall back to a note.
		return r.gaijiNote(description, unicode)

	case jisCode != "":
		r.hasGaijiImages = true
		return r.gaijiImage(jisCode, description)
	}

	// The node carries no conversion. Parse the description here so callers
	// can hand the renderer raw gaiji nodes.
	switch res := gaiji.Parse(description); res.Kind {
	case gaiji.KindUnicode:
		if r.opts.UseUnicode {
			return charRefs(res.Unicode)
		}
		return r.gaijiNote(description, res.Unicode)
	case gaiji.KindJISConverted:
		r.hasJISX0213 = true
		if r.opts.UseJISX0213 || r.opts.UseUnicode {
			return charRefs(res.Unicode)
		}
		r.hasGaijiImages = true
		return r.gaijiImage(res.JISCode, description)
	case gaiji.KindJISImage:
		r.hasGaijiImages = true
		return r.gaijiImage(res.JISCode, description)
	}
	return r.gaijiNote(description, "")
}

func (r *nodeRenderer) gaijiImage(jisCode, alt string) string {
	folder, file := jisCodeToPath(jisCode)
	return `<img src="` + r.opts.GaijiDir + folder + "/" + file + `.png" alt="※(` +
		encoding.EscapeHTML(alt) + `)" class="gaiji" />`
}

func (r *nodeRenderer) gaijiNote(description, unicode string) string {
	r.hasNotes = true
	r.recordUnconverted(description, unicode)
	return `※<span class="notes">［＃` + encoding.EscapeHTML(description) + `］</span>`
}

func (r *nodeRenderer) recordUnconverted(description, unicode string) {
	for _, g := range r.unconverted {
		if g.description == description {
			return
		}
	}
	r.unconverted = append(r.unconverted, unconvertedGaiji{
		description: description,
		unicode:     unicode,
	})
}

func (r *nodeRenderer) renderImage(n ast.Node) string {
	class := n.CSSClass
	if class == "" {
		class = "illustration"
	}
	var attrs strings.Builder
	attrs.WriteString(`class="` + class + `"`)
	if n.Width != nil {
		attrs.WriteString(` width="` + strconv.Itoa(*n.Width) + `"`)
	}
	if n.Height != nil {
		attrs.WriteString(` height="` + strconv.Itoa(*n.Height) + `"`)
	}
	attrs.WriteString(` src="` + n.Filename + `" alt="` + encoding.EscapeHTML(n.Alt) + `"`)
	return "<img " + attrs.String() + " />"
}

// charRefs writes each rune as a decimal character reference.
func charRefs(s string) string {
	var out strings.Builder
	for _, r := range s {
		out.WriteString("&#" + strconv.Itoa(int(r)) + ";")
	}
	return out.String()
}
