package html

import (
	"strings"

	"github.com/FocuswithJustin/Aozora/core/document"
	"github.com/FocuswithJustin/Aozora/core/encoding"
)

// aozoraBunko is the publisher credited in the Dublin Core metadata.
const aozoraBunko = "青空文庫"

// documentWriter emits the fixed document scaffolding around the rendered
// text. Every string here is part of the published page format, CRLF line
// endings included; do not reflow them.
type documentWriter struct {
	opts *Options
}

func (d documentWriter) writeHead(w *strings.Builder, info document.HeaderInfo) {
	w.WriteString("<?xml version=\"1.0\" encoding=\"Shift_JIS\"?>\r\n")
	w.WriteString("<!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.1//EN\"\r\n")
	w.WriteString("    \"http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd\">\r\n")
	w.WriteString("<html xmlns=\"http://www.w3.org/1999/xhtml\" xml:lang=\"ja\" >\r\n")
	w.WriteString("<head>\r\n")
	w.WriteString("\t<meta http-equiv=\"Content-Type\" content=\"text/html;charset=Shift_JIS\" />\r\n")
	w.WriteString("\t<meta http-equiv=\"content-style-type\" content=\"text/css\" />\r\n")

	for _, css := range d.opts.CSSFiles {
		w.WriteString("\t<link rel=\"stylesheet\" type=\"text/css\" href=\"" + css + "\" />\r\n")
	}

	title := d.opts.Title
	if title != "" {
		title = encoding.EscapeHTML(title)
	} else {
		title = info.HTMLTitle()
	}
	w.WriteString("\t<title>" + title + "</title>\r\n")

	w.WriteString("\t<script type=\"text/javascript\" src=\"../../jquery-1.4.2.min.js\"></script>\r\n")
	w.WriteString("  <link rel=\"Schema.DC\" href=\"http://purl.org/dc/elements/1.1/\" />\r\n")
	w.WriteString("\t<meta name=\"DC.Title\" content=\"" + encoding.EscapeHTML(info.Title) + "\" />\r\n")
	w.WriteString("\t<meta name=\"DC.Creator\" content=\"" + encoding.EscapeHTML(info.Author) + "\" />\r\n")
	w.WriteString("\t<meta name=\"DC.Publisher\" content=\"" + aozoraBunko + "\" />\r\n")
	w.WriteString("</head>\r\n")
	w.WriteString("<body>\r\n")
}

func (d documentWriter) writeMetadata(w *strings.Builder, info document.HeaderInfo) {
	w.WriteString("<div class=\"metadata\">\r\n")
	if info.Title != "" {
		w.WriteString("<h1 class=\"title\">" + encoding.EscapeHTML(info.Title) + "</h1>\r\n")
	}
	heads := []struct {
		class, text string
	}{
		{"original_title", info.OriginalTitle},
		{"subtitle", info.Subtitle},
		{"original_subtitle", info.OriginalSubtitle},
		{"author", info.Author},
		{"editor", info.Editor},
		{"translator", info.Translator},
		{"editor-translator", info.Henyaku},
	}
	for _, h := range heads {
		if h.text != "" {
			w.WriteString("<h2 class=\"" + h.class + "\">" + encoding.EscapeHTML(h.text) + "</h2>\r\n")
		}
	}
	w.WriteString("<br />\r\n<br />\r\n</div>\r\n")
}

func (d documentWriter) writeMainTextStart(w *strings.Builder) {
	w.WriteString("<div id=\"contents\" style=\"display:none\"></div><div class=\"main_text\">")
}

func (d documentWriter) writeMainTextEnd(w *strings.Builder) {
	w.WriteString("</div>\r\n")
}

func (d documentWriter) writeAfterTextHeader(w *strings.Builder) {
	w.WriteString("<div class=\"after_text\">\r\n<hr />\r\n<br />\r\n")
}

func (d documentWriter) writeAfterTextFooter(w *strings.Builder) {
	w.WriteString("<br />\r\n<br />\r\n</div>\r\n")
}

func (d documentWriter) writeBibliographicalHeader(w *strings.Builder) {
	w.WriteString("<div class=\"bibliographical_information\">\r\n<hr />\r\n<br />\r\n")
}

func (d documentWriter) writeBibliographicalFooter(w *strings.Builder) {
	w.WriteString("<br />\r\n<br />\r\n</div>\r\n")
}

func (d documentWriter) writeNotationNotes(w *strings.Builder, r *nodeRenderer) {
	w.WriteString("<div class=\"notation_notes\">\r\n")
	w.WriteString("<hr />\r\n")
	w.WriteString("<br />\r\n")
	w.WriteString("●表記について<br />\r\n")
	w.WriteString("<ul>\r\n")
	w.WriteString("\t<li>このファイルは W3C 勧告 XHTML1.1 にそった形式で作成されています。</li>\r\n")

	if r.hasNotes {
		w.WriteString("\t<li>［＃…］は、入力者による注を表す記号です。</li>\r\n")
	}
	if r.hasJISX0213 && !d.opts.UseJISX0213 {
		w.WriteString("\t<li>「くの字点」をのぞくJIS X 0213にある文字は、画像化して埋め込みました。</li>\r\n")
	}
	if r.hasAccent && !d.opts.UseJISX0213 {
		w.WriteString("\t<li>アクセント符号付きラテン文字は、画像化して埋め込みました。</li>\r\n")
	}
	if len(r.unconverted) > 0 {
		w.WriteString("\t<li>この作品には、JIS X 0213にない、以下の文字が用いられています。（数字は、底本中の出現「ページ-行」数。）これらの文字は本文内では「※［＃…］」の形で示しました。</li>\r\n")
	}
	w.WriteString("</ul>\r\n")

	if len(r.unconverted) > 0 {
		w.WriteString("<br />\r\n")
		w.WriteString("\t\t<table class=\"gaiji_list\">\r\n")
		for _, g := range r.unconverted {
			name := encoding.EscapeHTML(g.description)
			w.WriteString("\t\t\t<tr>\r\n")
			w.WriteString("\t\t\t\t<td>\r\n\t\t\t\t" + name + "\r\n\t\t\t\t</td>\r\n")
			w.WriteString("\t\t\t\t<td>&nbsp;&nbsp;</td>\r\n")
			w.WriteString("\t\t\t\t<td>\r\n\t\t\t\t</td>\r\n")
			w.WriteString("\t\t\t\t<!--\r\n\t\t\t\t<td>\r\n\t\t\t\t　　<img src=\"../../../gaiji/others/xxxx.png\" alt=\"" + name + "\" width=32 height=32 />\r\n\t\t\t\t</td>\r\n\t\t\t\t-->\r\n")
			w.WriteString("\t\t\t</tr>\r\n")
		}
		w.WriteString("\t\t</table>\r\n")
	}
	w.WriteString("</div>\r\n")
}

func (d documentWriter) writeCardSection(w *strings.Builder) {
	w.WriteString("<div id=\"card\">\r\n")
	w.WriteString("<hr />\r\n")
	w.WriteString("<br />\r\n")
	w.WriteString("<a href=\"JavaScript:goLibCard();\" id=\"goAZLibCard\">●図書カード</a>")
	w.WriteString("<script type=\"text/javascript\" src=\"../../contents.js\"></script>\r\n")
	w.WriteString("<script type=\"text/javascript\" src=\"../../golibcard.js\"></script>\r\n")
	w.WriteString("</div>")
}

func (d documentWriter) writeFoot(w *strings.Builder) {
	w.WriteString("</body>\r\n</html>\r\n")
}
