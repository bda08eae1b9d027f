// Package html renders resolved Aozora Bunko node lists into XHTML 1.1
// documents in the layout the library's own converter produces: a metadata
// section, the main text with block nesting managed across lines, the
// afterword and colophon sections, notation notes, and the library card
// block.
package html

// Options control HTML output.
type Options struct {
	// GaijiDir is the path prefix for gaiji glyph images, ending in a
	// slash.
	GaijiDir string `json:"gaiji_dir"`

	// CSSFiles are stylesheet paths linked from the document head.
	CSSFiles []string `json:"css_files"`

	// UseJISX0213 renders JIS X 0213 gaiji as numeric character references
	// instead of glyph images.
	UseJISX0213 bool `json:"use_jisx0213"`

	// UseUnicode renders Unicode-only gaiji as numeric character
	// references instead of notes.
	UseUnicode bool `json:"use_unicode"`

	// Title overrides the document title derived from the header lines.
	Title string `json:"title,omitempty"`
}

// DefaultOptions returns the paths the Aozora Bunko site layout expects:
// conversions live three directories below the shared gaiji and script
// assets.
func DefaultOptions() Options {
	return Options{
		GaijiDir: "../../../gaiji/",
		CSSFiles: []string{"../../aozora.css"},
	}
}

// WithGaijiDir returns a copy of o with the gaiji image prefix replaced.
func (o Options) WithGaijiDir(dir string) Options {
	o.GaijiDir = dir
	return o
}

// WithCSSFiles returns a copy of o with the stylesheet list replaced.
func (o Options) WithCSSFiles(files []string) Options {
	o.CSSFiles = files
	return o
}

// WithJISX0213 returns a copy of o with JIS X 0213 character references
// enabled or disabled.
func (o Options) WithJISX0213(enabled bool) Options {
	o.UseJISX0213 = enabled
	return o
}

// WithUnicode returns a copy of o with Unicode character references enabled
// or disabled.
func (o Options) WithUnicode(enabled bool) Options {
	o.UseUnicode = enabled
	return o
}

// WithTitle returns a copy of o with the title override set.
func (o Options) WithTitle(title string) Options {
	o.Title = title
	return o
}
