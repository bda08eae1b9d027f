// Package inspect examines converted XHTML documents.
// It parses the output of the html command back into a queryable tree,
// produces a structure report, and evaluates ad-hoc XPath expressions.
package inspect

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/Aozora/core/encoding"
	"github.com/FocuswithJustin/Aozora/core/errors"
)

// CountedElements lists the elements the structure report tallies,
// in display order.
var CountedElements = []string{
	"h1", "h2", "h3", "h4", "h5",
	"div", "br", "a",
	"ruby", "rb", "rp", "rt",
	"img", "em", "span", "sub", "sup",
}

// Report summarizes the structure of a converted document.
type Report struct {
	// Title is the text of the document's title element.
	Title string `json:"title"`

	// Counts maps element names to occurrence counts. Elements that do
	// not occur are omitted.
	Counts map[string]int `json:"counts"`
}

// Converted documents declare Shift_JIS even when the bytes are UTF-8,
// and they use named entities the XML decoder does not know natively.
var parserOptions = xmlquery.ParserOptions{
	Decoder: &xmlquery.DecoderOptions{
		Strict: false,
		Entity: xml.HTMLEntity,
	},
}

// ParseFile reads and parses a converted document from disk.
func ParseFile(path string) (*xmlquery.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return Parse(path, data)
}

// Parse parses a converted document into a queryable tree. The raw
// bytes are transcoded to UTF-8 first and the XML declaration is
// rewritten to match, so both Shift_JIS and UTF-8 files parse the
// same way.
func Parse(path string, data []byte) (*xmlquery.Node, error) {
	text := encoding.DecodeToUTF8(data)
	text = strings.Replace(text, `encoding="Shift_JIS"`, `encoding="UTF-8"`, 1)
	doc, err := xmlquery.ParseWithOptions(strings.NewReader(text), parserOptions)
	if err != nil {
		return nil, errors.NewParse("XHTML", path, err.Error())
	}
	return doc, nil
}

// Analyze produces the structure report for a parsed document.
func Analyze(doc *xmlquery.Node) Report {
	rep := Report{Counts: make(map[string]int, len(CountedElements))}
	if n := xmlquery.FindOne(doc, "//title"); n != nil {
		rep.Title = n.InnerText()
	}
	for _, name := range CountedElements {
		if c := len(xmlquery.Find(doc, "//"+name)); c > 0 {
			rep.Counts[name] = c
		}
	}
	return rep
}

// Query evaluates an XPath expression against a parsed document.
// Node-set results are serialized per node, with attribute and text
// nodes reduced to their string values. Scalar results (count(),
// string(), boolean tests) come back as a single formatted value.
func Query(doc *xmlquery.Node, expr string) ([]string, error) {
	sel, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.NewValidation("xpath", err.Error())
	}
	switch result := sel.Evaluate(xmlquery.CreateXPathNavigator(doc)).(type) {
	case *xpath.NodeIterator:
		var out []string
		for result.MoveNext() {
			nav, ok := result.Current().(*xmlquery.NodeNavigator)
			if !ok {
				continue
			}
			out = append(out, renderNode(nav.Current()))
		}
		return out, nil
	case float64:
		return []string{strconv.FormatFloat(result, 'g', -1, 64)}, nil
	case string:
		return []string{result}, nil
	case bool:
		return []string{strconv.FormatBool(result)}, nil
	default:
		return nil, errors.NewUnsupported("XPath result", fmt.Sprintf("%T", result))
	}
}

func renderNode(n *xmlquery.Node) string {
	switch n.Type {
	case xmlquery.AttributeNode, xmlquery.TextNode, xmlquery.CharDataNode:
		return n.InnerText()
	default:
		return n.OutputXML(true)
	}
}
