// Command aozora is the CLI tool for converting Aozora Bunko formatted text.
// It provides commands for rendering XHTML, stripping markup, inspecting
// converted documents, keeping a catalog of works, and serving live previews.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/FocuswithJustin/Aozora/core/document"
	"github.com/FocuswithJustin/Aozora/core/encoding"
	apperrors "github.com/FocuswithJustin/Aozora/core/errors"
	"github.com/FocuswithJustin/Aozora/core/render/html"
	"github.com/FocuswithJustin/Aozora/core/render/text"
	"github.com/FocuswithJustin/Aozora/internal/catalog"
	"github.com/FocuswithJustin/Aozora/internal/input"
	"github.com/FocuswithJustin/Aozora/internal/inspect"
	"github.com/FocuswithJustin/Aozora/internal/logging"
	"github.com/FocuswithJustin/Aozora/internal/preview"
)

const version = "1.0.0"

// CLI defines the command-line interface for aozora.
var CLI struct {
	// Global flags
	LogLevel string `name:"log-level" default:"warn" help:"Log level (debug, info, warn, error)"`
	LogJSON  bool   `name:"log-json" help:"Emit logs as JSON"`

	HTML    HTMLCmd      `cmd:"" help:"Convert Aozora Bunko markup to XHTML"`
	Strip   StripCmd     `cmd:"" help:"Strip markup, leaving plain text"`
	Inspect InspectCmd   `cmd:"" help:"Report on the structure of a converted document"`
	Catalog CatalogGroup `cmd:"" help:"Track converted works in a local catalog"`
	Serve   ServeCmd     `cmd:"" help:"Serve a live preview that reloads on change"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// HTMLCmd converts Aozora Bunko markup to an XHTML document.
type HTMLCmd struct {
	Input       string `arg:"" optional:"" help:"Input file (standard input when omitted)" type:"path"`
	Output      string `short:"o" help:"Output file (standard output when omitted)" type:"path"`
	Zip         bool   `short:"z" help:"Treat the input as a ZIP archive and convert its first .txt entry"`
	GaijiDir    string `name:"gaiji-dir" default:"../../../gaiji/" help:"Directory gaiji image references point into"`
	CSSFiles    string `name:"css-files" default:"../../aozora.css" help:"Stylesheet paths for the document head (comma separated)"`
	UseJISX0213 bool   `name:"use-jisx0213" help:"Render JIS X 0213 gaiji as character references instead of images"`
	UseUnicode  bool   `name:"use-unicode" help:"Render Unicode gaiji as character references instead of notes"`
	Title       string `help:"Override the document title"`
	Encoding    string `enum:"shift_jis,utf-8" default:"shift_jis" help:"Output encoding"`
}

func (c *HTMLCmd) Run() error {
	data, err := input.Read(c.Input, c.Zip)
	if err != nil {
		return err
	}

	opts := html.Options{
		GaijiDir:    c.GaijiDir,
		CSSFiles:    splitCSSFiles(c.CSSFiles),
		UseJISX0213: c.UseJISX0213,
		UseUnicode:  c.UseUnicode,
		Title:       c.Title,
	}

	source := encoding.DecodeToUTF8(data)
	start := time.Now()
	page := html.Convert(source, opts)
	logging.Conversion(c.Input, "html", strings.Count(source, "\n"), time.Since(start))

	var out []byte
	if strings.ToLower(c.Encoding) == "shift_jis" {
		out = encoding.EncodeShiftJIS(page)
	} else {
		out = []byte(page)
	}
	return writeOutput(c.Output, out)
}

// StripCmd converts Aozora Bunko markup to plain text.
type StripCmd struct {
	Input  string `arg:"" optional:"" help:"Input file (standard input when omitted)" type:"path"`
	Output string `short:"o" help:"Output file (standard output when omitted)" type:"path"`
	Zip    bool   `short:"z" help:"Treat the input as a ZIP archive and convert its first .txt entry"`
}

func (c *StripCmd) Run() error {
	data, err := input.Read(c.Input, c.Zip)
	if err != nil {
		return err
	}

	start := time.Now()
	plain := text.Convert(data)
	logging.Conversion(c.Input, "text", strings.Count(plain, "\n"), time.Since(start))

	return writeOutput(c.Output, []byte(plain))
}

// InspectCmd reports on the structure of a converted document.
type InspectCmd struct {
	Path  string `arg:"" help:"Converted XHTML file" type:"existingfile"`
	XPath string `name:"xpath" help:"Evaluate an XPath expression instead of printing the summary"`
	JSON  bool   `help:"Output as JSON"`
}

func (c *InspectCmd) Run() error {
	doc, err := inspect.ParseFile(c.Path)
	if err != nil {
		return err
	}

	if c.XPath != "" {
		matches, err := inspect.Query(doc, c.XPath)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	}

	rep := inspect.Analyze(doc)
	if c.JSON {
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Document: %s\n", c.Path)
	fmt.Printf("  Title: %s\n", rep.Title)
	fmt.Println()
	for _, name := range inspect.CountedElements {
		if count, ok := rep.Counts[name]; ok {
			fmt.Printf("  %-5s %d\n", name, count)
		}
	}
	return nil
}

// CatalogGroup contains catalog operations.
type CatalogGroup struct {
	Add  CatalogAddCmd  `cmd:"" help:"Record a work in the catalog"`
	List CatalogListCmd `cmd:"" help:"List recorded works"`
}

// CatalogAddCmd converts a work and records the conversion in the catalog.
type CatalogAddCmd struct {
	Input  string `arg:"" help:"Input file" type:"existingfile"`
	Zip    bool   `short:"z" help:"Treat the input as a ZIP archive and read its first .txt entry"`
	Format string `enum:"html,text" default:"html" help:"Conversion format to record"`
	DB     string `name:"db" default:"~/.aozora/catalog.db" help:"Catalog database path" type:"path"`
}

func (c *CatalogAddCmd) Run() error {
	data, err := input.Read(c.Input, c.Zip)
	if err != nil {
		return err
	}

	source := encoding.DecodeToUTF8(data)
	lines := document.SplitLines(source)
	info := document.ExtractHeaderInfo(lines)

	start := time.Now()
	var output string
	if c.Format == string(catalog.FormatText) {
		output = text.ConvertString(source)
	} else {
		output = html.Convert(source, html.DefaultOptions())
	}
	logging.Conversion(c.Input, c.Format, strings.Count(source, "\n"), time.Since(start))

	cat, err := catalog.Open(c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	rec, err := cat.Add(data, c.Input, info.Title, info.Author, catalog.Format(c.Format))
	if err != nil {
		return err
	}
	logging.CatalogEvent("add", rec.ID, "title", rec.Title)

	fmt.Printf("Recorded: %s\n", c.Input)
	fmt.Printf("  ID: %s\n", rec.ID)
	fmt.Printf("  Title: %s\n", rec.Title)
	fmt.Printf("  Author: %s\n", rec.Author)
	fmt.Printf("  Format: %s (%d bytes)\n", rec.Format, len(output))
	fmt.Printf("  BLAKE3: %s\n", rec.SourceHash)
	return nil
}

// CatalogListCmd lists recorded works, newest first.
type CatalogListCmd struct {
	DB   string `name:"db" default:"~/.aozora/catalog.db" help:"Catalog database path" type:"path"`
	JSON bool   `help:"Output as JSON"`
}

func (c *CatalogListCmd) Run() error {
	cat, err := catalog.Open(c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	records, err := cat.List()
	if err != nil {
		return err
	}

	if c.JSON {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No works recorded.")
		return nil
	}

	fmt.Printf("%-36s %s %s %-5s %s\n", "ID", pad("TITLE", 20), pad("AUTHOR", 14), "FMT", "ADDED")
	for _, r := range records {
		fmt.Printf("%-36s %s %s %-5s %s\n",
			r.ID, pad(r.Title, 20), pad(r.Author, 14), r.Format,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("\nTotal: %d work(s)\n", len(records))
	return nil
}

// ServeCmd serves a live preview of a work.
type ServeCmd struct {
	Input       string        `arg:"" help:"Input file to preview" type:"existingfile"`
	Addr        string        `default:":8080" help:"Listen address"`
	Poll        time.Duration `default:"1s" help:"How often to poll the source for changes"`
	Zip         bool          `short:"z" help:"Treat the input as a ZIP archive and preview its first .txt entry"`
	GaijiDir    string        `name:"gaiji-dir" default:"../../../gaiji/" help:"Directory gaiji image references point into"`
	UseJISX0213 bool          `name:"use-jisx0213" help:"Render JIS X 0213 gaiji as character references instead of images"`
	UseUnicode  bool          `name:"use-unicode" help:"Render Unicode gaiji as character references instead of notes"`
	Title       string        `help:"Override the document title"`
}

func (c *ServeCmd) Run() error {
	opts := html.DefaultOptions().
		WithGaijiDir(c.GaijiDir).
		WithJISX0213(c.UseJISX0213).
		WithUnicode(c.UseUnicode).
		WithTitle(c.Title)

	srv := preview.New(preview.Config{
		Addr:         c.Addr,
		SourcePath:   c.Input,
		ZipMode:      c.Zip,
		RenderOpts:   opts,
		PollInterval: c.Poll,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving preview of %s on %s\n", c.Input, c.Addr)
	return srv.Start(ctx)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("aozora version %s\n", version)
	return nil
}

// Helper functions

func splitCSSFiles(list string) []string {
	parts := strings.Split(list, ",")
	files := make([]string, len(parts))
	for i, f := range parts {
		files[i] = strings.TrimSpace(f)
	}
	return files
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewIO("write", path, err)
	}
	return nil
}

// pad pads or truncates to a display width, so columns stay aligned
// for double-width Japanese titles.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("aozora"),
		kong.Description("Aozora Bunko markup converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
