package parser

import (
	"testing"

	"github.com/FocuswithJustin/Aozora/core/ast"
	"github.com/FocuswithJustin/Aozora/core/token"
)

func parseLine(t *testing.T, line string) []ast.Node {
	t.Helper()
	return Parse(token.Tokenize(line))
}

func TestParsePlainText(t *testing.T) {
	nodes := parseLine(t, "吾輩は猫である。")
	if len(nodes) != 1 || nodes[0].Kind != ast.KindText || nodes[0].Text != "吾輩は猫である。" {
		t.Fatalf("nodes = %+v", nodes)
	}
}

func TestParseRubyAttachesBase(t *testing.T) {
	nodes := parseLine(t, "彼は東京《とうきょう》へ向かった。")
	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d, want 3: %+v", len(nodes), nodes)
	}
	if nodes[0].Text != "彼は" {
		t.Errorf("nodes[0].Text = %q, want 彼は", nodes[0].Text)
	}
	ruby := nodes[1]
	if ruby.Kind != ast.KindRuby || ruby.Direction != ast.RubyRight {
		t.Fatalf("nodes[1] = %+v, want right-side ruby", ruby)
	}
	if len(ruby.Children) != 1 || ruby.Children[0].Text != "東京" {
		t.Errorf("ruby base = %+v, want 東京", ruby.Children)
	}
	if len(ruby.Ruby) != 1 || ruby.Ruby[0].Text != "とうきょう" {
		t.Errorf("ruby text = %+v, want とうきょう", ruby.Ruby)
	}
	if nodes[2].Text != "へ向かった。" {
		t.Errorf("nodes[2].Text = %q", nodes[2].Text)
	}
}

func TestParsePrefixedRuby(t *testing.T) {
	nodes := parseLine(t, "｜昨日《きのう》の朝")
	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d: %+v", len(nodes), nodes)
	}
	ruby := nodes[0]
	if ruby.Kind != ast.KindRuby || len(ruby.Children) != 1 || ruby.Children[0].Text != "昨日" {
		t.Fatalf("nodes[0] = %+v, want ruby over 昨日", ruby)
	}
}

func TestParseGaiji(t *testing.T) {
	nodes := parseLine(t, "※［＃「丸印」、U+25CB］")
	if len(nodes) != 1 || nodes[0].Kind != ast.KindGaiji {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Unicode != "○" || nodes[0].Description != "「丸印」、U+25CB" {
		t.Errorf("gaiji = %+v", nodes[0])
	}
}

func TestParseGaijiTakesRuby(t *testing.T) {
	nodes := parseLine(t, "※［＃「杏」、U+674F］《あんず》")
	if len(nodes) != 1 || nodes[0].Kind != ast.KindRuby {
		t.Fatalf("nodes = %+v", nodes)
	}
	base := nodes[0].Children
	if len(base) != 1 || base[0].Kind != ast.KindGaiji {
		t.Errorf("ruby base = %+v, want the gaiji node", base)
	}
}

func TestParseAccent(t *testing.T) {
	nodes := parseLine(t, "〔cafe'〕にて")
	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Text != "caf" {
		t.Errorf("nodes[0].Text = %q, want caf", nodes[0].Text)
	}
	acc := nodes[1]
	if acc.Kind != ast.KindAccent || acc.Unicode != "é" || acc.JISCode != "1-10-31" {
		t.Errorf("accent = %+v", acc)
	}
	if nodes[2].Text != "にて" {
		t.Errorf("nodes[2].Text = %q", nodes[2].Text)
	}
}

func TestParseWarigakiParens(t *testing.T) {
	nodes := parseLine(t, "いわく（［＃割り注］口伝あり［＃割り注終わり］）と")
	var start, end *ast.Node
	for i := range nodes {
		switch nodes[i].Kind {
		case ast.KindBlockStart:
			start = &nodes[i]
		case ast.KindBlockEnd:
			end = &nodes[i]
		}
	}
	if start == nil || end == nil {
		t.Fatalf("nodes = %+v", nodes)
	}
	if !start.Params.HasOpenParen {
		t.Error("start.Params.HasOpenParen = false, want true")
	}
	if !end.Params.HasCloseParen {
		t.Error("end.Params.HasCloseParen = false, want true")
	}
}

func TestParseLineIndentCommand(t *testing.T) {
	nodes := parseLine(t, "［＃３字下げ］見出しめいた一行")
	if len(nodes) != 2 || nodes[0].Kind != ast.KindBlockStart {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Block != ast.BlockJisage || nodes[0].Params.WidthOr(0) != 3 || nodes[0].Params.IsBlock {
		t.Errorf("block start = %+v", nodes[0])
	}
}

func TestParseLoneDelimitersStayText(t *testing.T) {
	nodes := parseLine(t, "昨日［今日］明日")
	if len(nodes) != 1 && len(nodes) != 3 {
		t.Fatalf("nodes = %+v", nodes)
	}
	var plain string
	for _, n := range nodes {
		plain += n.PlainText()
	}
	if plain != "昨日［今日］明日" {
		t.Errorf("plain = %q", plain)
	}
}
