package parser

import (
	"reflect"
	"testing"

	"github.com/FocuswithJustin/Aozora/core/ast"
)

func TestResolveStyleReferenceExact(t *testing.T) {
	nodes := parseLine(t, "吾輩は猫である［＃「吾輩は猫である」に傍点］")
	if len(nodes) != 1 {
		t.Fatalf("nodes = %+v", nodes)
	}
	style := nodes[0]
	if style.Kind != ast.KindStyle || style.Style != ast.StyleSesameDot {
		t.Fatalf("nodes[0] = %+v, want sesame dot style", style)
	}
	if len(style.Children) != 1 || style.Children[0].Text != "吾輩は猫である" {
		t.Errorf("children = %+v", style.Children)
	}
}

func TestResolveStyleReferenceSplitsText(t *testing.T) {
	nodes := parseLine(t, "昨日の東京は晴れ［＃「東京」に傍点］")
	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Text != "昨日の" {
		t.Errorf("nodes[0].Text = %q", nodes[0].Text)
	}
	if nodes[1].Kind != ast.KindStyle || nodes[1].PlainText() != "東京" {
		t.Errorf("nodes[1] = %+v", nodes[1])
	}
	if nodes[2].Text != "は晴れ" {
		t.Errorf("nodes[2].Text = %q", nodes[2].Text)
	}
}

func TestResolveStyleReferenceSpansNodes(t *testing.T) {
	nodes := parseLine(t, "東京《とうきょう》タワー［＃「東京タワー」は太字］")
	if len(nodes) != 1 {
		t.Fatalf("nodes = %+v", nodes)
	}
	style := nodes[0]
	if style.Kind != ast.KindStyle || style.Style != ast.StyleBold {
		t.Fatalf("nodes[0] = %+v, want bold style", style)
	}
	if len(style.Children) != 2 || style.Children[0].Kind != ast.KindRuby || style.Children[1].Text != "タワー" {
		t.Errorf("children = %+v", style.Children)
	}
}

func TestResolveMidashiReference(t *testing.T) {
	nodes := parseLine(t, "第一章［＃「第一章」は大見出し］")
	if len(nodes) != 1 {
		t.Fatalf("nodes = %+v", nodes)
	}
	m := nodes[0]
	if m.Kind != ast.KindMidashi || m.Level != ast.MidashiO || m.MidashiStyle != ast.MidashiNormal {
		t.Errorf("midashi = %+v", m)
	}
}

func TestResolveFontSizeReference(t *testing.T) {
	nodes := parseLine(t, "大事な字［＃「大事な字」は２段階大きな文字］")
	if len(nodes) != 1 {
		t.Fatalf("nodes = %+v", nodes)
	}
	fs := nodes[0]
	if fs.Kind != ast.KindFontSize || fs.SizeType != ast.FontDai || fs.SizeLevel != 2 {
		t.Errorf("font size = %+v", fs)
	}
}

func TestResolveAnnotationRuby(t *testing.T) {
	nodes := parseLine(t, "夜明け［＃「夜明け」に「よあけ」の注記］")
	if len(nodes) != 1 || nodes[0].Kind != ast.KindRuby {
		t.Fatalf("nodes = %+v", nodes)
	}
	if len(nodes[0].Ruby) != 1 || nodes[0].Ruby[0].Text != "よあけ" {
		t.Errorf("ruby text = %+v", nodes[0].Ruby)
	}
}

func TestResolveSideNoteRepeatsPerCharacter(t *testing.T) {
	nodes := parseLine(t, "天地［＃「天地」に「ママ」の傍記］")
	if len(nodes) != 1 || nodes[0].Kind != ast.KindRuby {
		t.Fatalf("nodes = %+v", nodes)
	}
	want := "ママ\u00a0ママ"
	if len(nodes[0].Ruby) != 1 || nodes[0].Ruby[0].Text != want {
		t.Errorf("ruby text = %+v, want %q", nodes[0].Ruby, want)
	}
}

func TestResolveAnnotationRange(t *testing.T) {
	nodes := parseLine(t, "この［＃注記付き］石［＃「宝石」の注記付き終わり］を")
	if len(nodes) != 3 {
		t.Fatalf("nodes = %+v", nodes)
	}
	ruby := nodes[1]
	if ruby.Kind != ast.KindRuby || ruby.PlainText() != "石" {
		t.Fatalf("nodes[1] = %+v", ruby)
	}
	if len(ruby.Ruby) != 1 || ruby.Ruby[0].Text != "宝石" {
		t.Errorf("annotation = %+v", ruby.Ruby)
	}
}

func TestResolveLeftAnnotationRange(t *testing.T) {
	nodes := parseLine(t, "［＃左に注記付き］本文［＃左に「注」の注記付き終わり］")
	if len(nodes) != 3 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Kind != ast.KindNote || nodes[0].Text != "左に注記付き" {
		t.Errorf("nodes[0] = %+v", nodes[0])
	}
	if nodes[1].Text != "本文" {
		t.Errorf("nodes[1] = %+v", nodes[1])
	}
	end := nodes[2]
	if end.Kind != ast.KindAnnotationEnd || end.Prefix != "左に「" || end.Suffix != "」の注記付き終わり" {
		t.Errorf("nodes[2] = %+v", end)
	}
	if len(end.Children) != 1 || end.Children[0].Text != "注" {
		t.Errorf("annotation content = %+v", end.Children)
	}
}

func TestResolveLeavesUnmatchedReference(t *testing.T) {
	nodes := parseLine(t, "ほにゃ［＃「なし」に傍点］")
	if len(nodes) != 2 {
		t.Fatalf("nodes = %+v", nodes)
	}
	ref := nodes[1]
	if ref.Kind != ast.KindUnresolvedReference {
		t.Fatalf("nodes[1] = %+v, want unresolved reference", ref)
	}
	if got := ref.PlainText(); got != "［＃「なし」に傍点］" {
		t.Errorf("PlainText() = %q", got)
	}
}

func TestResolveNearestTargetWins(t *testing.T) {
	nodes := parseLine(t, "山の上の山［＃「山」に傍点］")
	if len(nodes) != 2 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Text != "山の上の" {
		t.Errorf("nodes[0].Text = %q, want 山の上の", nodes[0].Text)
	}
	if nodes[1].Kind != ast.KindStyle || nodes[1].PlainText() != "山" {
		t.Errorf("nodes[1] = %+v", nodes[1])
	}
}

func TestResolveConsecutiveRuby(t *testing.T) {
	nodes := parseLine(t, "明日《あした》天気《てんき》")
	if len(nodes) != 2 {
		t.Fatalf("nodes = %+v", nodes)
	}
	for i, want := range []string{"明日", "天気"} {
		if nodes[i].Kind != ast.KindRuby || nodes[i].PlainText() != want {
			t.Errorf("nodes[%d] = %+v, want ruby over %s", i, nodes[i], want)
		}
	}
}

func TestResolveRubyBaseStopsAtTypeBoundary(t *testing.T) {
	nodes := parseLine(t, "春の夜《よ》")
	if len(nodes) != 2 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Text != "春の" {
		t.Errorf("nodes[0].Text = %q", nodes[0].Text)
	}
	if nodes[1].Kind != ast.KindRuby || nodes[1].PlainText() != "夜" {
		t.Errorf("nodes[1] = %+v", nodes[1])
	}
}

func TestResolveRubyWithoutBaseStays(t *testing.T) {
	nodes := parseLine(t, "《るび》")
	if len(nodes) != 1 || nodes[0].Kind != ast.KindRuby {
		t.Fatalf("nodes = %+v", nodes)
	}
	if len(nodes[0].Children) != 0 {
		t.Errorf("children = %+v, want none", nodes[0].Children)
	}
}

func TestResolveIdempotent(t *testing.T) {
	lines := []string{
		"吾輩《わがはい》は猫である［＃「である」に傍点］",
		"第一章［＃「第一章」は大見出し］",
		"この［＃注記付き］石［＃「宝石」の注記付き終わり］を",
		"ほにゃ［＃「なし」に傍点］",
		"《るび》",
	}
	for _, line := range lines {
		once := parseLine(t, line)
		twice := ResolveReferences(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("resolving %q twice changed the nodes:\nonce:  %+v\ntwice: %+v", line, once, twice)
		}
	}
}
