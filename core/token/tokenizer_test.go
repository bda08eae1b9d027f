package token

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizePlainText(t *testing.T) {
	got := Tokenize("こんにちは")
	want := []Token{NewText("こんにちは")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeRuby(t *testing.T) {
	got := Tokenize("漢字《かんじ》")
	want := []Token{
		NewText("漢字"),
		{Kind: KindRuby, Children: []Token{NewText("かんじ")}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizePrefixedRuby(t *testing.T) {
	got := Tokenize("｜東京都《とうきょうと》")
	want := []Token{
		{
			Kind: KindPrefixedRuby,
			Base: []Token{NewText("東京都")},
			Ruby: []Token{NewText("とうきょうと")},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizePrefixWithoutRuby(t *testing.T) {
	// ｜ with no following 《 is plain text; scanning resumes after it.
	got := Tokenize("あ｜い")
	want := []Token{NewText("あ"), NewText("｜"), NewText("い")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeCommand(t *testing.T) {
	got := Tokenize("［＃ここから２字下げ］")
	want := []Token{{Kind: KindCommand, Text: "ここから２字下げ"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeNestedCommand(t *testing.T) {
	// Directive content may itself contain a bracketed directive; the depth
	// counter must carry the scan across it.
	got := Tokenize("［＃ここから罫囲み［＃「罫囲み」に傍点］］")
	want := []Token{{Kind: KindCommand, Text: "ここから罫囲み［＃「罫囲み」に傍点］"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeBracketWithoutIgeta(t *testing.T) {
	got := Tokenize("［注］")
	want := []Token{NewText("［"), NewText("注］")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeGaiji(t *testing.T) {
	got := Tokenize("※［＃「てへん＋劣」、第3水準1-84-77］")
	want := []Token{{Kind: KindGaiji, Text: "「てへん＋劣」、第3水準1-84-77"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeGaijiMarkAlone(t *testing.T) {
	got := Tokenize("※印")
	want := []Token{NewText("※"), NewText("印")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeAccent(t *testing.T) {
	got := Tokenize("〔e'tranger〕")
	want := []Token{{Kind: KindAccent, Children: []Token{NewText("e'tranger")}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeBracketsWithoutAccentMarks(t *testing.T) {
	// 〔...〕 with no accent mark inside stays literal text.
	got := Tokenize("〔編注〕")
	want := []Token{NewText("〔"), NewText("編注〕")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeUnterminatedAccent(t *testing.T) {
	got := Tokenize("〔e'tranger")
	want := []Token{NewText("〔"), NewText("e'tranger")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeUnterminatedRuby(t *testing.T) {
	// A missing 》 consumes the rest of the line as ruby interior.
	got := Tokenize("漢字《かんじ")
	want := []Token{
		NewText("漢字"),
		{Kind: KindRuby, Children: []Token{NewText("かんじ")}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeMixedLine(t *testing.T) {
	got := Tokenize("吾輩《わがはい》は猫である［＃「である」に傍点］")
	want := []Token{
		NewText("吾輩"),
		{Kind: KindRuby, Children: []Token{NewText("わがはい")}},
		NewText("は猫である"),
		{Kind: KindCommand, Text: "「である」に傍点"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %+v, want %+v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %+v, want empty", got)
	}
}

// reconstruct rebuilds the source text of a token list. Well-terminated input
// must round-trip exactly.
func reconstruct(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case KindText:
			b.WriteString(tok.Text)
		case KindRuby:
			b.WriteString("《")
			b.WriteString(reconstruct(tok.Children))
			b.WriteString("》")
		case KindPrefixedRuby:
			b.WriteString("｜")
			b.WriteString(reconstruct(tok.Base))
			b.WriteString("《")
			b.WriteString(reconstruct(tok.Ruby))
			b.WriteString("》")
		case KindCommand:
			b.WriteString("［＃")
			b.WriteString(tok.Text)
			b.WriteString("］")
		case KindGaiji:
			b.WriteString("※［＃")
			b.WriteString(tok.Text)
			b.WriteString("］")
		case KindAccent:
			b.WriteString("〔")
			b.WriteString(reconstruct(tok.Children))
			b.WriteString("〕")
		}
	}
	return b.String()
}

func TestTokenizeRoundTrip(t *testing.T) {
	lines := []string{
		"吾輩《わがはい》は猫である［＃「である」に傍点］",
		"｜熟字訓《じゅくじくん》と普通の文",
		"※［＃「弓＋椁のつくり」、第3水準1-84-22］を引く",
		"〔Virgile〕と〔E'cole〕",
		"［＃ここから罫囲み［＃「罫囲み」に傍点］］",
		"地の文｜だけ",
		"平凡な一行。",
	}
	for _, line := range lines {
		if got := reconstruct(Tokenize(line)); got != line {
			t.Errorf("round trip = %q, want %q", got, line)
		}
	}
}
