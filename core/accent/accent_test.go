package accent

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cafe'", "café"},
		{"nai:ve", "naïve"},
		{"pre'lude`", "préludè"},
		{"Ve'rite'", "Vérité"},
		{"garc,on", "garçon"},
		{"can~on", "cañon"},
		{"oe&uvre", "œuvre"},
		{"AE&neid", "Æneid"},
		{"!@Hola!", "¡Hola!"},
		{"Straus&", "Strauß"},
		{"z'", "z'"},
		{"plain text", "plain text"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Convert(tt.in); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []Part
	}{
		{
			"cafe'",
			[]Part{
				{Kind: PartText, Text: "caf"},
				{Kind: PartAccent, JISCode: "1-10-31", Name: "アキュートアクセント付きE小文字", Unicode: "é"},
			},
		},
		{
			"A'",
			[]Part{
				{Kind: PartAccent, JISCode: "1-09-24", Name: "アキュートアクセント付きA", Unicode: "Á"},
			},
		},
		{
			"oe&",
			[]Part{
				{Kind: PartAccent, JISCode: "1-10-57", Name: "リガチャ小文字", Unicode: "œ"},
			},
		},
		{
			"e'tude",
			[]Part{
				{Kind: PartAccent, JISCode: "1-10-31", Name: "アキュートアクセント付きE小文字", Unicode: "é"},
				{Kind: PartText, Text: "tude"},
			},
		},
		{
			"z'",
			[]Part{
				{Kind: PartText, Text: "z'"},
			},
		},
		{"", nil},
	}
	for _, tt := range tests {
		got := Parse(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Parse(%q)[%d] = %+v, want %+v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestAccentName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"e'", "アキュートアクセント付きE小文字"},
		{"A`", "グレーブアクセント付きA"},
		{"u:", "ダイエレシス付きU小文字"},
		{"n~", "チルダ付きN小文字"},
		{"a_", "マクロン付きA小文字"},
		{"c,", "セディラ付きC小文字"},
		{"o/", "アクセント付きO小文字"},
		{"AE&", "リガチャ大文字"},
		{"oe&", "リガチャ小文字"},
		{"!@", "アクセント付き!"},
	}
	for _, tt := range tests {
		if got := accentName(tt.key); got != tt.want {
			t.Errorf("accentName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
