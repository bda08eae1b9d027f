package parser

import (
	"testing"

	"github.com/FocuswithJustin/Aozora/core/chartype"
)

func TestExtractRubyBase(t *testing.T) {
	tests := []struct {
		text      string
		base      string
		remaining string
		typ       chartype.CharType
		ok        bool
	}{
		{"彼は東京", "東京", "彼は", chartype.Kanji, true},
		{"私の東京", "東京", "私の", chartype.Kanji, true},
		{"とうきょう", "とうきょう", "", chartype.Hiragana, true},
		{"東京タワー", "タワー", "東京", chartype.Katakana, true},
		{"value", "value", "", chartype.Hankaku, true},
		{"東京。", "", "", 0, false},
		{"テスト。", "", "", 0, false},
		{"", "", "", 0, false},
	}
	for _, tt := range tests {
		base, remaining, typ, ok := ExtractRubyBase(tt.text)
		if ok != tt.ok {
			t.Errorf("ExtractRubyBase(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if base != tt.base || remaining != tt.remaining || typ != tt.typ {
			t.Errorf("ExtractRubyBase(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.text, base, remaining, typ, tt.base, tt.remaining, tt.typ)
		}
	}
}
