package ast

import "testing"

func TestStyleTypeFromCommand(t *testing.T) {
	tests := []struct {
		command string
		want    StyleType
		ok      bool
	}{
		{"傍点", StyleSesameDot, true},
		{"白ゴマ傍点", StyleWhiteSesameDot, true},
		{"丸傍点", StyleBlackCircle, true},
		{"白丸傍点", StyleWhiteCircle, true},
		{"黒三角傍点", StyleBlackTriangle, true},
		{"白三角傍点", StyleWhiteTriangle, true},
		{"二重丸傍点", StyleBullseye, true},
		{"蛇の目傍点", StyleFisheye, true},
		{"ばつ傍点", StyleSaltire, true},
		{"傍線", StyleUnderlineSolid, true},
		{"二重傍線", StyleUnderlineDouble, true},
		{"鎖線", StyleUnderlineDotted, true},
		{"破線", StyleUnderlineDashed, true},
		{"波線", StyleUnderlineWave, true},
		{"太字", StyleBold, true},
		{"斜体", StyleItalic, true},
		{"下付き小文字", StyleSubscript, true},
		{"行左小書き", StyleSubscript, true},
		{"上付き小文字", StyleSuperscript, true},
		{"行右小書き", StyleSuperscript, true},
		{"左に傍点", StyleSesameDotAfter, true},
		{"左に傍線", StyleOverlineSolid, true},
		{"未知", "", false},
	}
	for _, tt := range tests {
		got, ok := StyleTypeFromCommand(tt.command)
		if ok != tt.ok || got != tt.want {
			t.Errorf("StyleTypeFromCommand(%q) = %q, %v, want %q, %v", tt.command, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyleCommandNameRoundTrip(t *testing.T) {
	for st := range styleCommands {
		name := st.CommandName()
		if name == "" {
			t.Errorf("style %q has no command name", st)
			continue
		}
		back, ok := StyleTypeFromCommand(name)
		if !ok || back != st {
			t.Errorf("StyleTypeFromCommand(%q) = %q, %v, want %q", name, back, ok, st)
		}
	}
}

func TestAfterVariant(t *testing.T) {
	tests := []struct {
		style StyleType
		want  StyleType
	}{
		{StyleSesameDot, StyleSesameDotAfter},
		{StyleBlackCircle, StyleBlackCircleAfter},
		{StyleUnderlineSolid, StyleOverlineSolid},
		{StyleUnderlineWave, StyleOverlineWave},
		{StyleBold, StyleBold},
		{StyleSubscript, StyleSubscript},
	}
	for _, tt := range tests {
		if got := tt.style.AfterVariant(); got != tt.want {
			t.Errorf("%q.AfterVariant() = %q, want %q", tt.style, got, tt.want)
		}
	}
}
