package document

import (
	"reflect"
	"testing"
)

func TestExtractHeaderInfo(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  HeaderInfo
	}{
		{
			name:  "title only",
			lines: []string{"草枕"},
			want:  HeaderInfo{Title: "草枕"},
		},
		{
			name:  "title and author",
			lines: []string{"こころ", "夏目漱石"},
			want:  HeaderInfo{Title: "こころ", Author: "夏目漱石"},
		},
		{
			name:  "title and translator",
			lines: []string{"変身", "原田義人訳"},
			want:  HeaderInfo{Title: "変身", Translator: "原田義人訳"},
		},
		{
			name:  "subtitle before author",
			lines: []string{"遠野物語", "山の人生", "柳田国男"},
			want:  HeaderInfo{Title: "遠野物語", Subtitle: "山の人生", Author: "柳田国男"},
		},
		{
			name:  "original title before translator",
			lines: []string{"賢者の贈り物", "THE GIFT OF THE MAGI", "結城浩訳"},
			want: HeaderInfo{
				Title:         "賢者の贈り物",
				OriginalTitle: "THE GIFT OF THE MAGI",
				Translator:    "結城浩訳",
			},
		},
		{
			name:  "author then translator",
			lines: []string{"変身", "フランツ・カフカ", "原田義人訳"},
			want: HeaderInfo{
				Title:      "変身",
				Author:     "フランツ・カフカ",
				Translator: "原田義人訳",
			},
		},
		{
			name:  "four lines with original title",
			lines: []string{"検察官", "РЕВИЗОР", "ゴーゴリ", "米川正夫訳"},
			want: HeaderInfo{
				Title:         "検察官",
				OriginalTitle: "РЕВИЗОР",
				Author:        "ゴーゴリ",
				Translator:    "米川正夫訳",
			},
		},
		{
			name:  "four lines with subtitle and author last",
			lines: []string{"新編", "SONGS OF INNOCENCE", "無心の歌", "ブレイク"},
			want: HeaderInfo{
				Title:         "新編",
				OriginalTitle: "SONGS OF INNOCENCE",
				Subtitle:      "無心の歌",
				Author:        "ブレイク",
			},
		},
		{
			name:  "five lines",
			lines: []string{"悪の華", "LES FLEURS DU MAL", "抄", "ボードレール", "堀口大学訳"},
			want: HeaderInfo{
				Title:         "悪の華",
				OriginalTitle: "LES FLEURS DU MAL",
				Subtitle:      "抄",
				Author:        "ボードレール",
				Translator:    "堀口大学訳",
			},
		},
		{
			name: "six lines",
			lines: []string{
				"対訳詩集", "POEMS", "抄訳", "SELECTED",
				"ホイットマン", "有島武郎編訳",
			},
			want: HeaderInfo{
				Title:            "対訳詩集",
				OriginalTitle:    "POEMS",
				Subtitle:         "抄訳",
				OriginalSubtitle: "SELECTED",
				Author:           "ホイットマン",
				Henyaku:          "有島武郎編訳",
			},
		},
		{
			name:  "editor credit",
			lines: []string{"万葉集", "佐佐木信綱編"},
			want:  HeaderInfo{Title: "万葉集", Editor: "佐佐木信綱編"},
		},
		{
			name:  "header stops at blank line",
			lines: []string{"こころ", "夏目漱石", "", "本文"},
			want:  HeaderInfo{Title: "こころ", Author: "夏目漱石"},
		},
		{
			name:  "empty input",
			lines: nil,
			want:  HeaderInfo{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHeaderInfo(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractHeaderInfo(%q) = %+v, want %+v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestDetectRole(t *testing.T) {
	tests := []struct {
		line string
		want personRole
	}{
		{"夏目漱石", roleAuthor},
		{"森鴎外訳", roleTranslator},
		{"与謝野晶子編", roleEditor},
		{"佐佐木信綱校訂", roleEditor},
		{"日本文学報国会編集", roleEditor},
		{"有島武郎編訳", roleHenyaku},
	}
	for _, tt := range tests {
		if got := detectRole(tt.line); got != tt.want {
			t.Errorf("detectRole(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHTMLTitle(t *testing.T) {
	tests := []struct {
		name string
		info HeaderInfo
		want string
	}{
		{
			name: "author and title",
			info: HeaderInfo{Title: "こころ", Author: "夏目漱石"},
			want: "夏目漱石 こころ",
		},
		{
			name: "translation",
			info: HeaderInfo{
				Title:         "変身",
				OriginalTitle: "Die Verwandlung",
				Author:        "フランツ・カフカ",
				Translator:    "原田義人訳",
			},
			want: "フランツ・カフカ 原田義人訳 変身 Die Verwandlung",
		},
		{
			name: "title only",
			info: HeaderInfo{Title: "草枕"},
			want: "草枕",
		},
	}
	for _, tt := range tests {
		if got := tt.info.HTMLTitle(); got != tt.want {
			t.Errorf("%s: HTMLTitle() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsOriginalTitle(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"THE GIFT OF THE MAGI", true},
		{"Die Verwandlung", true},
		{"РЕВИЗОР", true},
		{"ΟΔΥΣΣΕΙΑ", true},
		{"ＰＯＥＭＳ", true},
		{"賢者の贈り物", false},
		{"草枕", false},
	}
	for _, tt := range tests {
		if got := isOriginalTitle(tt.line); got != tt.want {
			t.Errorf("isOriginalTitle(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestExtractBodyLines(t *testing.T) {
	lines := []string{
		"こころ",
		"夏目漱石",
		"",
		"-------------------------------------------------------",
		"【テキスト中に現れる記号について】",
		"",
		"《》：ルビ",
		"-------------------------------------------------------",
		"",
		"［＃３字下げ］上　先生と私［＃「上　先生と私」は大見出し］",
		"",
		"　私はその人を常に先生と呼んでいた。",
		"底本：「こころ」集英社文庫、集英社",
		"　　　1991（平成3）年2月25日第1刷",
	}
	want := []string{
		"",
		"［＃３字下げ］上　先生と私［＃「上　先生と私」は大見出し］",
		"",
		"　私はその人を常に先生と呼んでいた。",
	}
	if got := ExtractBodyLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractBodyLines = %q, want %q", got, want)
	}
}

func TestExtractBodyLinesWithoutChuuki(t *testing.T) {
	lines := []string{
		"草枕",
		"夏目漱石",
		"",
		"",
		"　山路を登りながら、こう考えた。",
		"底本：「草枕」岩波文庫",
	}
	want := []string{"　山路を登りながら、こう考えた。"}
	if got := ExtractBodyLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractBodyLines = %q, want %q", got, want)
	}
}

func TestExtractBodyLinesStopsAtEndMark(t *testing.T) {
	lines := []string{
		"題",
		"",
		"本文",
		"［＃本文終わり］",
		"あとがき",
		"底本：なし",
	}
	want := []string{"本文"}
	if got := ExtractBodyLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractBodyLines = %q, want %q", got, want)
	}
}

func TestExtractAfterTextLines(t *testing.T) {
	lines := []string{
		"題",
		"",
		"本文",
		"［＃本文終わり］",
		"あとがき一",
		"あとがき二",
		"底本：なし",
	}
	want := []string{"あとがき一", "あとがき二"}
	if got := ExtractAfterTextLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractAfterTextLines = %q, want %q", got, want)
	}

	if got := ExtractAfterTextLines([]string{"題", "", "本文", "底本：なし"}); len(got) != 0 {
		t.Errorf("ExtractAfterTextLines without end mark = %q, want empty", got)
	}
}

func TestExtractBibliographicalLines(t *testing.T) {
	lines := []string{
		"題",
		"",
		"本文",
		"底本：「こころ」集英社文庫、集英社",
		"　　　1991（平成3）年2月25日第1刷",
	}
	want := []string{
		"底本：「こころ」集英社文庫、集英社",
		"　　　1991（平成3）年2月25日第1刷",
	}
	if got := ExtractBibliographicalLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractBibliographicalLines = %q, want %q", got, want)
	}

	if got := ExtractBibliographicalLines([]string{"題", "", "本文"}); got != nil {
		t.Errorf("ExtractBibliographicalLines without colophon = %q, want nil", got)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a\nb\nc", []string{"a", "b", "c"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n", []string{"a"}},
		{"", nil},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		got := SplitLines(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
