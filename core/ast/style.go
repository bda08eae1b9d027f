package ast

// StyleType identifies a character decoration. The value doubles as the CSS
// class emitted for it.
type StyleType string

// Emphasis dot styles set on the right side of vertical text.
const (
	StyleSesameDot      StyleType = "sesame_dot"
	StyleWhiteSesameDot StyleType = "white_sesame_dot"
	StyleBlackCircle    StyleType = "black_circle"
	StyleWhiteCircle    StyleType = "white_circle"
	StyleBlackTriangle  StyleType = "black_up-pointing_triangle"
	StyleWhiteTriangle  StyleType = "white_up-pointing_triangle"
	StyleBullseye       StyleType = "bullseye"
	StyleFisheye        StyleType = "fisheye"
	StyleSaltire        StyleType = "saltire"
)

// Emphasis dot styles set on the left side of vertical text.
const (
	StyleSesameDotAfter      StyleType = "sesame_dot_after"
	StyleWhiteSesameDotAfter StyleType = "white_sesame_dot_after"
	StyleBlackCircleAfter    StyleType = "black_circle_after"
	StyleWhiteCircleAfter    StyleType = "white_circle_after"
	StyleBlackTriangleAfter  StyleType = "black_up-pointing_triangle_after"
	StyleWhiteTriangleAfter  StyleType = "white_up-pointing_triangle_after"
	StyleBullseyeAfter       StyleType = "bullseye_after"
	StyleFisheyeAfter        StyleType = "fisheye_after"
	StyleSaltireAfter        StyleType = "saltire_after"
)

// Line styles. Underlines sit on the right side of vertical text; the left
// side variants render as overlines.
const (
	StyleUnderlineSolid  StyleType = "underline_solid"
	StyleUnderlineDouble StyleType = "underline_double"
	StyleUnderlineDotted StyleType = "underline_dotted"
	StyleUnderlineDashed StyleType = "underline_dashed"
	StyleUnderlineWave   StyleType = "underline_wave"
	StyleOverlineSolid   StyleType = "overline_solid"
	StyleOverlineDouble  StyleType = "overline_double"
	StyleOverlineDotted  StyleType = "overline_dotted"
	StyleOverlineDashed  StyleType = "overline_dashed"
	StyleOverlineWave    StyleType = "overline_wave"
)

// Character styles.
const (
	StyleBold        StyleType = "futoji"
	StyleItalic      StyleType = "shatai"
	StyleSubscript   StyleType = "subscript"
	StyleSuperscript StyleType = "superscript"
)

// styleCommands maps each style to its command name. Backward references
// round-trip through this table: the interpreter stores the command name in
// the reference spec and the resolver maps it back.
var styleCommands = map[StyleType]string{
	StyleSesameDot:           "傍点",
	StyleWhiteSesameDot:      "白ゴマ傍点",
	StyleBlackCircle:         "丸傍点",
	StyleWhiteCircle:         "白丸傍点",
	StyleBlackTriangle:       "黒三角傍点",
	StyleWhiteTriangle:       "白三角傍点",
	StyleBullseye:            "二重丸傍点",
	StyleFisheye:             "蛇の目傍点",
	StyleSaltire:             "ばつ傍点",
	StyleSesameDotAfter:      "左に傍点",
	StyleWhiteSesameDotAfter: "左に白ゴマ傍点",
	StyleBlackCircleAfter:    "左に丸傍点",
	StyleWhiteCircleAfter:    "左に白丸傍点",
	StyleBlackTriangleAfter:  "左に黒三角傍点",
	StyleWhiteTriangleAfter:  "左に白三角傍点",
	StyleBullseyeAfter:       "左に二重丸傍点",
	StyleFisheyeAfter:        "左に蛇の目傍点",
	StyleSaltireAfter:        "左にばつ傍点",
	StyleUnderlineSolid:      "傍線",
	StyleUnderlineDouble:     "二重傍線",
	StyleUnderlineDotted:     "鎖線",
	StyleUnderlineDashed:     "破線",
	StyleUnderlineWave:       "波線",
	StyleOverlineSolid:       "左に傍線",
	StyleOverlineDouble:      "左に二重傍線",
	StyleOverlineDotted:      "左に鎖線",
	StyleOverlineDashed:      "左に破線",
	StyleOverlineWave:        "左に波線",
	StyleBold:                "太字",
	StyleItalic:              "斜体",
	StyleSubscript:           "下付き小文字",
	StyleSuperscript:         "上付き小文字",
}

// styleByCommand is the reverse of styleCommands plus notation synonyms.
var styleByCommand = map[string]StyleType{
	"下付き小文字": StyleSubscript,
	"行左小書き":  StyleSubscript,
	"上付き小文字": StyleSuperscript,
	"行右小書き":  StyleSuperscript,
}

func init() {
	for st, cmd := range styleCommands {
		styleByCommand[cmd] = st
	}
}

// StyleTypeFromCommand maps a command name such as 傍点 or 左に波線 to its
// style. It returns false for names that are not styles.
func StyleTypeFromCommand(command string) (StyleType, bool) {
	st, ok := styleByCommand[command]
	return st, ok
}

// CommandName returns the command name of the style.
func (s StyleType) CommandName() string {
	return styleCommands[s]
}

// afterVariants maps each right-side style to its left-side counterpart.
// Dot styles move to the other side of the text; underlines become
// overlines. Character styles have no sided variant.
var afterVariants = map[StyleType]StyleType{
	StyleSesameDot:       StyleSesameDotAfter,
	StyleWhiteSesameDot:  StyleWhiteSesameDotAfter,
	StyleBlackCircle:     StyleBlackCircleAfter,
	StyleWhiteCircle:     StyleWhiteCircleAfter,
	StyleBlackTriangle:   StyleBlackTriangleAfter,
	StyleWhiteTriangle:   StyleWhiteTriangleAfter,
	StyleBullseye:        StyleBullseyeAfter,
	StyleFisheye:         StyleFisheyeAfter,
	StyleSaltire:         StyleSaltireAfter,
	StyleUnderlineSolid:  StyleOverlineSolid,
	StyleUnderlineDouble: StyleOverlineDouble,
	StyleUnderlineDotted: StyleOverlineDotted,
	StyleUnderlineDashed: StyleOverlineDashed,
	StyleUnderlineWave:   StyleOverlineWave,
}

// AfterVariant returns the left-side counterpart of the style, or the style
// itself when it has none.
func (s StyleType) AfterVariant() StyleType {
	if after, ok := afterVariants[s]; ok {
		return after
	}
	return s
}
