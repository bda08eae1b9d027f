package gaiji

// LookupJIS resolves a men-ku-ten code against the embedded table. The code
// is normalized first, so "1-2-22" and "1-02-22" hit the same entry.
func LookupJIS(code string) (string, bool) {
	u, ok := jisToUnicode[NormalizeJISCode(code)]
	return u, ok
}

// jisToUnicode covers the JIS X 0213 cells the converter resolves to text:
// iteration marks, the semi-voiced kana rows, and the accented Latin rows
// backing 〔...〕 accent notation. Codes outside the table render as glyph
// images instead.
var jisToUnicode = map[string]string{
	// Row 2: iteration marks.
	"1-02-22": "〻",

	// Row 4: hiragana with the semi-voiced sound mark (composed sequences).
	"1-04-87": "か゚",
	"1-04-88": "き゚",
	"1-04-89": "く゚",
	"1-04-90": "け゚",
	"1-04-91": "こ゚",

	// Row 5: katakana with the semi-voiced sound mark (composed sequences).
	"1-05-87": "カ゚",
	"1-05-88": "キ゚",
	"1-05-89": "ク゚",
	"1-05-90": "ケ゚",
	"1-05-91": "コ゚",
	"1-05-92": "セ゚",
	"1-05-93": "ツ゚",
	"1-05-94": "ト゚",

	// Row 9: accented Latin capitals.
	"1-09-23": "À",
	"1-09-24": "Á",
	"1-09-25": "Â",
	"1-09-26": "Ã",
	"1-09-27": "Ä",
	"1-09-28": "Ā",
	"1-09-29": "Å",
	"1-09-30": "È",
	"1-09-31": "É",
	"1-09-32": "Ê",
	"1-09-33": "Ë",
	"1-09-34": "Ē",
	"1-09-35": "Ì",
	"1-09-36": "Í",
	"1-09-37": "Î",
	"1-09-38": "Ï",
	"1-09-39": "Ī",
	"1-09-40": "Ñ",
	"1-09-41": "Ò",
	"1-09-42": "Ó",
	"1-09-43": "Ô",
	"1-09-44": "Õ",
	"1-09-45": "Ö",
	"1-09-46": "Ō",
	"1-09-47": "Ø",
	"1-09-48": "Ù",
	"1-09-49": "Ú",
	"1-09-50": "Û",
	"1-09-51": "Ü",
	"1-09-52": "Ū",
	"1-09-53": "Ý",
	"1-09-54": "Ç",
	"1-09-55": "Æ",
	"1-09-56": "Œ",

	// Row 10: accented Latin small letters.
	"1-10-23": "à",
	"1-10-24": "á",
	"1-10-25": "â",
	"1-10-26": "ã",
	"1-10-27": "ä",
	"1-10-28": "ā",
	"1-10-29": "å",
	"1-10-30": "è",
	"1-10-31": "é",
	"1-10-32": "ê",
	"1-10-33": "ë",
	"1-10-34": "ē",
	"1-10-35": "ì",
	"1-10-36": "í",
	"1-10-37": "î",
	"1-10-38": "ï",
	"1-10-39": "ī",
	"1-10-40": "ñ",
	"1-10-41": "ò",
	"1-10-42": "ó",
	"1-10-43": "ô",
	"1-10-44": "õ",
	"1-10-45": "ö",
	"1-10-46": "ō",
	"1-10-47": "ø",
	"1-10-48": "ù",
	"1-10-49": "ú",
	"1-10-50": "û",
	"1-10-51": "ü",
	"1-10-52": "ū",
	"1-10-53": "ý",
	"1-10-54": "ÿ",
	"1-10-55": "ç",
	"1-10-56": "æ",
	"1-10-57": "œ",
	"1-10-58": "ß",

	// Row 11: inverted punctuation.
	"1-11-01": "¡",
	"1-11-02": "¿",
}
