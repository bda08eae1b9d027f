package accent

// accentTable maps composition keys to men-ku-ten codes in rows 9 through
// 11, where JIS X 0213 places the accented Latin letters. The Unicode forms
// come from the gaiji table, so both stay in step.
var accentTable = map[string]string{
	// Capitals.
	"A`": "1-09-23",
	"A'": "1-09-24",
	"A^": "1-09-25",
	"A~": "1-09-26",
	"A:": "1-09-27",
	"A_": "1-09-28",
	"A&": "1-09-29",
	"E`": "1-09-30",
	"E'": "1-09-31",
	"E^": "1-09-32",
	"E:": "1-09-33",
	"E_": "1-09-34",
	"I`": "1-09-35",
	"I'": "1-09-36",
	"I^": "1-09-37",
	"I:": "1-09-38",
	"I_": "1-09-39",
	"N~": "1-09-40",
	"O`": "1-09-41",
	"O'": "1-09-42",
	"O^": "1-09-43",
	"O~": "1-09-44",
	"O:": "1-09-45",
	"O_": "1-09-46",
	"O/": "1-09-47",
	"U`": "1-09-48",
	"U'": "1-09-49",
	"U^": "1-09-50",
	"U:": "1-09-51",
	"U_": "1-09-52",
	"Y'": "1-09-53",
	"C,": "1-09-54",

	// Small letters.
	"a`": "1-10-23",
	"a'": "1-10-24",
	"a^": "1-10-25",
	"a~": "1-10-26",
	"a:": "1-10-27",
	"a_": "1-10-28",
	"a&": "1-10-29",
	"e`": "1-10-30",
	"e'": "1-10-31",
	"e^": "1-10-32",
	"e:": "1-10-33",
	"e_": "1-10-34",
	"i`": "1-10-35",
	"i'": "1-10-36",
	"i^": "1-10-37",
	"i:": "1-10-38",
	"i_": "1-10-39",
	"n~": "1-10-40",
	"o`": "1-10-41",
	"o'": "1-10-42",
	"o^": "1-10-43",
	"o~": "1-10-44",
	"o:": "1-10-45",
	"o_": "1-10-46",
	"o/": "1-10-47",
	"u`": "1-10-48",
	"u'": "1-10-49",
	"u^": "1-10-50",
	"u:": "1-10-51",
	"u_": "1-10-52",
	"y'": "1-10-53",
	"y:": "1-10-54",
	"c,": "1-10-55",
	"s&": "1-10-58",

	// Ligatures.
	"AE&": "1-09-55",
	"OE&": "1-09-56",
	"ae&": "1-10-56",
	"oe&": "1-10-57",

	// Inverted punctuation.
	"!@": "1-11-01",
	"?@": "1-11-02",
}
