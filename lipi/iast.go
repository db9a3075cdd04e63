package lipi

// iastPairs is the IAST <-> SLP1 grapheme correspondence. IAST marks vowel
// length with a macron and retroflexion/nasal place with a dot rather than
// SLP1's case-based scheme, and spells aspirated stops as a digraph, so
// several entries are multi-rune graphemes matched greedily by Scheme.
var iastPairs = []Pair{
	// vowels, long before short so the macron'd forms win the longest match
	{"ā", "A"}, {"ī", "I"}, {"ū", "U"},
	{"ṛ", "f"}, {"ṝ", "F"}, {"ḷ", "x"}, {"ḹ", "X"},
	{"ai", "E"}, {"au", "O"},
	{"a", "a"}, {"i", "i"}, {"u", "u"}, {"e", "e"}, {"o", "o"},

	// stops and nasals, aspirated digraphs before their plain forms
	{"kh", "K"}, {"gh", "G"}, {"ṅ", "N"}, {"k", "k"}, {"g", "g"},
	{"ch", "C"}, {"jh", "J"}, {"ñ", "Y"}, {"c", "c"}, {"j", "j"},
	{"ṭh", "W"}, {"ḍh", "Q"}, {"ṇ", "R"}, {"ṭ", "w"}, {"ḍ", "q"},
	{"th", "T"}, {"dh", "D"}, {"n", "n"}, {"t", "t"}, {"d", "d"},
	{"ph", "P"}, {"bh", "B"}, {"m", "m"}, {"p", "p"}, {"b", "b"},

	// semivowels, sibilants, aspirate
	{"y", "y"}, {"r", "r"}, {"l", "l"}, {"v", "v"},
	{"ś", "S"}, {"ṣ", "z"}, {"s", "s"}, {"h", "h"},

	// anusvara, visarga, avagraha
	{"ṃ", "M"}, {"ḥ", "H"}, {"'", "'"},
}

// IASTScheme is the package-level Scheme for International Alphabet of
// Sanskrit Transliteration text.
var IASTScheme = NewScheme(IAST, iastPairs)
