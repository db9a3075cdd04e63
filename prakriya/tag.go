package prakriya

import "fmt"

// Tag annotates a Term with a morphological category, an indicatory
// (it) marker, a samjna, or a lifecycle flag. Tag is a closed enumeration:
// every rule that gates on or assigns a category does so through one of
// these values, never through ad hoc string comparison.
//
// The set covers morpheme types,
// every upadesha it-marker (the anubandha letters of 1.3.2-1.3.9), samjnas
// assigned by rule (ghi, nadi, bha, pada, sarvanama, abhyasa/abhyasta), and
// lifecycle flags that later rules must respect once set (FlagGunaApavada,
// FlagSamprasarana, ...).
type Tag int

//go:generate stringer -type=Tag
const (
	// Morpheme types
	TagUpasarga Tag = iota
	TagGati
	TagAnga
	TagDhatu
	TagMulaDhatu
	TagGhu
	TagAvyaya
	TagPratyaya
	TagSamasa
	TagUpasarjana
	TagPratipadika
	TagVibhakti
	TagSarvanama
	TagSarvanamasthana
	TagNipata
	TagNistha
	TagKrtya
	TagTin
	TagSup
	TagKrt
	TagNyap
	TagTaddhita

	// It-samjnas (upadesha anubandhas), per 1.3.2-1.3.9
	TagAdit // a (lowercase): placeholder it, no rule-bearing meaning by itself
	TagADit // A
	TagIdit // i
	TagIDit // I
	TagUdit // u
	TagUDit // U
	TagFdit // f (vocalic r)
	TagXdit // x (vocalic l)
	TagEdit // e
	TagOdit // o
	TagKit  // k
	TagKDit // K
	TagGit  // G
	TagNit  // N
	TagCit  // c
	TagCDit // C
	TagJit  // j
	TagJDit // J
	TagYit  // Y
	TagWit  // w
	TagQit  // q
	TagQDit // Q
	TagRit  // R
	TagTit  // t
	TagNit2 // n (lowercase nit, distinct from capital N/Nit)
	TagPit  // p
	TagPDit // P
	TagMit  // m
	TagRit2 // r (lowercase rit)
	TagLit  // l
	TagSit  // S (sArvadhAtuka marker)
	TagZit  // z
	TagSit2 // s (pada-samjna marker)

	// Lopa / elision markers
	TagLuk
	TagSlu
	TagLup
	TagAluk

	// Accent
	TagAnudatta
	TagSvarita

	// Pada (voice of the tinanta ending)
	TagParasmaipada
	TagAtmanepada

	// Purusha
	TagPrathama
	TagMadhyama
	TagUttama

	// Vacana
	TagEkavacana
	TagDvivacana
	TagBahuvacana

	// Vibhakti (subanta)
	TagV1
	TagV2
	TagV3
	TagV4
	TagV5
	TagV6
	TagV7
	TagSambodhana

	// Linga (subanta)
	TagPum
	TagStri
	TagNapumsaka

	// Stem/samjna types
	TagNadi
	TagGhi
	TagBha
	TagPada
	TagSarvanamasthanaGha // placeholder for gha-samjna terms
	TagStriNyap           // marks a pratipadika as needing a NI/Ap pratyaya

	// Dvitva (reduplication)
	TagAbhyasa
	TagAbhyasta

	// Dhatuka class
	TagArdhadhatuka
	TagSarvadhatuka

	// Lifecycle / bookkeeping flags on a Term
	TagFlagGunaApavada
	TagFlagGuna
	TagFlagVrddhi
	TagFlagNoGuna
	TagFlagNoVrddhi
	TagFlagSamprasarana
	TagFlagNoDirgha
	TagFlagNoHrasva
	TagFlagDvitvaDone

	// Lifecycle / bookkeeping flags on a Prakriya
	TagFlagNum
	TagFlagNoArdhadhatuka

	numTags
)

var tagNames = map[Tag]string{
	TagUpasarga: "Upasarga", TagGati: "Gati", TagAnga: "Anga", TagDhatu: "Dhatu",
	TagMulaDhatu: "MulaDhatu", TagGhu: "Ghu", TagAvyaya: "Avyaya", TagPratyaya: "Pratyaya",
	TagSamasa: "Samasa", TagUpasarjana: "Upasarjana", TagPratipadika: "Pratipadika",
	TagVibhakti: "Vibhakti", TagSarvanama: "Sarvanama", TagSarvanamasthana: "Sarvanamasthana",
	TagNipata: "Nipata", TagNistha: "Nistha", TagKrtya: "Krtya", TagTin: "Tin", TagSup: "Sup",
	TagKrt: "Krt", TagNyap: "Nyap", TagTaddhita: "Taddhita",
	TagAdit: "adit", TagADit: "Adit", TagIdit: "idit", TagIDit: "Idit",
	TagUdit: "udit", TagUDit: "Udit", TagFdit: "fdit", TagXdit: "xdit",
	TagEdit: "edit", TagOdit: "odit", TagKit: "kit", TagKDit: "Kit", TagGit: "Git",
	TagNit: "Nit", TagCit: "cit", TagCDit: "Cit", TagJit: "jit", TagJDit: "Jit",
	TagYit: "Yit", TagWit: "wit", TagQit: "qit", TagQDit: "Qit", TagRit: "Rit",
	TagTit: "tit", TagNit2: "nit", TagPit: "pit", TagPDit: "Pit", TagMit: "mit",
	TagRit2: "rit", TagLit: "lit", TagSit: "Sit", TagZit: "zit", TagSit2: "sit",
	TagLuk: "Luk", TagSlu: "Slu", TagLup: "Lup", TagAluk: "Aluk",
	TagAnudatta: "Anudatta", TagSvarita: "Svarita",
	TagParasmaipada: "Parasmaipada", TagAtmanepada: "Atmanepada",
	TagPrathama: "Prathama", TagMadhyama: "Madhyama", TagUttama: "Uttama",
	TagEkavacana: "Ekavacana", TagDvivacana: "Dvivacana", TagBahuvacana: "Bahuvacana",
	TagV1: "V1", TagV2: "V2", TagV3: "V3", TagV4: "V4", TagV5: "V5", TagV6: "V6", TagV7: "V7",
	TagSambodhana: "Sambodhana",
	TagPum: "Pum", TagStri: "Stri", TagNapumsaka: "Napumsaka",
	TagNadi: "Nadi", TagGhi: "Ghi", TagBha: "Bha", TagPada: "Pada",
	TagSarvanamasthanaGha: "Gha", TagStriNyap: "StriNyap",
	TagAbhyasa: "Abhyasa", TagAbhyasta: "Abhyasta",
	TagArdhadhatuka: "Ardhadhatuka", TagSarvadhatuka: "Sarvadhatuka",
	TagFlagGunaApavada: "FlagGunaApavada", TagFlagGuna: "FlagGuna", TagFlagVrddhi: "FlagVrddhi",
	TagFlagNoGuna: "FlagNoGuna", TagFlagNoVrddhi: "FlagNoVrddhi",
	TagFlagSamprasarana: "FlagSamprasarana", TagFlagNoDirgha: "FlagNoDirgha",
	TagFlagNoHrasva: "FlagNoHrasva", TagFlagDvitvaDone: "FlagDvitvaDone",
	TagFlagNum: "FlagNum", TagFlagNoArdhadhatuka: "FlagNoArdhadhatuka",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// itTagByLetter maps each upadesha anubandha letter to its Tag, per
// 1.3.2-1.3.9. Used by the it-samjna pass (package itsamjna) to convert
// markers stripped from a term's upadesha text into tags.
var itTagByLetter = map[rune]Tag{
	'a': TagAdit, 'A': TagADit,
	'i': TagIdit, 'I': TagIDit,
	'u': TagUdit, 'U': TagUDit,
	'f': TagFdit, 'x': TagXdit,
	'e': TagEdit, 'o': TagOdit,
	'k': TagKit, 'K': TagKDit,
	'G': TagGit, 'N': TagNit,
	'c': TagCit, 'C': TagCDit,
	'j': TagJit, 'J': TagJDit,
	'Y': TagYit, 'w': TagWit,
	'q': TagQit, 'Q': TagQDit,
	'R': TagRit, 't': TagTit,
	'n': TagNit2, 'p': TagPit,
	'P': TagPDit, 'm': TagMit,
	'r': TagRit2, 'l': TagLit,
	'S': TagSit, 'z': TagZit, 's': TagSit2,
}

// ParseIt converts an upadesha indicatory letter to its Tag. It returns
// an *UnknownItError if ch is not a recognized anubandha.
func ParseIt(ch rune) (Tag, error) {
	t, ok := itTagByLetter[ch]
	if !ok {
		return 0, &UnknownItError{Letter: ch}
	}
	return t, nil
}
