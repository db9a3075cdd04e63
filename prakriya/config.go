package prakriya

// Config carries derivation-mode flags, per spec.md §3 "config: derivation
// mode flags (log-steps-on/off, chandasa-permitted, NLP mode, use-svaras)".
type Config struct {
	// LogSteps controls whether Run/RunOptional/Step append history
	// snapshots. Disabling it is a performance optimization for callers
	// that only need the final surface text.
	LogSteps bool
	// Chandasi permits rules marked as valid only in Vedic/chandas usage.
	Chandasi bool
	// UseSvaras enables accent (svara) tracking and application.
	UseSvaras bool
	// NLPMode relaxes certain rules so that the engine produces the forms
	// a statistical segmenter is likely to need, at the cost of some
	// classical strictness (mirrors the upstream "nlp_mode" flag).
	NLPMode bool

	// RuleChoices pins decisions that every derivation produced from this
	// Config must make for the named optional rules; branches that would
	// contradict a pinned choice are pruned by the enumerator (spec.md
	// §4.6 "Default-choices mode").
	RuleChoices []RuleChoice
}

// DefaultConfig returns a Config with logging enabled and all other mode
// flags off -- the common case for a single full derivation.
func DefaultConfig() Config {
	return Config{LogSteps: true}
}

// PrakriyaTag annotates the Prakriya itself (as opposed to a single Term)
// with voice, person, number, or samasa-kind information that several rule
// blocks need to consult without re-deriving it from individual terms.
type PrakriyaTag int

const (
	PTagAtmanepada PrakriyaTag = iota
	PTagParasmaipada
	PTagAmAtmanepada

	PTagPum
	PTagStri
	PTagNapumsaka

	PTagSambodhana
	PTagEkavacana
	PTagDvivacana
	PTagBahuvacana

	PTagKarmadharaya
	PTagAvyayibhava
	PTagTatpurusha
	PTagBahuvrihi
	PTagDvandva

	PTagKartari
	PTagBhave
	PTagKarmani
	PTagAshih

	PTagPrathama
	PTagMadhyama
	PTagUttama
)

// FromTermTag projects a Term-level Tag onto the coarser PrakriyaTag
// space, mirroring the upstream From<Tag> for PrakriyaTag conversion. Most
// Tag values have no Prakriya-level counterpart and project to (_, false).
func FromTermTag(t Tag) (PrakriyaTag, bool) {
	switch t {
	case TagAtmanepada:
		return PTagAtmanepada, true
	case TagParasmaipada:
		return PTagParasmaipada, true
	case TagPum:
		return PTagPum, true
	case TagStri:
		return PTagStri, true
	case TagNapumsaka:
		return PTagNapumsaka, true
	case TagSambodhana:
		return PTagSambodhana, true
	case TagEkavacana:
		return PTagEkavacana, true
	case TagDvivacana:
		return PTagDvivacana, true
	case TagBahuvacana:
		return PTagBahuvacana, true
	case TagPrathama:
		return PTagPrathama, true
	case TagMadhyama:
		return PTagMadhyama, true
	case TagUttama:
		return PTagUttama, true
	default:
		return 0, false
	}
}
