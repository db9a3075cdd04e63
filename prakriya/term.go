package prakriya

// Term is the atomic morpheme on a Prakriya's tape. Its Text is the
// current phonetic string and mutates across rule applications; its U
// (upadesha) field holds the canonical stated form used for rule gating by
// name (e.g. matching a specific dhatu or pratyaya against a rule's
// declared target list) and is never stripped of its indicatory markers,
// unlike Text.
//
// A Term has two sentinel states: empty (Text has zero length but the
// term still participates as a locus for tags, e.g. luk elision) and real
// (Text is non-empty). Destruction of a term is always explicit (see
// Prakriya.Remove); setting Text to "" never removes a term from the tape.
type Term struct {
	Text string
	U    string
	tags map[Tag]bool

	// Dhatu-specific metadata. Zero value means "not a dhatu" / "unset".
	Gana      int
	Antargana string

	// Lexical slot identifiers used for audit and lookup by origin, e.g.
	// "dhatu:BU", "pratyaya:Sap". Not interpreted by the engine itself.
	Origin string
}

// NewTerm builds a real Term from literal text. The term carries no tags;
// callers add them via AddTag or the it-samjna pass.
func NewTerm(text string) *Term {
	return &Term{Text: text, U: text, tags: make(map[Tag]bool)}
}

// NewUpadeshaTerm builds a Term whose surface Text starts out identical to
// its upadesha form u; the it-samjna pass (package itsamjna) is expected to
// strip markers from Text while leaving U untouched.
func NewUpadeshaTerm(u string) *Term {
	return &Term{Text: u, U: u, tags: make(map[Tag]bool)}
}

// IsEmpty reports whether the term is in its empty sentinel state (e.g.
// after luk elision). An empty term still holds its tags and can still be
// matched by rules that gate on tags or position.
func (t *Term) IsEmpty() bool { return len(t.Text) == 0 }

// HasTag reports whether the term carries tag.
func (t *Term) HasTag(tag Tag) bool {
	if t.tags == nil {
		return false
	}
	return t.tags[tag]
}

// HasAllTags reports whether the term carries every tag in tags.
func (t *Term) HasAllTags(tags ...Tag) bool {
	for _, tag := range tags {
		if !t.HasTag(tag) {
			return false
		}
	}
	return true
}

// HasAnyTag reports whether the term carries at least one tag in tags.
func (t *Term) HasAnyTag(tags ...Tag) bool {
	for _, tag := range tags {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}

// AddTag adds tag to the term. Idempotent.
func (t *Term) AddTag(tag Tag) {
	if t.tags == nil {
		t.tags = make(map[Tag]bool)
	}
	t.tags[tag] = true
}

// AddTags adds every tag in tags to the term.
func (t *Term) AddTags(tags ...Tag) {
	for _, tag := range tags {
		t.AddTag(tag)
	}
}

// RemoveTag removes tag from the term, if present.
func (t *Term) RemoveTag(tag Tag) {
	delete(t.tags, tag)
}

// Tags returns a snapshot slice of all tags currently on the term, in an
// arbitrary but stable-within-a-call order. Used for history snapshots and
// debugging, not for rule gating (use HasTag).
func (t *Term) Tags() []Tag {
	out := make([]Tag, 0, len(t.tags))
	for tag := range t.tags {
		out = append(out, tag)
	}
	return out
}

// Clone returns a deep copy of the term, suitable for snapshotting into
// history or branching a derivation.
func (t *Term) Clone() *Term {
	cp := &Term{
		Text:      t.Text,
		U:         t.U,
		Gana:      t.Gana,
		Antargana: t.Antargana,
		Origin:    t.Origin,
		tags:      make(map[Tag]bool, len(t.tags)),
	}
	for k, v := range t.tags {
		cp.tags[k] = v
	}
	return cp
}
