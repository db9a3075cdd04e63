package prakriya

import "testing"

func TestTermTagRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
		want Tag
		has  bool
	}{
		{"dhatu tag present", []Tag{TagDhatu, TagAnga}, TagDhatu, true},
		{"tag absent", []Tag{TagDhatu}, TagKrt, false},
		{"empty term has no tags", nil, TagDhatu, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := NewTerm("BU")
			term.AddTags(tt.tags...)
			if got := term.HasTag(tt.want); got != tt.has {
				t.Errorf("HasTag(%v) = %v, want %v", tt.want, got, tt.has)
			}
		})
	}
}

func TestTermIsEmpty(t *testing.T) {
	real := NewTerm("gacC")
	if real.IsEmpty() {
		t.Errorf("NewTerm(%q).IsEmpty() = true, want false", real.Text)
	}

	elided := NewTerm("Snam")
	elided.Text = ""
	if !elided.IsEmpty() {
		t.Errorf("elided term IsEmpty() = false, want true")
	}
	// Elision is not destruction: the term keeps its tags and locus.
	elided.AddTag(TagLuk)
	if !elided.HasTag(TagLuk) {
		t.Errorf("elided term should retain its Luk tag")
	}
}

func TestTermCloneIsIndependent(t *testing.T) {
	orig := NewTerm("kf")
	orig.AddTag(TagDhatu)

	clone := orig.Clone()
	clone.Text = "kur"
	clone.AddTag(TagAnga)

	if orig.Text != "kf" {
		t.Errorf("mutating clone.Text affected original: got %q", orig.Text)
	}
	if orig.HasTag(TagAnga) {
		t.Errorf("mutating clone tags affected original")
	}
	if !clone.HasTag(TagDhatu) {
		t.Errorf("clone should inherit original's tags")
	}
}

func TestHasAllAnyTags(t *testing.T) {
	term := NewTerm("Bavati")
	term.AddTags(TagDhatu, TagAnga)

	if !term.HasAllTags(TagDhatu, TagAnga) {
		t.Errorf("HasAllTags should be true when both tags present")
	}
	if term.HasAllTags(TagDhatu, TagKrt) {
		t.Errorf("HasAllTags should be false when one tag missing")
	}
	if !term.HasAnyTag(TagKrt, TagAnga) {
		t.Errorf("HasAnyTag should be true when one of the tags present")
	}
	if term.HasAnyTag(TagKrt, TagSup) {
		t.Errorf("HasAnyTag should be false when neither tag present")
	}
}

func TestParseItUnknownLetter(t *testing.T) {
	if _, err := ParseIt('N'); err != nil {
		t.Errorf("ParseIt('N') returned unexpected error: %v", err)
	}
	_, err := ParseIt('b')
	if err == nil {
		t.Fatalf("ParseIt('b') should fail: b is not a recognized anubandha")
	}
	var unknownErr *UnknownItError
	if _, ok := err.(*UnknownItError); !ok {
		t.Errorf("ParseIt error should be *UnknownItError, got %T", err)
		_ = unknownErr
	}
}
