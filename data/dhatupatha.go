package data

import (
	"encoding/csv"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
)

//go:embed dhatupatha/dhatupatha.tsv
var dhatupathaTSV string

// DhatupathaEntry is one row of a dhātupāṭha: a numbered code (e.g.
// "01.0001", gaṇa.position) paired with the dhātu it resolves to.
type DhatupathaEntry struct {
	Code  string
	Dhatu *dhatu.Dhatu
}

// Dhatupatha is a code-sorted table of dhātu entries, the same shape
// `_examples/original_source/vidyut-prakriya/src/dhatupatha.rs`'s
// `Dhatupatha` struct provides: `from_text`'s tab-separated "code, upadesha"
// format, looked up by exact code.
type Dhatupatha struct {
	entries []DhatupathaEntry
	byCode  map[string]int
}

// ParseDhatupatha reads tsv (header row "code\tupadesha", tab-separated,
// one dhātu per row) into a Dhatupatha. A code's gaṇa is its own first
// dotted field (e.g. "01" in "01.0001"), which this package's dhatu.Gana
// constants are ordered to match directly (Bhvadi=1 ... Curadi=10).
func ParseDhatupatha(tsv string) (*Dhatupatha, error) {
	r := csv.NewReader(strings.NewReader(tsv))
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: parse dhatupatha: %w", err)
	}
	if len(rows) == 0 {
		return &Dhatupatha{byCode: make(map[string]int)}, nil
	}

	d := &Dhatupatha{byCode: make(map[string]int)}
	for _, row := range rows[1:] { // skip header
		if len(row) < 2 || row[1] == "-" {
			continue
		}
		code, upadesha := row[0], row[1]

		ganaStr, _, ok := strings.Cut(code, ".")
		if !ok {
			return nil, fmt.Errorf("data: dhatupatha: malformed code %q", code)
		}
		ganaNum, err := strconv.Atoi(ganaStr)
		if err != nil {
			return nil, fmt.Errorf("data: dhatupatha: bad gana in code %q: %w", code, err)
		}
		gana, err := dhatu.GanaFromInt(ganaNum)
		if err != nil {
			return nil, fmt.Errorf("data: dhatupatha: code %q: %w", code, err)
		}

		d.byCode[code] = len(d.entries)
		d.entries = append(d.entries, DhatupathaEntry{Code: code, Dhatu: dhatu.New(upadesha, gana)})
	}
	return d, nil
}

// LoadDhatupatha parses the small sample dhātupāṭha embedded with this
// module (data/dhatupatha/dhatupatha.tsv). It exists to give `cmd/`
// drivers and tests a real, if small, dhātu table without needing a
// separately-distributed data file; a full dhātupāṭha covering every
// traditional root is future data-loading work, not engine work.
func LoadDhatupatha() (*Dhatupatha, error) {
	return ParseDhatupatha(dhatupathaTSV)
}

// Get returns the dhātu registered under code, or false if code is absent.
func (d *Dhatupatha) Get(code string) (*dhatu.Dhatu, bool) {
	i, ok := d.byCode[code]
	if !ok {
		return nil, false
	}
	return d.entries[i].Dhatu, true
}

// Entries returns every entry in file order.
func (d *Dhatupatha) Entries() []DhatupathaEntry { return d.entries }
