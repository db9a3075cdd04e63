package prakriya

// maxRewritesPerPosition bounds the fixed-point iteration any character
// rule may perform at a single position, per spec.md §5's hard safety
// counter ("<=10 rewrites per character position per rule site").
const maxRewritesPerPosition = 10

// CharView wraps a Prakriya to support sound rules that apply within and
// across term boundaries by iterating over a flattened character view of
// the tape. It mirrors the upstream CharPrakriya: it caches the tape's
// concatenated text and only rebuilds it when a rule changes the
// underlying terms, so repeated character lookups don't re-flatten the
// tape on every step.
type CharView struct {
	p       *Prakriya
	text    string
	isStale bool
}

// NewCharView wraps p for character-level iteration.
func NewCharView(p *Prakriya) *CharView {
	return &CharView{p: p, text: p.Text()}
}

// P returns the wrapped Prakriya.
func (c *CharView) P() *Prakriya { return c.p }

func (c *CharView) refresh() {
	if c.isStale {
		c.text = c.p.Text()
		c.isStale = false
	}
}

// ForChars iterates left to right over every byte offset i in the tape's
// flattened text. Wherever filter(p, text, i) holds, operator(p, text, i)
// runs; if it reports a change, the text is re-flattened before the next
// offset is examined (so a rule can see the effect of the rule that just
// fired immediately to its left). A safety counter bounds the number of
// rewrites applied to any one position, panicking past the bound exactly
// as spec.md §5 specifies for debug builds.
func (c *CharView) ForChars(
	filter func(p *Prakriya, text string, i int) bool,
	operator func(p *Prakriya, text string, i int) bool,
) {
	c.refresh()

	changeCounter := 0
	i := 0
	length := len(c.text)
	for i < length {
		changed := false
		if filter(c.p, c.text, i) {
			changed = operator(c.p, c.text, i)
		}

		if changed {
			changeCounter++
			c.text = c.p.Text()
			length = len(c.text)
		} else {
			i++
			changeCounter = 0
		}

		if changeCounter > maxRewritesPerPosition {
			panic("prakriya: possible infinite loop in character rule")
		}
	}
}

// ForCharsRev is ForChars but iterating from the end of the tape backward.
// Some rules (e.g. 8.3.61's sa-tva-conditioning on a preceding san
// abhyasa) depend on right-to-left application order.
func (c *CharView) ForCharsRev(
	filter func(p *Prakriya, text string, i int) bool,
	operator func(p *Prakriya, text string, i int) bool,
) {
	c.refresh()

	if len(c.text) == 0 {
		return
	}

	changeCounter := 0
	i := len(c.text)
	for i > 0 {
		changed := false
		if filter(c.p, c.text, i-1) {
			changed = operator(c.p, c.text, i-1)
		}

		if changed {
			changeCounter++
			c.text = c.p.Text()
		} else {
			i--
			changeCounter = 0
		}

		if changeCounter > maxRewritesPerPosition {
			panic("prakriya: possible infinite loop in character rule")
		}
	}
}

// ForNonEmptyTerms visits every pair of adjacent non-empty terms (i, j)
// where j is the next non-empty term after i, and applies op when
// filter holds. Used by sandhi and samjna rules that reason about term
// boundaries rather than raw character offsets.
func (c *CharView) ForNonEmptyTerms(
	filter func(x, y *Term) bool,
	op func(p *Prakriya, i, j int),
) {
	n := len(c.p.terms)
	for i := 0; i < n-1; i++ {
		j := c.p.FindNextWhere(i, func(t *Term) bool { return !t.IsEmpty() })
		if j < 0 {
			continue
		}
		x := c.p.Get(i)
		y := c.p.Get(j)
		if x == nil || y == nil || x.IsEmpty() {
			continue
		}
		if filter(x, y) {
			op(c.p, i, j)
			c.isStale = true
		}
	}
}

// ForTerms visits every term index in order and applies fn, marking the
// cached text stale afterward.
func (c *CharView) ForTerms(fn func(p *Prakriya, i int)) {
	for i := 0; i < len(c.p.terms); i++ {
		fn(c.p, i)
	}
	c.isStale = true
}

// TermAndOffsetAt maps an absolute byte offset in the flattened tape text
// to the (term index, offset within that term's text) it falls in, or
// (-1, -1) if out of range.
func TermAndOffsetAt(p *Prakriya, absolute int) (termIndex, offset int) {
	cur := 0
	for i, t := range p.terms {
		delta := len(t.Text)
		if absolute >= cur && absolute < cur+delta {
			return i, absolute - cur
		}
		cur += delta
	}
	return -1, -1
}

// TermIndexAt returns the term index containing absolute byte offset
// index, or -1 if out of range.
func TermIndexAt(p *Prakriya, index int) int {
	i, _ := TermAndOffsetAt(p, index)
	return i
}

// XY returns a filter over two-character windows at offset i, i+1.
func XY(inner func(x, y byte) bool) func(p *Prakriya, text string, i int) bool {
	return func(_ *Prakriya, text string, i int) bool {
		if i+1 >= len(text) {
			return false
		}
		return inner(text[i], text[i+1])
	}
}

// XYZ returns a filter over three-character windows at offset i, i+1, i+2.
func XYZ(inner func(x, y, z byte) bool) func(p *Prakriya, text string, i int) bool {
	return func(_ *Prakriya, text string, i int) bool {
		if i+2 >= len(text) {
			return false
		}
		return inner(text[i], text[i+1], text[i+2])
	}
}
