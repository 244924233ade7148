package ledger

// Filter selects movements of one account. From and To are inclusive bounds
// on Data compared as strings; an empty bound is not applied.
type Filter struct {
	Codigo string
	From   string
	To     string
}

// Match reports whether m is selected. A movement without data never
// satisfies a bound.
func (f Filter) Match(m Movement) bool {
	if m.CodigoConta != f.Codigo {
		return false
	}
	if (f.From != "" || f.To != "") && !m.HasData() {
		return false
	}
	if f.From != "" && m.Data < f.From {
		return false
	}
	if f.To != "" && m.Data > f.To {
		return false
	}
	return true
}
