package score

// Hit is one pre-digested alignment record between two sequences.
//
// HasEValue selects the scoring formula: when true, EValue alone determines
// the score; otherwise PercentIdentity × QueryCoverage does.
type Hit struct {
	Query           string
	Subject         string
	PercentIdentity float64
	QueryCoverage   float64
	EValue          float64
	HasEValue       bool
}

// SelfHit reports whether the hit aligns a sequence against itself.
// Self hits carry no clustering information and are dropped before the graph.
func (h Hit) SelfHit() bool { return h.Query == h.Subject }

// Score computes the normalized edge score for h.
func (h Hit) Score() (float64, error) {
	if h.HasEValue {
		return FromEValue(h.EValue)
	}

	return FromIdentityCoverage(h.PercentIdentity, h.QueryCoverage)
}
