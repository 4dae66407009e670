// Package score converts pairwise alignment statistics into the single
// normalized similarity used as an edge score by package core.
//
// Two formulas are supported:
//
//	– e-value present:   1 − (log10(evalue) + 180) / 181
//	   • evalue == 0 is clamped to 1e-180 before the logarithm (no -Inf).
//	   • negative e-values are rejected with ErrBadEValue.
//	– e-value absent:    pident × qcovs / 10000
//	   • both inputs are percentages on a 0–100 scale (ErrBadPercent otherwise).
//
// Every result is clamped to [0,1], so scores share units with the
// clustering thresholds regardless of which formula produced them.
//
// Example usage:
//
//	h := score.Hit{Query: "q1", Subject: "s7", PercentIdentity: 98.5, QueryCoverage: 100}
//	s, err := h.Score()
package score
