package score

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the scoring functions.
var (
	// ErrBadEValue indicates a negative or NaN e-value.
	ErrBadEValue = errors.New("score: e-value must be a non-negative number")

	// ErrBadPercent indicates a percentage outside [0,100] or NaN.
	ErrBadPercent = errors.New("score: percentage must lie in [0,100]")
)

const (
	// MinEValue is the clamp applied to zero e-values before log10.
	MinEValue = 1e-180

	// eValueSpan is the number of decades mapped onto [0,1].
	eValueSpan = 181

	// percentScale turns pident × qcovs (each 0–100) into a 0–1 score.
	percentScale = 10000
)

// FromEValue maps an e-value to a similarity score in [0,1].
// Lower e-values (more significant alignments) give higher scores;
// evalue == 0 scores exactly like MinEValue.
func FromEValue(evalue float64) (float64, error) {
	if math.IsNaN(evalue) || evalue < 0 {
		return 0, fmt.Errorf("%w: %v", ErrBadEValue, evalue)
	}
	if evalue == 0 {
		evalue = MinEValue
	}

	return clamp01(1 - (math.Log10(evalue)+180)/eValueSpan), nil
}

// FromIdentityCoverage maps percent identity and query coverage to a score in [0,1].
func FromIdentityCoverage(pident, qcovs float64) (float64, error) {
	if !validPercent(pident) {
		return 0, fmt.Errorf("%w: pident=%v", ErrBadPercent, pident)
	}
	if !validPercent(qcovs) {
		return 0, fmt.Errorf("%w: qcovs=%v", ErrBadPercent, qcovs)
	}

	return clamp01(pident * qcovs / percentScale), nil
}

func validPercent(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 100
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
