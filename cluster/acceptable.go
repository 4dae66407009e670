package cluster

// Acceptable reports whether a member pair with transitive similarities
// dIn and dOut may coexist in one cluster under threshold.
//
// It fails when both directions carry partial evidence below threshold, or
// when the combined evidence is positive but still below threshold. A pair
// with no evidence in either direction passes.
func Acceptable(dIn, dOut, threshold float64) bool {
	if dIn > 0 && dIn < threshold && dOut > 0 && dOut < threshold {
		return false
	}
	if sum := dIn + dOut; sum > 0 && sum < threshold {
		return false
	}

	return true
}

// pruneBound returns threshold/maxBridge, substituting 1 for an empty side.
// Existing distances at or below the bound cannot lift a product over threshold.
func pruneBound(threshold, maxBridge float64) float64 {
	if maxBridge <= 0 {
		maxBridge = 1
	}

	return threshold / maxBridge
}
