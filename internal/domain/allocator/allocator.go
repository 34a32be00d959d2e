package allocator

import "math"

// SetQuantity sets one category to newQuantity and reallocates the remaining
// pieces across the other categories proportionally to their pre-edit
// counts. The returned distribution always sums to requiredTotal.
//
// newQuantity is clamped to [0, requiredTotal]; out-of-range input comes
// from a user mid-typing and is never an error. The last category in
// iteration order absorbs the exact rounding remainder, so independent
// round-half-up of the earlier shares can never drift the total.
func SetQuantity(d Distribution, changed Category, newQuantity, requiredTotal int) Distribution {
	if requiredTotal < 0 {
		requiredTotal = 0
	}
	if !changed.Valid() {
		return d.normalized()
	}

	n := clamp(newQuantity, 0, requiredTotal)
	remaining := requiredTotal - n

	out := d.withCount(changed, n)
	others := othersOf(changed)

	if remaining == 0 {
		for _, c := range others {
			out = out.withCount(c, 0)
		}
		return out.normalized()
	}

	priorOtherTotal := 0
	for _, c := range others {
		priorOtherTotal += d.Count(c)
	}

	if priorOtherTotal > 0 {
		// Proportional shares for all but the last, which takes the
		// exact remainder.
		allocated := 0
		for _, c := range others[:len(others)-1] {
			share := roundHalfUp(float64(d.Count(c)) / float64(priorOtherTotal) * float64(remaining))
			out = out.withCount(c, share)
			allocated += share
		}
		out = out.withCount(others[len(others)-1], remaining-allocated)
		return out.normalized()
	}

	// Everything else was already zero: split evenly, modulus to the last.
	per := remaining / len(others)
	for _, c := range others[:len(others)-1] {
		out = out.withCount(c, per)
	}
	out = out.withCount(others[len(others)-1], per+remaining%len(others))
	return out.normalized()
}

// othersOf returns the categories besides changed, in iteration order.
func othersOf(changed Category) []Category {
	others := make([]Category, 0, len(categoryOrder)-1)
	for _, c := range categoryOrder {
		if c != changed {
			others = append(others, c)
		}
	}
	return others
}

// roundHalfUp rounds to the nearest integer with ties going up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
