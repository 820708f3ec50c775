package gen

import "staygen/internal/fake"

// Quota arithmetic. All results are clamped so they never go negative.

// Floor returns max(requested, minimum).
func Floor(requested, minimum int) int {
	if requested < minimum {
		requested = minimum
	}
	if requested < 0 {
		return 0
	}
	return requested
}

// Scaled returns max(minimum, parents*factor).
func Scaled(parents, factor, minimum int) int {
	return Floor(parents*factor, minimum)
}

// ScaledF is Scaled with a fractional factor, truncated toward zero.
func ScaledF(parents int, factor float64, minimum int) int {
	return Floor(int(float64(parents)*factor), minimum)
}

// Distribute resolves per-parent child counts: every parent is guaranteed
// minPerParent children, and whatever remains of total is spread randomly.
// A total below the guaranteed floor is raised to it, so no parent is ever
// childless when children exist.
func Distribute(fp *fake.Provider, parents, total, minPerParent int) []int {
	if parents <= 0 {
		return nil
	}
	if minPerParent < 0 {
		minPerParent = 0
	}
	floor := parents * minPerParent
	if total < floor {
		total = floor
	}
	counts := make([]int, parents)
	for i := range counts {
		counts[i] = minPerParent
	}
	for remaining := total - floor; remaining > 0; remaining-- {
		counts[fp.Intn(parents)]++
	}
	return counts
}

// SpreadEvenly resolves per-parent counts for quotas distributed fairly:
// total/parents each, with the remainder going to the first parents.
func SpreadEvenly(total, parents int) []int {
	if parents <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	counts := make([]int, parents)
	base, rem := total/parents, total%parents
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}
