package net

// Range is the half-open interval [Start, End) of sample indices.
type Range struct {
	Start, End int
}

// Len returns the number of samples in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// SplitRanges partitions [0, n) into k contiguous ranges whose lengths differ
// by at most one. The first n%k ranges hold the extra sample. When k > n the
// trailing ranges are empty.
func SplitRanges(n, k int) []Range {
	if k < 1 {
		return nil
	}

	ranges := make([]Range, k)
	size, extra := n/k, n%k
	start := 0
	for i := range ranges {
		end := start + size
		if i < extra {
			end++
		}
		ranges[i] = Range{Start: start, End: end}
		start = end
	}
	return ranges
}
