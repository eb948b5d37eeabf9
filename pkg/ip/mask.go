package ip

// fullMask returns the all-ones value of the given bit width (32 or 128).
// Complements of masks must be taken against this value, not against the
// full 128 bit backing integer, or IPv4 results leak into the high bits.
func fullMask(width int) uint128 {
	return uint128{^uint64(0), ^uint64(0)}.rsh(uint(128 - width))
}

// maskFromLength returns the mask with the top length bits of width set.
// Exact at both extremes: length 0 gives zero, length == width gives
// fullMask(width).
func maskFromLength(length, width int) uint128 {
	full := fullMask(width)
	return full.lsh(uint(width - length)).and(full)
}

// lengthFromMask counts the set bits of mask. The result is only
// meaningful for contiguous masks; callers constructing masks from
// untrusted input must check isContiguousMask first.
func lengthFromMask(mask uint128) int {
	return mask.onesCount()
}

// isContiguousMask reports whether mask is a run of ones from the most
// significant bit of the given width followed only by zeros.
func isContiguousMask(mask uint128, width int) bool {
	return mask == maskFromLength(mask.onesCount(), width)
}
