package ip

import (
	"testing"

	"gotest.tools/assert"
)

func TestMaskRoundTrip(t *testing.T) {
	for _, width := range []int{32, 128} {
		for length := 0; length <= width; length++ {
			m := maskFromLength(length, width)
			assert.Equal(t, lengthFromMask(m), length,
				"width %d length %d", width, length)
			assert.Assert(t, isContiguousMask(m, width))
		}
	}
}

func TestMaskBoundaries(t *testing.T) {
	assert.Equal(t, maskFromLength(0, 32), uint128{})
	assert.Equal(t, maskFromLength(32, 32), uint128{0, 0xffffffff})
	assert.Equal(t, maskFromLength(24, 32), uint128{0, 0xffffff00})

	assert.Equal(t, maskFromLength(0, 128), uint128{})
	assert.Equal(t, maskFromLength(128, 128), uint128{^uint64(0), ^uint64(0)})
	assert.Equal(t, maskFromLength(64, 128), uint128{^uint64(0), 0})
}

func TestMaskContiguity(t *testing.T) {
	// 250.250.250.0: same popcount as a real mask, wrong shape.
	bad := uint128{0, 0xfafafa00}
	assert.Assert(t, !isContiguousMask(bad, 32))
	assert.Equal(t, lengthFromMask(bad), 18) // misleading, which is why callers must check
}

func TestFullMask(t *testing.T) {
	assert.Equal(t, fullMask(32), uint128{0, 0xffffffff})
	assert.Equal(t, fullMask(128), uint128{^uint64(0), ^uint64(0)})
}
