package ip

import "math/bits"

// uint128 is an unsigned 128 bit integer held as two 64 bit halves.
// It backs both address families; IPv4 values live in the low 32 bits.
// All arithmetic is exact-width modulo 2^128.
type uint128 struct {
	hi uint64
	lo uint64
}

func (u uint128) and(v uint128) uint128 { return uint128{u.hi & v.hi, u.lo & v.lo} }
func (u uint128) or(v uint128) uint128  { return uint128{u.hi | v.hi, u.lo | v.lo} }
func (u uint128) xor(v uint128) uint128 { return uint128{u.hi ^ v.hi, u.lo ^ v.lo} }
func (u uint128) not() uint128          { return uint128{^u.hi, ^u.lo} }

func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi, lo}
}

func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi, lo}
}

// lsh shifts u left by n bits. Shift counts of 128 or more yield zero,
// so callers never hit shift-by-width traps.
func (u uint128) lsh(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{u.lo << (n - 64), 0}
	case n == 0:
		return u
	}
	return uint128{u.hi<<n | u.lo>>(64-n), u.lo << n}
}

// rsh shifts u right by n bits, with the same guarantees as lsh.
func (u uint128) rsh(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{0, u.hi >> (n - 64)}
	case n == 0:
		return u
	}
	return uint128{u.hi >> n, u.lo>>n | u.hi<<(64-n)}
}

func (u uint128) isZero() bool { return u.hi == 0 && u.lo == 0 }

func (u uint128) less(v uint128) bool {
	if u.hi != v.hi {
		return u.hi < v.hi
	}
	return u.lo < v.lo
}

func (u uint128) onesCount() int {
	return bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo)
}
