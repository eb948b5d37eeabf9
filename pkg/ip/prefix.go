package ip

import (
	"fmt"
	"math/big"
	"strconv"
)

// Prefix is an immutable CIDR prefix: a base address plus a contiguous
// subnet mask of matching width. The base is stored exactly as supplied;
// every derived operation masks it first, so a prefix built from
// 192.0.2.128/24 behaves like 192.0.2.0/24 while String still
// round-trips the original text. Prefix is comparable: two prefixes are
// equal iff base and mask are equal.
type Prefix struct {
	base Address
	mask uint128
}

// NewPrefix builds a prefix from a base address and a bit length.
// The length must lie in 0..32 for IPv4 and 0..128 for IPv6.
func NewPrefix(addr Address, length int) (Prefix, error) {
	if length < 0 || length > addr.Bits() {
		return Prefix{}, fmt.Errorf("%w: length %d out of range for %s",
			ErrInvalidPrefix, length, addr.Family())
	}
	return Prefix{
		base: addr.norm(),
		mask: maskFromLength(length, addr.Bits()),
	}, nil
}

// MustNewPrefix is NewPrefix for prefixes known to be valid; it panics
// on error.
func MustNewPrefix(addr Address, length int) Prefix {
	p, err := NewPrefix(addr, length)
	if err != nil {
		panic(err)
	}
	return p
}

// Base returns the base address as supplied at construction, host bits
// included.
func (p Prefix) Base() Address { return p.base.norm() }

// Family returns the address family of the prefix.
func (p Prefix) Family() Family { return p.base.Family() }

// Bits returns the address width of the prefix's family.
func (p Prefix) Bits() int { return p.base.Bits() }

// Length returns the prefix bit length.
func (p Prefix) Length() int { return lengthFromMask(p.mask) }

// Mask returns the subnet mask as an unsigned integer.
func (p Prefix) Mask() *big.Int {
	return Address{value: p.mask, family: p.Family()}.BigInt()
}

// First returns the network address, the base with all host bits zeroed.
func (p Prefix) First() Address {
	return Address{value: p.base.value.and(p.mask), family: p.Family()}
}

// Last returns the highest address of the prefix. For IPv4 this is the
// broadcast address. The mask complement is taken within the family
// width, never the backing integer width.
func (p Prefix) Last() Address {
	host := p.mask.not().and(fullMask(p.Bits()))
	return Address{
		value:  p.base.value.and(p.mask).or(host),
		family: p.Family(),
	}
}

// ContainsAddress reports whether a lies inside p. Addresses of the
// other family are never contained; no error is raised for them.
func (p Prefix) ContainsAddress(a Address) bool {
	if a.Family() != p.Family() {
		return false
	}
	first := p.First().value
	last := p.Last().value
	return !a.value.less(first) && !last.less(a.value)
}

// ContainsPrefix reports whether inner lies entirely inside p. Every
// prefix contains itself.
func (p Prefix) ContainsPrefix(inner Prefix) bool {
	if inner.Family() != p.Family() {
		return false
	}
	return !inner.First().value.less(p.First().value) &&
		!p.Last().value.less(inner.Last().value)
}

// Overlaps reports whether p and q share any address.
func (p Prefix) Overlaps(q Prefix) bool {
	return p.ContainsAddress(q.First()) || q.ContainsAddress(p.First())
}

// Space returns the number of addresses in the prefix. A v6 /0 holds
// 2^128 addresses, one more than any fixed 128 bit integer can count.
func (p Prefix) Space() *big.Int {
	host := uint(p.Bits() - p.Length())
	return new(big.Int).Lsh(big.NewInt(1), host)
}

// Usable returns the number of host-assignable addresses. IPv4 excludes
// the network and broadcast addresses, uniformly even at /31 and /32
// where the count comes out as 0 and -1. IPv6 has no such convention and
// returns Space unchanged.
func (p Prefix) Usable() *big.Int {
	s := p.Space()
	if p.Family() == V4 {
		s.Sub(s, big.NewInt(2))
	}
	return s
}

// String formats the prefix as base/length with the base as supplied at
// construction.
func (p Prefix) String() string {
	return p.Base().String() + "/" + strconv.Itoa(p.Length())
}

// MarshalText implements encoding.TextMarshaler.
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be in
// a form accepted by ParsePrefix.
func (p *Prefix) UnmarshalText(text []byte) error {
	parsed, err := ParsePrefix(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
