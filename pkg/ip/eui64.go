package ip

import (
	"encoding/binary"
	"fmt"
)

// eui64Interface derives the modified EUI-64 interface identifier from a
// 48 bit MAC: the two 24 bit halves with 0xfffe inserted between them
// and the universal/local bit of the first octet flipped (RFC 4291
// appendix A).
func eui64Interface(mac MAC) uint64 {
	b := [8]byte{
		mac[0] ^ 0x02, mac[1], mac[2],
		0xff, 0xfe,
		mac[3], mac[4], mac[5],
	}
	return binary.BigEndian.Uint64(b[:])
}

// EUI64 returns the SLAAC-style host address of mac inside p. Only /64
// IPv6 prefixes carry EUI-64 interface identifiers; anything else is
// ErrInvalidPrefix.
func EUI64(p Prefix, mac MAC) (Address, error) {
	if p.Family() != V6 || p.Length() != 64 {
		return Address{}, fmt.Errorf(
			"%w: EUI-64 needs an IPv6 /64, got %s", ErrInvalidPrefix, p)
	}
	return Address{
		value:  uint128{p.First().value.hi, eui64Interface(mac)},
		family: V6,
	}, nil
}
