package ip

// IPv6 transition mechanisms: 6to4 (RFC 3056) embeds an IPv4 address in
// bits 16..47 of a 2002::/16 address; Teredo (RFC 4380) packs a server
// address, flags, and an obfuscated client endpoint into a 2001::/32
// address.

import "fmt"

var (
	sixToFour = MustParsePrefix("2002::/16")
	teredoNet = MustParsePrefix("2001::/32")
)

// Is6to4 reports whether a lies in 2002::/16.
func Is6to4(a Address) bool { return sixToFour.ContainsAddress(a) }

// IsTeredo reports whether a lies in 2001::/32.
func IsTeredo(a Address) bool { return teredoNet.ContainsAddress(a) }

// To6to4 embeds an IPv4 address into its 6to4 equivalent,
// 2002:aabb:ccdd:: for a.b.c.d.
func To6to4(a Address) (Address, error) {
	if a.Family() != V4 {
		return Address{}, fmt.Errorf(
			"%w: 6to4 embeds IPv4, got %s", ErrInvalidAddress, a)
	}
	hi := uint64(0x2002)<<48 | a.value.lo<<16
	return Address{value: uint128{hi, 0}, family: V6}, nil
}

// From6to4 extracts the IPv4 address embedded in a 2002::/16 address.
func From6to4(a Address) (Address, error) {
	if !Is6to4(a) {
		return Address{}, fmt.Errorf(
			"%w: %s is not in %s", ErrInvalidAddress, a, sixToFour)
	}
	return v4(uint32(a.value.hi >> 16)), nil
}

// Teredo is the decoded form of a 2001::/32 address. Client and Port are
// stored bit-complemented on the wire; the decoded values here are the
// real endpoint.
type Teredo struct {
	Server Address
	Client Address
	Port   uint16
	Flags  uint16
}

// ParseTeredo decodes a Teredo address into its server, flags, and
// obfuscated client endpoint fields.
func ParseTeredo(a Address) (Teredo, error) {
	if !IsTeredo(a) {
		return Teredo{}, fmt.Errorf(
			"%w: %s is not in %s", ErrInvalidAddress, a, teredoNet)
	}
	return Teredo{
		Server: v4(uint32(a.value.hi)),
		Client: v4(^uint32(a.value.lo)),
		Port:   ^uint16(a.value.lo >> 32),
		Flags:  uint16(a.value.lo >> 48),
	}, nil
}
