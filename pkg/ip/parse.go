package ip

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddress parses dotted-quad IPv4 or colon-hex IPv6 text, including
// the :: zero-run compression. Zoned addresses (fe80::1%eth0) are
// rejected; this library has no notion of interfaces.
func ParseAddress(s string) (Address, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if a.Zone() != "" {
		return Address{}, fmt.Errorf("%w: %q has a zone", ErrInvalidAddress, s)
	}
	return AddressFromBytes(a.AsSlice())
}

// ParseAddressFamily parses like ParseAddress and additionally requires
// the given family.
func ParseAddressFamily(s string, f Family) (Address, error) {
	a, err := ParseAddress(s)
	if err != nil {
		return Address{}, err
	}
	if a.Family() != normFamily(f) {
		return Address{}, fmt.Errorf("%w: %q is not %s",
			ErrInvalidAddress, s, normFamily(f))
	}
	return a, nil
}

// MustParseAddress is ParseAddress for addresses known to be valid; it
// panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParsePrefix parses CIDR notation: an address, '/', and either a
// decimal bit length or, for IPv4 only, a dotted-quad subnet mask like
// 255.255.255.0. Dotted-quad masks must be contiguous; 250.250.250.0 is
// a parse error, not a prefix of surprising length.
func ParsePrefix(s string) (Prefix, error) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return Prefix{}, fmt.Errorf("%w: missing '/' in %q", ErrParse, s)
	}
	addr, err := ParseAddress(s[:i])
	if err != nil {
		return Prefix{}, err
	}
	return newPrefixFromMaskText(addr, s[i+1:])
}

func newPrefixFromMaskText(addr Address, mask string) (Prefix, error) {
	if strings.IndexByte(mask, '.') >= 0 {
		if addr.Family() != V4 {
			return Prefix{}, fmt.Errorf(
				"%w: dotted-quad mask %q on %s address", ErrParse, mask, V6)
		}
		m, err := ParseAddressFamily(mask, V4)
		if err != nil {
			return Prefix{}, fmt.Errorf("%w: bad mask %q", ErrParse, mask)
		}
		if !isContiguousMask(m.value, 32) {
			return Prefix{}, fmt.Errorf(
				"%w: non-contiguous mask %q", ErrParse, mask)
		}
		return NewPrefix(addr, lengthFromMask(m.value))
	}
	length, err := strconv.Atoi(mask)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: bad length %q", ErrParse, mask)
	}
	return NewPrefix(addr, length)
}

// MustParsePrefix is ParsePrefix for prefixes known to be valid; it
// panics on error.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MAC is a 48 bit hardware address, used to derive EUI-64 interface
// identifiers and ULA global IDs.
type MAC [6]byte

const hexDigits = "0123456789abcdefABCDEF"

// ParseMAC accepts any conventional MAC spelling (colon, dash or
// dot-hex separated) by stripping every non-hex rune and requiring
// exactly twelve hex digits to remain.
func ParseMAC(s string) (MAC, error) {
	var digits []byte
	for _, r := range s {
		if strings.ContainsRune(hexDigits, r) {
			digits = append(digits, byte(r))
		}
	}
	if len(digits) != 12 {
		return MAC{}, fmt.Errorf(
			"%w: %q has %d hex digits, need 12", ErrParse, s, len(digits))
	}
	var m MAC
	for i := range m {
		v, err := strconv.ParseUint(string(digits[2*i:2*i+2]), 16, 8)
		if err != nil {
			return MAC{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		m[i] = byte(v)
	}
	return m, nil
}

// MustParseMAC is ParseMAC for MACs known to be valid; it panics on
// error.
func MustParseMAC(s string) MAC {
	m, err := ParseMAC(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m MAC) String() string {
	var b strings.Builder
	for i, o := range m {
		if i > 0 {
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%02x", o)
	}
	return b.String()
}
