package ip

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"net/netip"
)

// Family selects the IP version of an Address.
type Family uint8

const (
	V4 Family = 4
	V6 Family = 6
)

// Bits returns the address width of the family.
func (f Family) Bits() int {
	if f == V4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	if f == V4 {
		return "IPv4"
	}
	return "IPv6"
}

// Address is an immutable IPv4 or IPv6 address. It is a comparable value
// type; addresses of different families are never equal, even when their
// numeric values coincide. The zero Address behaves like the IPv4 address
// 0.0.0.0, but compares unequal to one obtained from a constructor or
// parser; compare constructed values with each other.
type Address struct {
	value  uint128
	family Family
}

func (a Address) norm() Address {
	if a.family != V6 {
		a.family = V4
	}
	return a
}

// AddressFromBytes builds an Address from a packed big-endian byte
// sequence of length 4 (IPv4) or 16 (IPv6).
func AddressFromBytes(b []byte) (Address, error) {
	switch len(b) {
	case 4:
		return Address{
			value:  uint128{0, uint64(binary.BigEndian.Uint32(b))},
			family: V4,
		}, nil
	case 16:
		return Address{
			value: uint128{
				binary.BigEndian.Uint64(b[:8]),
				binary.BigEndian.Uint64(b[8:]),
			},
			family: V6,
		}, nil
	}
	return Address{}, fmt.Errorf("%w: need 4 or 16 bytes, got %d",
		ErrInvalidAddress, len(b))
}

// AddressFromBigInt builds an Address of the given family from an
// unsigned integer, rejecting negative values and values exceeding the
// family's bit width.
func AddressFromBigInt(i *big.Int, f Family) (Address, error) {
	f = normFamily(f)
	if i.Sign() < 0 || i.BitLen() > f.Bits() {
		return Address{}, fmt.Errorf("%w: %s out of range for %s",
			ErrInvalidAddress, i, f)
	}
	var b [16]byte
	i.FillBytes(b[:])
	return Address{
		value: uint128{
			binary.BigEndian.Uint64(b[:8]),
			binary.BigEndian.Uint64(b[8:]),
		},
		family: f,
	}, nil
}

// MustAddressFromBytes is AddressFromBytes for sequences known to be
// valid; it panics on error.
func MustAddressFromBytes(b []byte) Address {
	a, err := AddressFromBytes(b)
	if err != nil {
		panic(err)
	}
	return a
}

// MustAddressFromBigInt is AddressFromBigInt for values known to be in
// range; it panics on error.
func MustAddressFromBigInt(i *big.Int, f Family) Address {
	a, err := AddressFromBigInt(i, f)
	if err != nil {
		panic(err)
	}
	return a
}

func normFamily(f Family) Family {
	if f != V6 {
		return V4
	}
	return f
}

// Family returns V4 or V6.
func (a Address) Family() Family { return a.norm().family }

// Bits returns the address width, 32 or 128.
func (a Address) Bits() int { return a.Family().Bits() }

// Bytes returns the packed big-endian representation, 4 or 16 bytes.
func (a Address) Bytes() []byte {
	if a.Family() == V4 {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(a.value.lo))
		return b
	}
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], a.value.hi)
	binary.BigEndian.PutUint64(b[8:], a.value.lo)
	return b
}

// BigInt returns the numeric value of the address.
func (a Address) BigInt() *big.Int {
	i := new(big.Int).SetUint64(a.value.hi)
	i.Lsh(i, 64)
	return i.Or(i, new(big.Int).SetUint64(a.value.lo))
}

// Less orders addresses by family (IPv4 before IPv6), then numerically.
func (a Address) Less(b Address) bool {
	a, b = a.norm(), b.norm()
	if a.family != b.family {
		return a.family < b.family
	}
	return a.value.less(b.value)
}

// Next returns the following address, saturating at the highest address
// of the family.
func (a Address) Next() Address {
	a = a.norm()
	if a.value == fullMask(a.Bits()) {
		return a
	}
	a.value = a.value.add(uint128{0, 1})
	return a
}

// Prev returns the preceding address, saturating at zero.
func (a Address) Prev() Address {
	a = a.norm()
	if a.value.isZero() {
		return a
	}
	a.value = a.value.sub(uint128{0, 1})
	return a
}

func (a Address) netip() netip.Addr {
	if a.Family() == V4 {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(a.value.lo))
		return netip.AddrFrom4(b)
	}
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], a.value.hi)
	binary.BigEndian.PutUint64(b[8:], a.value.lo)
	return netip.AddrFrom16(b)
}

// String formats IPv4 as dotted quad and IPv6 in RFC 5952 compressed
// form (zero-run compression, lower case, no leading zeros).
func (a Address) String() string {
	return a.netip().String()
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be in
// a form accepted by ParseAddress.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// v4 builds an IPv4 address from its numeric value.
func v4(value uint32) Address {
	return Address{value: uint128{0, uint64(value)}, family: V4}
}
