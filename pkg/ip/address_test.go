package ip

import (
	"errors"
	"math/big"
	"testing"

	"gotest.tools/assert"
)

func TestAddressFromBytes(t *testing.T) {
	a, err := AddressFromBytes([]byte{192, 0, 2, 1})
	assert.NilError(t, err)
	assert.Equal(t, a.Family(), V4)
	assert.Equal(t, a.String(), "192.0.2.1")

	b := make([]byte, 16)
	b[0], b[1], b[15] = 0x20, 0x01, 1
	a6, err := AddressFromBytes(b)
	assert.NilError(t, err)
	assert.Equal(t, a6.Family(), V6)
	assert.Equal(t, a6.Bits(), 128)

	for _, n := range []int{0, 3, 5, 15, 17} {
		_, err := AddressFromBytes(make([]byte, n))
		assert.Assert(t, errors.Is(err, ErrInvalidAddress), "len %d", n)
	}
}

func TestAddressFromBigInt(t *testing.T) {
	a, err := AddressFromBigInt(big.NewInt(0xc0000201), V4)
	assert.NilError(t, err)
	assert.Equal(t, a.String(), "192.0.2.1")
	assert.Equal(t, a.BigInt().Int64(), int64(0xc0000201))

	// 2^32 fits IPv6 but not IPv4.
	over := new(big.Int).Lsh(big.NewInt(1), 32)
	_, err = AddressFromBigInt(over, V4)
	assert.Assert(t, errors.Is(err, ErrInvalidAddress))
	_, err = AddressFromBigInt(over, V6)
	assert.NilError(t, err)

	// 2^128 fits neither.
	_, err = AddressFromBigInt(new(big.Int).Lsh(big.NewInt(1), 128), V6)
	assert.Assert(t, errors.Is(err, ErrInvalidAddress))

	_, err = AddressFromBigInt(big.NewInt(-1), V4)
	assert.Assert(t, errors.Is(err, ErrInvalidAddress))
}

func TestAddressBigIntRoundTrip(t *testing.T) {
	max6 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	a, err := AddressFromBigInt(max6, V6)
	assert.NilError(t, err)
	assert.Equal(t, a.BigInt().Cmp(max6), 0)
	assert.Equal(t, a.String(), "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
}

func TestAddressEquality(t *testing.T) {
	// Numerically equal addresses of different families never compare
	// equal.
	v4a := MustAddressFromBigInt(big.NewInt(1), V4)
	v6a := MustAddressFromBigInt(big.NewInt(1), V6)
	assert.Assert(t, v4a != v6a)
	assert.Equal(t, v4a, MustParseAddress("0.0.0.1"))
	assert.Equal(t, v6a, MustParseAddress("::1"))
}

func TestZeroAddress(t *testing.T) {
	// The zero value behaves like 0.0.0.0 throughout the API ...
	var zero Address
	assert.Equal(t, zero.Family(), V4)
	assert.Equal(t, zero.Bits(), 32)
	assert.Equal(t, zero.String(), "0.0.0.0")
	assert.Equal(t, zero.BigInt().Sign(), 0)
	assert.Equal(t, MustAddressFromBytes(zero.Bytes()),
		MustParseAddress("0.0.0.0"))

	// ... but is not == to a parsed 0.0.0.0. Compare constructed values.
	assert.Assert(t, zero != MustParseAddress("0.0.0.0"))
}

func TestAddressOrder(t *testing.T) {
	a := MustParseAddress("10.0.0.1")
	b := MustParseAddress("10.0.0.2")
	c := MustParseAddress("::1")
	assert.Assert(t, a.Less(b))
	assert.Assert(t, !b.Less(a))
	// IPv4 sorts before IPv6 regardless of value.
	assert.Assert(t, b.Less(c))
}

func TestAddressNextPrev(t *testing.T) {
	a := MustParseAddress("192.0.2.255")
	assert.Equal(t, a.Next().String(), "192.0.3.0")
	assert.Equal(t, a.Next().Prev(), a)

	// Saturation at the family bounds.
	top := MustParseAddress("255.255.255.255")
	assert.Equal(t, top.Next(), top)
	zero := MustParseAddress("0.0.0.0")
	assert.Equal(t, zero.Prev(), zero)

	top6 := MustParseAddress("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
	assert.Equal(t, top6.Next(), top6)
}

func TestAddressBytesRoundTrip(t *testing.T) {
	for _, s := range []string{"0.0.0.0", "192.0.2.128", "::", "2001:db8::1"} {
		a := MustParseAddress(s)
		assert.Equal(t, MustAddressFromBytes(a.Bytes()), a)
	}
}

func TestAddressText(t *testing.T) {
	a := MustParseAddress("2001:db8::1")
	text, err := a.MarshalText()
	assert.NilError(t, err)
	assert.Equal(t, string(text), "2001:db8::1")

	var b Address
	assert.NilError(t, b.UnmarshalText(text))
	assert.Equal(t, b, a)

	var c Address
	assert.Assert(t, errors.Is(c.UnmarshalText([]byte("not-an-ip")),
		ErrInvalidAddress))
}
