package ip

import (
	"crypto/sha1"
	"encoding/binary"
	"time"
)

// ntpEpochOffset is the number of seconds between the NTP epoch
// (1900-01-01) and the Unix epoch (1970-01-01).
const ntpEpochOffset = 2208988800

// GenerateULA produces an RFC 4193 Unique Local Address /64 prefix. The
// global ID is the low 40 bits of SHA-1 over the 64 bit NTP timestamp of
// "at" concatenated with the EUI-64 of mac; subnetID fills the site
// subnet field. locallyAssigned sets the L bit, giving fd00::/8 instead
// of the reserved fc00::/8. Passing the timestamp in keeps generation
// deterministic for callers that need reproducibility.
func GenerateULA(mac MAC, subnetID uint16, locallyAssigned bool, at time.Time) Prefix {
	secs := uint64(at.Unix()) + ntpEpochOffset
	frac := uint64(at.Nanosecond()) << 32 / uint64(time.Second)
	ts := secs<<32 | frac

	var seed [16]byte
	binary.BigEndian.PutUint64(seed[:8], ts)
	binary.BigEndian.PutUint64(seed[8:], eui64Interface(mac))
	digest := sha1.Sum(seed[:])

	// Low 40 bits of the digest become the global ID.
	var globalID uint64
	for _, b := range digest[len(digest)-5:] {
		globalID = globalID<<8 | uint64(b)
	}

	first := uint64(0xfc)
	if locallyAssigned {
		first = 0xfd
	}
	hi := first<<56 | globalID<<16 | uint64(subnetID)
	addr := Address{value: uint128{hi, 0}, family: V6}
	return MustNewPrefix(addr, 64)
}
