package scope

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/ipkit/ipkit/pkg/ip"
)

//go:embed scopes.yaml
var builtin []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded IANA registry data.
// It is constructed exactly once, on first use, and never mutated; a
// corrupt embedded file is a build defect and panics.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := LoadTable(bytes.NewReader(builtin))
		if err != nil {
			panic("scope: embedded table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// AddressScope classifies a against the default table.
func AddressScope(a ip.Address) string {
	return Default().AddressScope(a)
}

// PrefixScope classifies p against the default table.
func PrefixScope(p ip.Prefix) string {
	return Default().PrefixScope(p)
}
