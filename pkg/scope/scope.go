// Package scope classifies addresses and prefixes against ordered
// tables of special-purpose address registrations.
//
// Classification is a first-match scan, not a longest-prefix match: the
// table author orders specific entries before catch-alls. The tables are
// small and curated, so no routing-scale structure is needed or wanted.
package scope

import (
	"fmt"
	"io"

	"github.com/ipkit/ipkit/pkg/ip"
	"gopkg.in/yaml.v3"
)

// GlobalUnicast is the fall-through label when no table entry matches.
const GlobalUnicast = "GLOBAL UNICAST"

// Entry is one row of a classification table.
type Entry struct {
	Prefix ip.Prefix
	Label  string
}

// Table holds the per-family entry lists. A Table is immutable after
// NewTable and safe for concurrent readers.
type Table struct {
	v4, v6 []Entry
}

// NewTable splits entries by family, preserving their order within each
// family. Order decides ties: when several entries contain the same
// address, the earliest wins.
func NewTable(entries []Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		if e.Prefix.Family() == ip.V4 {
			t.v4 = append(t.v4, e)
		} else {
			t.v6 = append(t.v6, e)
		}
	}
	return t
}

// Entries returns the rows for one family in table order.
func (t *Table) Entries(f ip.Family) []Entry {
	if f == ip.V4 {
		return t.v4
	}
	return t.v6
}

// AddressScope returns the label of the first entry containing a, or
// GlobalUnicast when none does. It never fails.
func (t *Table) AddressScope(a ip.Address) string {
	for _, e := range t.Entries(a.Family()) {
		if e.Prefix.ContainsAddress(a) {
			return e.Label
		}
	}
	return GlobalUnicast
}

// PrefixScope returns the label of the first entry that entirely
// contains p; overlap is not enough. Falls through to GlobalUnicast.
func (t *Table) PrefixScope(p ip.Prefix) string {
	for _, e := range t.Entries(p.Family()) {
		if e.Prefix.ContainsPrefix(p) {
			return e.Label
		}
	}
	return GlobalUnicast
}

// tableYAML is the on-disk table format, also emitted by the
// update-iana-scopes tool.
type tableYAML struct {
	V4 []entryYAML `yaml:"v4"`
	V6 []entryYAML `yaml:"v6"`
}

type entryYAML struct {
	Prefix string `yaml:"prefix"`
	Label  string `yaml:"label"`
}

// LoadTable reads a YAML table with per-family entry lists. Entry order
// in the file is kept; prefixes listed under the wrong family are
// rejected.
func LoadTable(r io.Reader) (*Table, error) {
	var raw tableYAML
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reading scope table: %v", err)
	}
	var entries []Entry
	for _, section := range []struct {
		family ip.Family
		rows   []entryYAML
	}{
		{ip.V4, raw.V4},
		{ip.V6, raw.V6},
	} {
		for _, row := range section.rows {
			p, err := ip.ParsePrefix(row.Prefix)
			if err != nil {
				return nil, fmt.Errorf("scope table entry %q: %v", row.Prefix, err)
			}
			if p.Family() != section.family {
				return nil, fmt.Errorf("scope table entry %q is not %s",
					row.Prefix, section.family)
			}
			entries = append(entries, Entry{Prefix: p, Label: row.Label})
		}
	}
	return NewTable(entries), nil
}
