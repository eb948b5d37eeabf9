// Package iana reads the IANA special-purpose address registries and
// turns them into the ordered (prefix, label) rows the scope tables are
// built from.
package iana

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"inet.af/netaddr"
)

// Registry download locations.
const (
	V4RegistryURL = "https://www.iana.org/assignments/iana-ipv4-special-registry/iana-ipv4-special-registry.xml"
	V6RegistryURL = "https://www.iana.org/assignments/iana-ipv6-special-registry/iana-ipv6-special-registry.xml"
)

// Record is one registry row as published: an address block spec, which
// may list several comma-separated blocks, and its name.
type Record struct {
	Address string
	Name    string
}

type xmlRegistry struct {
	Title      string        `xml:"title"`
	Records    []xmlRecord   `xml:"record"`
	Registries []xmlRegistry `xml:"registry"`
}

type xmlRecord struct {
	Address string `xml:"address"`
	Name    string `xml:"name"`
}

// ParseRegistry decodes a registry XML document. Records of nested
// sub-registries are flattened depth-first, keeping publication order.
func ParseRegistry(r io.Reader) ([]Record, error) {
	var root xmlRegistry
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding registry: %v", err)
	}
	var recs []Record
	var walk func(reg xmlRegistry)
	walk = func(reg xmlRegistry) {
		for _, rec := range reg.Records {
			recs = append(recs, Record{
				Address: strings.TrimSpace(rec.Address),
				Name:    strings.TrimSpace(rec.Name),
			})
		}
		for _, sub := range reg.Registries {
			walk(sub)
		}
	}
	walk(root)
	if len(recs) == 0 {
		return nil, fmt.Errorf("registry %q has no records", root.Title)
	}
	return recs, nil
}

// Entry is a normalized registry row: one canonical CIDR prefix in text
// form plus its classification label.
type Entry struct {
	Prefix string `yaml:"prefix"`
	Label  string `yaml:"label"`
}

// Footnote references like "[2]" trail both addresses and names.
var footnoteRE = regexp.MustCompile(`\s*\[\d+\]`)

// Parenthesized qualifiers like "(TEST-NET-1)" are dropped from labels.
var parenRE = regexp.MustCompile(`\s*\([^)]*\)`)

// Normalize expands each record into one Entry per listed block. Specs
// are validated and canonicalized with inet.af/netaddr rather than this
// module's own prefix code, so a bug there cannot leak into the
// generated table the library is later tested against. Records whose
// blocks belong to the other family are rejected.
func Normalize(recs []Record, v6 bool) ([]Entry, error) {
	var entries []Entry
	for _, rec := range recs {
		label := labelFromName(rec.Name)
		spec := footnoteRE.ReplaceAllString(rec.Address, "")
		for _, block := range strings.Split(spec, ",") {
			block = strings.TrimSpace(block)
			if block == "" {
				continue
			}
			if !strings.ContainsRune(block, '/') {
				if v6 {
					block += "/128"
				} else {
					block += "/32"
				}
			}
			p, err := netaddr.ParseIPPrefix(block)
			if err != nil {
				return nil, fmt.Errorf("record %q: %v", rec.Address, err)
			}
			if p.IP().Is4() == v6 {
				return nil, fmt.Errorf("record %q: wrong address family",
					rec.Address)
			}
			entries = append(entries, Entry{
				Prefix: p.Masked().String(),
				Label:  label,
			})
		}
	}
	return entries, nil
}

// labelFromName uppercases a registry name, minus footnotes and
// parenthesized qualifiers, collapsing leftover whitespace.
func labelFromName(name string) string {
	s := footnoteRE.ReplaceAllString(name, "")
	s = parenRE.ReplaceAllString(s, "")
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// SortEntries orders entries most-specific first, keeping registry order
// among equal lengths. With a first-match classifier this makes the
// specific registrations win over wider ones, and any /0 sort last.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return prefixBits(entries[i].Prefix) > prefixBits(entries[j].Prefix)
	})
}

func prefixBits(s string) int {
	p, err := netaddr.ParseIPPrefix(s)
	if err != nil {
		return -1
	}
	return int(p.Bits())
}
