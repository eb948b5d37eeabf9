// Package update implements the update-iana-scopes tool. It fetches the
// IANA v4/v6 special-purpose registries and regenerates the YAML scope
// table consumed by pkg/scope.
package update

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ipkit/ipkit/pkg/fileop"
	"github.com/ipkit/ipkit/pkg/iana"
	"github.com/ipkit/ipkit/pkg/oslink"
	"github.com/octago/sflags"
	"github.com/octago/sflags/gen/gpflag"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the tool options, parsed from struct tags.
type Config struct {
	V4URL   string        `flag:"v4-url"`
	V6URL   string        `flag:"v6-url"`
	Output  string        `flag:"output o"`
	Timeout time.Duration `flag:"timeout"`
	Quiet   bool          `flag:"quiet q"`
}

func defaultOptions(fs *flag.FlagSet) *Config {
	cfg := &Config{
		V4URL:   iana.V4RegistryURL,
		V6URL:   iana.V6RegistryURL,
		Output:  "pkg/scope/scopes.yaml",
		Timeout: 30 * time.Second,
		Quiet:   false,
	}
	err := gpflag.ParseTo(cfg, fs, sflags.FlagDivider("-"))
	if err != nil {
		panic(err)
	}
	return cfg
}

type tableYAML struct {
	V4 []iana.Entry `yaml:"v4"`
	V6 []iana.Entry `yaml:"v6"`
}

// catch-all rows appended after the registry entries, so classification
// always falls through to a match.
var (
	catchAll4 = iana.Entry{Prefix: "0.0.0.0/0", Label: "GLOBAL UNICAST"}
	catchAll6 = iana.Entry{Prefix: "::/0", Label: "GLOBAL UNICAST"}
)

func Main(d oslink.Data) int {
	fs := flag.NewFlagSet(d.Args[0], flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(d.Stderr, "Usage: %s [options]\n", d.Args[0])
		fs.PrintDefaults()
	}
	cfg := defaultOptions(fs)
	if err := fs.Parse(d.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 1
		}
		fmt.Fprintf(d.Stderr, "Error: %s\n", err)
		fs.Usage()
		return 1
	}
	if fs.Arg(0) != "" {
		fmt.Fprintf(d.Stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return 1
	}

	ctx := context.Background()
	v4Entries, err := loadRegistry(ctx, cfg, d, cfg.V4URL, false)
	if err != nil {
		fmt.Fprintf(d.Stderr, "Error: %s\n", err)
		return 1
	}
	v6Entries, err := loadRegistry(ctx, cfg, d, cfg.V6URL, true)
	if err != nil {
		fmt.Fprintf(d.Stderr, "Error: %s\n", err)
		return 1
	}
	table := tableYAML{
		V4: append(v4Entries, catchAll4),
		V6: append(v6Entries, catchAll6),
	}
	data, err := yaml.Marshal(table)
	if err != nil {
		fmt.Fprintf(d.Stderr, "Error: %s\n", err)
		return 1
	}
	if err := fileop.Overwrite(cfg.Output, data); err != nil {
		fmt.Fprintf(d.Stderr, "Error: %s\n", err)
		return 1
	}
	if !cfg.Quiet {
		fmt.Fprintf(d.Stderr, "Wrote %d v4 and %d v6 entries to %s\n",
			len(table.V4), len(table.V6), cfg.Output)
	}
	return 0
}

func loadRegistry(ctx context.Context, cfg *Config, d oslink.Data,
	url string, v6 bool) ([]iana.Entry, error) {

	if !cfg.Quiet {
		fmt.Fprintf(d.Stderr, "Fetching %s\n", url)
	}
	body, err := iana.Fetch(ctx, url, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	recs, err := iana.ParseRegistry(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	entries, err := iana.Normalize(recs, v6)
	if err != nil {
		return nil, err
	}
	iana.SortEntries(entries)
	return entries, nil
}
