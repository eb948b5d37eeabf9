// Package classify implements the ipscope tool: look up the scope of
// addresses and prefixes given on the command line.
package classify

import (
	"fmt"
	"os"
	"strings"

	"github.com/ipkit/ipkit/pkg/fileop"
	"github.com/ipkit/ipkit/pkg/ip"
	"github.com/ipkit/ipkit/pkg/oslink"
	"github.com/ipkit/ipkit/pkg/scope"
	flag "github.com/spf13/pflag"
)

func Main(d oslink.Data) int {
	fs := flag.NewFlagSet(d.Args[0], flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(d.Stderr,
			"Usage: %s [options] ADDRESS|PREFIX ...\n", d.Args[0])
		fs.PrintDefaults()
	}
	tableFile := fs.StringP("table", "t", "",
		"Classify against a scope table read from this YAML file")
	quiet := fs.BoolP("quiet", "q", false, "Don't print the summary line")
	if err := fs.Parse(d.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 1
		}
		fmt.Fprintf(d.Stderr, "Error: %s\n", err)
		fs.Usage()
		return 1
	}
	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		return 1
	}

	table := scope.Default()
	if *tableFile != "" {
		if !fileop.IsRegular(*tableFile) {
			fmt.Fprintf(d.Stderr, "Error: no such table file: %s\n", *tableFile)
			return 1
		}
		f, err := os.Open(*tableFile)
		if err != nil {
			fmt.Fprintf(d.Stderr, "Error: %s\n", err)
			return 1
		}
		table, err = scope.LoadTable(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(d.Stderr, "Error: %s\n", err)
			return 1
		}
	}

	classified, failed := 0, 0
	for _, arg := range args {
		label, err := classify(table, arg)
		if err != nil {
			fmt.Fprintf(d.Stderr, "Error: %s\n", err)
			failed++
			continue
		}
		fmt.Fprintf(d.Stdout, "%s\t%s\n", arg, label)
		classified++
	}
	if !*quiet {
		fmt.Fprintf(d.Stderr, "%d classified, %d failed\n", classified, failed)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// Arguments with a '/' are prefixes and must be entirely contained by a
// table entry; plain addresses match by membership.
func classify(t *scope.Table, arg string) (string, error) {
	if strings.ContainsRune(arg, '/') {
		p, err := ip.ParsePrefix(arg)
		if err != nil {
			return "", err
		}
		return t.PrefixScope(p), nil
	}
	a, err := ip.ParseAddress(arg)
	if err != nil {
		return "", err
	}
	return t.AddressScope(a), nil
}
