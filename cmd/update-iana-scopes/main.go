package main

import (
	"os"

	"github.com/ipkit/ipkit/pkg/oslink"
	"github.com/ipkit/ipkit/pkg/update"
)

func main() {
	os.Exit(update.Main(oslink.Get()))
}
