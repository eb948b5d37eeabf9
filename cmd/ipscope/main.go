package main

import (
	"os"

	"github.com/ipkit/ipkit/pkg/classify"
	"github.com/ipkit/ipkit/pkg/oslink"
)

func main() {
	os.Exit(classify.Main(oslink.Get()))
}
