// Package oslink carries the process environment of a command line tool
// as a value, so tests can run tool mains with captured output and
// synthetic arguments.
package oslink

import (
	"io"
	"os"
)

type Data struct {
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

func Get() Data {
	return Data{
		Args:   os.Args,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
