package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alnah/go-mdtables"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// StdinIsTerminal reports whether Stdin is interactive. Markdown is read
	// from Stdin only when it is not.
	StdinIsTerminal func() bool

	// NewPool creates the converter pool used by a conversion run.
	NewPool func(size int, opts ...mdtables.Option) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		StdinIsTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		NewPool: newConverterPool,
	}
}
