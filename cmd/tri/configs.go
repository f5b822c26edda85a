package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='force colored output'"`
	NoOracle bool `cli:"name=no-oracle desc='disable the classical SAT fast path'"`
	Steps    int  `cli:"name=steps desc='step ceiling (0 = default)'"`
	Branches int  `cli:"name=branches desc='branch ceiling (0 = default)'"`

	Main *cli.Command
}

// useColor mirrors the terminal detection on the output writer; -color
// forces it on.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
