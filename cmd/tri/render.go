package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/trivalent/go-trivalent/formula"
	"github.com/trivalent/go-trivalent/tableau"
)

var (
	trueColor  = color.New(color.FgGreen).SprintFunc()
	falseColor = color.New(color.FgRed).SprintFunc()
	undefColor = color.New(color.FgYellow).SprintFunc()
)

func renderValue(v formula.Value, colored bool) string {
	s := v.String()
	if !colored {
		return s
	}
	switch v {
	case formula.True:
		return trueColor(s)
	case formula.False:
		return falseColor(s)
	}
	return undefColor(s)
}

func renderModel(w io.Writer, m *tableau.Model, colored bool) {
	keys := make([]string, 0, len(m.Atoms))
	for k := range m.Atoms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s = %s\n", k, renderValue(m.Atoms[k], colored))
	}
	if len(keys) == 0 {
		fmt.Fprintln(w, "  (empty: every atom undefined)")
	}
}

func renderModels(w io.Writer, models []*tableau.Model, colored bool) {
	for i, m := range models {
		fmt.Fprintf(w, "model %d:\n", i+1)
		renderModel(w, m, colored)
	}
}

func renderTrace(w io.Writer, t *tableau.Trace) {
	if t == nil {
		return
	}
	fmt.Fprint(w, t.String())
}
