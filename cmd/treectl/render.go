package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

var styles = map[string]table.Style{
	"default": table.StyleDefault,
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"double":  table.StyleDouble,
	"bold":    table.StyleBold,
}

// newTable returns a table rendering to w in the configured style.
func (a *app) newTable(w io.Writer, title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(styles[a.cfg.Output.Style])
	tbl.SetTitle(title)
	return tbl
}

// join renders xs separated by single spaces.
func join[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}

// orNone renders v, or "none" when ok is false.
func orNone[T any](v T, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}
