// Package format renders result tables for the list and check commands.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects terminal or Markdown output.
type Mode int

const (
	ASCII Mode = iota
	Markdown
)

// ParseMode maps a --format value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "ascii", "text":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return ASCII, fmt.Errorf("invalid format %q: must be ascii or markdown", s)
}

// Table accumulates puzzle rows. Cells are rendered with fmt.Sprint.
type Table struct {
	tw    table.Writer
	mode  Mode
	right []int
}

// NewTable returns an empty table rendered in mode m.
func NewTable(m Mode) *Table {
	tw := table.NewWriter()
	if m == ASCII {
		tw.SetStyle(table.StyleLight)
	}
	return &Table{tw: tw, mode: m}
}

func (t *Table) Header(cols ...string) {
	row := make(table.Row, 0, len(cols))
	for _, c := range cols {
		row = append(row, c)
	}
	t.tw.AppendHeader(row)
}

func (t *Table) Row(cells ...any) { t.tw.AppendRow(cells) }

// Footer adds a summary line such as the pass count.
func (t *Table) Footer(cells ...any) { t.tw.AppendFooter(cells) }

// AlignRight right-aligns the given 1-based columns, used for numbers
// and timings.
func (t *Table) AlignRight(cols ...int) {
	t.right = append(t.right, cols...)
	cfgs := make([]table.ColumnConfig, 0, len(t.right))
	for _, n := range t.right {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	t.tw.SetColumnConfigs(cfgs)
}

func (t *Table) String() string {
	if t.mode == Markdown {
		return t.tw.RenderMarkdown()
	}
	return t.tw.Render()
}

// WriteTo writes the rendered table followed by a newline.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, t.String())
	return int64(n), err
}
