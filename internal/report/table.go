package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/wesleyorama2/benchkit/internal/output"
)

// table is a plain text grid with a header row. Numeric columns are
// right aligned.
type table struct {
	headers []string
	numeric []bool
	rows    [][]string
}

func (t *table) column(header string, numeric bool) {
	t.headers = append(t.headers, header)
	t.numeric = append(t.numeric, numeric)
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	w := make([]int, len(t.headers))
	for i, h := range t.headers {
		w[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > w[i] {
				w[i] = n
			}
		}
	}
	return w
}

func (t *table) render(w io.Writer, scheme *output.ColorScheme) {
	widths := t.widths()

	sep := make([]string, len(widths))
	for i, n := range widths {
		sep[i] = strings.Repeat("-", n+2)
	}
	border := "+" + strings.Join(sep, "+") + "+"

	line := func(cells []string, header bool) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = " " + pad(cell, widths[i], t.numeric[i] && !header) + " "
			if header {
				parts[i] = scheme.Header.Sprint(parts[i])
			}
		}
		return "|" + strings.Join(parts, "|") + "|"
	}

	fmt.Fprintln(w, border)
	fmt.Fprintln(w, line(t.headers, true))
	fmt.Fprintln(w, border)
	for _, row := range t.rows {
		fmt.Fprintln(w, line(row, false))
	}
	fmt.Fprintln(w, border)
}

func pad(s string, width int, right bool) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
