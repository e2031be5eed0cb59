package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/walteh/resub/pkg/replace"
)

// Column widths for the match table
const (
	ordWidth         = 4
	indexWidth       = 6
	defaultCellWidth = 32
)

// controlChars makes matched text printable inside a single table cell
var controlChars = strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)

// renderTable writes one row per match
func (r *Renderer) renderTable(res *replace.Result) error {
	cell := r.maxWidth
	if cell <= 0 {
		cell = defaultCellWidth
	}

	fmt.Fprintf(r.w, "%s %s %s %s\n",
		runewidth.FillRight("#", ordWidth),
		runewidth.FillRight("INDEX", indexWidth),
		runewidth.FillRight("MATCH", cell),
		"REPLACEMENT")

	for i, m := range res.Matches {
		matched := runewidth.Truncate(controlChars.Replace(m.Text), cell, "…")
		substituted := runewidth.Truncate(controlChars.Replace(m.Substituted), cell, "…")

		fmt.Fprintf(r.w, "%s %s %s %s\n",
			runewidth.FillRight(strconv.Itoa(i+1), ordWidth),
			runewidth.FillRight(strconv.Itoa(m.Index), indexWidth),
			runewidth.FillRight(matched, cell),
			substituted)
	}

	fmt.Fprintf(r.w, "\n%d matches\n", res.MatchCount)
	return nil
}
