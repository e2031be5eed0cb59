package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/resub/pkg/replace"
)

// renderDiff writes a character-level diff from original to replaced
func (r *Renderer) renderDiff(res *replace.Result) error {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(res.Original, res.Replaced, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(color.New(color.FgRed, color.CrossedOut).Sprint(d.Text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(color.New(color.FgGreen).Sprint(d.Text))
		default:
			b.WriteString(d.Text)
		}
	}

	fmt.Fprintln(r.w, b.String())
	return nil
}
