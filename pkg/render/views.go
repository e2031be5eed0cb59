// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/resub/pkg/replace"
	"github.com/walteh/resub/pkg/segment"
)

// 📝 renderViews writes the marked original and replaced views
func (r *Renderer) renderViews(res *replace.Result) error {
	// Without g only the first match is rewritten, so only the first match
	// is marked. The count line still reports the full scan.
	marked := res.Matches
	if !res.Global && len(marked) > 1 {
		marked = marked[:1]
	}

	original := segment.Original(res.Original, marked)
	replaced := segment.Replaced(res.Original, marked)

	origLine := r.paint(original, color.New(color.FgRed, color.CrossedOut))
	replLine := r.paint(replaced, color.New(color.FgGreen))

	label := color.New(color.Faint)
	fmt.Fprintf(r.w, "%s %s\n", label.Sprint("original:"), origLine)
	fmt.Fprintf(r.w, "%s %s\n", label.Sprint("replaced:"), replLine)
	fmt.Fprintf(r.w, "%s %d\n", label.Sprint("matches: "), res.MatchCount)

	return nil
}

// 🎨 paint joins segments, coloring the marked ones and appending an
// ellipsis when the view was clipped
func (r *Renderer) paint(segs []segment.Segment, marked *color.Color) string {
	segs, clipped := segment.Clip(segs, r.maxWidth)

	var b strings.Builder
	for _, seg := range segs {
		if seg.Kind == segment.Marked {
			b.WriteString(marked.Sprint(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	if clipped {
		b.WriteString("…")
	}

	return b.String()
}
