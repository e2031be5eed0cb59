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
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/resub/pkg/replace"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Mode selects how a replacement result is rendered
type Mode string

const (
	ModeViews Mode = "views" // Marked original and replaced views
	ModeDiff  Mode = "diff"  // Character diff between original and replaced
	ModeTable Mode = "table" // One row per match
	ModeJSON  Mode = "json"  // Machine-readable result
)

// 🔍 ParseMode validates a mode name from the command line
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeViews, ModeDiff, ModeTable, ModeJSON:
		return Mode(s), nil
	default:
		return "", errors.Errorf("unknown render mode %q (expected views, diff, table, or json)", s)
	}
}

// 🖼️ Renderer writes replacement results in the selected mode
type Renderer struct {
	w        io.Writer
	mode     Mode
	maxWidth int
}

// 🏭 New creates a renderer. maxWidth limits rendered text width in the
// views and table modes, zero means unlimited.
func New(w io.Writer, mode Mode, maxWidth int) *Renderer {
	return &Renderer{
		w:        w,
		mode:     mode,
		maxWidth: maxWidth,
	}
}

// 📝 Render writes the result in the renderer's mode
func (r *Renderer) Render(ctx context.Context, res *replace.Result) error {
	zerolog.Ctx(ctx).Debug().
		Str("mode", string(r.mode)).
		Int("matches", res.MatchCount).
		Msg("rendering result")

	switch r.mode {
	case ModeDiff:
		return r.renderDiff(res)
	case ModeTable:
		return r.renderTable(res)
	case ModeJSON:
		return r.renderJSON(res)
	default:
		return r.renderViews(res)
	}
}

// 📦 renderJSON writes the result as indented JSON
func (r *Renderer) renderJSON(res *replace.Result) error {
	data, err := json.MarshalIndent(res, "", "\t")
	if err != nil {
		return errors.Errorf("marshaling result: %w", err)
	}

	fmt.Fprintln(r.w, string(data))
	return nil
}
