/*
Package render turns replacement results into terminal and JSON output.

	            +-------------+
	            |  Renderer   |
	            |   (Mode)    |
	            +------+------+
	                   |
	    +---------+----+----+---------+
	    |         |         |         |
	+---+---+ +---+---+ +---+---+ +---+---+
	| Views | | Diff  | | Table | | JSON  |
	+-------+ +-------+ +-------+ +-------+

🎯 Purpose:
- Renders replacement results in four modes
- Marks matched and substituted text with color
- Clips wide output to a caller-chosen width

🔄 Flow:
1. Receives a Result from the replace package
2. Builds marked views, a diff, or a table from it
3. Writes the rendering to the configured writer

📝 Design Philosophy:
The renderer owns presentation and nothing else. Segments arrive
already aligned from the segment package, so every mode is a single
pass over precomputed data. Color respects the NO_COLOR convention
through the color package's global switch.

🔍 Example:

	res, err := replace.Preview(ctx, text, pattern, template, "g")
	if err != nil {
		return err
	}

	r := render.New(os.Stdout, render.ModeViews, 80)
	if err := r.Render(ctx, res); err != nil {
		return err
	}
*/
package render
