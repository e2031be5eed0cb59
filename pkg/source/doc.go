/*
Package source abstracts where replacement input text comes from.

	            +-------------+
	            |   Source    |
	            |  (Input)    |
	            +------+------+
	                   |
	      +------------+-----------+
	      |            |           |
	+-----+-----+ +----+----+ +----+----+
	|   Local   | |  Stdin  | | GitHub  |
	|   File    | |  Pipe   | |  File   |
	+-----------+ +---------+ +---------+

🎯 Purpose:
- Abstracts input retrieval behind one interface
- Resolves a CLI target to the right source
- Handles GitHub references with optional authentication

🔄 Flow:
1. Resolve inspects the target ("-", github reference, or path)
2. The chosen source reads the full input text
3. Describe labels the input in status output

📝 Design Philosophy:
Sources read everything up front. Replacement passes scan the whole
input repeatedly, so streaming buys nothing here and whole-string
inputs keep the engine simple.

🔍 Example:

	src, err := source.Resolve(ctx, "walteh/resub@main:README.md", true)
	if err != nil {
		return err
	}

	text, err := src.Read(ctx)
	if err != nil {
		return err
	}
*/
package source
