/*
Package apply runs a rule set against a tree of files.

	+-------------+
	|   Applier   |
	| (Batch Run) |
	+------+------+
	       |
	+------+------+
	|   Replace   |
	| (Per File)  |
	+------+------+

🎯 Purpose:
- Walks a root directory and selects the files a rule set cares about
- Applies every rule, in order, to each selected file
- Writes rewritten files atomically, or just reports in dry run mode

🔄 Flow:
1. Walk the root, dropping directories, irregular files, and ignore matches
2. Fan files out to a bounded worker pool
3. Run each rule through the replace engine, feeding one rule's output
   into the next
4. Write changed files via temp file and rename
5. Report per-file outcomes and an aggregate summary

⚡ Key Responsibilities:
- File selection with doublestar globs (per-rule files, rule set ignores)
- Rule ordering within a file
- Atomic writes that keep the original file mode
- Per-file error isolation so one bad file never aborts the run

🤝 Interfaces:
- config.RuleSet: the rules, ignores, and evaluator deadline
- replace: the single-file find and replace engine
- UserLogger: optional human-readable progress stream

🔍 Example:

	applier, err := apply.New(cfg, apply.Options{Root: "."})
	if err != nil {
		return err
	}
	summary, err := applier.Run(ctx)

📝 Design Philosophy:
The applier owns traversal, scheduling, and file I/O and nothing else.
Matching and substitution stay in the replace package, so a batch run
behaves exactly like running the single-file engine by hand on each
selected file, in rule order.
*/
package apply
