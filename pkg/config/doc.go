/*
Package config manages rule set parsing and validation for resub.

	            +-------------+
	            |   RuleSet   |
	            |   (Rules)   |
	            +------+------+
	                   |
	      +------------+-----------+
	      |            |           |
	+-----+-----+ +----+----+ +----+----+
	|   JSON    | |  YAML   | |   HCL   |
	| Decoder   | | Decoder | | Decoder |
	+-----------+ +---------+ +---------+

🎯 Purpose:
- Loads rule sets from JSON, YAML, and HCL files
- Validates patterns, globs, and timeouts up front
- Provides validated rules to the apply pipeline

🔄 Flow:
1. Reads the rule set file
2. Decodes format-specific syntax into RuleSet
3. Compiles every rule's pattern to catch errors early
4. Hands the validated set to callers

📝 Design Philosophy:
A rule set that loads is a rule set that runs. Every pattern is
compiled and every glob is checked during Validate, so a bad rule
fails at load time with the rule index in the error instead of
halfway through a batch run.

🔍 Example:

	cfg, err := config.LoadRuleSet(ctx, ".resub")
	if err != nil {
		return errors.Errorf("loading rules: %w", err)
	}

	for _, rule := range cfg.Rules {
		matcher, err := rule.Spec().Compile()
		if err != nil {
			return err
		}
		// apply matcher to inputs
	}
*/
package config
