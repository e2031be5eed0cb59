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

package config

import (
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/resub/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule is one find/replace operation. Rules run in declared order.
type Rule struct {
	Find    string `json:"find" yaml:"find" hcl:"find"`                                       // Pattern to search for
	Replace string `json:"replace,omitempty" yaml:"replace,omitempty" hcl:"replace,optional"` // Replacement template, may be empty
	Flags   string `json:"flags,omitempty" yaml:"flags,omitempty" hcl:"flags,optional"`       // Match flags (g, i, m, s, u)
	Files   string `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`       // Glob restricting which files the rule touches
}

// 🎯 Spec returns the rule's pattern specification
func (r Rule) Spec() pattern.Spec {
	return pattern.Spec{Expr: r.Find, Flags: r.Flags}
}

// 📚 RuleSet is the complete configuration for a batch apply
type RuleSet struct {
	Rules   []Rule   `json:"rules" yaml:"rules" hcl:"rule,block"`                               // Ordered replacement rules
	Ignore  []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`    // Globs excluded from apply
	Timeout string   `json:"timeout,omitempty" yaml:"timeout,omitempty" hcl:"timeout,optional"` // Per-call evaluator deadline, duration string

	location string
	deadline time.Duration
}

// 📍 Location returns the path the rule set was loaded from
func (c *RuleSet) Location() string {
	return c.location
}

// ⏱️ Deadline returns the parsed per-call evaluator bound, zero when unset
func (c *RuleSet) Deadline() time.Duration {
	return c.deadline
}

// 🔍 Validate checks the rule set and resolves derived values. Every rule's
// pattern must compile and every glob must be well-formed.
func (c *RuleSet) Validate() error {
	if len(c.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}

	for i, rule := range c.Rules {
		if rule.Find == "" {
			return errors.Errorf("rule %d: find is required", i)
		}
		if _, err := rule.Spec().Compile(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
		if rule.Files != "" && !doublestar.ValidatePattern(rule.Files) {
			return errors.Errorf("rule %d: invalid files glob %q", i, rule.Files)
		}
	}

	for _, glob := range c.Ignore {
		if !doublestar.ValidatePattern(glob) {
			return errors.Errorf("invalid ignore glob %q", glob)
		}
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return errors.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
		c.deadline = d
	}

	return nil
}
