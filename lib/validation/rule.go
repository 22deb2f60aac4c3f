// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies a rule's constraint type. The set is closed: the
// evaluator only knows these five kinds, and a rule set holds at most one
// rule of each kind.
type Kind int

const (
	// KindRequired fails blank input. It is consulted only when the
	// value is empty or whitespace; a blank optional field is valid.
	KindRequired Kind = iota

	// KindMinLength fails input shorter than the rule's length.
	KindMinLength

	// KindMaxLength fails input longer than the rule's length.
	KindMaxLength

	// KindPattern fails input not matching the rule's regexp.
	KindPattern

	// KindCustom fails input rejected by the rule's predicate. Used for
	// semantic constraints like "passwords must match".
	KindCustom
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindMinLength:
		return "minLength"
	case KindMaxLength:
		return "maxLength"
	case KindPattern:
		return "pattern"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// evaluationOrder is the fixed priority in which non-blank input is
// checked. The first rule present in the set that fails determines the
// single reported error. Length constraints come before pattern and
// semantic checks so the user is told about the most fundamental problem
// first.
var evaluationOrder = [...]Kind{KindMinLength, KindMaxLength, KindPattern, KindCustom}

// Rule is one named constraint with the message shown when it fails.
// Construct rules with the kind-specific constructors; a zero Rule is a
// Required rule with an empty message.
type Rule struct {
	Kind    Kind
	Length  int
	Pattern *regexp.Regexp
	Check   func(value string) bool
	Message string
}

// Required returns a rule failing blank input with the given message.
func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message}
}

// MinLength returns a rule failing input shorter than n characters.
func MinLength(n int, message string) Rule {
	return Rule{Kind: KindMinLength, Length: n, Message: message}
}

// MaxLength returns a rule failing input longer than n characters.
func MaxLength(n int, message string) Rule {
	return Rule{Kind: KindMaxLength, Length: n, Message: message}
}

// Pattern returns a rule failing input that does not match pattern.
func Pattern(pattern *regexp.Regexp, message string) Rule {
	return Rule{Kind: KindPattern, Pattern: pattern, Message: message}
}

// Custom returns a rule failing input rejected by check. The predicate
// sees the raw (untrimmed) value and must be side-effect free.
func Custom(check func(value string) bool, message string) Rule {
	return Rule{Kind: KindCustom, Check: check, Message: message}
}

// RuleSet is the ordered constraints for one field. Build with [Rules];
// the evaluator surfaces at most one failing rule per evaluation.
type RuleSet struct {
	rules []Rule
}

// Rules builds a RuleSet from the given rules. If two rules share a kind,
// the first occurrence wins and later duplicates are dropped — the
// evaluator's one-rule-per-kind invariant is enforced here rather than at
// evaluation time.
func Rules(rules ...Rule) RuleSet {
	set := RuleSet{rules: make([]Rule, 0, len(rules))}
	seen := make(map[Kind]bool, len(rules))
	for _, rule := range rules {
		if seen[rule.Kind] {
			continue
		}
		seen[rule.Kind] = true
		set.rules = append(set.rules, rule)
	}
	return set
}

// find returns the rule of the given kind, if present.
func (s RuleSet) find(kind Kind) (Rule, bool) {
	for _, rule := range s.rules {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return Rule{}, false
}

// Empty reports whether the set contains no rules.
func (s RuleSet) Empty() bool {
	return len(s.rules) == 0
}

// Evaluate checks value against the set and returns the message of the
// first failing rule, or "" when the value is valid.
//
// Blank input (empty or whitespace-only) fails with the Required rule's
// message when one is present, and is otherwise valid — an optional field
// left empty passes regardless of its other rules. Non-blank input is
// checked in the fixed order MinLength, MaxLength, Pattern, Custom.
func (s RuleSet) Evaluate(value string) string {
	if strings.TrimSpace(value) == "" {
		if required, ok := s.find(KindRequired); ok {
			return required.Message
		}
		return ""
	}

	for _, kind := range evaluationOrder {
		rule, ok := s.find(kind)
		if !ok {
			continue
		}
		if !rule.passes(value) {
			return rule.Message
		}
	}
	return ""
}

// passes applies one rule to a non-blank value.
func (r Rule) passes(value string) bool {
	switch r.Kind {
	case KindMinLength:
		return len(value) >= r.Length
	case KindMaxLength:
		return len(value) <= r.Length
	case KindPattern:
		return r.Pattern == nil || r.Pattern.MatchString(value)
	case KindCustom:
		return r.Check == nil || r.Check(value)
	}
	// Required never applies to non-blank input.
	return true
}

// Config is the declarative form of a rule set, mirroring how forms
// describe their constraints: set the constraints you need and optionally
// override the default messages.
type Config struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    func(value string) bool

	Messages Messages
}

// Messages overrides the default per-kind error messages of a [Config].
// Empty fields keep the defaults.
type Messages struct {
	Required  string
	MinLength string
	MaxLength string
	Pattern   string
	Custom    string
}

// Rules converts the config into a RuleSet, filling in default messages
// for any the caller did not override.
func (c Config) Rules() RuleSet {
	var rules []Rule
	if c.Required {
		rules = append(rules, Required(defaultMessage(c.Messages.Required, "This field is required")))
	}
	if c.MinLength > 0 {
		rules = append(rules, MinLength(c.MinLength,
			defaultMessage(c.Messages.MinLength, fmt.Sprintf("Minimum %d characters required", c.MinLength))))
	}
	if c.MaxLength > 0 {
		rules = append(rules, MaxLength(c.MaxLength,
			defaultMessage(c.Messages.MaxLength, fmt.Sprintf("Maximum %d characters allowed", c.MaxLength))))
	}
	if c.Pattern != nil {
		rules = append(rules, Pattern(c.Pattern, defaultMessage(c.Messages.Pattern, "Invalid format")))
	}
	if c.Custom != nil {
		rules = append(rules, Custom(c.Custom, defaultMessage(c.Messages.Custom, "Invalid value")))
	}
	return Rules(rules...)
}

func defaultMessage(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
