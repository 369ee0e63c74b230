// Package policy classifies candidate master passwords against a set of
// independently toggleable rules.
package policy

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/locksafe/internal/common"
)

// Strength buckets a candidate by how many rules it violates.
type Strength string

const (
	Strong Strength = "strong"
	Medium Strength = "medium"
	Weak   Strength = "weak"
)

// DefaultSpecialChars is the symbol set a password must draw from.
const DefaultSpecialChars = `!@#$%^&*(),.?":{}|<>`

// Rules configures the evaluator. A zero MinLength disables the length rule.
type Rules struct {
	MinLength      int    `json:"min_length" yaml:"min_length"`
	RequireUpper   bool   `json:"require_upper" yaml:"require_upper"`
	RequireLower   bool   `json:"require_lower" yaml:"require_lower"`
	RequireDigit   bool   `json:"require_digit" yaml:"require_digit"`
	RequireSpecial bool   `json:"require_special" yaml:"require_special"`
	SpecialChars   string `json:"special_chars" yaml:"special_chars"`
}

func DefaultRules() Rules {
	return Rules{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireDigit:   true,
		RequireSpecial: true,
		SpecialChars:   DefaultSpecialChars,
	}
}

// Result is the outcome of Evaluate. Messages follow rule declaration order.
type Result struct {
	Valid    bool     `json:"valid"`
	Strength Strength `json:"strength"`
	Messages []string `json:"messages,omitempty"`
}

type rule struct {
	enabled bool
	ok      func(string) bool
	message string
}

type Evaluator struct {
	rules []rule
}

func NewEvaluator(r Rules) *Evaluator {
	special := r.SpecialChars
	if special == "" {
		special = DefaultSpecialChars
	}

	return &Evaluator{rules: []rule{
		{
			enabled: r.MinLength > 0,
			ok:      func(s string) bool { return utf8.RuneCountInString(s) >= r.MinLength },
			message: fmt.Sprintf("Password must be at least %d characters long", r.MinLength),
		},
		{
			enabled: r.RequireUpper,
			ok:      func(s string) bool { return containsASCII(s, 'A', 'Z') },
			message: "Password must contain at least one uppercase letter",
		},
		{
			enabled: r.RequireLower,
			ok:      func(s string) bool { return containsASCII(s, 'a', 'z') },
			message: "Password must contain at least one lowercase letter",
		},
		{
			enabled: r.RequireDigit,
			ok:      func(s string) bool { return containsASCII(s, '0', '9') },
			message: "Password must contain at least one number",
		},
		{
			enabled: r.RequireSpecial,
			ok:      func(s string) bool { return strings.ContainsAny(s, special) },
			message: "Password must contain at least one special character",
		},
	}}
}

// containsASCII reports whether s has a byte in [lo, hi]. Letter and digit
// classes are ASCII only, so "Ä" is not an uppercase letter here.
func containsASCII(s string, lo, hi byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			return true
		}
	}
	return false
}

// Evaluate checks every enabled rule; it never short-circuits.
func (e *Evaluator) Evaluate(candidate string) Result {
	var msgs []string
	for _, r := range e.rules {
		if r.enabled && !r.ok(candidate) {
			msgs = append(msgs, r.message)
		}
	}

	res := Result{Valid: len(msgs) == 0, Messages: msgs}
	switch {
	case len(msgs) == 0:
		res.Strength = Strong
	case len(msgs) <= 2:
		res.Strength = Medium
	default:
		res.Strength = Weak
	}
	return res
}

// Check returns a *ViolationError when candidate is not valid.
func (e *Evaluator) Check(candidate string) error {
	res := e.Evaluate(candidate)
	if res.Valid {
		return nil
	}
	return &ViolationError{Result: res}
}

// ViolationError carries the failed evaluation and matches
// common.ErrPolicyViolation under errors.Is.
type ViolationError struct {
	Result Result
}

func (e *ViolationError) Error() string {
	return strings.Join(e.Result.Messages, "; ")
}

func (e *ViolationError) Unwrap() error {
	return common.ErrPolicyViolation
}
