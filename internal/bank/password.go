package bank

import (
	"strings"
	"unicode"
)

// PasswordRule describes one strength requirement, phrased to follow
// "Password must ...".
type PasswordRule string

const (
	RuleMinLength PasswordRule = "be at least 8 characters long"
	RuleUppercase PasswordRule = "contain an uppercase letter"
	RuleLowercase PasswordRule = "contain a lowercase letter"
	RuleDigit     PasswordRule = "contain a digit"
	RuleSpecial   PasswordRule = `contain a special character (e.g. !@#$%^&*)`
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// CheckPassword is a pure predicate: it returns every rule the candidate
// fails, or nil when the password is acceptable. The interactive retry
// loop lives in the CLI, not here.
func CheckPassword(password string) []PasswordRule {
	var unmet []PasswordRule
	if len(password) < 8 {
		unmet = append(unmet, RuleMinLength)
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		unmet = append(unmet, RuleUppercase)
	}
	if !lower {
		unmet = append(unmet, RuleLowercase)
	}
	if !digit {
		unmet = append(unmet, RuleDigit)
	}
	if !strings.ContainsAny(password, specialChars) {
		unmet = append(unmet, RuleSpecial)
	}
	return unmet
}
