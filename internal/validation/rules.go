package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	namePattern    = regexp.MustCompile(`^[\p{L}\s]+$`)
	phonePattern   = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// rule is a single check on a field value. ok reports whether the value
// satisfies the rule; message is reported when it does not.
type rule struct {
	ok      func(string) bool
	message string
}

// field pairs a value with its rules. A blank value reports only the
// required message and skips the remaining rules.
type field struct {
	value    string
	required string
	rules    []rule
}

func check(fields ...field) []string {
	var violations []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			if f.required != "" {
				violations = append(violations, f.required)
			}
			continue
		}
		for _, r := range f.rules {
			if !r.ok(f.value) {
				violations = append(violations, r.message)
			}
		}
	}
	return violations
}

func minLen(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) >= n }
}

func maxLen(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) <= n }
}

func matches(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

func equals(other string) func(string) bool {
	return func(s string) bool { return s == other }
}

func differs(other string) func(string) bool {
	return func(s string) bool { return s != other }
}

func nameField(label, value string) field {
	return field{
		value:    value,
		required: label + " is required",
		rules: []rule{
			{minLen(2), label + " must be at least 2 characters"},
			{maxLen(50), label + " cannot exceed 50 characters"},
			{matches(namePattern), label + " can only contain letters"},
		},
	}
}

// passwordField applies the strength rules; label is "Password" or
// "New password".
func passwordField(label, value string) field {
	return field{
		value:    value,
		required: label + " is required",
		rules: []rule{
			{minLen(8), label + " must be at least 8 characters"},
			{maxLen(100), label + " cannot exceed 100 characters"},
			{matches(upperPattern), label + " must contain at least one uppercase letter"},
			{matches(lowerPattern), label + " must contain at least one lowercase letter"},
			{matches(digitPattern), label + " must contain at least one digit"},
			{matches(specialPattern), label + " must contain at least one special character"},
		},
	}
}

func phoneField(value string) field {
	return field{
		value:    value,
		required: "Phone number is required",
		rules: []rule{
			{matches(phonePattern), "Invalid phone number format"},
		},
	}
}
