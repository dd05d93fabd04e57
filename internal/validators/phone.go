package validators

import "strings"

// NormalizePhone strips formatting and reports whether 8 to 15 digits remain.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		case r == '+' && b.Len() == 0:
		default:
			return "", false
		}
	}

	digits := b.String()
	return digits, len(digits) >= 8 && len(digits) <= 15
}
