package signup

import (
	"regexp"
	"strings"
)

// emailShape is a structural check only: one @, something before it, and a
// domain with at least one dot-separated suffix.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. It is not an RFC
// validator.
func ValidEmail(s string) bool {
	return emailShape.MatchString(strings.TrimSpace(s))
}

// Problem returns the validation message for value, or "" when it is a
// well-formed address.
func Problem(value string) string {
	switch v := strings.TrimSpace(value); {
	case v == "":
		return MsgEmpty
	case !ValidEmail(v):
		return MsgInvalid
	default:
		return ""
	}
}

// Resolve runs a whole submission at once for clients that cannot hold a
// session. The value is echoed back only when it failed validation.
func Resolve(value string) Snapshot {
	if msg := Problem(value); msg != "" {
		return Snapshot{State: Failed, Value: value, Message: msg}
	}
	return Snapshot{State: Succeeded, Message: MsgSuccess}
}
