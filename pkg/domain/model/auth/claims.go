package auth

import (
	"strings"
	"unicode"
)

// Claims holds the identity claims extracted from a validated SSO token.
// They are ephemeral input to user reconciliation and never persisted here.
type Claims struct {
	Email    string
	Name     string
	ObjectID string
}

// FirstLast derives first and last names from the claims. The display name
// claim takes priority; when it is absent the names are derived from the
// local part of the email address.
func (c Claims) FirstLast() (string, string) {
	if first, last := ParseDisplayName(c.Name); first != "" {
		return first, last
	}
	return nameFromEmail(c.Email)
}

// ParseDisplayName splits a raw display-name claim into first and last names.
// Directory entries arrive as "JONES, Andy", "Andy Jones" or a bare name.
func ParseDisplayName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}

	if last, first, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(first), strings.TrimSpace(last)
	}

	// Only the first two whitespace-delimited tokens are used
	if fields := strings.Fields(name); len(fields) >= 2 {
		return fields[0], fields[1]
	}

	return name, ""
}

// nameFromEmail derives a name pair from the local part of an email address,
// splitting on the first "." and capitalizing each segment
func nameFromEmail(email string) (string, string) {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "", ""
	}

	if first, last, ok := strings.Cut(local, "."); ok && last != "" {
		return capitalize(first), capitalize(last)
	}
	return capitalize(local), ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
