package utils

import (
	"fmt"
	"strings"
)

// SplitFullName splits an "owner/name" repository identifier into its parts
func SplitFullName(fullName string) (owner, name string, err error) {
	parts := strings.SplitN(strings.Trim(fullName, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository full name: %q", fullName)
	}

	return parts[0], parts[1], nil
}

// IsExternal reports whether a repository is owned by someone other than user.
// The owner is everything before the first slash, or the whole name when there is none.
func IsExternal(user, fullName string) bool {
	owner, _, _ := strings.Cut(fullName, "/")
	return !strings.EqualFold(owner, user)
}

// RepoHTMLURL builds the public web URL of a repository
func RepoHTMLURL(fullName string) string {
	return "https://github.com/" + fullName
}
