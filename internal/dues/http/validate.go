package http

import "regexp"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

// validUsername reports whether the username is 3-32 chars of alphanumerics,
// underscore or hyphen.
func validUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// validPassword reports whether the password length is within 8-128 chars.
// No composition rules; length is the only enforced property.
func validPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 128
}
