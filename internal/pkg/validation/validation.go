package validation

import (
	"regexp"
	"unicode"
)

// Usernames: lowercase letters, digits, dot, underscore, hyphen (directory
// account format).
var usernameRe = regexp.MustCompile(`^[a-z0-9._-]{3,64}$`)

// Fullname: letters (including Turkish), spaces, hyphens, apostrophes.
var fullnameRe = regexp.MustCompile(`^[\p{L}\s\-']+$`)

func IsValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// IsValidPassword:
// - at least 8 characters
// - contains at least one letter
// - contains at least one number
// - contains at least one special character
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter, hasDigit, hasSpecial := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

func IsValidFullname(fullname string) bool {
	return fullname != "" && fullnameRe.MatchString(fullname)
}
