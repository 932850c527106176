package validate

import (
	"strings"

	dom "jobly/internal/domain"
)

const minPasswordLen = 5

// User checks a registration before the password is hashed.
func User(u dom.User, password string) error {
	if blank(u.Username) {
		return fail("username is required")
	}
	if len(u.Username) > 25 {
		return fail("username must be at most 25 characters")
	}
	if len(password) < minPasswordLen {
		return fail("password must be at least %d characters", minPasswordLen)
	}
	if blank(u.FirstName) {
		return fail("firstName is required")
	}
	if blank(u.LastName) {
		return fail("lastName is required")
	}
	if strings.Index(u.Email, "@") < 1 {
		return fail("email is invalid")
	}
	return nil
}
