package validators

import "regexp"

// Loose local@domain.tld shape check. Deliverability is not verified here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
