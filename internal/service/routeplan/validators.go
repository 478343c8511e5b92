package routeplan

import "regexp"

// preferredTimePattern matches zero-padded 24-hour "HH:MM" strings, the only
// format whose lexicographic order agrees with time-of-day order.
var preferredTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func isValidPreferredTime(s string) bool {
	return preferredTimePattern.MatchString(s)
}
