package store

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reDSNPass  = regexp.MustCompile(`(?i)(://)([^:/@]+):([^@]+)(@)`)
)

// Mask hides credentials in a connection string before it is displayed or
// logged.
func Mask(s string) string {
	out := rePassword.ReplaceAllString(s, "$1***")
	out = reDSNPass.ReplaceAllString(out, "$1*:*$4")
	return out
}
