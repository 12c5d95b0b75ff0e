// internal/redact/patterns.go
package redact

import (
	"regexp"
	"strings"
)

// Ordered sensitivity patterns matched against lowercased key names.
// First match wins; a key matching none of these passes through untouched.
var sensitiveKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`api_key`),
	regexp.MustCompile(`token`),
	regexp.MustCompile(`auth`),
	regexp.MustCompile(`key`),
	regexp.MustCompile(`secret`),
	regexp.MustCompile(`password`),
	regexp.MustCompile(`credential`),
	regexp.MustCompile(`private_key`),
	regexp.MustCompile(`access_key`),
	regexp.MustCompile(`subscription`),
	regexp.MustCompile(`account_id`),
	regexp.MustCompile(`^authorization$`),
	regexp.MustCompile(`^x-api-key$`),
	regexp.MustCompile(`^x-subscription-token$`),
}

// SensitiveKey reports whether a key's value must be redacted.
// Pure and total: any string key terminates with a yes/no answer.
func SensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, p := range sensitiveKeyPatterns {
		if p.MatchString(k) {
			return true
		}
	}
	return false
}
