package verification

import "strings"

// FormatAction lowercases action and drops every character outside [a-z0-9/].
func FormatAction(action string) string {
	var sb strings.Builder
	sb.Grow(len(action))
	for _, r := range strings.ToLower(action) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '/' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
