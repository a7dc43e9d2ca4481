package strx

import "strings"

// Coalesce returns the first non-empty string, or "".
func Coalesce(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}

// SplitPrefix splits an identifier such as "LPUART6" or "GP14" into its
// upper-cased alphabetic prefix and the trailing decimal number.
// ok is false when there is no trailing number.
func SplitPrefix(id string) (prefix string, n int, ok bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) || len(id)-i > 4 {
		return strings.ToUpper(id), 0, false
	}
	for _, c := range id[i:] {
		n = n*10 + int(c-'0')
	}
	return strings.ToUpper(id[:i]), n, true
}
