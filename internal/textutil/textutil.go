package textutil

// Prefix returns at most max runes of s. The benchmark truncation bounds
// count characters, not bytes.
func Prefix(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
