package schema

// SanitizeID maps an identity key to a string safe for use as an HTML
// element id: ASCII letters and digits pass through, everything else
// becomes an underscore.
func SanitizeID(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
