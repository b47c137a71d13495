package branding

import "strings"

// NormalizeColor reduces a color value to the canonical HSL triplet form
// "H S% L%" with an optional " / A" alpha suffix. It tolerates raw triplets,
// comma-separated triplets, and values already wrapped in hsl()/hsla(),
// since older documents stored a mix of all three. Anything it cannot
// recognize is returned trimmed but otherwise untouched.
func NormalizeColor(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "hsla(") {
		s = strings.TrimSuffix(s[5:], ")")
	} else if strings.HasPrefix(lower, "hsl(") {
		s = strings.TrimSuffix(s[4:], ")")
	}

	s = strings.ReplaceAll(s, ",", " ")

	// Collapse runs of whitespace, keeping "/" as its own token.
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	// hsla()-style trailing alpha without a slash: "210 100% 50% 0.5"
	if len(fields) == 4 && fields[3] != "/" && !strings.Contains(strings.Join(fields, " "), "/") {
		return fields[0] + " " + fields[1] + " " + fields[2] + " / " + fields[3]
	}

	out := strings.Join(fields, " ")
	out = strings.ReplaceAll(out, "/", " / ")
	return strings.Join(strings.Fields(out), " ")
}

// CSSColor wraps a canonical triplet in an hsl() function for direct use in
// a stylesheet. Values that already carry a color function pass through.
func CSSColor(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla(") ||
		strings.HasPrefix(lower, "rgb") || strings.HasPrefix(s, "#") ||
		strings.HasPrefix(lower, "var(") {
		return s
	}
	return "hsl(" + NormalizeColor(s) + ")"
}
