package merge

import "strings"

// nameSuffixes are generational tokens dropped during normalization so that
// "Odell Beckham Jr." and "Odell Beckham" collide.
var nameSuffixes = map[string]bool{
	"jr":  true,
	"sr":  true,
	"ii":  true,
	"iii": true,
	"iv":  true,
	"v":   true,
}

// NormalizeName reduces a player name to its matching form: lowercased,
// punctuation stripped, hyphens treated as spaces, whitespace collapsed, and
// a trailing generational suffix dropped. Sources disagree on all of these;
// "D.J. Moore", "DJ Moore" and "Dj Moore" must land on the same key.
func NormalizeName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '-':
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	if len(fields) > 1 && nameSuffixes[fields[len(fields)-1]] {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

// NormalizeTeam upper-cases a team code for matching.
func NormalizeTeam(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
