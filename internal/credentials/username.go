package credentials

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackUsername is used when a name folds to nothing.
const fallbackUsername = "user"

// MaxUsernameLength is the width of the users.username column.
const MaxUsernameLength = 50

// Fold lowercases name, strips Vietnamese diacritics (đ becomes d) and drops
// everything outside [a-z0-9].
func Fold(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "đ", "d")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GenerateUsername derives a username from a full name, clipped to
// MaxUsernameLength. If the base is taken, the smallest positive integer
// suffix that makes it unique is appended, shortening the base to fit.
func GenerateUsername(fullName string, existing []string) string {
	base := Fold(fullName)
	if base == "" {
		base = fallbackUsername
	}
	base = clip(base, MaxUsernameLength)

	taken := make(map[string]struct{}, len(existing))
	for _, u := range existing {
		taken[u] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		suffix := strconv.Itoa(i)
		candidate := clip(base, MaxUsernameLength-len(suffix)) + suffix
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// clip cuts s to n bytes; folded names are ASCII.
func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
