package orderbook

import (
	"errors"
	"strings"
)

// ErrEmptyQuery is returned by Normalize for input that is blank after
// trimming. Callers are expected to suppress the query rather than surface
// an error state.
var ErrEmptyQuery = errors.New("empty item query")

// Slug is the canonical item identifier used as an API path segment:
// lowercase, whitespace runs collapsed to single underscores.
type Slug string

// Normalize converts a free-text item name into its slug form.
// "Rubico  Prime Set" -> "rubico_prime_set". Idempotent.
func Normalize(raw string) (Slug, error) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return "", ErrEmptyQuery
	}
	return Slug(strings.Join(fields, "_")), nil
}

// PrettyName renders a slug for display: underscores to spaces, each word
// title-cased. "rubico_prime_set" -> "Rubico Prime Set".
func PrettyName(slug Slug) string {
	parts := strings.Split(string(slug), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
