package college

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllColleges is the sentinel filter value that matches every college.
const AllColleges = "All Colleges"

// Keys are truncated to this many characters so that near-duplicate
// spellings of the same institution ("CVR College", "CVR Collge of Engg")
// group together while short acronyms (IIT, NIT, BITS, VIT) stay distinct.
const maxKeyLen = 5

// Prettify collapses runs of whitespace to a single space and trims the
// ends. Empty or whitespace-only input yields "". Idempotent.
func Prettify(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// KeyOf derives the grouping token for a college name: lowercase, strip
// everything that is not [a-z0-9] or whitespace, then take the first
// whitespace-delimited token truncated to at most 5 characters. Returns ""
// when no token survives. The key is used purely for equality grouping and
// is never displayed.
func KeyOf(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	tokens := strings.Fields(b.String())
	if len(tokens) == 0 {
		return ""
	}
	token := tokens[0]
	if len(token) > maxKeyLen {
		token = token[:maxKeyLen]
	}
	return token
}

// BuildCatalog deduplicates the raw college names contributed by every
// profile into one display entry per key. The first pretty spelling seen
// for a key claims the display form; later variants are dropped. The result
// is sorted case- and accent-insensitively and never contains an empty
// entry or two entries sharing a key.
func BuildCatalog(rawNames []string) []string {
	seen := make(map[string]bool, len(rawNames))
	catalog := make([]string, 0, len(rawNames))
	for _, raw := range rawNames {
		pretty := Prettify(raw)
		if pretty == "" {
			continue
		}
		key := KeyOf(pretty)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		catalog = append(catalog, pretty)
	}
	collate.New(language.English, collate.Loose).SortStrings(catalog)
	return catalog
}

// Matches reports whether a content item's college belongs to the college
// currently being viewed. The AllColleges sentinel matches everything.
// An item whose college yields an empty key matches no specific filter.
func Matches(itemCollege, filter string) bool {
	if filter == AllColleges {
		return true
	}
	key := KeyOf(Prettify(itemCollege))
	if key == "" {
		return false
	}
	return key == KeyOf(Prettify(filter))
}
