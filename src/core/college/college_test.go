package college

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettify(t *testing.T) {
	assert.Equal(t, "CVR College of Engineering", Prettify("  CVR   College of\tEngineering "))
	assert.Equal(t, "", Prettify(""))
	assert.Equal(t, "", Prettify("   \t\n "))
	assert.Equal(t, "BITS Pilani", Prettify("BITS Pilani"))
}

func TestPrettifyIdempotent(t *testing.T) {
	inputs := []string{"", "   ", "IIT  Delhi", " a  b\tc ", "one"}
	for _, s := range inputs {
		once := Prettify(s)
		assert.Equal(t, once, Prettify(once), "Prettify must be idempotent for %q", s)
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"punctuation only", "!!??--", ""},
		{"simple acronym", "IIT Delhi", "iit"},
		{"lowercased variant", "iit delhi", "iit"},
		{"punctuation stripped", "IIT, Delhi!!", "iit"},
		{"short first token kept whole", "CVR College", "cvr"},
		{"misspelled tail ignored", "CVR Collg", "cvr"},
		{"long first token truncated", "Vellore Institute of Technology", "vello"},
		{"digits kept", "IIIT-H 2024", "iiit"},
		{"hyphen splits token", "JNTU-Hyderabad", "jntu"},
		{"raw untidy input tolerated", "  bits   PILANI ", "bits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyOf(tt.in))
		})
	}
}

func TestKeyOfFirstTokenNotWholeString(t *testing.T) {
	// Grouping must come from the first token, not a truncation of the
	// whole cleaned string.
	assert.Equal(t, KeyOf("CVR College"), KeyOf("CVR Collg"))
	assert.Equal(t, "cvr", KeyOf("CVR College of Engineering"))
	assert.NotEqual(t, KeyOf("NIT Trichy"), KeyOf("IIT Delhi"))
}

func TestBuildCatalogDedupesAndSorts(t *testing.T) {
	got := BuildCatalog([]string{"IIT Delhi", "iit delhi", "NIT Trichy", "", "   "})
	require.Equal(t, []string{"IIT Delhi", "NIT Trichy"}, got)
}

func TestBuildCatalogFirstSeenWins(t *testing.T) {
	got := BuildCatalog([]string{"bits  pilani ", "BITS Pilani", "BITS, Pilani!"})
	require.Len(t, got, 1)
	assert.Equal(t, "bits pilani", got[0])
}

func TestBuildCatalogNoEmptiesNoDuplicateKeys(t *testing.T) {
	raw := []string{"", " ", "!!!", "IIT Delhi", "IIT Bombay", "iit madras", "NIT Trichy", "nit warangal", "Anna University"}
	got := BuildCatalog(raw)
	seen := map[string]bool{}
	for _, entry := range got {
		require.NotEmpty(t, entry)
		key := KeyOf(entry)
		require.NotEmpty(t, key)
		require.False(t, seen[key], "duplicate key %q in catalog %v", key, got)
		seen[key] = true
	}
}

func TestBuildCatalogSortIgnoresCase(t *testing.T) {
	got := BuildCatalog([]string{"osmania university", "Anna University", "BITS Pilani"})
	require.Equal(t, []string{"Anna University", "BITS Pilani", "osmania university"}, got)
}

func TestBuildCatalogEmptyInput(t *testing.T) {
	assert.Empty(t, BuildCatalog(nil))
	assert.Empty(t, BuildCatalog([]string{"", "  ", "??"}))
}

func TestMatchesAllColleges(t *testing.T) {
	for _, item := range []string{"", "IIT Delhi", "  weird  spacing ", "!!"} {
		assert.True(t, Matches(item, AllColleges))
	}
}

func TestMatchesByKey(t *testing.T) {
	assert.True(t, Matches("BITS Pilani", "bits  pilani "))
	assert.True(t, Matches("IIT, Delhi!!", "iit delhi"))
	assert.False(t, Matches("NIT Trichy", "IIT Delhi"))
	// Items with no derivable key never match a specific filter.
	assert.False(t, Matches("", "IIT Delhi"))
	assert.False(t, Matches("!!", "??"))
}

func TestViewFilter(t *testing.T) {
	assert.True(t, FilterFromQuery("").IsAll())
	assert.True(t, FilterFromQuery("  ").IsAll())
	assert.True(t, FilterFromQuery(AllColleges).IsAll())

	f := FilterFromQuery(" bits   Pilani ")
	assert.False(t, f.IsAll())
	assert.Equal(t, "bits Pilani", f.Selected)
	assert.Equal(t, "bits", f.Key())

	assert.Equal(t, "", ViewFilter{}.Key())
}

// Two users sign up with cosmetic variants of the same college; the
// dropdown shows one entry and content from either is visible under it.
func TestSignupVariantsCollapseInCatalog(t *testing.T) {
	profiles := []string{"BITS Pilani", "bits  pilani "}
	catalog := BuildCatalog(profiles)
	require.Equal(t, []string{"BITS Pilani"}, catalog)

	for _, stored := range profiles {
		assert.True(t, Matches(Prettify(stored), catalog[0]))
		assert.True(t, Matches(Prettify(stored), AllColleges))
	}
}
