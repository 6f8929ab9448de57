package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueObjectName(t *testing.T) {
	a := UniqueObjectName("syllabus.pdf")
	b := UniqueObjectName("syllabus.pdf")

	assert.True(t, strings.HasSuffix(a, "-syllabus.pdf"))
	assert.NotEqual(t, a, b, "two uploads of the same filename must not clash")
}

func TestRemoveDuplicates(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, RemoveDuplicates([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{}, RemoveDuplicates(nil))
}
