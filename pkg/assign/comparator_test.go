package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixComparator(t *testing.T) {
	comparator := NewPrefixComparator("")
	assert.Equal(t, DefaultDelimiter, comparator.Delimiter)

	assert.Equal(t, Duplicate, comparator.Compare("team-a-0", "team-a-0"))
	assert.Equal(t, SameGroup, comparator.Compare("team-a-0", "team-a-1"))
	assert.Equal(t, Distinct, comparator.Compare("team-a-0", "team-b-0"))

	// IDs without the delimiter fall back to the full ID as the key.
	assert.Equal(t, Distinct, comparator.Compare("alpha", "beta"))
	assert.Equal(t, Duplicate, comparator.Compare("alpha", "alpha"))
}

func TestPrefixComparatorCustomDelimiter(t *testing.T) {
	comparator := NewPrefixComparator(":")

	assert.Equal(t, SameGroup, comparator.Compare("billing:0", "billing:1"))
	assert.Equal(t, Distinct, comparator.Compare("billing:0", "search:0"))

	// Only the last occurrence of the delimiter splits the key.
	assert.Equal(t, SameGroup, comparator.Compare("a:b:0", "a:b:1"))
	assert.Equal(t, Distinct, comparator.Compare("a:b:0", "a:c:0"))
}

func TestDistinctComparator(t *testing.T) {
	comparator := DistinctComparator{}

	assert.Equal(t, Distinct, comparator.Compare("a", "a"))
	assert.Equal(t, Distinct, comparator.Compare("a", "b"))
}

func TestComparatorFunc(t *testing.T) {
	comparator := ComparatorFunc(func(a string, b string) Relation {
		if a == b {
			return Duplicate
		}
		return SameGroup
	})

	assert.Equal(t, Duplicate, comparator.Compare("x", "x"))
	assert.Equal(t, SameGroup, comparator.Compare("x", "y"))
}

func TestRelationString(t *testing.T) {
	assert.Equal(t, "distinct", Distinct.String())
	assert.Equal(t, "same-group", SameGroup.String())
	assert.Equal(t, "duplicate", Duplicate.String())
	assert.Equal(t, "unknown", Relation(99).String())
}
