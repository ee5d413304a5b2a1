package assign

import "strings"

// Relation classifies an ordered pair of member IDs.
type Relation int

const (
	// Distinct indicates that the two members belong to different logical
	// consumers.
	Distinct Relation = iota

	// SameGroup indicates that the two members are replicas of the same
	// logical consumer.
	SameGroup

	// Duplicate indicates that the second member is an exact redundant copy
	// of the first; only one of the two participates in assignment.
	Duplicate
)

func (r Relation) String() string {
	switch r {
	case Distinct:
		return "distinct"
	case SameGroup:
		return "same-group"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Comparator classifies pairs of member IDs. Implementations must be
// deterministic and total; the grouper applies them to adjacent pairs in
// lexicographic ID order, so Compare is order-sensitive.
type Comparator interface {
	Compare(a string, b string) Relation
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc func(a string, b string) Relation

func (f ComparatorFunc) Compare(a string, b string) Relation {
	return f(a, b)
}

// DefaultDelimiter is the separator the Kafka group coordinator inserts
// between a member's client ID and its generated suffix.
const DefaultDelimiter = "-"

// PrefixComparator relates members by a logical-consumer key derived from
// their IDs: everything before the last occurrence of Delimiter. Members
// with equal keys are replicas of each other (SameGroup); members with
// fully identical IDs are duplicates.
type PrefixComparator struct {
	Delimiter string
}

var _ Comparator = (*PrefixComparator)(nil)

// NewPrefixComparator returns a PrefixComparator using the argument
// delimiter, or DefaultDelimiter if it's empty.
func NewPrefixComparator(delimiter string) PrefixComparator {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return PrefixComparator{Delimiter: delimiter}
}

func (p PrefixComparator) Compare(a string, b string) Relation {
	if a == b {
		return Duplicate
	}
	if p.key(a) == p.key(b) {
		return SameGroup
	}
	return Distinct
}

func (p PrefixComparator) key(id string) string {
	if index := strings.LastIndex(id, p.Delimiter); index >= 0 {
		return id[:index]
	}
	return id
}

// DistinctComparator treats every pair of members as independent logical
// consumers; double round-robin over it degenerates to a flat round-robin
// across all members.
type DistinctComparator struct{}

var _ Comparator = (*DistinctComparator)(nil)

func (d DistinctComparator) Compare(a string, b string) Relation {
	return Distinct
}
