package assign

import "sort"

// memberGroup is a half-open (start, length) range over the filtered member
// sequence. Groups are views into that sequence, never copies.
type memberGroup struct {
	start  int
	length int
}

// groupedMembers holds the sorted, duplicate-filtered member sequence along
// with the ordered replica groups that partition it. Every filtered member
// belongs to exactly one group; groups are contiguous, non-empty, and cover
// the sequence with no gaps.
type groupedMembers struct {
	members []Member
	groups  []memberGroup
}

// groupMembers sorts the members lexicographically by ID, drops duplicates,
// and splits the survivors into contiguous replica groups by applying the
// comparator to each adjacent pair.
func groupMembers(members []Member, comparator Comparator) groupedMembers {
	if len(members) == 0 {
		return groupedMembers{}
	}

	sorted := make([]Member, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].ID < sorted[b].ID
	})

	filtered := make([]Member, 0, len(sorted))
	groups := []memberGroup{}
	groupStart := 0

	for i := 0; i < len(sorted)-1; i++ {
		switch comparator.Compare(sorted[i].ID, sorted[i+1].ID) {
		case Distinct:
			filtered = append(filtered, sorted[i])
			groups = append(
				groups,
				memberGroup{start: groupStart, length: len(filtered) - groupStart},
			)
			groupStart = len(filtered)
		case SameGroup:
			filtered = append(filtered, sorted[i])
		case Duplicate:
			// The earlier member of the pair is an exact copy of the later
			// one; drop it without closing the current group.
		}
	}

	// The last member always survives and closes the final group.
	filtered = append(filtered, sorted[len(sorted)-1])
	groups = append(
		groups,
		memberGroup{start: groupStart, length: len(filtered) - groupStart},
	)

	return groupedMembers{members: filtered, groups: groups}
}
