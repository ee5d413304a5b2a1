package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAssignments(t *testing.T) {
	members := []Member{
		{ID: "C0", Topics: []string{"t0"}},
		{ID: "C1", Topics: []string{"t0"}},
	}
	topics := []TopicMeta{
		{Name: "t0", Partitions: 3},
	}

	type testCase struct {
		description string
		assignments MemberAssignments
		errContains string
	}

	testCases := []testCase{
		{
			description: "valid assignment",
			assignments: MemberAssignments{
				"C0": {{Topic: "t0", Partition: 0}, {Topic: "t0", Partition: 2}},
				"C1": {{Topic: "t0", Partition: 1}},
			},
		},
		{
			description: "unknown member",
			assignments: MemberAssignments{
				"C9": {{Topic: "t0", Partition: 0}},
			},
			errContains: "unknown member",
		},
		{
			description: "partition assigned twice",
			assignments: MemberAssignments{
				"C0": {{Topic: "t0", Partition: 0}, {Topic: "t0", Partition: 1}},
				"C1": {{Topic: "t0", Partition: 1}, {Topic: "t0", Partition: 2}},
			},
			errContains: "assigned to both",
		},
		{
			description: "partition unassigned",
			assignments: MemberAssignments{
				"C0": {{Topic: "t0", Partition: 0}},
				"C1": {{Topic: "t0", Partition: 1}},
			},
			errContains: "unassigned",
		},
		{
			description: "partitions out of order",
			assignments: MemberAssignments{
				"C0": {{Topic: "t0", Partition: 2}, {Topic: "t0", Partition: 0}},
				"C1": {{Topic: "t0", Partition: 1}},
			},
			errContains: "not ascending",
		},
	}

	for _, testCase := range testCases {
		err := CheckAssignments(members, topics, testCase.assignments)
		if testCase.errContains == "" {
			assert.NoError(t, err, testCase.description)
		} else {
			require.Error(t, err, testCase.description)
			assert.Contains(t, err.Error(), testCase.errContains, testCase.description)
		}
	}
}

func TestCheckAssignmentsSkipsUnsubscribedTopics(t *testing.T) {
	members := []Member{
		{ID: "C0", Topics: []string{"t0"}},
	}
	topics := []TopicMeta{
		{Name: "t0", Partitions: 1},
		{Name: "orphan", Partitions: 4},
	}
	assignments := MemberAssignments{
		"C0": {{Topic: "t0", Partition: 0}},
	}

	assert.NoError(t, CheckAssignments(members, topics, assignments))
}

func TestEvaluateBalance(t *testing.T) {
	comparator := NewPrefixComparator("-")
	members := []Member{
		{ID: "team1-a", Topics: []string{"t0"}},
		{ID: "team1-b", Topics: []string{"t0"}},
		{ID: "team2-c", Topics: []string{"t0"}},
	}
	topics := []TopicMeta{
		{Name: "t0", Partitions: 6},
	}

	assigner := NewDoubleRoundRobinAssigner(comparator)
	assignments, err := assigner.Assign(members, topics)
	require.NoError(t, err)

	balances, err := EvaluateBalance(members, topics, comparator, assignments)
	require.NoError(t, err)
	require.Equal(t, 1, len(balances))

	assert.Equal(
		t,
		TopicBalance{
			Topic:        "t0",
			Partitions:   6,
			Groups:       2,
			GroupSpread:  0,
			MemberSpread: 1,
		},
		balances[0],
	)
	assert.True(t, balances[0].Balanced())
}

func TestEvaluateBalanceUnbalanced(t *testing.T) {
	comparator := DistinctComparator{}
	members := []Member{
		{ID: "C0", Topics: []string{"t0"}},
		{ID: "C1", Topics: []string{"t0"}},
	}
	topics := []TopicMeta{
		{Name: "t0", Partitions: 4},
	}

	// Everything piled onto one member.
	assignments := MemberAssignments{
		"C0": {
			{Topic: "t0", Partition: 0},
			{Topic: "t0", Partition: 1},
			{Topic: "t0", Partition: 2},
			{Topic: "t0", Partition: 3},
		},
		"C1": {},
	}

	balances, err := EvaluateBalance(members, topics, comparator, assignments)
	require.NoError(t, err)
	require.Equal(t, 1, len(balances))

	assert.Equal(t, 4, balances[0].GroupSpread)
	assert.False(t, balances[0].Balanced())
}

func TestEvaluateBalanceDuplicateViolation(t *testing.T) {
	comparator := pairComparator(
		map[string]Relation{
			"dup-0|dup-1": Duplicate,
		},
	)
	members := []Member{
		{ID: "dup-0", Topics: []string{"t0"}},
		{ID: "dup-1", Topics: []string{"t0"}},
	}
	topics := []TopicMeta{
		{Name: "t0", Partitions: 2},
	}

	// dup-0 was excluded by the grouper but holds partitions anyway.
	assignments := MemberAssignments{
		"dup-0": {{Topic: "t0", Partition: 0}},
		"dup-1": {{Topic: "t0", Partition: 1}},
	}

	_, err := EvaluateBalance(members, topics, comparator, assignments)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup-0")
}
